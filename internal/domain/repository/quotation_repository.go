package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/autocarcare/garage-api/internal/domain/entity"
	"github.com/autocarcare/garage-api/pkg/pagination"
)

// QuotationRepository defines the interface for quotation data operations
type QuotationRepository interface {
	Create(ctx context.Context, quotation *entity.Quotation) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Quotation, error)
	GetByNumber(ctx context.Context, number string) (*entity.Quotation, error)
	GetWithLines(ctx context.Context, id uuid.UUID) (*entity.Quotation, error)
	Update(ctx context.Context, quotation *entity.Quotation) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID, params *QuotationFilterParams) ([]entity.Quotation, int64, error)
	// GetNextSequenceNumber reserves the next number for "QTN-%06d" formatting
	GetNextSequenceNumber(ctx context.Context) (int, error)
}

// QuotationFilterParams contains filtering parameters for quotation queries
type QuotationFilterParams struct {
	Pagination     *pagination.PaginationParams
	Search         string
	CustomerID     *uuid.UUID
	SkipUserFilter bool
}

// QuotationLineRepository defines the interface for quotation line data operations
type QuotationLineRepository interface {
	CreateParts(ctx context.Context, parts []entity.QuotationPart) error
	CreateLabours(ctx context.Context, labours []entity.QuotationLabour) error
	DeleteByQuotationID(ctx context.Context, quotationID uuid.UUID) error
}
