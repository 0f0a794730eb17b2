package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/autocarcare/garage-api/internal/domain/entity"
	"github.com/autocarcare/garage-api/pkg/pagination"
)

// SparePartRepository defines the interface for spare part data operations
type SparePartRepository interface {
	Create(ctx context.Context, part *entity.SparePart) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.SparePart, error)
	GetByPartNumber(ctx context.Context, partNumber string) (*entity.SparePart, error)
	Update(ctx context.Context, part *entity.SparePart) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID, params *pagination.PaginationParams, search string, skipUserFilter bool) ([]entity.SparePart, int64, error)
	// AdjustQuantity changes stock by delta (negative to consume)
	AdjustQuantity(ctx context.Context, id uuid.UUID, delta float64) error
}
