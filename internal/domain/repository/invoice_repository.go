package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/autocarcare/garage-api/internal/domain/entity"
	"github.com/autocarcare/garage-api/internal/domain/enum"
	"github.com/autocarcare/garage-api/pkg/pagination"
)

// InvoiceRepository defines the interface for invoice data operations
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *entity.Invoice) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error)
	GetByNumber(ctx context.Context, number string) (*entity.Invoice, error)
	// GetWithLines loads the invoice together with its part and labour lines
	GetWithLines(ctx context.Context, id uuid.UUID) (*entity.Invoice, error)
	Update(ctx context.Context, invoice *entity.Invoice) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID, params *InvoiceFilterParams) ([]entity.Invoice, int64, error)
	UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status enum.PaymentStatus) error
	// GetNextSequenceNumber reserves the next number for "INV-%06d" formatting
	GetNextSequenceNumber(ctx context.Context) (int, error)
	// ListBetween returns invoices dated in [from, to] with lines
	// preloaded, ordered by invoice date then number. Used by reports.
	ListBetween(ctx context.Context, userID uuid.UUID, from, to time.Time, skipUserFilter bool) ([]entity.Invoice, error)
}

// InvoiceFilterParams contains filtering parameters for invoice queries
type InvoiceFilterParams struct {
	Pagination     *pagination.PaginationParams
	Search         string
	PaymentStatus  *enum.PaymentStatus
	CustomerID     *uuid.UUID
	From           time.Time
	To             time.Time
	SkipUserFilter bool
}

// InvoiceLineRepository defines the interface for invoice line data operations
type InvoiceLineRepository interface {
	CreateParts(ctx context.Context, parts []entity.InvoicePart) error
	CreateLabours(ctx context.Context, labours []entity.InvoiceLabour) error
	GetPartsByInvoiceID(ctx context.Context, invoiceID uuid.UUID) ([]entity.InvoicePart, error)
	GetLaboursByInvoiceID(ctx context.Context, invoiceID uuid.UUID) ([]entity.InvoiceLabour, error)
	DeleteByInvoiceID(ctx context.Context, invoiceID uuid.UUID) error
}
