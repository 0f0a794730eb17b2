package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/autocarcare/garage-api/internal/domain/entity"
	"github.com/autocarcare/garage-api/internal/domain/enum"
	domainRepo "github.com/autocarcare/garage-api/internal/domain/repository"
)

type invoiceRepository struct {
	db *gorm.DB
}

// NewInvoiceRepository creates a new invoice repository
func NewInvoiceRepository(db *gorm.DB) domainRepo.InvoiceRepository {
	return &invoiceRepository{db: db}
}

func (r *invoiceRepository) Create(ctx context.Context, invoice *entity.Invoice) error {
	return r.db.WithContext(ctx).Create(invoice).Error
}

func (r *invoiceRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	var invoice entity.Invoice
	err := r.db.WithContext(ctx).First(&invoice, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &invoice, err
}

func (r *invoiceRepository) GetByNumber(ctx context.Context, number string) (*entity.Invoice, error) {
	var invoice entity.Invoice
	err := r.db.WithContext(ctx).First(&invoice, "invoice_number = ?", number).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &invoice, err
}

func (r *invoiceRepository) GetWithLines(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	var invoice entity.Invoice
	err := r.db.WithContext(ctx).
		Preload("Parts").
		Preload("Labours").
		Preload("Customer").
		First(&invoice, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &invoice, err
}

func (r *invoiceRepository) Update(ctx context.Context, invoice *entity.Invoice) error {
	return r.db.WithContext(ctx).Save(invoice).Error
}

func (r *invoiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Invoice{}, "id = ?", id).Error
}

func (r *invoiceRepository) List(ctx context.Context, userID uuid.UUID, params *domainRepo.InvoiceFilterParams) ([]entity.Invoice, int64, error) {
	var invoices []entity.Invoice
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Invoice{}).
		Scopes(OwnerScope(userID, params.SkipUserFilter))

	if params.Search != "" {
		query = query.Where("invoice_number ILIKE ? OR customer_name ILIKE ? OR vehicle_no ILIKE ?",
			"%"+params.Search+"%", "%"+params.Search+"%", "%"+params.Search+"%")
	}
	if params.PaymentStatus != nil {
		query = query.Where("payment_status = ?", *params.PaymentStatus)
	}
	if params.CustomerID != nil {
		query = query.Where("customer_id = ?", *params.CustomerID)
	}
	if !params.From.IsZero() {
		query = query.Where("invoice_date >= ?", params.From)
	}
	if !params.To.IsZero() {
		query = query.Where("invoice_date <= ?", params.To)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order("invoice_date DESC, invoice_number DESC").
		Find(&invoices).Error

	return invoices, total, err
}

func (r *invoiceRepository) UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status enum.PaymentStatus) error {
	return r.db.WithContext(ctx).Model(&entity.Invoice{}).
		Where("id = ?", id).
		Update("payment_status", status).Error
}

// GetNextSequenceNumber counts soft-deleted rows too so a deleted
// invoice never frees its number for reuse.
func (r *invoiceRepository) GetNextSequenceNumber(ctx context.Context) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).Unscoped().Model(&entity.Invoice{}).Count(&count).Error
	return int(count) + 1, err
}

func (r *invoiceRepository) ListBetween(ctx context.Context, userID uuid.UUID, from, to time.Time, skipUserFilter bool) ([]entity.Invoice, error) {
	var invoices []entity.Invoice
	query := r.db.WithContext(ctx).Model(&entity.Invoice{}).
		Scopes(OwnerScope(userID, skipUserFilter))

	if !from.IsZero() {
		query = query.Where("invoice_date >= ?", from)
	}
	if !to.IsZero() {
		query = query.Where("invoice_date <= ?", to)
	}

	err := query.
		Preload("Parts").
		Preload("Labours").
		Order("invoice_date ASC, invoice_number ASC").
		Find(&invoices).Error
	return invoices, err
}

type invoiceLineRepository struct {
	db *gorm.DB
}

// NewInvoiceLineRepository creates a new invoice line repository
func NewInvoiceLineRepository(db *gorm.DB) domainRepo.InvoiceLineRepository {
	return &invoiceLineRepository{db: db}
}

func (r *invoiceLineRepository) CreateParts(ctx context.Context, parts []entity.InvoicePart) error {
	if len(parts) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&parts).Error
}

func (r *invoiceLineRepository) CreateLabours(ctx context.Context, labours []entity.InvoiceLabour) error {
	if len(labours) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&labours).Error
}

func (r *invoiceLineRepository) GetPartsByInvoiceID(ctx context.Context, invoiceID uuid.UUID) ([]entity.InvoicePart, error) {
	var parts []entity.InvoicePart
	err := r.db.WithContext(ctx).
		Where("invoice_id = ?", invoiceID).
		Order("created_at ASC").
		Find(&parts).Error
	return parts, err
}

func (r *invoiceLineRepository) GetLaboursByInvoiceID(ctx context.Context, invoiceID uuid.UUID) ([]entity.InvoiceLabour, error) {
	var labours []entity.InvoiceLabour
	err := r.db.WithContext(ctx).
		Where("invoice_id = ?", invoiceID).
		Order("created_at ASC").
		Find(&labours).Error
	return labours, err
}

func (r *invoiceLineRepository) DeleteByInvoiceID(ctx context.Context, invoiceID uuid.UUID) error {
	if err := r.db.WithContext(ctx).
		Where("invoice_id = ?", invoiceID).
		Delete(&entity.InvoicePart{}).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).
		Where("invoice_id = ?", invoiceID).
		Delete(&entity.InvoiceLabour{}).Error
}
