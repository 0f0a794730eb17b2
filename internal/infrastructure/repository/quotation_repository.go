package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/autocarcare/garage-api/internal/domain/entity"
	domainRepo "github.com/autocarcare/garage-api/internal/domain/repository"
)

type quotationRepository struct {
	db *gorm.DB
}

// NewQuotationRepository creates a new quotation repository
func NewQuotationRepository(db *gorm.DB) domainRepo.QuotationRepository {
	return &quotationRepository{db: db}
}

func (r *quotationRepository) Create(ctx context.Context, quotation *entity.Quotation) error {
	return r.db.WithContext(ctx).Create(quotation).Error
}

func (r *quotationRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Quotation, error) {
	var quotation entity.Quotation
	err := r.db.WithContext(ctx).First(&quotation, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &quotation, err
}

func (r *quotationRepository) GetByNumber(ctx context.Context, number string) (*entity.Quotation, error) {
	var quotation entity.Quotation
	err := r.db.WithContext(ctx).First(&quotation, "quotation_number = ?", number).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &quotation, err
}

func (r *quotationRepository) GetWithLines(ctx context.Context, id uuid.UUID) (*entity.Quotation, error) {
	var quotation entity.Quotation
	err := r.db.WithContext(ctx).
		Preload("Parts").
		Preload("Labours").
		Preload("Customer").
		First(&quotation, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &quotation, err
}

func (r *quotationRepository) Update(ctx context.Context, quotation *entity.Quotation) error {
	return r.db.WithContext(ctx).Save(quotation).Error
}

func (r *quotationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Quotation{}, "id = ?", id).Error
}

func (r *quotationRepository) List(ctx context.Context, userID uuid.UUID, params *domainRepo.QuotationFilterParams) ([]entity.Quotation, int64, error) {
	var quotations []entity.Quotation
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Quotation{}).
		Scopes(OwnerScope(userID, params.SkipUserFilter))

	if params.Search != "" {
		query = query.Where("quotation_number ILIKE ? OR customer_name ILIKE ? OR vehicle_no ILIKE ?",
			"%"+params.Search+"%", "%"+params.Search+"%", "%"+params.Search+"%")
	}
	if params.CustomerID != nil {
		query = query.Where("customer_id = ?", *params.CustomerID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order("quotation_date DESC, quotation_number DESC").
		Find(&quotations).Error

	return quotations, total, err
}

// GetNextSequenceNumber counts soft-deleted rows too so a deleted
// quotation never frees its number for reuse.
func (r *quotationRepository) GetNextSequenceNumber(ctx context.Context) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).Unscoped().Model(&entity.Quotation{}).Count(&count).Error
	return int(count) + 1, err
}

type quotationLineRepository struct {
	db *gorm.DB
}

// NewQuotationLineRepository creates a new quotation line repository
func NewQuotationLineRepository(db *gorm.DB) domainRepo.QuotationLineRepository {
	return &quotationLineRepository{db: db}
}

func (r *quotationLineRepository) CreateParts(ctx context.Context, parts []entity.QuotationPart) error {
	if len(parts) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&parts).Error
}

func (r *quotationLineRepository) CreateLabours(ctx context.Context, labours []entity.QuotationLabour) error {
	if len(labours) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&labours).Error
}

func (r *quotationLineRepository) DeleteByQuotationID(ctx context.Context, quotationID uuid.UUID) error {
	if err := r.db.WithContext(ctx).
		Where("quotation_id = ?", quotationID).
		Delete(&entity.QuotationPart{}).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).
		Where("quotation_id = ?", quotationID).
		Delete(&entity.QuotationLabour{}).Error
}
