package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/autocarcare/garage-api/internal/domain/entity"
	domainRepo "github.com/autocarcare/garage-api/internal/domain/repository"
	"github.com/autocarcare/garage-api/pkg/pagination"
)

type sparePartRepository struct {
	db *gorm.DB
}

// NewSparePartRepository creates a new spare part repository
func NewSparePartRepository(db *gorm.DB) domainRepo.SparePartRepository {
	return &sparePartRepository{db: db}
}

func (r *sparePartRepository) Create(ctx context.Context, part *entity.SparePart) error {
	return r.db.WithContext(ctx).Create(part).Error
}

func (r *sparePartRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.SparePart, error) {
	var part entity.SparePart
	err := r.db.WithContext(ctx).First(&part, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &part, err
}

func (r *sparePartRepository) GetByPartNumber(ctx context.Context, partNumber string) (*entity.SparePart, error) {
	var part entity.SparePart
	err := r.db.WithContext(ctx).First(&part, "part_number = ?", partNumber).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &part, err
}

func (r *sparePartRepository) Update(ctx context.Context, part *entity.SparePart) error {
	return r.db.WithContext(ctx).Save(part).Error
}

func (r *sparePartRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.SparePart{}, "id = ?", id).Error
}

func (r *sparePartRepository) List(ctx context.Context, userID uuid.UUID, params *pagination.PaginationParams, search string, skipUserFilter bool) ([]entity.SparePart, int64, error) {
	var parts []entity.SparePart
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.SparePart{}).
		Scopes(OwnerScope(userID, skipUserFilter))

	if search != "" {
		query = query.Where("name ILIKE ? OR part_number ILIKE ? OR hsn_code ILIKE ?",
			"%"+search+"%", "%"+search+"%", "%"+search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("name ASC").
		Find(&parts).Error

	return parts, total, err
}

func (r *sparePartRepository) AdjustQuantity(ctx context.Context, id uuid.UUID, delta float64) error {
	return r.db.WithContext(ctx).Model(&entity.SparePart{}).
		Where("id = ?", id).
		UpdateColumn("quantity", gorm.Expr("quantity + ?", delta)).Error
}
