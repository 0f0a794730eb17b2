package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/autocarcare/garage-api/internal/domain/entity"
	domainRepo "github.com/autocarcare/garage-api/internal/domain/repository"
	"github.com/autocarcare/garage-api/pkg/pagination"
)

type bankDepositRepository struct {
	db *gorm.DB
}

// NewBankDepositRepository creates a new bank deposit repository
func NewBankDepositRepository(db *gorm.DB) domainRepo.BankDepositRepository {
	return &bankDepositRepository{db: db}
}

func (r *bankDepositRepository) Create(ctx context.Context, deposit *entity.BankDeposit) error {
	return r.db.WithContext(ctx).Create(deposit).Error
}

func (r *bankDepositRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.BankDeposit, error) {
	var deposit entity.BankDeposit
	err := r.db.WithContext(ctx).First(&deposit, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &deposit, err
}

func (r *bankDepositRepository) Update(ctx context.Context, deposit *entity.BankDeposit) error {
	return r.db.WithContext(ctx).Save(deposit).Error
}

func (r *bankDepositRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.BankDeposit{}, "id = ?", id).Error
}

func (r *bankDepositRepository) List(ctx context.Context, userID uuid.UUID, params *pagination.PaginationParams, from, to time.Time, skipUserFilter bool) ([]entity.BankDeposit, int64, error) {
	var deposits []entity.BankDeposit
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.BankDeposit{}).
		Scopes(OwnerScope(userID, skipUserFilter))

	if !from.IsZero() {
		query = query.Where("deposit_date >= ?", from)
	}
	if !to.IsZero() {
		query = query.Where("deposit_date <= ?", to)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("deposit_date DESC, created_at DESC").
		Find(&deposits).Error

	return deposits, total, err
}

func (r *bankDepositRepository) SumBetween(ctx context.Context, userID uuid.UUID, from, to time.Time, skipUserFilter bool) (float64, error) {
	var sum float64
	query := r.db.WithContext(ctx).Model(&entity.BankDeposit{}).
		Scopes(OwnerScope(userID, skipUserFilter))

	if !from.IsZero() {
		query = query.Where("deposit_date >= ?", from)
	}
	if !to.IsZero() {
		query = query.Where("deposit_date <= ?", to)
	}

	err := query.Select("COALESCE(SUM(amount), 0)").Scan(&sum).Error
	return sum, err
}
