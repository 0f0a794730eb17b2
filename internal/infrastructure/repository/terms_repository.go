package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/autocarcare/garage-api/internal/domain/entity"
	domainRepo "github.com/autocarcare/garage-api/internal/domain/repository"
)

type termsRepository struct {
	db *gorm.DB
}

// NewTermsRepository creates a new terms and conditions repository
func NewTermsRepository(db *gorm.DB) domainRepo.TermsRepository {
	return &termsRepository{db: db}
}

func (r *termsRepository) Create(ctx context.Context, term *entity.TermsAndConditions) error {
	return r.db.WithContext(ctx).Create(term).Error
}

func (r *termsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.TermsAndConditions, error) {
	var term entity.TermsAndConditions
	err := r.db.WithContext(ctx).First(&term, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &term, err
}

func (r *termsRepository) Update(ctx context.Context, term *entity.TermsAndConditions) error {
	return r.db.WithContext(ctx).Save(term).Error
}

func (r *termsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.TermsAndConditions{}, "id = ?", id).Error
}

func (r *termsRepository) List(ctx context.Context, userID uuid.UUID, skipUserFilter bool) ([]entity.TermsAndConditions, error) {
	var terms []entity.TermsAndConditions
	err := r.db.WithContext(ctx).Model(&entity.TermsAndConditions{}).
		Scopes(OwnerScope(userID, skipUserFilter)).
		Order("sort_order ASC, created_at ASC").
		Find(&terms).Error
	return terms, err
}

func (r *termsRepository) ListActive(ctx context.Context, userID uuid.UUID) ([]entity.TermsAndConditions, error) {
	var terms []entity.TermsAndConditions
	err := r.db.WithContext(ctx).Model(&entity.TermsAndConditions{}).
		Where("user_id = ? AND is_active = ?", userID, true).
		Order("sort_order ASC, created_at ASC").
		Find(&terms).Error
	return terms, err
}
