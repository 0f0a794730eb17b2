package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/autocarcare/garage-api/internal/domain/entity"
	"github.com/autocarcare/garage-api/internal/domain/repository"
	"github.com/autocarcare/garage-api/pkg/apperror"
	"github.com/autocarcare/garage-api/pkg/cache"
)

// TermsService manages the terms and conditions printed on documents.
// Active clauses are cached because every PDF render reads them.
type TermsService struct {
	termsRepo repository.TermsRepository
	active    *cache.TTL[[]entity.TermsAndConditions]
}

// NewTermsService creates a new terms service
func NewTermsService(termsRepo repository.TermsRepository, active *cache.TTL[[]entity.TermsAndConditions]) *TermsService {
	return &TermsService{termsRepo: termsRepo, active: active}
}

// CreateTermInput represents the input for creating a clause
type CreateTermInput struct {
	UserID    uuid.UUID
	Content   string
	SortOrder int
	IsActive  bool
}

// CreateTerm creates a new clause
func (s *TermsService) CreateTerm(ctx context.Context, input *CreateTermInput) (*entity.TermsAndConditions, error) {
	term := &entity.TermsAndConditions{
		UserID:    input.UserID,
		Content:   input.Content,
		SortOrder: input.SortOrder,
		IsActive:  input.IsActive,
	}

	if err := s.termsRepo.Create(ctx, term); err != nil {
		return nil, err
	}
	s.active.Invalidate(input.UserID.String())
	return term, nil
}

// GetTerm retrieves a clause by ID
func (s *TermsService) GetTerm(ctx context.Context, id uuid.UUID) (*entity.TermsAndConditions, error) {
	term, err := s.termsRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if term == nil {
		return nil, apperror.NewNotFoundError("Term")
	}
	return term, nil
}

// ListTerms lists all clauses for management screens
func (s *TermsService) ListTerms(ctx context.Context, userID uuid.UUID, isSuperAdmin bool) ([]entity.TermsAndConditions, error) {
	return s.termsRepo.List(ctx, userID, isSuperAdmin)
}

// ActiveTerms returns the clauses printed on documents, served from
// cache when fresh.
func (s *TermsService) ActiveTerms(ctx context.Context, userID uuid.UUID) ([]entity.TermsAndConditions, error) {
	key := userID.String()
	if terms, ok := s.active.Get(key); ok {
		return terms, nil
	}

	terms, err := s.termsRepo.ListActive(ctx, userID)
	if err != nil {
		return nil, err
	}
	s.active.Set(key, terms)
	return terms, nil
}

// UpdateTermInput represents the input for updating a clause
type UpdateTermInput struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	IsSuperAdmin bool
	Content      *string
	SortOrder    *int
	IsActive     *bool
}

// UpdateTerm updates an existing clause
func (s *TermsService) UpdateTerm(ctx context.Context, input *UpdateTermInput) (*entity.TermsAndConditions, error) {
	term, err := s.termsRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if term == nil {
		return nil, apperror.NewNotFoundError("Term")
	}
	if !input.IsSuperAdmin && term.UserID != input.UserID {
		return nil, apperror.ErrForbidden
	}

	if input.Content != nil {
		term.Content = *input.Content
	}
	if input.SortOrder != nil {
		term.SortOrder = *input.SortOrder
	}
	if input.IsActive != nil {
		term.IsActive = *input.IsActive
	}

	if err := s.termsRepo.Update(ctx, term); err != nil {
		return nil, err
	}
	s.active.Invalidate(term.UserID.String())
	return term, nil
}

// DeleteTerm deletes a clause
func (s *TermsService) DeleteTerm(ctx context.Context, userID, id uuid.UUID, isSuperAdmin bool) error {
	term, err := s.termsRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if term == nil {
		return apperror.NewNotFoundError("Term")
	}
	if !isSuperAdmin && term.UserID != userID {
		return apperror.ErrForbidden
	}

	if err := s.termsRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.active.Invalidate(term.UserID.String())
	return nil
}
