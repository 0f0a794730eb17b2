package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/autocarcare/garage-api/internal/domain/entity"
)

// TermsRepository defines the interface for terms and conditions data operations
type TermsRepository interface {
	Create(ctx context.Context, term *entity.TermsAndConditions) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.TermsAndConditions, error)
	Update(ctx context.Context, term *entity.TermsAndConditions) error
	Delete(ctx context.Context, id uuid.UUID) error
	// List returns all clauses ordered by sort order
	List(ctx context.Context, userID uuid.UUID, skipUserFilter bool) ([]entity.TermsAndConditions, error)
	// ListActive returns only the clauses printed on documents
	ListActive(ctx context.Context, userID uuid.UUID) ([]entity.TermsAndConditions, error)
}
