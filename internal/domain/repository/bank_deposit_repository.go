package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/autocarcare/garage-api/internal/domain/entity"
	"github.com/autocarcare/garage-api/pkg/pagination"
)

// BankDepositRepository defines the interface for bank deposit data operations
type BankDepositRepository interface {
	Create(ctx context.Context, deposit *entity.BankDeposit) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.BankDeposit, error)
	Update(ctx context.Context, deposit *entity.BankDeposit) error
	Delete(ctx context.Context, id uuid.UUID) error
	// List filters by an optional inclusive date range; pass zero times
	// to skip the bound.
	List(ctx context.Context, userID uuid.UUID, params *pagination.PaginationParams, from, to time.Time, skipUserFilter bool) ([]entity.BankDeposit, int64, error)
	// SumBetween totals deposited amounts over an inclusive date range
	SumBetween(ctx context.Context, userID uuid.UUID, from, to time.Time, skipUserFilter bool) (float64, error)
}
