package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/autocarcare/garage-api/internal/domain/entity"
	"github.com/autocarcare/garage-api/internal/domain/repository"
	"github.com/autocarcare/garage-api/pkg/apperror"
	"github.com/autocarcare/garage-api/pkg/pagination"
)

// BankDepositService handles bank deposit bookkeeping
type BankDepositService struct {
	depositRepo repository.BankDepositRepository
}

// NewBankDepositService creates a new bank deposit service
func NewBankDepositService(depositRepo repository.BankDepositRepository) *BankDepositService {
	return &BankDepositService{depositRepo: depositRepo}
}

// CreateBankDepositInput represents the input for recording a deposit
type CreateBankDepositInput struct {
	UserID        uuid.UUID
	DepositDate   time.Time
	Amount        float64
	BankName      string
	AccountNumber *string
	Mode          *string
	ReferenceNo   *string
	Notes         *string
}

// CreateBankDeposit records a new deposit
func (s *BankDepositService) CreateBankDeposit(ctx context.Context, input *CreateBankDepositInput) (*entity.BankDeposit, error) {
	if input.Amount <= 0 {
		return nil, apperror.NewBadRequestError("Deposit amount must be positive")
	}

	deposit := &entity.BankDeposit{
		UserID:        input.UserID,
		DepositDate:   input.DepositDate,
		Amount:        input.Amount,
		BankName:      input.BankName,
		AccountNumber: input.AccountNumber,
		Mode:          input.Mode,
		ReferenceNo:   input.ReferenceNo,
		Notes:         input.Notes,
	}

	if err := s.depositRepo.Create(ctx, deposit); err != nil {
		return nil, err
	}
	return deposit, nil
}

// GetBankDeposit retrieves a deposit by ID
func (s *BankDepositService) GetBankDeposit(ctx context.Context, id uuid.UUID) (*entity.BankDeposit, error) {
	deposit, err := s.depositRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if deposit == nil {
		return nil, apperror.NewNotFoundError("Bank deposit")
	}
	return deposit, nil
}

// ListBankDepositsInput represents the input for listing deposits
type ListBankDepositsInput struct {
	UserID       uuid.UUID
	IsSuperAdmin bool
	Pagination   *pagination.PaginationParams
	From         time.Time
	To           time.Time
}

// ListBankDepositsOutput carries the page plus the period total
type ListBankDepositsOutput struct {
	Result      *pagination.PaginatedResult[entity.BankDeposit]
	PeriodTotal float64
}

// ListBankDeposits lists deposits over an optional date range
func (s *BankDepositService) ListBankDeposits(ctx context.Context, input *ListBankDepositsInput) (*ListBankDepositsOutput, error) {
	deposits, total, err := s.depositRepo.List(ctx, input.UserID, input.Pagination, input.From, input.To, input.IsSuperAdmin)
	if err != nil {
		return nil, err
	}

	periodTotal, err := s.depositRepo.SumBetween(ctx, input.UserID, input.From, input.To, input.IsSuperAdmin)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(input.Pagination.Page, input.Pagination.PerPage, total)
	return &ListBankDepositsOutput{
		Result:      pagination.NewPaginatedResult(deposits, pag),
		PeriodTotal: periodTotal,
	}, nil
}

// UpdateBankDepositInput represents the input for updating a deposit
type UpdateBankDepositInput struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	IsSuperAdmin  bool
	DepositDate   *time.Time
	Amount        *float64
	BankName      *string
	AccountNumber *string
	Mode          *string
	ReferenceNo   *string
	Notes         *string
}

// UpdateBankDeposit updates an existing deposit
func (s *BankDepositService) UpdateBankDeposit(ctx context.Context, input *UpdateBankDepositInput) (*entity.BankDeposit, error) {
	deposit, err := s.depositRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if deposit == nil {
		return nil, apperror.NewNotFoundError("Bank deposit")
	}
	if !input.IsSuperAdmin && deposit.UserID != input.UserID {
		return nil, apperror.ErrForbidden
	}

	if input.DepositDate != nil {
		deposit.DepositDate = *input.DepositDate
	}
	if input.Amount != nil {
		if *input.Amount <= 0 {
			return nil, apperror.NewBadRequestError("Deposit amount must be positive")
		}
		deposit.Amount = *input.Amount
	}
	if input.BankName != nil {
		deposit.BankName = *input.BankName
	}
	if input.AccountNumber != nil {
		deposit.AccountNumber = input.AccountNumber
	}
	if input.Mode != nil {
		deposit.Mode = input.Mode
	}
	if input.ReferenceNo != nil {
		deposit.ReferenceNo = input.ReferenceNo
	}
	if input.Notes != nil {
		deposit.Notes = input.Notes
	}

	if err := s.depositRepo.Update(ctx, deposit); err != nil {
		return nil, err
	}
	return deposit, nil
}

// DeleteBankDeposit deletes a deposit
func (s *BankDepositService) DeleteBankDeposit(ctx context.Context, userID, id uuid.UUID, isSuperAdmin bool) error {
	deposit, err := s.depositRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if deposit == nil {
		return apperror.NewNotFoundError("Bank deposit")
	}
	if !isSuperAdmin && deposit.UserID != userID {
		return apperror.ErrForbidden
	}

	return s.depositRepo.Delete(ctx, id)
}
