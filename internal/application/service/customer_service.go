package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/autocarcare/garage-api/internal/domain/entity"
	"github.com/autocarcare/garage-api/internal/domain/repository"
	"github.com/autocarcare/garage-api/pkg/apperror"
	"github.com/autocarcare/garage-api/pkg/pagination"
)

// CustomerService handles customer-related operations
type CustomerService struct {
	customerRepo repository.CustomerRepository
}

// NewCustomerService creates a new customer service
func NewCustomerService(customerRepo repository.CustomerRepository) *CustomerService {
	return &CustomerService{customerRepo: customerRepo}
}

// CreateCustomerInput represents the input for creating a customer
type CreateCustomerInput struct {
	UserID   uuid.UUID
	Name     string
	Address  *string
	MobileNo *string
	AadharNo *string
	GSTIN    *string
	Email    *string
}

// CreateCustomer creates a new customer
func (s *CustomerService) CreateCustomer(ctx context.Context, input *CreateCustomerInput) (*entity.Customer, error) {
	if input.MobileNo != nil && *input.MobileNo != "" {
		existing, err := s.customerRepo.GetByMobile(ctx, *input.MobileNo)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, apperror.NewConflictError("Customer with this mobile number already exists")
		}
	}

	customer := &entity.Customer{
		UserID:   input.UserID,
		Name:     input.Name,
		Address:  input.Address,
		MobileNo: input.MobileNo,
		AadharNo: input.AadharNo,
		GSTIN:    input.GSTIN,
		Email:    input.Email,
	}

	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// GetCustomer retrieves a customer by ID
func (s *CustomerService) GetCustomer(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}
	return customer, nil
}

// ListCustomersInput represents the input for listing customers
type ListCustomersInput struct {
	UserID       uuid.UUID
	IsSuperAdmin bool
	Pagination   *pagination.PaginationParams
	Search       string
}

// ListCustomers lists customers with pagination and search
func (s *CustomerService) ListCustomers(ctx context.Context, input *ListCustomersInput) (*pagination.PaginatedResult[entity.Customer], error) {
	customers, total, err := s.customerRepo.List(ctx, input.UserID, input.Pagination, input.Search, input.IsSuperAdmin)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(input.Pagination.Page, input.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(customers, pag), nil
}

// UpdateCustomerInput represents the input for updating a customer
type UpdateCustomerInput struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	IsSuperAdmin bool
	Name         *string
	Address      *string
	MobileNo     *string
	AadharNo     *string
	GSTIN        *string
	Email        *string
}

// UpdateCustomer updates an existing customer
func (s *CustomerService) UpdateCustomer(ctx context.Context, input *UpdateCustomerInput) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}
	if !input.IsSuperAdmin && customer.UserID != input.UserID {
		return nil, apperror.ErrForbidden
	}

	if input.Name != nil {
		customer.Name = *input.Name
	}
	if input.Address != nil {
		customer.Address = input.Address
	}
	if input.MobileNo != nil {
		customer.MobileNo = input.MobileNo
	}
	if input.AadharNo != nil {
		customer.AadharNo = input.AadharNo
	}
	if input.GSTIN != nil {
		customer.GSTIN = input.GSTIN
	}
	if input.Email != nil {
		customer.Email = input.Email
	}

	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// DeleteCustomer deletes a customer
func (s *CustomerService) DeleteCustomer(ctx context.Context, userID, id uuid.UUID, isSuperAdmin bool) error {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if customer == nil {
		return apperror.NewNotFoundError("Customer")
	}
	if !isSuperAdmin && customer.UserID != userID {
		return apperror.ErrForbidden
	}

	return s.customerRepo.Delete(ctx, id)
}
