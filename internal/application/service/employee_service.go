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

// EmployeeService handles employee-related operations
type EmployeeService struct {
	employeeRepo repository.EmployeeRepository
}

// NewEmployeeService creates a new employee service
func NewEmployeeService(employeeRepo repository.EmployeeRepository) *EmployeeService {
	return &EmployeeService{employeeRepo: employeeRepo}
}

// CreateEmployeeInput represents the input for creating an employee
type CreateEmployeeInput struct {
	UserID      uuid.UUID
	Name        string
	MobileNo    *string
	Email       *string
	Address     *string
	AadharNo    *string
	Designation *string
	Salary      *float64
	JoinedAt    *time.Time
}

// CreateEmployee creates a new employee
func (s *EmployeeService) CreateEmployee(ctx context.Context, input *CreateEmployeeInput) (*entity.Employee, error) {
	employee := &entity.Employee{
		UserID:      input.UserID,
		Name:        input.Name,
		MobileNo:    input.MobileNo,
		Email:       input.Email,
		Address:     input.Address,
		AadharNo:    input.AadharNo,
		Designation: input.Designation,
		Salary:      input.Salary,
		JoinedAt:    input.JoinedAt,
	}

	if err := s.employeeRepo.Create(ctx, employee); err != nil {
		return nil, err
	}
	return employee, nil
}

// GetEmployee retrieves an employee by ID
func (s *EmployeeService) GetEmployee(ctx context.Context, id uuid.UUID) (*entity.Employee, error) {
	employee, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, apperror.NewNotFoundError("Employee")
	}
	return employee, nil
}

// ListEmployeesInput represents the input for listing employees
type ListEmployeesInput struct {
	UserID       uuid.UUID
	IsSuperAdmin bool
	Pagination   *pagination.PaginationParams
	Search       string
}

// ListEmployees lists employees with pagination and search
func (s *EmployeeService) ListEmployees(ctx context.Context, input *ListEmployeesInput) (*pagination.PaginatedResult[entity.Employee], error) {
	employees, total, err := s.employeeRepo.List(ctx, input.UserID, input.Pagination, input.Search, input.IsSuperAdmin)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(input.Pagination.Page, input.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(employees, pag), nil
}

// UpdateEmployeeInput represents the input for updating an employee
type UpdateEmployeeInput struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	IsSuperAdmin bool
	Name         *string
	MobileNo     *string
	Email        *string
	Address      *string
	AadharNo     *string
	Designation  *string
	Salary       *float64
	JoinedAt     *time.Time
}

// UpdateEmployee updates an existing employee
func (s *EmployeeService) UpdateEmployee(ctx context.Context, input *UpdateEmployeeInput) (*entity.Employee, error) {
	employee, err := s.employeeRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, apperror.NewNotFoundError("Employee")
	}
	if !input.IsSuperAdmin && employee.UserID != input.UserID {
		return nil, apperror.ErrForbidden
	}

	if input.Name != nil {
		employee.Name = *input.Name
	}
	if input.MobileNo != nil {
		employee.MobileNo = input.MobileNo
	}
	if input.Email != nil {
		employee.Email = input.Email
	}
	if input.Address != nil {
		employee.Address = input.Address
	}
	if input.AadharNo != nil {
		employee.AadharNo = input.AadharNo
	}
	if input.Designation != nil {
		employee.Designation = input.Designation
	}
	if input.Salary != nil {
		employee.Salary = input.Salary
	}
	if input.JoinedAt != nil {
		employee.JoinedAt = input.JoinedAt
	}

	if err := s.employeeRepo.Update(ctx, employee); err != nil {
		return nil, err
	}
	return employee, nil
}

// DeleteEmployee deletes an employee
func (s *EmployeeService) DeleteEmployee(ctx context.Context, userID, id uuid.UUID, isSuperAdmin bool) error {
	employee, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if employee == nil {
		return apperror.NewNotFoundError("Employee")
	}
	if !isSuperAdmin && employee.UserID != userID {
		return apperror.ErrForbidden
	}

	return s.employeeRepo.Delete(ctx, id)
}
