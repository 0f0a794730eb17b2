package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/autocarcare/garage-api/internal/domain/entity"
	"github.com/autocarcare/garage-api/internal/domain/repository"
	"github.com/autocarcare/garage-api/pkg/apperror"
	"github.com/autocarcare/garage-api/pkg/pagination"
)

// SparePartService handles spare part stock operations
type SparePartService struct {
	sparePartRepo repository.SparePartRepository
}

// NewSparePartService creates a new spare part service
func NewSparePartService(sparePartRepo repository.SparePartRepository) *SparePartService {
	return &SparePartService{sparePartRepo: sparePartRepo}
}

// CreateSparePartInput represents the input for creating a spare part
type CreateSparePartInput struct {
	UserID        uuid.UUID
	Name          string
	PartNumber    *string
	HSNCode       *string
	PurchasePrice float64
	SellingPrice  float64
	CGSTPercent   float64
	SGSTPercent   float64
	IGSTPercent   float64
	Quantity      float64
}

// CreateSparePart creates a new spare part
func (s *SparePartService) CreateSparePart(ctx context.Context, input *CreateSparePartInput) (*entity.SparePart, error) {
	if input.PartNumber != nil && *input.PartNumber != "" {
		existing, err := s.sparePartRepo.GetByPartNumber(ctx, *input.PartNumber)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, apperror.NewConflictError("Spare part with this part number already exists")
		}
	}

	part := &entity.SparePart{
		UserID:        input.UserID,
		Name:          input.Name,
		PartNumber:    input.PartNumber,
		HSNCode:       input.HSNCode,
		PurchasePrice: input.PurchasePrice,
		SellingPrice:  input.SellingPrice,
		CGSTPercent:   input.CGSTPercent,
		SGSTPercent:   input.SGSTPercent,
		IGSTPercent:   input.IGSTPercent,
		Quantity:      input.Quantity,
	}

	if err := s.sparePartRepo.Create(ctx, part); err != nil {
		return nil, err
	}
	return part, nil
}

// GetSparePart retrieves a spare part by ID
func (s *SparePartService) GetSparePart(ctx context.Context, id uuid.UUID) (*entity.SparePart, error) {
	part, err := s.sparePartRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if part == nil {
		return nil, apperror.NewNotFoundError("Spare part")
	}
	return part, nil
}

// ListSparePartsInput represents the input for listing spare parts
type ListSparePartsInput struct {
	UserID       uuid.UUID
	IsSuperAdmin bool
	Pagination   *pagination.PaginationParams
	Search       string
}

// ListSpareParts lists spare parts with pagination and search
func (s *SparePartService) ListSpareParts(ctx context.Context, input *ListSparePartsInput) (*pagination.PaginatedResult[entity.SparePart], error) {
	parts, total, err := s.sparePartRepo.List(ctx, input.UserID, input.Pagination, input.Search, input.IsSuperAdmin)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(input.Pagination.Page, input.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(parts, pag), nil
}

// UpdateSparePartInput represents the input for updating a spare part
type UpdateSparePartInput struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	IsSuperAdmin  bool
	Name          *string
	PartNumber    *string
	HSNCode       *string
	PurchasePrice *float64
	SellingPrice  *float64
	CGSTPercent   *float64
	SGSTPercent   *float64
	IGSTPercent   *float64
	Quantity      *float64
}

// UpdateSparePart updates an existing spare part
func (s *SparePartService) UpdateSparePart(ctx context.Context, input *UpdateSparePartInput) (*entity.SparePart, error) {
	part, err := s.sparePartRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if part == nil {
		return nil, apperror.NewNotFoundError("Spare part")
	}
	if !input.IsSuperAdmin && part.UserID != input.UserID {
		return nil, apperror.ErrForbidden
	}

	if input.Name != nil {
		part.Name = *input.Name
	}
	if input.PartNumber != nil {
		part.PartNumber = input.PartNumber
	}
	if input.HSNCode != nil {
		part.HSNCode = input.HSNCode
	}
	if input.PurchasePrice != nil {
		part.PurchasePrice = *input.PurchasePrice
	}
	if input.SellingPrice != nil {
		part.SellingPrice = *input.SellingPrice
	}
	if input.CGSTPercent != nil {
		part.CGSTPercent = *input.CGSTPercent
	}
	if input.SGSTPercent != nil {
		part.SGSTPercent = *input.SGSTPercent
	}
	if input.IGSTPercent != nil {
		part.IGSTPercent = *input.IGSTPercent
	}
	if input.Quantity != nil {
		part.Quantity = *input.Quantity
	}

	if err := s.sparePartRepo.Update(ctx, part); err != nil {
		return nil, err
	}
	return part, nil
}

// DeleteSparePart deletes a spare part
func (s *SparePartService) DeleteSparePart(ctx context.Context, userID, id uuid.UUID, isSuperAdmin bool) error {
	part, err := s.sparePartRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if part == nil {
		return apperror.NewNotFoundError("Spare part")
	}
	if !isSuperAdmin && part.UserID != userID {
		return apperror.ErrForbidden
	}

	return s.sparePartRepo.Delete(ctx, id)
}
