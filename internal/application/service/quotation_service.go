package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/autocarcare/garage-api/internal/domain/entity"
	"github.com/autocarcare/garage-api/internal/domain/repository"
	"github.com/autocarcare/garage-api/pkg/apperror"
	"github.com/autocarcare/garage-api/pkg/gst"
	"github.com/autocarcare/garage-api/pkg/pagination"
)

// QuotationService handles quotation-related operations
type QuotationService struct {
	quotationRepo repository.QuotationRepository
	lineRepo      repository.QuotationLineRepository
	customerRepo  repository.CustomerRepository
}

// NewQuotationService creates a new quotation service
func NewQuotationService(
	quotationRepo repository.QuotationRepository,
	lineRepo repository.QuotationLineRepository,
	customerRepo repository.CustomerRepository,
) *QuotationService {
	return &QuotationService{
		quotationRepo: quotationRepo,
		lineRepo:      lineRepo,
		customerRepo:  customerRepo,
	}
}

// CreateQuotationInput represents the input for creating a quotation
type CreateQuotationInput struct {
	UserID        uuid.UUID
	CustomerID    *uuid.UUID
	QuotationDate time.Time

	CustomerName    string
	CustomerAddress *string
	CustomerMobile  *string
	CustomerGSTIN   *string

	VehicleNo    *string
	VehicleModel *string

	GlobalDiscountPercent float64
	ValidUntil            *time.Time
	Notes                 *string

	Parts   []LineItemInput
	Labours []LineItemInput
}

// CreateQuotation numbers, computes and stores a new quotation
func (s *QuotationService) CreateQuotation(ctx context.Context, input *CreateQuotationInput) (*entity.Quotation, error) {
	if len(input.Parts) == 0 && len(input.Labours) == 0 {
		return nil, apperror.NewBadRequestError("Quotation needs at least one part or labour line")
	}

	nextNum, err := s.quotationRepo.GetNextSequenceNumber(ctx)
	if err != nil {
		return nil, err
	}
	number := fmt.Sprintf("QTN-%06d", nextNum)

	if input.CustomerID != nil {
		customer, err := s.customerRepo.GetByID(ctx, *input.CustomerID)
		if err != nil {
			return nil, err
		}
		if customer == nil {
			return nil, apperror.NewNotFoundError("Customer")
		}
		if input.CustomerName == "" {
			input.CustomerName = customer.Name
		}
		if input.CustomerAddress == nil {
			input.CustomerAddress = customer.Address
		}
		if input.CustomerMobile == nil {
			input.CustomerMobile = customer.MobileNo
		}
		if input.CustomerGSTIN == nil {
			input.CustomerGSTIN = customer.GSTIN
		}
	} else if input.CustomerName == "" {
		return nil, apperror.NewBadRequestError("Customer name is required for walk-in quotations")
	}

	quotation := &entity.Quotation{
		UserID:          input.UserID,
		CustomerID:      input.CustomerID,
		QuotationNumber: number,
		QuotationDate:   input.QuotationDate,
		CustomerName:    input.CustomerName,
		CustomerAddress: input.CustomerAddress,
		CustomerMobile:  input.CustomerMobile,
		CustomerGSTIN:   input.CustomerGSTIN,
		VehicleNo:       input.VehicleNo,
		VehicleModel:    input.VehicleModel,

		GlobalDiscountPercent: input.GlobalDiscountPercent,
		ValidUntil:            input.ValidUntil,
		Notes:                 input.Notes,
	}
	applyQuotationTotals(quotation, input.Parts, input.Labours)

	if err := s.quotationRepo.Create(ctx, quotation); err != nil {
		return nil, err
	}
	if err := s.createLines(ctx, quotation.ID, input.Parts, input.Labours); err != nil {
		return nil, err
	}

	return s.quotationRepo.GetWithLines(ctx, quotation.ID)
}

func applyQuotationTotals(quotation *entity.Quotation, parts, labours []LineItemInput) {
	partResults := gst.CalculateLines(toGSTItems(parts), quotation.GlobalDiscountPercent)
	labourResults := gst.CalculateLines(toGSTItems(labours), quotation.GlobalDiscountPercent)
	totals := gst.AggregateDocument(partResults, labourResults)

	quotation.PartsSubtotal = totals.PartsSubtotal
	quotation.LaboursSubtotal = totals.LaboursSubtotal
	quotation.SubTotal = totals.SubTotal
	quotation.TotalAmount = totals.TotalAmount
}

func (s *QuotationService) createLines(ctx context.Context, quotationID uuid.UUID, parts, labours []LineItemInput) error {
	partRows := make([]entity.QuotationPart, 0, len(parts))
	for _, in := range parts {
		partRows = append(partRows, entity.QuotationPart{
			QuotationID:     quotationID,
			SparePartID:     in.SparePartID,
			PartName:        in.Name,
			Quantity:        in.Quantity,
			UnitPrice:       in.UnitPrice,
			DiscountPercent: in.DiscountPercent,
			CGSTPercent:     in.CGSTPercent,
			SGSTPercent:     in.SGSTPercent,
			IGSTPercent:     in.IGSTPercent,
		})
	}
	if err := s.lineRepo.CreateParts(ctx, partRows); err != nil {
		return err
	}

	labourRows := make([]entity.QuotationLabour, 0, len(labours))
	for _, in := range labours {
		labourRows = append(labourRows, entity.QuotationLabour{
			QuotationID:     quotationID,
			Description:     in.Name,
			Quantity:        in.Quantity,
			UnitPrice:       in.UnitPrice,
			DiscountPercent: in.DiscountPercent,
			CGSTPercent:     in.CGSTPercent,
			SGSTPercent:     in.SGSTPercent,
			IGSTPercent:     in.IGSTPercent,
		})
	}
	return s.lineRepo.CreateLabours(ctx, labourRows)
}

// GetQuotation retrieves a quotation with its lines
func (s *QuotationService) GetQuotation(ctx context.Context, id uuid.UUID) (*entity.Quotation, error) {
	quotation, err := s.quotationRepo.GetWithLines(ctx, id)
	if err != nil {
		return nil, err
	}
	if quotation == nil {
		return nil, apperror.NewNotFoundError("Quotation")
	}
	return quotation, nil
}

// ListQuotationsInput represents the input for listing quotations
type ListQuotationsInput struct {
	UserID       uuid.UUID
	IsSuperAdmin bool
	Pagination   *pagination.PaginationParams
	Search       string
	CustomerID   *uuid.UUID
}

// ListQuotations lists quotations with filtering
func (s *QuotationService) ListQuotations(ctx context.Context, input *ListQuotationsInput) (*pagination.PaginatedResult[entity.Quotation], error) {
	params := &repository.QuotationFilterParams{
		Pagination:     input.Pagination,
		Search:         input.Search,
		CustomerID:     input.CustomerID,
		SkipUserFilter: input.IsSuperAdmin,
	}

	quotations, total, err := s.quotationRepo.List(ctx, input.UserID, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(input.Pagination.Page, input.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(quotations, pag), nil
}

// UpdateQuotationInput represents the input for updating a quotation
type UpdateQuotationInput struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	IsSuperAdmin bool

	CustomerID    *uuid.UUID
	QuotationDate time.Time

	CustomerName    string
	CustomerAddress *string
	CustomerMobile  *string
	CustomerGSTIN   *string

	VehicleNo    *string
	VehicleModel *string

	GlobalDiscountPercent float64
	ValidUntil            *time.Time
	Notes                 *string

	Parts   []LineItemInput
	Labours []LineItemInput
}

// UpdateQuotation replaces a quotation's lines and recomputes totals
func (s *QuotationService) UpdateQuotation(ctx context.Context, input *UpdateQuotationInput) (*entity.Quotation, error) {
	quotation, err := s.quotationRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if quotation == nil {
		return nil, apperror.NewNotFoundError("Quotation")
	}
	if !input.IsSuperAdmin && quotation.UserID != input.UserID {
		return nil, apperror.ErrForbidden
	}
	if len(input.Parts) == 0 && len(input.Labours) == 0 {
		return nil, apperror.NewBadRequestError("Quotation needs at least one part or labour line")
	}

	quotation.CustomerID = input.CustomerID
	quotation.QuotationDate = input.QuotationDate
	quotation.CustomerName = input.CustomerName
	quotation.CustomerAddress = input.CustomerAddress
	quotation.CustomerMobile = input.CustomerMobile
	quotation.CustomerGSTIN = input.CustomerGSTIN
	quotation.VehicleNo = input.VehicleNo
	quotation.VehicleModel = input.VehicleModel
	quotation.GlobalDiscountPercent = input.GlobalDiscountPercent
	quotation.ValidUntil = input.ValidUntil
	quotation.Notes = input.Notes
	applyQuotationTotals(quotation, input.Parts, input.Labours)

	if err := s.quotationRepo.Update(ctx, quotation); err != nil {
		return nil, err
	}

	// Delete existing lines and create new ones
	if err := s.lineRepo.DeleteByQuotationID(ctx, quotation.ID); err != nil {
		return nil, err
	}
	if err := s.createLines(ctx, quotation.ID, input.Parts, input.Labours); err != nil {
		return nil, err
	}

	return s.quotationRepo.GetWithLines(ctx, quotation.ID)
}

// DeleteQuotation deletes a quotation
func (s *QuotationService) DeleteQuotation(ctx context.Context, userID, id uuid.UUID, isSuperAdmin bool) error {
	quotation, err := s.quotationRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if quotation == nil {
		return apperror.NewNotFoundError("Quotation")
	}
	if !isSuperAdmin && quotation.UserID != userID {
		return apperror.ErrForbidden
	}

	if err := s.lineRepo.DeleteByQuotationID(ctx, id); err != nil {
		return err
	}
	return s.quotationRepo.Delete(ctx, id)
}
