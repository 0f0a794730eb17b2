package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/autocarcare/garage-api/internal/domain/entity"
	"github.com/autocarcare/garage-api/internal/domain/enum"
	"github.com/autocarcare/garage-api/internal/domain/repository"
	"github.com/autocarcare/garage-api/pkg/apperror"
	"github.com/autocarcare/garage-api/pkg/gst"
	"github.com/autocarcare/garage-api/pkg/pagination"
)

// LineItemInput is one billed line as submitted by the client. Parts
// may reference a stocked spare part; labours never do.
type LineItemInput struct {
	SparePartID     *uuid.UUID
	Name            string
	Quantity        float64
	UnitPrice       float64
	DiscountPercent float64
	CGSTPercent     float64
	SGSTPercent     float64
	IGSTPercent     float64
}

func (in LineItemInput) toGST() gst.LineItem {
	return gst.LineItem{
		Name:            in.Name,
		Quantity:        in.Quantity,
		UnitPrice:       in.UnitPrice,
		DiscountPercent: in.DiscountPercent,
		CGSTPercent:     in.CGSTPercent,
		SGSTPercent:     in.SGSTPercent,
		IGSTPercent:     in.IGSTPercent,
	}
}

func toGSTItems(inputs []LineItemInput) []gst.LineItem {
	items := make([]gst.LineItem, 0, len(inputs))
	for _, in := range inputs {
		items = append(items, in.toGST())
	}
	return items
}

// InvoiceService handles invoice lifecycle and billing computation
type InvoiceService struct {
	invoiceRepo   repository.InvoiceRepository
	lineRepo      repository.InvoiceLineRepository
	customerRepo  repository.CustomerRepository
	sparePartRepo repository.SparePartRepository
}

// NewInvoiceService creates a new invoice service
func NewInvoiceService(
	invoiceRepo repository.InvoiceRepository,
	lineRepo repository.InvoiceLineRepository,
	customerRepo repository.CustomerRepository,
	sparePartRepo repository.SparePartRepository,
) *InvoiceService {
	return &InvoiceService{
		invoiceRepo:   invoiceRepo,
		lineRepo:      lineRepo,
		customerRepo:  customerRepo,
		sparePartRepo: sparePartRepo,
	}
}

// CreateInvoiceInput represents the input for creating an invoice
type CreateInvoiceInput struct {
	UserID        uuid.UUID
	CustomerID    *uuid.UUID
	InvoiceDate   time.Time
	JobCardNumber *string

	// Snapshot overrides; left empty they are copied from the customer
	CustomerName    string
	CustomerAddress *string
	CustomerMobile  *string
	CustomerAadhar  *string
	CustomerGSTIN   *string

	VehicleNo    *string
	VehicleModel *string
	KmsDriven    *int

	GlobalDiscountPercent float64
	AdvanceAmount         float64
	Notes                 *string

	Parts   []LineItemInput
	Labours []LineItemInput
}

// CreateInvoice numbers, computes and stores a new invoice with its
// lines, consuming spare part stock for lines that reference one.
func (s *InvoiceService) CreateInvoice(ctx context.Context, input *CreateInvoiceInput) (*entity.Invoice, error) {
	if len(input.Parts) == 0 && len(input.Labours) == 0 {
		return nil, apperror.NewBadRequestError("Invoice needs at least one part or labour line")
	}

	nextNum, err := s.invoiceRepo.GetNextSequenceNumber(ctx)
	if err != nil {
		return nil, err
	}
	number := fmt.Sprintf("INV-%06d", nextNum)

	if err := s.fillCustomerSnapshot(ctx, input); err != nil {
		return nil, err
	}

	invoice := &entity.Invoice{
		UserID:          input.UserID,
		CustomerID:      input.CustomerID,
		InvoiceNumber:   number,
		InvoiceDate:     input.InvoiceDate,
		JobCardNumber:   input.JobCardNumber,
		CustomerName:    input.CustomerName,
		CustomerAddress: input.CustomerAddress,
		CustomerMobile:  input.CustomerMobile,
		CustomerAadhar:  input.CustomerAadhar,
		CustomerGSTIN:   input.CustomerGSTIN,
		VehicleNo:       input.VehicleNo,
		VehicleModel:    input.VehicleModel,
		KmsDriven:       input.KmsDriven,

		GlobalDiscountPercent: input.GlobalDiscountPercent,
		AdvanceAmount:         input.AdvanceAmount,
		Notes:                 input.Notes,
	}
	applyTotals(invoice, input.Parts, input.Labours)

	if err := s.invoiceRepo.Create(ctx, invoice); err != nil {
		return nil, err
	}

	if err := s.createLines(ctx, invoice.ID, input.Parts, input.Labours); err != nil {
		return nil, err
	}
	if err := s.consumeStock(ctx, input.Parts); err != nil {
		return nil, err
	}

	return s.invoiceRepo.GetWithLines(ctx, invoice.ID)
}

// fillCustomerSnapshot copies missing snapshot fields from the linked
// customer record, if any.
func (s *InvoiceService) fillCustomerSnapshot(ctx context.Context, input *CreateInvoiceInput) error {
	if input.CustomerID == nil {
		if input.CustomerName == "" {
			return apperror.NewBadRequestError("Customer name is required for walk-in invoices")
		}
		return nil
	}

	customer, err := s.customerRepo.GetByID(ctx, *input.CustomerID)
	if err != nil {
		return err
	}
	if customer == nil {
		return apperror.NewNotFoundError("Customer")
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
	if input.CustomerAadhar == nil {
		input.CustomerAadhar = customer.AadharNo
	}
	if input.CustomerGSTIN == nil {
		input.CustomerGSTIN = customer.GSTIN
	}
	return nil
}

// applyTotals recomputes the stored money fields from the line inputs
func applyTotals(invoice *entity.Invoice, parts, labours []LineItemInput) {
	partResults := gst.CalculateLines(toGSTItems(parts), invoice.GlobalDiscountPercent)
	labourResults := gst.CalculateLines(toGSTItems(labours), invoice.GlobalDiscountPercent)
	totals := gst.AggregateDocument(partResults, labourResults)

	invoice.PartsSubtotal = totals.PartsSubtotal
	invoice.LaboursSubtotal = totals.LaboursSubtotal
	invoice.SubTotal = totals.SubTotal
	invoice.TotalAmount = totals.TotalAmount
	invoice.PaymentStatus = enum.FromAmounts(invoice.TotalAmount, invoice.AdvanceAmount)
}

func (s *InvoiceService) createLines(ctx context.Context, invoiceID uuid.UUID, parts, labours []LineItemInput) error {
	partRows := make([]entity.InvoicePart, 0, len(parts))
	for _, in := range parts {
		partRows = append(partRows, entity.InvoicePart{
			InvoiceID:       invoiceID,
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

	labourRows := make([]entity.InvoiceLabour, 0, len(labours))
	for _, in := range labours {
		labourRows = append(labourRows, entity.InvoiceLabour{
			InvoiceID:       invoiceID,
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

func (s *InvoiceService) consumeStock(ctx context.Context, parts []LineItemInput) error {
	for _, in := range parts {
		if in.SparePartID == nil {
			continue
		}
		if err := s.sparePartRepo.AdjustQuantity(ctx, *in.SparePartID, -in.Quantity); err != nil {
			return err
		}
	}
	return nil
}

func (s *InvoiceService) restoreStock(ctx context.Context, parts []entity.InvoicePart) error {
	for _, p := range parts {
		if p.SparePartID == nil {
			continue
		}
		if err := s.sparePartRepo.AdjustQuantity(ctx, *p.SparePartID, p.Quantity); err != nil {
			return err
		}
	}
	return nil
}

// GetInvoice retrieves an invoice with its lines
func (s *InvoiceService) GetInvoice(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	invoice, err := s.invoiceRepo.GetWithLines(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}
	return invoice, nil
}

// ListInvoicesInput represents the input for listing invoices
type ListInvoicesInput struct {
	UserID        uuid.UUID
	IsSuperAdmin  bool
	Pagination    *pagination.PaginationParams
	Search        string
	PaymentStatus *enum.PaymentStatus
	CustomerID    *uuid.UUID
	From          time.Time
	To            time.Time
}

// ListInvoices lists invoices with filtering
func (s *InvoiceService) ListInvoices(ctx context.Context, input *ListInvoicesInput) (*pagination.PaginatedResult[entity.Invoice], error) {
	params := &repository.InvoiceFilterParams{
		Pagination:     input.Pagination,
		Search:         input.Search,
		PaymentStatus:  input.PaymentStatus,
		CustomerID:     input.CustomerID,
		From:           input.From,
		To:             input.To,
		SkipUserFilter: input.IsSuperAdmin,
	}

	invoices, total, err := s.invoiceRepo.List(ctx, input.UserID, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(input.Pagination.Page, input.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(invoices, pag), nil
}

// UpdateInvoiceInput represents the input for updating an invoice
type UpdateInvoiceInput struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	IsSuperAdmin bool

	CustomerID    *uuid.UUID
	InvoiceDate   time.Time
	JobCardNumber *string

	CustomerName    string
	CustomerAddress *string
	CustomerMobile  *string
	CustomerAadhar  *string
	CustomerGSTIN   *string

	VehicleNo    *string
	VehicleModel *string
	KmsDriven    *int

	GlobalDiscountPercent float64
	AdvanceAmount         float64
	Notes                 *string

	Parts   []LineItemInput
	Labours []LineItemInput
}

// UpdateInvoice replaces an invoice's lines and recomputes its totals.
// The invoice number never changes.
func (s *InvoiceService) UpdateInvoice(ctx context.Context, input *UpdateInvoiceInput) (*entity.Invoice, error) {
	invoice, err := s.invoiceRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}
	if !input.IsSuperAdmin && invoice.UserID != input.UserID {
		return nil, apperror.ErrForbidden
	}
	if len(input.Parts) == 0 && len(input.Labours) == 0 {
		return nil, apperror.NewBadRequestError("Invoice needs at least one part or labour line")
	}

	// Return old stock before the new lines consume theirs.
	oldParts, err := s.lineRepo.GetPartsByInvoiceID(ctx, invoice.ID)
	if err != nil {
		return nil, err
	}
	if err := s.restoreStock(ctx, oldParts); err != nil {
		return nil, err
	}

	invoice.CustomerID = input.CustomerID
	invoice.InvoiceDate = input.InvoiceDate
	invoice.JobCardNumber = input.JobCardNumber
	invoice.CustomerName = input.CustomerName
	invoice.CustomerAddress = input.CustomerAddress
	invoice.CustomerMobile = input.CustomerMobile
	invoice.CustomerAadhar = input.CustomerAadhar
	invoice.CustomerGSTIN = input.CustomerGSTIN
	invoice.VehicleNo = input.VehicleNo
	invoice.VehicleModel = input.VehicleModel
	invoice.KmsDriven = input.KmsDriven
	invoice.GlobalDiscountPercent = input.GlobalDiscountPercent
	invoice.AdvanceAmount = input.AdvanceAmount
	invoice.Notes = input.Notes
	applyTotals(invoice, input.Parts, input.Labours)

	if err := s.invoiceRepo.Update(ctx, invoice); err != nil {
		return nil, err
	}

	// Delete existing lines and create new ones
	if err := s.lineRepo.DeleteByInvoiceID(ctx, invoice.ID); err != nil {
		return nil, err
	}
	if err := s.createLines(ctx, invoice.ID, input.Parts, input.Labours); err != nil {
		return nil, err
	}
	if err := s.consumeStock(ctx, input.Parts); err != nil {
		return nil, err
	}

	return s.invoiceRepo.GetWithLines(ctx, invoice.ID)
}

// RecordPaymentInput represents a payment against an invoice
type RecordPaymentInput struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	IsSuperAdmin bool
	Amount       float64
}

// RecordPayment adds a received amount to the invoice's advance and
// re-derives the payment status.
func (s *InvoiceService) RecordPayment(ctx context.Context, input *RecordPaymentInput) (*entity.Invoice, error) {
	invoice, err := s.invoiceRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}
	if !input.IsSuperAdmin && invoice.UserID != input.UserID {
		return nil, apperror.ErrForbidden
	}
	if input.Amount <= 0 {
		return nil, apperror.NewBadRequestError("Payment amount must be positive")
	}

	invoice.AdvanceAmount += input.Amount
	invoice.PaymentStatus = enum.FromAmounts(invoice.TotalAmount, invoice.AdvanceAmount)

	if err := s.invoiceRepo.Update(ctx, invoice); err != nil {
		return nil, err
	}
	return s.invoiceRepo.GetWithLines(ctx, invoice.ID)
}

// DeleteInvoice deletes an invoice and returns consumed stock
func (s *InvoiceService) DeleteInvoice(ctx context.Context, userID, id uuid.UUID, isSuperAdmin bool) error {
	invoice, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if invoice == nil {
		return apperror.NewNotFoundError("Invoice")
	}
	if !isSuperAdmin && invoice.UserID != userID {
		return apperror.ErrForbidden
	}

	oldParts, err := s.lineRepo.GetPartsByInvoiceID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.restoreStock(ctx, oldParts); err != nil {
		return err
	}

	if err := s.lineRepo.DeleteByInvoiceID(ctx, id); err != nil {
		return err
	}
	return s.invoiceRepo.Delete(ctx, id)
}
