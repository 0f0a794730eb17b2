package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/autocarcare/garage-api/internal/domain/entity"
	"github.com/autocarcare/garage-api/internal/domain/repository"
	"github.com/autocarcare/garage-api/pkg/apperror"
	"github.com/autocarcare/garage-api/pkg/document"
	"github.com/autocarcare/garage-api/pkg/email"
	"github.com/autocarcare/garage-api/pkg/gst"
)

const documentDateLayout = "02-01-2006"

// DocumentService renders invoices and quotations as PDFs and handles
// their delivery to customers.
type DocumentService struct {
	invoiceRepo   repository.InvoiceRepository
	quotationRepo repository.QuotationRepository
	userRepo      repository.UserRepository
	termsService  *TermsService
	emailService  *email.EmailService
}

// NewDocumentService creates a new document service
func NewDocumentService(
	invoiceRepo repository.InvoiceRepository,
	quotationRepo repository.QuotationRepository,
	userRepo repository.UserRepository,
	termsService *TermsService,
	emailService *email.EmailService,
) *DocumentService {
	return &DocumentService{
		invoiceRepo:   invoiceRepo,
		quotationRepo: quotationRepo,
		userRepo:      userRepo,
		termsService:  termsService,
		emailService:  emailService,
	}
}

// InvoicePDF renders an invoice and returns the PDF bytes with a
// download filename.
func (s *DocumentService) InvoicePDF(ctx context.Context, id uuid.UUID) ([]byte, string, error) {
	invoice, err := s.invoiceRepo.GetWithLines(ctx, id)
	if err != nil {
		return nil, "", err
	}
	if invoice == nil {
		return nil, "", apperror.NewNotFoundError("Invoice")
	}

	doc, err := s.buildInvoiceDocument(ctx, invoice)
	if err != nil {
		return nil, "", err
	}

	pdf, err := document.RenderInvoice(doc)
	if err != nil {
		return nil, "", err
	}
	return pdf, fmt.Sprintf("%s.pdf", invoice.InvoiceNumber), nil
}

// QuotationPDF renders a quotation and returns the PDF bytes with a
// download filename.
func (s *DocumentService) QuotationPDF(ctx context.Context, id uuid.UUID) ([]byte, string, error) {
	quotation, err := s.quotationRepo.GetWithLines(ctx, id)
	if err != nil {
		return nil, "", err
	}
	if quotation == nil {
		return nil, "", apperror.NewNotFoundError("Quotation")
	}

	doc, err := s.buildQuotationDocument(ctx, quotation)
	if err != nil {
		return nil, "", err
	}

	pdf, err := document.RenderQuotation(doc)
	if err != nil {
		return nil, "", err
	}
	return pdf, fmt.Sprintf("%s.pdf", quotation.QuotationNumber), nil
}

// EmailInvoiceInput represents the input for emailing an invoice
type EmailInvoiceInput struct {
	InvoiceID uuid.UUID
	// To overrides the customer's stored email address when set
	To string
}

// EmailInvoice renders an invoice and sends it to the customer as a
// PDF attachment.
func (s *DocumentService) EmailInvoice(ctx context.Context, input *EmailInvoiceInput) error {
	if !s.emailService.IsConfigured() {
		return apperror.NewBadRequestError("Email is not configured")
	}

	invoice, err := s.invoiceRepo.GetWithLines(ctx, input.InvoiceID)
	if err != nil {
		return err
	}
	if invoice == nil {
		return apperror.NewNotFoundError("Invoice")
	}

	to := input.To
	if to == "" && invoice.Customer != nil && invoice.Customer.Email != nil {
		to = *invoice.Customer.Email
	}
	if to == "" {
		return apperror.NewBadRequestError("Customer has no email address on file")
	}

	doc, err := s.buildInvoiceDocument(ctx, invoice)
	if err != nil {
		return err
	}
	pdf, err := document.RenderInvoice(doc)
	if err != nil {
		return err
	}

	return s.emailService.SendInvoiceEmail(email.InvoiceEmail{
		To:            to,
		CustomerName:  invoice.CustomerName,
		InvoiceNumber: invoice.InvoiceNumber,
		InvoiceDate:   invoice.InvoiceDate.Format(documentDateLayout),
		TotalAmount:   fmt.Sprintf("%.2f", invoice.TotalAmount),
		GarageName:    doc.Garage.Name,
		Filename:      fmt.Sprintf("%s.pdf", invoice.InvoiceNumber),
		PDF:           pdf,
	})
}

func (s *DocumentService) buildInvoiceDocument(ctx context.Context, invoice *entity.Invoice) (document.Document, error) {
	garage, err := s.garageParty(ctx, invoice.UserID)
	if err != nil {
		return document.Document{}, err
	}
	terms, err := s.termLines(ctx, invoice.UserID)
	if err != nil {
		return document.Document{}, err
	}

	doc := document.Document{
		Title:  "TAX INVOICE",
		Number: invoice.InvoiceNumber,
		Date:   invoice.InvoiceDate.Format(documentDateLayout),

		Garage: garage,
		Customer: document.Party{
			Name:    invoice.CustomerName,
			Address: deref(invoice.CustomerAddress),
			Phone:   deref(invoice.CustomerMobile),
			GSTIN:   deref(invoice.CustomerGSTIN),
		},
		CustomerAadhar: deref(invoice.CustomerAadhar),
		Vehicle: document.Vehicle{
			Number: deref(invoice.VehicleNo),
			Model:  deref(invoice.VehicleModel),
		},

		Parts:   document.BuildLines(invoicePartItems(invoice.Parts), invoice.GlobalDiscountPercent),
		Labours: document.BuildLines(invoiceLabourItems(invoice.Labours), invoice.GlobalDiscountPercent),

		AdvanceAmount: invoice.AdvanceAmount,
		PaymentStatus: invoice.PaymentStatus.String(),

		Terms: terms,
		Notes: deref(invoice.Notes),
	}
	if invoice.JobCardNumber != nil {
		doc.JobCardNumber = *invoice.JobCardNumber
	}
	if invoice.KmsDriven != nil {
		doc.Vehicle.KmsDriven = *invoice.KmsDriven
	}
	doc.Totals = lineTotals(doc.Parts, doc.Labours)
	return doc, nil
}

func (s *DocumentService) buildQuotationDocument(ctx context.Context, quotation *entity.Quotation) (document.Document, error) {
	garage, err := s.garageParty(ctx, quotation.UserID)
	if err != nil {
		return document.Document{}, err
	}
	terms, err := s.termLines(ctx, quotation.UserID)
	if err != nil {
		return document.Document{}, err
	}

	doc := document.Document{
		Title:  "QUOTATION",
		Number: quotation.QuotationNumber,
		Date:   quotation.QuotationDate.Format(documentDateLayout),

		Garage: garage,
		Customer: document.Party{
			Name:    quotation.CustomerName,
			Address: deref(quotation.CustomerAddress),
			Phone:   deref(quotation.CustomerMobile),
			GSTIN:   deref(quotation.CustomerGSTIN),
		},
		Vehicle: document.Vehicle{
			Number: deref(quotation.VehicleNo),
			Model:  deref(quotation.VehicleModel),
		},

		Parts:   document.BuildLines(quotationPartItems(quotation.Parts), quotation.GlobalDiscountPercent),
		Labours: document.BuildLines(quotationLabourItems(quotation.Labours), quotation.GlobalDiscountPercent),

		Terms: terms,
		Notes: deref(quotation.Notes),
	}
	doc.Totals = lineTotals(doc.Parts, doc.Labours)
	return doc, nil
}

// garageParty builds the letterhead block from the owner's profile.
func (s *DocumentService) garageParty(ctx context.Context, userID uuid.UUID) (document.Party, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return document.Party{}, err
	}
	if user == nil {
		return document.Party{}, apperror.NewNotFoundError("User")
	}

	party := document.Party{
		Name:    deref(user.GarageName),
		Address: deref(user.GarageAddress),
		Phone:   deref(user.GaragePhone),
		Email:   deref(user.GarageEmail),
		GSTIN:   deref(user.GarageGSTIN),
	}
	if party.Name == "" {
		party.Name = user.FirstName + " " + user.LastName
	}
	if party.Email == "" {
		party.Email = user.Email
	}
	return party, nil
}

func (s *DocumentService) termLines(ctx context.Context, userID uuid.UUID) ([]string, error) {
	terms, err := s.termsService.ActiveTerms(ctx, userID)
	if err != nil {
		return nil, err
	}
	lines := make([]string, 0, len(terms))
	for _, t := range terms {
		lines = append(lines, t.Content)
	}
	return lines, nil
}

func lineTotals(parts, labours []document.Line) gst.DocumentTotals {
	partResults := make([]gst.LineResult, 0, len(parts))
	for _, l := range parts {
		partResults = append(partResults, l.Result)
	}
	labourResults := make([]gst.LineResult, 0, len(labours))
	for _, l := range labours {
		labourResults = append(labourResults, l.Result)
	}
	return gst.AggregateDocument(partResults, labourResults)
}

func invoicePartItems(parts []entity.InvoicePart) []gst.LineItem {
	items := make([]gst.LineItem, 0, len(parts))
	for _, p := range parts {
		items = append(items, gst.LineItem{
			Name:            p.PartName,
			Quantity:        p.Quantity,
			UnitPrice:       p.UnitPrice,
			DiscountPercent: p.DiscountPercent,
			CGSTPercent:     p.CGSTPercent,
			SGSTPercent:     p.SGSTPercent,
			IGSTPercent:     p.IGSTPercent,
		})
	}
	return items
}

func invoiceLabourItems(labours []entity.InvoiceLabour) []gst.LineItem {
	items := make([]gst.LineItem, 0, len(labours))
	for _, l := range labours {
		items = append(items, gst.LineItem{
			Name:            l.Description,
			Quantity:        l.Quantity,
			UnitPrice:       l.UnitPrice,
			DiscountPercent: l.DiscountPercent,
			CGSTPercent:     l.CGSTPercent,
			SGSTPercent:     l.SGSTPercent,
			IGSTPercent:     l.IGSTPercent,
		})
	}
	return items
}

func quotationPartItems(parts []entity.QuotationPart) []gst.LineItem {
	items := make([]gst.LineItem, 0, len(parts))
	for _, p := range parts {
		items = append(items, gst.LineItem{
			Name:            p.PartName,
			Quantity:        p.Quantity,
			UnitPrice:       p.UnitPrice,
			DiscountPercent: p.DiscountPercent,
			CGSTPercent:     p.CGSTPercent,
			SGSTPercent:     p.SGSTPercent,
			IGSTPercent:     p.IGSTPercent,
		})
	}
	return items
}

func quotationLabourItems(labours []entity.QuotationLabour) []gst.LineItem {
	items := make([]gst.LineItem, 0, len(labours))
	for _, l := range labours {
		items = append(items, gst.LineItem{
			Name:            l.Description,
			Quantity:        l.Quantity,
			UnitPrice:       l.UnitPrice,
			DiscountPercent: l.DiscountPercent,
			CGSTPercent:     l.CGSTPercent,
			SGSTPercent:     l.SGSTPercent,
			IGSTPercent:     l.IGSTPercent,
		})
	}
	return items
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
