package service

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/autocarcare/garage-api/internal/domain/entity"
	"github.com/autocarcare/garage-api/internal/domain/repository"
	"github.com/autocarcare/garage-api/pkg/apperror"
	"github.com/autocarcare/garage-api/pkg/gst"
	"github.com/autocarcare/garage-api/pkg/printer"
)

// PrinterService handles receipt formatting and thermal printing.
type PrinterService struct {
	printer     printer.Printer
	invoiceRepo repository.InvoiceRepository
	userRepo    repository.UserRepository
	printerType string
}

// NewPrinterService creates a new printer service.
func NewPrinterService(
	p printer.Printer,
	invoiceRepo repository.InvoiceRepository,
	userRepo repository.UserRepository,
	printerType string,
) *PrinterService {
	return &PrinterService{
		printer:     p,
		invoiceRepo: invoiceRepo,
		userRepo:    userRepo,
		printerType: printerType,
	}
}

// PrinterStatus returns the current printer status information.
type PrinterStatus struct {
	Configured bool   `json:"configured"`
	Connected  bool   `json:"connected"`
	Type       string `json:"type"`
}

// GetStatus returns printer connection status.
func (s *PrinterService) GetStatus() *PrinterStatus {
	return &PrinterStatus{
		Configured: s.printerType != "none" && s.printerType != "",
		Connected:  s.printer.IsConnected(),
		Type:       s.printerType,
	}
}

// TestPrint sends a test page to the printer.
// Returns the receipt data so the handler can return it as JSON when printer is disabled.
func (s *PrinterService) TestPrint() (*entity.Receipt, error) {
	receipt := &entity.Receipt{
		Header: entity.ReceiptHeader{
			GarageName: "PRINTER TEST",
			Address:    "Test Address",
			Phone:      "+91 00000 00000",
		},
		InvoiceNo: "TEST-001",
		Date:      "Test Date",
		Items: []entity.ReceiptItem{
			{Name: "Test Item 1", Quantity: 1, UnitPrice: 10.00, Total: 10.00},
			{Name: "Test Item 2", Quantity: 2, UnitPrice: 5.00, Total: 10.00},
		},
		SubTotal: 20.00,
		TotalTax: 0.00,
		Total:    20.00,
		Paid:     20.00,
		Due:      0.00,
	}

	data := FormatReceipt(receipt)
	if err := s.printer.Print(data); err != nil {
		return receipt, fmt.Errorf("test print failed: %w", err)
	}

	return receipt, nil
}

// PrintInvoiceReceipt fetches an invoice (with lines) and prints its
// counter receipt.
func (s *PrinterService) PrintInvoiceReceipt(ctx context.Context, invoiceID uuid.UUID) (*entity.Receipt, error) {
	invoice, err := s.invoiceRepo.GetWithLines(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}

	receipt := s.buildInvoiceReceipt(ctx, invoice)

	data := FormatReceipt(receipt)
	if err := s.printer.Print(data); err != nil {
		log.Printf("Printer error (invoice %s): %v", invoiceID, err)
		return receipt, fmt.Errorf("failed to print receipt: %w", err)
	}

	return receipt, nil
}

func (s *PrinterService) buildInvoiceReceipt(ctx context.Context, invoice *entity.Invoice) *entity.Receipt {
	receipt := &entity.Receipt{
		Header:        entity.ReceiptHeader{GarageName: "Auto Car Care Point"},
		InvoiceNo:     invoice.InvoiceNumber,
		Date:          invoice.InvoiceDate.Format("02-01-2006"),
		Customer:      invoice.CustomerName,
		SubTotal:      invoice.SubTotal,
		Total:         invoice.TotalAmount,
		Paid:          invoice.AdvanceAmount,
		Due:           invoice.AmountDue(),
		PaymentStatus: invoice.PaymentStatus.String(),
	}
	if invoice.VehicleNo != nil {
		receipt.VehicleNo = *invoice.VehicleNo
	}
	if invoice.JobCardNumber != nil {
		receipt.JobCardNo = *invoice.JobCardNumber
	}

	// Letterhead comes from the owner's garage profile when set.
	if user, err := s.userRepo.GetByID(ctx, invoice.UserID); err == nil && user != nil {
		if user.GarageName != nil && *user.GarageName != "" {
			receipt.Header.GarageName = *user.GarageName
		}
		if user.GarageAddress != nil {
			receipt.Header.Address = *user.GarageAddress
		}
		if user.GaragePhone != nil {
			receipt.Header.Phone = *user.GaragePhone
		}
		if user.GarageGSTIN != nil {
			receipt.Header.GSTIN = *user.GarageGSTIN
		}
	}

	for _, p := range invoice.Parts {
		result := gst.CalculateLine(gst.LineItem{
			Quantity:        p.Quantity,
			UnitPrice:       p.UnitPrice,
			DiscountPercent: p.DiscountPercent,
			CGSTPercent:     p.CGSTPercent,
			SGSTPercent:     p.SGSTPercent,
			IGSTPercent:     p.IGSTPercent,
		}, invoice.GlobalDiscountPercent)
		receipt.Items = append(receipt.Items, entity.ReceiptItem{
			Name:      p.PartName,
			Quantity:  p.Quantity,
			UnitPrice: p.UnitPrice,
			Total:     result.TaxableAmount,
		})
		receipt.TotalTax += result.CGSTAmount + result.SGSTAmount + result.IGSTAmount
	}
	for _, l := range invoice.Labours {
		result := gst.CalculateLine(gst.LineItem{
			Quantity:        l.Quantity,
			UnitPrice:       l.UnitPrice,
			DiscountPercent: l.DiscountPercent,
			CGSTPercent:     l.CGSTPercent,
			SGSTPercent:     l.SGSTPercent,
			IGSTPercent:     l.IGSTPercent,
		}, invoice.GlobalDiscountPercent)
		receipt.Items = append(receipt.Items, entity.ReceiptItem{
			Name:      l.Description,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
			Total:     result.TaxableAmount,
		})
		receipt.TotalTax += result.CGSTAmount + result.SGSTAmount + result.IGSTAmount
	}

	return receipt
}

// FormatReceipt converts a Receipt into ESC/POS bytes.
func FormatReceipt(r *entity.Receipt) []byte {
	doc := printer.NewDocument(32) // 58mm paper = 32 chars

	// Header
	doc.SetAlign(printer.AlignCenter).
		SetBold(true).
		SetFontSize(printer.FontDouble).
		Text(r.Header.GarageName).
		SetFontSize(printer.FontNormal).
		SetBold(false)

	if r.Header.Address != "" {
		doc.Text(r.Header.Address)
	}
	if r.Header.Phone != "" {
		doc.Text(r.Header.Phone)
	}
	if r.Header.GSTIN != "" {
		doc.TextF("GSTIN: %s", r.Header.GSTIN)
	}

	doc.SetAlign(printer.AlignLeft).
		Separator('-')

	// Invoice info
	doc.KeyValue("Invoice:", r.InvoiceNo).
		KeyValue("Date:", r.Date)

	if r.Customer != "" {
		doc.KeyValue("Customer:", r.Customer)
	}
	if r.VehicleNo != "" {
		doc.KeyValue("Vehicle:", r.VehicleNo)
	}
	if r.JobCardNo != "" {
		doc.KeyValue("Job Card:", r.JobCardNo)
	}

	doc.Separator('-')

	// Items
	for _, item := range r.Items {
		doc.ItemLine(item.Quantity, item.Name, fmt.Sprintf("%.2f", item.Total))
		if item.Quantity > 1 {
			doc.TextF("  @ %.2f each", item.UnitPrice)
		}
	}

	doc.Separator('-')

	// Totals
	doc.KeyValue("Subtotal:", fmt.Sprintf("%.2f", r.SubTotal))
	if r.TotalTax > 0 {
		doc.KeyValue("GST:", fmt.Sprintf("%.2f", r.TotalTax))
	}
	doc.SetBold(true).
		KeyValue("TOTAL:", fmt.Sprintf("%.2f", r.Total)).
		SetBold(false)

	if r.Paid > 0 {
		doc.KeyValue("Paid:", fmt.Sprintf("%.2f", r.Paid))
	}
	if r.Due > 0 {
		doc.KeyValue("Due:", fmt.Sprintf("%.2f", r.Due))
	}
	if r.PaymentStatus != "" {
		doc.KeyValue("Status:", r.PaymentStatus)
	}

	doc.Separator('-')

	// Footer
	doc.SetAlign(printer.AlignCenter).
		LineFeed().
		Text("Thank you for your business!").
		LineFeed().
		SetAlign(printer.AlignLeft)

	doc.FeedLines(3).
		PartialCut()

	return doc.Bytes()
}
