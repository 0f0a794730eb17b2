package service

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/autocarcare/garage-api/internal/domain/entity"
	"github.com/autocarcare/garage-api/internal/domain/repository"
	"github.com/autocarcare/garage-api/pkg/export"
	"github.com/autocarcare/garage-api/pkg/gst"
)

const reportDateLayout = "02-01-2006"

// ReportService builds GST compliance reports over invoice data
type ReportService struct {
	invoiceRepo repository.InvoiceRepository
}

// NewReportService creates a new report service
func NewReportService(invoiceRepo repository.InvoiceRepository) *ReportService {
	return &ReportService{invoiceRepo: invoiceRepo}
}

// SlabReportInput selects the invoices included in a report
type SlabReportInput struct {
	UserID       uuid.UUID
	IsSuperAdmin bool
	From         time.Time
	To           time.Time
}

// SlabReportOutput is the computed report plus its grand total row
type SlabReportOutput struct {
	Rows       []gst.ReportRow `json:"rows"`
	GrandTotal gst.ReportRow   `json:"grand_total"`
	Period     string          `json:"period"`
}

// BuildSlabReport merges every invoice line in the period into one row
// per invoice with per-slab tax buckets.
func (s *ReportService) BuildSlabReport(ctx context.Context, input *SlabReportInput) (*SlabReportOutput, error) {
	invoices, err := s.invoiceRepo.ListBetween(ctx, input.UserID, input.From, input.To, input.IsSuperAdmin)
	if err != nil {
		return nil, err
	}

	builder := gst.NewSlabReportBuilder()
	for _, invoice := range invoices {
		header := reportHeader(invoice)
		for _, part := range invoice.Parts {
			builder.Add(header, gst.LineItem{
				Name:            part.PartName,
				Quantity:        part.Quantity,
				UnitPrice:       part.UnitPrice,
				DiscountPercent: part.DiscountPercent,
				CGSTPercent:     part.CGSTPercent,
				SGSTPercent:     part.SGSTPercent,
				IGSTPercent:     part.IGSTPercent,
			}, invoice.GlobalDiscountPercent)
		}
		for _, labour := range invoice.Labours {
			builder.Add(header, gst.LineItem{
				Name:            labour.Description,
				Quantity:        labour.Quantity,
				UnitPrice:       labour.UnitPrice,
				DiscountPercent: labour.DiscountPercent,
				CGSTPercent:     labour.CGSTPercent,
				SGSTPercent:     labour.SGSTPercent,
				IGSTPercent:     labour.IGSTPercent,
			}, invoice.GlobalDiscountPercent)
		}
	}

	return &SlabReportOutput{
		Rows:       builder.Rows(),
		GrandTotal: builder.GrandTotal(),
		Period:     formatPeriod(input.From, input.To),
	}, nil
}

func reportHeader(invoice entity.Invoice) gst.InvoiceHeader {
	header := gst.InvoiceHeader{
		InvoiceNumber: invoice.InvoiceNumber,
		InvoiceDate:   invoice.InvoiceDate.Format(reportDateLayout),
		CustomerName:  invoice.CustomerName,
	}
	if invoice.JobCardNumber != nil {
		header.JobCardNumber = *invoice.JobCardNumber
	}
	if invoice.CustomerGSTIN != nil {
		header.CustomerGSTIN = *invoice.CustomerGSTIN
	}
	return header
}

func formatPeriod(from, to time.Time) string {
	switch {
	case from.IsZero() && to.IsZero():
		return ""
	case from.IsZero():
		return "up to " + to.Format(reportDateLayout)
	case to.IsZero():
		return "from " + from.Format(reportDateLayout)
	default:
		return from.Format(reportDateLayout) + " to " + to.Format(reportDateLayout)
	}
}

// WriteSlabReportCSV builds the report and streams it as CSV
func (s *ReportService) WriteSlabReportCSV(ctx context.Context, input *SlabReportInput, w io.Writer) error {
	report, err := s.BuildSlabReport(ctx, input)
	if err != nil {
		return err
	}
	return export.WriteCSV(w, "GST Slab Report", report.Period, report.Rows, report.GrandTotal)
}

// WriteSlabReportXLSX builds the report and writes it as a workbook
func (s *ReportService) WriteSlabReportXLSX(ctx context.Context, input *SlabReportInput, w io.Writer) error {
	report, err := s.BuildSlabReport(ctx, input)
	if err != nil {
		return err
	}
	return export.WriteXLSX(w, "GST Slab Report", report.Period, report.Rows, report.GrandTotal)
}
