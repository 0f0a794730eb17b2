// Package document renders workshop paperwork (tax invoices and
// quotations) as PDF files.
package document

import (
	"fmt"

	"github.com/autocarcare/garage-api/pkg/gst"
)

// Party holds the identity block printed for either side of a document
type Party struct {
	Name    string
	Address string
	Phone   string
	Email   string
	GSTIN   string
}

// Vehicle holds the serviced vehicle's details
type Vehicle struct {
	Number    string
	Model     string
	KmsDriven int
}

// Line pairs a billed item with its computed amounts
type Line struct {
	Description string
	Item        gst.LineItem
	Result      gst.LineResult
}

// Document is everything a renderer needs to lay out one PDF
type Document struct {
	Title         string
	Number        string
	Date          string
	JobCardNumber string

	Garage         Party
	Customer       Party
	CustomerAadhar string
	Vehicle        Vehicle

	Parts   []Line
	Labours []Line
	Totals  gst.DocumentTotals

	// Invoice-only fields; zero values for quotations
	AdvanceAmount float64
	PaymentStatus string

	Terms []string
	Notes string
}

// BuildLines computes amounts for raw items under the document's
// global discount and returns renderer-ready lines.
func BuildLines(items []gst.LineItem, globalDiscountPercent float64) []Line {
	lines := make([]Line, 0, len(items))
	for _, item := range items {
		lines = append(lines, Line{
			Description: item.Name,
			Item:        item,
			Result:      gst.CalculateLine(item, globalDiscountPercent),
		})
	}
	return lines
}

func money(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

func qty(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.2f", v)
}

func pct(v float64) string {
	if v == 0 {
		return "-"
	}
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d%%", int64(v))
	}
	return fmt.Sprintf("%.1f%%", v)
}
