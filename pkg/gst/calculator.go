// Package gst implements the GST tax computation used by invoices,
// quotations and compliance reports: per-line tax splits, document
// aggregation, Indian-system amount-in-words conversion and the
// fixed-slab report builder.
//
// All functions here are pure and total: bad numeric input degrades to
// zero instead of returning an error, mirroring how the billing forms
// treat empty fields.
package gst

import "math"

// LineItem is one billable row of a document: a spare part or a labour
// charge. CGST+SGST apply intra-state, IGST inter-state; the pair vs
// IGST exclusivity is a business rule enforced by the caller, not here.
type LineItem struct {
	Name            string  `json:"name"`
	Quantity        float64 `json:"quantity"`
	UnitPrice       float64 `json:"unit_price"`
	DiscountPercent float64 `json:"discount_percent"`
	CGSTPercent     float64 `json:"cgst_percent"`
	SGSTPercent     float64 `json:"sgst_percent"`
	IGSTPercent     float64 `json:"igst_percent"`
}

// LineResult holds the computed amounts for one line item.
type LineResult struct {
	BaseAmount     float64 `json:"base_amount"`
	DiscountAmount float64 `json:"discount_amount"`
	TaxableAmount  float64 `json:"taxable_amount"`
	CGSTAmount     float64 `json:"cgst_amount"`
	SGSTAmount     float64 `json:"sgst_amount"`
	IGSTAmount     float64 `json:"igst_amount"`
}

// Total returns the line total including tax.
func (r LineResult) Total() float64 {
	return r.TaxableAmount + r.CGSTAmount + r.SGSTAmount + r.IGSTAmount
}

// CalculateLine computes base, discount, taxable and tax amounts for one
// line item. A document-level discount > 0 overrides the line's own
// discount. The effective discount is clamped to [0,100] so the taxable
// amount can never go negative.
func CalculateLine(item LineItem, globalDiscountPercent float64) LineResult {
	discount := item.DiscountPercent
	if globalDiscountPercent > 0 {
		discount = globalDiscountPercent
	}
	discount = clampPercent(discount)

	base := sanitize(item.Quantity) * sanitize(item.UnitPrice)
	discountAmount := base * discount / 100
	taxable := base - discountAmount

	return LineResult{
		BaseAmount:     base,
		DiscountAmount: discountAmount,
		TaxableAmount:  taxable,
		CGSTAmount:     taxable * clampPercent(item.CGSTPercent) / 100,
		SGSTAmount:     taxable * clampPercent(item.SGSTPercent) / 100,
		IGSTAmount:     taxable * clampPercent(item.IGSTPercent) / 100,
	}
}

// CalculateLines maps CalculateLine over a slice, preserving order.
func CalculateLines(items []LineItem, globalDiscountPercent float64) []LineResult {
	results := make([]LineResult, len(items))
	for i, item := range items {
		results[i] = CalculateLine(item, globalDiscountPercent)
	}
	return results
}

func clampPercent(p float64) float64 {
	if math.IsNaN(p) || p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

func sanitize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}
