package gst

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateLine(t *testing.T) {
	item := LineItem{
		Name:            "Brake Pad",
		Quantity:        2,
		UnitPrice:       500,
		DiscountPercent: 10,
		CGSTPercent:     9,
		SGSTPercent:     9,
	}

	result := CalculateLine(item, 0)

	assert.Equal(t, 1000.0, result.BaseAmount)
	assert.Equal(t, 100.0, result.DiscountAmount)
	assert.Equal(t, 900.0, result.TaxableAmount)
	assert.Equal(t, 81.0, result.CGSTAmount)
	assert.Equal(t, 81.0, result.SGSTAmount)
	assert.Equal(t, 0.0, result.IGSTAmount)
	assert.Equal(t, 1062.0, result.Total())
}

func TestCalculateLineGlobalDiscountOverride(t *testing.T) {
	item := LineItem{Quantity: 1, UnitPrice: 200, DiscountPercent: 5}

	withGlobal := CalculateLine(item, 20)

	item.DiscountPercent = 20
	asOwn := CalculateLine(item, 0)

	assert.Equal(t, asOwn, withGlobal, "global discount must behave as if it were the line's own")
	assert.Equal(t, 160.0, withGlobal.TaxableAmount)
}

func TestCalculateLineZeroGlobalDiscountKeepsLineDiscount(t *testing.T) {
	item := LineItem{Quantity: 1, UnitPrice: 100, DiscountPercent: 25}

	result := CalculateLine(item, 0)

	assert.Equal(t, 75.0, result.TaxableAmount)
}

func TestCalculateLineTaxableNeverNegative(t *testing.T) {
	cases := []struct {
		name     string
		item     LineItem
		global   float64
	}{
		{"discount over 100 clamped", LineItem{Quantity: 1, UnitPrice: 100, DiscountPercent: 150}, 0},
		{"global over 100 clamped", LineItem{Quantity: 1, UnitPrice: 100}, 250},
		{"negative quantity coerced", LineItem{Quantity: -3, UnitPrice: 100}, 0},
		{"nan price coerced", LineItem{Quantity: 2, UnitPrice: math.NaN()}, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := CalculateLine(tc.item, tc.global)
			assert.GreaterOrEqual(t, result.TaxableAmount, 0.0)
		})
	}
}

func TestCalculateLineIGSTOnly(t *testing.T) {
	item := LineItem{Quantity: 10, UnitPrice: 100, IGSTPercent: 18}

	result := CalculateLine(item, 0)

	assert.Equal(t, 1000.0, result.TaxableAmount)
	assert.Equal(t, 180.0, result.IGSTAmount)
	assert.Equal(t, 0.0, result.CGSTAmount)
	assert.Equal(t, 0.0, result.SGSTAmount)
}

func TestAggregateDocument(t *testing.T) {
	parts := CalculateLines([]LineItem{
		{Quantity: 2, UnitPrice: 500, DiscountPercent: 10, CGSTPercent: 9, SGSTPercent: 9},
	}, 0)

	totals := AggregateDocument(parts, nil)

	assert.Equal(t, 900.0, totals.PartsSubtotal)
	assert.Equal(t, 0.0, totals.LaboursSubtotal)
	assert.Equal(t, 900.0, totals.SubTotal)
	// Tax is reported per line, never added into the grand total.
	assert.Equal(t, 900.0, totals.TotalAmount)
}

func TestAggregateDocumentSubtotalsAdd(t *testing.T) {
	parts := CalculateLines([]LineItem{
		{Quantity: 1, UnitPrice: 250},
		{Quantity: 4, UnitPrice: 50},
	}, 0)
	labours := CalculateLines([]LineItem{
		{Quantity: 1, UnitPrice: 300, DiscountPercent: 50},
	}, 0)

	totals := AggregateDocument(parts, labours)

	assert.Equal(t, 450.0, totals.PartsSubtotal)
	assert.Equal(t, 150.0, totals.LaboursSubtotal)
	assert.Equal(t, totals.PartsSubtotal+totals.LaboursSubtotal, totals.SubTotal)
}

func TestAggregateDocumentIdempotent(t *testing.T) {
	items := []LineItem{
		{Quantity: 3, UnitPrice: 120.50, DiscountPercent: 7.5, CGSTPercent: 6, SGSTPercent: 6},
		{Quantity: 1, UnitPrice: 999.99, IGSTPercent: 28},
	}

	first := AggregateDocument(CalculateLines(items, 0), nil)
	second := AggregateDocument(CalculateLines(items, 0), nil)

	assert.Equal(t, first, second)
}

func TestAmountDueNotClamped(t *testing.T) {
	totals := DocumentTotals{TotalAmount: 500}

	assert.Equal(t, 200.0, totals.AmountDue(300))
	assert.Equal(t, -100.0, totals.AmountDue(600), "advance above total stays negative")
}
