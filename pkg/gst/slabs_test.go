package gst

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlabIndex(t *testing.T) {
	for i, rate := range Slabs {
		got, ok := SlabIndex(rate)
		require.True(t, ok)
		assert.Equal(t, i, got)
	}

	_, ok := SlabIndex(7)
	assert.False(t, ok)
}

func TestSlabReportSingleInvoice(t *testing.T) {
	b := NewSlabReportBuilder()
	header := InvoiceHeader{
		InvoiceNumber: "INV-000042",
		InvoiceDate:   "2025-04-01",
		CustomerName:  "Ravi Kumar",
		CustomerGSTIN: "29ABCDE1234F1Z5",
	}

	// Rate 2.5+2.5 = 5, taxable 100.
	b.Add(header, LineItem{Quantity: 1, UnitPrice: 100, CGSTPercent: 2.5, SGSTPercent: 2.5}, 0)

	rows := b.Rows()
	require.Len(t, rows, 1)
	row := rows[0]

	fiveIdx, ok := SlabIndex(5)
	require.True(t, ok)
	bucket := row.Buckets[fiveIdx]
	assert.Equal(t, 100.0, bucket.TaxableAmount)
	assert.Equal(t, 2.5, bucket.CGST)
	assert.Equal(t, 2.5, bucket.SGST)
	assert.Equal(t, 105.0, bucket.Amount, "bucket amount includes tax")

	for i := range row.Buckets {
		if i == fiveIdx {
			continue
		}
		assert.Zero(t, row.Buckets[i], "bucket %v%% must stay empty", Slabs[i])
	}
}

func TestSlabReportUnmatchedRateCountsInTotalsOnly(t *testing.T) {
	b := NewSlabReportBuilder()
	header := InvoiceHeader{InvoiceNumber: "INV-000001"}

	// 4+4 = 8 matches no statutory slab.
	b.Add(header, LineItem{Quantity: 1, UnitPrice: 200, CGSTPercent: 4, SGSTPercent: 4}, 0)

	row := b.Rows()[0]
	assert.Equal(t, 200.0, row.TotalTaxable)
	assert.Equal(t, 8.0, row.TotalCGST)
	assert.Equal(t, 8.0, row.TotalSGST)
	for i := range row.Buckets {
		assert.Zero(t, row.Buckets[i])
	}
}

func TestSlabReportGroupsByInvoiceNumber(t *testing.T) {
	b := NewSlabReportBuilder()
	first := InvoiceHeader{InvoiceNumber: "INV-000007", CustomerName: "Asha"}
	// Later records for the same invoice must not replace header fields.
	later := InvoiceHeader{InvoiceNumber: "INV-000007", CustomerName: "someone else"}

	b.Add(first, LineItem{Quantity: 1, UnitPrice: 100, CGSTPercent: 9, SGSTPercent: 9}, 0)
	b.Add(later, LineItem{Quantity: 1, UnitPrice: 50, CGSTPercent: 9, SGSTPercent: 9}, 0)
	b.Add(InvoiceHeader{InvoiceNumber: "INV-000008"}, LineItem{Quantity: 1, UnitPrice: 10}, 0)

	rows := b.Rows()
	require.Len(t, rows, 2)
	assert.Equal(t, "INV-000007", rows[0].InvoiceNumber)
	assert.Equal(t, "Asha", rows[0].CustomerName, "first-seen header wins")
	assert.Equal(t, 150.0, rows[0].TotalTaxable)
	assert.Equal(t, "INV-000008", rows[1].InvoiceNumber)
}

func TestSlabReportGrandTotalSumsColumns(t *testing.T) {
	b := NewSlabReportBuilder()
	b.Add(InvoiceHeader{InvoiceNumber: "A"}, LineItem{Quantity: 1, UnitPrice: 100, CGSTPercent: 2.5, SGSTPercent: 2.5}, 0)
	b.Add(InvoiceHeader{InvoiceNumber: "B"}, LineItem{Quantity: 2, UnitPrice: 100, CGSTPercent: 9, SGSTPercent: 9}, 0)

	total := b.GrandTotal()
	assert.Equal(t, "TOTAL", total.InvoiceNumber)
	assert.Equal(t, 300.0, total.TotalTaxable)
	assert.Equal(t, 2.5+18.0, total.TotalCGST)

	fiveIdx, _ := SlabIndex(5)
	eighteenIdx, _ := SlabIndex(18)
	assert.Equal(t, 100.0, total.Buckets[fiveIdx].TaxableAmount)
	assert.Equal(t, 200.0, total.Buckets[eighteenIdx].TaxableAmount)
}

func TestSlabReportGlobalDiscountApplied(t *testing.T) {
	b := NewSlabReportBuilder()
	b.Add(InvoiceHeader{InvoiceNumber: "C"}, LineItem{Quantity: 1, UnitPrice: 100, DiscountPercent: 5, CGSTPercent: 9, SGSTPercent: 9}, 20)

	row := b.Rows()[0]
	assert.Equal(t, 80.0, row.TotalTaxable)
}
