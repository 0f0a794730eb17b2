package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autocarcare/garage-api/pkg/gst"
)

func sampleDocument() Document {
	parts := BuildLines([]gst.LineItem{
		{Name: "Brake Pad Set", Quantity: 2, UnitPrice: 500, DiscountPercent: 10, CGSTPercent: 9, SGSTPercent: 9},
		{Name: "Engine Oil 5W-30", Quantity: 3.5, UnitPrice: 450, CGSTPercent: 9, SGSTPercent: 9},
	}, 0)
	labours := BuildLines([]gst.LineItem{
		{Name: "Full Service", Quantity: 1, UnitPrice: 1200, CGSTPercent: 9, SGSTPercent: 9},
	}, 0)

	results := func(lines []Line) []gst.LineResult {
		rs := make([]gst.LineResult, len(lines))
		for i, l := range lines {
			rs[i] = l.Result
		}
		return rs
	}

	return Document{
		Title:         "TAX INVOICE",
		Number:        "INV-000042",
		Date:          "01-04-2025",
		JobCardNumber: "JC-1183",
		Garage: Party{
			Name:    "Auto Car Care Point",
			Address: "NH-44 Service Road, Karnal",
			Phone:   "+91 98120 00000",
			GSTIN:   "06ABCDE1234F1Z5",
		},
		Customer: Party{
			Name:    "Ravi Kumar",
			Address: "Sector 7, Karnal",
			Phone:   "+91 98765 43210",
		},
		Vehicle:       Vehicle{Number: "HR05 AB 1234", Model: "Swift VXi", KmsDriven: 48211},
		Parts:         parts,
		Labours:       labours,
		Totals:        gst.AggregateDocument(results(parts), results(labours)),
		AdvanceAmount: 1000,
		PaymentStatus: "Partial",
		Terms:         []string{"Goods once sold will not be taken back.", "Warranty as per manufacturer terms."},
	}
}

func TestRenderInvoice(t *testing.T) {
	data, err := RenderInvoice(sampleDocument())

	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestRenderInvoiceManyLines(t *testing.T) {
	doc := sampleDocument()
	var items []gst.LineItem
	for i := 0; i < 80; i++ {
		items = append(items, gst.LineItem{Name: "Filler Part", Quantity: 1, UnitPrice: 10, CGSTPercent: 9, SGSTPercent: 9})
	}
	doc.Parts = BuildLines(items, 0)

	data, err := RenderInvoice(doc)

	require.NoError(t, err)
	assert.Greater(t, len(data), 4000, "multi-page output expected")
}

func TestRenderQuotation(t *testing.T) {
	doc := sampleDocument()
	doc.Title = "QUOTATION"
	doc.Number = "QTN-000007"
	doc.AdvanceAmount = 0
	doc.PaymentStatus = ""

	data, err := RenderQuotation(doc)

	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestBuildLinesAppliesGlobalDiscount(t *testing.T) {
	lines := BuildLines([]gst.LineItem{
		{Name: "Wiper Blade", Quantity: 1, UnitPrice: 100, DiscountPercent: 5},
	}, 20)

	require.Len(t, lines, 1)
	assert.Equal(t, 80.0, lines[0].Result.TaxableAmount)
}
