package document

import (
	"bytes"

	"github.com/jung-kurt/gofpdf"

	"github.com/autocarcare/garage-api/pkg/gst"
)

// Quotation table layout, A4 portrait. Widths sum to the usable page
// width of 190mm. Tax percent columns are folded into the amounts to
// fit the narrower page.
var quotationCols = []struct {
	width  float64
	header string
	align  string
}{
	{8, "#", "C"},
	{52, "Particulars", "L"},
	{12, "Qty", "C"},
	{18, "Rate", "R"},
	{14, "Disc", "R"},
	{20, "Taxable", "R"},
	{16, "CGST", "R"},
	{16, "SGST", "R"},
	{16, "IGST", "R"},
	{18, "Total", "R"},
}

const quotationRowH = 7.0

// RenderQuotation lays out a quotation on A4 portrait pages and
// returns the PDF bytes.
func RenderQuotation(doc Document) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.SetAutoPageBreak(false, 10)
	pdf.AddPage()

	writeLetterhead(pdf, doc, 190)
	writeQuotationMeta(pdf, doc)

	writeQuotationTableHeader(pdf)
	n := 1
	for _, line := range doc.Parts {
		n = writeQuotationRow(pdf, n, line)
	}
	if len(doc.Labours) > 0 {
		writeQuotationSectionRow(pdf, "Labour / Service Charges")
		for _, line := range doc.Labours {
			n = writeQuotationRow(pdf, n, line)
		}
	}
	writeQuotationTotals(pdf, doc)
	writeFooter(pdf, doc, 190)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeQuotationMeta(pdf *gofpdf.Fpdf, doc Document) {
	left := [][2]string{
		{"Quotation No", doc.Number},
		{"Date", doc.Date},
	}
	if doc.Vehicle.Number != "" {
		left = append(left, [2]string{"Vehicle No", doc.Vehicle.Number})
	}
	if doc.Vehicle.Model != "" {
		left = append(left, [2]string{"Model", doc.Vehicle.Model})
	}

	right := [][2]string{
		{"Customer", doc.Customer.Name},
	}
	if doc.Customer.Address != "" {
		right = append(right, [2]string{"Address", doc.Customer.Address})
	}
	if doc.Customer.Phone != "" {
		right = append(right, [2]string{"Mobile", doc.Customer.Phone})
	}
	if doc.Customer.GSTIN != "" {
		right = append(right, [2]string{"GSTIN", doc.Customer.GSTIN})
	}

	writeMetaColumns(pdf, left, right, 190)
}

func writeQuotationTableHeader(pdf *gofpdf.Fpdf) {
	pdf.SetFont("Arial", "B", 8)
	pdf.SetFillColor(230, 230, 230)
	for _, col := range quotationCols {
		pdf.CellFormat(col.width, quotationRowH, col.header, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 8)
}

func writeQuotationSectionRow(pdf *gofpdf.Fpdf, label string) {
	ensureRoom(pdf, quotationRowH, writeQuotationTableHeader)
	pdf.SetFont("Arial", "B", 8)
	pdf.CellFormat(190, quotationRowH, label, "1", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 8)
}

func writeQuotationRow(pdf *gofpdf.Fpdf, n int, line Line) int {
	ensureRoom(pdf, quotationRowH, writeQuotationTableHeader)
	values := []string{
		qty(float64(n)),
		line.Description,
		qty(line.Item.Quantity),
		money(line.Item.UnitPrice),
		money(line.Result.DiscountAmount),
		money(line.Result.TaxableAmount),
		money(line.Result.CGSTAmount),
		money(line.Result.SGSTAmount),
		money(line.Result.IGSTAmount),
		money(line.Result.Total()),
	}
	for i, col := range quotationCols {
		pdf.CellFormat(col.width, quotationRowH, values[i], "1", 0, col.align, false, 0, "")
	}
	pdf.Ln(-1)
	return n + 1
}

func writeQuotationTotals(pdf *gofpdf.Fpdf, doc Document) {
	labelW := 190 - 18.0

	writeQuotationTotalRow(pdf, labelW, "Parts Subtotal", doc.Totals.PartsSubtotal)
	writeQuotationTotalRow(pdf, labelW, "Labour Subtotal", doc.Totals.LaboursSubtotal)
	writeQuotationTotalRow(pdf, labelW, "Estimated Total", doc.Totals.TotalAmount)

	ensureRoom(pdf, quotationRowH, nil)
	pdf.SetFont("Arial", "BI", 9)
	pdf.CellFormat(190, quotationRowH, "Amount in Words: "+gst.RupeesInWords(doc.Totals.TotalAmount), "1", 1, "L", false, 0, "")
}

func writeQuotationTotalRow(pdf *gofpdf.Fpdf, labelW float64, label string, amount float64) {
	ensureRoom(pdf, quotationRowH, nil)
	pdf.SetFont("Arial", "B", 8)
	pdf.CellFormat(labelW, quotationRowH, label, "1", 0, "R", false, 0, "")
	pdf.CellFormat(18, quotationRowH, money(amount), "1", 1, "R", false, 0, "")
}
