package document

import (
	"bytes"

	"github.com/jung-kurt/gofpdf"

	"github.com/autocarcare/garage-api/pkg/gst"
)

// Invoice table layout, A4 landscape. Widths sum to the usable page
// width of 277mm.
var invoiceCols = []struct {
	width  float64
	header string
	align  string
}{
	{8, "#", "C"},
	{79, "Particulars", "L"},
	{14, "Qty", "C"},
	{20, "Rate", "R"},
	{12, "Disc%", "C"},
	{16, "Disc", "R"},
	{22, "Taxable", "R"},
	{12, "CGST%", "C"},
	{16, "CGST", "R"},
	{12, "SGST%", "C"},
	{16, "SGST", "R"},
	{12, "IGST%", "C"},
	{16, "IGST", "R"},
	{22, "Total", "R"},
}

const invoiceRowH = 7.0

// RenderInvoice lays out a tax invoice on A4 landscape pages and
// returns the PDF bytes. Long line tables flow onto continuation
// pages with the column headers repeated.
func RenderInvoice(doc Document) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.SetAutoPageBreak(false, 10)
	pdf.AddPage()

	writeLetterhead(pdf, doc, 277)
	writeInvoiceMeta(pdf, doc)

	writeInvoiceTableHeader(pdf)
	n := 1
	for _, line := range doc.Parts {
		n = writeInvoiceRow(pdf, n, line)
	}
	if len(doc.Labours) > 0 {
		writeSectionRow(pdf, "Labour / Service Charges", 277)
		for _, line := range doc.Labours {
			n = writeInvoiceRow(pdf, n, line)
		}
	}
	writeInvoiceTotals(pdf, doc)
	writeFooter(pdf, doc, 277)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeLetterhead(pdf *gofpdf.Fpdf, doc Document, width float64) {
	pdf.SetFont("Arial", "B", 18)
	pdf.CellFormat(width, 10, doc.Garage.Name, "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "", 9)
	if doc.Garage.Address != "" {
		pdf.CellFormat(width, 5, doc.Garage.Address, "", 1, "C", false, 0, "")
	}
	contact := doc.Garage.Phone
	if doc.Garage.Email != "" {
		if contact != "" {
			contact += "  |  "
		}
		contact += doc.Garage.Email
	}
	if contact != "" {
		pdf.CellFormat(width, 5, contact, "", 1, "C", false, 0, "")
	}
	if doc.Garage.GSTIN != "" {
		pdf.CellFormat(width, 5, "GSTIN: "+doc.Garage.GSTIN, "", 1, "C", false, 0, "")
	}

	pdf.Ln(2)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(width, 8, doc.Title, "TB", 1, "C", false, 0, "")
	pdf.Ln(2)
}

func writeInvoiceMeta(pdf *gofpdf.Fpdf, doc Document) {
	left := [][2]string{
		{"Invoice No", doc.Number},
		{"Invoice Date", doc.Date},
	}
	if doc.JobCardNumber != "" {
		left = append(left, [2]string{"Job Card No", doc.JobCardNumber})
	}
	if doc.Vehicle.Number != "" {
		left = append(left, [2]string{"Vehicle No", doc.Vehicle.Number})
	}
	if doc.Vehicle.Model != "" {
		left = append(left, [2]string{"Model", doc.Vehicle.Model})
	}
	if doc.Vehicle.KmsDriven > 0 {
		left = append(left, [2]string{"Kms Driven", qty(float64(doc.Vehicle.KmsDriven))})
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
	if doc.CustomerAadhar != "" {
		right = append(right, [2]string{"Aadhar No", doc.CustomerAadhar})
	}
	if doc.Customer.GSTIN != "" {
		right = append(right, [2]string{"GSTIN", doc.Customer.GSTIN})
	}

	writeMetaColumns(pdf, left, right, 277)
}

// writeMetaColumns prints two label/value column blocks side by side
func writeMetaColumns(pdf *gofpdf.Fpdf, left, right [][2]string, width float64) {
	half := width / 2
	rows := len(left)
	if len(right) > rows {
		rows = len(right)
	}

	pdf.SetFont("Arial", "", 9)
	for i := 0; i < rows; i++ {
		if i < len(left) {
			pdf.SetFont("Arial", "B", 9)
			pdf.CellFormat(28, 5, left[i][0], "", 0, "L", false, 0, "")
			pdf.SetFont("Arial", "", 9)
			pdf.CellFormat(half-28, 5, ": "+left[i][1], "", 0, "L", false, 0, "")
		} else {
			pdf.CellFormat(half, 5, "", "", 0, "L", false, 0, "")
		}
		if i < len(right) {
			pdf.SetFont("Arial", "B", 9)
			pdf.CellFormat(28, 5, right[i][0], "", 0, "L", false, 0, "")
			pdf.SetFont("Arial", "", 9)
			pdf.CellFormat(half-28, 5, ": "+right[i][1], "", 1, "L", false, 0, "")
		} else {
			pdf.Ln(-1)
		}
	}
	pdf.Ln(2)
}

func writeInvoiceTableHeader(pdf *gofpdf.Fpdf) {
	pdf.SetFont("Arial", "B", 8)
	pdf.SetFillColor(230, 230, 230)
	for _, col := range invoiceCols {
		pdf.CellFormat(col.width, invoiceRowH, col.header, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 8)
}

func writeSectionRow(pdf *gofpdf.Fpdf, label string, width float64) {
	ensureRoom(pdf, invoiceRowH, writeInvoiceTableHeader)
	pdf.SetFont("Arial", "B", 8)
	pdf.CellFormat(width, invoiceRowH, label, "1", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 8)
}

func writeInvoiceRow(pdf *gofpdf.Fpdf, n int, line Line) int {
	ensureRoom(pdf, invoiceRowH, writeInvoiceTableHeader)
	values := []string{
		qty(float64(n)),
		line.Description,
		qty(line.Item.Quantity),
		money(line.Item.UnitPrice),
		pct(effectiveDiscount(line)),
		money(line.Result.DiscountAmount),
		money(line.Result.TaxableAmount),
		pct(line.Item.CGSTPercent),
		money(line.Result.CGSTAmount),
		pct(line.Item.SGSTPercent),
		money(line.Result.SGSTAmount),
		pct(line.Item.IGSTPercent),
		money(line.Result.IGSTAmount),
		money(line.Result.Total()),
	}
	for i, col := range invoiceCols {
		pdf.CellFormat(col.width, invoiceRowH, values[i], "1", 0, col.align, false, 0, "")
	}
	pdf.Ln(-1)
	return n + 1
}

// effectiveDiscount recovers the percent actually charged on a line
func effectiveDiscount(line Line) float64 {
	if line.Result.BaseAmount == 0 {
		return 0
	}
	return line.Result.DiscountAmount / line.Result.BaseAmount * 100
}

func writeInvoiceTotals(pdf *gofpdf.Fpdf, doc Document) {
	labelW := 277 - 22.0

	writeTotalRow(pdf, labelW, "Parts Subtotal", doc.Totals.PartsSubtotal)
	writeTotalRow(pdf, labelW, "Labour Subtotal", doc.Totals.LaboursSubtotal)
	writeTotalRow(pdf, labelW, "Grand Total", doc.Totals.TotalAmount)
	if doc.AdvanceAmount != 0 {
		writeTotalRow(pdf, labelW, "Advance Paid", doc.AdvanceAmount)
		writeTotalRow(pdf, labelW, "Balance Due", doc.Totals.AmountDue(doc.AdvanceAmount))
	}

	ensureRoom(pdf, invoiceRowH, nil)
	pdf.SetFont("Arial", "BI", 9)
	pdf.CellFormat(277, invoiceRowH, "Amount in Words: "+gst.RupeesInWords(doc.Totals.TotalAmount), "1", 1, "L", false, 0, "")
}

func writeTotalRow(pdf *gofpdf.Fpdf, labelW float64, label string, amount float64) {
	ensureRoom(pdf, invoiceRowH, nil)
	pdf.SetFont("Arial", "B", 8)
	pdf.CellFormat(labelW, invoiceRowH, label, "1", 0, "R", false, 0, "")
	pdf.CellFormat(22, invoiceRowH, money(amount), "1", 1, "R", false, 0, "")
}

func writeFooter(pdf *gofpdf.Fpdf, doc Document, width float64) {
	if doc.PaymentStatus != "" {
		pdf.Ln(2)
		pdf.SetFont("Arial", "B", 9)
		pdf.CellFormat(width, 5, "Payment Status: "+doc.PaymentStatus, "", 1, "L", false, 0, "")
	}
	if doc.Notes != "" {
		pdf.Ln(1)
		pdf.SetFont("Arial", "I", 8)
		pdf.MultiCell(width, 4, "Note: "+doc.Notes, "", "L", false)
	}
	if len(doc.Terms) > 0 {
		pdf.Ln(3)
		ensureRoom(pdf, float64(len(doc.Terms)+1)*4+10, nil)
		pdf.SetFont("Arial", "B", 8)
		pdf.CellFormat(width, 4, "Terms & Conditions", "", 1, "L", false, 0, "")
		pdf.SetFont("Arial", "", 8)
		for i, term := range doc.Terms {
			pdf.MultiCell(width, 4, qty(float64(i+1))+". "+term, "", "L", false)
		}
	}

	pdf.Ln(8)
	pdf.SetFont("Arial", "", 9)
	pdf.CellFormat(width/2, 5, "Customer Signature", "", 0, "L", false, 0, "")
	pdf.CellFormat(width/2, 5, "For "+doc.Garage.Name, "", 1, "R", false, 0, "")
}

// ensureRoom starts a new page when fewer than need millimetres remain,
// re-running afterPage (usually the table header) on the fresh page.
func ensureRoom(pdf *gofpdf.Fpdf, need float64, afterPage func(*gofpdf.Fpdf)) {
	_, pageH := pdf.GetPageSize()
	if pdf.GetY()+need > pageH-10 {
		pdf.AddPage()
		if afterPage != nil {
			afterPage(pdf)
		}
	}
}
