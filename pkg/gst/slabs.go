package gst

// Slabs are the fixed statutory GST rate bands. A line item belongs to
// the slab exactly matching its CGST+SGST percent sum.
var Slabs = [5]float64{0, 5, 12, 18, 28}

// SlabIndex returns the bucket index for a combined GST rate, or false
// when the rate matches no statutory slab.
func SlabIndex(rate float64) (int, bool) {
	for i, s := range Slabs {
		if rate == s {
			return i, true
		}
	}
	return 0, false
}

// SlabBucket accumulates the amounts of all line items assigned to one
// rate band.
type SlabBucket struct {
	Amount        float64 `json:"amount"`
	TaxableAmount float64 `json:"taxable_amount"`
	CGST          float64 `json:"cgst"`
	SGST          float64 `json:"sgst"`
	IGST          float64 `json:"igst"`
}

func (b *SlabBucket) add(r LineResult) {
	b.Amount += r.Total()
	b.TaxableAmount += r.TaxableAmount
	b.CGST += r.CGSTAmount
	b.SGST += r.SGSTAmount
	b.IGST += r.IGSTAmount
}

// InvoiceHeader identifies one invoice in the slab report. The first
// record seen for an invoice number supplies these fields.
type InvoiceHeader struct {
	InvoiceNumber string `json:"invoice_number"`
	InvoiceDate   string `json:"invoice_date"`
	JobCardNumber string `json:"job_card_number"`
	CustomerName  string `json:"customer_name"`
	CustomerGSTIN string `json:"customer_gstin"`
}

// ReportRow is one invoice's line in the compliance report: grand
// totals plus the per-slab breakdown.
type ReportRow struct {
	InvoiceHeader
	TotalSale    float64                 `json:"total_sale"`
	TotalTaxable float64                 `json:"total_taxable"`
	TotalCGST    float64                 `json:"total_cgst"`
	TotalSGST    float64                 `json:"total_sgst"`
	TotalIGST    float64                 `json:"total_igst"`
	Buckets      [len(Slabs)]SlabBucket  `json:"buckets"`
}

// SlabReportBuilder merges the line items of many invoices into one row
// per unique invoice number, in first-seen order.
//
// A line whose CGST+SGST percent sum matches no statutory slab still
// counts toward the row's grand totals but lands in no bucket. That
// asymmetry is the established report contract; see DESIGN.md.
type SlabReportBuilder struct {
	rows  map[string]*ReportRow
	order []string
}

// NewSlabReportBuilder creates an empty report builder.
func NewSlabReportBuilder() *SlabReportBuilder {
	return &SlabReportBuilder{rows: make(map[string]*ReportRow)}
}

// Add accumulates one line item under its parent invoice. The global
// discount is the parent document's; pass 0 when the document has none.
func (b *SlabReportBuilder) Add(header InvoiceHeader, item LineItem, globalDiscountPercent float64) {
	row, ok := b.rows[header.InvoiceNumber]
	if !ok {
		row = &ReportRow{InvoiceHeader: header}
		b.rows[header.InvoiceNumber] = row
		b.order = append(b.order, header.InvoiceNumber)
	}

	result := CalculateLine(item, globalDiscountPercent)
	row.TotalSale += result.Total()
	row.TotalTaxable += result.TaxableAmount
	row.TotalCGST += result.CGSTAmount
	row.TotalSGST += result.SGSTAmount
	row.TotalIGST += result.IGSTAmount

	if i, ok := SlabIndex(item.CGSTPercent + item.SGSTPercent); ok {
		row.Buckets[i].add(result)
	}
}

// Rows returns the per-invoice rows in first-seen order.
func (b *SlabReportBuilder) Rows() []ReportRow {
	rows := make([]ReportRow, 0, len(b.order))
	for _, number := range b.order {
		rows = append(rows, *b.rows[number])
	}
	return rows
}

// GrandTotal sums each displayed column independently across all rows.
// It deliberately does not recompute from line items.
func (b *SlabReportBuilder) GrandTotal() ReportRow {
	total := ReportRow{InvoiceHeader: InvoiceHeader{InvoiceNumber: "TOTAL"}}
	for _, number := range b.order {
		row := b.rows[number]
		total.TotalSale += row.TotalSale
		total.TotalTaxable += row.TotalTaxable
		total.TotalCGST += row.TotalCGST
		total.TotalSGST += row.TotalSGST
		total.TotalIGST += row.TotalIGST
		for i := range row.Buckets {
			total.Buckets[i].Amount += row.Buckets[i].Amount
			total.Buckets[i].TaxableAmount += row.Buckets[i].TaxableAmount
			total.Buckets[i].CGST += row.Buckets[i].CGST
			total.Buckets[i].SGST += row.Buckets[i].SGST
			total.Buckets[i].IGST += row.Buckets[i].IGST
		}
	}
	return total
}
