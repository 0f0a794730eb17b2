package gst

// DocumentTotals is the aggregate of one invoice or quotation.
//
// TotalAmount equals SubTotal: tax amounts are computed and shown per
// line but are not folded into the grand total. That matches the
// long-standing billing behavior this engine replaces; see DESIGN.md
// before changing it.
type DocumentTotals struct {
	PartsSubtotal   float64 `json:"parts_subtotal"`
	LaboursSubtotal float64 `json:"labours_subtotal"`
	SubTotal        float64 `json:"sub_total"`
	TotalAmount     float64 `json:"total_amount"`
}

// AggregateDocument sums per-line results into document totals. Parts
// and labour lines are tracked separately; subtotals sum taxable
// amounts, not line totals.
func AggregateDocument(parts, labours []LineResult) DocumentTotals {
	var partsSubtotal, laboursSubtotal float64
	for _, r := range parts {
		partsSubtotal += r.TaxableAmount
	}
	for _, r := range labours {
		laboursSubtotal += r.TaxableAmount
	}
	subTotal := partsSubtotal + laboursSubtotal
	return DocumentTotals{
		PartsSubtotal:   partsSubtotal,
		LaboursSubtotal: laboursSubtotal,
		SubTotal:        subTotal,
		TotalAmount:     subTotal,
	}
}

// AmountDue returns the balance after the advance already paid.
// Not clamped: an advance larger than the total yields a negative due.
func (t DocumentTotals) AmountDue(advance float64) float64 {
	return t.TotalAmount - advance
}
