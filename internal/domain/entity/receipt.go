package entity

// ReceiptHeader holds the garage letterhead printed at the top of a receipt.
type ReceiptHeader struct {
	GarageName string `json:"garage_name"`
	Address    string `json:"address,omitempty"`
	Phone      string `json:"phone,omitempty"`
	GSTIN      string `json:"gstin,omitempty"`
}

// ReceiptItem represents a single line item on a receipt.
type ReceiptItem struct {
	Name      string  `json:"name"`
	Quantity  float64 `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
	Total     float64 `json:"total"`
}

// Receipt is a value object representing a printable counter receipt.
// It is NOT a database entity — it is composed from invoice data at print time.
type Receipt struct {
	Header        ReceiptHeader `json:"header"`
	InvoiceNo     string        `json:"invoice_no"`
	Date          string        `json:"date"`
	Customer      string        `json:"customer,omitempty"`
	VehicleNo     string        `json:"vehicle_no,omitempty"`
	JobCardNo     string        `json:"job_card_no,omitempty"`
	Items         []ReceiptItem `json:"items"`
	SubTotal      float64       `json:"sub_total"`
	TotalTax      float64       `json:"total_tax"`
	Total         float64       `json:"total"`
	Paid          float64       `json:"paid"`
	Due           float64       `json:"due"`
	PaymentStatus string        `json:"payment_status,omitempty"`
}
