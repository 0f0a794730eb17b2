package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/autocarcare/garage-api/internal/domain/enum"
)

// Invoice represents a tax invoice for a completed job. Customer and
// vehicle details are snapshotted at creation time so later edits to
// the customer record never change an issued document.
type Invoice struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	UserID        uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	CustomerID    *uuid.UUID `gorm:"type:uuid;index" json:"customer_id,omitempty"`
	InvoiceNumber string     `gorm:"size:50;unique;not null" json:"invoice_number"`
	InvoiceDate   time.Time  `gorm:"type:date;not null" json:"invoice_date"`
	JobCardNumber *string    `gorm:"size:100;column:job_card_number" json:"job_card_number,omitempty"`

	// Customer snapshot
	CustomerName    string  `gorm:"size:255;not null" json:"customer_name"`
	CustomerAddress *string `gorm:"type:text" json:"customer_address,omitempty"`
	CustomerMobile  *string `gorm:"size:50" json:"customer_mobile,omitempty"`
	CustomerAadhar  *string `gorm:"size:50;column:customer_aadhar" json:"customer_aadhar,omitempty"`
	CustomerGSTIN   *string `gorm:"size:50;column:customer_gstin" json:"customer_gstin,omitempty"`

	// Vehicle snapshot
	VehicleNo    *string `gorm:"size:50;column:vehicle_no" json:"vehicle_no,omitempty"`
	VehicleModel *string `gorm:"size:100" json:"vehicle_model,omitempty"`
	KmsDriven    *int    `gorm:"column:kms_driven" json:"kms_driven,omitempty"`

	// A non-zero global discount replaces every line's own discount.
	GlobalDiscountPercent float64 `gorm:"type:decimal(5,2);default:0;column:global_discount_percent" json:"global_discount_percent"`

	// Stored totals, recomputed on every write.
	PartsSubtotal   float64 `gorm:"type:decimal(12,2);default:0" json:"parts_subtotal"`
	LaboursSubtotal float64 `gorm:"type:decimal(12,2);default:0" json:"labours_subtotal"`
	SubTotal        float64 `gorm:"type:decimal(12,2);default:0;column:sub_total" json:"sub_total"`
	TotalAmount     float64 `gorm:"type:decimal(12,2);default:0" json:"total_amount"`
	AdvanceAmount   float64 `gorm:"type:decimal(12,2);default:0" json:"advance_amount"`

	PaymentStatus enum.PaymentStatus `gorm:"default:0" json:"payment_status"`
	Notes         *string            `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
	DeletedAt     gorm.DeletedAt     `gorm:"index" json:"-"`

	// Relationships
	User     User            `gorm:"foreignKey:UserID" json:"-"`
	Customer *Customer       `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Parts    []InvoicePart   `gorm:"foreignKey:InvoiceID" json:"parts,omitempty"`
	Labours  []InvoiceLabour `gorm:"foreignKey:InvoiceID" json:"labours,omitempty"`
}

// BeforeCreate generates a UUID before creating a new invoice
func (i *Invoice) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Invoice model
func (Invoice) TableName() string {
	return "invoices"
}

// AmountDue is what the customer still owes after the advance.
// Overpayment shows as a negative due.
func (i *Invoice) AmountDue() float64 {
	return i.TotalAmount - i.AdvanceAmount
}

// InvoicePart is one spare-part line on an invoice
type InvoicePart struct {
	ID              uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	InvoiceID       uuid.UUID  `gorm:"type:uuid;not null;index" json:"invoice_id"`
	SparePartID     *uuid.UUID `gorm:"type:uuid;index" json:"spare_part_id,omitempty"`
	PartName        string     `gorm:"size:255;not null" json:"part_name"`
	Quantity        float64    `gorm:"type:decimal(12,2);not null" json:"quantity"`
	UnitPrice       float64    `gorm:"type:decimal(12,2);not null" json:"unit_price"`
	DiscountPercent float64    `gorm:"type:decimal(5,2);default:0" json:"discount_percent"`
	CGSTPercent     float64    `gorm:"type:decimal(5,2);default:0;column:cgst_percent" json:"cgst_percent"`
	SGSTPercent     float64    `gorm:"type:decimal(5,2);default:0;column:sgst_percent" json:"sgst_percent"`
	IGSTPercent     float64    `gorm:"type:decimal(5,2);default:0;column:igst_percent" json:"igst_percent"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// BeforeCreate generates a UUID before creating a new invoice part
func (p *InvoicePart) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the InvoicePart model
func (InvoicePart) TableName() string {
	return "invoice_parts"
}

// InvoiceLabour is one labour/service line on an invoice
type InvoiceLabour struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	InvoiceID       uuid.UUID `gorm:"type:uuid;not null;index" json:"invoice_id"`
	Description     string    `gorm:"size:255;not null" json:"description"`
	Quantity        float64   `gorm:"type:decimal(12,2);not null" json:"quantity"`
	UnitPrice       float64   `gorm:"type:decimal(12,2);not null" json:"unit_price"`
	DiscountPercent float64   `gorm:"type:decimal(5,2);default:0" json:"discount_percent"`
	CGSTPercent     float64   `gorm:"type:decimal(5,2);default:0;column:cgst_percent" json:"cgst_percent"`
	SGSTPercent     float64   `gorm:"type:decimal(5,2);default:0;column:sgst_percent" json:"sgst_percent"`
	IGSTPercent     float64   `gorm:"type:decimal(5,2);default:0;column:igst_percent" json:"igst_percent"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// BeforeCreate generates a UUID before creating a new invoice labour
func (l *InvoiceLabour) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the InvoiceLabour model
func (InvoiceLabour) TableName() string {
	return "invoice_labours"
}
