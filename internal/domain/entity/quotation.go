package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Quotation represents a job estimate given to a customer before work
// starts. It carries the same snapshot and line structure as an
// invoice but no payment fields.
type Quotation struct {
	ID              uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	UserID          uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	CustomerID      *uuid.UUID `gorm:"type:uuid;index" json:"customer_id,omitempty"`
	QuotationNumber string     `gorm:"size:50;unique;not null" json:"quotation_number"`
	QuotationDate   time.Time  `gorm:"type:date;not null" json:"quotation_date"`

	CustomerName    string  `gorm:"size:255;not null" json:"customer_name"`
	CustomerAddress *string `gorm:"type:text" json:"customer_address,omitempty"`
	CustomerMobile  *string `gorm:"size:50" json:"customer_mobile,omitempty"`
	CustomerGSTIN   *string `gorm:"size:50;column:customer_gstin" json:"customer_gstin,omitempty"`

	VehicleNo    *string `gorm:"size:50;column:vehicle_no" json:"vehicle_no,omitempty"`
	VehicleModel *string `gorm:"size:100" json:"vehicle_model,omitempty"`

	GlobalDiscountPercent float64 `gorm:"type:decimal(5,2);default:0;column:global_discount_percent" json:"global_discount_percent"`

	PartsSubtotal   float64 `gorm:"type:decimal(12,2);default:0" json:"parts_subtotal"`
	LaboursSubtotal float64 `gorm:"type:decimal(12,2);default:0" json:"labours_subtotal"`
	SubTotal        float64 `gorm:"type:decimal(12,2);default:0;column:sub_total" json:"sub_total"`
	TotalAmount     float64 `gorm:"type:decimal(12,2);default:0" json:"total_amount"`

	ValidUntil *time.Time     `gorm:"type:date" json:"valid_until,omitempty"`
	Notes      *string        `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	User     User              `gorm:"foreignKey:UserID" json:"-"`
	Customer *Customer         `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Parts    []QuotationPart   `gorm:"foreignKey:QuotationID" json:"parts,omitempty"`
	Labours  []QuotationLabour `gorm:"foreignKey:QuotationID" json:"labours,omitempty"`
}

// BeforeCreate generates a UUID before creating a new quotation
func (q *Quotation) BeforeCreate(tx *gorm.DB) error {
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Quotation model
func (Quotation) TableName() string {
	return "quotations"
}

// QuotationPart is one spare-part line on a quotation
type QuotationPart struct {
	ID              uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	QuotationID     uuid.UUID  `gorm:"type:uuid;not null;index" json:"quotation_id"`
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

// BeforeCreate generates a UUID before creating a new quotation part
func (p *QuotationPart) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the QuotationPart model
func (QuotationPart) TableName() string {
	return "quotation_parts"
}

// QuotationLabour is one labour/service line on a quotation
type QuotationLabour struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	QuotationID     uuid.UUID `gorm:"type:uuid;not null;index" json:"quotation_id"`
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

// BeforeCreate generates a UUID before creating a new quotation labour
func (l *QuotationLabour) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the QuotationLabour model
func (QuotationLabour) TableName() string {
	return "quotation_labours"
}
