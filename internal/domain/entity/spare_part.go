package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SparePart represents a stocked spare part
type SparePart struct {
	ID            uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	UserID        uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Name          string         `gorm:"size:255;not null" json:"name"`
	PartNumber    *string        `gorm:"size:100;index" json:"part_number,omitempty"`
	HSNCode       *string        `gorm:"size:50;column:hsn_code" json:"hsn_code,omitempty"`
	PurchasePrice float64        `gorm:"type:decimal(12,2);default:0" json:"purchase_price"`
	SellingPrice  float64        `gorm:"type:decimal(12,2);default:0" json:"selling_price"`
	CGSTPercent   float64        `gorm:"type:decimal(5,2);default:0;column:cgst_percent" json:"cgst_percent"`
	SGSTPercent   float64        `gorm:"type:decimal(5,2);default:0;column:sgst_percent" json:"sgst_percent"`
	IGSTPercent   float64        `gorm:"type:decimal(5,2);default:0;column:igst_percent" json:"igst_percent"`
	Quantity      float64        `gorm:"type:decimal(12,2);default:0" json:"quantity"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new spare part
func (p *SparePart) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the SparePart model
func (SparePart) TableName() string {
	return "spare_parts"
}
