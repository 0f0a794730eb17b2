package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BankDeposit records a cash or cheque deposit made at the bank
type BankDeposit struct {
	ID            uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	UserID        uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	DepositDate   time.Time      `gorm:"type:date;not null" json:"deposit_date"`
	Amount        float64        `gorm:"type:decimal(12,2);not null" json:"amount"`
	BankName      string         `gorm:"size:255;not null" json:"bank_name"`
	AccountNumber *string        `gorm:"size:100" json:"account_number,omitempty"`
	Mode          *string        `gorm:"size:50" json:"mode,omitempty"`
	ReferenceNo   *string        `gorm:"size:100;column:reference_no" json:"reference_no,omitempty"`
	Notes         *string        `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new deposit
func (d *BankDeposit) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the BankDeposit model
func (BankDeposit) TableName() string {
	return "bank_deposits"
}
