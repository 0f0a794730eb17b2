package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OwnerScope returns a GORM scope that filters rows by their owning
// user. Admin queries pass skipUserFilter to see every user's records.
func OwnerScope(userID uuid.UUID, skipUserFilter bool) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if skipUserFilter {
			return db
		}
		return db.Where("user_id = ?", userID)
	}
}
