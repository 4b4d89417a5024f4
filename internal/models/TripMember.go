package models

import "gorm.io/gorm"

// TripMember joins a user to a trip with a role. The owner is inserted as
// "admin" inside the trip-creation transaction.
type TripMember struct {
	gorm.Model
	TripID uint   `json:"trip_id" gorm:"index"`
	UserID uint   `json:"user_id" gorm:"index"`
	User   User   `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Role   string `json:"role" gorm:"size:20"` // "admin", "editor", "viewer"
}
