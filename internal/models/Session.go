package models

import (
	"time"

	"gorm.io/gorm"
)

// Session is a self-issued opaque bearer token row. Only the local auth
// provider reads or writes this table; the external provider validates
// IdP-signed JWTs instead and never touches it.
type Session struct {
	gorm.Model
	Token     string    `json:"-" gorm:"uniqueIndex;not null"`
	UserID    uint      `json:"user_id" gorm:"index"`
	User      User      `gorm:"foreignKey:UserID" json:"-"`
	ExpiresAt time.Time `json:"expires_at"`
}
