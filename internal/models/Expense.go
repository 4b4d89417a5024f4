package models

import (
	"time"

	"gorm.io/gorm"
)

// Expense is an append-only ledger entry: there is deliberately no update or
// delete path, budget figures are recomputed from the full list on read.
type Expense struct {
	gorm.Model
	TripID      uint      `json:"trip_id" gorm:"index"`
	UserID      uint      `json:"user_id" gorm:"index"`    // who paid
	Category    string    `json:"category" gorm:"size:20"` // "accommodation", "food", "transport", "activities", "shopping", "other"
	Amount      float64   `json:"amount"`
	Currency    string    `json:"currency" gorm:"size:3;default:USD"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
}
