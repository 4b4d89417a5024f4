package models

import (
	"time"

	"gorm.io/gorm"
)

// Trip is the aggregate root: it owns its ordered destination stops, its
// member roster, its generated itinerary days and its expense ledger.
type Trip struct {
	gorm.Model
	Title       string    `json:"title" binding:"required"`
	Destination string    `json:"destination"`
	OwnerID     uint      `json:"owner_id" gorm:"index"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	TotalBudget float64   `json:"total_budget"`
	Currency    string    `json:"currency" gorm:"size:3;default:USD"`
	Status      string    `json:"status" gorm:"size:20;default:planning"`    // "planning", "active", "completed", "cancelled"
	Visibility  string    `json:"visibility" gorm:"size:20;default:private"` // "public", "contacts", "private"
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`

	// Polyline through the stop coordinates, stored as WKB (LINESTRING,
	// SRID 4326). Responses carry it as GeoJSON.
	RouteGeometry []byte `gorm:"type:bytea" json:"-"`

	Destinations []TripDestination `gorm:"foreignKey:TripID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"destinations,omitempty"`
	Members      []TripMember      `gorm:"foreignKey:TripID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"members,omitempty"`
	Days         []ItineraryDay    `gorm:"foreignKey:TripID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"days,omitempty"`
	Expenses     []Expense         `gorm:"foreignKey:TripID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"expenses,omitempty"`
}
