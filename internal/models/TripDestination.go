package models

import (
	"time"

	"gorm.io/gorm"
)

// TripDestination is one stop of a multi-destination trip. OrderIndex is a
// dense 0..n-1 sequence matching list order; TransportType describes the leg
// to the NEXT stop and is empty on the final one.
type TripDestination struct {
	gorm.Model
	TripID        uint      `json:"trip_id" gorm:"index"`
	Location      string    `json:"location"`
	OrderIndex    int       `json:"order_index"`
	StartDate     time.Time `json:"start_date"` // arrival
	EndDate       time.Time `json:"end_date"`   // departure
	TransportType string    `json:"transport_type,omitempty" gorm:"size:20"` // "flight", "train", "car", "bus", "ship"
	Latitude      float64   `json:"latitude"`
	Longitude     float64   `json:"longitude"`
}
