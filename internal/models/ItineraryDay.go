package models

import (
	"time"

	"gorm.io/gorm"
)

type ItineraryDay struct {
	gorm.Model
	TripID   uint      `json:"trip_id" gorm:"index"`
	DayIndex int       `json:"day_index"` // 1-based
	Date     time.Time `json:"date"`
	Theme    string    `json:"theme,omitempty"`
	Notes    string    `json:"notes,omitempty"`

	Activities []Activity `gorm:"foreignKey:ItineraryDayID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"activities"`
}
