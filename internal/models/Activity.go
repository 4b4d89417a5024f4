package models

import "gorm.io/gorm"

// Activity statuses. "ongoing" is set by external signal only; the manual
// advance cycles planned -> completed -> skipped -> planned.
const (
	ActivityPlanned   = "planned"
	ActivityOngoing   = "ongoing"
	ActivityCompleted = "completed"
	ActivitySkipped   = "skipped"
)

type Activity struct {
	gorm.Model
	ItineraryDayID uint    `json:"itinerary_day_id" gorm:"index"`
	Seq            int     `json:"seq"` // order within the day
	Title          string  `json:"title"`
	Description    string  `json:"description,omitempty"`
	Location       string  `json:"location,omitempty"`
	StartTime      string  `json:"start_time" gorm:"size:5"` // "HH:MM"
	EndTime        string  `json:"end_time,omitempty" gorm:"size:5"`
	DurationMin    int     `json:"duration_min"`
	EstimatedCost  float64 `json:"estimated_cost"`
	Category       string  `json:"category" gorm:"size:20"` // "dining", "sightseeing", "transport", "activity", "rest", "accommodation"
	Status         string  `json:"status" gorm:"size:20;default:planned"`
}
