// Package queue defines the domain events published to the message broker
// and the publishing helper. Consumers (notifications, analytics) are
// external to this service.
package queue

// Queue names double as routing keys on the default exchange.
const (
	TripCreatedQueue        = "trip.created"
	ExpenseLoggedQueue      = "expense.logged"
	ItineraryGeneratedQueue = "itinerary.generated"
)

type TripCreatedEvent struct {
	TripID      uint   `json:"trip_id"`
	OwnerID     uint   `json:"owner_id"`
	Title       string `json:"title"`
	Destination string `json:"destination"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	StopCount   int    `json:"stop_count"`
	CreatedAt   string `json:"created_at"`
}

type ExpenseLoggedEvent struct {
	ExpenseID uint    `json:"expense_id"`
	TripID    uint    `json:"trip_id"`
	UserID    uint    `json:"user_id"`
	Category  string  `json:"category"`
	Amount    float64 `json:"amount"`
	Currency  string  `json:"currency"`
	Remaining float64 `json:"remaining"`
	LoggedAt  string  `json:"logged_at"`
}

type ItineraryGeneratedEvent struct {
	TripID      uint   `json:"trip_id"`
	UserID      uint   `json:"user_id"`
	DayCount    int    `json:"day_count"`
	Generator   string `json:"generator"` // "gemini" or "mock"
	GeneratedAt string `json:"generated_at"`
}
