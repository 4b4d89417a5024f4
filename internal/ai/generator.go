package ai

import (
	"context"
	"errors"
	"time"
)

// ErrGenerationFailed wraps any upstream failure: transport errors, non-2xx
// replies, malformed JSON or an incomplete day list. Callers must keep the
// previously stored itinerary when they see it.
var ErrGenerationFailed = errors.New("itinerary generation failed")

// SuggestionCount is the fixed batch size of a re-optimization request.
const SuggestionCount = 2

type GenerateRequest struct {
	Destination string
	StartDate   time.Time
	EndDate     time.Time
	Interests   []string
	Pace        string // "relaxed", "moderate", "fast"
}

type ReoptimizeRequest struct {
	Destination    string
	FailedActivity string
	TimeAvailable  string
	Constraints    string
}

type PlannedActivity struct {
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	Location      string  `json:"location"`
	StartTime     string  `json:"start_time"`
	EndTime       string  `json:"end_time,omitempty"`
	DurationMin   int     `json:"duration_min"`
	EstimatedCost float64 `json:"estimated_cost"`
	Category      string  `json:"category"`
}

type PlannedDay struct {
	DayIndex   int               `json:"day_index"` // 1-based
	Date       string            `json:"date"`      // YYYY-MM-DD
	Theme      string            `json:"theme,omitempty"`
	Activities []PlannedActivity `json:"activities"`
}

type ItineraryPlan struct {
	Days []PlannedDay `json:"days"`
}

type Suggestion struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	EstimatedCost float64 `json:"estimated_cost"`
	DurationMin   int     `json:"duration_min"`
	Reason        string  `json:"reason,omitempty"`
}

// Generator produces day-by-day plans and alternative-activity suggestions.
// Implementations must return one day per calendar day of the request,
// never a partial plan.
type Generator interface {
	GenerateItinerary(ctx context.Context, req GenerateRequest) (*ItineraryPlan, error)
	SuggestAlternatives(ctx context.Context, req ReoptimizeRequest) ([]Suggestion, error)
}
