package planner

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jairomatosve/voyagedesigner/internal/models"
)

// DefaultStayDays is the stay window given to a newly inserted stop.
const DefaultStayDays = 3

var (
	ErrNoStops         = errors.New("trip needs at least one stop")
	ErrEmptyLocation   = errors.New("stop location must not be empty")
	ErrInvertedStay    = errors.New("stop departure precedes arrival")
	ErrOverlappingStop = errors.New("stop departs after the next stop arrives")
	ErrBadTransport    = errors.New("unknown transport type")
)

var transportTypes = map[string]bool{
	"flight": true,
	"train":  true,
	"car":    true,
	"bus":    true,
	"ship":   true,
}

// NormalizeOrder rewrites OrderIndex as a dense 0..n-1 sequence matching
// list order. Call after every insert or remove.
func NormalizeOrder(stops []models.TripDestination) {
	for i := range stops {
		stops[i].OrderIndex = i
	}
}

// ValidateStops checks the sequencing rules for an ordered stop list:
// every stop has a location and a non-degenerate stay window, and no stop
// departs after the next one arrives. A same-day handoff (departure equal
// to the next arrival) is allowed.
func ValidateStops(stops []models.TripDestination) error {
	if len(stops) == 0 {
		return ErrNoStops
	}
	for i, s := range stops {
		if strings.TrimSpace(s.Location) == "" {
			return fmt.Errorf("stop %d: %w", i, ErrEmptyLocation)
		}
		if s.EndDate.Before(s.StartDate) {
			return fmt.Errorf("stop %d: %w", i, ErrInvertedStay)
		}
		if s.TransportType != "" && !transportTypes[s.TransportType] {
			return fmt.Errorf("stop %d: %w: %q", i, ErrBadTransport, s.TransportType)
		}
		if i < len(stops)-1 && stops[i+1].StartDate.Before(s.EndDate) {
			return fmt.Errorf("stop %d: %w", i, ErrOverlappingStop)
		}
	}
	return nil
}

// InsertStop places a new stop between the last real stop and the trailing
// return stop. Its stay starts where the previous stop ends and lasts
// DefaultStayDays; the return stop's window is pushed forward by the same
// span. With fewer than two stops the new one is simply appended.
func InsertStop(stops []models.TripDestination, location, transport string) []models.TripDestination {
	shift := time.Duration(DefaultStayDays) * 24 * time.Hour

	if len(stops) < 2 {
		start := time.Now().Truncate(24 * time.Hour)
		if n := len(stops); n > 0 {
			start = stops[n-1].EndDate
		}
		stops = append(stops, models.TripDestination{
			Location:      location,
			StartDate:     start,
			EndDate:       start.Add(shift),
			TransportType: transport,
		})
		NormalizeOrder(stops)
		return stops
	}

	prev := stops[len(stops)-2]
	inserted := models.TripDestination{
		Location:      location,
		StartDate:     prev.EndDate,
		EndDate:       prev.EndDate.Add(shift),
		TransportType: transport,
	}

	ret := stops[len(stops)-1]
	ret.StartDate = ret.StartDate.Add(shift)
	ret.EndDate = ret.EndDate.Add(shift)

	out := make([]models.TripDestination, 0, len(stops)+1)
	out = append(out, stops[:len(stops)-1]...)
	out = append(out, inserted, ret)
	NormalizeOrder(out)
	return out
}

// RemoveStop deletes the stop at index i and renumbers the remainder.
// Out-of-range indexes leave the list untouched.
func RemoveStop(stops []models.TripDestination, i int) []models.TripDestination {
	if i < 0 || i >= len(stops) {
		return stops
	}
	out := append(stops[:i:i], stops[i+1:]...)
	NormalizeOrder(out)
	return out
}
