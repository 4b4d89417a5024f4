package planner

import "github.com/jairomatosve/voyagedesigner/internal/models"

// NextStatus advances an activity along the manual three-state ring:
// planned -> completed -> skipped -> planned. "ongoing" is only ever set by
// an external signal; advancing it manually returns it to planned.
func NextStatus(status string) string {
	switch status {
	case models.ActivityPlanned:
		return models.ActivityCompleted
	case models.ActivityCompleted:
		return models.ActivitySkipped
	default:
		return models.ActivityPlanned
	}
}

// ValidStatus reports whether s is one of the four activity states.
func ValidStatus(s string) bool {
	switch s {
	case models.ActivityPlanned, models.ActivityOngoing, models.ActivityCompleted, models.ActivitySkipped:
		return true
	}
	return false
}

// NeedsReoptimization reports whether at least one activity across the
// itinerary is skipped, which is what exposes the re-optimize affordance.
func NeedsReoptimization(days []models.ItineraryDay) bool {
	for _, day := range days {
		for _, a := range day.Activities {
			if a.Status == models.ActivitySkipped {
				return true
			}
		}
	}
	return false
}
