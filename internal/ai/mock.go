package ai

import (
	"context"
	"fmt"

	"github.com/jairomatosve/voyagedesigner/internal/planner"
)

// MockGenerator is the offline fallback used when no Gemini key is
// configured. It cycles a fixed three-day template over the trip's full day
// span, so a nine-day trip repeats the template three times and a two-day
// trip gets the first two days. Fully deterministic.
type MockGenerator struct{}

var dayThemes = [3]string{
	"Arrival & City Exploration",
	"Nature & Adventure",
	"Culture & Farewell",
}

var dayTemplates = [3][]PlannedActivity{
	{
		{Title: "Morning coffee at local cafe", Description: "Start your day with local specialties", Location: "Downtown Coffee House", StartTime: "09:00", DurationMin: 60, EstimatedCost: 15, Category: "dining"},
		{Title: "City walking tour", Description: "Explore the historic district", Location: "Old Town", StartTime: "10:30", DurationMin: 150, EstimatedCost: 45, Category: "sightseeing"},
		{Title: "Lunch at local restaurant", Description: "Try the regional cuisine", Location: "Main Square", StartTime: "13:00", DurationMin: 90, EstimatedCost: 35, Category: "dining"},
		{Title: "Museum visit", Description: "Art and culture exploration", Location: "National Museum", StartTime: "15:00", DurationMin: 120, EstimatedCost: 25, Category: "activity"},
	},
	{
		{Title: "Sunrise viewpoint", Description: "Catch the sunrise from the best spot", Location: "Mountain Overlook", StartTime: "08:00", DurationMin: 90, EstimatedCost: 0, Category: "sightseeing"},
		{Title: "Nature hike", Description: "Moderate trail through scenic landscape", Location: "National Park", StartTime: "10:00", DurationMin: 180, EstimatedCost: 10, Category: "activity"},
		{Title: "Picnic lunch", Description: "Enjoy local delicacies outdoors", Location: "Park Meadow", StartTime: "14:00", DurationMin: 60, EstimatedCost: 20, Category: "dining"},
		{Title: "Spa & relaxation", Description: "Unwind after the hike", Location: "Wellness Center", StartTime: "16:00", DurationMin: 120, EstimatedCost: 80, Category: "rest"},
	},
	{
		{Title: "Local market visit", Description: "Shop for souvenirs and local goods", Location: "Central Market", StartTime: "10:00", DurationMin: 120, EstimatedCost: 50, Category: "activity"},
		{Title: "Cooking class", Description: "Learn to make local dishes", Location: "Culinary School", StartTime: "12:30", DurationMin: 180, EstimatedCost: 65, Category: "activity"},
		{Title: "Evening stroll", Description: "Explore the waterfront", Location: "Riverside Walk", StartTime: "16:00", DurationMin: 90, EstimatedCost: 0, Category: "sightseeing"},
		{Title: "Farewell dinner", Description: "Fine dining experience", Location: "Rooftop Restaurant", StartTime: "19:00", DurationMin: 120, EstimatedCost: 100, Category: "dining"},
	},
}

func (MockGenerator) GenerateItinerary(_ context.Context, req GenerateRequest) (*ItineraryPlan, error) {
	span := planner.DaySpan(req.StartDate, req.EndDate)

	plan := &ItineraryPlan{Days: make([]PlannedDay, 0, span)}
	for i := 0; i < span; i++ {
		tmpl := i % len(dayTemplates)
		activities := make([]PlannedActivity, len(dayTemplates[tmpl]))
		copy(activities, dayTemplates[tmpl])

		plan.Days = append(plan.Days, PlannedDay{
			DayIndex:   i + 1,
			Date:       req.StartDate.AddDate(0, 0, i).Format("2006-01-02"),
			Theme:      dayThemes[tmpl],
			Activities: activities,
		})
	}
	return plan, nil
}

func (MockGenerator) SuggestAlternatives(_ context.Context, req ReoptimizeRequest) ([]Suggestion, error) {
	failed := req.FailedActivity
	if failed == "" {
		failed = "activity"
	}
	place := req.Destination
	if place == "" {
		place = "the area"
	}
	return []Suggestion{
		{
			Title:         fmt.Sprintf("Alternative to %s", failed),
			Description:   fmt.Sprintf("A great alternative experience in %s.", place),
			DurationMin:   120,
			EstimatedCost: 35,
			Reason:        "Similar experience at the same time of day",
		},
		{
			Title:         fmt.Sprintf("Relaxed option near %s", place),
			Description:   "Take it easy with this nearby attraction.",
			DurationMin:   90,
			EstimatedCost: 20,
			Reason:        "Lower effort, fits a shorter window",
		},
	}, nil
}
