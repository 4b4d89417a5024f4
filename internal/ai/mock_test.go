package ai

import (
	"context"
	"testing"
	"time"
)

func TestMockGeneratorThreeDayScenario(t *testing.T) {
	plan, err := MockGenerator{}.GenerateItinerary(context.Background(), GenerateRequest{
		Destination: "Lisbon",
		StartDate:   time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("GenerateItinerary: %v", err)
	}
	if len(plan.Days) != 3 {
		t.Fatalf("len(Days) = %d, want 3", len(plan.Days))
	}
	wantDates := []string{"2024-06-01", "2024-06-02", "2024-06-03"}
	for i, d := range plan.Days {
		if d.DayIndex != i+1 {
			t.Errorf("day %d: DayIndex = %d", i, d.DayIndex)
		}
		if d.Date != wantDates[i] {
			t.Errorf("day %d: Date = %s, want %s", i, d.Date, wantDates[i])
		}
		if len(d.Activities) == 0 {
			t.Errorf("day %d has no activities", i)
		}
	}
}

func TestMockGeneratorRepeatsTemplate(t *testing.T) {
	plan, err := MockGenerator{}.GenerateItinerary(context.Background(), GenerateRequest{
		Destination: "Kyoto",
		StartDate:   time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2024, 6, 7, 0, 0, 0, 0, time.UTC), // 7 days
	})
	if err != nil {
		t.Fatalf("GenerateItinerary: %v", err)
	}
	if len(plan.Days) != 7 {
		t.Fatalf("len(Days) = %d, want 7", len(plan.Days))
	}
	// Day 4 wraps back to the first template.
	if plan.Days[3].Theme != plan.Days[0].Theme {
		t.Errorf("day 4 theme = %q, want %q", plan.Days[3].Theme, plan.Days[0].Theme)
	}
	if plan.Days[3].Activities[0].Title != plan.Days[0].Activities[0].Title {
		t.Errorf("day 4 should repeat day 1 activities")
	}
}

func TestMockGeneratorSuggestions(t *testing.T) {
	got, err := MockGenerator{}.SuggestAlternatives(context.Background(), ReoptimizeRequest{
		Destination:    "Lisbon",
		FailedActivity: "City walking tour",
	})
	if err != nil {
		t.Fatalf("SuggestAlternatives: %v", err)
	}
	if len(got) != SuggestionCount {
		t.Fatalf("len = %d, want %d", len(got), SuggestionCount)
	}
	if got[0].Title != "Alternative to City walking tour" {
		t.Errorf("title = %q", got[0].Title)
	}
}
