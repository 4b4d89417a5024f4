package planner

import (
	"errors"
	"testing"
	"time"

	"github.com/jairomatosve/voyagedesigner/internal/models"
)

func day(n int) time.Time {
	return time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, n)
}

func stop(loc string, start, end int, transport string) models.TripDestination {
	return models.TripDestination{
		Location:      loc,
		StartDate:     day(start),
		EndDate:       day(end),
		TransportType: transport,
	}
}

func TestValidateStops(t *testing.T) {
	tests := []struct {
		name    string
		stops   []models.TripDestination
		wantErr error
	}{
		{
			name:  "single stop",
			stops: []models.TripDestination{stop("Paris", 0, 2, "")},
		},
		{
			name: "same-day handoff allowed",
			stops: []models.TripDestination{
				stop("Paris", 0, 2, "flight"),
				stop("Lyon", 2, 5, ""),
			},
		},
		{
			name: "gap between stops allowed",
			stops: []models.TripDestination{
				stop("Paris", 0, 2, "train"),
				stop("Lyon", 3, 5, ""),
			},
		},
		{
			name:    "empty list",
			stops:   nil,
			wantErr: ErrNoStops,
		},
		{
			name:    "blank location",
			stops:   []models.TripDestination{stop("  ", 0, 2, "")},
			wantErr: ErrEmptyLocation,
		},
		{
			name:    "departure before arrival",
			stops:   []models.TripDestination{stop("Paris", 3, 1, "")},
			wantErr: ErrInvertedStay,
		},
		{
			name: "overlap with next stop",
			stops: []models.TripDestination{
				stop("Paris", 0, 3, "car"),
				stop("Lyon", 2, 5, ""),
			},
			wantErr: ErrOverlappingStop,
		},
		{
			name:    "unknown transport",
			stops:   []models.TripDestination{stop("Paris", 0, 2, "teleport")},
			wantErr: ErrBadTransport,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStops(tt.stops)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("ValidateStops() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ValidateStops() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestNormalizeOrderDense(t *testing.T) {
	stops := []models.TripDestination{
		stop("A", 0, 2, "flight"),
		stop("B", 2, 5, ""),
		stop("C", 5, 7, ""),
	}
	stops[0].OrderIndex = 7
	stops[1].OrderIndex = 7
	stops[2].OrderIndex = 7

	NormalizeOrder(stops)
	for i, s := range stops {
		if s.OrderIndex != i {
			t.Errorf("stop %d has OrderIndex %d", i, s.OrderIndex)
		}
	}
}

func TestInsertStopBetweenLastAndReturn(t *testing.T) {
	stops := []models.TripDestination{
		stop("Rome", 0, 3, "train"),
		stop("Home", 3, 3, ""), // return stop
	}

	got := InsertStop(stops, "Florence", "train")

	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	ins := got[1]
	if ins.Location != "Florence" {
		t.Fatalf("inserted at wrong position: %+v", got)
	}
	if !ins.StartDate.Equal(day(3)) {
		t.Errorf("inserted start = %v, want %v", ins.StartDate, day(3))
	}
	if !ins.EndDate.Equal(day(3 + DefaultStayDays)) {
		t.Errorf("inserted end = %v, want %v", ins.EndDate, day(3+DefaultStayDays))
	}
	// Return stop pushed forward by the default stay.
	ret := got[2]
	if !ret.StartDate.Equal(day(3 + DefaultStayDays)) {
		t.Errorf("return start = %v, want %v", ret.StartDate, day(3+DefaultStayDays))
	}
	for i, s := range got {
		if s.OrderIndex != i {
			t.Errorf("stop %d has OrderIndex %d", i, s.OrderIndex)
		}
	}
	if err := ValidateStops(got); err != nil {
		t.Errorf("sequence invalid after insert: %v", err)
	}
}

func TestInsertStopAppendsWhenShort(t *testing.T) {
	got := InsertStop(nil, "Lisbon", "")
	if len(got) != 1 || got[0].Location != "Lisbon" || got[0].OrderIndex != 0 {
		t.Fatalf("unexpected result: %+v", got)
	}

	got = InsertStop(got, "Porto", "bus")
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if !got[1].StartDate.Equal(got[0].EndDate) {
		t.Errorf("appended stop should start where the previous ends")
	}
	if got[1].OrderIndex != 1 {
		t.Errorf("OrderIndex = %d, want 1", got[1].OrderIndex)
	}
}

func TestRemoveStopRenumbers(t *testing.T) {
	stops := []models.TripDestination{
		stop("A", 0, 2, "flight"),
		stop("B", 2, 5, "train"),
		stop("C", 5, 7, ""),
	}
	NormalizeOrder(stops)

	got := RemoveStop(stops, 1)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Location != "A" || got[1].Location != "C" {
		t.Fatalf("wrong stop removed: %+v", got)
	}
	for i, s := range got {
		if s.OrderIndex != i {
			t.Errorf("stop %d has OrderIndex %d", i, s.OrderIndex)
		}
	}

	if out := RemoveStop(got, 9); len(out) != 2 {
		t.Errorf("out-of-range remove changed the list")
	}
}
