package planner

import (
	"strings"
	"testing"

	"github.com/jairomatosve/voyagedesigner/internal/models"
)

func TestRouteLineRoundTrip(t *testing.T) {
	stops := []models.TripDestination{
		{Location: "Paris", Latitude: 48.8566, Longitude: 2.3522},
		{Location: "Lyon", Latitude: 45.7640, Longitude: 4.8357},
	}

	wkbBytes, err := RouteLine(stops)
	if err != nil {
		t.Fatalf("RouteLine: %v", err)
	}
	if len(wkbBytes) == 0 {
		t.Fatal("expected geometry for two coordinated stops")
	}

	geojson, err := RouteGeoJSON(wkbBytes)
	if err != nil {
		t.Fatalf("RouteGeoJSON: %v", err)
	}
	if !strings.Contains(geojson, "LineString") {
		t.Errorf("geojson = %s, want a LineString", geojson)
	}
}

func TestRouteLineNeedsTwoCoordinatedStops(t *testing.T) {
	stops := []models.TripDestination{
		{Location: "Paris", Latitude: 48.8566, Longitude: 2.3522},
		{Location: "Somewhere"}, // no coordinates
	}
	wkbBytes, err := RouteLine(stops)
	if err != nil {
		t.Fatalf("RouteLine: %v", err)
	}
	if wkbBytes != nil {
		t.Error("expected nil geometry with a single coordinated stop")
	}
}

func TestRouteGeoJSONEmpty(t *testing.T) {
	s, err := RouteGeoJSON(nil)
	if err != nil || s != "" {
		t.Errorf("RouteGeoJSON(nil) = %q, %v", s, err)
	}
}
