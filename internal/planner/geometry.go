package planner

import (
	"encoding/binary"

	"github.com/twpayne/go-geom"
	gjson "github.com/twpayne/go-geom/encoding/geojson"
	"github.com/twpayne/go-geom/encoding/wkb"

	"github.com/jairomatosve/voyagedesigner/internal/models"
)

// RouteLine builds a LINESTRING (SRID 4326) through every stop that carries
// coordinates and returns it as WKB for the trips table. Fewer than two
// coordinated stops yield no geometry.
func RouteLine(stops []models.TripDestination) ([]byte, error) {
	var coords []geom.Coord
	for _, s := range stops {
		if s.Latitude == 0 && s.Longitude == 0 {
			continue
		}
		coords = append(coords, geom.Coord{s.Longitude, s.Latitude})
	}
	if len(coords) < 2 {
		return nil, nil
	}

	line := geom.NewLineString(geom.XY)
	if _, err := line.SetCoords(coords); err != nil {
		return nil, err
	}
	line.SetSRID(4326)
	return wkb.Marshal(line, binary.LittleEndian)
}

// RouteGeoJSON converts stored WKB route geometry into a GeoJSON string for
// API responses. Empty input yields an empty string.
func RouteGeoJSON(wkbBytes []byte) (string, error) {
	if len(wkbBytes) == 0 {
		return "", nil
	}
	g, err := wkb.Unmarshal(wkbBytes)
	if err != nil {
		return "", err
	}
	b, err := gjson.Marshal(g)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
