package geo

import (
	"errors"

	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"
)

// ErrNoCoords indicates a Projector was requested over an empty
// coordinate set, leaving no bounding box to project from.
var ErrNoCoords = errors.New("geo: no coordinates to project")

// Coord is a geographic coordinate in decimal degrees.
type Coord struct {
	Lat float64 `yaml:"lat"`
	Lon float64 `yaml:"lon"`
}

// Valid reports whether the coordinate lies in the usual GPS ranges:
// latitude in [-90, 90] and longitude in [-180, 180].
func (c Coord) Valid() bool {
	return c.Lat >= -90 && c.Lat <= 90 && c.Lon >= -180 && c.Lon <= 180
}

// Point converts the coordinate to an orb.Point (lon/lat order).
func (c Coord) Point() orb.Point {
	return orb.Point{c.Lon, c.Lat}
}

// Distance returns the great-circle (haversine) distance between a and
// b in meters.
func Distance(a, b Coord) float64 {
	return orbgeo.DistanceHaversine(a.Point(), b.Point())
}
