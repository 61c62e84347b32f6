package geo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vcnav/campusnav/geo"
)

// ------------------------------------------------------------------------
// 1. Coordinate validation.
// ------------------------------------------------------------------------

func TestCoordValid(t *testing.T) {
	cases := []struct {
		name  string
		coord geo.Coord
		want  bool
	}{
		{"campus point", geo.Coord{Lat: 12.8378745, Lon: 80.1370940}, true},
		{"poles and antimeridian", geo.Coord{Lat: 90, Lon: -180}, true},
		{"latitude too high", geo.Coord{Lat: 90.0001, Lon: 0}, false},
		{"latitude too low", geo.Coord{Lat: -91, Lon: 0}, false},
		{"longitude too high", geo.Coord{Lat: 0, Lon: 180.5}, false},
		{"longitude too low", geo.Coord{Lat: 0, Lon: -181}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.coord.Valid())
		})
	}
}

// ------------------------------------------------------------------------
// 2. Haversine distance.
// ------------------------------------------------------------------------

func TestDistance_Zero(t *testing.T) {
	c := geo.Coord{Lat: 12.8395, Lon: 80.1365}
	assert.Zero(t, geo.Distance(c, c))
}

func TestDistance_Symmetric(t *testing.T) {
	a := geo.Coord{Lat: 12.839500, Lon: 80.136500} // Main Gate
	b := geo.Coord{Lat: 12.838500, Lon: 80.136500} // Auditorium
	assert.InDelta(t, geo.Distance(a, b), geo.Distance(b, a), 1e-9)
}

func TestDistance_MatchesSurveyedWalkway(t *testing.T) {
	// Main Gate → Auditorium is surveyed at ~111 m; pure meridian hop of
	// 0.001° latitude. Allow a couple of meters of slack for the survey.
	a := geo.Coord{Lat: 12.839500, Lon: 80.136500}
	b := geo.Coord{Lat: 12.838500, Lon: 80.136500}
	assert.InDelta(t, 111.19, geo.Distance(a, b), 2.0)
}

// ------------------------------------------------------------------------
// 3. Projection.
// ------------------------------------------------------------------------

func TestNewProjector_NoCoords(t *testing.T) {
	_, err := geo.NewProjector(nil, 900, 800)
	require.ErrorIs(t, err, geo.ErrNoCoords)
}

func TestProjector_CornersAndPadding(t *testing.T) {
	coords := []geo.Coord{
		{Lat: 12.836000, Lon: 80.136500}, // south-west of campus bound
		{Lat: 12.839500, Lon: 80.138000}, // north-east of campus bound
	}
	p, err := geo.NewProjector(coords, 900, 800)
	require.NoError(t, err)

	// North-west corner of the bound lands at the padded top-left.
	x, y := p.ToScreen(geo.Coord{Lat: 12.839500, Lon: 80.136500})
	assert.InDelta(t, 90, x, 1e-9)  // 900 * 0.1
	assert.InDelta(t, 80, y, 1e-9)  // 800 * 0.1

	// South-east corner lands at the padded bottom-right.
	x, y = p.ToScreen(geo.Coord{Lat: 12.836000, Lon: 80.138000})
	assert.InDelta(t, 810, x, 1e-9) // 900 * 0.9
	assert.InDelta(t, 720, y, 1e-9) // 800 * 0.9
}

func TestProjector_InvertedY(t *testing.T) {
	coords := []geo.Coord{
		{Lat: 12.836000, Lon: 80.136500},
		{Lat: 12.839500, Lon: 80.138000},
	}
	p, err := geo.NewProjector(coords, 900, 800)
	require.NoError(t, err)

	// Higher latitude must project to a smaller Y (screen Y grows down).
	_, yNorth := p.ToScreen(geo.Coord{Lat: 12.839000, Lon: 80.137000})
	_, ySouth := p.ToScreen(geo.Coord{Lat: 12.836500, Lon: 80.137000})
	assert.Less(t, yNorth, ySouth)
}

func TestProjector_DegenerateBoundCenters(t *testing.T) {
	// A single coordinate has a zero-extent bound: project to center.
	p, err := geo.NewProjector([]geo.Coord{{Lat: 12.838, Lon: 80.137}}, 900, 800)
	require.NoError(t, err)

	x, y := p.ToScreen(geo.Coord{Lat: 12.838, Lon: 80.137})
	assert.InDelta(t, 450, x, 1e-9)
	assert.InDelta(t, 400, y, 1e-9)
}
