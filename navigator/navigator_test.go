package navigator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vcnav/campusnav/campus"
	"github.com/vcnav/campusnav/geo"
	"github.com/vcnav/campusnav/navigator"
	"github.com/vcnav/campusnav/route"
)

// newCampusNavigator builds a Navigator over the embedded campus.
func newCampusNavigator(t *testing.T) *navigator.Navigator {
	t.Helper()

	nav := navigator.New()
	require.NoError(t, nav.InitializeGraph(campus.DefaultDataset()))

	return nav
}

// namesOf maps a planned path back to location names.
func namesOf(t *testing.T, nav *navigator.Navigator, p route.Path) []string {
	t.Helper()

	out := make([]string, 0, p.Len())
	for _, id := range p.Nodes() {
		loc, ok := nav.LocationByID(id)
		require.True(t, ok, "path id %d not in arena", id)
		out = append(out, loc.Name)
	}

	return out
}

// ------------------------------------------------------------------------
// 1. Construction and initialization.
// ------------------------------------------------------------------------

func TestNew_StartsWalkingWithNoCampus(t *testing.T) {
	nav := navigator.New()

	assert.Equal(t, navigator.Walking(), nav.Mode())
	assert.Nil(t, nav.Locations())
	assert.Nil(t, nav.Graph())

	_, ok := nav.LastPath()
	assert.False(t, ok)

	// No route yet: zero minutes, not an error.
	minutes, err := nav.EstimatedTime()
	require.NoError(t, err)
	assert.Zero(t, minutes)

	_, err = nav.FindPath("Main Gate", "Mess")
	assert.ErrorIs(t, err, navigator.ErrNotInitialized)
	_, err = nav.FindPathIDs(0, 1)
	assert.ErrorIs(t, err, navigator.ErrNotInitialized)
	_, err = nav.Projector(900, 800)
	assert.ErrorIs(t, err, navigator.ErrNotInitialized)
}

func TestNewWithConfig(t *testing.T) {
	cfg := navigator.DefaultModeConfig()
	cfg.WalkingKmh = 4

	nav, err := navigator.NewWithConfig(cfg)
	require.NoError(t, err)
	assert.InDelta(t, 4, nav.Mode().SpeedKmh, 1e-9)

	cfg.CyclingKmh = 0
	_, err = navigator.NewWithConfig(cfg)
	assert.ErrorIs(t, err, navigator.ErrBadSpeed)
}

func TestInitializeGraph_BuildsFullCampus(t *testing.T) {
	nav := newCampusNavigator(t)

	g := nav.Graph()
	require.NotNil(t, g)
	assert.Equal(t, 22, g.NodeCount())
	assert.Equal(t, 18, g.EdgeCount())

	// Hidden waypoints are nodes too, just unconnected ones.
	turn, ok := nav.LocationByName("turn_01")
	require.True(t, ok)
	assert.True(t, g.HasNode(turn.ID))
	assert.Empty(t, g.Neighbors(turn.ID))

	// Surveyed walkway weights land on the graph unchanged.
	mess, _ := nav.LocationByName("Mess")
	lab, _ := nav.LocationByName("Lab Complex")
	w, ok := g.Weight(mess.ID, lab.ID)
	require.True(t, ok)
	assert.InDelta(t, 89.10, w, 1e-9)
}

func TestInitializeGraph_DerivesMissingDistances(t *testing.T) {
	ds := campus.Dataset{
		Locations: []campus.LocationRecord{
			{Name: "North", Lat: 12.84, Lon: 80.13},
			{Name: "South", Lat: 12.83, Lon: 80.13},
		},
		Connections: []campus.Connection{{From: "North", To: "South"}}, // no meters
	}

	nav := navigator.New()
	require.NoError(t, nav.InitializeGraph(ds))

	want := geo.Distance(geo.Coord{Lat: 12.84, Lon: 80.13}, geo.Coord{Lat: 12.83, Lon: 80.13})
	w, ok := nav.Graph().Weight(0, 1)
	require.True(t, ok)
	assert.InDelta(t, want, w, 1e-9)
}

func TestInitializeGraph_ReplacesCampusAndDropsRoute(t *testing.T) {
	nav := newCampusNavigator(t)

	_, err := nav.FindPath("Main Gate", "Mess")
	require.NoError(t, err)
	_, ok := nav.LastPath()
	require.True(t, ok)

	// Reloading the campus invalidates any route planned on the old graph.
	require.NoError(t, nav.InitializeGraph(campus.DefaultDataset()))
	_, ok = nav.LastPath()
	assert.False(t, ok)
}

// ------------------------------------------------------------------------
// 2. Name-based route planning.
// ------------------------------------------------------------------------

func TestFindPath_MainGateToMess(t *testing.T) {
	nav := newCampusNavigator(t)

	p, err := nav.FindPath("Main Gate", "Mess")
	require.NoError(t, err)

	// The detour through the Auditorium beats going via the Admin Block.
	assert.Equal(t,
		[]string{"Main Gate", "Auditorium", "Academic Block", "Lab Complex", "Mess"},
		namesOf(t, nav, p))
	assert.InDelta(t, 363.09, p.TotalDistance(), 1e-6)

	last, ok := nav.LastPath()
	require.True(t, ok)
	assert.True(t, p.Equal(last))
}

func TestFindPath_ThroughLibrary(t *testing.T) {
	nav := newCampusNavigator(t)

	p, err := nav.FindPath("Main Gate", "Mess", "Library")
	require.NoError(t, err)

	assert.Equal(t,
		[]string{
			"Main Gate", "Auditorium", "Lecture Hall Complex", "Library",
			"Academic Block", "Lab Complex", "Mess",
		},
		namesOf(t, nav, p))
	assert.InDelta(t, 410.93, p.TotalDistance(), 1e-6)
}

func TestFindPath_NameFailures(t *testing.T) {
	nav := newCampusNavigator(t)

	_, err := nav.FindPath("", "Mess")
	assert.ErrorIs(t, err, navigator.ErrEmptyName)

	_, err = nav.FindPath("Main Gate", "Chapel")
	assert.ErrorIs(t, err, navigator.ErrLocationNotFound)

	_, err = nav.FindPath("Main Gate", "Mess", "Nowhere")
	assert.ErrorIs(t, err, navigator.ErrLocationNotFound)
}

func TestFindPath_UnreachableKeepsLastRoute(t *testing.T) {
	nav := newCampusNavigator(t)

	good, err := nav.FindPath("Main Gate", "Library")
	require.NoError(t, err)

	// turn_01 has no walkways: planning fails, the last route survives.
	_, err = nav.FindPath("Main Gate", "turn_01")
	require.ErrorIs(t, err, route.ErrPathNotFound)

	last, ok := nav.LastPath()
	require.True(t, ok)
	assert.True(t, good.Equal(last))
}

func TestFindPath_ViaEqualsEndpointPropagates(t *testing.T) {
	nav := newCampusNavigator(t)

	_, err := nav.FindPath("Main Gate", "Mess", "Main Gate")
	assert.ErrorIs(t, err, route.ErrViaSelection)
}

// ------------------------------------------------------------------------
// 3. Modes and time estimation.
// ------------------------------------------------------------------------

func TestSetMode_RejectsZeroMode(t *testing.T) {
	nav := navigator.New()

	require.ErrorIs(t, nav.SetMode(navigator.Mode{}), navigator.ErrNilMode)
	assert.Equal(t, navigator.Walking(), nav.Mode()) // previous mode kept
}

func TestEstimatedTime_TracksModeSwitches(t *testing.T) {
	nav := newCampusNavigator(t)

	p, err := nav.FindPath("Main Gate", "Mess")
	require.NoError(t, err)

	walking, err := nav.EstimatedTime()
	require.NoError(t, err)
	assert.InDelta(t, navigator.Walking().TravelTime(p.TotalDistance()), walking, 1e-9)

	require.NoError(t, nav.SetMode(navigator.Cycling()))
	cycling, err := nav.EstimatedTime()
	require.NoError(t, err)

	// Same route, triple the speed, a third of the time.
	assert.InDelta(t, walking/3, cycling, 1e-9)
}

func TestClearLastPath(t *testing.T) {
	nav := newCampusNavigator(t)

	_, err := nav.FindPath("Main Gate", "Mess")
	require.NoError(t, err)

	nav.ClearLastPath()
	_, ok := nav.LastPath()
	assert.False(t, ok)

	minutes, err := nav.EstimatedTime()
	require.NoError(t, err)
	assert.Zero(t, minutes)
}

// ------------------------------------------------------------------------
// 4. Projection over the loaded campus.
// ------------------------------------------------------------------------

func TestProjector_OverLoadedCampus(t *testing.T) {
	nav := newCampusNavigator(t)

	proj, err := nav.Projector(900, 800)
	require.NoError(t, err)

	// Every campus location must land inside the padded viewport.
	for _, loc := range nav.Locations() {
		x, y := proj.ToScreen(loc.Coord)
		assert.GreaterOrEqual(t, x, 90.0, "%s x", loc.Name)
		assert.LessOrEqual(t, x, 810.0, "%s x", loc.Name)
		assert.GreaterOrEqual(t, y, 80.0, "%s y", loc.Name)
		assert.LessOrEqual(t, y, 720.0, "%s y", loc.Name)
	}
}
