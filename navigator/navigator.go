package navigator

import (
	"fmt"

	"github.com/vcnav/campusnav/campus"
	"github.com/vcnav/campusnav/core"
	"github.com/vcnav/campusnav/geo"
	"github.com/vcnav/campusnav/route"
)

// Navigator is the navigation session facade: it owns the campus arena
// and the walkway graph built from a Dataset, tracks the active travel
// Mode and the last planned route, and answers name-based route and
// time queries.
//
// A Navigator is single-goroutine state, like the rest of the module:
// callers that need concurrency wrap it themselves.
type Navigator struct {
	arena *campus.Arena
	graph *core.Graph[int]
	mode  Mode
	last  route.Path
}

// New returns a Navigator with the default Walking mode active and no
// graph loaded. Call InitializeGraph before planning routes.
func New() *Navigator {
	return &Navigator{mode: Walking()}
}

// NewWithConfig is New with configured mode speeds; the configured
// Walking mode is active. Fails with ErrBadSpeed on a non-positive
// speed.
func NewWithConfig(cfg ModeConfig) (*Navigator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Navigator{mode: cfg.Walking()}, nil
}

// InitializeGraph builds the arena and the weighted walkway graph from
// ds, replacing any previously loaded campus. Every location becomes a
// node (isolated ones included), every connection an undirected edge.
// A connection with zero meters gets its weight derived from the
// haversine distance between its endpoints.
func (n *Navigator) InitializeGraph(ds campus.Dataset) error {
	// 1) Validate the dataset and intern every location.
	arena, err := campus.NewArena(ds)
	if err != nil {
		return err
	}

	// 2) Seed the graph with every location id, so that waypoints with
	//    no surveyed connection still resolve (and fail routing with
	//    ErrPathNotFound rather than ErrNodeNotFound).
	g := core.NewGraph[int]()
	for _, loc := range arena.All() {
		g.AddNode(loc.ID)
	}

	// 3) Wire the surveyed connections.
	for _, conn := range ds.Connections {
		from, _ := arena.ByName(conn.From) // endpoints validated by NewArena
		to, _ := arena.ByName(conn.To)
		meters := conn.Meters
		if meters == 0 {
			meters = geo.Distance(from.Coord, to.Coord)
		}
		if err = g.AddUndirectedEdge(from.ID, to.ID, meters); err != nil {
			return fmt.Errorf("navigator: connection %s–%s: %w", conn.From, conn.To, err)
		}
	}

	// 4) Swap in the new campus atomically from the caller's view; the
	//    last route belonged to the old graph, drop it.
	n.arena = arena
	n.graph = g
	n.last = route.Path{}

	return nil
}

// costing prices a step off the graph's edge weight, falling back to
// the haversine distance between the endpoints when no edge exists.
// The fallback only matters for paths assembled outside the planner;
// Dijkstra itself never walks a non-edge.
func (n *Navigator) costing() route.Costing {
	return route.CostingFunc(func(from, to int) (float64, bool) {
		if w, ok := n.graph.Weight(from, to); ok {
			return w, true
		}
		a, okA := n.arena.ByID(from)
		b, okB := n.arena.ByID(to)
		if !okA || !okB {
			return 0, false
		}

		return geo.Distance(a.Coord, b.Coord), true
	})
}

// FindPath plans the shortest route between two named locations,
// passing through the named vias in the given order, and records it as
// the last route. Planner failures propagate unchanged and leave the
// last route untouched.
func (n *Navigator) FindPath(startName, endName string, viaNames ...string) (route.Path, error) {
	if n.graph == nil {
		return route.Path{}, ErrNotInitialized
	}

	start, err := n.resolve(startName)
	if err != nil {
		return route.Path{}, err
	}
	end, err := n.resolve(endName)
	if err != nil {
		return route.Path{}, err
	}
	vias := make([]int, 0, len(viaNames))
	for _, name := range viaNames {
		id, err := n.resolve(name)
		if err != nil {
			return route.Path{}, err
		}
		vias = append(vias, id)
	}

	return n.FindPathIDs(start, end, vias...)
}

// FindPathIDs is FindPath keyed by location id instead of name.
func (n *Navigator) FindPathIDs(start, end int, vias ...int) (route.Path, error) {
	if n.graph == nil {
		return route.Path{}, ErrNotInitialized
	}

	p, err := route.ShortestPath(n.graph, n.costing(), start, end, route.WithVias(vias...))
	if err != nil {
		return route.Path{}, err
	}
	n.last = p

	return p, nil
}

// resolve maps a location name to its id.
func (n *Navigator) resolve(name string) (int, error) {
	if name == "" {
		return 0, ErrEmptyName
	}
	loc, ok := n.arena.ByName(name)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrLocationNotFound, name)
	}

	return loc.ID, nil
}

// SetMode replaces the active travel mode. Fails with ErrNilMode for
// the zero Mode; the previous mode stays active on failure.
func (n *Navigator) SetMode(m Mode) error {
	if m.IsZero() {
		return ErrNilMode
	}
	n.mode = m

	return nil
}

// EstimatedTime returns the travel time of the last planned route in
// minutes under the active mode. With no route planned it reports 0
// minutes. ErrNoMode is returned when no mode is active, which cannot
// happen through New.
func (n *Navigator) EstimatedTime() (float64, error) {
	if n.mode.IsZero() {
		return 0, ErrNoMode
	}
	if n.last.Empty() {
		return 0, nil
	}

	return n.mode.TravelTime(n.last.TotalDistance()), nil
}

// Mode returns the active travel mode.
func (n *Navigator) Mode() Mode { return n.mode }

// LastPath returns the most recently planned route and whether one
// exists.
func (n *Navigator) LastPath() (route.Path, bool) {
	return n.last, !n.last.Empty()
}

// ClearLastPath forgets the last planned route.
func (n *Navigator) ClearLastPath() { n.last = route.Path{} }

// Locations returns every campus location in id order, or nil before
// InitializeGraph.
func (n *Navigator) Locations() []*campus.Location {
	if n.arena == nil {
		return nil
	}

	return n.arena.All()
}

// LocationByName looks up a campus location by exact name.
func (n *Navigator) LocationByName(name string) (*campus.Location, bool) {
	if n.arena == nil {
		return nil, false
	}

	return n.arena.ByName(name)
}

// LocationByID looks up a campus location by id.
func (n *Navigator) LocationByID(id int) (*campus.Location, bool) {
	if n.arena == nil {
		return nil, false
	}

	return n.arena.ByID(id)
}

// Graph exposes the walkway graph for read-only inspection, or nil
// before InitializeGraph.
func (n *Navigator) Graph() *core.Graph[int] { return n.graph }

// Projector builds a screen projector over the loaded campus for a
// width×height viewport. Fails with ErrNotInitialized before
// InitializeGraph.
func (n *Navigator) Projector(width, height float64) (*geo.Projector, error) {
	if n.arena == nil {
		return nil, ErrNotInitialized
	}

	return geo.NewProjector(n.arena.Coords(), width, height)
}
