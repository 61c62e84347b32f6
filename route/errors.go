package route

import "errors"

// Sentinel errors returned by the planner and the Path value.
var (
	// ErrNilGraph indicates a nil graph was passed to the planner.
	ErrNilGraph = errors.New("route: graph is nil")

	// ErrNodeNotFound indicates start, end or a via node is absent from
	// the graph.
	ErrNodeNotFound = errors.New("route: node not found in graph")

	// ErrPathNotFound indicates the target stayed unreachable (distance
	// at the infinite sentinel) through algorithm termination.
	ErrPathNotFound = errors.New("route: no path between the requested nodes")

	// ErrViaSelection indicates a via node that coincides with the start
	// or end of the requested route, which makes the waypoint ambiguous.
	ErrViaSelection = errors.New("route: via coincides with start or end")

	// ErrReconstruction indicates a broken predecessor chain while
	// walking back from the target. This is an internal consistency
	// fault and should be unreachable.
	ErrReconstruction = errors.New("route: predecessor chain broken during reconstruction")

	// ErrInvalidAppend indicates an attempt to append an invalid node or
	// one whose step distance cannot be priced.
	ErrInvalidAppend = errors.New("route: cannot append node to path")
)
