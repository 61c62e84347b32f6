// Package campusnav is the route-planning core of an interactive campus
// map viewer: a weighted-graph shortest-path engine with ordered
// mandatory waypoints, and the navigation/selection state that drives it.
//
// The module is organized into small, focused packages:
//
//	core/      — generic weighted undirected graph store
//	geo/       — great-circle distance and GPS→screen projection
//	campus/    — campus dataset: locations, building info, YAML loading
//	route/     — Dijkstra planner and the Path value type
//	navigator/ — navigation session: travel modes, time estimates
//	session/   — explore/navigate selection state machine, viewport
//	cmd/campusnav — console demo over the default campus dataset
//
// Quick ASCII example of the planning core:
//
//	A───B
//	│   │
//	C───D
//
//	g := core.NewGraph[int]()
//	g.AddUndirectedEdge(a, b, 10)
//	g.AddUndirectedEdge(b, d, 5)
//	g.AddUndirectedEdge(a, c, 8)
//	g.AddUndirectedEdge(c, d, 8)
//	p, err := route.ShortestPath(g, cost, a, d, route.WithVias(b))
//	// p.Nodes() == [a, b, d], p.TotalDistance() == 15
//
// The renderer, the windowing toolkit and the static map artwork are
// consumers of this module, not part of it: they read selection and
// route state each frame and draw markers and lines.
package campusnav
