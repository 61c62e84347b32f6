package route

// Costing prices the step between two consecutive nodes of a path, in
// meters. The second return reports whether a price exists at all: the
// navigator backs this with graph edge weights and falls back to the
// great-circle distance between the node coordinates.
type Costing interface {
	Cost(from, to int) (float64, bool)
}

// CostingFunc adapts a plain function to the Costing interface.
type CostingFunc func(from, to int) (float64, bool)

// Cost implements Costing.
func (f CostingFunc) Cost(from, to int) (float64, bool) { return f(from, to) }

// Options configures a ShortestPath invocation.
//
// Vias — ordered list of mandatory intermediate nodes the route must
// pass through, in exactly this order. Empty means a plain two-point
// route.
type Options struct {
	Vias []int
}

// Option is a functional option for configuring ShortestPath.
type Option func(*Options)

// WithVias appends mandatory intermediate nodes, visited in the given
// order between start and end. Repeated use accumulates.
func WithVias(ids ...int) Option {
	return func(o *Options) {
		o.Vias = append(o.Vias, ids...)
	}
}
