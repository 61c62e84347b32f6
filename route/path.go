package route

import "fmt"

// Path is an ordered sequence of node ids plus the accumulated total
// distance in meters. It is append-only during construction; once
// returned to a caller it is treated as a value to compare and
// concatenate, never mutated in place.
//
// Invariant: TotalDistance() >= 0, and a path of length <= 1 has total
// distance 0.
type Path struct {
	cost  Costing
	nodes []int
	total float64
}

// NewPath constructs a single-node path starting at start, priced by
// cost for subsequent appends. Returns ErrInvalidAppend for a negative
// start id.
func NewPath(cost Costing, start int) (Path, error) {
	var p Path
	p.cost = cost
	if err := p.Append(start); err != nil {
		return Path{}, err
	}

	return p, nil
}

// Append adds id to the end of the path, accumulating the step distance
// from the current last node as priced by the path's Costing. Appending
// to an empty path records the node with no distance. Fails with
// ErrInvalidAppend when id is negative or the step cannot be priced.
func (p *Path) Append(id int) error {
	if id < 0 {
		return fmt.Errorf("%w: negative id %d", ErrInvalidAppend, id)
	}
	if len(p.nodes) > 0 {
		last := p.nodes[len(p.nodes)-1]
		if p.cost == nil {
			return fmt.Errorf("%w: no costing to price step %d→%d", ErrInvalidAppend, last, id)
		}
		step, ok := p.cost.Cost(last, id)
		if !ok {
			return fmt.Errorf("%w: no distance for step %d→%d", ErrInvalidAppend, last, id)
		}
		p.total += step
	}
	p.nodes = append(p.nodes, id)

	return nil
}

// Concat returns a new Path holding a's nodes followed by b's nodes.
// When a's last node equals b's first node the duplicate is dropped, so
// no zero-length self-edge artifact enters the result. When the
// boundary nodes differ, the bridging step is priced like any other
// append and may fail with ErrInvalidAppend.
func Concat(a, b Path) (Path, error) {
	cost := a.cost
	if cost == nil {
		cost = b.cost
	}

	out := Path{cost: cost, nodes: make([]int, 0, a.Len()+b.Len())}
	for _, id := range a.nodes {
		if err := out.Append(id); err != nil {
			return Path{}, err
		}
	}

	rest := b.nodes
	if !a.Empty() && !b.Empty() && a.nodes[len(a.nodes)-1] == b.nodes[0] {
		rest = rest[1:] // shared boundary node: keep it once
	}
	for _, id := range rest {
		if err := out.Append(id); err != nil {
			return Path{}, err
		}
	}

	return out, nil
}

// CompareByDistance orders paths by total distance: -1 when a is
// shorter, +1 when longer, 0 on equal distance. The induced ordering is
// a strict weak order usable with sort and slices.SortFunc; ties keep
// their incoming order under a stable sort.
func CompareByDistance(a, b Path) int {
	switch {
	case a.total < b.total:
		return -1
	case a.total > b.total:
		return 1
	default:
		return 0
	}
}

// Equal reports whether p and q hold the same node-id sequence. Total
// distance is deliberately not part of equality: identical sequences
// always accumulate identical distances.
func (p Path) Equal(q Path) bool {
	if len(p.nodes) != len(q.nodes) {
		return false
	}
	for i, id := range p.nodes {
		if q.nodes[i] != id {
			return false
		}
	}

	return true
}

// Nodes returns a copy of the node-id sequence.
func (p Path) Nodes() []int {
	out := make([]int, len(p.nodes))
	copy(out, p.nodes)

	return out
}

// TotalDistance returns the accumulated distance in meters.
func (p Path) TotalDistance() float64 { return p.total }

// Len returns the number of nodes in the path.
func (p Path) Len() int { return len(p.nodes) }

// Empty reports whether the path holds no nodes.
func (p Path) Empty() bool { return len(p.nodes) == 0 }

// First returns the first node id, or false for an empty path.
func (p Path) First() (int, bool) {
	if len(p.nodes) == 0 {
		return 0, false
	}

	return p.nodes[0], true
}

// Last returns the last node id, or false for an empty path.
func (p Path) Last() (int, bool) {
	if len(p.nodes) == 0 {
		return 0, false
	}

	return p.nodes[len(p.nodes)-1], true
}
