package route

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/vcnav/campusnav/core"
)

// ShortestPath computes the minimum-distance route from start to end
// over the weighted undirected graph g, optionally chained across the
// ordered via nodes supplied with WithVias. Each consecutive pair is
// planned as an independent Dijkstra leg and the legs are concatenated
// with boundary-node deduplication.
//
// Validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. start and end must exist in g (ErrNodeNotFound).
//  3. No via may equal start or end (ErrViaSelection).
//  4. Every via must exist in g (ErrNodeNotFound).
//
// A start == end request yields a single-node path with distance 0.
//
// Complexity: O((V + E) log V) per leg, O(V + E) auxiliary space.
func ShortestPath(g *core.Graph[int], cost Costing, start, end int, opts ...Option) (Path, error) {
	// 1) Apply functional options.
	var o Options
	for _, opt := range opts {
		opt(&o)
	}

	// 2) Validate the graph and both endpoints.
	if g == nil {
		return Path{}, ErrNilGraph
	}
	// Without an explicit costing, price path steps straight off the
	// graph's edge weights.
	if cost == nil {
		cost = CostingFunc(g.Weight)
	}
	if !g.HasNode(start) {
		return Path{}, fmt.Errorf("%w: start %d", ErrNodeNotFound, start)
	}
	if !g.HasNode(end) {
		return Path{}, fmt.Errorf("%w: end %d", ErrNodeNotFound, end)
	}

	// 3) Validate the via list before planning any leg: a via equal to
	//    start or end is an ambiguous waypoint, not a routing request.
	for _, via := range o.Vias {
		if via == start || via == end {
			return Path{}, fmt.Errorf("%w: via %d", ErrViaSelection, via)
		}
		if !g.HasNode(via) {
			return Path{}, fmt.Errorf("%w: via %d", ErrNodeNotFound, via)
		}
	}

	// 4) Plan leg by leg along start→via₁→…→viaₙ→end and concatenate.
	stops := make([]int, 0, len(o.Vias)+2)
	stops = append(stops, start)
	stops = append(stops, o.Vias...)
	stops = append(stops, end)

	total, err := twoPoint(g, cost, stops[0], stops[1])
	if err != nil {
		return Path{}, err
	}
	for i := 1; i < len(stops)-1; i++ {
		leg, err := twoPoint(g, cost, stops[i], stops[i+1])
		if err != nil {
			return Path{}, err
		}
		// Each leg starts where the previous ended, so Concat drops the
		// duplicated boundary node.
		total, err = Concat(total, leg)
		if err != nil {
			return Path{}, err
		}
	}

	return total, nil
}

// twoPoint runs a single Dijkstra leg from start to end.
func twoPoint(g *core.Graph[int], cost Costing, start, end int) (Path, error) {
	// A degenerate leg is a single-node path with distance 0.
	if start == end {
		return NewPath(cost, start)
	}

	r := &runner{
		g:       g,
		dist:    make(map[int]float64, g.NodeCount()),
		prev:    make(map[int]int, g.NodeCount()),
		settled: make(map[int]bool, g.NodeCount()),
		target:  end,
	}
	r.run(start)

	// Unreached target: its distance stayed at the infinite sentinel.
	if !r.settled[end] {
		return Path{}, fmt.Errorf("%w: %d→%d", ErrPathNotFound, start, end)
	}

	return r.reconstruct(cost, start, end)
}

// runner holds the mutable state of one Dijkstra execution.
type runner struct {
	g       *core.Graph[int]
	dist    map[int]float64 // node id → best-known distance from start
	prev    map[int]int     // node id → predecessor on the shortest path
	settled map[int]bool    // node id → distance finalized
	pq      nodePQ          // min-heap frontier, lazy decrease-key
	target  int
}

// run executes the main relaxation loop from start, stopping as soon as
// the target is settled.
func (r *runner) run(start int) {
	// 1) All distances start at +∞ except the source at 0. Unlisted map
	//    entries read as +∞ through distTo, so only the source is seeded.
	r.dist[start] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: start, dist: 0})

	for r.pq.Len() > 0 {
		// 2) Pop the closest unsettled node.
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id

		// 3) Skip stale heap entries for already settled nodes.
		if r.settled[u] {
			continue
		}

		// 4) Settle u: its distance is now final.
		r.settled[u] = true

		// 5) Early termination: once the target is settled no shorter
		//    route to it can appear, so the rest of the graph is moot.
		if u == r.target {
			return
		}

		// 6) Relax every outgoing arc of u.
		for _, arc := range r.g.Neighbors(u) {
			if r.settled[arc.To] {
				continue
			}
			candidate := r.dist[u] + arc.Weight
			if candidate >= r.distTo(arc.To) {
				continue
			}
			r.dist[arc.To] = candidate
			r.prev[arc.To] = u
			heap.Push(&r.pq, &nodeItem{id: arc.To, dist: candidate})
		}
	}
}

// distTo reads the best-known distance of id, treating absence as the
// infinite sentinel.
func (r *runner) distTo(id int) float64 {
	if d, ok := r.dist[id]; ok {
		return d
	}

	return math.Inf(1)
}

// reconstruct walks the predecessor links from end back to start and
// builds the forward Path. A broken link means the distance bookkeeping
// was inconsistent — surfaced as ErrReconstruction rather than a panic.
func (r *runner) reconstruct(cost Costing, start, end int) (Path, error) {
	reverse := []int{end}
	for cur := end; cur != start; {
		p, ok := r.prev[cur]
		if !ok {
			return Path{}, fmt.Errorf("%w: no predecessor for %d", ErrReconstruction, cur)
		}
		reverse = append(reverse, p)
		cur = p
	}

	path, err := NewPath(cost, start)
	if err != nil {
		return Path{}, err
	}
	for i := len(reverse) - 2; i >= 0; i-- {
		if err = path.Append(reverse[i]); err != nil {
			return Path{}, err
		}
	}

	return path, nil
}

// nodeItem is one frontier entry: a node and its tentative distance.
type nodeItem struct {
	id   int
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending. Improved
// distances push duplicates; stale entries are skipped on pop once the
// node is settled (lazy decrease-key).
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
