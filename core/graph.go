package core

// AddNode inserts node k with an empty adjacency list if it is not
// already present. Idempotent: re-adding an existing node is a no-op.
// Complexity: O(1) amortized.
func (g *Graph[K]) AddNode(k K) {
	if _, exists := g.adjacency[k]; exists {
		return
	}
	g.adjacency[k] = nil
	g.order = append(g.order, k)
}

// AddUndirectedEdge connects a and b with the given weight in meters.
// The edge is stored as two directed arcs of equal weight (one arc for
// a self-loop), and both endpoints are auto-added if missing.
// Parallel edges are kept as separate arcs.
//
// Returns ErrNegativeWeight if weight < 0.
// Complexity: O(1) amortized.
func (g *Graph[K]) AddUndirectedEdge(a, b K, weight float64) error {
	if weight < 0 {
		return ErrNegativeWeight
	}

	g.AddNode(a)
	g.AddNode(b)

	g.adjacency[a] = append(g.adjacency[a], Arc[K]{To: b, Weight: weight})
	if a != b {
		g.adjacency[b] = append(g.adjacency[b], Arc[K]{To: a, Weight: weight})
	}
	g.edges = append(g.edges, EdgeRef[K]{From: a, To: b, Weight: weight})

	return nil
}

// Neighbors returns a copy of the adjacency list of k, in the order the
// arcs were added. Unknown nodes yield an empty slice; Neighbors never
// fails. Complexity: O(deg(k)).
func (g *Graph[K]) Neighbors(k K) []Arc[K] {
	arcs := g.adjacency[k]
	if len(arcs) == 0 {
		return nil
	}
	out := make([]Arc[K], len(arcs))
	copy(out, arcs)

	return out
}

// HasNode reports whether k is present in the graph. Complexity: O(1).
func (g *Graph[K]) HasNode(k K) bool {
	_, ok := g.adjacency[k]

	return ok
}

// Weight returns the minimum weight among the (possibly parallel) edges
// connecting a to b, and whether any such edge exists.
// Complexity: O(deg(a)).
func (g *Graph[K]) Weight(a, b K) (float64, bool) {
	var best float64
	found := false
	for _, arc := range g.adjacency[a] {
		if arc.To != b {
			continue
		}
		if !found || arc.Weight < best {
			best = arc.Weight
			found = true
		}
	}

	return best, found
}

// Nodes returns all node keys in insertion order. The returned slice is
// a copy. Complexity: O(V).
func (g *Graph[K]) Nodes() []K {
	out := make([]K, len(g.order))
	copy(out, g.order)

	return out
}

// Edges returns every undirected edge exactly once, in the order the
// edges were added. The returned slice is a copy. Complexity: O(E).
func (g *Graph[K]) Edges() []EdgeRef[K] {
	out := make([]EdgeRef[K], len(g.edges))
	copy(out, g.edges)

	return out
}

// NodeCount returns the number of nodes. Complexity: O(1).
func (g *Graph[K]) NodeCount() int { return len(g.order) }

// EdgeCount returns the number of undirected edges. Complexity: O(1).
func (g *Graph[K]) EdgeCount() int { return len(g.edges) }

// RemoveEdge deletes every edge (including parallels) between a and b,
// in both directions. Removing an absent edge is a no-op.
// Complexity: O(deg(a) + deg(b) + E).
func (g *Graph[K]) RemoveEdge(a, b K) {
	if _, ok := g.adjacency[a]; ok {
		g.adjacency[a] = dropArcs(g.adjacency[a], b)
	}
	if _, ok := g.adjacency[b]; ok && a != b {
		g.adjacency[b] = dropArcs(g.adjacency[b], a)
	}

	kept := g.edges[:0]
	for _, e := range g.edges {
		if (e.From == a && e.To == b) || (e.From == b && e.To == a) {
			continue
		}
		kept = append(kept, e)
	}
	g.edges = kept
}

// RemoveNode deletes k and cascades removal of every incident edge, so
// no dangling arc survives. Removing an absent node is a no-op.
// Complexity: O(deg(k) · max-deg + E).
func (g *Graph[K]) RemoveNode(k K) {
	arcs, exists := g.adjacency[k]
	if !exists {
		return
	}

	// Strip the back-arcs held by each neighbor.
	for _, arc := range arcs {
		if arc.To == k {
			continue // self-loop: no back-arc was stored
		}
		g.adjacency[arc.To] = dropArcs(g.adjacency[arc.To], k)
	}
	delete(g.adjacency, k)

	kept := g.edges[:0]
	for _, e := range g.edges {
		if e.From == k || e.To == k {
			continue
		}
		kept = append(kept, e)
	}
	g.edges = kept

	for i, n := range g.order {
		if n == k {
			g.order = append(g.order[:i], g.order[i+1:]...)
			break
		}
	}
}

// dropArcs returns arcs with every entry pointing at target removed,
// preserving the order of the remainder.
func dropArcs[K comparable](arcs []Arc[K], target K) []Arc[K] {
	kept := arcs[:0]
	for _, arc := range arcs {
		if arc.To == target {
			continue
		}
		kept = append(kept, arc)
	}

	return kept
}
