// Package core types: Arc, EdgeRef, Graph and the NewGraph constructor.
package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrNegativeWeight indicates an edge weight below zero was supplied.
	ErrNegativeWeight = errors.New("core: edge weight must be non-negative")
)

// Arc is a single directed adjacency entry: the neighbor a node can
// reach and the weight (meters) of the connecting edge.
type Arc[K comparable] struct {
	// To is the neighbor node key.
	To K

	// Weight is the traversal cost in meters. Never negative.
	Weight float64
}

// EdgeRef describes one undirected edge exactly once, in the order it
// was added. Renderers use it to enumerate connections for drawing.
type EdgeRef[K comparable] struct {
	From   K
	To     K
	Weight float64
}

// Graph is a weighted, undirected graph keyed by any comparable node
// type. The zero value is not usable; construct with NewGraph.
//
// Storage is a plain adjacency list plus an insertion-ordered node
// slice, so every enumeration the planner or a renderer performs is
// deterministic for identical build sequences.
type Graph[K comparable] struct {
	order     []K            // node keys in insertion order
	adjacency map[K][]Arc[K] // node key → outgoing arcs, append-ordered
	edges     []EdgeRef[K]   // each undirected edge once, insertion order
}

// NewGraph creates an empty weighted undirected graph.
// Complexity: O(1).
func NewGraph[K comparable]() *Graph[K] {
	return &Graph[K]{
		adjacency: make(map[K][]Arc[K]),
	}
}
