// Package core provides the in-memory graph store used by the campus
// route planner: a weighted, undirected graph generic over any
// comparable node key.
//
// What:
//
//   - Graph[K] keeps an adjacency list of (neighbor, weight) arcs per node.
//   - AddUndirectedEdge stores one edge as two directed arcs of equal weight.
//   - Neighbors never fails: unknown nodes simply have no arcs.
//   - Removal operations cascade so no dangling arc can survive.
//
// Why:
//
//   - The planner only needs cheap arc enumeration and weight lookup.
//   - Keying by an opaque comparable type lets the same store serve
//     lightweight integer ids (the campus arena) or richer keys in tests.
//
// Invariants:
//
//   - Every arc endpoint exists as a node.
//   - Arc slices preserve insertion order, so iteration is deterministic
//     for identical build sequences; no map-order leaks into results.
//   - Self-loops are tolerated (stored once); parallel edges are kept
//     as-is — relaxation naturally settles on the cheapest one.
//
// Concurrency:
//
//   - The store is exclusively owned by a single session and read-only
//     after initial construction; it is deliberately lock-free.
//
// Errors:
//
//   - ErrNegativeWeight: an edge weight below zero was supplied.
//
// Complexity:
//
//   - AddNode / AddUndirectedEdge: O(1) amortized.
//   - Neighbors: O(deg) for the returned copy.
//   - RemoveNode: O(deg + incident arcs), RemoveEdge: O(deg(a)+deg(b)).
package core
