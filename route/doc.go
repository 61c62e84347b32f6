// Package route implements the shortest-path planner and the Path
// value type used to represent computed routes.
//
// What:
//
//   - ShortestPath runs Dijkstra's algorithm between two nodes of a
//     core.Graph[int], optionally chained across an ordered list of
//     mandatory via nodes (start→via₁→…→viaₙ→end).
//   - Path is an append-only sequence of node ids with an accumulated
//     total distance; it supports concatenation with boundary-node
//     deduplication, distance comparison, and sequence equality.
//   - Costing prices the step between two consecutive nodes; the
//     navigator supplies one backed by graph edge weights with a
//     great-circle fallback.
//
// Algorithm:
//
//   - Priority relaxation with a binary min-heap and the lazy
//     decrease-key strategy: improved distances push duplicate heap
//     entries, stale entries are skipped on pop once a node is settled.
//   - The loop exits early as soon as the target node is settled; a
//     full exploration of the graph is never needed.
//   - Tie-breaking between equal distances follows heap pop order,
//     which is deterministic per run because adjacency lists preserve
//     insertion order.
//
// Errors (sentinel):
//
//   - ErrNilGraph        — nil graph supplied.
//   - ErrNodeNotFound    — start, end or a via is absent from the graph.
//   - ErrPathNotFound    — the target is unreachable from the source.
//   - ErrViaSelection    — a via coincides with start or end.
//   - ErrReconstruction  — broken predecessor chain (programming-error
//     class; unreachable if distances were tracked correctly).
//   - ErrInvalidAppend   — appending an unpriceable or invalid node.
//
// Complexity:
//
//   - Time:  O((V + E) log V) per leg.
//   - Space: O(V) for the distance/predecessor/settled maps,
//     O(E) worst case in the heap under lazy decrease-key.
package route
