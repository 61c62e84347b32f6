// Package campus owns the static campus dataset: named locations with
// GPS coordinates, the walkway connection table, and the arena of
// Location records every other component references by integer id.
//
// What:
//
//   - Dataset: plain YAML-mapped records (locations + connections),
//     loadable from a file or from the embedded default campus.
//   - Arena: the sole owner of []*Location with stable ids; all other
//     packages hold ids, never the records themselves.
//   - Building-category payloads (Academic, Hostel) ride along on a
//     Location for the info-panel renderer; the planner ignores them.
//
// Why:
//
//   - Keeping ownership in one place removes every lifetime concern:
//     ids are valid for the whole process, records never move.
//   - Hidden turn waypoints (names prefixed "turn_", or the "[hidden]"
//     description sentinel) share the graph with visible buildings but
//     are skipped by label-drawing consumers.
//
// Errors:
//
//   - ErrEmptyName, ErrDuplicateName, ErrBadCoordinate,
//     ErrNegativeDistance, ErrUnknownLocation — dataset validation.
//
// The default dataset is the IIITDM Kancheepuram campus: 13 buildings,
// 9 hidden turn waypoints and 18 surveyed walkway connections.
package campus
