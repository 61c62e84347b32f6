// Package navigator is the navigation session: the single public entry
// point over the planner, plus travel modes and time estimation.
//
// What:
//
//   - Navigator owns the campus arena and graph built from a Dataset,
//     the active travel Mode, and the last computed route.
//   - FindPath / FindPathIDs delegate to the route planner, store the
//     result as the last route, and propagate planner failures
//     unchanged — no translation, no swallowing.
//   - EstimatedTime converts the last route's distance into minutes
//     under the active mode.
//
// Modes:
//
//   - A Mode is an immutable value (name + speed in km/h) with a pure
//     time-conversion method; it is swapped by whole replacement, never
//     mutated in place. Walking (5 km/h) and Cycling (15 km/h) are the
//     built-in variants; both speeds are configuration, overridable via
//     a small YAML ModeConfig.
//   - A Navigator always starts with the Walking mode, so "no mode set"
//     is unreachable through the public API.
//
// Errors:
//
//   - ErrNotInitialized, ErrNilMode, ErrNoMode, ErrEmptyName,
//     ErrLocationNotFound, ErrBadSpeed.
package navigator
