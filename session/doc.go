// Package session is the interactive selection state machine layered
// over a navigator.Navigator: the part of the system a renderer or
// input loop talks to frame by frame.
//
// What:
//
//   - Two UI modes. Explore treats a selection as "inspect this
//     location" (info panel); Navigate treats selections as route
//     endpoints: first pick is the start, second is the end and
//     triggers planning, a third replaces the start and clears the
//     rest.
//   - An ordered via list toggled per location. Vias never overlap the
//     endpoints, and changing them replans an existing route.
//   - Viewport state for a renderer: zoom in ×1.1 steps clamped to
//     [0.5, 3.0], and a drag-based pan offset.
//
// Failure model:
//
//   - The session never returns planner errors to the caller. A failed
//     planning attempt clears the route, keeps every selection intact,
//     and records the failure in LastError for the UI to display. The
//     next successful plan resets it.
//
// Like the Navigator underneath it, a Session is single-goroutine
// state driven by one input loop.
package session
