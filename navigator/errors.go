package navigator

import "errors"

var (
	// ErrNotInitialized indicates a route request before InitializeGraph.
	ErrNotInitialized = errors.New("navigator: graph not initialized")
	// ErrNilMode indicates SetMode was called with a zero mode.
	ErrNilMode = errors.New("navigator: navigation mode is unset")
	// ErrNoMode indicates a time estimate was requested while no mode is
	// active. Unreachable in practice: every Navigator starts with a
	// default mode.
	ErrNoMode = errors.New("navigator: no navigation mode has been set")
	// ErrEmptyName indicates an empty location name where one is required.
	ErrEmptyName = errors.New("navigator: location name is empty")
	// ErrLocationNotFound indicates a name that matches no campus location.
	ErrLocationNotFound = errors.New("navigator: location not found")
	// ErrBadSpeed indicates a configured mode speed that is not positive.
	ErrBadSpeed = errors.New("navigator: mode speed must be positive")
)
