package campus

import "errors"

var (
	// ErrEmptyName indicates a location record without a name.
	ErrEmptyName = errors.New("campus: location name is empty")
	// ErrDuplicateName indicates two location records share a name.
	ErrDuplicateName = errors.New("campus: duplicate location name")
	// ErrBadCoordinate indicates a latitude/longitude outside GPS ranges.
	ErrBadCoordinate = errors.New("campus: coordinate out of range")
	// ErrNegativeDistance indicates a connection with a negative length.
	ErrNegativeDistance = errors.New("campus: connection distance must be non-negative")
	// ErrUnknownLocation indicates a connection endpoint that matches no location.
	ErrUnknownLocation = errors.New("campus: unknown location name")
)
