package dragselect

import "errors"

var (
	// ErrNotAttached is returned when a selection is activated before a host
	// has been attached.
	ErrNotAttached = errors.New("dragselect: no host attached")
	// ErrUnsupportedOrientation is returned when the host has no single
	// linear scroll axis.
	ErrUnsupportedOrientation = errors.New("dragselect: host orientation is not linear")
)
