package latex

import "errors"

// Common errors.
var (
	// ErrMissingLabel is returned when a reference is requested from an
	// element that was built without a label.
	ErrMissingLabel = errors.New("missing label")
)
