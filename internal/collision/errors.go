package collision

import "errors"

var (
	// ErrInvalidInput indicates a non-positive or non-finite mass, or a
	// non-finite velocity.
	ErrInvalidInput = errors.New("collision: invalid input")
)
