package trajectory

import "errors"

var (
	// ErrSampleCount indicates fewer than two samples were requested.
	ErrSampleCount = errors.New("trajectory: sample count must be at least 2")

	// ErrInvalidSpec indicates a non-positive or non-finite duration, or a
	// non-finite offset.
	ErrInvalidSpec = errors.New("trajectory: invalid spec")
)
