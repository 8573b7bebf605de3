package hypothesis

import "errors"

var (
	// ErrEmptySubmission indicates hypothesis text that is empty or only
	// whitespace. Nothing is written.
	ErrEmptySubmission = errors.New("hypothesis: empty submission")

	// ErrPersistence indicates the log could not be opened or written.
	ErrPersistence = errors.New("hypothesis: persistence failure")
)
