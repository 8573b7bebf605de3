package export

import "errors"

var (
	ErrNoFrames = errors.New("export: no frames")
	ErrNoRun    = errors.New("export: no run")
)
