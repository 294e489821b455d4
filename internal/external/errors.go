package external

import "errors"

var (
	ErrMissingDependency = errors.New("missing dependency")
	ErrRendererFailed    = errors.New("external renderer failed")
	// ErrNoOutput means the renderer exited cleanly but left no video behind.
	ErrNoOutput = errors.New("external renderer produced no output")
)
