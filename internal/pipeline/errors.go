package pipeline

import (
	"errors"

	"github.com/san-kum/contrastviz/internal/external"
)

var (
	ErrMissingDependency = external.ErrMissingDependency
	ErrRendererFailed    = external.ErrRendererFailed
	ErrUnknownMode       = errors.New("unknown mode")
)
