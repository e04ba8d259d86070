package render

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownFormat indicates an output format no canvas backend handles.
	ErrUnknownFormat = errors.New("render: unknown output format")

	// ErrNilData indicates a renderer was called without content.
	ErrNilData = errors.New("render: nil chart data")
)

// RenderError wraps a failure with the chart being drawn.
type RenderError struct {
	Chart string
	Path  string
	Err   error
}

func (e *RenderError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("render %s (%s): %v", e.Chart, e.Path, e.Err)
	}
	return fmt.Sprintf("render %s: %v", e.Chart, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}
