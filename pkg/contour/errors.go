package contour

import (
	"errors"
	"fmt"
)

// ErrInvalidWorkers is returned when the pipeline is asked to run with fewer
// than one worker
var ErrInvalidWorkers = errors.New("contour: worker count must be at least 1")

// TileDimensionError is returned when a contour tile does not match the
// grid step
type TileDimensionError struct {
	Config        int
	Width, Height int
	StepX, StepY  int
}

func (e *TileDimensionError) Error() string {
	return fmt.Sprintf("contour: tile %d is %dx%d, want %dx%d",
		e.Config, e.Width, e.Height, e.StepX, e.StepY)
}

// WorkerError wraps the failure of one pipeline worker
type WorkerError struct {
	Worker int
	Phase  string
	Err    error
}

func (e *WorkerError) Error() string {
	return fmt.Sprintf("contour: worker %d failed during %s: %v", e.Worker, e.Phase, e.Err)
}

func (e *WorkerError) Unwrap() error {
	return e.Err
}
