package raster

import (
	"errors"
	"fmt"
)

// ErrUnsupportedFormat is returned when no codec handles a file extension
var ErrUnsupportedFormat = errors.New("raster: unsupported format")

// DimensionError is returned when an image is created or decoded with
// non-positive dimensions
type DimensionError struct {
	Width, Height int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("raster: invalid dimensions %dx%d", e.Width, e.Height)
}

// FormatError is returned when a raster file is malformed
type FormatError struct {
	Path   string
	Reason string
}

func (e *FormatError) Error() string {
	if e.Path == "" {
		return "raster: malformed image: " + e.Reason
	}
	return fmt.Sprintf("raster: malformed image %s: %s", e.Path, e.Reason)
}
