package raster

import (
	"time"
)

// Reader is the interface for raster decoders
type Reader interface {
	// Read decodes the raster file at path and returns the image together
	// with the time spent reading it
	Read(path string) (*Image, time.Duration, error)
}
