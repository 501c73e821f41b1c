package raster

import (
	"time"
)

// Writer is the interface for raster encoders
type Writer interface {
	// Write encodes img to path, overwriting any existing file.
	// Returns the time taken to write the image and any error that occurred.
	// The caller may release img once Write returns, so implementations
	// must not retain it.
	Write(img *Image, path string) (time.Duration, error)
}

// WriterFunc adapts a plain function to the Writer interface
type WriterFunc func(img *Image, path string) (time.Duration, error)

// Write calls f(img, path)
func (f WriterFunc) Write(img *Image, path string) (time.Duration, error) {
	return f(img, path)
}
