// Package ppm reads and writes portable pixmaps, the format used for input
// rasters and contour tiles. Decoding accepts binary (P6) and plain (P3)
// files with comments and any maxval; samples are scaled to 8 bits.
package ppm

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spakin/netpbm"

	"github.com/luismi/marching_squares/pkg/raster"
	"github.com/luismi/marching_squares/pkg/raster/stdimg"
)

// Reader implements raster.Reader for PPM files
type Reader struct{}

// NewReader creates a new PPM reader
func NewReader() *Reader {
	return &Reader{}
}

// Read implements the raster.Reader interface
func (r *Reader) Read(path string) (*raster.Image, time.Duration, error) {
	start := time.Now()

	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, 0, fmt.Errorf("ppm: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	img, err := Decode(f)
	if err != nil {
		if fe, ok := err.(*raster.FormatError); ok {
			fe.Path = path
		}
		return nil, 0, err
	}
	return img, time.Since(start), nil
}

// Decode reads a P6 or P3 pixmap from rd. Other netpbm flavours are
// rejected.
func Decode(rd io.Reader) (*raster.Image, error) {
	src, err := netpbm.Decode(rd, &netpbm.DecodeOptions{
		Target: netpbm.PPM,
		Exact:  true,
	})
	if err != nil {
		return nil, &raster.FormatError{Reason: err.Error()}
	}
	return stdimg.FromImage(src)
}
