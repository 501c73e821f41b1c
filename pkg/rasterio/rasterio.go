// Package rasterio picks a raster codec from a file name. Files ending in
// .zst are transparently decompressed on load and compressed on save, and
// the extension before it selects the codec (image.ppm.zst, image.png.zst).
// Loading sniffs the content when the extension is not .ppm or .pnm, so a
// pixmap named "input" or "input.raw" still loads.
package rasterio

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/klauspost/compress/zstd"

	"github.com/luismi/marching_squares/pkg/raster"
	"github.com/luismi/marching_squares/pkg/raster/ppm"
	"github.com/luismi/marching_squares/pkg/raster/stdimg"
)

const zstdExt = ".zst"

// Reader implements raster.Reader over every supported format
type Reader struct{}

// NewReader creates a format-dispatching reader
func NewReader() *Reader {
	return &Reader{}
}

// Read implements the raster.Reader interface
func (r *Reader) Read(path string) (*raster.Image, time.Duration, error) {
	return Load(path)
}

// Writer implements raster.Writer over every supported format
type Writer struct{}

// NewWriter creates a format-dispatching writer
func NewWriter() *Writer {
	return &Writer{}
}

// Write implements the raster.Writer interface
func (w *Writer) Write(img *raster.Image, path string) (time.Duration, error) {
	return Save(img, path)
}

// splitExt returns the codec extension of path and whether it is zstd
// compressed
func splitExt(path string) (string, bool) {
	lower := strings.ToLower(path)
	compressed := strings.HasSuffix(lower, zstdExt)
	if compressed {
		lower = strings.TrimSuffix(lower, zstdExt)
	}
	return filepath.Ext(lower), compressed
}

func isPPM(ext string) bool {
	return ext == ".ppm" || ext == ".pnm"
}

// Load decodes the raster at path
func Load(path string) (*raster.Image, time.Duration, error) {
	ext, compressed := splitExt(path)
	if !compressed && isPPM(ext) {
		return ppm.NewReader().Read(path)
	}
	if !compressed {
		return stdimg.NewReader().Read(path)
	}

	start := time.Now()
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, 0, fmt.Errorf("rasterio: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	zr, err := zstd.NewReader(f, zstd.WithDecoderConcurrency(1))
	if err != nil {
		return nil, 0, fmt.Errorf("rasterio: zstd decode: %w", err)
	}
	defer zr.Close()

	var img *raster.Image
	if isPPM(ext) {
		img, err = ppm.Decode(zr)
	} else {
		img, err = stdimg.Decode(zr)
	}
	if err != nil {
		return nil, 0, fmt.Errorf("rasterio: %s: %w", path, err)
	}
	return img, time.Since(start), nil
}

// Save encodes img to path, overwriting it. Paths without a recognised
// image extension are written as binary PPM.
func Save(img *raster.Image, path string) (time.Duration, error) {
	ext, compressed := splitExt(path)
	format := ""
	if !isPPM(ext) {
		format = stdimg.FormatFor(ext)
	}
	if !compressed && format == "" {
		return ppm.NewWriter().Write(img, path)
	}
	if !compressed {
		return stdimg.NewWriter().Write(img, path)
	}

	start := time.Now()
	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("rasterio: create file: %w", err)
	}
	if err := encodeZstd(f, img, format); err != nil {
		_ = f.Close()
		return 0, err
	}
	if err := f.Close(); err != nil {
		return 0, fmt.Errorf("rasterio: close file: %w", err)
	}
	return time.Since(start), nil
}

func encodeZstd(w io.Writer, img *raster.Image, format string) error {
	zw, err := zstd.NewWriter(w,
		zstd.WithEncoderConcurrency(1),
		zstd.WithEncoderLevel(zstd.SpeedBetterCompression),
	)
	if err != nil {
		return fmt.Errorf("rasterio: zstd encode: %w", err)
	}
	if format == "" {
		err = ppm.Encode(zw, img)
	} else {
		err = stdimg.Encode(zw, img, format)
	}
	if err != nil {
		_ = zw.Close()
		return err
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("rasterio: zstd encode: %w", err)
	}
	return nil
}
