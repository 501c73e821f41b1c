package ppm

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/luismi/marching_squares/pkg/raster"
)

// Writer implements raster.Writer producing binary P6 files
type Writer struct{}

// NewWriter creates a new PPM writer
func NewWriter() *Writer {
	return &Writer{}
}

// Write implements the raster.Writer interface
func (w *Writer) Write(img *raster.Image, path string) (time.Duration, error) {
	start := time.Now()

	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("ppm: create file: %w", err)
	}
	if err := Encode(f, img); err != nil {
		_ = f.Close()
		return 0, err
	}
	if err := f.Close(); err != nil {
		return 0, fmt.Errorf("ppm: close file: %w", err)
	}
	return time.Since(start), nil
}

// Encode writes img to wr as a binary P6 pixmap
func Encode(wr io.Writer, img *raster.Image) error {
	if img.Freed() {
		return fmt.Errorf("ppm: encode: image buffer has been released")
	}
	bw := bufio.NewWriter(wr)
	if _, err := fmt.Fprintf(bw, "P6\n%d %d\n255\n", img.Width, img.Height); err != nil {
		return fmt.Errorf("ppm: write header: %w", err)
	}
	var sample [3]byte
	for _, p := range img.Pix {
		sample[0], sample[1], sample[2] = p.R, p.G, p.B
		if _, err := bw.Write(sample[:]); err != nil {
			return fmt.Errorf("ppm: write pixels: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("ppm: write pixels: %w", err)
	}
	return nil
}
