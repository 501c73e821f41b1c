// Package stdimg adapts the image.Image codecs (PNG, JPEG, GIF, BMP, TIFF,
// netpbm) to raster.Image. Pixels are laid out exactly as a PPM of the same
// picture would load: Width is the file width and Pix[y*Width+x] holds
// pixel (x, y).
package stdimg

import (
	"fmt"
	"image"
	_ "image/gif" // register GIF decoder
	"io"
	"os"
	"path/filepath"
	"time"

	_ "github.com/spakin/netpbm" // register PBM, PGM, PPM and PAM decoders
	"golang.org/x/image/draw"

	"github.com/luismi/marching_squares/pkg/raster"
)

// Reader implements raster.Reader for the standard image formats
type Reader struct{}

// NewReader creates a new standard-format reader
func NewReader() *Reader {
	return &Reader{}
}

// Read implements the raster.Reader interface
func (r *Reader) Read(path string) (*raster.Image, time.Duration, error) {
	start := time.Now()

	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, 0, fmt.Errorf("stdimg: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	img, err := Decode(f)
	if err != nil {
		return nil, 0, fmt.Errorf("stdimg: %s: %w", path, err)
	}
	return img, time.Since(start), nil
}

// Decode reads any registered image format from rd
func Decode(rd io.Reader) (*raster.Image, error) {
	src, _, err := image.Decode(rd)
	if err != nil {
		return nil, &raster.FormatError{Reason: err.Error()}
	}
	return FromImage(src)
}

// FromImage converts an image.Image into a raster.Image, dropping alpha
func FromImage(src image.Image) (*raster.Image, error) {
	b := src.Bounds()
	img, err := raster.New(b.Dx(), b.Dy())
	if err != nil {
		return nil, err
	}

	rgba, ok := src.(*image.RGBA)
	if !ok || rgba.Rect.Min != (image.Point{}) {
		rgba = image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(rgba, rgba.Bounds(), src, b.Min, draw.Src)
	}

	for y := 0; y < b.Dy(); y++ {
		row := rgba.Pix[y*rgba.Stride:]
		for x := 0; x < b.Dx(); x++ {
			img.Pix[y*img.Width+x] = raster.Pixel{R: row[4*x], G: row[4*x+1], B: row[4*x+2]}
		}
	}
	return img, nil
}
