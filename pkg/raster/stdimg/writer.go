package stdimg

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/luismi/marching_squares/pkg/raster"
)

// Format names accepted by Encode
const (
	FormatPNG  = "png"
	FormatJPEG = "jpeg"
	FormatBMP  = "bmp"
	FormatTIFF = "tiff"
)

// JPEGQuality is the quality used for JPEG output
const JPEGQuality = 95

// Writer implements raster.Writer, picking the format from the extension
type Writer struct{}

// NewWriter creates a new standard-format writer
func NewWriter() *Writer {
	return &Writer{}
}

// FormatFor maps a file extension to a format name, or "" when unknown
func FormatFor(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return FormatPNG
	case ".jpg", ".jpeg":
		return FormatJPEG
	case ".bmp":
		return FormatBMP
	case ".tif", ".tiff":
		return FormatTIFF
	default:
		return ""
	}
}

// Write implements the raster.Writer interface
func (w *Writer) Write(img *raster.Image, path string) (time.Duration, error) {
	start := time.Now()

	format := FormatFor(path)
	if format == "" {
		return 0, fmt.Errorf("stdimg: %s: %w", path, raster.ErrUnsupportedFormat)
	}

	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("stdimg: create file: %w", err)
	}
	if err := Encode(f, img, format); err != nil {
		_ = f.Close()
		return 0, err
	}
	if err := f.Close(); err != nil {
		return 0, fmt.Errorf("stdimg: close file: %w", err)
	}
	return time.Since(start), nil
}

// Encode writes img to wr in the named format
func Encode(wr io.Writer, img *raster.Image, format string) error {
	if img.Freed() {
		return fmt.Errorf("stdimg: encode: image buffer has been released")
	}
	dst := ToRGBA(img)

	var err error
	switch format {
	case FormatPNG:
		err = png.Encode(wr, dst)
	case FormatJPEG:
		err = jpeg.Encode(wr, dst, &jpeg.Options{Quality: JPEGQuality})
	case FormatBMP:
		err = bmp.Encode(wr, dst)
	case FormatTIFF:
		err = tiff.Encode(wr, dst, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("stdimg: %q: %w", format, raster.ErrUnsupportedFormat)
	}
	if err != nil {
		return fmt.Errorf("stdimg: encode %s: %w", format, err)
	}
	return nil
}

// ToRGBA converts img to an opaque *image.RGBA using the layout described
// in the package documentation
func ToRGBA(img *raster.Image) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, img.Width, img.Height))
	for k, p := range img.Pix {
		idx := k * 4
		dst.Pix[idx] = p.R
		dst.Pix[idx+1] = p.G
		dst.Pix[idx+2] = p.B
		dst.Pix[idx+3] = 255 // Full opacity
	}
	return dst
}
