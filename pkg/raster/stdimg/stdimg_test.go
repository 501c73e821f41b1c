package stdimg

import (
	"bytes"
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luismi/marching_squares/pkg/raster"
)

func sampleImage(t *testing.T) *raster.Image {
	t.Helper()
	img, err := raster.New(5, 3)
	require.NoError(t, err)
	for k := range img.Pix {
		img.Pix[k] = raster.Pixel{R: uint8(40 * k), G: uint8(255 - 7*k), B: uint8(k)}
	}
	return img
}

func TestFromImageLayoutMatchesPPM(t *testing.T) {
	src := image.NewNRGBA(image.Rect(10, 20, 13, 22))
	src.Set(12, 20, color.NRGBA{R: 1, G: 2, B: 3, A: 255})
	src.Set(10, 21, color.NRGBA{R: 4, G: 5, B: 6, A: 255})

	img, err := FromImage(src)
	require.NoError(t, err)
	assert.Equal(t, 3, img.Width)
	assert.Equal(t, 2, img.Height)
	// Pix[y*Width+x] holds pixel (x, y)
	assert.Equal(t, raster.Pixel{R: 1, G: 2, B: 3}, img.Pix[0*3+2])
	assert.Equal(t, raster.Pixel{R: 4, G: 5, B: 6}, img.Pix[1*3+0])
}

func TestLosslessRoundTrips(t *testing.T) {
	for _, format := range []string{FormatPNG, FormatBMP, FormatTIFF} {
		t.Run(format, func(t *testing.T) {
			img := sampleImage(t)
			var buf bytes.Buffer
			require.NoError(t, Encode(&buf, img, format))

			got, err := Decode(&buf)
			require.NoError(t, err)
			if diff := cmp.Diff(img, got); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestJPEGRoundTripKeepsDimensions(t *testing.T) {
	img := sampleImage(t)
	path := filepath.Join(t.TempDir(), "out.jpg")
	_, err := NewWriter().Write(img, path)
	require.NoError(t, err)

	got, _, err := NewReader().Read(path)
	require.NoError(t, err)
	assert.Equal(t, img.Width, got.Width)
	assert.Equal(t, img.Height, got.Height)
}

func TestUnsupportedFormat(t *testing.T) {
	img := sampleImage(t)
	_, err := NewWriter().Write(img, filepath.Join(t.TempDir(), "out.xyz"))
	assert.ErrorIs(t, err, raster.ErrUnsupportedFormat)
	assert.ErrorIs(t, Encode(&bytes.Buffer{}, img, "webp"), raster.ErrUnsupportedFormat)
	assert.Equal(t, "", FormatFor("a.ppm"))
	assert.Equal(t, FormatTIFF, FormatFor("A.TIF"))
}
