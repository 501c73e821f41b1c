package contour

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luismi/marching_squares/pkg/raster"
)

func TestSampleBicubicConstantImage(t *testing.T) {
	src, err := raster.New(13, 7)
	require.NoError(t, err)
	c := raster.Pixel{R: 17, G: 128, B: 250}
	for k := range src.Pix {
		src.Pix[k] = c
	}

	for _, u := range []float64{0, 0.1, 0.5, 0.77, 1} {
		for _, v := range []float64{0, 0.3, 0.5, 1} {
			assert.Equal(t, c, SampleBicubic(src, u, v), "u=%v v=%v", u, v)
		}
	}
}

func TestSampleBicubicClampsOvershoot(t *testing.T) {
	// A hard black/white edge makes Catmull-Rom overshoot on both sides
	src, err := raster.New(8, 8)
	require.NoError(t, err)
	for i := 0; i < src.Width; i++ {
		for j := 0; j < src.Height; j++ {
			if i >= 4 {
				src.Set(i, j, raster.Pixel{R: 255, G: 255, B: 255})
			}
		}
	}

	dst, err := raster.New(37, 5)
	require.NoError(t, err)
	resampleColumns(dst, src, 0, dst.Width, SampleBicubic)

	assert.Equal(t, raster.Pixel{}, dst.At(0, 2))
	assert.Equal(t, raster.Pixel{R: 255, G: 255, B: 255}, dst.At(36, 2))
	for i := 1; i < dst.Width; i++ {
		// Monotone along the edge direction once clamped
		prev, cur := dst.At(i-1, 2), dst.At(i, 2)
		assert.GreaterOrEqual(t, int(cur.R)+1, int(prev.R)-1, "column %d", i)
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, 0.0, normalize(0, 2048))
	assert.Equal(t, 1.0, normalize(2047, 2048))
	assert.Equal(t, 0.5, normalize(2, 5))
	assert.Equal(t, 0.0, normalize(0, 1))
}
