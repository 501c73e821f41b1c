package tiles

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luismi/marching_squares/config"
	"github.com/luismi/marching_squares/pkg/raster"
	"github.com/luismi/marching_squares/pkg/raster/ppm"
)

var background = raster.Pixel{R: config.TileBackground.R, G: config.TileBackground.G, B: config.TileBackground.B}

// inked counts the pixels darker than the background
func inked(img *raster.Image) int {
	n := 0
	for _, p := range img.Pix {
		if p != background {
			n++
		}
	}
	return n
}

func TestRenderDimensions(t *testing.T) {
	for k := 0; k < config.ContourConfigCount; k++ {
		tile, err := Render(k, config.Step)
		require.NoError(t, err)
		assert.Equal(t, config.Step, tile.Width, "tile %d", k)
		assert.Equal(t, config.Step, tile.Height, "tile %d", k)
	}
}

func TestEmptyAndFullTilesAreBlank(t *testing.T) {
	for _, k := range []int{0, 15} {
		tile, err := Render(k, config.Step)
		require.NoError(t, err)
		assert.Zero(t, inked(tile), "tile %d must carry no isoline", k)
	}
}

func TestEveryBoundaryTileHasInk(t *testing.T) {
	for k := 1; k < 15; k++ {
		tile, err := Render(k, config.Step)
		require.NoError(t, err)
		assert.Positive(t, inked(tile), "tile %d", k)
	}
	assert.Equal(t, 2, Segments(5))
	assert.Equal(t, 2, Segments(10))
}

func TestComplementaryTilesMatch(t *testing.T) {
	// Swapping inside and outside keeps the isoline
	for k := 1; k < 15; k++ {
		if k == 5 || k == 10 {
			continue
		}
		a, err := Render(k, config.Step)
		require.NoError(t, err)
		b, err := Render(15-k, config.Step)
		require.NoError(t, err)
		assert.Equal(t, a.Pix, b.Pix, "tiles %d and %d", k, 15-k)
	}
}

func TestHorizontalIsolineCrossesMiddle(t *testing.T) {
	// k=12: top corners inside, the line runs across the middle rows
	tile, err := Render(12, config.Step)
	require.NoError(t, err)
	mid := config.Step / 2
	for j := 0; j < config.Step; j++ {
		assert.NotEqual(t, background, tile.At(mid, j), "column %d", j)
		assert.Equal(t, background, tile.At(0, j), "column %d", j)
	}
}

func TestRenderRejectsBadInput(t *testing.T) {
	_, err := Render(16, 8)
	assert.Error(t, err)
	_, err = Render(-1, 8)
	assert.Error(t, err)
	_, err = Render(0, 0)
	assert.Error(t, err)
}

func TestWriteDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "contours")
	require.NoError(t, WriteDir(dir, config.Step))

	for k := 0; k < config.ContourConfigCount; k++ {
		got, _, err := ppm.NewReader().Read(config.TilePath(dir, k))
		require.NoError(t, err)
		want, err := Render(k, config.Step)
		require.NoError(t, err)
		assert.Equal(t, want.Pix, got.Pix, "tile %d", k)
	}
}
