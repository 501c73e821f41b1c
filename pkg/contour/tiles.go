package contour

import (
	"fmt"

	"github.com/luismi/marching_squares/config"
	"github.com/luismi/marching_squares/pkg/raster"
	"github.com/luismi/marching_squares/pkg/raster/ppm"
	"github.com/luismi/marching_squares/pkg/tiles"
)

// TileSource provides the contour tile for each configuration index.
// LoadTile is called concurrently for distinct k.
type TileSource interface {
	LoadTile(k int) (*raster.Image, error)
}

// DirTileSource reads tiles stored as <Dir>/<k>.ppm
type DirTileSource struct {
	Dir string
}

// LoadTile implements TileSource
func (s DirTileSource) LoadTile(k int) (*raster.Image, error) {
	img, _, err := ppm.NewReader().Read(config.TilePath(s.Dir, k))
	if err != nil {
		return nil, fmt.Errorf("load contour tile %d: %w", k, err)
	}
	return img, nil
}

// RenderedTiles renders tiles in memory instead of reading them
type RenderedTiles struct {
	Step int
}

// LoadTile implements TileSource
func (s RenderedTiles) LoadTile(k int) (*raster.Image, error) {
	return tiles.Render(k, s.Step)
}

// TileSet holds one tile per configuration index. Each slot is written by
// exactly one worker during loading and released by the same worker.
type TileSet struct {
	tiles [config.ContourConfigCount]*raster.Image
}

// Tile returns the tile for configuration k
func (ts *TileSet) Tile(k int) *raster.Image {
	return ts.tiles[k]
}

// load fills slots [start, end) from src, checking every tile is exactly
// stepX x stepY
func (ts *TileSet) load(src TileSource, start, end, stepX, stepY int) error {
	for k := start; k < end; k++ {
		tile, err := src.LoadTile(k)
		if err != nil {
			return err
		}
		if tile.Width != stepX || tile.Height != stepY {
			return &TileDimensionError{
				Config: k,
				Width:  tile.Width,
				Height: tile.Height,
				StepX:  stepX,
				StepY:  stepY,
			}
		}
		ts.tiles[k] = tile
	}
	return nil
}

// release frees slots [start, end)
func (ts *TileSet) release(start, end int) {
	for k := start; k < end; k++ {
		ts.tiles[k].Free()
		ts.tiles[k] = nil
	}
}
