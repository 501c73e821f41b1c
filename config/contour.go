package config

import (
	"fmt"
	"image/color"
	"path/filepath"
)

// Marching squares parameters shared by the pipeline and the tile renderer
const (
	ContourConfigCount = 16   // one tile per 4-bit corner configuration
	Step               = 8    // grid sampling granularity and tile edge, in pixels
	Sigma              = 200  // luminance threshold; at or below is inside
	RescaleX           = 2048 // working image bound along the outer axis
	RescaleY           = 2048 // working image bound along the inner axis
)

// DefaultContoursDir is where the CLI looks for the 16 tiles
const DefaultContoursDir = "./contours"

// Tile palette used when rendering contour tiles
var (
	TileBackground = color.RGBA{255, 255, 255, 255} // White (outside the isoline)
	TileStroke     = color.RGBA{0, 0, 0, 255}       // Black (the isoline itself)
)

// TileStrokeWidth is the rendered isoline thickness relative to the tile edge
const TileStrokeWidth = 0.125

// TilePath returns the file holding the tile for configuration k
func TilePath(dir string, k int) string {
	return filepath.Join(dir, fmt.Sprintf("%d.ppm", k))
}
