// Package tiles renders the 16 marching-squares contour tiles.
//
// A tile for configuration k covers one grid cell. Its corners carry the
// weights 8 (top-left), 4 (top-right), 2 (bottom-right) and 1 (bottom-left);
// a set bit marks a corner inside the isoline. The isoline is drawn as
// straight segments joining the midpoints of the edges whose corners
// disagree. The saddles (5 and 10) get two segments.
package tiles

import (
	"fmt"
	"image"
	"math"
	"os"

	"golang.org/x/image/vector"

	"github.com/luismi/marching_squares/config"
	"github.com/luismi/marching_squares/pkg/raster"
	"github.com/luismi/marching_squares/pkg/raster/ppm"
	"github.com/luismi/marching_squares/pkg/raster/stdimg"
)

// edge midpoints in unit cell coordinates (x along the row, y down)
type point struct{ x, y float32 }

var (
	top    = point{0.5, 0}
	right  = point{1, 0.5}
	bottom = point{0.5, 1}
	left   = point{0, 0.5}
)

type segment [2]point

// segments lists the isoline pieces of every configuration
var segments = [config.ContourConfigCount][]segment{
	0:  nil,
	1:  {{left, bottom}},
	2:  {{bottom, right}},
	3:  {{left, right}},
	4:  {{top, right}},
	5:  {{top, left}, {bottom, right}},
	6:  {{top, bottom}},
	7:  {{top, left}},
	8:  {{top, left}},
	9:  {{top, bottom}},
	10: {{top, right}, {left, bottom}},
	11: {{top, right}},
	12: {{left, right}},
	13: {{bottom, right}},
	14: {{left, bottom}},
	15: nil,
}

// Segments returns the number of isoline segments drawn for configuration k
func Segments(k int) int {
	return len(segments[k])
}

// Render draws the tile for configuration k at step x step pixels
func Render(k, step int) (*raster.Image, error) {
	if k < 0 || k >= config.ContourConfigCount {
		return nil, fmt.Errorf("tiles: configuration %d out of range", k)
	}
	if step <= 0 {
		return nil, &raster.DimensionError{Width: step, Height: step}
	}

	dst := image.NewRGBA(image.Rect(0, 0, step, step))
	for i := 0; i < len(dst.Pix); i += 4 {
		dst.Pix[i] = config.TileBackground.R
		dst.Pix[i+1] = config.TileBackground.G
		dst.Pix[i+2] = config.TileBackground.B
		dst.Pix[i+3] = config.TileBackground.A
	}

	if len(segments[k]) > 0 {
		size := float32(step)
		half := float32(math.Max(0.5, config.TileStrokeWidth*float64(step)/2))

		z := vector.NewRasterizer(step, step)
		for _, s := range segments[k] {
			addStroke(z, s, size, half)
		}
		z.Draw(dst, dst.Bounds(), image.NewUniform(config.TileStroke), image.Point{})
	}

	return stdimg.FromImage(dst)
}

// addStroke appends the outline of a thick line segment to z
func addStroke(z *vector.Rasterizer, s segment, size, half float32) {
	x0, y0 := s[0].x*size, s[0].y*size
	x1, y1 := s[1].x*size, s[1].y*size

	dx, dy := x1-x0, y1-y0
	length := float32(math.Hypot(float64(dx), float64(dy)))
	nx, ny := -dy/length*half, dx/length*half

	z.MoveTo(x0+nx, y0+ny)
	z.LineTo(x1+nx, y1+ny)
	z.LineTo(x1-nx, y1-ny)
	z.LineTo(x0-nx, y0-ny)
	z.ClosePath()
}

// RenderAll renders the complete tile set
func RenderAll(step int) ([]*raster.Image, error) {
	set := make([]*raster.Image, config.ContourConfigCount)
	for k := range set {
		tile, err := Render(k, step)
		if err != nil {
			return nil, err
		}
		set[k] = tile
	}
	return set, nil
}

// WriteDir renders every tile and stores it as config.TilePath(dir, k)
func WriteDir(dir string, step int) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("tiles: failed to create directory: %w", err)
	}
	set, err := RenderAll(step)
	if err != nil {
		return err
	}
	w := ppm.NewWriter()
	for k, tile := range set {
		if _, err := w.Write(tile, config.TilePath(dir, k)); err != nil {
			return err
		}
	}
	return nil
}
