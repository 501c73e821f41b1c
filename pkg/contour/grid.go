package contour

import (
	"github.com/luismi/marching_squares/pkg/raster"
)

// Grid is the binary occupancy grid sampled from the working image. It has
// p+1 rows and q+1 columns where p = width/stepX and q = height/stepY.
// A cell is 1 when the sampled luminance is at or below the threshold.
type Grid struct {
	P, Q  int
	Cells [][]uint8
}

// newGrid allocates the row table only; rows are allocated by their owners
func newGrid(p, q int) *Grid {
	return &Grid{
		P:     p,
		Q:     q,
		Cells: make([][]uint8, p+1),
	}
}

// allocRows allocates rows [start, end)
func (g *Grid) allocRows(start, end int) {
	for i := start; i < end; i++ {
		g.Cells[i] = make([]uint8, g.Q+1)
	}
}

// Free drops every row
func (g *Grid) Free() {
	if g == nil {
		return
	}
	for i := range g.Cells {
		g.Cells[i] = nil
	}
	g.Cells = nil
}

// classify maps a pixel to its occupancy value
func classify(px raster.Pixel, sigma int) uint8 {
	if int(px.Luminance()) > sigma {
		return 0
	}
	return 1
}

// binarizeInterior fills grid rows [start, end), columns [0, q), from the
// pixel at (i*stepX, j*stepY)
func binarizeInterior(g *Grid, img *raster.Image, start, end, stepX, stepY, sigma int) {
	for i := start; i < end; i++ {
		row := g.Cells[i]
		for j := 0; j < g.Q; j++ {
			row[j] = classify(img.At(i*stepX, j*stepY), sigma)
		}
	}
}

// binarizeLastColumn fills column q of rows [start, end) from the last
// pixel along the inner axis
func binarizeLastColumn(g *Grid, img *raster.Image, start, end, stepX, sigma int) {
	for i := start; i < end; i++ {
		g.Cells[i][g.Q] = classify(img.At(i*stepX, img.Height-1), sigma)
	}
}

// binarizeLastRow fills columns [start, end) of row p from the last pixel
// along the outer axis
func binarizeLastRow(g *Grid, img *raster.Image, start, end, stepY, sigma int) {
	row := g.Cells[g.P]
	for j := start; j < end; j++ {
		row[j] = classify(img.At(img.Width-1, j*stepY), sigma)
	}
}
