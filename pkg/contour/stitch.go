package contour

import (
	"github.com/luismi/marching_squares/pkg/raster"
)

// Configuration returns the marching squares index of cell (i, j). Corners
// (i,j), (i,j+1), (i+1,j+1) and (i+1,j) weigh 8, 4, 2 and 1.
func Configuration(g *Grid, i, j int) int {
	return 8*int(g.Cells[i][j]) +
		4*int(g.Cells[i][j+1]) +
		2*int(g.Cells[i+1][j+1]) +
		1*int(g.Cells[i+1][j])
}

// stamp copies tile into img with its origin at (x, y)
func stamp(img, tile *raster.Image, x, y int) {
	for ti := 0; ti < tile.Width; ti++ {
		dst := img.Index(x+ti, y)
		src := tile.Index(ti, 0)
		copy(img.Pix[dst:dst+tile.Height], tile.Pix[src:src+tile.Height])
	}
}

// stitchRows stamps the matching tile for every cell of grid rows
// [start, end)
func stitchRows(img *raster.Image, g *Grid, ts *TileSet, start, end, stepX, stepY int) {
	for i := start; i < end; i++ {
		for j := 0; j < g.Q; j++ {
			stamp(img, ts.Tile(Configuration(g, i, j)), i*stepX, j*stepY)
		}
	}
}
