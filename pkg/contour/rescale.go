package contour

import (
	"github.com/luismi/marching_squares/pkg/raster"
)

// needsRescale reports whether img exceeds the working bound
func needsRescale(img *raster.Image, maxX, maxY int) bool {
	return img.Width > maxX || img.Height > maxY
}

// resampleColumns fills outer indices [start, end) of dst by sampling src
// at normalized coordinates
func resampleColumns(dst, src *raster.Image, start, end int, sample Sampler) {
	for i := start; i < end; i++ {
		u := normalize(i, dst.Width)
		for j := 0; j < dst.Height; j++ {
			dst.Pix[i*dst.Height+j] = sample(src, u, normalize(j, dst.Height))
		}
	}
}

// normalize maps index k of n samples onto [0, 1]
func normalize(k, n int) float64 {
	if n <= 1 {
		return 0
	}
	return float64(k) / float64(n-1)
}
