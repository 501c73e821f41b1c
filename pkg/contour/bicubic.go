package contour

import (
	"math"

	"github.com/luismi/marching_squares/pkg/raster"
)

// Sampler returns the colour of src at normalized coordinates (u, v), u
// along the outer (Width) axis and v along the inner (Height) axis, both in
// [0, 1]. Implementations must be safe for concurrent use on one source.
type Sampler func(src *raster.Image, u, v float64) raster.Pixel

// SampleBicubic performs Catmull-Rom bicubic interpolation over the 4x4
// neighbourhood around (u, v). Neighbours outside the image are clamped to
// the edge and each channel is clamped to [0, 255].
func SampleBicubic(src *raster.Image, u, v float64) raster.Pixel {
	w, h := src.Width, src.Height

	// Convert normalized coords to continuous pixel coords
	fx := u*float64(w) - 0.5
	fy := v*float64(h) - 0.5

	x := int(math.Floor(fx))
	y := int(math.Floor(fy))
	tx := fx - float64(x)
	ty := fy - float64(y)

	var wx, wy [4]float64
	for d := 0; d < 4; d++ {
		wx[d] = cubicWeight(tx - float64(d-1))
		wy[d] = cubicWeight(ty - float64(d-1))
	}

	var r, g, b float64
	for dx := 0; dx < 4; dx++ {
		px := clamp(x+dx-1, 0, w-1)
		var rr, gg, bb float64
		for dy := 0; dy < 4; dy++ {
			p := src.Pix[px*h+clamp(y+dy-1, 0, h-1)]
			rr += wy[dy] * float64(p.R)
			gg += wy[dy] * float64(p.G)
			bb += wy[dy] * float64(p.B)
		}
		r += wx[dx] * rr
		g += wx[dx] * gg
		b += wx[dx] * bb
	}

	return raster.Pixel{R: toChannel(r), G: toChannel(g), B: toChannel(b)}
}

// cubicWeight computes the Catmull-Rom cubic weight for distance t.
func cubicWeight(t float64) float64 {
	absT := math.Abs(t)
	if absT < 1 {
		return 1.5*absT*absT*absT - 2.5*absT*absT + 1.0
	}
	if absT < 2 {
		return -0.5*absT*absT*absT + 2.5*absT*absT - 4.0*absT + 2.0
	}
	return 0
}

func clamp(val, minVal, maxVal int) int {
	if val < minVal {
		return minVal
	}
	if val > maxVal {
		return maxVal
	}
	return val
}

// toChannel rounds and clamps an interpolated value to a channel byte
func toChannel(v float64) uint8 {
	v = math.Round(v)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
