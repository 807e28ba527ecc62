package dither

import "math"

// PosterizeStep is the channel grid used when no palette is resolved.
const PosterizeStep = 48

// orderedSpread is the largest bias, in channel units, the Bayer threshold
// can add (scaled by 15/16).
const orderedSpread = 32

// BayerMatrix is the 4x4 ordered dithering matrix, addressed [y%4][x%4].
var BayerMatrix = [4][4]int{
	{1, 9, 3, 11},
	{13, 5, 15, 7},
	{4, 12, 2, 10},
	{16, 8, 14, 6},
}

// Posterize rounds each channel to the nearest multiple of PosterizeStep,
// halves rounding up, clamped to 255.
func Posterize(rgb [3]uint8) [3]uint8 {
	var out [3]uint8
	for c, v := range rgb {
		q := math.Floor(float64(v)/PosterizeStep+0.5) * PosterizeStep
		out[c] = uint8(math.Min(q, 255))
	}
	return out
}

// OrderedThreshold returns the Bayer threshold for (x, y), in [0, 15/16].
func OrderedThreshold(x, y int) float64 {
	return float64(BayerMatrix[y%4][x%4]-1) / 16
}

// OrderedBias returns rgb shifted up by the Bayer threshold at (x, y), each
// channel capped at 255. The threshold is never negative so no lower clamp
// is needed.
func OrderedBias(rgb [3]uint8, x, y int) [3]float64 {
	bias := OrderedThreshold(x, y) * orderedSpread
	var out [3]float64
	for c, v := range rgb {
		out[c] = math.Min(255, float64(v)+bias)
	}
	return out
}

// DiffusionTap is one neighbor that receives a share of a pixel's error.
type DiffusionTap struct {
	DX, DY int
	Weight float64
}

// FloydSteinberg lists the error diffusion neighbors. Every tap lies strictly
// after the source pixel in raster order (DY > 0, or DY == 0 and DX > 0), so
// a pixel is never written once it has been read. The weights sum to 1.
var FloydSteinberg = [4]DiffusionTap{
	{DX: 1, DY: 0, Weight: 7.0 / 16},
	{DX: -1, DY: 1, Weight: 3.0 / 16},
	{DX: 0, DY: 1, Weight: 5.0 / 16},
	{DX: 1, DY: 1, Weight: 1.0 / 16},
}

// diffuse spreads err from (x, y) into the working buffer. Neighbors outside
// the image are skipped and their share is dropped.
func diffuse(work []byte, width, height, x, y int, err [3]float64) {
	for _, tap := range FloydSteinberg {
		nx, ny := x+tap.DX, y+tap.DY
		if nx < 0 || nx >= width || ny < 0 || ny >= height {
			continue
		}
		i := (ny*width + nx) * 4
		for c := 0; c < 3; c++ {
			work[i+c] = clampChannel(float64(work[i+c]) + err[c]*tap.Weight)
		}
	}
}

// clampChannel stores v the way an 8-bit clamped buffer does: rounded half to
// even and saturated to [0, 255]. NaN becomes 0.
func clampChannel(v float64) uint8 {
	if !(v > 0) {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(math.RoundToEven(v))
}
