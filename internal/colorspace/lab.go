package colorspace

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// D65 reference white used to normalize XYZ before the Lab transform.
const (
	whiteX = 0.95047
	whiteY = 1.0
	whiteZ = 1.08883
)

// Lab is a CIELAB color. It is always derived from sRGB, never stored.
type Lab struct {
	L float64 // Lightness, 0-100
	A float64 // green (-) to red (+)
	B float64 // blue (-) to yellow (+)
}

// ToLab converts an sRGB triple (0-255 per channel) to CIELAB.
//
// The pipeline is sRGB gamma decode, linear RGB to XYZ with the 4-digit sRGB
// matrix, then the piecewise cube-root transform with the 0.008856 breakpoint
// and 7.787 linear slope.
func ToLab(rgb [3]float64) Lab {
	r, g, b := colorful.Color{R: rgb[0] / 255, G: rgb[1] / 255, B: rgb[2] / 255}.LinearRgb()

	x := (r*0.4124 + g*0.3576 + b*0.1805) / whiteX
	y := (r*0.2126 + g*0.7152 + b*0.0722) / whiteY
	z := (r*0.0193 + g*0.1192 + b*0.9505) / whiteZ

	fx, fy, fz := labF(x), labF(y), labF(z)
	return Lab{
		L: 116*fy - 16,
		A: 500 * (fx - fy),
		B: 200 * (fy - fz),
	}
}

func labF(t float64) float64 {
	if t > 0.008856 {
		return math.Pow(t, 1.0/3.0)
	}
	return 7.787*t + 16.0/116.0
}
