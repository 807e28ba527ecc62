package colorspace

import (
	"math"

	"github.com/ironsheep/pixelart-mcp/internal/palette"
)

// Nearest returns the entry of pal closest to pixel under metric m.
//
// The scan keeps the first entry on ties. pal must not be empty.
func Nearest(pixel [3]float64, pal palette.Palette, m Metric) palette.Color {
	best := pal[0]
	bestDist := math.Inf(1)
	for _, c := range pal {
		d := Distance(pixel, c.Floats(), m)
		if d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}

// Matcher answers Nearest queries against one palette, converting the palette
// to Lab once instead of on every query. Results are identical to Nearest.
//
// A Matcher is read-only after construction and safe for concurrent use.
type Matcher struct {
	metric  Metric
	colors  palette.Palette
	entries [][3]float64
	labs    []Lab
}

// NewMatcher prepares pal for repeated searches. pal must not be empty.
func NewMatcher(pal palette.Palette, m Metric) *Matcher {
	mt := &Matcher{
		metric:  m,
		colors:  pal,
		entries: make([][3]float64, len(pal)),
	}
	for i, c := range pal {
		mt.entries[i] = c.Floats()
	}
	if m == MetricCIELAB {
		mt.labs = make([]Lab, len(pal))
		for i, e := range mt.entries {
			mt.labs[i] = ToLab(e)
		}
	}
	return mt
}

// Nearest returns the palette entry closest to pixel.
func (mt *Matcher) Nearest(pixel [3]float64) palette.Color {
	best := 0
	bestDist := math.Inf(1)

	if mt.metric == MetricCIELAB {
		lab := ToLab(pixel)
		for i, e := range mt.labs {
			if d := lab.Distance(e); d < bestDist {
				best, bestDist = i, d
			}
		}
		return mt.colors[best]
	}

	for i, e := range mt.entries {
		if d := squaredRGB(pixel, e); d < bestDist {
			best, bestDist = i, d
		}
	}
	return mt.colors[best]
}
