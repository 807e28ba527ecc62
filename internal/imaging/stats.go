package imaging

import (
	"sort"

	"github.com/ironsheep/pixelart-mcp/internal/palette"
)

// ColorUsage is one distinct output color and its share of the pixels.
type ColorUsage struct {
	Hex        string  `json:"hex"`        // "#RRGGBB"
	Pixels     int     `json:"pixels"`     // Number of pixels with this color
	Percentage float64 `json:"percentage"` // Share of all pixels (0-100)
}

// PaletteUsage counts the distinct RGB colors of a flat RGBA buffer.
//
// Results are sorted by pixel count, most common first; equal counts are
// ordered by hex value so the output is stable.
func PaletteUsage(pix []byte) []ColorUsage {
	counts := make(map[palette.Color]int)
	total := 0
	for i := 0; i+3 < len(pix); i += 4 {
		counts[palette.Color{R: pix[i], G: pix[i+1], B: pix[i+2]}]++
		total++
	}

	usage := make([]ColorUsage, 0, len(counts))
	for c, n := range counts {
		usage = append(usage, ColorUsage{
			Hex:        c.Hex(),
			Pixels:     n,
			Percentage: float64(n) / float64(total) * 100,
		})
	}

	sort.Slice(usage, func(i, j int) bool {
		if usage[i].Pixels != usage[j].Pixels {
			return usage[i].Pixels > usage[j].Pixels
		}
		return usage[i].Hex < usage[j].Hex
	})

	return usage
}
