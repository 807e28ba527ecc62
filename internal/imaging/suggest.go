package imaging

import (
	"fmt"
	"image"
	"sort"

	"github.com/ironsheep/pixelart-mcp/internal/palette"
)

// suggestBucket is the per-channel width of the buckets similar colors are
// grouped into.
const suggestBucket = 16

// ColorFrequency is one suggested palette entry and its share of the image.
type ColorFrequency struct {
	Hex        string  `json:"hex"`        // Average color of the bucket "#RRGGBB"
	Percentage float64 `json:"percentage"` // Share of the pixels in the bucket (0-100)
}

// SuggestedPalette is a palette derived from an image.
type SuggestedPalette struct {
	Colors  []ColorFrequency `json:"colors"`  // Most common first
	Palette palette.Palette  `json:"-"`       // Same colors, ready to use as a custom palette
	Hexes   []string         `json:"palette"` // Same colors as hex strings
}

// SuggestPalette extracts up to count dominant colors from img, suitable for
// use as a custom palette.
//
// Pixels are grouped by quantizing each channel to buckets of 16 levels. The
// count buckets with the most pixels are returned, each represented by the
// average color of the pixels that fell into it. Fully transparent pixels are
// ignored.
func SuggestPalette(img image.Image, count int) (*SuggestedPalette, error) {
	if count <= 0 || count > palette.MaxCustomColors {
		return nil, fmt.Errorf("color count %d outside 1-%d", count, palette.MaxCustomColors)
	}

	type bucket struct {
		key     [3]uint8
		sum     [3]int
		samples int
	}
	buckets := make(map[[3]uint8]*bucket)
	total := 0

	pix, width, height := ToBuffer(img)
	for i := 0; i < width*height*4; i += 4 {
		if pix[i+3] == 0 {
			continue
		}
		r, g, b := pix[i], pix[i+1], pix[i+2]
		key := [3]uint8{r / suggestBucket, g / suggestBucket, b / suggestBucket}
		bk, ok := buckets[key]
		if !ok {
			bk = &bucket{key: key}
			buckets[key] = bk
		}
		bk.sum[0] += int(r)
		bk.sum[1] += int(g)
		bk.sum[2] += int(b)
		bk.samples++
		total++
	}
	if total == 0 {
		return nil, fmt.Errorf("image has no opaque pixels")
	}

	sorted := make([]*bucket, 0, len(buckets))
	for _, bk := range buckets {
		sorted = append(sorted, bk)
	}
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].samples != sorted[j].samples {
			return sorted[i].samples > sorted[j].samples
		}
		a, b := sorted[i].key, sorted[j].key
		if a[0] != b[0] {
			return a[0] < b[0]
		}
		if a[1] != b[1] {
			return a[1] < b[1]
		}
		return a[2] < b[2]
	})
	if len(sorted) > count {
		sorted = sorted[:count]
	}

	result := &SuggestedPalette{
		Colors:  make([]ColorFrequency, len(sorted)),
		Palette: make(palette.Palette, len(sorted)),
		Hexes:   make([]string, len(sorted)),
	}
	for i, bk := range sorted {
		c := palette.Color{
			R: uint8((bk.sum[0] + bk.samples/2) / bk.samples),
			G: uint8((bk.sum[1] + bk.samples/2) / bk.samples),
			B: uint8((bk.sum[2] + bk.samples/2) / bk.samples),
		}
		hex := c.Hex()
		result.Palette[i] = c
		result.Hexes[i] = hex
		result.Colors[i] = ColorFrequency{
			Hex:        hex,
			Percentage: float64(bk.samples) / float64(total) * 100,
		}
	}

	return result, nil
}
