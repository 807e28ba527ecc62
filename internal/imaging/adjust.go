package imaging

import (
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/adjust"
)

// MaxAdjustPercent is the largest contrast or saturation percentage accepted.
const MaxAdjustPercent = 300

// Adjust applies contrast and then saturation changes expressed as CSS-style
// percentages, where 100 leaves the image unchanged, 0 gives flat gray
// (contrast) or grayscale (saturation) and 200 doubles the effect.
//
// When both values are 100 the source is returned as is.
func Adjust(img image.Image, contrast, saturation int) (image.Image, error) {
	if contrast < 0 || contrast > MaxAdjustPercent {
		return nil, fmt.Errorf("contrast %d%% outside 0-%d%%", contrast, MaxAdjustPercent)
	}
	if saturation < 0 || saturation > MaxAdjustPercent {
		return nil, fmt.Errorf("saturation %d%% outside 0-%d%%", saturation, MaxAdjustPercent)
	}

	out := img
	if contrast != 100 {
		out = adjust.Contrast(out, percentToChange(contrast))
	}
	if saturation != 100 {
		out = adjust.Saturation(out, percentToChange(saturation))
	}
	return out, nil
}

// percentToChange maps a percentage to bild's relative change, 100% -> 0.
func percentToChange(pct int) float64 {
	return float64(pct)/100 - 1
}
