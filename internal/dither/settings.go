package dither

import (
	"fmt"

	"github.com/ironsheep/pixelart-mcp/internal/colorspace"
	"github.com/ironsheep/pixelart-mcp/internal/palette"
)

// Settings is the per-run configuration. JSON field names follow the request
// message contract.
type Settings struct {
	// Palette is a built-in palette name or palette.Custom.
	Palette string `json:"palette"`

	// CustomPalette is used when Palette is palette.Custom.
	CustomPalette palette.Palette `json:"customPalette,omitempty"`

	// DitheringType is "none", "ordered" or "floyd".
	DitheringType string `json:"ditheringType"`

	// ColorMetric is "rgb" or "cielab".
	ColorMetric string `json:"colorMetric"`
}

// ResolvedPalette returns the palette a run with these settings would use,
// or nil for the posterize path.
func (s Settings) ResolvedPalette() palette.Palette {
	return palette.Resolve(s.Palette, s.CustomPalette)
}

// plan is a validated Settings, fixed for the duration of one run.
type plan struct {
	mode    Mode
	metric  colorspace.Metric
	palette palette.Palette // nil selects posterize
}

func (s Settings) compile() (plan, error) {
	mode, err := ParseMode(s.DitheringType)
	if err != nil {
		return plan{}, err
	}
	metric, err := colorspace.ParseMetric(s.ColorMetric)
	if err != nil {
		return plan{}, err
	}
	if s.Palette == palette.Custom {
		if err := palette.ValidateCustom(s.CustomPalette); err != nil {
			return plan{}, fmt.Errorf("%w: %v", ErrCustomPaletteTooLarge, err)
		}
	}
	return plan{
		mode:    mode,
		metric:  metric,
		palette: s.ResolvedPalette(),
	}, nil
}
