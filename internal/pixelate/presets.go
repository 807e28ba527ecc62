package pixelate

import (
	"fmt"
	"sort"
)

// Settings is the full set of host-side conversion knobs.
type Settings struct {
	// PixelResolution is the working width in pixels.
	PixelResolution int `json:"pixel_resolution"`

	Palette       string `json:"palette"`
	DitheringType string `json:"dithering_type"`
	ColorMetric   string `json:"color_metric"`

	// Contrast and Saturation are percentages; 100 leaves the image as is.
	Contrast   int `json:"contrast"`
	Saturation int `json:"saturation"`
}

// Defaults are the settings used when no preset is named.
var Defaults = Settings{
	PixelResolution: 128,
	Palette:         "nes",
	DitheringType:   "floyd",
	ColorMetric:     "cielab",
	Contrast:        100,
	Saturation:      100,
}

var presets = map[string]Settings{
	"gameboy": {PixelResolution: 160, Palette: "gameboy", DitheringType: "ordered", ColorMetric: "rgb", Contrast: 120, Saturation: 10},
	"nes":     {PixelResolution: 128, Palette: "nes", DitheringType: "none", ColorMetric: "cielab", Contrast: 110, Saturation: 120},
	"c64":     {PixelResolution: 160, Palette: "c64", DitheringType: "floyd", ColorMetric: "rgb", Contrast: 100, Saturation: 100},
	"clean":   {PixelResolution: 256, Palette: "pico8", DitheringType: "none", ColorMetric: "cielab", Contrast: 100, Saturation: 100},
}

// Preset returns the named preset, or Defaults for an empty name.
func Preset(name string) (Settings, error) {
	if name == "" {
		return Defaults, nil
	}
	s, ok := presets[name]
	if !ok {
		return Settings{}, fmt.Errorf("unknown preset: %s", name)
	}
	return s, nil
}

// PresetNames returns the preset names in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Presets returns a copy of all presets keyed by name.
func Presets() map[string]Settings {
	out := make(map[string]Settings, len(presets))
	for name, s := range presets {
		out[name] = s
	}
	return out
}
