package main

import (
	"testing"

	"github.com/ironsheep/pixelart-mcp/internal/palette"
)

func TestConvertCmd_Options(t *testing.T) {
	cmd := ConvertCmd{
		Preset:          "c64",
		Dither:          "ordered",
		PixelResolution: -1,
		Contrast:        0,
		Saturation:      -1,
		CustomPalette:   []string{"#102030"},
		Upscale:         true,
	}

	opts, err := cmd.options()
	if err != nil {
		t.Fatalf("options failed: %v", err)
	}

	if opts.PixelResolution != 160 {
		t.Errorf("pixel resolution should come from the preset, got %d", opts.PixelResolution)
	}
	if opts.DitheringType != "ordered" {
		t.Errorf("dither override ignored, got %s", opts.DitheringType)
	}
	if opts.Contrast != 0 {
		t.Errorf("contrast 0 is an explicit value, got %d", opts.Contrast)
	}
	if opts.Palette != palette.Custom || len(opts.CustomPalette) != 1 {
		t.Errorf("custom palette not selected: %s %v", opts.Palette, opts.CustomPalette)
	}
	if opts.CustomPalette[0] != (palette.Color{R: 0x10, G: 0x20, B: 0x30}) {
		t.Errorf("custom color: got %+v", opts.CustomPalette[0])
	}
}

func TestConvertCmd_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cmd     ConvertCmd
		wantErr bool
	}{
		{"defaults", ConvertCmd{}, false},
		{"known preset", ConvertCmd{Preset: "gameboy"}, false},
		{"unknown preset", ConvertCmd{Preset: "atari"}, true},
		{"too many colors", ConvertCmd{CustomPalette: make([]string, palette.MaxCustomColors+1)}, true},
		{"too many colors for custom", ConvertCmd{Palette: palette.Custom, CustomPalette: make([]string, palette.MaxCustomColors+1)}, true},
		{"unused colors with built-in palette", ConvertCmd{Palette: "nes", CustomPalette: make([]string, palette.MaxCustomColors+1)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cmd.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
