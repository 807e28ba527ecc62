package palette

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Custom is the palette name that selects the caller-supplied colors.
const Custom = "custom"

// FullColor is the conventional name for the posterize path. It is not a
// built-in palette, so it resolves to nil like any unknown name.
const FullColor = "fullColor"

// MaxCustomColors is the largest custom palette accepted.
const MaxCustomColors = 16

// Color is an sRGB color with 8-bit components.
//
// In JSON a Color is written as a three element array [r, g, b]. When reading,
// a "#RRGGBB" (or "RRGGBB") string is accepted as well.
type Color struct {
	R uint8 // Red component (0-255)
	G uint8 // Green component (0-255)
	B uint8 // Blue component (0-255)
}

// Palette is an ordered list of quantization targets.
type Palette []Color

// Hex returns the color as "#RRGGBB".
func (c Color) Hex() string {
	return strings.ToUpper(c.colorful().Hex())
}

// Floats returns the components as float64 values in the 0-255 range.
func (c Color) Floats() [3]float64 {
	return [3]float64{float64(c.R), float64(c.G), float64(c.B)}
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255.0, G: float64(c.G) / 255.0, B: float64(c.B) / 255.0}
}

// MarshalJSON encodes the color as [r, g, b].
func (c Color) MarshalJSON() ([]byte, error) {
	return json.Marshal([3]uint8{c.R, c.G, c.B})
}

// UnmarshalJSON decodes either an [r, g, b] array or a hex string.
func (c *Color) UnmarshalJSON(data []byte) error {
	var hex string
	if err := json.Unmarshal(data, &hex); err == nil {
		parsed, err := ParseHex(hex)
		if err != nil {
			return err
		}
		*c = parsed
		return nil
	}

	var triple []int
	if err := json.Unmarshal(data, &triple); err != nil {
		return fmt.Errorf("color must be [r,g,b] or \"#RRGGBB\": %w", err)
	}
	if len(triple) != 3 {
		return fmt.Errorf("color must have 3 components, got %d", len(triple))
	}
	for i, v := range triple {
		if v < 0 || v > 255 {
			return fmt.Errorf("color component %d out of range: %d", i, v)
		}
	}
	*c = Color{R: uint8(triple[0]), G: uint8(triple[1]), B: uint8(triple[2])}
	return nil
}

// ParseHex parses a "#RRGGBB" color. The leading '#' is optional.
func ParseHex(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	if len(s) != 7 {
		return Color{}, fmt.Errorf("invalid hex color %q: want #RRGGBB", s)
	}
	col, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	r, g, b := col.RGB255()
	return Color{R: r, G: g, B: b}, nil
}

// ParseHexList parses a list of hex colors in order.
func ParseHexList(hexes []string) (Palette, error) {
	pal := make(Palette, 0, len(hexes))
	for i, h := range hexes {
		c, err := ParseHex(h)
		if err != nil {
			return nil, fmt.Errorf("color %d: %w", i, err)
		}
		pal = append(pal, c)
	}
	return pal, nil
}

// HexList returns the palette entries as "#RRGGBB" strings.
func (p Palette) HexList() []string {
	out := make([]string, len(p))
	for i, c := range p {
		out[i] = c.Hex()
	}
	return out
}

// Contains reports whether c is an entry of p.
func (p Palette) Contains(c Color) bool {
	return slices.Contains(p, c)
}

// Names returns the built-in palette names in declaration order.
func Names() []string {
	return slices.Clone(builtinOrder)
}

// Lookup returns a copy of the named built-in palette.
func Lookup(name string) (Palette, bool) {
	pal, ok := builtins[name]
	if !ok {
		return nil, false
	}
	return slices.Clone(pal), true
}

// Resolve selects the palette for a run.
//
// For Custom it returns custom when that is non-empty. For a built-in name it
// returns that table. Anything else, including an empty custom palette,
// resolves to nil. Resolve never fails; callers check the custom size limit
// separately with ValidateCustom.
func Resolve(name string, custom Palette) Palette {
	if name == Custom {
		if len(custom) == 0 {
			return nil
		}
		return slices.Clone(custom)
	}
	pal, _ := Lookup(name)
	return pal
}

// ValidateCustom rejects custom palettes above MaxCustomColors entries.
func ValidateCustom(custom Palette) error {
	if len(custom) > MaxCustomColors {
		return fmt.Errorf("custom palette has %d colors, maximum is %d", len(custom), MaxCustomColors)
	}
	return nil
}
