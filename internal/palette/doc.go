// Package palette holds the quantization targets used by the dithering engine.
//
// A palette is an ordered, non-empty list of sRGB colors. Order is significant:
// nearest-color search keeps the first entry among equally close candidates.
//
// # Built-in Palettes
//
// The built-in tables are fixed data and are part of the external contract:
//   - grayscale: 6 evenly spaced grays
//   - gameboy: the 4 greens of the original handheld
//   - nes: the 42-entry console palette (duplicated black kept)
//   - pico8: the 16-color fantasy console palette
//   - c64: the 16-color home computer palette
//   - masterSystem: 16 entries (two repeated banks of 8)
//   - rpgClassic, darkFantasy, lofi: curated art palettes
//
// # Custom Palettes
//
// The name "custom" selects a caller-supplied palette of at most MaxCustomColors
// entries. An empty custom palette, like an unknown name, resolves to nil, which
// the engine treats as "no palette" and answers with a posterize transform.
package palette
