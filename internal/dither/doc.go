// Package dither remaps raster images onto a palette.
//
// Run takes a flat RGBA buffer (4 bytes per pixel, row-major), its dimensions
// and a Settings value, and returns a new buffer of the same shape in which
// every RGB triple is a palette entry. Alpha is copied through untouched and
// the input buffer is never modified.
//
// # Strategies
//
// One strategy is chosen per run:
//
//   - Posterize: used whenever no palette resolves, regardless of the
//     requested mode. Each channel is rounded to a multiple of 48.
//   - ModeNone: plain nearest-color quantization.
//   - ModeOrdered: a 4x4 Bayer threshold biases each pixel upward before the
//     nearest-color search. Stateless across pixels.
//   - ModeFloyd: Floyd-Steinberg error diffusion. The quantization error of
//     each pixel is pushed into not-yet-visited neighbors of a working buffer.
//
// # Ordering
//
// Floyd-Steinberg is inherently sequential: a pixel may only be read after
// every earlier pixel in raster order has diffused into it. Run therefore
// visits diffusion images strictly left to right, top to bottom, on one
// goroutine. The stateless strategies may be split by rows (see Options).
//
// # Errors
//
// Run fails with ErrInvalidDimensions, ErrUnknownMode, ErrUnknownMetric or
// ErrCustomPaletteTooLarge before producing any output. An unknown palette
// name is not an error; it selects the posterize path.
package dither
