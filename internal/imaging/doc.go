// Package imaging is the host-side image glue around the quantization engine.
//
// The engine itself only understands flat RGBA buffers. This package loads
// and caches source images, applies the contrast and saturation
// pre-adjustments, scales images to and from the working pixel resolution,
// converts between image.Image values and flat buffers, encodes results and
// suggests custom palettes from an image's dominant colors.
//
// # Coordinate System
//
// Buffers are row-major, origin at the top-left, 4 bytes (R, G, B, A) per
// pixel with no row padding, non-premultiplied like image.NRGBA.
//
// # Thread Safety
//
// The ImageCache type is safe for concurrent use. The other functions are
// stateless and never modify their inputs.
//
// # Supported Formats
//
// Decoding: PNG, JPEG, GIF, BMP, TIFF and WebP. Encoding: PNG for inline
// results; Save picks the format from the file extension.
package imaging
