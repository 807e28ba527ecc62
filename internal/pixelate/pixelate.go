// Package pixelate turns a decoded source image into pixel art.
//
// It chains the host-side steps around the quantization engine: contrast and
// saturation pre-adjustment, downscaling to the working resolution, the
// quantization run on a worker, and an optional nearest-neighbor upscale back
// to the source size.
package pixelate

import (
	"context"
	"fmt"
	"image"

	"github.com/ironsheep/pixelart-mcp/internal/dither"
	"github.com/ironsheep/pixelart-mcp/internal/imaging"
	"github.com/ironsheep/pixelart-mcp/internal/palette"
	"github.com/ironsheep/pixelart-mcp/internal/worker"
)

// Options configures one conversion.
type Options struct {
	Settings

	// CustomPalette is used when Palette is "custom".
	CustomPalette palette.Palette

	// Upscale scales the result back to the source dimensions.
	Upscale bool
}

// Result is a finished conversion.
type Result struct {
	// Image is the final image, upscaled when requested.
	Image *image.NRGBA

	// WorkingWidth and WorkingHeight are the quantized resolution.
	WorkingWidth  int
	WorkingHeight int

	// Posterized reports that no palette resolved and the posterize
	// fallback was used.
	Posterized bool

	// Usage lists the colors of the quantized image, most common first.
	Usage []imaging.ColorUsage

	// Stale is copied from the worker response.
	Stale bool
}

// Run converts src according to opts using w.
func Run(ctx context.Context, w *worker.Worker, src image.Image, opts Options) (*Result, error) {
	adjusted, err := imaging.Adjust(src, opts.Contrast, opts.Saturation)
	if err != nil {
		return nil, err
	}

	small, err := imaging.Downscale(adjusted, opts.PixelResolution)
	if err != nil {
		return nil, err
	}
	pix, width, height := imaging.ToBuffer(small)

	settings := dither.Settings{
		Palette:       opts.Palette,
		CustomPalette: opts.CustomPalette,
		DitheringType: opts.DitheringType,
		ColorMetric:   opts.ColorMetric,
	}

	resp, err := w.Convert(ctx, worker.Request{
		ImageData: pix,
		Width:     width,
		Height:    height,
		Settings:  settings,
	})
	if err != nil {
		return nil, fmt.Errorf("conversion interrupted: %w", err)
	}
	if err := resp.Err(); err != nil {
		return nil, fmt.Errorf("conversion failed: %w", err)
	}

	out, err := imaging.FromBuffer(resp.ImageData, width, height)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Image:         out,
		WorkingWidth:  width,
		WorkingHeight: height,
		Posterized:    settings.ResolvedPalette() == nil,
		Usage:         imaging.PaletteUsage(resp.ImageData),
		Stale:         resp.Stale,
	}

	if opts.Upscale {
		bounds := src.Bounds()
		result.Image, err = imaging.Upscale(out, bounds.Dx(), bounds.Dy())
		if err != nil {
			return nil, err
		}
	}

	return result, nil
}
