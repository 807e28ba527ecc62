package imaging

import (
	"fmt"
	"image"
	"math"

	"github.com/disintegration/imaging"
)

// MaxPixelResolution bounds the working width accepted by Downscale.
const MaxPixelResolution = 1024

// Downscale resizes img to the given working width, keeping the aspect ratio.
// The height is rounded to the nearest pixel and is at least 1.
func Downscale(img image.Image, width int) (*image.NRGBA, error) {
	if width <= 0 || width > MaxPixelResolution {
		return nil, fmt.Errorf("pixel resolution %d outside 1-%d", width, MaxPixelResolution)
	}
	bounds := img.Bounds()
	if bounds.Empty() {
		return nil, fmt.Errorf("source image is empty")
	}

	height := int(math.Round(float64(width) * float64(bounds.Dy()) / float64(bounds.Dx())))
	if height < 1 {
		height = 1
	}
	if width == bounds.Dx() && height == bounds.Dy() {
		return imaging.Clone(img), nil
	}
	return imaging.Resize(img, width, height, imaging.Linear), nil
}

// Upscale enlarges img to width x height with nearest-neighbor sampling so
// each working pixel becomes a hard-edged block.
func Upscale(img image.Image, width, height int) (*image.NRGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid upscale size %dx%d", width, height)
	}
	return imaging.Resize(img, width, height, imaging.NearestNeighbor), nil
}
