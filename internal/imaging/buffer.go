package imaging

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// ToBuffer flattens img into a row-major RGBA buffer with no row padding.
func ToBuffer(img image.Image) (pix []byte, width, height int) {
	nrgba := imaging.Clone(img)
	return nrgba.Pix, nrgba.Rect.Dx(), nrgba.Rect.Dy()
}

// FromBuffer wraps a flat RGBA buffer as an image. The buffer is not copied.
func FromBuffer(pix []byte, width, height int) (*image.NRGBA, error) {
	if width <= 0 || height <= 0 || len(pix) != width*height*4 {
		return nil, fmt.Errorf("buffer of %d bytes does not hold a %dx%d RGBA image", len(pix), width, height)
	}
	return &image.NRGBA{
		Pix:    pix,
		Stride: width * 4,
		Rect:   image.Rect(0, 0, width, height),
	}, nil
}
