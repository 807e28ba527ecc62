package dither

import (
	"errors"

	"github.com/ironsheep/pixelart-mcp/internal/colorspace"
)

var (
	// ErrInvalidDimensions reports a non-positive dimension or a buffer whose
	// length is not width*height*4.
	ErrInvalidDimensions = errors.New("invalid dimensions")

	// ErrUnknownMode reports an unrecognized dithering type.
	ErrUnknownMode = errors.New("unknown dithering type")

	// ErrUnknownMetric reports an unrecognized color metric.
	ErrUnknownMetric = colorspace.ErrUnknownMetric

	// ErrCustomPaletteTooLarge reports a custom palette above
	// palette.MaxCustomColors entries.
	ErrCustomPaletteTooLarge = errors.New("custom palette too large")
)
