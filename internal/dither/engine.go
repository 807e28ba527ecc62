package dither

import (
	"fmt"
	"math"
	"slices"
	"sync"

	"github.com/ironsheep/pixelart-mcp/internal/colorspace"
)

// Channels is the number of bytes per pixel in a buffer.
const Channels = 4

// Options tunes how a run executes. The zero value runs on one goroutine.
type Options struct {
	// Workers splits stateless strategies (posterize, none, ordered) by rows
	// across this many goroutines. Floyd-Steinberg always runs sequentially.
	Workers int
}

// Run quantizes pixels with s on a single goroutine. See RunWithOptions.
func Run(pixels []byte, width, height int, s Settings) ([]byte, error) {
	return RunWithOptions(pixels, width, height, s, Options{})
}

// RunWithOptions quantizes a width x height RGBA buffer.
//
// The returned buffer is newly allocated; pixels is only read. On error no
// buffer is returned.
func RunWithOptions(pixels []byte, width, height int, s Settings, opts Options) ([]byte, error) {
	if err := checkDimensions(len(pixels), width, height); err != nil {
		return nil, err
	}
	p, err := s.compile()
	if err != nil {
		return nil, err
	}

	// Copying the input carries alpha into the output.
	out := slices.Clone(pixels)

	if p.palette == nil {
		forEachRow(height, opts.Workers, func(y int) {
			for x := 0; x < width; x++ {
				i := (y*width + x) * Channels
				q := Posterize([3]uint8{pixels[i], pixels[i+1], pixels[i+2]})
				out[i], out[i+1], out[i+2] = q[0], q[1], q[2]
			}
		})
		return out, nil
	}

	matcher := colorspace.NewMatcher(p.palette, p.metric)

	switch p.mode {
	case ModeNone:
		forEachRow(height, opts.Workers, func(y int) {
			for x := 0; x < width; x++ {
				i := (y*width + x) * Channels
				px := [3]float64{float64(pixels[i]), float64(pixels[i+1]), float64(pixels[i+2])}
				q := matcher.Nearest(px)
				out[i], out[i+1], out[i+2] = q.R, q.G, q.B
			}
		})

	case ModeOrdered:
		forEachRow(height, opts.Workers, func(y int) {
			for x := 0; x < width; x++ {
				i := (y*width + x) * Channels
				q := matcher.Nearest(OrderedBias([3]uint8{pixels[i], pixels[i+1], pixels[i+2]}, x, y))
				out[i], out[i+1], out[i+2] = q.R, q.G, q.B
			}
		})

	case ModeFloyd:
		// The working buffer accumulates diffused error. Raster order
		// guarantees each cell has received every contribution from earlier
		// pixels before it is read, and diffuse only writes later cells.
		work := slices.Clone(pixels)
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				i := (y*width + x) * Channels
				old := [3]float64{float64(work[i]), float64(work[i+1]), float64(work[i+2])}
				q := matcher.Nearest(old)
				out[i], out[i+1], out[i+2] = q.R, q.G, q.B
				diffuse(work, width, height, x, y, [3]float64{
					old[0] - float64(q.R),
					old[1] - float64(q.G),
					old[2] - float64(q.B),
				})
			}
		}

	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownMode, p.mode)
	}

	return out, nil
}

func checkDimensions(n, width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if width > math.MaxInt/Channels/height {
		return fmt.Errorf("%w: %dx%d overflows", ErrInvalidDimensions, width, height)
	}
	if want := width * height * Channels; n != want {
		return fmt.Errorf("%w: buffer holds %d bytes, %dx%d needs %d", ErrInvalidDimensions, n, width, height, want)
	}
	return nil
}

// forEachRow calls fn for every row. With more than one worker the rows are
// split into contiguous bands processed concurrently; fn must then touch only
// its own row of any shared output.
func forEachRow(height, workers int, fn func(y int)) {
	if workers > height {
		workers = height
	}
	if workers <= 1 {
		for y := 0; y < height; y++ {
			fn(y)
		}
		return
	}

	band := (height + workers - 1) / workers
	var wg sync.WaitGroup
	for start := 0; start < height; start += band {
		end := min(start+band, height)
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for y := start; y < end; y++ {
				fn(y)
			}
		}(start, end)
	}
	wg.Wait()
}
