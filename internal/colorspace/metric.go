// Package colorspace implements the color distance metrics and the
// nearest-palette-entry search used by the quantizer.
//
// Colors enter as float64 sRGB triples in the 0-255 range so that biased
// (ordered dithering) values can be compared without rounding.
package colorspace

import (
	"errors"
	"fmt"
	"math"
)

// ErrUnknownMetric is returned by ParseMetric for unrecognized names.
var ErrUnknownMetric = errors.New("unknown color metric")

// Metric selects how color distance is measured.
type Metric int

const (
	// MetricRGB is the squared Euclidean distance in sRGB. It ranks like
	// the true distance but skips the square root.
	MetricRGB Metric = iota
	// MetricCIELAB is the Euclidean distance between CIELAB coordinates.
	MetricCIELAB
)

// ParseMetric maps the wire names "rgb" and "cielab" to a Metric.
func ParseMetric(name string) (Metric, error) {
	switch name {
	case "rgb":
		return MetricRGB, nil
	case "cielab":
		return MetricCIELAB, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMetric, name)
	}
}

// String returns the wire name of the metric.
func (m Metric) String() string {
	switch m {
	case MetricRGB:
		return "rgb"
	case MetricCIELAB:
		return "cielab"
	default:
		return fmt.Sprintf("Metric(%d)", int(m))
	}
}

// Distance measures how far apart a and b are under metric m.
//
// The result depends only on its arguments. An undefined metric falls back to
// MetricRGB; ParseMetric never produces one.
func Distance(a, b [3]float64, m Metric) float64 {
	if m == MetricCIELAB {
		return ToLab(a).Distance(ToLab(b))
	}
	return squaredRGB(a, b)
}

func squaredRGB(a, b [3]float64) float64 {
	dr := a[0] - b[0]
	dg := a[1] - b[1]
	db := a[2] - b[2]
	return dr*dr + dg*dg + db*db
}

// Distance is the Euclidean (CIE76) distance between two Lab colors.
func (l Lab) Distance(o Lab) float64 {
	dl := l.L - o.L
	da := l.A - o.A
	db := l.B - o.B
	return math.Sqrt(dl*dl + da*da + db*db)
}
