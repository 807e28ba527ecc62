package dither

import "fmt"

// Mode is the dithering strategy applied when a palette is resolved.
type Mode int

const (
	ModeNone Mode = iota
	ModeOrdered
	ModeFloyd
)

// ParseMode maps the wire names "none", "ordered" and "floyd" to a Mode.
func ParseMode(name string) (Mode, error) {
	switch name {
	case "none":
		return ModeNone, nil
	case "ordered":
		return ModeOrdered, nil
	case "floyd":
		return ModeFloyd, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMode, name)
	}
}

func (m Mode) String() string {
	switch m {
	case ModeNone:
		return "none"
	case ModeOrdered:
		return "ordered"
	case ModeFloyd:
		return "floyd"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}
