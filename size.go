package linechart

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

type Unit int

const (
	Pixel Unit = iota
	Percent
)

func (u Unit) String() string {
	if u == Percent {
		return "%"
	}
	return "px"
}

// Length is a CSS length restricted to pixels and percentages.
type Length struct {
	Value float64
	Unit  Unit
}

func Pixels(v float64) Length {
	return Length{Value: v, Unit: Pixel}
}

func Percents(v float64) Length {
	return Length{Value: v, Unit: Percent}
}

func ParseLength(str string) (Length, error) {
	var (
		unit Unit
		num  string
	)
	switch {
	case strings.HasSuffix(str, "%"):
		unit, num = Percent, strings.TrimSuffix(str, "%")
	case strings.HasSuffix(str, "px"):
		unit, num = Pixel, strings.TrimSuffix(str, "px")
	default:
		return Length{}, argumentError(fmt.Sprintf("%q must end in %% or px", str))
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(num), 64)
	if err != nil || v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return Length{}, argumentError(fmt.Sprintf("%q is not a valid length", str))
	}
	return Length{Value: v, Unit: unit}, nil
}

func (l Length) String() string {
	return formatValue(l.Value) + l.Unit.String()
}

// Resolve returns the length in whole pixels, percentages being relative to
// avail.
func (l Length) Resolve(avail float64) float64 {
	if l.Unit == Percent {
		return math.Floor(avail * l.Value / 100)
	}
	return math.Floor(l.Value)
}

type Size struct {
	Width  Length
	Height Length
}

func DefaultSize() Size {
	return Size{
		Width:  Percents(100),
		Height: Percents(100),
	}
}

func (s Size) String() string {
	return s.Width.String() + " x " + s.Height.String()
}

// Resolve returns the size in pixels relative to a viewport.
func (s Size) Resolve(width, height float64) (float64, float64) {
	return s.Width.Resolve(width), s.Height.Resolve(height)
}

// ParseSize parses the width and height of a graph. Both must be CSS
// lengths ending in % or px.
func ParseSize(width, height string) (Size, error) {
	var (
		sz    Size
		empty []string
		err   error
	)
	if width == "" {
		empty = append(empty, "width")
	}
	if height == "" {
		empty = append(empty, "height")
	}
	if len(empty) > 0 {
		return sz, argumentError("value must not be empty", empty...)
	}
	if sz.Width, err = ParseLength(width); err != nil {
		return sz, err
	}
	if sz.Height, err = ParseLength(height); err != nil {
		return sz, err
	}
	return sz, nil
}
