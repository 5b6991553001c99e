package linechart

import (
	"fmt"
	"strings"
)

type Palette []string

// Colors lists the color names accepted by ColorSettings.
var Colors = Palette{
	"red",
	"green",
	"lime",
	"blue",
	"yellow",
	"orange",
	"purple",
	"black",
	"gray",
	"white",
}

func (p Palette) Has(name string) bool {
	return contains(p, strings.ToLower(name))
}

func (p Palette) String() string {
	return strings.Join(p, ", ")
}

const (
	defaultColor           = "black"
	defaultBackgroundColor = "white"
)

const (
	GraphLineColor  = "graphLineColor"
	GraphDotColor   = "graphDotColor"
	ZeroLineColor   = "zeroLineColor"
	AxisColor       = "axisColor"
	LabelColor      = "labelColor"
	TitleColor      = "titleColor"
	BackgroundColor = "backgroundColor"
)

var colorFields = []string{
	GraphLineColor,
	GraphDotColor,
	ZeroLineColor,
	AxisColor,
	LabelColor,
	TitleColor,
	BackgroundColor,
}

// ColorSet holds the raw color names of a ColorSettings. Empty fields fall
// back to black, or white for the background.
type ColorSet struct {
	GraphLine  string
	GraphDot   string
	ZeroLine   string
	Axis       string
	Label      string
	Title      string
	Background string
}

func (s *ColorSet) field(name string) *string {
	switch name {
	case GraphLineColor:
		return &s.GraphLine
	case GraphDotColor:
		return &s.GraphDot
	case ZeroLineColor:
		return &s.ZeroLine
	case AxisColor:
		return &s.Axis
	case LabelColor:
		return &s.Label
	case TitleColor:
		return &s.Title
	case BackgroundColor:
		return &s.Background
	default:
		return nil
	}
}

type ColorSettings struct {
	set ColorSet
}

func DefaultColorSettings() ColorSettings {
	c, _ := NewColorSettings(ColorSet{
		ZeroLine: "gray",
	})
	return c
}

func NewColorSettings(set ColorSet) (ColorSettings, error) {
	var invalid []string
	for _, name := range colorFields {
		ptr := set.field(name)
		if *ptr == "" {
			*ptr = defaultColor
			if name == BackgroundColor {
				*ptr = defaultBackgroundColor
			}
			continue
		}
		if !Colors.Has(*ptr) {
			invalid = append(invalid, name)
			continue
		}
		*ptr = strings.ToLower(*ptr)
	}
	if len(invalid) > 0 {
		return ColorSettings{}, argumentError(fmt.Sprintf("color must be one of %s", Colors), invalid...)
	}
	return ColorSettings{set: set}, nil
}

// Set returns a copy of the normalized color names.
func (c ColorSettings) Set() ColorSet {
	return c.set
}

func (c ColorSettings) GraphLineColor() string {
	return c.set.GraphLine
}

func (c ColorSettings) GraphDotColor() string {
	return c.set.GraphDot
}

func (c ColorSettings) ZeroLineColor() string {
	return c.set.ZeroLine
}

func (c ColorSettings) AxisColor() string {
	return c.set.Axis
}

func (c ColorSettings) LabelColor() string {
	return c.set.Label
}

func (c ColorSettings) TitleColor() string {
	return c.set.Title
}

func (c ColorSettings) BackgroundColor() string {
	return c.set.Background
}

var colorUpdate = shape{
	Allowed: colorFields,
	MinLen:  1,
}

// mergeColors applies a list of single field updates over the current
// colors. The whole request is validated before anything is merged.
func mergeColors(curr ColorSettings, req any) (ColorSettings, error) {
	list, ok := toArray(req)
	if !ok || len(list) == 0 {
		return curr, argumentError(fmt.Sprintf("colors must be a non empty array of objects with one of %s", strings.Join(colorFields, ", ")))
	}
	var (
		set     = curr.Set()
		invalid []string
	)
	for i, item := range list {
		fs, err := colorUpdate.validate(fmt.Sprintf("colors[%d]", i), item)
		if err != nil {
			return curr, err
		}
		if len(fs) != 1 {
			return curr, argumentError(fmt.Sprintf("colors[%d] must set exactly one color", i))
		}
		for name, value := range fs {
			str, ok := value.(string)
			if !ok || !Colors.Has(str) {
				invalid = append(invalid, name)
				continue
			}
			*set.field(name) = str
		}
	}
	if len(invalid) > 0 {
		return curr, argumentError(fmt.Sprintf("color must be one of %s", Colors), invalid...)
	}
	return NewColorSettings(set)
}
