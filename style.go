package linechart

import (
	"math"
)

const (
	DefaultFontFamily = "Arial"
	DefaultLabelSize  = 12.0
	DefaultTitleSize  = 16.0
)

const (
	FontFamily    = "fontFamily"
	LabelFontSize = "labelFontSize"
	TitleFontSize = "titleFontSize"
)

// Font is a family and a size in pixels.
type Font struct {
	Family string
	Size   float64
}

// String returns the font in CSS shorthand, eg "12px Arial".
func (f Font) String() string {
	return formatValue(f.Size) + "px " + f.Family
}

type FontSettings struct {
	family string
	label  float64
	title  float64
}

func DefaultFontSettings() FontSettings {
	f, _ := NewFontSettings(DefaultFontFamily, DefaultLabelSize, DefaultTitleSize)
	return f
}

func NewFontSettings(family string, label, title float64) (FontSettings, error) {
	var invalid []string
	if family == "" {
		invalid = append(invalid, FontFamily)
	}
	if !isFontSize(label) {
		invalid = append(invalid, LabelFontSize)
	}
	if !isFontSize(title) {
		invalid = append(invalid, TitleFontSize)
	}
	if len(invalid) > 0 {
		return FontSettings{}, argumentError("font family must not be empty and sizes must be non-negative numbers", invalid...)
	}
	f := FontSettings{
		family: family,
		label:  label,
		title:  title,
	}
	return f, nil
}

func isFontSize(f float64) bool {
	return f >= 0 && !math.IsNaN(f) && !math.IsInf(f, 0)
}

func (f FontSettings) Family() string {
	return f.family
}

func (f FontSettings) LabelSize() float64 {
	return f.label
}

func (f FontSettings) TitleSize() float64 {
	return f.title
}

func (f FontSettings) LabelFont() Font {
	return Font{Family: f.family, Size: f.label}
}

func (f FontSettings) TitleFont() Font {
	return Font{Family: f.family, Size: f.title}
}

// Label returns the style of the axis labels, eg "12px Arial".
func (f FontSettings) Label() string {
	return f.LabelFont().String()
}

// Title returns the style of the axis titles, eg "16px Arial".
func (f FontSettings) Title() string {
	return f.TitleFont().String()
}

var fontRequest = shape{
	Allowed:  []string{FontFamily, LabelFontSize, TitleFontSize},
	Required: true,
}

func makeFonts(req any) (FontSettings, error) {
	fs, err := fontRequest.validate("font settings", req)
	if err != nil {
		return FontSettings{}, err
	}
	if err := expect(fs, KindString, FontFamily); err != nil {
		return FontSettings{}, err
	}
	if err := expect(fs, KindPositive, LabelFontSize, TitleFontSize); err != nil {
		return FontSettings{}, err
	}
	var (
		family   = fs[FontFamily].(string)
		label, _ = toNumber(fs[LabelFontSize])
		title, _ = toNumber(fs[TitleFontSize])
	)
	return NewFontSettings(family, label, title)
}
