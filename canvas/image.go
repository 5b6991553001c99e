package canvas

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"math"

	"github.com/fogleman/gg"
	"github.com/midbel/linechart"
)

// Image is a raster surface. Its backing image holds PixelRatio pixels per
// displayed pixel while Size keeps reporting the displayed size.
type Image struct {
	width  float64
	height float64
	ratio  float64

	faces *Faces
	ctx   *gg.Context
}

type ImageOption func(*Image)

func WithPixelRatio(ratio float64) ImageOption {
	return func(i *Image) {
		if ratio > 0 {
			i.ratio = ratio
		}
	}
}

func NewImage(width, height float64, options ...ImageOption) (*Image, error) {
	i := Image{
		ratio: 1,
		faces: NewFaces(),
	}
	for _, o := range options {
		o(&i)
	}
	if err := i.Resize(width, height); err != nil {
		return nil, err
	}
	return &i, nil
}

func (i *Image) Size() (float64, float64) {
	return i.width, i.height
}

func (i *Image) PixelRatio() float64 {
	return i.ratio
}

func (i *Image) Resize(width, height float64) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: image size must be positive (%gx%g)", linechart.ErrInvalidSurface, width, height)
	}
	var (
		w = int(math.Ceil(width * i.ratio))
		h = int(math.Ceil(height * i.ratio))
	)
	i.width, i.height = width, height
	i.ctx = gg.NewContext(w, h)
	i.ctx.Scale(i.ratio, i.ratio)
	return nil
}

func (i *Image) Clear() {
	i.ctx.ClearPath()
	i.ctx.SetColor(color.Transparent)
	i.ctx.Clear()
}

func (i *Image) FillRect(x, y, w, h float64, color string) {
	i.ctx.DrawRectangle(x, y, w, h)
	i.ctx.SetColor(RGBA(color))
	i.ctx.Fill()
}

func (i *Image) MoveTo(x, y float64) {
	i.ctx.MoveTo(x, y)
}

func (i *Image) LineTo(x, y float64) {
	i.ctx.LineTo(x, y)
}

func (i *Image) Stroke(color string, dash ...float64) {
	i.ctx.SetColor(RGBA(color))
	i.ctx.SetLineWidth(1)
	i.ctx.SetDash(dash...)
	i.ctx.Stroke()
	i.ctx.SetDash()
}

func (i *Image) FillCircle(x, y, radius float64, color string) {
	i.ctx.DrawCircle(x, y, radius)
	i.ctx.SetColor(RGBA(color))
	i.ctx.Fill()
}

func (i *Image) FillText(str string, x, y float64, style linechart.TextStyle) {
	face, err := i.faces.Face(style.Font)
	if err != nil {
		return
	}
	ax, ay := anchors(style)
	i.ctx.SetFontFace(face)
	i.ctx.SetColor(RGBA(style.Color))
	i.ctx.DrawStringAnchored(str, x, y, ax, ay)
}

func (i *Image) MeasureText(str string, font linechart.Font) float64 {
	return i.faces.Measure(str, font)
}

func (i *Image) Save() {
	i.ctx.Push()
}

func (i *Image) Translate(x, y float64) {
	i.ctx.Translate(x, y)
}

func (i *Image) Rotate(angle float64) {
	i.ctx.Rotate(angle)
}

func (i *Image) Restore() {
	i.ctx.Pop()
}

func (i *Image) Image() image.Image {
	return i.ctx.Image()
}

func (i *Image) WritePNG(w io.Writer) error {
	return i.ctx.EncodePNG(w)
}

// anchors converts the alignment of a text to the anchors of
// DrawStringAnchored, where y is the baseline when ay is 0.
func anchors(style linechart.TextStyle) (float64, float64) {
	var ax, ay float64
	switch style.Align {
	case linechart.AlignCenter:
		ax = 0.5
	case linechart.AlignRight:
		ax = 1
	}
	switch style.Baseline {
	case linechart.BaselineTop:
		ay = 1
	case linechart.BaselineMiddle:
		ay = 0.5
	}
	return ax, ay
}
