package canvas

import (
	"bufio"
	"fmt"
	"io"
	"math"

	"github.com/midbel/linechart"
	"github.com/midbel/svg"
)

const rad2deg = 180 / math.Pi

type transform struct {
	tx    float64
	ty    float64
	angle float64
}

func (t transform) identity() bool {
	return t.tx == 0 && t.ty == 0 && t.angle == 0
}

func (t transform) translate(x, y float64) transform {
	sin, cos := math.Sincos(t.angle)
	t.tx += x*cos - y*sin
	t.ty += x*sin + y*cos
	return t
}

// SVG records drawing operations as svg elements. Nothing is written until
// Render is called.
type SVG struct {
	width  float64
	height float64

	faces *Faces
	elems []svg.Element

	path  svg.Path
	curr  transform
	stack []transform
}

func NewSVG(width, height float64) (*SVG, error) {
	s := SVG{
		faces: NewFaces(),
	}
	if err := s.Resize(width, height); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *SVG) Size() (float64, float64) {
	return s.width, s.height
}

func (s *SVG) Resize(width, height float64) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: svg size must be positive (%gx%g)", linechart.ErrInvalidSurface, width, height)
	}
	s.width, s.height = width, height
	return nil
}

func (s *SVG) Clear() {
	s.elems = s.elems[:0]
	s.path = svg.Path{}
	s.curr = transform{}
	s.stack = s.stack[:0]
}

func (s *SVG) FillRect(x, y, w, h float64, color string) {
	var el svg.Rect
	el.Pos = svg.NewPos(x, y)
	el.Dim = svg.NewDim(w, h)
	el.Fill = svg.NewFill(color)
	s.append(el.AsElement())
}

func (s *SVG) MoveTo(x, y float64) {
	s.path.AbsMoveTo(svg.NewPos(x, y))
}

func (s *SVG) LineTo(x, y float64) {
	s.path.AbsLineTo(svg.NewPos(x, y))
}

func (s *SVG) Stroke(color string, dash ...float64) {
	pat := s.path
	s.path = svg.Path{}

	pat.Rendering = "geometricPrecision"
	pat.Fill = svg.NewFill("none")
	pat.Stroke = svg.NewStroke(color, 1)
	if len(dash) > 0 {
		pat.Stroke.DashArray(dash...)
	}
	s.append(pat.AsElement())
}

func (s *SVG) FillCircle(x, y, radius float64, color string) {
	var el svg.Circle
	el.Pos = svg.NewPos(x, y)
	el.Radius = radius
	el.Fill = svg.NewFill(color)
	s.append(el.AsElement())
}

func (s *SVG) FillText(str string, x, y float64, style linechart.TextStyle) {
	if style.Font.Size <= 0 {
		return
	}
	txt := svg.NewText(str)
	txt.Pos = svg.NewPos(x, y)
	txt.Font = svg.NewFont(style.Font.Size, style.Font.Family)
	txt.Fill = svg.NewFill(style.Color)
	txt.Anchor, txt.Baseline = textAnchors(style)
	s.append(txt.AsElement())
}

func (s *SVG) MeasureText(str string, font linechart.Font) float64 {
	return s.faces.Measure(str, font)
}

func (s *SVG) Save() {
	s.stack = append(s.stack, s.curr)
}

func (s *SVG) Translate(x, y float64) {
	s.curr = s.curr.translate(x, y)
}

func (s *SVG) Rotate(angle float64) {
	s.curr.angle += angle
}

func (s *SVG) Restore() {
	n := len(s.stack)
	if n == 0 {
		return
	}
	s.curr = s.stack[n-1]
	s.stack = s.stack[:n-1]
}

// Render writes the svg document.
func (s *SVG) Render(w io.Writer) error {
	el := svg.NewSVG(svg.WithDimension(s.width, s.height))
	el.OmitProlog = true
	for i := range s.elems {
		el.Append(s.elems[i])
	}
	bw := bufio.NewWriter(w)
	el.Render(bw)
	return bw.Flush()
}

func (s *SVG) append(el svg.Element) {
	if s.curr.identity() {
		s.elems = append(s.elems, el)
		return
	}
	g := svg.NewGroup(svg.WithTranslate(s.curr.tx, s.curr.ty))
	g.Transform.RA = s.curr.angle * rad2deg
	g.Append(el)
	s.elems = append(s.elems, g.AsElement())
}

func textAnchors(style linechart.TextStyle) (string, string) {
	var (
		anchor = "start"
		base   = "auto"
	)
	switch style.Align {
	case linechart.AlignCenter:
		anchor = "middle"
	case linechart.AlignRight:
		anchor = "end"
	}
	switch style.Baseline {
	case linechart.BaselineTop:
		base = "hanging"
	case linechart.BaselineMiddle:
		base = "middle"
	}
	return anchor, base
}
