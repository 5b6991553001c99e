// Package canvas provides the surfaces a line graph is drawn on: an SVG
// document, a raster image and a recorder used by tests.
package canvas

import (
	"fmt"
	"io"
	"strings"

	"github.com/midbel/linechart"
)

const (
	FormatSVG = "svg"
	FormatPNG = "png"
)

// Surface is a resizable renderer whose drawing can be exported.
type Surface interface {
	linechart.Renderer
	linechart.Resizer
	Export(w io.Writer) error
	ContentType() string
}

// New creates the surface for format. The pixel ratio only applies to
// raster surfaces.
func New(format string, width, height, ratio float64) (Surface, error) {
	switch strings.ToLower(format) {
	case FormatSVG, "":
		return NewSVG(width, height)
	case FormatPNG:
		return NewImage(width, height, WithPixelRatio(ratio))
	default:
		return nil, fmt.Errorf("%s: unsupported format", format)
	}
}

func (s *SVG) Export(w io.Writer) error {
	return s.Render(w)
}

func (s *SVG) ContentType() string {
	return "image/svg+xml"
}

func (i *Image) Export(w io.Writer) error {
	return i.WritePNG(w)
}

func (i *Image) ContentType() string {
	return "image/png"
}
