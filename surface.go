package linechart

import (
	"math"
)

// MarginRatio is the share of each dimension kept free on both sides of the
// render area.
const MarginRatio = 1.0 / marginDivisor

const marginDivisor = 10

type SurfaceMetrics struct {
	Width        float64
	Height       float64
	MarginX      float64
	MarginY      float64
	RenderWidth  float64
	RenderHeight float64
}

// NewSurfaceMetrics computes margins and render area from the displayed size
// of a surface. Both dimensions must be positive integers.
func NewSurfaceMetrics(width, height float64) (SurfaceMetrics, error) {
	var m SurfaceMetrics
	if !isPixelSize(width) || !isPixelSize(height) {
		return m, surfaceError("surface has no measurable size (%gx%g)", width, height)
	}
	m.Width = width
	m.Height = height
	m.MarginX = width / marginDivisor
	m.MarginY = height / marginDivisor
	m.RenderWidth = width - m.MarginX*2
	m.RenderHeight = height - m.MarginY*2
	return m, nil
}

func isPixelSize(f float64) bool {
	return f > 0 && !math.IsInf(f, 0) && f == math.Trunc(f)
}

// Left is the x coordinate of the y axis.
func (m SurfaceMetrics) Left() float64 {
	return m.MarginX
}

// Right is the x coordinate where the render area ends.
func (m SurfaceMetrics) Right() float64 {
	return m.MarginX + m.RenderWidth
}

// Top is the y coordinate where the render area starts.
func (m SurfaceMetrics) Top() float64 {
	return m.MarginY
}

// Bottom is the y coordinate of the x axis.
func (m SurfaceMetrics) Bottom() float64 {
	return m.MarginY + m.RenderHeight
}
