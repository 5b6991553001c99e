package linechart

import (
	"math"
)

type Range struct {
	F float64
	T float64
}

func NewRange(f, t float64) Range {
	return Range{
		F: f,
		T: t,
	}
}

func (r Range) Len() float64 {
	return r.T - r.F
}

func (r Range) Max() float64 {
	return r.T
}

func (r Range) Min() float64 {
	return r.F
}

// Mapper converts dataset indices and values into pixel coordinates inside
// the render area of a surface.
//
// Horizontal spacing is derived from the adjusted length of the dataset and
// vertical positions from the (possibly substituted) domain, split in steps
// of ceil(range/ticks) values per ceil(height/ticks) pixels.
type Mapper struct {
	metrics SurfaceMetrics
	values  []float64
	domain  Range
	zero    bool
	ticks   int

	spacing     float64
	yRangeScale float64
	yAreaScale  float64
}

func NewMapper(values []float64, st Statistics, metrics SurfaceMetrics, ticks int) Mapper {
	if ticks <= 0 {
		ticks = YLabels
	}
	m := Mapper{
		metrics: metrics,
		values:  values,
		domain:  st.Domain(),
		zero:    st.CrossesZero(),
		ticks:   ticks,
	}
	if n := st.AdjustedLength; n > 0 {
		m.spacing = math.Floor(metrics.RenderWidth / float64(n))
	}
	m.yRangeScale = math.Ceil(m.domain.Len() / float64(ticks))
	m.yAreaScale = math.Ceil(metrics.RenderHeight / float64(ticks))
	return m
}

// Len returns the number of points produced by the mapper.
func (m Mapper) Len() int {
	return len(m.values)
}

// Spacing returns the horizontal distance in pixels between two points.
func (m Mapper) Spacing() float64 {
	return m.spacing
}

// Domain returns the value range the render area covers.
func (m Mapper) Domain() Range {
	return m.domain
}

// Step returns the value increment between two y ticks.
func (m Mapper) Step() float64 {
	return m.yRangeScale
}

func (m Mapper) ScaleX(i int) float64 {
	return math.Floor(m.metrics.Left() + float64(i)*m.spacing)
}

func (m Mapper) ScaleY(v float64) float64 {
	diff := (v - m.domain.Min()) / m.yRangeScale
	return math.Floor(m.metrics.Bottom() - diff*m.yAreaScale)
}

func (m Mapper) Scale(i int, v float64) Point {
	return NewPoint(m.ScaleX(i), m.ScaleY(v))
}

// At returns the coordinates of the i-th value of the dataset.
func (m Mapper) At(i int) Point {
	return m.Scale(i, m.values[i])
}

// Points computes the coordinates of every value of the dataset, in order.
// Each call starts from scratch so that several drawing steps can walk the
// same sequence independently.
func (m Mapper) Points() []Point {
	list := make([]Point, len(m.values))
	for i := range m.values {
		list[i] = m.At(i)
	}
	return list
}

// ZeroLine returns the vertical position of the zero line and whether it
// should be drawn at all.
func (m Mapper) ZeroLine() (float64, bool) {
	if !m.zero {
		return 0, false
	}
	return m.ScaleY(0), true
}
