package linechart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMapper(t *testing.T, values []float64) Mapper {
	t.Helper()
	st, err := NewStatistics(values)
	require.NoError(t, err)
	m, err := NewSurfaceMetrics(400, 300)
	require.NoError(t, err)
	return NewMapper(values, st, m, YLabels)
}

func TestMapperPoints(t *testing.T) {
	values := []float64{0, 10, 20, 30, 40, 50, 60, 70, 80, 90, 100}
	m := testMapper(t, values)

	assert.Equal(t, 29.0, m.Spacing())
	assert.Equal(t, 10.0, m.Step())

	points := m.Points()
	require.Len(t, points, len(values))
	assert.Equal(t, NewPoint(40, 270), points[0])
	assert.Equal(t, NewPoint(185, 150), points[5])
	assert.Equal(t, NewPoint(330, 30), points[10])
}

func TestMapperRestartable(t *testing.T) {
	values := []float64{3, -7, 12.5, 8, 0, 41, -3}
	m := testMapper(t, values)

	first := m.Points()
	second := m.Points()
	assert.Equal(t, first, second)
	assert.Equal(t, first, testMapper(t, values).Points())

	first[0] = NewPoint(-1, -1)
	assert.NotEqual(t, first[0], m.Points()[0])
}

func TestMapperPointCount(t *testing.T) {
	for _, n := range []int{2, 20, 21, 23, 59} {
		values := make([]float64, n)
		for i := range values {
			values[i] = float64(i * i)
		}
		m := testMapper(t, values)
		assert.Len(t, m.Points(), n)
	}
}

func TestMapperPrimeSpacing(t *testing.T) {
	values := make([]float64, 23)
	for i := range values {
		values[i] = float64(i)
	}
	m := testMapper(t, values)
	assert.Equal(t, 13.0, m.Spacing())
	assert.Equal(t, 40.0+22*13, m.At(22).X)
}

func TestMapperDegenerate(t *testing.T) {
	m := testMapper(t, []float64{5, 5})
	assert.Equal(t, NewRange(0, 10), m.Domain())
	assert.Equal(t, 1.0, m.Step())

	points := m.Points()
	assert.Equal(t, NewPoint(40, 150), points[0])
	assert.Equal(t, NewPoint(200, 150), points[1])

	_, ok := m.ZeroLine()
	assert.False(t, ok)
}

func TestMapperZeroLine(t *testing.T) {
	m := testMapper(t, []float64{-10, 10})
	y, ok := m.ZeroLine()
	require.True(t, ok)
	assert.Equal(t, 150.0, y)

	for _, values := range [][]float64{{-0.5, 0.5}, {1, 2, 3}, {-3, -1}, {0, 10}} {
		_, ok := testMapper(t, values).ZeroLine()
		assert.False(t, ok, "%v", values)
	}
}

func TestMapperTicks(t *testing.T) {
	m := testMapper(t, []float64{0, 100})

	ticks := m.Ticks()
	require.Len(t, ticks, YLabels+1)
	assert.Equal(t, Tick{Value: 0, Y: 270}, ticks[0])
	assert.Equal(t, Tick{Value: 50, Y: 150}, ticks[5])
	assert.Equal(t, Tick{Value: 100, Y: 30}, ticks[10])
	assert.Equal(t, "100", ticks[10].Text())

	m = testMapper(t, []float64{2.5, 2.5})
	ticks = m.Ticks()
	assert.Equal(t, "-3", ticks[0].Text())
	assert.Equal(t, "7", ticks[10].Text())
}
