package linechart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sized struct {
	Renderer
	width  float64
	height float64
}

func (s sized) Size() (float64, float64) {
	return s.width, s.height
}

func TestNewContext(t *testing.T) {
	var (
		values = []float64{1, 5, 3}
		r      = sized{width: 400, height: 300}
	)
	ctx, err := NewContext(r, values, DefaultSettings())
	require.NoError(t, err)
	assert.Equal(t, 320.0, ctx.Metrics.RenderWidth)
	assert.Equal(t, 5.0, ctx.Stats.Max)
	assert.Equal(t, YLabels, ctx.YLabels)

	values[0] = 100
	assert.Equal(t, []float64{1, 5, 3}, ctx.Dataset)
	assert.Equal(t, 1.0, ctx.Mapper().Domain().Min())
	assert.Equal(t, []int{0, 1, 2}, ctx.Labels().Indices)
}

func TestNewContextInvalid(t *testing.T) {
	r := sized{width: 400, height: 300}

	_, err := NewContext(nil, []float64{1, 2}, DefaultSettings())
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = NewContext(r, []float64{1}, DefaultSettings())
	assert.ErrorIs(t, err, ErrInvalidDataset)

	settings := DefaultSettings()
	settings.MaxXLabels = MaxXLabelsLimit + 1
	_, err = NewContext(r, []float64{1, 2}, settings)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = NewContext(sized{width: 0, height: 300}, []float64{1, 2}, DefaultSettings())
	assert.ErrorIs(t, err, ErrInvalidSurface)
}
