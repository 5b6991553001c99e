package linechart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultAxisTitles(t *testing.T) {
	a := DefaultAxisTitles()
	assert.Equal(t, "Index", a.XAxis())
	assert.Equal(t, "Values", a.YAxis())
}

func TestMergeTitles(t *testing.T) {
	curr := NewAxisTitles("x", "y")

	next, err := mergeTitles(curr, Fields{XAxis: "x2"})
	require.NoError(t, err)
	assert.Equal(t, NewAxisTitles("x2", "y"), next)
	assert.Equal(t, "x", curr.XAxis())

	next, err = mergeTitles(next, map[string]string{YAxis: "y2"})
	require.NoError(t, err)
	assert.Equal(t, NewAxisTitles("x2", "y2"), next)

	next, err = mergeTitles(next, Fields{XAxis: "", YAxis: "Load"})
	require.NoError(t, err)
	assert.Equal(t, NewAxisTitles("", "Load"), next)
}

func TestMergeTitlesInvalid(t *testing.T) {
	data := []struct {
		Name string
		Req  any
	}{
		{Name: "not an object", Req: "x"},
		{Name: "nil", Req: nil},
		{Name: "empty", Req: Fields{}},
		{Name: "not a string", Req: Fields{XAxis: 42}},
		{Name: "one invalid", Req: Fields{XAxis: "ok", YAxis: []string{"y"}}},
		{Name: "unknown field", Req: Fields{"zAxis": "z"}},
	}
	curr := DefaultAxisTitles()
	for _, d := range data {
		t.Run(d.Name, func(t *testing.T) {
			next, err := mergeTitles(curr, d.Req)
			assert.ErrorIs(t, err, ErrInvalidArgument)
			assert.Equal(t, curr, next)
		})
	}
}
