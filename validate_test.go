package linechart

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindIs(t *testing.T) {
	data := []struct {
		Kind  Kind
		Value any
		Want  bool
	}{
		{Kind: KindString, Value: "", Want: true},
		{Kind: KindString, Value: 1, Want: false},
		{Kind: KindNumber, Value: 1, Want: true},
		{Kind: KindNumber, Value: -1.5, Want: true},
		{Kind: KindNumber, Value: uint16(3), Want: true},
		{Kind: KindNumber, Value: math.NaN(), Want: false},
		{Kind: KindNumber, Value: "1", Want: false},
		{Kind: KindPositive, Value: 0, Want: true},
		{Kind: KindPositive, Value: -0.1, Want: false},
		{Kind: KindObject, Value: Fields{}, Want: true},
		{Kind: KindObject, Value: map[string]string{}, Want: true},
		{Kind: KindObject, Value: []any{}, Want: false},
		{Kind: KindArray, Value: []any{}, Want: true},
		{Kind: KindArray, Value: []Fields{}, Want: true},
		{Kind: KindArray, Value: Fields{}, Want: false},
	}
	for _, d := range data {
		assert.Equal(t, d.Want, d.Kind.Is(d.Value), "%s: %#v", d.Kind, d.Value)
	}
}

func TestShapeCheck(t *testing.T) {
	s := shape{
		Allowed:  []string{"a", "b", "c"},
		Required: true,
	}
	unexpected, missing := s.check(Fields{"a": 1, "z": 2, "y": 3})
	assert.Equal(t, []string{"y", "z"}, unexpected)
	assert.Equal(t, []string{"b", "c"}, missing)

	s.Required = false
	unexpected, missing = s.check(Fields{"b": 1})
	assert.Empty(t, unexpected)
	assert.Empty(t, missing)
}

func TestExpect(t *testing.T) {
	fs := Fields{"a": "x", "b": 2, "c": "3"}
	assert.NoError(t, expect(fs, KindString, "a", "missing"))
	err := expect(fs, KindNumber, "a", "b", "c")
	require.ErrorIs(t, err, ErrInvalidArgument)
	assert.Equal(t, []string{"a", "c"}, err.(ArgumentError).Fields)
}

func TestDatasetFrom(t *testing.T) {
	values, err := DatasetFrom([]any{1.5, 2, int64(-3)})
	require.NoError(t, err)
	assert.Equal(t, []float64{1.5, 2, -3}, values)

	values, err = DatasetFrom([]int{4, 5})
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 5}, values)

	src := []float64{1, 2}
	values, err = DatasetFrom(src)
	require.NoError(t, err)
	values[0] = 10
	assert.Equal(t, 1.0, src[0])

	invalid := []any{
		nil,
		"1,2,3",
		[]any{},
		[]any{1, "2"},
		[]any{1, nil},
		[]float64{1, math.Inf(-1)},
		[]float64(nil),
	}
	for _, v := range invalid {
		_, err := DatasetFrom(v)
		assert.ErrorIs(t, err, ErrInvalidDataset, "%#v", v)
	}
}
