package linechart

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdjustedLength(t *testing.T) {
	data := []struct {
		Len  int
		Want int
	}{
		{Len: 1, Want: 1},
		{Len: 2, Want: 2},
		{Len: 3, Want: 3},
		{Len: 13, Want: 13},
		{Len: 19, Want: 19},
		{Len: 20, Want: 20},
		{Len: 21, Want: 21},
		{Len: 22, Want: 22},
		{Len: 23, Want: 24},
		{Len: 25, Want: 25},
		{Len: 29, Want: 30},
		{Len: 49, Want: 49},
		{Len: 59, Want: 60},
		{Len: 97, Want: 98},
	}
	for _, d := range data {
		assert.Equal(t, d.Want, AdjustedLength(d.Len), "length %d", d.Len)
	}
}

func TestStatisticsAdjustedLength(t *testing.T) {
	values := make([]float64, 59)
	for i := range values {
		values[i] = float64(i + 1)
	}
	st, err := NewStatistics(values)
	require.NoError(t, err)
	assert.Equal(t, 60, st.AdjustedLength)
}

func TestIsPrime(t *testing.T) {
	primes := []int{2, 3, 5, 7, 11, 13, 23, 29, 59, 97}
	for _, n := range primes {
		assert.True(t, isPrime(n), "%d", n)
	}
	others := []int{-7, 0, 1, 4, 9, 15, 21, 25, 49, 91}
	for _, n := range others {
		assert.False(t, isPrime(n), "%d", n)
	}
}

func TestNewStatistics(t *testing.T) {
	st, err := NewStatistics([]float64{3, -2, 7, 4})
	require.NoError(t, err)
	assert.Equal(t, -2.0, st.Min)
	assert.Equal(t, 7.0, st.Max)
	assert.Equal(t, 9.0, st.Range)
	assert.Equal(t, 3.0, st.Average)
	assert.Equal(t, 4, st.AdjustedLength)

	st, err = NewStatistics([]float64{42})
	require.NoError(t, err)
	assert.Equal(t, 42.0, st.Min)
	assert.Equal(t, 42.0, st.Max)
	assert.Equal(t, 1.0, st.Range)
	assert.True(t, st.Degenerate())
}

func TestStatisticsProperties(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		values := make([]float64, 1+rnd.Intn(80))
		for j := range values {
			values[j] = float64(rnd.Intn(2000) - 1000)
		}
		st, err := NewStatistics(values)
		require.NoError(t, err)
		assert.LessOrEqual(t, st.Min, st.Average)
		assert.LessOrEqual(t, st.Average, st.Max)
		assert.GreaterOrEqual(t, st.Range, 1.0)
	}
}

func TestNewStatisticsInvalid(t *testing.T) {
	data := [][]float64{
		nil,
		{},
		{1, math.NaN()},
		{math.Inf(1), 2},
	}
	for _, values := range data {
		_, err := NewStatistics(values)
		assert.ErrorIs(t, err, ErrInvalidDataset)
	}
}

func TestStatisticsDomain(t *testing.T) {
	st, err := NewStatistics([]float64{5, 5, 5})
	require.NoError(t, err)
	assert.Equal(t, NewRange(0, 10), st.Domain())

	st, err = NewStatistics([]float64{-0.5, 0.5})
	require.NoError(t, err)
	assert.Equal(t, NewRange(-5, 5), st.Domain())
	assert.False(t, st.CrossesZero())

	st, err = NewStatistics([]float64{10, 30, 20})
	require.NoError(t, err)
	assert.Equal(t, NewRange(10, 30), st.Domain())
	assert.False(t, st.CrossesZero())

	st, err = NewStatistics([]float64{-10, 10})
	require.NoError(t, err)
	assert.True(t, st.CrossesZero())
}
