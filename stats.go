package linechart

import (
	"math"
)

// primeThreshold is the dataset length above which prime lengths get an
// extra virtual slot.
const primeThreshold = 20

// Statistics describes a dataset. Range is never below 1.
type Statistics struct {
	Min            float64
	Max            float64
	Range          float64
	Average        float64
	AdjustedLength int
}

func NewStatistics(values []float64) (Statistics, error) {
	var st Statistics
	if err := checkDataset(values, 1); err != nil {
		return st, err
	}
	var sum float64
	st.Min, st.Max = values[0], values[0]
	for _, v := range values {
		st.Min = math.Min(st.Min, v)
		st.Max = math.Max(st.Max, v)
		sum += v
	}
	st.Range = math.Max(st.Max-st.Min, 1)
	st.Average = sum / float64(len(values))
	st.AdjustedLength = AdjustedLength(len(values))
	return st, nil
}

// Degenerate reports whether the spread of the dataset is too small to be
// plotted with its own minimum and range.
func (s Statistics) Degenerate() bool {
	return s.Range < 2
}

// Domain returns the minimum and range used to position values vertically.
// Degenerate datasets get a fixed spread of 10 around their average.
func (s Statistics) Domain() Range {
	if s.Degenerate() {
		lo := math.Floor(s.Average) - 5
		return NewRange(lo, lo+10)
	}
	return NewRange(s.Min, s.Min+s.Range)
}

// CrossesZero reports whether a zero line belongs in the graph: the raw
// values must straddle zero and the dataset must not be degenerate.
func (s Statistics) CrossesZero() bool {
	return s.Min < 0 && s.Max > 0 && s.Max-s.Min >= 2
}

// AdjustedLength returns the number of horizontal slots used for a dataset
// of n values. Prime lengths above 20 get one more slot so the label
// halving scheme keeps the rightmost point clear.
func AdjustedLength(n int) int {
	if n > primeThreshold && isPrime(n) {
		return n + 1
	}
	return n
}

func isPrime(n int) bool {
	if n == 2 || n == 3 {
		return true
	}
	if n < 2 || n%2 == 0 {
		return false
	}
	for i := 3; i*i <= n; i += 2 {
		if n%i == 0 {
			return false
		}
	}
	return true
}
