package stats

import (
	"errors"
	"math"
	"sort"
)

// ErrEmptySample is returned when statistics are requested over zero
// values; none of the summary figures are defined for an empty sample.
var ErrEmptySample = errors.New("empty sample")

// Summary holds descriptive statistics over one sample.
type Summary struct {
	Max    float64
	Min    float64
	Mean   float64
	Median float64
}

// Describe computes max, min, mean and median of values.
func Describe(values []float64) (Summary, error) {
	if len(values) == 0 {
		return Summary{}, ErrEmptySample
	}

	s := Summary{Max: values[0], Min: values[0], Median: Median(values)}
	sum := 0.0
	for _, v := range values {
		sum += v
		s.Max = math.Max(s.Max, v)
		s.Min = math.Min(s.Min, v)
	}
	s.Mean = sum / float64(len(values))
	return s, nil
}

// Median returns the order-statistic median: the middle element of the
// ascending-sorted sample, or the average of the two central elements
// when the count is even. The input slice is left untouched.
func Median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 != 0 {
		return sorted[mid]
	}
	return (sorted[mid] + sorted[mid-1]) / 2
}
