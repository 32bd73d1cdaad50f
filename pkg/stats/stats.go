// Package stats provides summary statistics over numeric sample sequences.
package stats

import "sort"

// Summary holds minimum, maximum, and median over a sample set. All fields
// are nil when the set was empty.
type Summary struct {
	Min    *float64 `json:"min"`
	Max    *float64 `json:"max"`
	Median *float64 `json:"median"`
}

// IsZero reports whether the summary carries no values.
func (s Summary) IsZero() bool {
	return s.Min == nil && s.Max == nil && s.Median == nil
}

// Reduce computes min, max, and median over samples. The input slice is not
// mutated. An empty input yields the zero Summary.
func Reduce(samples []float64) Summary {
	if len(samples) == 0 {
		return Summary{}
	}

	sorted := make([]float64, len(samples))
	copy(sorted, samples)
	sort.Float64s(sorted)

	minV := sorted[0]
	maxV := sorted[len(sorted)-1]

	var median float64
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		median = sorted[mid]
	} else {
		median = (sorted[mid-1] + sorted[mid]) / 2
	}

	return Summary{Min: &minV, Max: &maxV, Median: &median}
}

// Average returns the mean of the non-nil entries, or nil when there are none.
// Nil entries represent periods with no reported data and are discarded
// rather than counted as zero.
func Average(entries []*float64) *float64 {
	var sum float64
	var n int
	for _, e := range entries {
		if e == nil {
			continue
		}
		sum += *e
		n++
	}
	if n == 0 {
		return nil
	}
	avg := sum / float64(n)
	return &avg
}

// Ptr returns a pointer to v. Convenience for building nullable values.
func Ptr(v float64) *float64 {
	return &v
}
