package stats

import "math"

// Percentile returns the p-th percentile of values using linear interpolation.
//
// Values are sorted ascending (on a copy) and the result is read at index
// p/100*(n-1), interpolating between the floor and ceil indices. p is clamped
// to [0, 100]. Returns 0 for an empty slice.
func Percentile(values []float64, p float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return percentileSorted(sortedCopy(values), p)
}

func percentileSorted(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	switch {
	case math.IsNaN(p) || p <= 0:
		return sorted[0]
	case p >= 100:
		return sorted[n-1]
	}

	idx := p / 100 * float64(n-1)
	lower := int(math.Floor(idx))
	upper := int(math.Ceil(idx))
	if lower == upper {
		return sorted[lower]
	}
	frac := idx - float64(lower)
	return sorted[lower]*(1-frac) + sorted[upper]*frac
}

// Quartiles returns the 25th, 50th and 75th percentiles of values.
// All three are 0 for an empty slice.
func Quartiles(values []float64) (q1, median, q3 float64) {
	if len(values) == 0 {
		return 0, 0, 0
	}
	sorted := sortedCopy(values)
	return percentileSorted(sorted, 25), percentileSorted(sorted, 50), percentileSorted(sorted, 75)
}

// InterquartileRange returns q3 - q1.
func InterquartileRange(values []float64) float64 {
	q1, _, q3 := Quartiles(values)
	return q3 - q1
}
