package stats

import "math"

// Bin is one histogram bucket covering [Lower, Upper). The last bin of a
// histogram is closed on both ends.
type Bin struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
	Count int     `json:"count"`
}

// OptimalBinCount returns the Sturges bin count ceil(log2(n) + 1).
// Returns 0 for n <= 0.
func OptimalBinCount(n int) int {
	if n <= 0 {
		return 0
	}
	return int(math.Ceil(math.Log2(float64(n)) + 1))
}

// OptimalBinWidth returns the Freedman-Diaconis width 2*IQR*n^(-1/3).
// Returns 0 for an empty slice or when the IQR is 0.
func OptimalBinWidth(values []float64) float64 {
	n := len(values)
	if n == 0 {
		return 0
	}
	return 2 * InterquartileRange(values) * math.Pow(float64(n), -1.0/3)
}

// Histogram buckets the finite values into bins equal-width bins spanning
// [min, max]. A bins value <= 0 selects [OptimalBinCount]. Constant input
// produces a single zero-width bin holding every value. Returns nil when no
// finite values are given.
func Histogram(values []float64, bins int) []Bin {
	finite := make([]float64, 0, len(values))
	for _, v := range values {
		if isFinite(v) {
			finite = append(finite, v)
		}
	}
	if len(finite) == 0 {
		return nil
	}

	lo, hi := Min(finite), Max(finite)
	if lo == hi {
		return []Bin{{Lower: lo, Upper: hi, Count: len(finite)}}
	}
	if bins <= 0 {
		bins = OptimalBinCount(len(finite))
	}

	width := (hi - lo) / float64(bins)
	out := make([]Bin, bins)
	for i := range out {
		out[i].Lower = lo + float64(i)*width
		out[i].Upper = lo + float64(i+1)*width
	}
	out[bins-1].Upper = hi

	for _, v := range finite {
		idx := int((v - lo) / width)
		if idx >= bins {
			idx = bins - 1
		}
		out[idx].Count++
	}
	return out
}
