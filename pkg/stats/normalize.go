package stats

import "math"

// Normalize rescales values to [0, 1] by min-max scaling.
// All-equal input maps every element to 0.5.
func Normalize(values []float64) []float64 {
	return NormalizeToRange(values, 0, 1)
}

// NormalizeToRange rescales values linearly so that the minimum maps to lo
// and the maximum maps to hi. All-equal input maps every element to the
// midpoint (lo+hi)/2. Returns an empty slice for empty input.
func NormalizeToRange(values []float64, lo, hi float64) []float64 {
	out := make([]float64, len(values))
	if len(values) == 0 {
		return out
	}

	vmin, vmax := Min(values), Max(values)
	if vmax == vmin {
		mid := (lo + hi) / 2
		for i := range out {
			out[i] = mid
		}
		return out
	}

	scale := (hi - lo) / (vmax - vmin)
	for i, v := range values {
		out[i] = lo + (v-vmin)*scale
	}
	return out
}

// ZScoreNormalize returns (x - mean) / stddev for each value, using the
// sample standard deviation. Returns a zero vector when stddev is 0.
func ZScoreNormalize(values []float64) []float64 {
	out := make([]float64, len(values))
	sd := StdDev(values)
	if sd == 0 {
		return out
	}
	mean := Mean(values)
	for i, v := range values {
		out[i] = (v - mean) / sd
	}
	return out
}

// SimpleMovingAverage returns the mean of each full window of the given size,
// sliding one element at a time. The result has len(values)-window+1
// elements, or is empty when window <= 0 or window > len(values).
func SimpleMovingAverage(values []float64, window int) []float64 {
	if window <= 0 || window > len(values) {
		return []float64{}
	}

	out := make([]float64, 0, len(values)-window+1)
	var sum float64
	for i, v := range values {
		sum += v
		if i >= window {
			sum -= values[i-window]
		}
		if i >= window-1 {
			out = append(out, sum/float64(window))
		}
	}
	return out
}

// ExponentialMovingAverage applies exponential smoothing with factor alpha:
// ema[0] = x[0], ema[i] = alpha*x[i] + (1-alpha)*ema[i-1].
//
// Alpha above 1 is clamped to 1 (no smoothing). Alpha <= 0 or NaN yields an
// empty result.
func ExponentialMovingAverage(values []float64, alpha float64) []float64 {
	if math.IsNaN(alpha) || alpha <= 0 || len(values) == 0 {
		return []float64{}
	}
	alpha = min(alpha, 1)

	out := make([]float64, len(values))
	out[0] = values[0]
	for i := 1; i < len(values); i++ {
		out[i] = alpha*values[i] + (1-alpha)*out[i-1]
	}
	return out
}

// SmoothingFactor returns the conventional EMA factor 2/(period+1).
// Periods below 1 return 1.
func SmoothingFactor(period int) float64 {
	if period < 1 {
		return 1
	}
	return 2 / float64(period+1)
}
