package stats

import "math"

// MaxTickCount caps the count accepted by [NiceTickValues].
const MaxTickCount = 1000

// NiceTickValues returns evenly spaced, human-friendly axis ticks covering
// [min, max] with roughly count ticks.
//
// The raw step (max-min)/(count-1) is snapped to 1, 2, 5 or 10 times its
// order of magnitude, and ticks run from floor(min/step)*step to
// ceil(max/step)*step inclusive. A count below 2 is treated as 2 and a
// count above [MaxTickCount] as MaxTickCount. Swapped bounds are reordered,
// and equal bounds return the single value. Non-finite bounds return nil.
// When the range or the snapped end points overflow float64, the bounds
// themselves are returned as the only ticks.
func NiceTickValues(min, max float64, count int) []float64 {
	if !isFinite(min) || !isFinite(max) {
		return nil
	}
	if min > max {
		min, max = max, min
	}
	if min == max {
		return []float64{min}
	}
	count = minInt(maxInt(count, 2), MaxTickCount)

	step := NiceStep((max - min) / float64(count-1))
	if step <= 0 {
		return []float64{min, max}
	}
	start := math.Floor(min/step) * step
	end := math.Ceil(max/step) * step
	if !isFinite(start) || !isFinite(end) || !isFinite(end-start) {
		return []float64{min, max}
	}
	n := int(math.Round((end - start) / step))
	// Snapping adds at most one step at each end.
	n = minInt(n, count+2)

	ticks := make([]float64, 0, n+1)
	for i := 0; i <= n; i++ {
		ticks = append(ticks, roundToStep(start+float64(i)*step, step))
	}
	return ticks
}

// NiceStep snaps a raw step to 1, 2, 5 or 10 times its order of magnitude.
// Non-positive steps return 0.
func NiceStep(raw float64) float64 {
	if raw <= 0 || !isFinite(raw) {
		return 0
	}
	magnitude := math.Pow(10, math.Floor(math.Log10(raw)))
	var nice float64
	switch normalized := raw / magnitude; {
	case normalized <= 1:
		nice = 1
	case normalized <= 2:
		nice = 2
	case normalized <= 5:
		nice = 5
	default:
		nice = 10
	}
	return nice * magnitude
}

// roundToStep strips floating point drift from a tick at the precision of step.
func roundToStep(v, step float64) float64 {
	decimals := math.Max(0, -math.Floor(math.Log10(step)))
	p := math.Pow(10, decimals)
	r := math.Round(v*p) / p
	if r == 0 {
		return 0 // normalize -0
	}
	return r
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
