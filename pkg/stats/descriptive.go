package stats

import (
	"math"
	"slices"

	mstats "github.com/aclements/go-moremath/stats"
)

// Sum returns the sum of values, or 0 for an empty slice.
func Sum(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum
}

// Min returns the smallest value, or 0 for an empty slice.
func Min(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return slices.Min(values)
}

// Max returns the largest value, or 0 for an empty slice.
func Max(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return slices.Max(values)
}

// Range returns Max(values) - Min(values), or 0 for an empty slice.
func Range(values []float64) float64 {
	return Max(values) - Min(values)
}

// Mean returns the arithmetic mean of values.
// Returns 0 for an empty slice.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return mstats.Mean(values)
}

// GeometricMean returns the geometric mean of values.
// Returns 0 for an empty slice or when any value is not strictly positive.
func GeometricMean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	for _, v := range values {
		if v <= 0 {
			return 0
		}
	}
	return mstats.GeoMean(values)
}

// Median returns the middle value of values. For an even count it is the
// average of the two middle elements. Returns 0 for an empty slice.
func Median(values []float64) float64 {
	n := len(values)
	if n == 0 {
		return 0
	}
	sorted := sortedCopy(values)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// Mode returns the most frequent value after rounding every value to
// precision decimal places. Values are grouped by their rounded value.
//
// Ties are broken by first occurrence: among rounded values sharing the
// highest count, the one that appears first in values wins. NaN values are
// ignored. Returns 0 for an empty slice.
func Mode(values []float64, precision int) float64 {
	if precision < 0 {
		precision = 0
	}
	factor := math.Pow(10, float64(precision))

	counts := make(map[float64]int, len(values))
	order := make([]float64, 0, len(values))
	for _, v := range values {
		if math.IsNaN(v) {
			continue
		}
		r := math.Round(v*factor) / factor
		if _, seen := counts[r]; !seen {
			order = append(order, r)
		}
		counts[r]++
	}

	var mode float64
	best := 0
	for _, r := range order {
		if counts[r] > best {
			mode, best = r, counts[r]
		}
	}
	return mode
}

// Variance returns the sample variance of values (divisor n-1).
// Returns 0 when there are fewer than two values.
func Variance(values []float64) float64 {
	if len(values) <= 1 {
		return 0
	}
	return mstats.Variance(values)
}

// PopulationVariance returns the population variance of values (divisor n).
// Returns 0 for an empty slice.
func PopulationVariance(values []float64) float64 {
	n := len(values)
	if n <= 1 {
		return 0
	}
	return mstats.Variance(values) * float64(n-1) / float64(n)
}

// StdDev returns the sample standard deviation of values.
// Returns 0 when there are fewer than two values.
func StdDev(values []float64) float64 {
	return math.Sqrt(Variance(values))
}

// PopulationStdDev returns the population standard deviation of values.
func PopulationStdDev(values []float64) float64 {
	return math.Sqrt(PopulationVariance(values))
}

// Skewness returns the adjusted Fisher-Pearson sample skewness (G1).
// Returns 0 when there are fewer than three values or the values are constant.
func Skewness(values []float64) float64 {
	n := float64(len(values))
	if n < 3 {
		return 0
	}
	m2, m3, _ := centralMoments(values)
	if m2 == 0 {
		return 0
	}
	g1 := m3 / math.Pow(m2, 1.5)
	return g1 * math.Sqrt(n*(n-1)) / (n - 2)
}

// Kurtosis returns the sample excess kurtosis (G2) with small-sample bias
// correction. Returns 0 when there are fewer than four values or the values
// are constant.
func Kurtosis(values []float64) float64 {
	n := float64(len(values))
	if n < 4 {
		return 0
	}
	m2, _, m4 := centralMoments(values)
	if m2 == 0 {
		return 0
	}
	g2 := m4/(m2*m2) - 3
	return ((n+1)*g2 + 6) * (n - 1) / ((n - 2) * (n - 3))
}

// centralMoments returns the second, third and fourth central moments
// (population form, divisor n).
func centralMoments(values []float64) (m2, m3, m4 float64) {
	mean := Mean(values)
	for _, v := range values {
		d := v - mean
		d2 := d * d
		m2 += d2
		m3 += d2 * d
		m4 += d2 * d2
	}
	n := float64(len(values))
	return m2 / n, m3 / n, m4 / n
}

func sortedCopy(values []float64) []float64 {
	sorted := slices.Clone(values)
	slices.Sort(sorted)
	return sorted
}
