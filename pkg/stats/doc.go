// Package stats provides the descriptive statistics, regression, normalization,
// smoothing, tick generation and density estimation used by chartcore layouts.
//
// # Overview
//
// Every function in this package is a pure function of its arguments. Inputs
// are never modified (sorting happens on a copy) and no state is kept between
// calls, so all functions are safe for concurrent use.
//
// # Degenerate Input
//
// Empty or degenerate input never panics and never returns an error. Each
// function documents its neutral value:
//
//   - Scalars ([Mean], [Median], [Percentile], [Variance], ...) return 0
//   - [Normalize] and [NormalizeToRange] map all-equal input to the midpoint
//   - [ZScoreNormalize] returns a zero vector when the deviation is 0
//   - [KernelDensityEstimate] returns an empty curve when no bandwidth exists
//
// # Variance Convention
//
// [Variance] and [StdDev] use the sample divisor (n-1). Use
// [PopulationVariance] and [PopulationStdDev] for the population divisor (n).
//
// # Percentiles
//
// [Percentile] sorts ascending and interpolates linearly at index
// p/100*(n-1), so Percentile(v, 0) is the minimum, Percentile(v, 100) is the
// maximum, and the result is non-decreasing in p. [Quartiles] and
// [InterquartileRange] are built on it.
//
// # Density Estimation
//
// [KernelDensityEstimate] evaluates a Gaussian kernel density estimate on an
// evenly spaced grid across [min-3h, max+3h]. When no bandwidth is given,
// [SilvermanBandwidth] picks h = 0.9*min(std, IQR/1.34)*n^(-1/5).
//
// # Example
//
//	q1, med, q3 := stats.Quartiles([]float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10})
//	// q1 = 3.25, med = 5.5, q3 = 7.75
//
//	r := stats.LinearRegression(xs, ys)
//	fmt.Println(r.Slope, r.Intercept, r.RSquared)
package stats
