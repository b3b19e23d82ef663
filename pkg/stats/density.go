package stats

import (
	"math"

	mstats "github.com/aclements/go-moremath/stats"
	"github.com/aclements/go-moremath/vec"
)

// DefaultDensitySamples is the number of grid points used by
// [KernelDensityEstimate].
const DefaultDensitySamples = 100

// densityWiden is how many bandwidths the evaluation grid extends past the
// data on each side.
const densityWiden = 3

// DensityPoint is one sample of an estimated probability density curve.
type DensityPoint struct {
	Value   float64 `json:"value"`
	Density float64 `json:"density"`
}

// SilvermanBandwidth returns Silverman's rule-of-thumb bandwidth
// 0.9 * min(std, IQR/1.34) * n^(-1/5). When the IQR is 0 the standard
// deviation alone is used. Returns 0 when no positive spread exists.
func SilvermanBandwidth(values []float64) float64 {
	n := len(values)
	if n < 2 {
		return 0
	}
	spread := StdDev(values)
	if iqr := InterquartileRange(values) / 1.34; iqr > 0 && iqr < spread {
		spread = iqr
	}
	if spread <= 0 {
		return 0
	}
	return 0.9 * spread * math.Pow(float64(n), -0.2)
}

// KernelDensityEstimate evaluates a Gaussian KDE of values on
// [DefaultDensitySamples] evenly spaced points. See [KernelDensityEstimateN].
func KernelDensityEstimate(values []float64, bandwidth float64) []DensityPoint {
	return KernelDensityEstimateN(values, bandwidth, DefaultDensitySamples)
}

// KernelDensityEstimateN evaluates a Gaussian KDE of values on samples evenly
// spaced points spanning [min-3h, max+3h].
//
// A bandwidth <= 0 selects [SilvermanBandwidth]. Non-finite values are
// dropped. If no positive bandwidth can be determined (empty input, a single
// value, or constant values without an explicit bandwidth) the result is
// empty. Fewer than 2 samples selects [DefaultDensitySamples].
func KernelDensityEstimateN(values []float64, bandwidth float64, samples int) []DensityPoint {
	finite := make([]float64, 0, len(values))
	for _, v := range values {
		if isFinite(v) {
			finite = append(finite, v)
		}
	}
	if len(finite) == 0 {
		return []DensityPoint{}
	}
	if math.IsNaN(bandwidth) || bandwidth <= 0 {
		bandwidth = SilvermanBandwidth(finite)
	}
	if bandwidth <= 0 || math.IsInf(bandwidth, 0) {
		return []DensityPoint{}
	}
	if samples < 2 {
		samples = DefaultDensitySamples
	}

	kde := mstats.KDE{
		Sample:    mstats.Sample{Xs: finite},
		Kernel:    mstats.GaussianKernel,
		Bandwidth: bandwidth,
	}
	lo := Min(finite) - densityWiden*bandwidth
	hi := Max(finite) + densityWiden*bandwidth

	xs := vec.Linspace(lo, hi, samples)
	ys := vec.Map(kde.PDF, xs)

	curve := make([]DensityPoint, len(xs))
	for i := range xs {
		curve[i] = DensityPoint{Value: xs[i], Density: ys[i]}
	}
	return curve
}
