package pipeline

import (
	"github.com/matzehuels/chartcore/pkg/chart"
	"github.com/matzehuels/chartcore/pkg/stats"
)

// computeStats handles the statistical kinds. Degenerate series produce
// neutral values, never errors.
func computeStats(ds *chart.Dataset, opts *Options) (*chart.Layout, error) {
	l := &chart.Layout{Kind: ds.Kind}
	values := ds.Values

	switch ds.Kind {
	case chart.KindStats:
		summary := stats.Summarize(values)
		if len(values) > 0 {
			summary.Mode = stats.Mode(values, *opts.ModePrecision)
			l.Ticks = stats.NiceTickValues(summary.Min, summary.Max, opts.TickCount)
		}
		l.Summary = &summary
		if len(ds.XY) >= 2 {
			xs, ys := ds.Xs(), ds.Ys()
			reg := stats.LinearRegression(xs, ys)
			r := stats.Correlation(xs, ys)
			l.Regression = &reg
			l.Correlation = &r
		}

	case chart.KindDensity:
		bw := opts.Bandwidth
		if bw <= 0 {
			bw = stats.SilvermanBandwidth(values)
		}
		l.Bandwidth = bw
		l.Density = stats.KernelDensityEstimateN(values, bw, opts.DensitySamples)

	case chart.KindHistogram:
		// Zero bins selects Sturges' rule.
		l.Bins = stats.Histogram(values, opts.Bins)
	}
	return l, nil
}
