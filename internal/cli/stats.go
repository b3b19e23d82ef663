package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/chartcore/pkg/chart"
	"github.com/matzehuels/chartcore/pkg/errors"
	"github.com/matzehuels/chartcore/pkg/pipeline"
)

// statsCommand prints descriptive statistics for a dataset's values.
func (c *CLI) statsCommand() *cobra.Command {
	var noCache bool
	flags := pipeline.Options{ModePrecision: new(int)}

	cmd := &cobra.Command{
		Use:   "stats [dataset.json|dataset.toml]",
		Short: "Print summary statistics of a dataset",
		Long: `Print summary statistics of a dataset.

Statistical datasets (stats, density, histogram) are summarized from their
values. Pie datasets are summarized from their point values and scatter
datasets from their y coordinates, with the x/y regression included.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(c.configPath)
			if err != nil {
				return err
			}
			opts := cfg.Compute
			overrideOptions(cmd.Flags(), &opts, flags)
			return c.runStats(cmd.Context(), cfg, args[0], opts, noCache)
		},
	}

	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().IntVar(flags.ModePrecision, "mode-precision", 0, "decimal places used to group values for the mode (default 2)")
	cmd.Flags().IntVar(&flags.TickCount, "ticks", pipeline.DefaultTickCount, "approximate axis tick count")

	return cmd
}

func (c *CLI) runStats(ctx context.Context, cfg *Config, input string, opts pipeline.Options, noCache bool) error {
	ds, err := chart.ReadDatasetFile(input)
	if err != nil {
		return err
	}
	statsDS, err := statsDataset(ds)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(ctx, cfg, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	result, err := runner.Compute(ctx, statsDS, opts)
	if err != nil {
		return err
	}
	printSummary(result.Layout)
	return nil
}

// statsDataset derives a stats dataset from any kind that carries a series
// of numbers.
func statsDataset(ds *chart.Dataset) (*chart.Dataset, error) {
	out := &chart.Dataset{Kind: chart.KindStats, Title: ds.Title}
	switch ds.Kind {
	case chart.KindStats, chart.KindDensity, chart.KindHistogram:
		out.Values = ds.Values
		out.XY = ds.XY
	case chart.KindPie:
		for _, p := range ds.Points {
			out.Values = append(out.Values, p.Value)
		}
	case chart.KindScatter:
		out.Values = ds.Ys()
		out.XY = ds.XY
	default:
		return nil, errors.New(errors.ErrCodeUnsupported, "%s datasets have no numeric series to summarize", ds.Kind)
	}
	return out, nil
}

func printSummary(l *chart.Layout) {
	if l.Title != "" {
		printTitle(l.Title)
	}
	s := l.Summary
	if s == nil || s.Count == 0 {
		printInfo("No values")
		return
	}
	printKeyValue("count", fmt.Sprintf("%d", s.Count))
	rows := []struct {
		key string
		v   float64
	}{
		{"sum", s.Sum},
		{"min", s.Min},
		{"max", s.Max},
		{"mean", s.Mean},
		{"median", s.Median},
		{"mode", s.Mode},
		{"variance", s.Variance},
		{"std dev", s.StdDev},
		{"q1", s.Q1},
		{"q3", s.Q3},
		{"iqr", s.IQR},
		{"skewness", s.Skewness},
		{"kurtosis", s.Kurtosis},
	}
	for _, r := range rows {
		printNumber(r.key, r.v)
	}
	if len(l.Ticks) > 0 {
		ticks := make([]string, len(l.Ticks))
		for i, t := range l.Ticks {
			ticks[i] = formatNumber(t)
		}
		printKeyValue("ticks", strings.Join(ticks, " "))
	}
	if l.Regression != nil {
		printNewline()
		printKeyValue("regression", fmt.Sprintf("y = %s·x + %s", formatNumber(l.Regression.Slope), formatNumber(l.Regression.Intercept)))
		printNumber("r²", l.Regression.RSquared)
	}
	if l.Correlation != nil {
		printNumber("correlation", *l.Correlation)
	}
}
