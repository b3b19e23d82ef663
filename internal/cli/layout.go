package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/matzehuels/chartcore/pkg/chart"
	"github.com/matzehuels/chartcore/pkg/pipeline"
)

// layoutCommand creates the layout command for computing chart geometry.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		output  string
		noCache bool
		refresh bool
		quiet   bool
	)
	flags := pipeline.Options{ModePrecision: new(int)}

	cmd := &cobra.Command{
		Use:   "layout [dataset.json|dataset.toml]",
		Short: "Compute a chart layout from a dataset",
		Long: `Compute a chart layout from a dataset.

The dataset's kind selects the algorithm: squarified treemap, sunburst,
pie, gauge, chord diagram, sankey, word cloud, scatter clustering, or one
of the statistical kinds (stats, density, histogram). The result is written
as JSON to <input>.layout.json unless -o is given.

Flags override values from the [compute] table of the config file.
Results are cached; use --refresh to recompute or --no-cache to bypass.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(c.configPath)
			if err != nil {
				return err
			}
			opts := cfg.Compute
			overrideOptions(cmd.Flags(), &opts, flags)
			opts.Refresh = refresh
			return c.runLayout(cmd.Context(), cfg, args[0], opts, output, noCache, quiet)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.layout.json, - for stdout)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "recompute even when a cached result exists")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "suppress the progress spinner")

	cmd.Flags().Float64Var(&flags.Width, "width", pipeline.DefaultWidth, "canvas width")
	cmd.Flags().Float64Var(&flags.Height, "height", pipeline.DefaultHeight, "canvas height")
	cmd.Flags().IntVar(&flags.MaxDepth, "max-depth", pipeline.DefaultMaxDepth, "hierarchy levels to lay out (treemap, sunburst)")
	cmd.Flags().BoolVar(&flags.Sort, "sort", false, "sort siblings by descending value (treemap)")
	cmd.Flags().Float64Var(&flags.Padding, "padding", 0, "spacing between nested rectangles (treemap)")
	cmd.Flags().Float64Var(&flags.PadAngle, "pad-angle", 0, "gap between segments in radians (pie, sunburst, chord)")
	cmd.Flags().Float64Var(&flags.NodeWidth, "node-width", 0, "node bar width (sankey)")
	cmd.Flags().Float64Var(&flags.NodePadding, "node-padding", 0, "vertical gap between nodes (sankey)")
	cmd.Flags().StringVar(&flags.Mode, "mode", pipeline.DefaultMode, "placement strategy: spiral, circular, random, grid (wordcloud)")
	cmd.Flags().Float64Var(&flags.MinFontSize, "min-font", 0, "smallest font size (wordcloud)")
	cmd.Flags().Float64Var(&flags.MaxFontSize, "max-font", 0, "largest font size (wordcloud)")
	cmd.Flags().Uint64Var(&flags.Seed, "seed", pipeline.DefaultSeed, "random seed (wordcloud)")
	cmd.Flags().IntVar(&flags.ClusterThreshold, "cluster-threshold", 0, "point count above which points are clustered (scatter)")
	cmd.Flags().IntVar(&flags.GridSize, "grid-size", 0, "cluster grid cells per axis (scatter)")
	cmd.Flags().IntVar(&flags.Bins, "bins", 0, "histogram bin count (0 = Sturges' rule)")
	cmd.Flags().Float64Var(&flags.Bandwidth, "bandwidth", 0, "kernel bandwidth (0 = Silverman's rule)")
	cmd.Flags().IntVar(&flags.DensitySamples, "samples", 0, "density curve sample count")
	cmd.Flags().IntVar(flags.ModePrecision, "mode-precision", 0, "decimal places used to group values for the mode, default 2 (stats)")
	cmd.Flags().IntVar(&flags.TickCount, "ticks", pipeline.DefaultTickCount, "approximate axis tick count (stats)")

	return cmd
}

// overrideOptions copies every flag the user set explicitly from flags onto
// opts, so config values survive unless overridden.
func overrideOptions(fs *pflag.FlagSet, opts *pipeline.Options, flags pipeline.Options) {
	set := func(name string, apply func()) {
		if fs.Changed(name) {
			apply()
		}
	}
	set("width", func() { opts.Width = flags.Width })
	set("height", func() { opts.Height = flags.Height })
	set("max-depth", func() { opts.MaxDepth = flags.MaxDepth })
	set("sort", func() { opts.Sort = flags.Sort })
	set("padding", func() { opts.Padding = flags.Padding })
	set("pad-angle", func() { opts.PadAngle = flags.PadAngle })
	set("node-width", func() { opts.NodeWidth = flags.NodeWidth })
	set("node-padding", func() { opts.NodePadding = flags.NodePadding })
	set("mode", func() { opts.Mode = flags.Mode })
	set("min-font", func() { opts.MinFontSize = flags.MinFontSize })
	set("max-font", func() { opts.MaxFontSize = flags.MaxFontSize })
	set("seed", func() { opts.Seed = flags.Seed })
	set("cluster-threshold", func() { opts.ClusterThreshold = flags.ClusterThreshold })
	set("grid-size", func() { opts.GridSize = flags.GridSize })
	set("bins", func() { opts.Bins = flags.Bins })
	set("bandwidth", func() { opts.Bandwidth = flags.Bandwidth })
	set("samples", func() { opts.DensitySamples = flags.DensitySamples })
	set("mode-precision", func() {
		p := *flags.ModePrecision
		opts.ModePrecision = &p
	})
	set("ticks", func() { opts.TickCount = flags.TickCount })
}

// runLayout loads the dataset, computes the layout, and writes output.
func (c *CLI) runLayout(ctx context.Context, cfg *Config, input string, opts pipeline.Options, output string, noCache, quiet bool) error {
	prog := newProgress(loggerFromContext(ctx))
	ds, err := chart.ReadDatasetFile(input)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Loaded %s dataset", ds.Kind))

	runner, err := c.newRunner(ctx, cfg, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	var spin *spinner
	if !quiet && output != "-" {
		spin = newSpinner(ctx, os.Stderr, fmt.Sprintf("Computing %s layout...", ds.Kind))
		spin.Start()
	}
	result, err := runner.Compute(ctx, ds, opts)
	if spin != nil {
		spin.Stop()
	}
	if err != nil {
		return err
	}

	if output == "-" {
		return chart.WriteLayout(result.Layout, os.Stdout)
	}
	if output == "" {
		output = defaultLayoutPath(input)
	}
	if err := chart.WriteLayoutFile(result.Layout, output); err != nil {
		return fmt.Errorf("write layout: %w", err)
	}

	printSuccess("Computed %s layout", ds.Kind)
	printFile(output)
	printStats(string(ds.Kind), result.Items, result.CacheHit)
	return nil
}

// defaultLayoutPath maps "dir/budget.toml" to "dir/budget.layout.json".
func defaultLayoutPath(input string) string {
	base := strings.TrimSuffix(input, filepath.Ext(input))
	return base + ".layout.json"
}
