// Package pipeline runs chartcore computations with caching, logging and
// observability hooks.
//
// This package is the single entry point used by the CLI: it validates a
// [chart.Dataset] and [Options], consults the cache, dispatches to the engine
// package for the dataset's kind, and returns a [chart.Layout]. By
// centralizing this logic, every front end gets the same defaults and the
// same cache keys.
//
// # Usage
//
//	runner := pipeline.NewRunner(c, nil, logger)
//	ds, _ := chart.ReadDatasetFile("budget.toml")
//	result, err := runner.Compute(ctx, ds, pipeline.Options{Width: 1024, Height: 768})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	chart.WriteLayout(result.Layout, os.Stdout)
//
// The engine packages stay pure; caching, logging and run IDs live here.
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/chartcore/pkg/cache"
	"github.com/matzehuels/chartcore/pkg/chart"
	"github.com/matzehuels/chartcore/pkg/errors"
	"github.com/matzehuels/chartcore/pkg/scatter"
	"github.com/matzehuels/chartcore/pkg/stats"
	"github.com/matzehuels/chartcore/pkg/treemap"
	"github.com/matzehuels/chartcore/pkg/wordcloud"
)

// =============================================================================
// Default Values - Single Source of Truth for the CLI and config files
// =============================================================================

const (
	// DefaultWidth is the default canvas width.
	DefaultWidth = 800.0

	// DefaultHeight is the default canvas height.
	DefaultHeight = 600.0

	// DefaultMaxDepth is the number of hierarchy levels laid out by treemaps
	// and sunbursts.
	DefaultMaxDepth = treemap.DefaultMaxDepth

	// DefaultMode is the default word-cloud placement strategy.
	DefaultMode = "spiral"

	// DefaultSeed is the default random seed for word clouds.
	DefaultSeed = uint64(42)

	// DefaultTickCount is the approximate number of axis ticks for stats.
	DefaultTickCount = 5
)

// =============================================================================
// Options - Computation Configuration
// =============================================================================

// Options configures a computation. Zero values select the defaults above
// or the engine package's own defaults. Options decode from the [compute]
// table of the config file and from JSON.
type Options struct {
	// Canvas
	Width  float64 `toml:"width" json:"width,omitempty"`
	Height float64 `toml:"height" json:"height,omitempty"`

	// Hierarchical layouts (treemap, sunburst)
	MaxDepth int  `toml:"max_depth" json:"max_depth,omitempty"`
	Sort     bool `toml:"sort" json:"sort,omitempty"`

	// Padding insets treemap parents and separates word-cloud words.
	Padding float64 `toml:"padding" json:"padding,omitempty"`
	// PadAngle is the gap in radians between pie, sunburst and chord segments.
	PadAngle float64 `toml:"pad_angle" json:"pad_angle,omitempty"`

	// Sankey
	NodeWidth   float64 `toml:"node_width" json:"node_width,omitempty"`
	NodePadding float64 `toml:"node_padding" json:"node_padding,omitempty"`

	// Word cloud
	Mode        string  `toml:"mode" json:"mode,omitempty"`
	MinFontSize float64 `toml:"min_font_size" json:"min_font_size,omitempty"`
	MaxFontSize float64 `toml:"max_font_size" json:"max_font_size,omitempty"`
	Seed        uint64  `toml:"seed" json:"seed,omitempty"`

	// Scatter
	ClusterThreshold int `toml:"cluster_threshold" json:"cluster_threshold,omitempty"`
	GridSize         int `toml:"grid_size" json:"grid_size,omitempty"`

	// Statistics
	ModePrecision  *int    `toml:"mode_precision" json:"mode_precision,omitempty"` // nil selects stats.DefaultModePrecision
	DensitySamples int     `toml:"density_samples" json:"density_samples,omitempty"`
	Bandwidth      float64 `toml:"bandwidth" json:"bandwidth,omitempty"` // 0 selects Silverman's rule
	Bins           int     `toml:"bins" json:"bins,omitempty"`           // 0 selects Sturges' rule
	TickCount      int     `toml:"tick_count" json:"tick_count,omitempty"`

	// Runtime options (not serialized)
	Refresh bool        `toml:"-" json:"-"` // skip the cache lookup but still store the result
	Logger  *log.Logger `toml:"-" json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result is the output of one computation.
type Result struct {
	// Layout is the computed layout. Layout.ID is unique per run, even on a
	// cache hit.
	Layout *chart.Layout

	// DatasetHash is the content hash of the dataset.
	DatasetHash string

	// Items is the number of input items the kind read.
	Items int

	// Duration covers the cache lookup and the computation.
	Duration time.Duration

	// CacheHit is true when the layout came from the cache.
	CacheHit bool
}

// =============================================================================
// Options Methods
// =============================================================================

// SetDefaults fills zero fields with the defaults.
func (o *Options) SetDefaults() {
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Height == 0 {
		o.Height = DefaultHeight
	}
	if o.MaxDepth == 0 {
		o.MaxDepth = DefaultMaxDepth
	}
	if o.Mode == "" {
		o.Mode = DefaultMode
	}
	if o.Seed == 0 {
		o.Seed = DefaultSeed
	}
	if o.MinFontSize == 0 {
		o.MinFontSize = wordcloud.DefaultMinFontSize
	}
	if o.MaxFontSize == 0 {
		o.MaxFontSize = wordcloud.DefaultMaxFontSize
	}
	if o.ClusterThreshold == 0 {
		o.ClusterThreshold = scatter.DefaultThreshold
	}
	if o.GridSize == 0 {
		o.GridSize = scatter.DefaultGridSize
	}
	if o.ModePrecision == nil {
		p := stats.DefaultModePrecision
		o.ModePrecision = &p
	}
	if o.DensitySamples == 0 {
		o.DensitySamples = stats.DefaultDensitySamples
	}
	if o.TickCount == 0 {
		o.TickCount = DefaultTickCount
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateAndSetDefaults applies defaults and rejects out-of-range values.
// It is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	o.SetDefaults()

	if err := errors.ValidateCanvas(o.Width, o.Height); err != nil {
		return err
	}
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"padding", o.Padding},
		{"pad_angle", o.PadAngle},
		{"node_width", o.NodeWidth},
		{"node_padding", o.NodePadding},
		{"bandwidth", o.Bandwidth},
		{"min_font_size", o.MinFontSize},
		{"max_font_size", o.MaxFontSize},
	} {
		if err := errors.ValidateNonNegative(f.name, f.v); err != nil {
			return err
		}
	}
	if o.MinFontSize > o.MaxFontSize {
		return errors.New(errors.ErrCodeInvalidInput,
			"min_font_size %g exceeds max_font_size %g", o.MinFontSize, o.MaxFontSize)
	}
	if _, err := wordcloud.ParseMode(o.Mode); err != nil {
		return err
	}
	for _, f := range []struct {
		name string
		v    int
	}{
		{"max_depth", o.MaxDepth},
		{"cluster_threshold", o.ClusterThreshold},
		{"grid_size", o.GridSize},
		{"mode_precision", *o.ModePrecision},
		{"density_samples", o.DensitySamples},
		{"bins", o.Bins},
		{"tick_count", o.TickCount},
	} {
		if f.v < 0 {
			return errors.New(errors.ErrCodeInvalidInput, "%s must be non-negative, got %d", f.name, f.v)
		}
	}

	o.validated = true
	return nil
}

// LayoutKeyOpts returns the cache key options for a geometry kind. Only the
// options the kind reads are included, so unrelated flags do not split the
// cache.
func (o *Options) LayoutKeyOpts(kind chart.Kind) cache.LayoutKeyOpts {
	k := cache.LayoutKeyOpts{Kind: string(kind), Width: o.Width, Height: o.Height}
	switch kind {
	case chart.KindTreemap:
		k.Params = []any{o.MaxDepth, o.Sort, o.Padding}
	case chart.KindSunburst:
		k.Params = []any{o.MaxDepth, o.PadAngle}
	case chart.KindPie, chart.KindChord:
		k.Params = []any{o.PadAngle}
	case chart.KindSankey:
		k.Params = []any{o.NodeWidth, o.NodePadding}
	case chart.KindWordCloud:
		k.Params = []any{o.Mode, o.Padding, o.MinFontSize, o.MaxFontSize, o.Seed}
	case chart.KindScatter:
		k.Params = []any{o.ClusterThreshold, o.GridSize}
	}
	return k
}

// StatsKeyOpts returns the cache key options for a statistical kind.
func (o *Options) StatsKeyOpts(kind chart.Kind) cache.StatsKeyOpts {
	return cache.StatsKeyOpts{
		Kind:           string(kind),
		ModePrecision:  *o.ModePrecision,
		DensitySamples: o.DensitySamples,
		Bandwidth:      o.Bandwidth,
		Bins:           o.Bins,
		TickCount:      o.TickCount,
	}
}
