// Package pkg provides the libraries behind chartcore, a layout and
// statistics engine for charts.
//
// # Overview
//
// chartcore turns datasets into renderable geometry and summary numbers. It
// does no drawing: a renderer receives rectangles, angular segments, flow
// ribbons and word boxes and paints them. The pkg directory is organized
// into three areas:
//
//  1. Engine - pure, synchronous algorithms with no I/O
//     ([stats], [hierarchy], [treemap], [radial], [sankey], [wordcloud],
//     [scatter], [geom])
//  2. Wire format - datasets and layouts as JSON or TOML ([chart])
//  3. Infrastructure - caching, orchestration and hooks ([cache],
//     [pipeline], [observability], [errors], [buildinfo])
//
// # Architecture
//
//	dataset.json / dataset.toml
//	         ↓
//	    [chart] package (decode + validate)
//	         ↓
//	    [pipeline] package (defaults, cache lookup, dispatch by kind)
//	         ↓
//	    engine packages (treemap, radial, sankey, ...)
//	         ↓
//	    layout.json
//
// # Quick Start
//
// Call an engine package directly:
//
//	root := hierarchy.MustNew("budget", 0,
//	    hierarchy.MustLeaf("ops", 60),
//	    hierarchy.MustLeaf("research", 40),
//	)
//	rects := treemap.NewLayouter(treemap.Options{}).Compute(root, geom.Rect{W: 800, H: 600})
//
// Or go through the cached pipeline:
//
//	ds, _ := chart.ReadDatasetFile("budget.toml")
//	runner := pipeline.NewRunner(cache.NewNullCache(), nil, logger)
//	result, _ := runner.Compute(ctx, ds, pipeline.Options{})
//	chart.WriteLayout(result.Layout, os.Stdout)
//
// [stats]: github.com/matzehuels/chartcore/pkg/stats
// [hierarchy]: github.com/matzehuels/chartcore/pkg/hierarchy
// [treemap]: github.com/matzehuels/chartcore/pkg/treemap
// [radial]: github.com/matzehuels/chartcore/pkg/radial
// [sankey]: github.com/matzehuels/chartcore/pkg/sankey
// [wordcloud]: github.com/matzehuels/chartcore/pkg/wordcloud
// [scatter]: github.com/matzehuels/chartcore/pkg/scatter
// [geom]: github.com/matzehuels/chartcore/pkg/geom
// [chart]: github.com/matzehuels/chartcore/pkg/chart
// [cache]: github.com/matzehuels/chartcore/pkg/cache
// [pipeline]: github.com/matzehuels/chartcore/pkg/pipeline
// [observability]: github.com/matzehuels/chartcore/pkg/observability
// [errors]: github.com/matzehuels/chartcore/pkg/errors
// [buildinfo]: github.com/matzehuels/chartcore/pkg/buildinfo
package pkg
