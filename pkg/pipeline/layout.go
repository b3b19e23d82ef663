package pipeline

import (
	"fmt"
	"math"

	"github.com/matzehuels/chartcore/pkg/chart"
	"github.com/matzehuels/chartcore/pkg/errors"
	"github.com/matzehuels/chartcore/pkg/geom"
	"github.com/matzehuels/chartcore/pkg/radial"
	"github.com/matzehuels/chartcore/pkg/sankey"
	"github.com/matzehuels/chartcore/pkg/scatter"
	"github.com/matzehuels/chartcore/pkg/treemap"
	"github.com/matzehuels/chartcore/pkg/wordcloud"
)

// GaugeSpan is the upper half circle a gauge sweeps, left to right.
var GaugeSpan = radial.Span{Start: math.Pi, End: 2 * math.Pi}

// computeLayout dispatches ds to the engine package for its kind.
// opts must have been validated.
func computeLayout(ds *chart.Dataset, opts *Options) (*chart.Layout, error) {
	if ds.Kind.IsStatistical() {
		return computeStats(ds, opts)
	}

	l := &chart.Layout{Kind: ds.Kind, Width: opts.Width, Height: opts.Height}
	bounds := geom.Rect{W: opts.Width, H: opts.Height}

	switch ds.Kind {
	case chart.KindTreemap:
		root, err := ds.Hierarchy()
		if err != nil {
			return nil, err
		}
		layouter := treemap.NewLayouter(treemap.Options{
			MaxDepth: opts.MaxDepth,
			Spacing:  opts.Padding,
			Sort:     opts.Sort,
		})
		l.Rects = chart.FromTreemap(layouter.Compute(root, bounds))

	case chart.KindSunburst:
		root, err := ds.Hierarchy()
		if err != nil {
			return nil, err
		}
		l.Segments = chart.FromSegments(radial.Sunburst(root, radial.FullCircle(), opts.PadAngle, opts.MaxDepth), nil)

	case chart.KindPie:
		for _, p := range ds.Points {
			if err := errors.ValidateFinite(fmt.Sprintf("point %q value", p.Label), p.Value); err != nil {
				return nil, err
			}
		}
		pie := radial.DefaultPieOptions()
		pie.PadAngle = opts.PadAngle
		l.Segments = chart.FromSegments(radial.Pie(ds.Items(), pie), func(i int) string {
			return ds.Points[i].Color
		})

	case chart.KindGauge:
		g := ds.Gauge
		l.Segments = chart.FromSegments(radial.Gauge(g.Value, g.Min, g.Max, GaugeSpan), nil)

	case chart.KindChord:
		chord, err := radial.Chord(ds.Matrix, radial.FullCircle(), opts.PadAngle)
		if err != nil {
			return nil, err
		}
		if len(ds.Labels) == len(chord.Groups) {
			for i := range chord.Groups {
				chord.Groups[i].Key = ds.Labels[i]
			}
		}
		l.Chord = &chord

	case chart.KindSankey:
		s, err := sankey.Compute(ds.Flows, sankey.Options{
			Width:       opts.Width,
			Height:      opts.Height,
			NodeWidth:   opts.NodeWidth,
			NodePadding: opts.NodePadding,
		})
		if err != nil {
			return nil, err
		}
		l.Sankey = &s

	case chart.KindWordCloud:
		mode, err := wordcloud.ParseMode(opts.Mode)
		if err != nil {
			return nil, err
		}
		words, err := wordcloud.Pack(ds.Words, wordcloud.Options{
			Width:       opts.Width,
			Height:      opts.Height,
			Mode:        mode,
			Padding:     opts.Padding,
			MinFontSize: opts.MinFontSize,
			MaxFontSize: opts.MaxFontSize,
			Seed:        opts.Seed,
		})
		if err != nil {
			return nil, err
		}
		l.Words = words

	case chart.KindScatter:
		clusters, err := scatter.Cluster(ds.XY, scatter.Options{
			Threshold: opts.ClusterThreshold,
			GridSize:  opts.GridSize,
		})
		if err != nil {
			return nil, err
		}
		l.Clusters = clusters

	default:
		return nil, errors.New(errors.ErrCodeInvalidKind, "unknown dataset kind %q", ds.Kind)
	}
	return l, nil
}
