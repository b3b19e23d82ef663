package chart

import (
	"github.com/matzehuels/chartcore/pkg/geom"
	"github.com/matzehuels/chartcore/pkg/radial"
	"github.com/matzehuels/chartcore/pkg/sankey"
	"github.com/matzehuels/chartcore/pkg/scatter"
	"github.com/matzehuels/chartcore/pkg/stats"
	"github.com/matzehuels/chartcore/pkg/treemap"
	"github.com/matzehuels/chartcore/pkg/wordcloud"
)

// Layout is the output union. Kind determines which result fields are
// populated; see the package documentation.
type Layout struct {
	// Discriminator
	Kind  Kind   `json:"kind"`
	ID    string `json:"id"`
	Title string `json:"title,omitempty"`

	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`

	// Statistics
	Summary     *stats.Summary       `json:"summary,omitempty"`
	Ticks       []float64            `json:"ticks,omitempty"`
	Regression  *stats.Regression    `json:"regression,omitempty"`
	Correlation *float64             `json:"correlation,omitempty"`
	Density     []stats.DensityPoint `json:"density,omitempty"`
	Bandwidth   float64              `json:"bandwidth,omitempty"`
	Bins        []stats.Bin          `json:"bins,omitempty"`

	// Geometry
	Rects    []Rect                 `json:"rects,omitempty"`
	Segments []Segment              `json:"segments,omitempty"`
	Chord    *radial.ChordLayout    `json:"chord,omitempty"`
	Sankey   *sankey.Layout         `json:"sankey,omitempty"`
	Words    []wordcloud.Placement  `json:"words,omitempty"`
	Clusters []scatter.ClusterPoint `json:"clusters,omitempty"`
}

// Rect is a positioned treemap node.
type Rect struct {
	Name   string    `json:"name"`
	Value  float64   `json:"value"`
	Depth  int       `json:"depth"`
	Leaf   bool      `json:"leaf,omitempty"`
	Bounds geom.Rect `json:"bounds"`
}

// Segment is an angular segment with the color of its data point, if any.
type Segment struct {
	radial.Segment
	Color string `json:"color,omitempty"`
}

// FromTreemap converts treemap output to wire rects. Value is the node's
// total value.
func FromTreemap(rects []treemap.LayoutRect) []Rect {
	out := make([]Rect, len(rects))
	for i, r := range rects {
		out[i] = Rect{
			Name:   r.Node.Name(),
			Value:  r.Node.TotalValue(),
			Depth:  r.Depth,
			Leaf:   r.Leaf,
			Bounds: r.Rect,
		}
	}
	return out
}

// FromSegments converts radial segments to wire segments. color may be nil;
// otherwise it is called with each segment's index.
func FromSegments(segs []radial.Segment, color func(index int) string) []Segment {
	out := make([]Segment, len(segs))
	for i, s := range segs {
		out[i] = Segment{Segment: s}
		if color != nil {
			out[i].Color = color(s.Index)
		}
	}
	return out
}
