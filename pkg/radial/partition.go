package radial

import (
	"math"

	"github.com/matzehuels/chartcore/pkg/geom"
	"github.com/matzehuels/chartcore/pkg/hierarchy"
)

// Item is one weighted entry to partition.
type Item struct {
	Key   string  `json:"key"`
	Value float64 `json:"value"`
}

// Span is an angular interval in radians.
type Span struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// FullCircle returns the span [0, 2π].
func FullCircle() Span {
	return Span{Start: 0, End: 2 * math.Pi}
}

// Sweep returns End - Start.
func (s Span) Sweep() float64 { return s.End - s.Start }

// Mid returns the angle halfway through the span.
func (s Span) Mid() float64 { return (s.Start + s.End) / 2 }

// Segment is the angular extent allocated to one item.
type Segment struct {
	Key        string  `json:"key"`
	Index      int     `json:"index"`
	Value      float64 `json:"value"`
	StartAngle float64 `json:"start_angle"`
	EndAngle   float64 `json:"end_angle"`
	Depth      int     `json:"depth"`

	// Node is the hierarchy node of a sunburst segment, nil otherwise.
	Node *hierarchy.Node `json:"-"`
}

// Span returns the segment's angular interval.
func (s Segment) Span() Span {
	return Span{Start: s.StartAngle, End: s.EndAngle}
}

// Sweep returns EndAngle - StartAngle.
func (s Segment) Sweep() float64 { return s.EndAngle - s.StartAngle }

// Centroid returns the point halfway through the segment's angle and halfway
// between the inner and outer radius, for label placement.
func (s Segment) Centroid(center geom.Point, inner, outer float64) geom.Point {
	return geom.Polar(center, (inner+outer)/2, s.Span().Mid())
}

// Partition divides span among items in input order.
//
// Negative and NaN values count as 0 and yield zero-width segments. Padding
// below 0 is treated as 0; padding that exceeds the span leaves no room and
// every segment has zero width. If the total value is 0 the result is empty.
func Partition(items []Item, span Span, padding float64) []Segment {
	return partition(items, span, padding, 0)
}

func partition(items []Item, span Span, padding float64, depth int) []Segment {
	values := make([]float64, len(items))
	var total float64
	for i, it := range items {
		if it.Value > 0 && !math.IsInf(it.Value, 1) {
			values[i] = it.Value
			total += it.Value
		}
	}
	if total <= 0 {
		return []Segment{}
	}
	if !(padding > 0) {
		padding = 0
	}

	dir := 1.0
	if span.Sweep() < 0 {
		dir = -1
	}
	available := math.Max(0, math.Abs(span.Sweep())-padding*float64(len(items)-1))

	segments := make([]Segment, len(items))
	cur := span.Start
	for i, it := range items {
		end := cur + dir*available*values[i]/total
		segments[i] = Segment{
			Key:        it.Key,
			Index:      i,
			Value:      values[i],
			StartAngle: cur,
			EndAngle:   end,
			Depth:      depth,
		}
		cur = end + dir*padding
	}
	return segments
}
