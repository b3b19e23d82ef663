package radial

import (
	"math"

	"github.com/matzehuels/chartcore/pkg/hierarchy"
)

// PieOptions configures [Pie].
type PieOptions struct {
	StartAngle float64 `json:"start_angle,omitempty" toml:"start_angle,omitempty"`
	// EndAngle equal to StartAngle selects a full circle from StartAngle.
	EndAngle float64 `json:"end_angle,omitempty" toml:"end_angle,omitempty"`
	PadAngle float64 `json:"pad_angle,omitempty" toml:"pad_angle,omitempty"`
}

// DefaultPieOptions returns a full circle starting at twelve o'clock.
func DefaultPieOptions() PieOptions {
	return PieOptions{StartAngle: -math.Pi / 2, EndAngle: 3 * math.Pi / 2}
}

// Span returns the angular span described by the options.
func (o PieOptions) Span() Span {
	if o.EndAngle == o.StartAngle {
		return Span{Start: o.StartAngle, End: o.StartAngle + 2*math.Pi}
	}
	return Span{Start: o.StartAngle, End: o.EndAngle}
}

// Pie partitions the options' span among items.
func Pie(items []Item, opts PieOptions) []Segment {
	return Partition(items, opts.Span(), opts.PadAngle)
}

// Gauge splits span into a filled segment (key "value") proportional to
// where value falls in [min, max] and a remaining segment (key "remaining").
// Value is clamped to the range. A range that is empty or not finite yields
// no segments.
func Gauge(value, min, max float64, span Span) []Segment {
	width := max - min
	if !(width > 0) || math.IsInf(width, 0) || math.IsNaN(value) {
		return []Segment{}
	}
	value = math.Min(math.Max(value, min), max)
	return Partition([]Item{
		{Key: "value", Value: value - min},
		{Key: "remaining", Value: max - value},
	}, span, 0)
}

// Sunburst partitions span among the children of root by total value, then
// recursively partitions each child's segment among its own children. The
// root's children have depth 0. Levels at depth >= maxDepth are not
// emitted; maxDepth <= 0 lays out the whole tree. Segments are returned in
// pre-order.
func Sunburst(root *hierarchy.Node, span Span, padding float64, maxDepth int) []Segment {
	if root == nil {
		return []Segment{}
	}
	out := []Segment{}
	sunburst(root, span, padding, maxDepth, 0, &out)
	return out
}

func sunburst(node *hierarchy.Node, span Span, padding float64, maxDepth, depth int, out *[]Segment) {
	if maxDepth > 0 && depth >= maxDepth {
		return
	}
	children := node.Children()
	items := make([]Item, len(children))
	for i, c := range children {
		items[i] = Item{Key: c.Name(), Value: c.TotalValue()}
	}
	for i, seg := range partition(items, span, padding, depth) {
		seg.Node = children[i]
		*out = append(*out, seg)
		if !seg.Node.IsLeaf() {
			sunburst(seg.Node, seg.Span(), padding, maxDepth, depth+1, out)
		}
	}
}
