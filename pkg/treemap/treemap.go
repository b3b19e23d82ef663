package treemap

import (
	"cmp"
	"slices"

	"github.com/matzehuels/chartcore/pkg/geom"
	"github.com/matzehuels/chartcore/pkg/hierarchy"
)

// DefaultMaxDepth is the number of hierarchy levels laid out when
// Options.MaxDepth is not set.
const DefaultMaxDepth = 3

// Options configures a treemap layout.
type Options struct {
	// MaxDepth bounds how many levels below the root are subdivided.
	// Values <= 0 select DefaultMaxDepth.
	MaxDepth int `json:"max_depth,omitempty" toml:"max_depth,omitempty"`
	// Spacing insets a parent rect before its children are laid out in it.
	Spacing float64 `json:"spacing,omitempty" toml:"spacing,omitempty"`
	// Sort lays children out by descending total value instead of input order.
	Sort bool `json:"sort,omitempty" toml:"sort,omitempty"`
}

func (o Options) withDefaults() Options {
	if o.MaxDepth <= 0 {
		o.MaxDepth = DefaultMaxDepth
	}
	if o.Spacing < 0 {
		o.Spacing = 0
	}
	return o
}

// LayoutRect is the placed rectangle of one hierarchy node.
type LayoutRect struct {
	Node  *hierarchy.Node
	Rect  geom.Rect
	Depth int
	// Leaf is true when the rect is not subdivided further, either because
	// the node has no children or because MaxDepth was reached.
	Leaf bool
}

// Layouter computes squarified treemaps with fixed options.
type Layouter struct {
	Options Options
}

// NewLayouter returns a Layouter using opts.
func NewLayouter(opts Options) *Layouter {
	return &Layouter{Options: opts}
}

// Compute lays out root inside bounds. See [Squarify].
func (l *Layouter) Compute(root *hierarchy.Node, bounds geom.Rect) []LayoutRect {
	return Squarify(root, bounds, l.Options)
}

// Squarify lays out the children of root inside bounds and returns a flat
// list of rects in pre-order: every subdivided rect precedes the rects of its
// children.
func Squarify(root *hierarchy.Node, bounds geom.Rect, opts Options) []LayoutRect {
	if root == nil || root.TotalValue() <= 0 || bounds.Empty() || !bounds.IsFinite() {
		return nil
	}
	opts = opts.withDefaults()

	var out []LayoutRect
	layoutChildren(root, bounds, 0, opts, &out)
	return out
}

type item struct {
	node *hierarchy.Node
	area float64
}

func layoutChildren(parent *hierarchy.Node, rect geom.Rect, depth int, opts Options, out *[]LayoutRect) {
	total := parent.TotalValue()
	if total <= 0 || rect.Empty() {
		return
	}

	items := make([]item, 0, parent.Len())
	for _, c := range parent.Children() {
		if c.TotalValue() > 0 {
			items = append(items, item{node: c, area: c.TotalValue() / total * rect.Area()})
		}
	}
	if opts.Sort {
		slices.SortStableFunc(items, func(a, b item) int {
			return cmp.Compare(b.area, a.area)
		})
	}

	for i, r := range squarify(items, rect) {
		node := items[i].node
		if !node.IsLeaf() && depth+1 < opts.MaxDepth {
			*out = append(*out, LayoutRect{Node: node, Rect: r, Depth: depth})
			layoutChildren(node, r.Inset(opts.Spacing), depth+1, opts, out)
			continue
		}
		*out = append(*out, LayoutRect{Node: node, Rect: r, Depth: depth, Leaf: true})
	}
}

// squarify places items (whose areas sum to rect's area) into rect and
// returns one rect per item, in item order.
func squarify(items []item, rect geom.Rect) []geom.Rect {
	rects := make([]geom.Rect, len(items))
	free := rect

	for start := 0; start < len(items); {
		side := free.ShortSide()
		end := start + 1
		for end < len(items) && worst(items[start:end+1], side) <= worst(items[start:end], side) {
			end++
		}
		free = layoutRow(items[start:end], free, rects[start:end], end == len(items))
		start = end
	}
	return rects
}

// worst returns the largest aspect ratio of a row laid along a side of the
// given length.
func worst(row []item, side float64) float64 {
	var sum float64
	lo, hi := row[0].area, row[0].area
	for _, it := range row {
		sum += it.area
		lo = min(lo, it.area)
		hi = max(hi, it.area)
	}
	s2 := side * side
	sum2 := sum * sum
	return max(s2*hi/sum2, sum2/(s2*lo))
}

// layoutRow writes the rects of row into dst and returns the rectangle left
// over. The last row takes the full remaining rectangle.
func layoutRow(row []item, free geom.Rect, dst []geom.Rect, last bool) geom.Rect {
	var sum float64
	for _, it := range row {
		sum += it.area
	}

	if free.W > free.H {
		// Column on the left edge, items stacked top to bottom.
		thick := sum / free.H
		if last || thick > free.W {
			thick = free.W
		}
		y := free.Y
		for i, it := range row {
			h := it.area / sum * free.H
			if i == len(row)-1 {
				h = free.MaxY() - y
			}
			dst[i] = geom.Rect{X: free.X, Y: y, W: thick, H: h}
			y += h
		}
		return geom.Rect{X: free.X + thick, Y: free.Y, W: free.W - thick, H: free.H}
	}

	// Strip along the top edge, items left to right.
	thick := sum / free.W
	if last || thick > free.H {
		thick = free.H
	}
	x := free.X
	for i, it := range row {
		w := it.area / sum * free.W
		if i == len(row)-1 {
			w = free.MaxX() - x
		}
		dst[i] = geom.Rect{X: x, Y: free.Y, W: w, H: thick}
		x += w
	}
	return geom.Rect{X: free.X, Y: free.Y + thick, W: free.W, H: free.H - thick}
}
