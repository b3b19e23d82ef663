package sankey

import (
	"github.com/matzehuels/chartcore/pkg/errors"
	"github.com/matzehuels/chartcore/pkg/stats"
)

// Layout defaults.
const (
	DefaultNodeWidth   = 20.0
	DefaultNodePadding = 10.0
)

// Options configures [Compute]. Zero NodeWidth and NodePadding select the
// defaults.
type Options struct {
	Width       float64 `json:"width" toml:"width"`
	Height      float64 `json:"height" toml:"height"`
	NodeWidth   float64 `json:"node_width,omitempty" toml:"node_width,omitempty"`
	NodePadding float64 `json:"node_padding,omitempty" toml:"node_padding,omitempty"`
}

func (o Options) withDefaults() Options {
	if o.NodeWidth <= 0 {
		o.NodeWidth = DefaultNodeWidth
	}
	if o.NodePadding <= 0 {
		o.NodePadding = DefaultNodePadding
	}
	return o
}

// NodeLayout is the placed rectangle of one node.
type NodeLayout struct {
	Name   string  `json:"name"`
	Column int     `json:"column"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Value  float64 `json:"value"`
}

// FlowLayout is the placed band of one connection. SourceY and TargetY are
// the top edges of the band at the source node's right side (SourceX) and
// the target node's left side (TargetX).
type FlowLayout struct {
	Connection Connection `json:"connection"`
	SourceX    float64    `json:"source_x"`
	SourceY    float64    `json:"source_y"`
	TargetX    float64    `json:"target_x"`
	TargetY    float64    `json:"target_y"`
	Thickness  float64    `json:"thickness"`
}

// Layout is the result of [Compute].
type Layout struct {
	Nodes   []NodeLayout `json:"nodes"`
	Flows   []FlowLayout `json:"flows"`
	Columns int          `json:"columns"`
	Scale   float64      `json:"scale"`
}

// Node returns the layout of the named node.
func (l Layout) Node(name string) (NodeLayout, bool) {
	for _, n := range l.Nodes {
		if n.Name == name {
			return n, true
		}
	}
	return NodeLayout{}, false
}

// Compute lays out conns on a canvas of opts.Width x opts.Height.
//
// Nodes are returned grouped by column and in first-appearance order within
// a column; flows are returned in input order. An empty connection list
// yields an empty layout. Invalid canvases, invalid connections and cyclic
// graphs return an error.
func Compute(conns []Connection, opts Options) (Layout, error) {
	if err := errors.ValidateCanvas(opts.Width, opts.Height); err != nil {
		return Layout{}, err
	}
	opts = opts.withDefaults()

	g, err := NewGraph(conns)
	if err != nil {
		return Layout{}, err
	}
	cols, err := AssignColumns(g)
	if err != nil {
		return Layout{}, err
	}

	layout := Layout{Nodes: []NodeLayout{}, Flows: []FlowLayout{}}
	if g.NodeCount() == 0 {
		return layout, nil
	}

	maxCol := 0
	for _, c := range cols {
		maxCol = max(maxCol, c)
	}
	columns := make([][]string, maxCol+1)
	for _, id := range g.Nodes() {
		columns[cols[id]] = append(columns[cols[id]], id)
	}

	totals := make([]float64, len(columns))
	maxNodes := 0
	for c, ids := range columns {
		values := make([]float64, len(ids))
		for i, id := range ids {
			values[i] = g.Value(id)
		}
		totals[c] = stats.Sum(values)
		maxNodes = max(maxNodes, len(ids))
	}

	var scale float64
	if maxTotal := stats.Max(totals); maxTotal > 0 {
		usable := opts.Height - opts.NodePadding*float64(maxNodes-1)
		scale = max(0, usable) / maxTotal
	}
	layout.Columns = len(columns)
	layout.Scale = scale

	colStep := 0.0
	if maxCol > 0 {
		colStep = (opts.Width - opts.NodeWidth) / float64(maxCol)
	}

	placed := make(map[string]NodeLayout, g.NodeCount())
	for c, ids := range columns {
		y := 0.0
		for _, id := range ids {
			n := NodeLayout{
				Name:   id,
				Column: c,
				X:      float64(c) * colStep,
				Y:      y,
				Width:  opts.NodeWidth,
				Height: g.Value(id) * scale,
				Value:  g.Value(id),
			}
			placed[id] = n
			layout.Nodes = append(layout.Nodes, n)
			y += n.Height + opts.NodePadding
		}
	}

	outOffset := make(map[string]float64, len(placed))
	inOffset := make(map[string]float64, len(placed))
	for _, conn := range conns {
		src, dst := placed[conn.Source], placed[conn.Target]
		thickness := conn.Value * scale
		layout.Flows = append(layout.Flows, FlowLayout{
			Connection: conn,
			SourceX:    src.X + src.Width,
			SourceY:    src.Y + outOffset[conn.Source],
			TargetX:    dst.X,
			TargetY:    dst.Y + inOffset[conn.Target],
			Thickness:  thickness,
		})
		outOffset[conn.Source] += thickness
		inOffset[conn.Target] += thickness
	}
	return layout, nil
}
