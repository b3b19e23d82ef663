package sankey

import (
	"fmt"
	"slices"

	"github.com/matzehuels/chartcore/pkg/errors"
)

// Connection is a weighted, directed flow between two node keys.
type Connection struct {
	Source string  `json:"source" toml:"source"`
	Target string  `json:"target" toml:"target"`
	Value  float64 `json:"value" toml:"value"`
}

// Graph is the directed flow graph built from a connection list.
//
// Nodes keep the order in which they first appear in the connections
// (source before target). Parallel connections between the same pair of
// nodes are kept as separate edges. The zero value is not usable; use
// [NewGraph].
type Graph struct {
	order    []string
	outgoing map[string][]string // node -> targets, one entry per connection
	incoming map[string][]string // node -> sources, one entry per connection
	inSum    map[string]float64
	outSum   map[string]float64
}

// NewGraph validates conns and builds the flow graph.
//
// Source and target keys must pass [errors.ValidateKey], values must be
// finite and non-negative, and a connection from a node to itself is
// rejected as a cycle.
func NewGraph(conns []Connection) (*Graph, error) {
	g := &Graph{
		outgoing: make(map[string][]string),
		incoming: make(map[string][]string),
		inSum:    make(map[string]float64),
		outSum:   make(map[string]float64),
	}
	seen := make(map[string]bool)
	add := func(id string) {
		if !seen[id] {
			seen[id] = true
			g.order = append(g.order, id)
		}
	}

	for i, c := range conns {
		if err := validateConnection(c); err != nil {
			return nil, fmt.Errorf("connection %d: %w", i, err)
		}
		add(c.Source)
		add(c.Target)
		g.outgoing[c.Source] = append(g.outgoing[c.Source], c.Target)
		g.incoming[c.Target] = append(g.incoming[c.Target], c.Source)
		g.outSum[c.Source] += c.Value
		g.inSum[c.Target] += c.Value
	}
	return g, nil
}

func validateConnection(c Connection) error {
	if err := errors.ValidateKey(c.Source); err != nil {
		return err
	}
	if err := errors.ValidateKey(c.Target); err != nil {
		return err
	}
	if err := errors.ValidateNonNegative(fmt.Sprintf("flow %s->%s value", c.Source, c.Target), c.Value); err != nil {
		return err
	}
	if c.Source == c.Target {
		return errors.Wrap(errors.ErrCodeGraphCycle, &errors.CycleError{Nodes: []string{c.Source}}, "self-loop on %q", c.Source)
	}
	return nil
}

// Nodes returns the node keys in first-appearance order.
func (g *Graph) Nodes() []string { return slices.Clone(g.order) }

// NodeCount returns the number of distinct nodes.
func (g *Graph) NodeCount() int { return len(g.order) }

// Children returns the targets of the node's outgoing flows, one entry per
// flow. The returned slice should not be modified.
func (g *Graph) Children(id string) []string { return g.outgoing[id] }

// Parents returns the sources of the node's incoming flows, one entry per
// flow. The returned slice should not be modified.
func (g *Graph) Parents(id string) []string { return g.incoming[id] }

// InDegree returns the number of incoming flows.
func (g *Graph) InDegree(id string) int { return len(g.incoming[id]) }

// OutDegree returns the number of outgoing flows.
func (g *Graph) OutDegree(id string) int { return len(g.outgoing[id]) }

// Value returns max(sum of incoming values, sum of outgoing values).
func (g *Graph) Value(id string) float64 {
	return max(g.inSum[id], g.outSum[id])
}

// Sources returns nodes without incoming flows, in node order.
func (g *Graph) Sources() []string {
	var sources []string
	for _, id := range g.order {
		if len(g.incoming[id]) == 0 {
			sources = append(sources, id)
		}
	}
	return sources
}

// Sinks returns nodes without outgoing flows, in node order.
func (g *Graph) Sinks() []string {
	var sinks []string
	for _, id := range g.order {
		if len(g.outgoing[id]) == 0 {
			sinks = append(sinks, id)
		}
	}
	return sinks
}
