package hierarchy

import (
	"fmt"
	"math"
	"slices"
	"sync/atomic"

	"github.com/matzehuels/chartcore/pkg/errors"
)

var (
	// ErrInvalidValue is returned when a node value is negative, NaN or infinite.
	ErrInvalidValue = errors.New(errors.ErrCodeInvalidHierarchy, "node value must be finite and non-negative")

	// ErrNilChild is returned when a nil child is passed to [New].
	ErrNilChild = errors.New(errors.ErrCodeInvalidHierarchy, "child node must not be nil")

	// ErrAlreadyAttached is returned when a child already belongs to a parent,
	// or the same child is passed more than once.
	ErrAlreadyAttached = errors.New(errors.ErrCodeInvalidHierarchy, "node is already attached to a parent")
)

// Node is a named, valued tree node with ordered children.
//
// The zero value is not usable; construct nodes with [New] or [Leaf].
// Nodes are immutable after construction and safe for concurrent reads.
// Concurrent [New] calls that share a child are also safe: exactly one of
// them claims it and the others fail with [ErrAlreadyAttached].
type Node struct {
	name     string
	value    float64
	total    float64
	height   int
	children []*Node
	attached atomic.Bool
}

// New creates a node that owns children, in the given order.
//
// It returns an error wrapping [ErrInvalidValue], [ErrNilChild] or
// [ErrAlreadyAttached]; all carry [errors.ErrCodeInvalidHierarchy].
// On error no child is attached.
func New(name string, value float64, children ...*Node) (*Node, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) || value < 0 {
		return nil, fmt.Errorf("node %q has value %g: %w", name, value, ErrInvalidValue)
	}

	for i, c := range children {
		if c == nil {
			return nil, fmt.Errorf("node %q child %d: %w", name, i, ErrNilChild)
		}
		if slices.Index(children, c) != i {
			return nil, fmt.Errorf("node %q child %q: %w", name, c.name, ErrAlreadyAttached)
		}
	}
	for i, c := range children {
		if !c.attached.CompareAndSwap(false, true) {
			for _, prev := range children[:i] {
				prev.attached.Store(false)
			}
			return nil, fmt.Errorf("node %q child %q: %w", name, c.name, ErrAlreadyAttached)
		}
	}

	n := &Node{
		name:     name,
		value:    value,
		total:    value,
		children: slices.Clone(children),
	}
	if len(n.children) > 0 {
		n.total = 0
		for _, c := range n.children {
			n.total += c.total
			n.height = max(n.height, c.height+1)
		}
	}
	return n, nil
}

// MustNew is like [New] but panics on error. It is intended for literal
// trees in tests and examples.
func MustNew(name string, value float64, children ...*Node) *Node {
	n, err := New(name, value, children...)
	if err != nil {
		panic(err)
	}
	return n
}

// Leaf creates a childless node.
func Leaf(name string, value float64) (*Node, error) {
	return New(name, value)
}

// MustLeaf is like [Leaf] but panics on error.
func MustLeaf(name string, value float64) *Node {
	return MustNew(name, value)
}

// Name returns the node's label.
func (n *Node) Name() string { return n.name }

// Value returns the node's own value.
func (n *Node) Value() float64 { return n.value }

// TotalValue returns the own value for a leaf and the sum of the children's
// totals otherwise.
func (n *Node) TotalValue() float64 { return n.total }

// IsLeaf reports whether the node has no children.
func (n *Node) IsLeaf() bool { return len(n.children) == 0 }

// Len returns the number of direct children.
func (n *Node) Len() int { return len(n.children) }

// Child returns the i-th child, or nil if i is out of range.
func (n *Node) Child(i int) *Node {
	if i < 0 || i >= len(n.children) {
		return nil
	}
	return n.children[i]
}

// Children returns a copy of the node's children in order.
func (n *Node) Children() []*Node {
	return slices.Clone(n.children)
}

// Height returns the length of the longest path to a leaf (0 for a leaf).
func (n *Node) Height() int { return n.height }

// Walk visits n and its descendants in pre-order. depth is 0 for n.
func (n *Node) Walk(fn func(node *Node, depth int)) {
	n.walk(fn, 0)
}

func (n *Node) walk(fn func(*Node, int), depth int) {
	fn(n, depth)
	for _, c := range n.children {
		c.walk(fn, depth+1)
	}
}

// Leaves returns every leaf under n (n itself if it is a leaf), left to right.
func (n *Node) Leaves() []*Node {
	var leaves []*Node
	n.Walk(func(node *Node, _ int) {
		if node.IsLeaf() {
			leaves = append(leaves, node)
		}
	})
	return leaves
}

// Count returns the number of nodes in the subtree rooted at n.
func (n *Node) Count() int {
	count := 0
	n.Walk(func(*Node, int) { count++ })
	return count
}

// Find follows path by child name from n and returns the node reached, or
// nil if any step has no matching child. At each step the first child with
// the name wins. An empty path returns n.
func (n *Node) Find(path ...string) *Node {
	cur := n
	for _, name := range path {
		var next *Node
		for _, c := range cur.children {
			if c.name == name {
				next = c
				break
			}
		}
		if next == nil {
			return nil
		}
		cur = next
	}
	return cur
}

// String returns the node name and total value.
func (n *Node) String() string {
	return fmt.Sprintf("%s(%g)", n.name, n.total)
}
