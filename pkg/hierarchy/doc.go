// Package hierarchy provides the owned, immutable tree consumed by the
// treemap and sunburst layouts.
//
// # Ownership
//
// A [Node] owns its children. Construction attaches each child to exactly
// one parent; passing a node that already has a parent (or passing the same
// node twice) is rejected, so every tree is acyclic and free of shared
// references by construction.
//
// # Values
//
// Each node carries its own value. [Node.TotalValue] is the node's own value
// for leaves and the sum of its children's totals otherwise. Totals are
// aggregated bottom-up once during construction and never recomputed.
// Values must be finite and non-negative.
//
// # Building Trees
//
// Trees can be built directly with [New] and [Leaf]:
//
//	root := hierarchy.MustNew("root", 0,
//	    hierarchy.MustLeaf("a", 6),
//	    hierarchy.MustNew("b", 0,
//	        hierarchy.MustLeaf("b1", 3),
//	        hierarchy.MustLeaf("b2", 1),
//	    ),
//	)
//
// or from the serializable [Spec] form read from dataset files, in which case
// validation errors name the offending path (for example "root/b/b2").
package hierarchy
