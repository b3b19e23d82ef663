// Package treemap lays out a [hierarchy.Node] as nested rectangles using the
// squarified treemap algorithm.
//
// # Algorithm
//
// For each laid-out node, children receive an area proportional to their
// share of the parent's total value. Children are packed greedily into rows
// along the shorter side of the remaining rectangle: a child joins the open
// row as long as the row's worst aspect ratio does not get worse. When it
// would, the row is closed and laid out (a column on the left edge when the
// remaining rectangle is wider than tall, a strip along the top edge
// otherwise), the remaining rectangle shrinks by the row's thickness, and a
// new row starts with the rejected child. The final row always fills the
// rest of the rectangle.
//
// # Depth
//
// The root's children are laid out at depth 0. A child with children of its
// own is subdivided (its rect inset by [Options.Spacing]) while depth+1 is
// below [Options.MaxDepth]; otherwise it is emitted as a leaf rect standing
// for its whole subtree.
//
// # Degenerate Input
//
// A nil root, a zero total value or an empty bounds rectangle produce no
// rects. Children with zero total value are skipped.
package treemap
