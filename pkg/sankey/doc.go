// Package sankey places the nodes and flows of a Sankey diagram.
//
// # Overview
//
// A Sankey diagram is built from [Connection] values, each a weighted,
// directed flow between two string keys. [Compute] builds a flow [Graph],
// assigns every node to a column, scales node heights to the canvas, and
// stacks flows at each node in input order.
//
// # Columns
//
// Nodes without incoming flows sit in column 0. Every other node sits one
// column past its deepest direct predecessor, so a node's column is always
// strictly greater than the columns of all of its predecessors. Column
// assignment uses Kahn's topological traversal; nodes that never become
// ready sit on or behind a cycle and [Compute] reports them through an
// [errors.CycleError] with code [errors.ErrCodeGraphCycle]. A flow from a
// node to itself is a cycle.
//
// # Scaling
//
// Node value is max(sum of incoming, sum of outgoing). The vertical scale is
//
//	(Height - NodePadding*(maxNodesInColumn-1)) / max column total
//
// so the fullest column exactly fills the canvas height. Node and flow
// heights are value*scale. Columns are spread evenly across
// Width-NodeWidth.
//
// # Flow Stacking
//
// Flows are processed in input order. Each flow occupies the next free slot
// below the previous flow at its source node (outgoing side) and at its
// target node (incoming side), so flows sharing an endpoint never overlap
// and their order is stable.
package sankey
