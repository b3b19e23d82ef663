package sankey

import "github.com/matzehuels/chartcore/pkg/errors"

// AssignColumns assigns every node of g to a column.
//
// Source nodes (in-degree 0) are placed in column 0 and every other node at
// one plus the maximum column of its direct predecessors, using a
// longest-path topological traversal (Kahn's algorithm):
//  1. Queue all source nodes at column 0
//  2. Pop a node; for each child raise its column to at least parent+1
//  3. Decrement the child's pending in-degree and queue it at zero
//  4. Repeat until the queue is empty
//
// Nodes whose in-degree never reaches zero lie on or downstream of a cycle.
// They are reported in node order through an [errors.CycleError] wrapped
// with code [errors.ErrCodeGraphCycle]; the traversal itself always
// terminates.
//
// Time complexity is O(V + E).
func AssignColumns(g *Graph) (map[string]int, error) {
	nodes := g.order
	pending := make(map[string]int, len(nodes))
	columns := make(map[string]int, len(nodes))
	queue := make([]string, 0, len(nodes))

	for _, id := range nodes {
		degree := g.InDegree(id)
		pending[id] = degree
		if degree == 0 {
			queue = append(queue, id)
		}
	}

	assigned := 0
	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]
		assigned++

		for _, child := range g.Children(curr) {
			if col := columns[curr] + 1; col > columns[child] {
				columns[child] = col
			}
			pending[child]--
			if pending[child] == 0 {
				queue = append(queue, child)
			}
		}
	}

	if assigned < len(nodes) {
		var stuck []string
		for _, id := range nodes {
			if pending[id] > 0 {
				stuck = append(stuck, id)
			}
		}
		return nil, errors.Wrap(errors.ErrCodeGraphCycle, &errors.CycleError{Nodes: stuck}, "assign columns")
	}
	return columns, nil
}
