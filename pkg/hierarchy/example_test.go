package hierarchy_test

import (
	"fmt"

	"github.com/matzehuels/chartcore/pkg/hierarchy"
)

func ExampleNew() {
	root := hierarchy.MustNew("root", 0,
		hierarchy.MustLeaf("a", 6),
		hierarchy.MustNew("b", 0,
			hierarchy.MustLeaf("b1", 3),
			hierarchy.MustLeaf("b2", 1),
		),
	)

	fmt.Println("Total:", root.TotalValue())
	fmt.Println("Height:", root.Height())
	fmt.Println("Leaves:", len(root.Leaves()))
	// Output:
	// Total: 10
	// Height: 2
	// Leaves: 3
}
