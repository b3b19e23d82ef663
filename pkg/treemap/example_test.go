package treemap_test

import (
	"fmt"

	"github.com/matzehuels/chartcore/pkg/geom"
	"github.com/matzehuels/chartcore/pkg/hierarchy"
	"github.com/matzehuels/chartcore/pkg/treemap"
)

func ExampleSquarify() {
	root := hierarchy.MustNew("disk", 0,
		hierarchy.MustLeaf("videos", 6),
		hierarchy.MustLeaf("photos", 6),
		hierarchy.MustLeaf("music", 4),
		hierarchy.MustLeaf("docs", 8),
	)

	for _, r := range treemap.Squarify(root, geom.Rect{W: 6, H: 4}, treemap.Options{}) {
		fmt.Printf("%s %.1fx%.1f\n", r.Node.Name(), r.Rect.W, r.Rect.H)
	}
	// Output:
	// videos 3.0x2.0
	// photos 3.0x2.0
	// music 3.0x1.3
	// docs 3.0x2.7
}
