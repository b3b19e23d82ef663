package treemap

import (
	"fmt"
	"math"
	"testing"

	"github.com/matzehuels/chartcore/pkg/geom"
	"github.com/matzehuels/chartcore/pkg/hierarchy"
)

const tol = 1e-9

func flat(values ...float64) *hierarchy.Node {
	children := make([]*hierarchy.Node, len(values))
	for i, v := range values {
		children[i] = hierarchy.MustLeaf(fmt.Sprintf("n%d", i), v)
	}
	return hierarchy.MustNew("root", 0, children...)
}

func rectApprox(a, b geom.Rect) bool {
	return math.Abs(a.X-b.X) < 1e-6 && math.Abs(a.Y-b.Y) < 1e-6 &&
		math.Abs(a.W-b.W) < 1e-6 && math.Abs(a.H-b.H) < 1e-6
}

func TestSquarify_ClassicExample(t *testing.T) {
	root := flat(6, 6, 4, 3, 2, 2, 1)
	rects := Squarify(root, geom.Rect{W: 6, H: 4}, Options{})

	if len(rects) != 7 {
		t.Fatalf("len = %d, want 7", len(rects))
	}
	want := []geom.Rect{
		{X: 0, Y: 0, W: 3, H: 2},
		{X: 0, Y: 2, W: 3, H: 2},
		{X: 3, Y: 0, W: 3 * 4.0 / 7, H: 7.0 / 3},
		{X: 3 + 3*4.0/7, Y: 0, W: 3 * 3.0 / 7, H: 7.0 / 3},
	}
	for i, w := range want {
		if !rectApprox(rects[i].Rect, w) {
			t.Errorf("rect[%d] = %+v, want %+v", i, rects[i].Rect, w)
		}
	}
	for i, r := range rects {
		if !r.Leaf || r.Depth != 0 {
			t.Errorf("rect[%d] Leaf=%v Depth=%d, want leaf at depth 0", i, r.Leaf, r.Depth)
		}
		if area := r.Rect.Area(); math.Abs(area-r.Node.TotalValue()) > 1e-6 {
			t.Errorf("rect[%d] area = %v, want %v", i, area, r.Node.TotalValue())
		}
	}
}

func TestSquarify_LeavesTileBounds(t *testing.T) {
	root := hierarchy.MustNew("root", 0,
		hierarchy.MustNew("a", 0,
			hierarchy.MustLeaf("a1", 12),
			hierarchy.MustLeaf("a2", 3),
			hierarchy.MustNew("a3", 0,
				hierarchy.MustLeaf("a3x", 1),
				hierarchy.MustLeaf("a3y", 7),
			),
		),
		hierarchy.MustLeaf("b", 20),
		hierarchy.MustLeaf("c", 0.5),
		hierarchy.MustNew("d", 0,
			hierarchy.MustLeaf("d1", 9),
			hierarchy.MustLeaf("d2", 9),
		),
	)
	bounds := geom.Rect{X: 10, Y: 20, W: 640, H: 360}

	rects := Squarify(root, bounds, Options{MaxDepth: 5})

	var leafArea float64
	for _, r := range rects {
		if r.Leaf {
			leafArea += r.Rect.Area()
		}
		if !bounds.ContainsWithin(r.Rect, 1e-6) {
			t.Errorf("%s rect %+v escapes bounds", r.Node.Name(), r.Rect)
		}
	}
	if math.Abs(leafArea-bounds.Area()) > 1e-6 {
		t.Errorf("leaf area = %v, want %v", leafArea, bounds.Area())
	}
	assertSiblingsDisjoint(t, rects)
}

func TestSquarify_SiblingsDisjointAndContained(t *testing.T) {
	root := hierarchy.MustNew("root", 0,
		hierarchy.MustNew("x", 0, hierarchy.MustLeaf("x1", 4), hierarchy.MustLeaf("x2", 1)),
		hierarchy.MustNew("y", 0, hierarchy.MustLeaf("y1", 2), hierarchy.MustLeaf("y2", 2), hierarchy.MustLeaf("y3", 2)),
	)
	rects := Squarify(root, geom.Rect{W: 100, H: 50}, Options{Spacing: 2})

	parents := map[string]geom.Rect{}
	for _, r := range rects {
		if !r.Leaf {
			parents[r.Node.Name()] = r.Rect
		}
	}
	if len(parents) != 2 {
		t.Fatalf("subdivided parents = %d, want 2", len(parents))
	}
	for _, r := range rects {
		if r.Depth != 1 {
			continue
		}
		var parent geom.Rect
		for name, p := range parents {
			if root.Find(name).Find(r.Node.Name()) != nil {
				parent = p
			}
		}
		if !parent.Inset(2).ContainsWithin(r.Rect, 1e-6) {
			t.Errorf("%s rect %+v not inside inset parent %+v", r.Node.Name(), r.Rect, parent.Inset(2))
		}
	}
	assertSiblingsDisjoint(t, rects)
}

func assertSiblingsDisjoint(t *testing.T, rects []LayoutRect) {
	t.Helper()
	for i := range rects {
		for j := i + 1; j < len(rects); j++ {
			a, b := rects[i], rects[j]
			if a.Depth != b.Depth {
				continue
			}
			if a.Rect.Inset(1e-7).Overlaps(b.Rect.Inset(1e-7)) {
				t.Errorf("%s %+v overlaps %s %+v", a.Node.Name(), a.Rect, b.Node.Name(), b.Rect)
			}
		}
	}
}

func TestSquarify_MaxDepth(t *testing.T) {
	root := hierarchy.MustNew("root", 0,
		hierarchy.MustNew("a", 0, hierarchy.MustLeaf("a1", 1), hierarchy.MustLeaf("a2", 1)),
		hierarchy.MustLeaf("b", 2),
	)

	rects := Squarify(root, geom.Rect{W: 10, H: 10}, Options{MaxDepth: 1})
	if len(rects) != 2 {
		t.Fatalf("len = %d, want 2", len(rects))
	}
	for _, r := range rects {
		if !r.Leaf {
			t.Errorf("%s Leaf = false, want true at max depth", r.Node.Name())
		}
	}

	deep := Squarify(root, geom.Rect{W: 10, H: 10}, Options{MaxDepth: 2})
	if len(deep) != 4 {
		t.Fatalf("len = %d, want 4", len(deep))
	}
	if deep[0].Node.Name() != "a" || deep[0].Leaf {
		t.Errorf("first rect = %s leaf=%v, want subdivided a", deep[0].Node.Name(), deep[0].Leaf)
	}
	if deep[1].Depth != 1 {
		t.Errorf("a1 depth = %d, want 1", deep[1].Depth)
	}
}

func TestSquarify_SingleChild(t *testing.T) {
	bounds := geom.Rect{X: 5, Y: 5, W: 30, H: 10}
	rects := Squarify(flat(42), bounds, Options{})
	if len(rects) != 1 {
		t.Fatalf("len = %d, want 1", len(rects))
	}
	if rects[0].Rect != bounds {
		t.Errorf("rect = %+v, want %+v", rects[0].Rect, bounds)
	}
}

func TestSquarify_Degenerate(t *testing.T) {
	tests := []struct {
		name   string
		root   *hierarchy.Node
		bounds geom.Rect
	}{
		{"nil root", nil, geom.Rect{W: 10, H: 10}},
		{"zero total", flat(0, 0), geom.Rect{W: 10, H: 10}},
		{"empty bounds", flat(1, 2), geom.Rect{W: 0, H: 10}},
		{"leaf root", hierarchy.MustLeaf("solo", 3), geom.Rect{W: 10, H: 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Squarify(tt.root, tt.bounds, Options{}); len(got) != 0 {
				t.Errorf("Squarify() = %v, want empty", got)
			}
		})
	}
}

func TestSquarify_SkipsZeroChildren(t *testing.T) {
	rects := Squarify(flat(3, 0, 1), geom.Rect{W: 4, H: 4}, Options{})
	if len(rects) != 2 {
		t.Fatalf("len = %d, want 2", len(rects))
	}
	for _, r := range rects {
		if r.Node.Name() == "n1" {
			t.Error("zero-valued child received a rect")
		}
	}
}

func TestSquarify_Sort(t *testing.T) {
	rects := Squarify(flat(1, 5, 3), geom.Rect{W: 9, H: 9}, Options{Sort: true})
	got := []string{rects[0].Node.Name(), rects[1].Node.Name(), rects[2].Node.Name()}
	want := []string{"n1", "n2", "n0"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestLayouter_Compute(t *testing.T) {
	l := NewLayouter(Options{MaxDepth: 1})
	root := flat(1, 1, 1, 1)
	rects := l.Compute(root, geom.Rect{W: 2, H: 2})
	var area float64
	for _, r := range rects {
		area += r.Rect.Area()
	}
	if math.Abs(area-4) > tol {
		t.Errorf("total area = %v, want 4", area)
	}
}
