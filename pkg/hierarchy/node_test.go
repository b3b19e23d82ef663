package hierarchy

import (
	stderrors "errors"
	"math"
	"sync"
	"testing"

	"github.com/matzehuels/chartcore/pkg/errors"
)

func sampleTree() *Node {
	return MustNew("root", 0,
		MustLeaf("a", 6),
		MustNew("b", 0,
			MustLeaf("b1", 3),
			MustLeaf("b2", 1),
		),
		MustLeaf("c", 0),
	)
}

func TestNode_TotalValue(t *testing.T) {
	root := sampleTree()

	if got := root.TotalValue(); got != 10 {
		t.Errorf("root.TotalValue() = %v, want 10", got)
	}
	if got := root.Find("b").TotalValue(); got != 4 {
		t.Errorf("b.TotalValue() = %v, want 4", got)
	}
	if got := root.Find("a").TotalValue(); got != 6 {
		t.Errorf("a.TotalValue() = %v, want 6", got)
	}
}

func TestNode_TotalValueIgnoresOwnValueOfParents(t *testing.T) {
	n := MustNew("p", 100, MustLeaf("x", 2), MustLeaf("y", 3))
	if got := n.TotalValue(); got != 5 {
		t.Errorf("TotalValue() = %v, want 5", got)
	}
	if got := n.Value(); got != 100 {
		t.Errorf("Value() = %v, want 100", got)
	}
}

func TestNode_TotalEqualsSumOfChildren(t *testing.T) {
	sampleTree().Walk(func(n *Node, _ int) {
		if n.IsLeaf() {
			return
		}
		var sum float64
		for _, c := range n.Children() {
			sum += c.TotalValue()
		}
		if sum != n.TotalValue() {
			t.Errorf("%s: children sum %v != total %v", n.Name(), sum, n.TotalValue())
		}
	})
}

func TestNode_Structure(t *testing.T) {
	root := sampleTree()

	if root.IsLeaf() {
		t.Error("root.IsLeaf() = true, want false")
	}
	if got := root.Len(); got != 3 {
		t.Errorf("Len() = %d, want 3", got)
	}
	if got := root.Height(); got != 2 {
		t.Errorf("Height() = %d, want 2", got)
	}
	if got := root.Count(); got != 6 {
		t.Errorf("Count() = %d, want 6", got)
	}
	if got := root.Child(1).Name(); got != "b" {
		t.Errorf("Child(1).Name() = %q, want b", got)
	}
	if root.Child(3) != nil || root.Child(-1) != nil {
		t.Error("Child() out of range should return nil")
	}
	if got := root.Find("b", "b2"); got == nil || got.Value() != 1 {
		t.Errorf("Find(b, b2) = %v", got)
	}
	if got := root.Find("b", "zzz"); got != nil {
		t.Errorf("Find(missing) = %v, want nil", got)
	}
	if got := root.Find(); got != root {
		t.Error("Find() with empty path should return receiver")
	}
}

func TestNode_ChildrenReturnsCopy(t *testing.T) {
	root := sampleTree()
	kids := root.Children()
	kids[0] = nil
	if root.Child(0) == nil {
		t.Error("mutating Children() result changed the tree")
	}
}

func TestNode_WalkOrder(t *testing.T) {
	var names []string
	var depths []int
	sampleTree().Walk(func(n *Node, depth int) {
		names = append(names, n.Name())
		depths = append(depths, depth)
	})

	wantNames := []string{"root", "a", "b", "b1", "b2", "c"}
	wantDepths := []int{0, 1, 1, 2, 2, 1}
	for i := range wantNames {
		if names[i] != wantNames[i] || depths[i] != wantDepths[i] {
			t.Fatalf("Walk() = %v %v, want %v %v", names, depths, wantNames, wantDepths)
		}
	}

	leaves := sampleTree().Leaves()
	if len(leaves) != 4 || leaves[1].Name() != "b1" {
		t.Errorf("Leaves() = %v", leaves)
	}
}

func TestNew_InvalidValue(t *testing.T) {
	for _, v := range []float64{-1, math.NaN(), math.Inf(1)} {
		_, err := New("x", v)
		if err == nil {
			t.Fatalf("New(%v) error = nil, want error", v)
		}
		if !errors.Is(err, errors.ErrCodeInvalidHierarchy) {
			t.Errorf("New(%v) code = %v, want %v", v, errors.GetCode(err), errors.ErrCodeInvalidHierarchy)
		}
		if !stderrors.Is(err, ErrInvalidValue) {
			t.Errorf("New(%v) error = %v, want ErrInvalidValue", v, err)
		}
	}
}

func TestNew_RejectsSharedChild(t *testing.T) {
	shared := MustLeaf("shared", 1)
	if _, err := New("p1", 0, shared); err != nil {
		t.Fatalf("first attach: %v", err)
	}
	_, err := New("p2", 0, shared)
	if !stderrors.Is(err, ErrAlreadyAttached) {
		t.Errorf("second attach error = %v, want ErrAlreadyAttached", err)
	}
}

func TestNew_RejectsDuplicateChild(t *testing.T) {
	c := MustLeaf("c", 1)
	_, err := New("p", 0, c, c)
	if !stderrors.Is(err, ErrAlreadyAttached) {
		t.Errorf("duplicate child error = %v, want ErrAlreadyAttached", err)
	}
	// A failed construction must not attach the child.
	if _, err := New("q", 0, c); err != nil {
		t.Errorf("child should still be attachable: %v", err)
	}
}

func TestNew_FailedClaimReleasesEarlierChildren(t *testing.T) {
	taken := MustLeaf("taken", 1)
	MustNew("owner", 0, taken)
	free := MustLeaf("free", 1)
	if _, err := New("p", 0, free, taken); !stderrors.Is(err, ErrAlreadyAttached) {
		t.Fatalf("error = %v, want ErrAlreadyAttached", err)
	}
	if _, err := New("q", 0, free); err != nil {
		t.Errorf("free child should still be attachable: %v", err)
	}
}

func TestNew_ConcurrentSharedChild(t *testing.T) {
	const parents = 32
	for round := 0; round < 20; round++ {
		shared := MustLeaf("shared", 1)
		var (
			wg   sync.WaitGroup
			mu   sync.Mutex
			wins int
		)
		for i := 0; i < parents; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := New("p", 0, MustLeaf("own", 1), shared)
				if err == nil {
					mu.Lock()
					wins++
					mu.Unlock()
					return
				}
				if !stderrors.Is(err, ErrAlreadyAttached) {
					t.Errorf("error = %v, want ErrAlreadyAttached", err)
				}
			}()
		}
		wg.Wait()
		if wins != 1 {
			t.Fatalf("round %d: %d parents claimed the shared child, want 1", round, wins)
		}
	}
}

func TestNew_RejectsNilChild(t *testing.T) {
	_, err := New("p", 0, MustLeaf("a", 1), nil)
	if !stderrors.Is(err, ErrNilChild) {
		t.Errorf("nil child error = %v, want ErrNilChild", err)
	}
}

func TestMustNew_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustNew() with invalid value did not panic")
		}
	}()
	MustNew("bad", -5)
}
