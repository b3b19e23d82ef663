package hierarchy

import (
	"strings"
	"testing"

	"github.com/matzehuels/chartcore/pkg/errors"
)

func TestFromSpec(t *testing.T) {
	s := Spec{
		Name: "root",
		Children: []Spec{
			{Name: "a", Value: 2},
			{Name: "b", Children: []Spec{{Name: "b1", Value: 5}}},
		},
	}

	root, err := FromSpec(s)
	if err != nil {
		t.Fatalf("FromSpec() error: %v", err)
	}
	if got := root.TotalValue(); got != 7 {
		t.Errorf("TotalValue() = %v, want 7", got)
	}
	if got := root.ToSpec(); got.Children[1].Children[0].Name != "b1" {
		t.Errorf("ToSpec() lost structure: %+v", got)
	}
}

func TestFromSpec_ErrorNamesPath(t *testing.T) {
	s := Spec{
		Name: "root",
		Children: []Spec{
			{Name: "b", Children: []Spec{{Name: "b2", Value: -1}}},
		},
	}

	_, err := FromSpec(s)
	if err == nil {
		t.Fatal("FromSpec() error = nil, want error")
	}
	if !strings.HasPrefix(err.Error(), "root/b/b2:") {
		t.Errorf("error %q does not start with path root/b/b2", err)
	}
	if !errors.Is(err, errors.ErrCodeInvalidHierarchy) {
		t.Errorf("GetCode() = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidHierarchy)
	}
}
