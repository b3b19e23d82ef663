package hierarchy

import "fmt"

// Spec is the serializable form of a tree, as found in dataset files.
type Spec struct {
	Name     string  `json:"name" toml:"name"`
	Value    float64 `json:"value,omitempty" toml:"value,omitempty"`
	Children []Spec  `json:"children,omitempty" toml:"children,omitempty"`
}

// FromSpec builds and validates a tree from s. Errors are prefixed with the
// slash-separated path of the offending node.
func FromSpec(s Spec) (*Node, error) {
	return fromSpec(s, s.Name)
}

func fromSpec(s Spec, path string) (*Node, error) {
	children := make([]*Node, 0, len(s.Children))
	for _, cs := range s.Children {
		c, err := fromSpec(cs, path+"/"+cs.Name)
		if err != nil {
			return nil, err
		}
		children = append(children, c)
	}
	n, err := New(s.Name, s.Value, children...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return n, nil
}

// ToSpec returns the serializable form of the subtree rooted at n.
func (n *Node) ToSpec() Spec {
	s := Spec{Name: n.name, Value: n.value}
	for _, c := range n.children {
		s.Children = append(s.Children, c.ToSpec())
	}
	return s
}
