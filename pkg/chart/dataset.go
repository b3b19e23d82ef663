package chart

import (
	"github.com/matzehuels/chartcore/pkg/errors"
	"github.com/matzehuels/chartcore/pkg/geom"
	"github.com/matzehuels/chartcore/pkg/hierarchy"
	"github.com/matzehuels/chartcore/pkg/radial"
	"github.com/matzehuels/chartcore/pkg/sankey"
	"github.com/matzehuels/chartcore/pkg/wordcloud"
)

// DataPoint is a labelled value. Color is carried through to the layout
// untouched.
type DataPoint struct {
	Label string  `json:"label" toml:"label"`
	Value float64 `json:"value" toml:"value"`
	Color string  `json:"color,omitempty" toml:"color,omitempty"`
}

// Gauge is the input of a gauge chart.
type Gauge struct {
	Value float64 `json:"value" toml:"value"`
	Min   float64 `json:"min" toml:"min"`
	Max   float64 `json:"max" toml:"max"`
}

// Dataset is the input union. Kind selects which of the remaining fields
// are read:
//
//	stats                 Values, optionally XY for regression
//	density, histogram    Values
//	treemap, sunburst     Root
//	pie                   Points
//	gauge                 Gauge
//	chord                 Matrix, optionally Labels
//	sankey                Flows
//	wordcloud             Words
//	scatter               XY
type Dataset struct {
	Kind  Kind   `json:"kind" toml:"kind"`
	Title string `json:"title,omitempty" toml:"title,omitempty"`

	Values []float64           `json:"values,omitempty" toml:"values,omitempty"`
	XY     []geom.Point        `json:"xy,omitempty" toml:"xy,omitempty"`
	Points []DataPoint         `json:"points,omitempty" toml:"points,omitempty"`
	Root   *hierarchy.Spec     `json:"root,omitempty" toml:"root,omitempty"`
	Gauge  *Gauge              `json:"gauge,omitempty" toml:"gauge,omitempty"`
	Matrix [][]float64         `json:"matrix,omitempty" toml:"matrix,omitempty"`
	Labels []string            `json:"labels,omitempty" toml:"labels,omitempty"`
	Flows  []sankey.Connection `json:"flows,omitempty" toml:"flows,omitempty"`
	Words  []wordcloud.Word    `json:"words,omitempty" toml:"words,omitempty"`
}

// Validate checks that the kind is known and that the fields it reads are
// present. Value-level checks (negative weights, cycles, ragged matrices)
// are left to the engine packages.
func (d *Dataset) Validate() error {
	if _, err := ParseKind(string(d.Kind)); err != nil {
		return err
	}
	missing := func(field string) error {
		return errors.New(errors.ErrCodeInvalidInput, "%s dataset requires %q", d.Kind, field)
	}

	switch d.Kind {
	case KindTreemap, KindSunburst:
		if d.Root == nil {
			return missing("root")
		}
	case KindPie:
		if len(d.Points) == 0 {
			return missing("points")
		}
	case KindGauge:
		if d.Gauge == nil {
			return missing("gauge")
		}
	case KindChord:
		if len(d.Matrix) == 0 {
			return missing("matrix")
		}
		if len(d.Labels) > 0 && len(d.Labels) != len(d.Matrix) {
			return errors.New(errors.ErrCodeInvalidMatrix,
				"chord dataset has %d labels for %d groups", len(d.Labels), len(d.Matrix))
		}
	case KindSankey:
		if len(d.Flows) == 0 {
			return missing("flows")
		}
	case KindWordCloud:
		if len(d.Words) == 0 {
			return missing("words")
		}
	case KindScatter:
		if len(d.XY) == 0 {
			return missing("xy")
		}
	}
	return nil
}

// Len returns the number of input items the dataset's kind reads.
func (d *Dataset) Len() int {
	switch d.Kind {
	case KindStats, KindDensity, KindHistogram:
		return len(d.Values)
	case KindTreemap, KindSunburst:
		if d.Root == nil {
			return 0
		}
		return countSpec(*d.Root)
	case KindPie:
		return len(d.Points)
	case KindGauge:
		return 1
	case KindChord:
		return len(d.Matrix)
	case KindSankey:
		return len(d.Flows)
	case KindWordCloud:
		return len(d.Words)
	case KindScatter:
		return len(d.XY)
	}
	return 0
}

func countSpec(s hierarchy.Spec) int {
	n := 1
	for _, c := range s.Children {
		n += countSpec(c)
	}
	return n
}

// Hierarchy builds the validated tree of a treemap or sunburst dataset.
func (d *Dataset) Hierarchy() (*hierarchy.Node, error) {
	if d.Root == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "dataset has no root")
	}
	return hierarchy.FromSpec(*d.Root)
}

// Items converts the pie points into partition items.
func (d *Dataset) Items() []radial.Item {
	items := make([]radial.Item, len(d.Points))
	for i, p := range d.Points {
		items[i] = radial.Item{Key: p.Label, Value: p.Value}
	}
	return items
}

// Xs returns the x coordinates of the XY pairs.
func (d *Dataset) Xs() []float64 {
	xs := make([]float64, len(d.XY))
	for i, p := range d.XY {
		xs[i] = p.X
	}
	return xs
}

// Ys returns the y coordinates of the XY pairs.
func (d *Dataset) Ys() []float64 {
	ys := make([]float64, len(d.XY))
	for i, p := range d.XY {
		ys[i] = p.Y
	}
	return ys
}
