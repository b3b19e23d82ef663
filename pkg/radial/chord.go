package radial

import (
	"strconv"

	"github.com/matzehuels/chartcore/pkg/errors"
)

// Ribbon is one chord connection from group Source to group Target.
type Ribbon struct {
	Source    int     `json:"source"`
	Target    int     `json:"target"`
	Value     float64 `json:"value"`
	SourceArc Span    `json:"source_arc"`
	TargetArc Span    `json:"target_arc"`
}

// ChordLayout is the result of [Chord].
type ChordLayout struct {
	Groups  []Segment `json:"groups"`
	Ribbons []Ribbon  `json:"ribbons"`
}

// Chord lays out a square flow matrix where m[i][j] is the flow from group i
// to group j.
//
// Group i's total is its row sum plus its column sum, and group arcs are
// allocated with [Partition] (keys are the group indices). Every non-zero
// entry, visited in row-major order, yields a [Ribbon] whose source sub-arc
// is cut from group i at its running offset and whose target sub-arc is cut
// from group j at its running offset. Connections therefore stack without
// overlap and exactly fill each group's arc.
//
// A matrix that is not square or has negative or non-finite entries returns
// an error with code [errors.ErrCodeInvalidMatrix]. An empty or all-zero
// matrix returns an empty layout.
func Chord(m [][]float64, span Span, padding float64) (ChordLayout, error) {
	if err := errors.ValidateMatrix(m, true); err != nil {
		return ChordLayout{}, err
	}
	layout := ChordLayout{Groups: []Segment{}, Ribbons: []Ribbon{}}

	n := len(m)
	items := make([]Item, n)
	for i := range m {
		items[i].Key = strconv.Itoa(i)
		for j := range m {
			items[i].Value += m[i][j] + m[j][i]
		}
	}
	groups := Partition(items, span, padding)
	if len(groups) == 0 {
		return layout, nil
	}
	layout.Groups = groups

	offset := make([]float64, n)
	unit := make([]float64, n)
	for i, g := range groups {
		offset[i] = g.StartAngle
		if g.Value > 0 {
			unit[i] = g.Sweep() / g.Value
		}
	}
	take := func(group int, v float64) Span {
		s := Span{Start: offset[group], End: offset[group] + v*unit[group]}
		offset[group] = s.End
		return s
	}

	for i := range m {
		for j, v := range m[i] {
			if v == 0 {
				continue
			}
			src := take(i, v)
			dst := take(j, v)
			layout.Ribbons = append(layout.Ribbons, Ribbon{
				Source:    i,
				Target:    j,
				Value:     v,
				SourceArc: src,
				TargetArc: dst,
			})
		}
	}
	return layout, nil
}
