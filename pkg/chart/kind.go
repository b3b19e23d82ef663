package chart

import (
	"github.com/matzehuels/chartcore/pkg/errors"
)

// Kind discriminates datasets and layouts.
type Kind string

// Dataset kinds.
const (
	KindStats     Kind = "stats"
	KindDensity   Kind = "density"
	KindHistogram Kind = "histogram"
	KindTreemap   Kind = "treemap"
	KindSunburst  Kind = "sunburst"
	KindPie       Kind = "pie"
	KindGauge     Kind = "gauge"
	KindChord     Kind = "chord"
	KindSankey    Kind = "sankey"
	KindWordCloud Kind = "wordcloud"
	KindScatter   Kind = "scatter"
)

var kinds = []Kind{
	KindStats, KindDensity, KindHistogram,
	KindTreemap, KindSunburst, KindPie, KindGauge, KindChord,
	KindSankey, KindWordCloud, KindScatter,
}

// Kinds returns every supported kind in a stable order.
func Kinds() []Kind {
	return append([]Kind(nil), kinds...)
}

// ParseKind returns the Kind named by s.
func ParseKind(s string) (Kind, error) {
	for _, k := range kinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", errors.New(errors.ErrCodeInvalidKind, "unknown dataset kind %q", s)
}

// IsStatistical reports whether the kind produces statistics rather than
// canvas geometry. Statistical kinds ignore the canvas size.
func (k Kind) IsStatistical() bool {
	switch k {
	case KindStats, KindDensity, KindHistogram:
		return true
	}
	return false
}

// IsHierarchical reports whether the kind reads a tree from Dataset.Root.
func (k Kind) IsHierarchical() bool {
	return k == KindTreemap || k == KindSunburst
}
