// Package scatter aggregates large point sets for scatter plots.
//
// Above a size threshold, [Cluster] partitions the points' bounding box into
// a GridSize x GridSize grid and replaces the points of every occupied cell
// with a single [ClusterPoint] at their centroid, weighted by their count.
// At or below the threshold every point is returned as its own cluster of
// weight 1. Either way the weights sum to the number of input points.
package scatter

import (
	"math"

	"github.com/matzehuels/chartcore/pkg/errors"
	"github.com/matzehuels/chartcore/pkg/geom"
)

// Clustering defaults.
const (
	DefaultThreshold = 1000
	DefaultGridSize  = 50
)

// Options configures [Cluster]. Zero values select the defaults.
type Options struct {
	// Threshold is the largest point count returned unclustered.
	Threshold int `json:"threshold,omitempty" toml:"threshold,omitempty"`
	// GridSize is the number of cells along each axis.
	GridSize int `json:"grid_size,omitempty" toml:"grid_size,omitempty"`
}

func (o Options) withDefaults() Options {
	if o.Threshold <= 0 {
		o.Threshold = DefaultThreshold
	}
	if o.GridSize <= 0 {
		o.GridSize = DefaultGridSize
	}
	return o
}

// ClusterPoint is the representative of one or more input points.
type ClusterPoint struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Weight int     `json:"weight"`
}

// Bounds returns the smallest rectangle containing every point.
// It returns the zero Rect for no points.
func Bounds(points []geom.Point) geom.Rect {
	if len(points) == 0 {
		return geom.Rect{}
	}
	minX, minY := points[0].X, points[0].Y
	maxX, maxY := minX, minY
	for _, p := range points[1:] {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	return geom.Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

// Cluster aggregates points on a grid when there are more than
// opts.Threshold of them.
//
// Points on the maximum edge of the bounding box fall into the last cell and
// a zero extent on an axis maps every point to cell 0 on that axis. Clusters
// are returned in the order their cells were first occupied. A non-finite
// coordinate returns an error with code [errors.ErrCodeInvalidInput].
func Cluster(points []geom.Point, opts Options) ([]ClusterPoint, error) {
	for i, p := range points {
		if !p.IsFinite() {
			return nil, errors.New(errors.ErrCodeInvalidInput, "point %d has non-finite coordinates (%g, %g)", i, p.X, p.Y)
		}
	}
	opts = opts.withDefaults()

	if len(points) <= opts.Threshold {
		out := make([]ClusterPoint, len(points))
		for i, p := range points {
			out[i] = ClusterPoint{X: p.X, Y: p.Y, Weight: 1}
		}
		return out, nil
	}

	bounds := Bounds(points)
	type cell struct {
		sumX, sumY float64
		count      int
	}
	index := make(map[int]int)
	var cells []cell

	for _, p := range points {
		key := gridIndex(p.Y-bounds.Y, bounds.H, opts.GridSize)*opts.GridSize +
			gridIndex(p.X-bounds.X, bounds.W, opts.GridSize)
		i, ok := index[key]
		if !ok {
			i = len(cells)
			index[key] = i
			cells = append(cells, cell{})
		}
		cells[i].sumX += p.X
		cells[i].sumY += p.Y
		cells[i].count++
	}

	out := make([]ClusterPoint, len(cells))
	for i, c := range cells {
		n := float64(c.count)
		out[i] = ClusterPoint{X: c.sumX / n, Y: c.sumY / n, Weight: c.count}
	}
	return out, nil
}

// gridIndex maps an offset within [0, extent] to a cell in [0, size).
func gridIndex(offset, extent float64, size int) int {
	if extent <= 0 {
		return 0
	}
	i := int(offset / extent * float64(size))
	return min(max(i, 0), size-1)
}
