// Package radial allocates angular spans for pie, gauge, sunburst and chord
// layouts.
//
// # Partitioning
//
// [Partition] is the shared primitive. Given ordered items and a [Span], the
// available sweep is the span minus padding between every pair of adjacent
// segments:
//
//	available = |end - start| - padding*(count-1)
//
// Each item receives available*value/total, and segments are placed in input
// order, each one starting a padding gap after the previous one ended.
// Consequently the segments' sweeps plus the padding always add up to the
// span. Reversed spans (end < start) are filled in the negative direction.
//
// # Layout Families
//
//   - [Pie] partitions a full circle (or a custom span) among data items
//   - [Gauge] splits a span into a filled and a remaining segment
//   - [Sunburst] applies Partition recursively over a hierarchy
//   - [Chord] builds group arcs from a square flow matrix and allocates one
//     sub-arc per connection at each end, stacking connections at a shared
//     group with a running offset
//
// Angles are in radians. Angle 0 points along +X and angles grow clockwise
// in screen coordinates (see [geom.Polar]).
package radial
