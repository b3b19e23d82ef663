// Package wordcloud places weighted words on a canvas without overlap.
//
// # Sizing and Order
//
// Font sizes interpolate each weight linearly into [MinFontSize,
// MaxFontSize] (equal weights all get the midpoint). Words are placed in
// descending weight order, ties keeping input order, so the most significant
// words claim the free space first. [Pack] returns placements in that
// processing order.
//
// # Modes
//
//   - [Spiral] walks an Archimedean spiral outward from the canvas center
//     (angle step 0.1 rad, radius 2 per radian)
//   - [Random] tries uniformly random positions from a seeded PCG source
//   - [Circular] tries evenly spaced positions on concentric rings around
//     the center, one font size apart
//   - [Grid] assigns the i-th word to the i-th cell of a row-major grid
//     sized by the largest word
//
// Spiral, random and circular accept the first candidate whose padded box
// lies inside the canvas and overlaps no previously placed padded box.
//
// # Fallback
//
// Every mode is bounded. Random and circular stop after MaxAttempts
// candidates. Spiral stops after MaxAttempts or once the spiral passes the
// canvas half-diagonal, whichever comes later, so a large canvas is
// searched to its corners. When no candidate is found (or the grid runs out
// of cells) the word is centered on the canvas and its
// [Placement] is marked Fallback, so callers can drop or shrink it.
//
// # Measuring
//
// Text boxes come from a [Measurer]. The default [RuneWidthMeasurer] uses
// terminal display width (East Asian wide characters count double) times
// the font size times an average glyph aspect of 0.6.
package wordcloud
