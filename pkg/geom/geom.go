// Package geom provides the small set of planar primitives shared by the
// layout packages: points, axis-aligned rectangles and polar conversion.
//
// Rectangles use screen coordinates: (X, Y) is the top-left corner and Y
// grows downward. All methods take value receivers and return new values.
package geom

import "math"

// Point is a position in the plane.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Distance returns the Euclidean distance between p and q.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// IsFinite reports whether both coordinates are finite.
func (p Point) IsFinite() bool {
	return finite(p.X) && finite(p.Y)
}

// Polar returns the point at radius r and angle (radians) around center.
// Angle 0 points along +X and angles increase clockwise on screen.
func Polar(center Point, r, angle float64) Point {
	return Point{
		X: center.X + r*math.Cos(angle),
		Y: center.Y + r*math.Sin(angle),
	}
}

// Rect is an axis-aligned rectangle with top-left corner (X, Y).
type Rect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"width"`
	H float64 `json:"height"`
}

// RectAt returns the rectangle of size w x h centered on c.
func RectAt(c Point, w, h float64) Rect {
	return Rect{X: c.X - w/2, Y: c.Y - h/2, W: w, H: h}
}

// MaxX returns the right edge.
func (r Rect) MaxX() float64 { return r.X + r.W }

// MaxY returns the bottom edge.
func (r Rect) MaxY() float64 { return r.Y + r.H }

// Area returns W*H, or 0 for an empty rectangle.
func (r Rect) Area() float64 {
	if r.Empty() {
		return 0
	}
	return r.W * r.H
}

// Empty reports whether r has no positive area.
func (r Rect) Empty() bool {
	return !(r.W > 0 && r.H > 0)
}

// Center returns the midpoint of r.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// ShortSide returns min(W, H).
func (r Rect) ShortSide() float64 {
	return math.Min(r.W, r.H)
}

// Inset shrinks r by d on every side. The result never has negative size;
// an over-inset rectangle collapses to its center.
func (r Rect) Inset(d float64) Rect {
	out := Rect{X: r.X + d, Y: r.Y + d, W: r.W - 2*d, H: r.H - 2*d}
	if out.W < 0 {
		out.X, out.W = r.X+r.W/2, 0
	}
	if out.H < 0 {
		out.Y, out.H = r.Y+r.H/2, 0
	}
	return out
}

// Expand grows r by d on every side.
func (r Rect) Expand(d float64) Rect {
	return r.Inset(-d)
}

// Overlaps reports whether r and o share interior area. Rectangles that
// only touch along an edge do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.MaxX() && o.X < r.MaxX() &&
		r.Y < o.MaxY() && o.Y < r.MaxY()
}

// Contains reports whether o lies entirely within r (edges inclusive).
func (r Rect) Contains(o Rect) bool {
	return o.X >= r.X && o.Y >= r.Y && o.MaxX() <= r.MaxX() && o.MaxY() <= r.MaxY()
}

// ContainsPoint reports whether p lies within r (edges inclusive).
func (r Rect) ContainsPoint(p Point) bool {
	return p.X >= r.X && p.X <= r.MaxX() && p.Y >= r.Y && p.Y <= r.MaxY()
}

// ContainsWithin is like Contains but tolerates tol of floating point drift.
func (r Rect) ContainsWithin(o Rect, tol float64) bool {
	return r.Expand(tol).Contains(o)
}

// IsFinite reports whether every field of r is finite.
func (r Rect) IsFinite() bool {
	return finite(r.X) && finite(r.Y) && finite(r.W) && finite(r.H)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
