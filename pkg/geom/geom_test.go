package geom

import (
	"math"
	"testing"
)

func TestRect_Area(t *testing.T) {
	tests := []struct {
		name string
		r    Rect
		want float64
	}{
		{"unit", Rect{W: 1, H: 1}, 1},
		{"offset", Rect{X: 5, Y: 5, W: 4, H: 3}, 12},
		{"zero width", Rect{W: 0, H: 3}, 0},
		{"negative", Rect{W: -2, H: 3}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.Area(); got != tt.want {
				t.Errorf("Area() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRect_Inset(t *testing.T) {
	r := Rect{X: 0, Y: 0, W: 10, H: 6}

	got := r.Inset(1)
	want := Rect{X: 1, Y: 1, W: 8, H: 4}
	if got != want {
		t.Errorf("Inset(1) = %+v, want %+v", got, want)
	}

	collapsed := r.Inset(4)
	if collapsed.H != 0 || collapsed.Y != 3 {
		t.Errorf("Inset(4) = %+v, want height collapsed at center", collapsed)
	}
	if collapsed.W != 2 {
		t.Errorf("Inset(4).W = %v, want 2", collapsed.W)
	}
}

func TestRect_Overlaps(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}
	tests := []struct {
		name string
		b    Rect
		want bool
	}{
		{"inside", Rect{X: 2, Y: 2, W: 2, H: 2}, true},
		{"partial", Rect{X: 5, Y: 5, W: 10, H: 10}, true},
		{"touching edge", Rect{X: 10, Y: 0, W: 5, H: 5}, false},
		{"disjoint", Rect{X: 20, Y: 20, W: 1, H: 1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Overlaps(tt.b); got != tt.want {
				t.Errorf("Overlaps() = %v, want %v", got, tt.want)
			}
			if got := tt.b.Overlaps(a); got != tt.want {
				t.Errorf("Overlaps() reversed = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRect_Contains(t *testing.T) {
	outer := Rect{W: 10, H: 10}
	if !outer.Contains(Rect{X: 0, Y: 0, W: 10, H: 10}) {
		t.Error("Contains(self) = false, want true")
	}
	if outer.Contains(Rect{X: 5, Y: 5, W: 6, H: 1}) {
		t.Error("Contains(overflowing) = true, want false")
	}
	if !outer.ContainsWithin(Rect{X: 0, Y: 0, W: 10.0000001, H: 10}, 1e-6) {
		t.Error("ContainsWithin() should tolerate drift")
	}
	if !outer.ContainsPoint(Point{X: 10, Y: 0}) {
		t.Error("ContainsPoint(corner) = false, want true")
	}
}

func TestRectAt(t *testing.T) {
	r := RectAt(Point{X: 50, Y: 40}, 20, 10)
	if r.X != 40 || r.Y != 35 {
		t.Errorf("RectAt() = %+v", r)
	}
	if c := r.Center(); c.X != 50 || c.Y != 40 {
		t.Errorf("Center() = %+v, want (50, 40)", c)
	}
}

func TestPolar(t *testing.T) {
	p := Polar(Point{X: 1, Y: 1}, 2, math.Pi/2)
	if math.Abs(p.X-1) > 1e-12 || math.Abs(p.Y-3) > 1e-12 {
		t.Errorf("Polar() = %+v, want (1, 3)", p)
	}
	if d := (Point{}).Distance(Point{X: 3, Y: 4}); d != 5 {
		t.Errorf("Distance() = %v, want 5", d)
	}
}

func TestIsFinite(t *testing.T) {
	if (Point{X: math.NaN()}).IsFinite() {
		t.Error("Point with NaN reported finite")
	}
	if (Rect{W: math.Inf(1)}).IsFinite() {
		t.Error("Rect with Inf reported finite")
	}
}
