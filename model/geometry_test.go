package model

import (
	"math"
	"testing"
)

// ============================================================================
// Point Tests
// ============================================================================

func TestPointDistance(t *testing.T) {
	tests := []struct {
		name     string
		p1, p2   Point
		expected float64
	}{
		{"same point", Point{0, 0}, Point{0, 0}, 0},
		{"horizontal", Point{0, 0}, Point{3, 0}, 3},
		{"vertical", Point{0, 0}, Point{0, 4}, 4},
		{"diagonal 3-4-5", Point{0, 0}, Point{3, 4}, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.p1.Distance(tt.p2)
			if math.Abs(result-tt.expected) > 0.0001 {
				t.Errorf("Distance() = %v, want %v", result, tt.expected)
			}
		})
	}
}

// ============================================================================
// Rect Basics
// ============================================================================

func TestNewRect(t *testing.T) {
	r := NewRect(10, 20, 110, 70)
	if r.X0 != 10 || r.Y0 != 20 || r.X1 != 110 || r.Y1 != 70 {
		t.Errorf("NewRect() = %+v, want {10, 20, 110, 70}", r)
	}
}

func TestRectDimensions(t *testing.T) {
	r := NewRect(10, 20, 110, 70)

	if r.Width() != 100 {
		t.Errorf("Width() = %v, want 100", r.Width())
	}
	if r.Height() != 50 {
		t.Errorf("Height() = %v, want 50", r.Height())
	}
	if r.Top() != 20 {
		t.Errorf("Top() = %v, want 20", r.Top())
	}
	if r.Bottom() != 70 {
		t.Errorf("Bottom() = %v, want 70", r.Bottom())
	}
	if r.Area() != 5000 {
		t.Errorf("Area() = %v, want 5000", r.Area())
	}

	center := r.Center()
	if center.X != 60 || center.Y != 45 {
		t.Errorf("Center() = %+v, want {60, 45}", center)
	}
}

func TestRectIsEmpty(t *testing.T) {
	tests := []struct {
		name     string
		rect     Rect
		expected bool
	}{
		{"normal", NewRect(0, 0, 10, 10), false},
		{"zero width", NewRect(5, 0, 5, 10), true},
		{"zero height", NewRect(0, 5, 10, 5), true},
		{"zero rect", Rect{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rect.IsEmpty(); got != tt.expected {
				t.Errorf("IsEmpty() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestRectExpand(t *testing.T) {
	r := NewRect(10, 10, 20, 20).Expand(5)
	want := NewRect(5, 5, 25, 25)
	if r != want {
		t.Errorf("Expand(5) = %+v, want %+v", r, want)
	}
}

// ============================================================================
// SameLine
// ============================================================================

func TestRectSameLine(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		tol      float64
		expected bool
	}{
		{"tops aligned", NewRect(0, 0, 10, 10), NewRect(20, 0, 30, 10), 5, true},
		{"bottoms aligned only", NewRect(0, 0, 10, 10), NewRect(20, 6, 30, 10), 5, true},
		{"tops within tolerance", NewRect(0, 0, 10, 10), NewRect(20, 3, 30, 13), 5, true},
		{"exactly at tolerance", NewRect(0, 0, 10, 10), NewRect(20, 5, 30, 15), 5, false},
		{"different bands", NewRect(0, 0, 10, 10), NewRect(20, 50, 30, 60), 5, false},
		{"zero tolerance exact match", NewRect(0, 0, 10, 10), NewRect(20, 0, 30, 10), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.SameLine(tt.b, tt.tol); got != tt.expected {
				t.Errorf("SameLine() = %v, want %v", got, tt.expected)
			}
			if got := tt.b.SameLine(tt.a, tt.tol); got != tt.expected {
				t.Errorf("SameLine() reversed = %v, want %v", got, tt.expected)
			}
		})
	}
}

// ============================================================================
// Containment
// ============================================================================

func TestRectContainsRect(t *testing.T) {
	outer := NewRect(0, 0, 100, 100)

	tests := []struct {
		name     string
		inner    Rect
		tol      float64
		expected bool
	}{
		{"fully inside", NewRect(10, 10, 90, 90), 5, true},
		{"equal rect", NewRect(0, 0, 100, 100), 0, true},
		{"inside with tolerance", NewRect(-3, -3, 103, 103), 5, true},
		{"outside tolerance left", NewRect(-6, 0, 50, 50), 5, false},
		{"outside tolerance bottom", NewRect(0, 0, 50, 106), 5, false},
		{"disjoint", NewRect(200, 200, 300, 300), 5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := outer.ContainsRect(tt.inner, tt.tol); got != tt.expected {
				t.Errorf("ContainsRect() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestRectContainsRectReflexive(t *testing.T) {
	rects := []Rect{
		NewRect(0, 0, 100, 100),
		NewRect(-10, -10, 10, 10),
		NewRect(5, 5, 5, 5),
		NewRect(12.5, 7.25, 80.75, 42.5),
	}

	for _, r := range rects {
		for _, tol := range []float64{0, 1, 5} {
			if !r.ContainsRect(r, tol) {
				t.Errorf("ContainsRect(%+v, %v) not reflexive", r, tol)
			}
		}
	}
}

func TestRectPartiallyContains(t *testing.T) {
	outer := NewRect(10, 10, 100, 30)

	tests := []struct {
		name     string
		inner    Rect
		expected bool
	}{
		{"fully inside", NewRect(20, 15, 90, 25), true},
		{"pokes above the top", NewRect(20, 5, 90, 25), true},
		{"extends below", NewRect(20, 15, 90, 40), false},
		{"overflows left", NewRect(5, 15, 90, 25), false},
		{"overflows right", NewRect(20, 15, 105, 25), false},
		{"equal rect", NewRect(10, 10, 100, 30), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := outer.PartiallyContains(tt.inner); got != tt.expected {
				t.Errorf("PartiallyContains() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestRectContainsLeftEdge(t *testing.T) {
	col := NewRect(50, 0, 80, 10)

	tests := []struct {
		name     string
		word     Rect
		expected bool
	}{
		{"left edge at column start", NewRect(50, 0, 120, 10), true},
		{"left edge inside", NewRect(65, 0, 75, 10), true},
		{"left edge at column end", NewRect(80, 0, 90, 10), true},
		{"left edge past column", NewRect(81, 0, 90, 10), false},
		{"left edge before column", NewRect(49, 0, 75, 10), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := col.ContainsLeftEdge(tt.word); got != tt.expected {
				t.Errorf("ContainsLeftEdge() = %v, want %v", got, tt.expected)
			}
		})
	}
}

// ============================================================================
// Intersection
// ============================================================================

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{"overlapping", NewRect(0, 0, 10, 10), NewRect(5, 5, 15, 15), true},
		{"contained", NewRect(0, 0, 100, 100), NewRect(10, 10, 20, 20), true},
		{"touching edges", NewRect(0, 0, 10, 10), NewRect(10, 0, 20, 10), false},
		{"touching corners", NewRect(0, 0, 10, 10), NewRect(10, 10, 20, 20), false},
		{"disjoint horizontally", NewRect(0, 0, 10, 10), NewRect(20, 0, 30, 10), false},
		{"disjoint vertically", NewRect(0, 0, 10, 10), NewRect(0, 20, 10, 30), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Intersects(tt.b); got != tt.expected {
				t.Errorf("Intersects() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestRectIntersection(t *testing.T) {
	a := NewRect(0, 0, 10, 10)
	b := NewRect(5, 5, 15, 15)

	got := a.Intersection(b)
	want := NewRect(5, 5, 10, 10)
	if got != want {
		t.Errorf("Intersection() = %+v, want %+v", got, want)
	}

	if got := a.Intersection(NewRect(20, 20, 30, 30)); got != (Rect{}) {
		t.Errorf("Intersection() of disjoint rects = %+v, want zero Rect", got)
	}
}

func TestRectIntersectionSymmetric(t *testing.T) {
	pairs := []struct {
		name string
		a, b Rect
	}{
		{"overlapping", NewRect(0, 0, 10, 10), NewRect(5, 5, 15, 15)},
		{"contained", NewRect(0, 0, 100, 100), NewRect(10, 10, 20, 20)},
		{"touching", NewRect(0, 0, 10, 10), NewRect(10, 0, 20, 10)},
		{"disjoint", NewRect(0, 0, 10, 10), NewRect(50, 50, 60, 60)},
	}

	for _, tt := range pairs {
		t.Run(tt.name, func(t *testing.T) {
			if tt.a.Intersects(tt.b) != tt.b.Intersects(tt.a) {
				t.Errorf("Intersects() not symmetric for %+v, %+v", tt.a, tt.b)
			}
			if tt.a.Intersection(tt.b) != tt.b.Intersection(tt.a) {
				t.Errorf("Intersection() not symmetric for %+v, %+v", tt.a, tt.b)
			}
		})
	}
}

func TestRectUnion(t *testing.T) {
	a := NewRect(0, 0, 10, 10)
	b := NewRect(5, 5, 15, 15)

	got := a.Union(b)
	want := NewRect(0, 0, 15, 15)
	if got != want {
		t.Errorf("Union() = %+v, want %+v", got, want)
	}
}
