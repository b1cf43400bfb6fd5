package model

import "math"

// Point represents a 2D point in page coordinates
type Point struct {
	X, Y float64
}

// Distance calculates the Euclidean distance to another point
func (p Point) Distance(other Point) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Rect represents an axis-aligned rectangle in page coordinates with the
// Y axis increasing downward. Callers must supply well-formed rectangles
// (X1 >= X0, Y1 >= Y0); coordinates are never validated at runtime.
type Rect struct {
	X0 float64 // Left
	Y0 float64 // Top
	X1 float64 // Right
	Y1 float64 // Bottom
}

// NewRect creates a rectangle from edge coordinates
func NewRect(x0, y0, x1, y1 float64) Rect {
	return Rect{X0: x0, Y0: y0, X1: x1, Y1: y1}
}

// Width returns the horizontal extent
func (r Rect) Width() float64 {
	return r.X1 - r.X0
}

// Height returns the vertical extent
func (r Rect) Height() float64 {
	return r.Y1 - r.Y0
}

// Top returns the top edge Y coordinate (smallest Y)
func (r Rect) Top() float64 {
	return r.Y0
}

// Bottom returns the bottom edge Y coordinate (largest Y)
func (r Rect) Bottom() float64 {
	return r.Y1
}

// Center returns the center point
func (r Rect) Center() Point {
	return Point{
		X: (r.X0 + r.X1) / 2,
		Y: (r.Y0 + r.Y1) / 2,
	}
}

// Area returns the area of the rectangle
func (r Rect) Area() float64 {
	return r.Width() * r.Height()
}

// IsEmpty returns true if the rectangle has no positive extent on either axis
func (r Rect) IsEmpty() bool {
	return r.Width() <= 0 || r.Height() <= 0
}

// Expand grows the rectangle by a margin on all four sides
func (r Rect) Expand(margin float64) Rect {
	return Rect{
		X0: r.X0 - margin,
		Y0: r.Y0 - margin,
		X1: r.X1 + margin,
		Y1: r.Y1 + margin,
	}
}

// SameLine reports whether two rectangles sit on the same visual line.
// Two rectangles qualify when either their top edges or their bottom edges
// are within tol of each other, which tolerates baseline jitter between
// fragments rendered on one line.
func (r Rect) SameLine(other Rect, tol float64) bool {
	return math.Abs(r.Y0-other.Y0) < tol || math.Abs(r.Y1-other.Y1) < tol
}

// ContainsRect reports whether inner lies entirely within r expanded by tol
// on every side.
func (r Rect) ContainsRect(inner Rect, tol float64) bool {
	outer := r.Expand(tol)
	return inner.X0 >= outer.X0 && inner.X1 <= outer.X1 &&
		inner.Y0 >= outer.Y0 && inner.Y1 <= outer.Y1
}

// PartiallyContains reports whether inner is horizontally enclosed by r with
// its bottom edge at or above r's bottom. There is no top-edge comparison: a
// rectangle that starts above r still matches as long as its bottom sits
// within r. Used to catch header-duplicate rows whose text overflows the top
// of a header cell.
func (r Rect) PartiallyContains(inner Rect) bool {
	return r.X0 <= inner.X0 && r.X1 >= inner.X1 && r.Y1 >= inner.Y1
}

// ContainsLeftEdge reports whether word's left edge falls within r's
// horizontal range. Column membership is decided by the left edge alone,
// not by full overlap.
func (r Rect) ContainsLeftEdge(word Rect) bool {
	return r.X0 <= word.X0 && word.X0 <= r.X1
}

// Intersects reports whether two rectangles overlap with positive extent on
// both axes. Rectangles that merely touch at an edge do not intersect.
func (r Rect) Intersects(other Rect) bool {
	return r.X0 < other.X1 && other.X0 < r.X1 &&
		r.Y0 < other.Y1 && other.Y0 < r.Y1
}

// Intersection returns the overlap of two rectangles, or the zero Rect when
// they do not intersect.
func (r Rect) Intersection(other Rect) Rect {
	if !r.Intersects(other) {
		return Rect{}
	}

	return Rect{
		X0: math.Max(r.X0, other.X0),
		Y0: math.Max(r.Y0, other.Y0),
		X1: math.Min(r.X1, other.X1),
		Y1: math.Min(r.Y1, other.Y1),
	}
}

// Union returns the smallest rectangle covering both rectangles
func (r Rect) Union(other Rect) Rect {
	return Rect{
		X0: math.Min(r.X0, other.X0),
		Y0: math.Min(r.Y0, other.Y0),
		X1: math.Max(r.X1, other.X1),
		Y1: math.Max(r.Y1, other.Y1),
	}
}
