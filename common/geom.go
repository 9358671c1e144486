package common

import "github.com/jakecoffman/cp"

// Point is a position in world pixels. Y grows downward.
type Point struct {
	X, Y float64
}

func (p Point) vect() cp.Vector {
	return cp.Vector{X: p.X, Y: p.Y}
}

// Rect is an axis-aligned box stored as its top-left (Min) and bottom-right (Max)
// corners. All tests on it are inclusive of the edges.
type Rect struct {
	Min Point
	Max Point
}

// NewRect builds a Rect from a top-left position and a size.
func NewRect(x, y, w, h float64) Rect {
	return Rect{
		Min: Point{X: x, Y: y},
		Max: Point{X: x + w, Y: y + h},
	}
}

func (r Rect) Width() float64  { return r.Max.X - r.Min.X }
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

func (r Rect) BottomLeft() Point  { return Point{X: r.Min.X, Y: r.Max.Y} }
func (r Rect) BottomRight() Point { return Point{X: r.Max.X, Y: r.Max.Y} }

// BB converts r to a chipmunk bounding box. Chipmunk's B/T are only ordering
// labels for the two Y extents, so the downward Y axis maps B to the top edge.
func (r Rect) BB() cp.BB {
	return cp.BB{L: r.Min.X, B: r.Min.Y, R: r.Max.X, T: r.Max.Y}
}

// Contains reports whether p lies inside r or on its edge.
func (r Rect) Contains(p Point) bool {
	return r.BB().ContainsVect(p.vect())
}

// Overlaps reports whether the closed intervals of r and o intersect on both axes.
func (r Rect) Overlaps(o Rect) bool {
	return r.BB().Intersects(o.BB())
}

// Translate returns r moved by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{
		Min: Point{X: r.Min.X + dx, Y: r.Min.Y + dy},
		Max: Point{X: r.Max.X + dx, Y: r.Max.Y + dy},
	}
}
