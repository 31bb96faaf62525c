package shadows

import (
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Point represents a 2D point in world space (Y grows downward)
type Point = vec.Vec2

// CameraInfo is a snapshot of the visible world rectangle for one frame
type CameraInfo struct {
	X, Y          float64 // World position of the top-left corner
	Width, Height float64
}

// Rect returns the camera rectangle grown by margin on every side
func (c CameraInfo) Rect(margin float64) rect.Rect {
	return rect.Rect{
		LLx: c.X - margin,
		LLy: c.Y - margin,
		URx: c.X + c.Width + margin,
		URy: c.Y + c.Height + margin,
	}
}

// Obstacle is an axis-aligned rectangle that casts a ground shadow
type Obstacle struct {
	X, Y          float64
	Width, Height float64

	// Extra holds caller fields that are carried through untouched
	Extra map[string]any
}

// TopLeft returns the top-left corner of the obstacle
func (o Obstacle) TopLeft() Point {
	return Point{X: o.X, Y: o.Y}
}

// TopRight returns the top-right corner of the obstacle
func (o Obstacle) TopRight() Point {
	return Point{X: o.X + o.Width, Y: o.Y}
}

// PolygonSize is the number of coordinates in every shadow polygon
const PolygonSize = 8

// Polygon is a shadow quad stored as four (x, y) pairs in clockwise order:
// source top-left, source top-right, projected right, projected left.
type Polygon struct {
	Points [PolygonSize]float64
	ID     string // Diagnostic identifier, usually the obstacle id
}

// NewPolygon builds a polygon from its four vertices
func NewPolygon(id string, topLeft, topRight, projectedRight, projectedLeft Point) Polygon {
	return Polygon{
		ID: id,
		Points: [PolygonSize]float64{
			topLeft.X, topLeft.Y,
			topRight.X, topRight.Y,
			projectedRight.X, projectedRight.Y,
			projectedLeft.X, projectedLeft.Y,
		},
	}
}

// Vertex returns the i-th vertex (0..3)
func (p Polygon) Vertex(i int) Point {
	return Point{X: p.Points[i*2], Y: p.Points[i*2+1]}
}

// Vertices returns all four vertices in drawing order
func (p Polygon) Vertices() []Point {
	return []Point{p.Vertex(0), p.Vertex(1), p.Vertex(2), p.Vertex(3)}
}

// Bounds returns the axis-aligned bounding box of the polygon
func (p Polygon) Bounds() rect.Rect {
	return Bounds(p.Vertices())
}

// Contains reports whether pt lies inside the shadow
func (p Polygon) Contains(pt Point) bool {
	return PointInPolygon(pt, p.Vertices())
}

// Result is the output of one shadow calculation
type Result struct {
	Polygons []Polygon
	Culled   int // Obstacles dropped because their shadow missed the viewport
}

// InShadow reports whether pt is covered by any polygon in the result
func (r Result) InShadow(pt Point) bool {
	for _, poly := range r.Polygons {
		if poly.Contains(pt) {
			return true
		}
	}
	return false
}
