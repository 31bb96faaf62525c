package shadows

import (
	"math"

	"seehuhn.de/go/geom/rect"
)

// PointInPolygon tests if a point is inside a polygon using ray casting algorithm
func PointInPolygon(point Point, polygon []Point) bool {
	inside := false
	j := len(polygon) - 1

	for i := 0; i < len(polygon); i++ {
		xi, yi := polygon[i].X, polygon[i].Y
		xj, yj := polygon[j].X, polygon[j].Y

		if ((yi > point.Y) != (yj > point.Y)) &&
			(point.X < (xj-xi)*(point.Y-yi)/(yj-yi)+xi) {
			inside = !inside
		}
		j = i
	}

	return inside
}

// Distance calculates the Euclidean distance between two points
func Distance(a, b Point) float64 {
	return b.Sub(a).Length()
}

// Bounds returns the smallest rectangle holding all points.
// LL is the minimum corner and UR the maximum corner in world space.
func Bounds(points []Point) rect.Rect {
	if len(points) == 0 {
		return rect.Rect{}
	}
	r := rect.Rect{
		LLx: math.Inf(1), LLy: math.Inf(1),
		URx: math.Inf(-1), URy: math.Inf(-1),
	}
	for _, p := range points {
		r.LLx = math.Min(r.LLx, p.X)
		r.LLy = math.Min(r.LLy, p.Y)
		r.URx = math.Max(r.URx, p.X)
		r.URy = math.Max(r.URy, p.Y)
	}
	return r
}

// Overlaps reports whether two rectangles intersect. Touching edges count.
func Overlaps(a, b rect.Rect) bool {
	return a.LLx <= b.URx && a.URx >= b.LLx &&
		a.LLy <= b.URy && a.URy >= b.LLy
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func isFinitePoint(p Point) bool {
	return isFinite(p.X) && isFinite(p.Y)
}
