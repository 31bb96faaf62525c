package shadows

import (
	"fmt"
	"math"
)

const (
	// DefaultOvershoot pushes the shadow baseline past the bottom of the view
	DefaultOvershoot = 500.0
	// DefaultCullBuffer grows the camera rectangle before culling
	DefaultCullBuffer = 200.0
	// DefaultFallbackLength is the length of the vertical shadow used when a
	// corner cannot be projected
	DefaultFallbackLength = 200.0

	// axisEpsilon decides when a direction component counts as zero
	axisEpsilon = 1e-9
)

// Calculator turns obstacles into ground-shadow polygons. It holds only
// tuning values; the light is supplied with every call.
type Calculator struct {
	Overshoot      float64
	CullBuffer     float64
	FallbackLength float64
}

// NewCalculator creates a calculator with the default tuning
func NewCalculator() *Calculator {
	return &Calculator{
		Overshoot:      DefaultOvershoot,
		CullBuffer:     DefaultCullBuffer,
		FallbackLength: DefaultFallbackLength,
	}
}

// TargetY returns the baseline every shadow is projected towards
func (c *Calculator) TargetY(camera CameraInfo) float64 {
	return camera.Y + camera.Height + c.Overshoot
}

// Calculate computes one shadow polygon per visible obstacle.
// Polygons whose bounding box misses the buffered viewport are dropped and
// counted in Result.Culled.
func (c *Calculator) Calculate(obstacles []Obstacle, camera CameraInfo, light LightConfig) Result {
	result := Result{Polygons: make([]Polygon, 0, len(obstacles))}
	if len(obstacles) == 0 {
		return result
	}

	targetY := c.TargetY(camera)
	dir := light.Direction()
	straightDown := IsStraightDown(light.Angle)
	view := camera.Rect(c.CullBuffer)

	for i, obs := range obstacles {
		topLeft := obs.TopLeft()
		topRight := obs.TopRight()

		var projLeft, projRight Point
		if straightDown {
			projLeft = Point{X: topLeft.X, Y: targetY}
			projRight = Point{X: topRight.X, Y: targetY}
		} else {
			projLeft = c.projectOrFallback(topLeft, dir, targetY, light.MaxLength)
			projRight = c.projectOrFallback(topRight, dir, targetY, light.MaxLength)
		}

		poly := NewPolygon(obstacleID(obs, i), topLeft, topRight, projRight, projLeft)
		if !Overlaps(poly.Bounds(), view) {
			result.Culled++
			continue
		}
		result.Polygons = append(result.Polygons, poly)
	}

	return result
}

// projectOrFallback projects a corner, substituting a fixed vertical shadow
// when the projection is not usable.
func (c *Calculator) projectOrFallback(p Point, dir Point, targetY, maxLength float64) Point {
	if projected, ok := ProjectPoint(p, dir, targetY, maxLength); ok {
		return projected
	}
	return Point{X: p.X, Y: p.Y + c.FallbackLength}
}

// ProjectPoint moves p along dir until it reaches targetY, never further than
// maxLength. When the cap applies the result lies on the segment between p and
// the baseline hit, so its Y is interpolated rather than equal to targetY.
// ok is false when the projection produced non-finite coordinates.
func ProjectPoint(p Point, dir Point, targetY, maxLength float64) (projected Point, ok bool) {
	switch {
	case math.Abs(dir.X) < axisEpsilon:
		projected = Point{X: p.X, Y: targetY}
	case math.Abs(dir.Y) < axisEpsilon:
		projected = Point{X: p.X + math.Copysign(maxLength, dir.X), Y: p.Y}
	default:
		t := (targetY - p.Y) / dir.Y
		projected = Point{X: p.X + t*dir.X, Y: targetY}

		delta := projected.Sub(p)
		if dist := delta.Length(); dist > maxLength {
			projected = p.Add(delta.Mul(maxLength / dist))
		}
	}

	if !isFinitePoint(projected) {
		return Point{}, false
	}
	return projected, true
}

func obstacleID(obs Obstacle, index int) string {
	if id, ok := obs.Extra["id"].(string); ok && id != "" {
		return id
	}
	return fmt.Sprintf("obstacle-%d", index)
}
