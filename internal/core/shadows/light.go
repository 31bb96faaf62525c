package shadows

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

const (
	// DefaultLightAngle points the light straight down the screen
	DefaultLightAngle = 90.0
	// DefaultMaxLength caps how far a corner may be projected
	DefaultMaxLength = 1000.0
	// DefaultLightColor is the packed RGB fill colour of shadows
	DefaultLightColor uint32 = 0x000000

	// straightDownTolerance is how close to 90° an angle must be to skip vector projection
	straightDownTolerance = 1.0
)

// LightConfig describes the single directional light
type LightConfig struct {
	Angle     float64 // Degrees, 0 = right, 90 = down
	Color     uint32  // Packed 0xRRGGBB
	MaxLength float64 // Projection cap, always > 0
}

// DefaultLight returns the light used when nothing is configured
func DefaultLight() LightConfig {
	return LightConfig{
		Angle:     DefaultLightAngle,
		Color:     DefaultLightColor,
		MaxLength: DefaultMaxLength,
	}
}

// Direction returns the unit vector of the light
func (l LightConfig) Direction() vec.Vec2 {
	return Direction(l.Angle)
}

// Direction converts an angle in degrees into a unit vector, Y pointing down
func Direction(angle float64) vec.Vec2 {
	rad := angle * math.Pi / 180
	return vec.Vec2{X: math.Cos(rad), Y: math.Sin(rad)}
}

// NormalizeAngle wraps an angle into [0, 360)
func NormalizeAngle(angle float64) float64 {
	a := math.Mod(angle, 360)
	if a < 0 {
		a += 360
	}
	return a
}

// IsStraightDown reports whether the light is close enough to vertical that
// corners are dropped straight onto the baseline.
func IsStraightDown(angle float64) bool {
	return math.Abs(NormalizeAngle(angle)-90) <= straightDownTolerance
}

// ColorComponents splits a packed colour into r, g, b in the 0..1 range
func ColorComponents(rgb uint32) (r, g, b float64) {
	r = float64((rgb>>16)&0xff) / 255
	g = float64((rgb>>8)&0xff) / 255
	b = float64(rgb&0xff) / 255
	return r, g, b
}
