package game

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// Camera tracks the viewport position for scrolling large levels.
type Camera struct {
	X, Y float64 // Camera position (top-left corner of viewport in world coords)
}

// Message represents an on-screen message that fades over time.
type Message struct {
	Text     string
	TimeLeft float64 // Seconds remaining
	MaxTime  float64 // Initial duration
}

const (
	// angleStep is the smallest eased change worth a shadow recompute
	angleStep = 0.05
	// settleThreshold is where the spring snaps onto its target
	settleThreshold = 0.01
)

// LightControl eases the light angle toward a target with a critically
// damped spring, so held rotate keys sweep the shadows smoothly.
type LightControl struct {
	Target   float64 // Angle the keyboard asks for
	Angle    float64 // Eased angle
	velocity float64
	applied  float64 // Last angle handed to the shadow renderer
	spring   harmonica.Spring
}

// NewLightControl creates a control resting at angle
func NewLightControl(angle float64, fps int, frequency, damping float64) *LightControl {
	return &LightControl{
		Target:  angle,
		Angle:   angle,
		applied: angle,
		spring:  harmonica.NewSpring(harmonica.FPS(fps), frequency, damping),
	}
}

// Nudge moves the target angle by delta degrees
func (c *LightControl) Nudge(delta float64) {
	c.Target += delta
}

// Step advances the spring one tick. It returns the eased angle and whether
// it moved far enough from the last applied angle to be worth redrawing.
func (c *LightControl) Step() (float64, bool) {
	c.Angle, c.velocity = c.spring.Update(c.Angle, c.velocity, c.Target)

	if math.Abs(c.Angle-c.Target) < settleThreshold && math.Abs(c.velocity) < settleThreshold {
		c.Angle = c.Target
		c.velocity = 0
	}

	if c.Angle == c.applied {
		return c.Angle, false
	}
	if math.Abs(c.Angle-c.applied) < angleStep && c.Angle != c.Target {
		return c.Angle, false
	}
	c.applied = c.Angle
	return c.Angle, true
}
