package lighting

import (
	"fmt"
	"math"
	"time"

	"chosenoffset.com/groundshadow/internal/core/shadows"
)

const (
	// DefaultAlpha is the opacity shadows are filled with
	DefaultAlpha = 0.4
	// DefaultThrottleInterval limits natural recomputes to about 30 per second
	DefaultThrottleInterval = 33 * time.Millisecond
	// DefaultCameraBucket is the camera movement (world units) that counts as perceptible
	DefaultCameraBucket = 20.0
)

// Tuning holds the knobs that rarely change at runtime
type Tuning struct {
	Alpha            float64
	ThrottleInterval time.Duration
	CameraBucket     float64
	Overshoot        float64
	CullBuffer       float64
	FallbackLength   float64
}

// Config is the externally visible renderer configuration
type Config struct {
	Enabled bool
	Depth   int // Draw-order key handed to the surface
	Light   shadows.LightConfig
	Tuning  Tuning
}

// DefaultConfig returns the configuration used when nothing is overridden
func DefaultConfig() Config {
	return Config{
		Enabled: true,
		Depth:   0,
		Light:   shadows.DefaultLight(),
		Tuning: Tuning{
			Alpha:            DefaultAlpha,
			ThrottleInterval: DefaultThrottleInterval,
			CameraBucket:     DefaultCameraBucket,
			Overshoot:        shadows.DefaultOvershoot,
			CullBuffer:       shadows.DefaultCullBuffer,
			FallbackLength:   shadows.DefaultFallbackLength,
		},
	}
}

// Validate checks the invariants the renderer relies on
func (c Config) Validate() error {
	if !validMaxLength(c.Light.MaxLength) {
		return fmt.Errorf("light max length must be positive and finite, got %v", c.Light.MaxLength)
	}
	if !isFinite(c.Light.Angle) {
		return fmt.Errorf("light angle must be finite, got %v", c.Light.Angle)
	}
	if !(c.Tuning.Alpha >= 0 && c.Tuning.Alpha <= 1) {
		return fmt.Errorf("shadow alpha must be within [0, 1], got %v", c.Tuning.Alpha)
	}
	if c.Tuning.ThrottleInterval < 0 {
		return fmt.Errorf("throttle interval must not be negative, got %v", c.Tuning.ThrottleInterval)
	}
	if !(c.Tuning.CameraBucket > 0) || math.IsInf(c.Tuning.CameraBucket, 0) {
		return fmt.Errorf("camera bucket must be positive, got %v", c.Tuning.CameraBucket)
	}
	return nil
}

func validMaxLength(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// LightPatch is a partial light update; nil fields are left unchanged
type LightPatch struct {
	Angle     *float64
	Color     *uint32
	MaxLength *float64
}

// State is the renderer's position in its recompute cycle
type State int

const (
	// StateStale means the next Update recomputes
	StateStale State = iota
	// StateIdle means the drawn shadows are current
	StateIdle
	// StateRendering is held while polygons are calculated and drawn
	StateRendering
	// StateDisabled means shadows are switched off
	StateDisabled
)

func (s State) String() string {
	switch s {
	case StateStale:
		return "stale"
	case StateIdle:
		return "idle"
	case StateRendering:
		return "rendering"
	case StateDisabled:
		return "disabled"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Stats describes the most recent recompute
type Stats struct {
	Recomputes int // Total recomputes since construction
	Polygons   int // Polygons drawn in the last recompute
	Culled     int // Obstacles culled in the last recompute
	Failed     int // Polygons whose draw failed in the last recompute
}
