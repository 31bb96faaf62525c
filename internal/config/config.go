// Package config loads the shadow renderer, window and demo settings.
// Values are read from a JSON file on top of the defaults so a file only needs
// to name what it changes.
package config

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/image/colornames"

	"chosenoffset.com/groundshadow/internal/core/shadows"
	"chosenoffset.com/groundshadow/internal/render/lighting"
)

// Config holds everything the binaries read from disk
type Config struct {
	Shadows ShadowConfig `json:"shadows"`
	Window  WindowConfig `json:"window"`
	Demo    DemoConfig   `json:"demo"`
}

// ShadowConfig mirrors lighting.Config in a file-friendly shape
type ShadowConfig struct {
	Enabled        bool        `json:"enabled"`
	Depth          int         `json:"depth"`
	Light          LightConfig `json:"light"`
	Alpha          float64     `json:"alpha"`
	ThrottleMS     int         `json:"throttle_ms"`   // Minimum time between natural recomputes
	CameraBucket   float64     `json:"camera_bucket"` // World units of camera movement that force a recompute
	Overshoot      float64     `json:"overshoot"`
	CullBuffer     float64     `json:"cull_buffer"`
	FallbackLength float64     `json:"fallback_length"`
}

// LightConfig describes the single directional light
type LightConfig struct {
	Angle     float64 `json:"angle"` // Degrees, 90 points straight down the screen
	Color     Color   `json:"color"`
	MaxLength float64 `json:"max_length"`
}

// WindowConfig sets up the demo window
type WindowConfig struct {
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	Title     string `json:"title"`
	Resizable bool   `json:"resizable"`
}

// DemoConfig tunes the interactive controls
type DemoConfig struct {
	PanSpeed        float64 `json:"pan_speed"`    // World units per tick
	RotateSpeed     float64 `json:"rotate_speed"` // Degrees per tick
	SpringFrequency float64 `json:"spring_frequency"`
	SpringDamping   float64 `json:"spring_damping"`
}

// DefaultConfig returns the settings used when no file overrides them
func DefaultConfig() *Config {
	return &Config{
		Shadows: ShadowConfig{
			Enabled: true,
			Depth:   0,
			Light: LightConfig{
				Angle:     shadows.DefaultLightAngle,
				Color:     Color(shadows.DefaultLightColor),
				MaxLength: shadows.DefaultMaxLength,
			},
			Alpha:          lighting.DefaultAlpha,
			ThrottleMS:     int(lighting.DefaultThrottleInterval / time.Millisecond),
			CameraBucket:   lighting.DefaultCameraBucket,
			Overshoot:      shadows.DefaultOvershoot,
			CullBuffer:     shadows.DefaultCullBuffer,
			FallbackLength: shadows.DefaultFallbackLength,
		},
		Window: WindowConfig{
			Width:     1280,
			Height:    720,
			Title:     "Ground Shadows",
			Resizable: true,
		},
		Demo: DemoConfig{
			PanSpeed:        6,
			RotateSpeed:     2,
			SpringFrequency: 6,
			SpringDamping:   1,
		},
	}
}

// LoadConfig loads config from a JSON file. A missing file yields the defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	config := DefaultConfig()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return config, nil
}

// Validate checks the values the binaries cannot work with
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Shadows.ThrottleMS < 0 {
		return fmt.Errorf("throttle_ms must not be negative, got %d", c.Shadows.ThrottleMS)
	}
	if c.Demo.SpringFrequency <= 0 {
		return fmt.Errorf("spring_frequency must be positive, got %v", c.Demo.SpringFrequency)
	}
	if err := c.Lighting().Validate(); err != nil {
		return fmt.Errorf("shadows: %w", err)
	}
	return nil
}

// Lighting converts the shadow section into a renderer configuration
func (c *Config) Lighting() lighting.Config {
	s := c.Shadows
	return lighting.Config{
		Enabled: s.Enabled,
		Depth:   s.Depth,
		Light: shadows.LightConfig{
			Angle:     s.Light.Angle,
			Color:     uint32(s.Light.Color),
			MaxLength: s.Light.MaxLength,
		},
		Tuning: lighting.Tuning{
			Alpha:            s.Alpha,
			ThrottleInterval: time.Duration(s.ThrottleMS) * time.Millisecond,
			CameraBucket:     s.CameraBucket,
			Overshoot:        s.Overshoot,
			CullBuffer:       s.CullBuffer,
			FallbackLength:   s.FallbackLength,
		},
	}
}

// Color is a 24-bit RGB value. In JSON it may be written as "#RRGGBB",
// "0xRRGGBB", an SVG colour name such as "midnightblue", or a plain number.
type Color uint32

// UnmarshalJSON accepts any of the colour notations
func (c *Color) UnmarshalJSON(data []byte) error {
	var num float64
	if err := json.Unmarshal(data, &num); err == nil {
		if num < 0 || num > 0xffffff || num != math.Trunc(num) {
			return fmt.Errorf("colour %v is not a 24-bit RGB value", num)
		}
		*c = Color(num)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("colour must be a string or number: %w", err)
	}
	parsed, err := ParseColor(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// MarshalJSON writes the colour as "#rrggbb"
func (c Color) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c Color) String() string {
	return fmt.Sprintf("#%06x", uint32(c)&0xffffff)
}

// ParseColor parses a hex or named colour
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	lower := strings.ToLower(s)

	var hex string
	switch {
	case strings.HasPrefix(lower, "#"):
		hex = lower[1:]
	case strings.HasPrefix(lower, "0x"):
		hex = lower[2:]
	default:
		named, ok := colornames.Map[lower]
		if !ok {
			return 0, fmt.Errorf("unknown colour %q", s)
		}
		return Color(uint32(named.R)<<16 | uint32(named.G)<<8 | uint32(named.B)), nil
	}

	if len(hex) != 6 {
		return 0, fmt.Errorf("colour %q must have six hex digits", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("failed to parse colour %q: %w", s, err)
	}
	return Color(v), nil
}
