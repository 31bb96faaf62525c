// Package lighting draws ground shadows for a single directional light onto a
// persistent drawing surface, recomputing them only when the light, the
// camera or the clock make the current drawing stale.
package lighting

import (
	"errors"
	"fmt"
	"time"

	"chosenoffset.com/groundshadow/internal/core/shadows"
	"chosenoffset.com/groundshadow/internal/render"
)

// ShadowRenderer owns a drawing surface and keeps the shadows on it current.
//
// It is driven by the host once per frame through Update. It is not safe for
// concurrent use: configuration setters and Update must run on the same
// goroutine or be serialized by the caller.
type ShadowRenderer struct {
	surface    render.Surface
	calculator *shadows.Calculator
	config     Config
	throttle   throttle
	state      State
	stats      Stats
	result     shadows.Result
	now        func() time.Time
	rendering  bool // Held while polygons are calculated and drawn
	destroyed  bool
}

// NewShadowRenderer creates a renderer for surface. The surface scroll factor
// is fixed to (1, 1) and its depth set from the configuration.
func NewShadowRenderer(surface render.Surface, config Config) (*ShadowRenderer, error) {
	if surface == nil {
		return nil, errors.New("shadow renderer needs a drawing surface")
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shadow config: %w", err)
	}

	calc := shadows.NewCalculator()
	calc.Overshoot = config.Tuning.Overshoot
	calc.CullBuffer = config.Tuning.CullBuffer
	calc.FallbackLength = config.Tuning.FallbackLength

	r := &ShadowRenderer{
		surface:    surface,
		calculator: calc,
		config:     config,
		state:      StateStale,
		now:        time.Now,
	}
	if !config.Enabled {
		r.state = StateDisabled
	}

	surface.SetScrollFactor(1, 1)
	surface.SetDepth(config.Depth)
	return r, nil
}

// SetClock replaces the time source used by the throttle
func (r *ShadowRenderer) SetClock(now func() time.Time) {
	r.now = now
}

// Config returns a copy of the current configuration
func (r *ShadowRenderer) Config() Config {
	return r.config
}

// State returns where the renderer is in its recompute cycle
func (r *ShadowRenderer) State() State {
	return r.state
}

// Stats returns counters for the most recent recompute
func (r *ShadowRenderer) Stats() Stats {
	return r.stats
}

// InShadow reports whether pt is covered by a shadow currently on the surface
func (r *ShadowRenderer) InShadow(pt shadows.Point) bool {
	return r.result.InShadow(pt)
}

// Update redraws shadows for this frame if they are stale. Calls within the
// throttle interval with a camera in the same bucket are skipped.
func (r *ShadowRenderer) Update(obstacles []shadows.Obstacle, camera shadows.CameraInfo) {
	if r.destroyed {
		return
	}
	if r.rendering {
		shadows.Logger().Warn("shadow update re-entered during draw, ignoring")
		return
	}
	defer func() {
		if p := recover(); p != nil {
			r.rendering = false
			shadows.Logger().Error("shadow update aborted", "panic", p)
			r.invalidate()
			r.clearSurface()
		}
	}()

	if !r.config.Enabled || len(obstacles) == 0 {
		r.invalidate()
		r.clearSurface()
		return
	}

	key := cameraKey(camera, r.config.Tuning.CameraBucket)
	now := r.now()
	if r.state != StateStale && !r.throttle.due(now, key, r.config.Tuning.ThrottleInterval) {
		return
	}
	r.throttle.mark(now, key)

	normalized := make([]shadows.Obstacle, len(obstacles))
	for i, obs := range obstacles {
		normalized[i] = shadows.NormalizeObstacle(obs)
	}

	r.rendering = true
	r.state = StateRendering
	r.renderShadows(normalized, camera)
	r.rendering = false

	// A setter called from inside the draw leaves the state stale or disabled
	switch r.state {
	case StateRendering:
		r.state = StateIdle
	case StateDisabled:
		r.clearSurface()
	}
}

// ForceUpdate recomputes regardless of the throttle. Use it after discrete
// events such as a layout change or a resize.
func (r *ShadowRenderer) ForceUpdate(obstacles []shadows.Obstacle, camera shadows.CameraInfo) {
	if r.destroyed {
		return
	}
	if r.rendering {
		shadows.Logger().Warn("shadow force update re-entered during draw, ignoring")
		return
	}
	r.invalidate()
	r.Update(obstacles, camera)
}

// renderShadows clears the surface and draws one filled path per polygon.
// A failing polygon is logged and skipped; the others are still drawn.
func (r *ShadowRenderer) renderShadows(obstacles []shadows.Obstacle, camera shadows.CameraInfo) {
	r.surface.Clear()

	result := r.calculator.Calculate(obstacles, camera, r.config.Light)
	r.result = result
	r.stats.Recomputes++
	r.stats.Polygons = 0
	r.stats.Culled = result.Culled
	r.stats.Failed = 0

	if len(result.Polygons) == 0 {
		shadows.Logger().Debug("no shadow polygons this frame",
			"obstacles", len(obstacles), "culled", result.Culled)
		return
	}

	r.surface.SetFillStyle(r.config.Light.Color, r.config.Tuning.Alpha)
	for i, poly := range result.Polygons {
		if err := r.fillPolygon(poly); err != nil {
			r.stats.Failed++
			shadows.Logger().Warn("failed to draw shadow polygon",
				"index", i, "id", poly.ID, "points", poly.Points, "error", err)
			continue
		}
		r.stats.Polygons++
	}
}

// fillPolygon issues one independent path for poly. A panic from the surface
// is turned into an error so it only costs this polygon.
func (r *ShadowRenderer) fillPolygon(poly shadows.Polygon) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("surface panicked: %v", p)
		}
	}()

	r.surface.BeginPath()
	first := poly.Vertex(0)
	r.surface.MoveTo(first.X, first.Y)
	for i := 1; i < shadows.PolygonSize/2; i++ {
		v := poly.Vertex(i)
		r.surface.LineTo(v.X, v.Y)
	}
	r.surface.ClosePath()
	return r.surface.FillPath()
}

// SetLightAngle changes the light direction; the next Update recomputes
func (r *ShadowRenderer) SetLightAngle(angle float64) {
	if !isFinite(angle) {
		shadows.Logger().Warn("ignoring non-finite light angle", "angle", angle)
		return
	}
	r.config.Light.Angle = angle
	r.invalidate()
}

// UpdateLightConfig merges the set fields of patch into the light. Only a
// colour change forces the next Update to recompute; angle and max length
// changes take effect on the next natural recompute.
func (r *ShadowRenderer) UpdateLightConfig(patch LightPatch) error {
	next := r.config.Light
	if patch.Angle != nil {
		if !isFinite(*patch.Angle) {
			return fmt.Errorf("light angle must be finite, got %v", *patch.Angle)
		}
		next.Angle = *patch.Angle
	}
	if patch.Color != nil {
		next.Color = *patch.Color
	}
	if patch.MaxLength != nil {
		if !validMaxLength(*patch.MaxLength) {
			return fmt.Errorf("light max length must be positive and finite, got %v", *patch.MaxLength)
		}
		next.MaxLength = *patch.MaxLength
	}

	colorChanged := next.Color != r.config.Light.Color
	r.config.Light = next
	if colorChanged {
		r.invalidate()
	}
	return nil
}

// SetEnabled switches shadows on or off. Disabling clears the surface at once.
func (r *ShadowRenderer) SetEnabled(enabled bool) {
	if r.destroyed {
		return
	}
	r.config.Enabled = enabled
	r.invalidate()
	if !enabled {
		r.clearSurface()
	}
}

// SetDepth changes the draw order of the surface without recomputing
func (r *ShadowRenderer) SetDepth(depth int) {
	r.config.Depth = depth
	if r.destroyed {
		return
	}
	r.surface.SetDepth(depth)
}

// Destroy releases the drawing surface. It is safe to call more than once.
func (r *ShadowRenderer) Destroy() {
	if r == nil || r.destroyed {
		return
	}
	r.destroyed = true
	r.result = shadows.Result{}
	if r.surface != nil {
		r.surface.Destroy()
		r.surface = nil
	}
}

// clearSurface empties the surface, logging instead of propagating a panic
func (r *ShadowRenderer) clearSurface() {
	r.result = shadows.Result{}
	defer func() {
		if p := recover(); p != nil {
			shadows.Logger().Error("failed to clear shadow surface", "panic", p)
		}
	}()
	r.surface.Clear()
}

// invalidate forgets the throttle state so the next Update recomputes
func (r *ShadowRenderer) invalidate() {
	r.throttle.reset()
	if r.config.Enabled {
		r.state = StateStale
	} else {
		r.state = StateDisabled
	}
}
