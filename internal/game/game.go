package game

import (
	"fmt"
	"log"

	"chosenoffset.com/groundshadow/internal/config"
	"chosenoffset.com/groundshadow/internal/core/shadows"
	"chosenoffset.com/groundshadow/internal/render"
	"chosenoffset.com/groundshadow/internal/render/lighting"
	"chosenoffset.com/groundshadow/internal/world/level"
)

const (
	ticksPerSecond = 60
	messageSeconds = 3.0
	// maxLengthStep is how far +/- move the shadow length cap
	maxLengthStep = 100.0
	minMaxLength  = 100.0
)

// Compositor draws retained layers onto the screen
type Compositor interface {
	Draw(dst render.Image, cameraX, cameraY float64)
}

// Game drives the shadow renderer from keyboard input once per tick.
type Game struct {
	ScreenWidth  int
	ScreenHeight int
	Level        *level.Level
	Camera       Camera
	Renderer     render.Renderer
	InputMgr     render.InputManager
	Shadows      *lighting.ShadowRenderer
	Stage        Compositor
	Light        *LightControl
	Controls     config.DemoConfig

	// UI state
	Messages []Message

	// Debug
	FrameCount int
}

// NewGame creates a game showing lvl through a screen of the given size
func NewGame(lvl *level.Level, shadowRenderer *lighting.ShadowRenderer, stage Compositor,
	renderer render.Renderer, inputMgr render.InputManager, cfg *config.Config) *Game {
	g := &Game{
		ScreenWidth:  cfg.Window.Width,
		ScreenHeight: cfg.Window.Height,
		Level:        lvl,
		Camera:       Camera{X: lvl.Data.Camera.X, Y: lvl.Data.Camera.Y},
		Renderer:     renderer,
		InputMgr:     inputMgr,
		Shadows:      shadowRenderer,
		Stage:        stage,
		Controls:     cfg.Demo,
		Light: NewLightControl(shadowRenderer.Config().Light.Angle, ticksPerSecond,
			cfg.Demo.SpringFrequency, cfg.Demo.SpringDamping),
	}
	g.clampCamera()
	return g
}

// Update handles input and keeps the shadows current.
func (g *Game) Update() error {
	dt := 1.0 / float64(ticksPerSecond)
	g.updateMessages(dt)

	if g.InputMgr.IsKeyJustPressed(render.KeyEscape) {
		return render.ErrTerminate
	}

	g.updateCamera()
	g.updateLight()

	g.Shadows.Update(g.Level.Obstacles, g.CameraInfo())
	g.FrameCount++
	return nil
}

// Layout returns the game's logical screen size. A size change forces the
// shadows to be recomputed for the new viewport.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.ScreenWidth || outsideHeight != g.ScreenHeight {
		g.ScreenWidth = outsideWidth
		g.ScreenHeight = outsideHeight
		g.clampCamera()
		g.Shadows.ForceUpdate(g.Level.Obstacles, g.CameraInfo())
	}
	return g.ScreenWidth, g.ScreenHeight
}

// CameraInfo describes the current viewport in world units
func (g *Game) CameraInfo() shadows.CameraInfo {
	return shadows.CameraInfo{
		X:      g.Camera.X,
		Y:      g.Camera.Y,
		Width:  float64(g.ScreenWidth),
		Height: float64(g.ScreenHeight),
	}
}

// Probe is the world point under the screen centre
func (g *Game) Probe() shadows.Point {
	return shadows.Point{
		X: g.Camera.X + float64(g.ScreenWidth)/2,
		Y: g.Camera.Y + float64(g.ScreenHeight)/2,
	}
}

func (g *Game) updateCamera() {
	var dx, dy float64
	if g.InputMgr.IsKeyPressed(render.KeyW) {
		dy -= g.Controls.PanSpeed
	}
	if g.InputMgr.IsKeyPressed(render.KeyS) {
		dy += g.Controls.PanSpeed
	}
	if g.InputMgr.IsKeyPressed(render.KeyA) {
		dx -= g.Controls.PanSpeed
	}
	if g.InputMgr.IsKeyPressed(render.KeyD) {
		dx += g.Controls.PanSpeed
	}
	if dx == 0 && dy == 0 {
		return
	}
	g.Camera.X += dx
	g.Camera.Y += dy
	g.clampCamera()
}

func (g *Game) clampCamera() {
	clamped := g.Level.ClampCamera(g.CameraInfo())
	g.Camera.X = clamped.X
	g.Camera.Y = clamped.Y
}

func (g *Game) updateLight() {
	if g.InputMgr.IsKeyPressed(render.KeyQ) {
		g.Light.Nudge(-g.Controls.RotateSpeed)
	}
	if g.InputMgr.IsKeyPressed(render.KeyE) {
		g.Light.Nudge(g.Controls.RotateSpeed)
	}
	if angle, changed := g.Light.Step(); changed {
		g.Shadows.SetLightAngle(angle)
	}

	if g.InputMgr.IsKeyJustPressed(render.KeyL) {
		enabled := !g.Shadows.Config().Enabled
		g.Shadows.SetEnabled(enabled)
		if enabled {
			g.ShowMessage("Shadows on")
		} else {
			g.ShowMessage("Shadows off")
		}
	}

	if g.InputMgr.IsKeyJustPressed(render.KeyEqual) {
		g.adjustMaxLength(maxLengthStep)
	}
	if g.InputMgr.IsKeyJustPressed(render.KeyMinus) {
		g.adjustMaxLength(-maxLengthStep)
	}
}

func (g *Game) adjustMaxLength(delta float64) {
	maxLength := g.Shadows.Config().Light.MaxLength + delta
	if maxLength < minMaxLength {
		maxLength = minMaxLength
	}
	if err := g.Shadows.UpdateLightConfig(lighting.LightPatch{MaxLength: &maxLength}); err != nil {
		g.ShowMessage(fmt.Sprintf("Cannot change shadow length: %v", err))
		return
	}
	g.ShowMessage(fmt.Sprintf("Shadow length %.0f", maxLength))
}

func (g *Game) updateMessages(dt float64) {
	var active []Message
	for _, msg := range g.Messages {
		msg.TimeLeft -= dt
		if msg.TimeLeft > 0 {
			active = append(active, msg)
		}
	}
	g.Messages = active
}

// ShowMessage adds a new message to be displayed on screen.
func (g *Game) ShowMessage(text string) {
	g.Messages = append(g.Messages, Message{
		Text:     text,
		TimeLeft: messageSeconds,
		MaxTime:  messageSeconds,
	})

	log.Printf("Message: %s", text)
}
