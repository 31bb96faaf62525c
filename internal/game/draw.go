package game

import (
	"fmt"
	"image/color"

	"chosenoffset.com/groundshadow/internal/render"
)

var (
	backgroundColor = color.RGBA{88, 120, 72, 255}
	obstacleColor   = color.RGBA{140, 110, 80, 255}
	probeLitColor   = color.RGBA{255, 230, 120, 255}
	probeShadeColor = color.RGBA{80, 100, 200, 255}
)

// Draw renders the game to the screen. Shadows sit on the ground, so they are
// composited before the obstacles that cast them.
func (g *Game) Draw(screen render.Image) {
	screen.Fill(backgroundColor)

	if g.Stage != nil {
		g.Stage.Draw(screen, g.Camera.X, g.Camera.Y)
	}
	g.drawObstacles(screen)
	g.drawProbe(screen)
	g.drawHUD(screen)
	g.drawUI(screen)
}

func (g *Game) drawObstacles(screen render.Image) {
	view := g.CameraInfo()
	for _, obs := range g.Level.Obstacles {
		// Skip obstacles entirely off screen
		if obs.X+obs.Width < view.X || obs.X > view.X+view.Width ||
			obs.Y+obs.Height < view.Y || obs.Y > view.Y+view.Height {
			continue
		}
		g.Renderer.FillRect(screen,
			float32(obs.X-g.Camera.X), float32(obs.Y-g.Camera.Y),
			float32(obs.Width), float32(obs.Height), obstacleColor)
	}
}

// drawProbe marks the screen centre, tinted by whether it is shaded
func (g *Game) drawProbe(screen render.Image) {
	clr := probeLitColor
	if g.Shadows.InShadow(g.Probe()) {
		clr = probeShadeColor
	}
	g.Renderer.FillCircle(screen, float32(g.ScreenWidth)/2, float32(g.ScreenHeight)/2, 6, clr)
}

func (g *Game) drawHUD(screen render.Image) {
	cfg := g.Shadows.Config()
	stats := g.Shadows.Stats()
	lines := []string{
		fmt.Sprintf("%s  camera (%.0f, %.0f)", g.Level.Data.Name, g.Camera.X, g.Camera.Y),
		fmt.Sprintf("light %.1f deg -> %.1f  max length %.0f", g.Light.Angle, g.Light.Target, cfg.Light.MaxLength),
		fmt.Sprintf("shadows %s  drawn %d  culled %d  failed %d  recomputes %d",
			g.Shadows.State(), stats.Polygons, stats.Culled, stats.Failed, stats.Recomputes),
		"WASD pan  Q/E rotate  L toggle  +/- length  Esc quit",
	}
	for i, line := range lines {
		g.Renderer.DrawText(screen, line, 8, 8+i*16)
	}
}

func (g *Game) drawUI(screen render.Image) {
	y := g.ScreenHeight - 24
	for i := len(g.Messages) - 1; i >= 0; i-- {
		g.Renderer.DrawText(screen, g.Messages[i].Text, 8, y)
		y -= 16
	}
}
