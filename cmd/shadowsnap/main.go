package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"chosenoffset.com/groundshadow/internal/config"
	"chosenoffset.com/groundshadow/internal/core/shadows"
	"chosenoffset.com/groundshadow/internal/render/lighting"
	"chosenoffset.com/groundshadow/internal/render/raster"
	"chosenoffset.com/groundshadow/internal/world/level"
)

func main() {
	configPath := flag.String("config", "config.json", "path to the JSON config")
	levelDir := flag.String("levels", "data/levels", "directory searched for level names")
	levelArg := flag.String("level", "courtyard", "level name or path to a level file")
	out := flag.String("out", "shadows.png", "output PNG path")
	angle := flag.Float64("angle", 0, "override the configured light angle in degrees")
	debug := flag.Bool("debug", false, "log shadow diagnostics")
	flag.Parse()

	if *debug {
		slog.SetLogLoggerLevel(slog.LevelDebug)
		shadows.SetLogger(slog.Default())
	}

	var angleOverride *float64
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "angle" {
			angleOverride = angle
		}
	})

	if err := run(*configPath, *levelDir, *levelArg, *out, angleOverride); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, levelDir, levelArg, out string, angle *float64) error {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	levelPath, err := level.Resolve(levelDir, levelArg)
	if err != nil {
		return err
	}
	lvl, err := level.LoadLevel(levelPath)
	if err != nil {
		return fmt.Errorf("failed to load level: %w", err)
	}

	canvas, err := raster.NewCanvas(cfg.Window.Width, cfg.Window.Height)
	if err != nil {
		return fmt.Errorf("failed to create canvas: %w", err)
	}

	shadowRenderer, err := lighting.NewShadowRenderer(canvas, cfg.Lighting())
	if err != nil {
		canvas.Destroy()
		return fmt.Errorf("failed to create shadow renderer: %w", err)
	}
	defer shadowRenderer.Destroy()

	if angle != nil {
		shadowRenderer.SetLightAngle(*angle)
	}

	camera := lvl.ClampCamera(lvl.Camera(float64(cfg.Window.Width), float64(cfg.Window.Height)))
	canvas.SetOrigin(camera.X, camera.Y)
	shadowRenderer.ForceUpdate(lvl.Obstacles, camera)

	if err := canvas.SavePNG(out); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}

	stats := shadowRenderer.Stats()
	fmt.Printf("Wrote %s: %d shadows drawn, %d culled, %d failed\n", out, stats.Polygons, stats.Culled, stats.Failed)
	return nil
}
