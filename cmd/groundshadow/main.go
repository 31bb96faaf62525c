package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"

	"chosenoffset.com/groundshadow/internal/config"
	"chosenoffset.com/groundshadow/internal/core/shadows"
	"chosenoffset.com/groundshadow/internal/game"
	ebitenrender "chosenoffset.com/groundshadow/internal/render/ebiten"
	"chosenoffset.com/groundshadow/internal/render/lighting"
	"chosenoffset.com/groundshadow/internal/world/level"
)

func main() {
	configPath := flag.String("config", "config.json", "path to the JSON config")
	levelDir := flag.String("levels", "data/levels", "directory searched for level names")
	levelArg := flag.String("level", "courtyard", "level name or path to a level file")
	list := flag.Bool("list", false, "list the available levels and exit")
	debug := flag.Bool("debug", false, "log shadow diagnostics")
	flag.Parse()

	if *debug {
		slog.SetLogLoggerLevel(slog.LevelDebug)
		shadows.SetLogger(slog.Default())
	}

	if *list {
		levels, err := level.ScanDirectory(*levelDir)
		if err != nil {
			log.Fatalf("Failed to scan levels: %v", err)
		}
		for _, entry := range levels {
			fmt.Printf("%s\t%s\n", entry.Name, entry.Path)
		}
		return
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	levelPath, err := level.Resolve(*levelDir, *levelArg)
	if err != nil {
		log.Fatalf("Failed to find level: %v", err)
	}
	lvl, err := level.LoadLevel(levelPath)
	if err != nil {
		log.Fatalf("Failed to load level: %v", err)
	}
	log.Printf("Loaded level %q with %d obstacles", lvl.Data.Name, len(lvl.Obstacles))

	// Initialize the renderer backend (ebiten)
	renderer := ebitenrender.NewRenderer()
	inputMgr := ebitenrender.NewInputManager()
	engine := ebitenrender.NewEngine()

	stage := ebitenrender.NewStage()
	shadowRenderer, err := lighting.NewShadowRenderer(stage.NewLayer(), cfg.Lighting())
	if err != nil {
		log.Fatalf("Failed to create shadow renderer: %v", err)
	}
	defer shadowRenderer.Destroy()

	g := game.NewGame(lvl, shadowRenderer, stage, renderer, inputMgr, cfg)

	// Set up the window
	engine.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	engine.SetWindowTitle(cfg.Window.Title)
	engine.SetWindowResizable(cfg.Window.Resizable)

	log.Println("Starting demo...")
	if err := engine.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
