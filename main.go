package main

import (
	"errors"
	"flag"
	"io/fs"
	"log"
	"os"

	"github.com/jaffob/plumbus3d-web/internal/config"
	"github.com/jaffob/plumbus3d-web/internal/game"
	"github.com/jaffob/plumbus3d-web/internal/scene"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	flag.Parse()

	// Load configuration
	cfg := config.Default()
	if _, err := os.Stat(*configFlag); errors.Is(err, fs.ErrNotExist) {
		log.Printf("Warning: %s not found, using built-in defaults", *configFlag)
	} else {
		cfg = config.MustLoadConfig(*configFlag)
	}

	// Load the scene
	s := scene.Default(cfg.SceneDefaults())
	if *sceneFlag != "" {
		loaded, err := scene.Load(*sceneFlag, cfg.SceneDefaults())
		if err != nil {
			log.Fatal(err)
		}
		s = loaded
	}

	// Set window properties from config
	ebiten.SetWindowSize(cfg.GetScreenWidth(), cfg.GetScreenHeight())
	ebiten.SetWindowTitle(cfg.Display.WindowTitle)
	if cfg.Display.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	ebiten.SetTPS(cfg.GetTPS())

	g := game.NewViewer(cfg, s)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
