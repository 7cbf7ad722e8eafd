// Package game runs the first-person viewer inside the ebiten game loop.
package game

import (
	"time"

	"github.com/jaffob/plumbus3d-web/internal/collision"
	"github.com/jaffob/plumbus3d-web/internal/config"
	"github.com/jaffob/plumbus3d-web/internal/monitoring"
	"github.com/jaffob/plumbus3d-web/internal/scene"
	"github.com/jaffob/plumbus3d-web/internal/view"

	"github.com/hajimehoshi/ebiten/v2"
)

// Viewer is the ebiten.Game for a loaded scene. The camera is only changed
// in Update; Draw renders the snapshot Update left behind.
type Viewer struct {
	config  *config.Config
	scene   *scene.Scene
	camera  view.Camera
	opts    view.Options
	monitor *monitoring.FrameMonitor

	collisionSystem *collision.CollisionSystem

	gameLoop *GameLoop

	showHUD      bool
	showOverhead bool

	// Last rendered frame, for the HUD and the overhead map
	lastFrame *view.Frame

	// Performance logging
	perfLowFpsSince time.Time
	perfLastPerfLog time.Time
}

// NewViewer creates a viewer over s using cfg.
func NewViewer(cfg *config.Config, s *scene.Scene) *Viewer {
	v := &Viewer{
		config:  cfg,
		scene:   s,
		camera:  cfg.GetCamera(),
		opts:    cfg.RenderOptions(),
		monitor: monitoring.NewFrameMonitor(),

		collisionSystem: collision.NewCollisionSystem(s.Walls, cfg.GetCollisionRadius()),
		showHUD:         true,
		showOverhead:    cfg.Overhead.Enabled,
	}
	v.gameLoop = NewGameLoop(v)
	return v
}

// Camera returns the current camera.
func (v *Viewer) Camera() view.Camera {
	return v.camera
}

// Options returns the current render options.
func (v *Viewer) Options() view.Options {
	return v.opts
}

func (v *Viewer) Update() error {
	return v.gameLoop.Update()
}

func (v *Viewer) Draw(screen *ebiten.Image) {
	v.gameLoop.Draw(screen)
}

func (v *Viewer) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return v.gameLoop.Layout(outsideWidth, outsideHeight)
}
