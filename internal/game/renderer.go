package game

import (
	"github.com/jaffob/plumbus3d-web/internal/canvas"
	"github.com/jaffob/plumbus3d-web/internal/view"

	"github.com/hajimehoshi/ebiten/v2"
)

// Renderer draws the first-person view
type Renderer struct {
	game   *Viewer
	canvas *canvas.Screen // Created on first draw
}

// NewRenderer creates a new renderer
func NewRenderer(game *Viewer) *Renderer {
	return &Renderer{game: game}
}

// RenderFirstPersonView builds the frame for the current camera and
// rasterizes it onto screen.
func (r *Renderer) RenderFirstPersonView(screen *ebiten.Image) {
	if r.canvas == nil {
		r.canvas = canvas.NewScreen()
	}

	f := r.BuildFrame()
	r.canvas.Target(screen)
	f.Draw(r.canvas)
}

// BuildFrame runs a render pass over the scene and records its statistics.
func (r *Renderer) BuildFrame() *view.Frame {
	var f *view.Frame
	r.game.monitor.Measure(func() {
		f = view.Render(r.game.camera, r.game.scene.Walls, r.game.opts)
	})
	r.game.monitor.RecordWalls(len(f.Quads), f.Culled)
	r.game.lastFrame = f
	return f
}
