package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// GameLoop manages the update and render cycle
type GameLoop struct {
	game         *Viewer
	inputHandler *InputHandler
	renderer     *Renderer
	ui           *UISystem
}

// NewGameLoop creates a new game loop manager
func NewGameLoop(game *Viewer) *GameLoop {
	return &GameLoop{
		game:         game,
		inputHandler: NewInputHandler(game),
		renderer:     NewRenderer(game),
		ui:           NewUISystem(game),
	}
}

// Update applies one tick of input to the camera and render options
func (gl *GameLoop) Update() error {
	gl.inputHandler.HandleInput()
	gl.maybeLogPerfDrop()
	return nil
}

// Draw renders one frame
func (gl *GameLoop) Draw(screen *ebiten.Image) {
	frameTimer := gl.game.monitor.StartFrame()
	defer frameTimer.EndFrame()

	// Render the first-person view
	gl.renderer.RenderFirstPersonView(screen)

	// Draw overlays
	gl.ui.Draw(screen)
}

// Layout returns the screen dimensions
func (gl *GameLoop) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return gl.game.config.GetScreenWidth(), gl.game.config.GetScreenHeight()
}
