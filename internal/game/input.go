package game

import (
	"fmt"

	"github.com/jaffob/plumbus3d-web/internal/input"
	"github.com/jaffob/plumbus3d-web/internal/view"
)

// InputHandler handles all user input
type InputHandler struct {
	game *Viewer
}

// NewInputHandler creates a new input handler
func NewInputHandler(game *Viewer) *InputHandler {
	return &InputHandler{game: game}
}

// HandleInput processes all input for the current tick
func (ih *InputHandler) HandleInput() {
	for _, a := range input.JustPressed() {
		ih.game.ApplyAction(a)
	}
	ih.game.Step(input.Read(ih.game.speeds()))
}

func (v *Viewer) speeds() input.Speeds {
	return input.Speeds{
		Move:   v.config.GetMoveSpeed(),
		Strafe: v.config.GetStrafeSpeed(),
		Rotate: v.config.GetRotSpeed(),
		FOV:    v.config.GetFOVChangeSpeed(),
	}
}

// Step advances the camera by one tick of motion. Walls stop the camera
// when collision is enabled.
func (v *Viewer) Step(m input.Motion) {
	lo, hi := v.config.GetFOVRange()
	dt := 1 / float64(v.config.GetTPS())
	next := input.Apply(v.camera, m, dt, lo, hi)
	next.Pos = v.collisionSystem.Resolve(v.camera.Pos, next.Pos)
	v.camera = next
}

// ApplyAction runs a one-shot command.
func (v *Viewer) ApplyAction(a input.Action) {
	switch a {
	case input.ToggleSimpleDistance:
		v.opts.SimpleDistance = !v.opts.SimpleDistance
		fmt.Printf("[View] Simple distance: %t\n", v.opts.SimpleDistance)
	case input.CycleCorrection:
		v.opts.Correction = v.opts.Correction.Next()
		fmt.Printf("[View] Endpoint correction: %s\n", v.opts.Correction)
	case input.ToggleForwardModel:
		if v.opts.Forward == view.ForwardWeighted {
			v.opts.Forward = view.ForwardDot
		} else {
			v.opts.Forward = view.ForwardWeighted
		}
		fmt.Printf("[View] Forward model: %s\n", v.opts.Forward)
	case input.ToggleHUD:
		v.showHUD = !v.showHUD
	case input.ToggleOverhead:
		v.showOverhead = !v.showOverhead
	case input.ResetCamera:
		v.camera = v.config.GetCamera()
		v.monitor.Reset()
	}
}
