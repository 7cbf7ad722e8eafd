// Package input turns keyboard state into camera motion and mode toggles.
package input

import (
	"math"

	"github.com/jaffob/plumbus3d-web/internal/geometry"
	"github.com/jaffob/plumbus3d-web/internal/view"

	"github.com/hajimehoshi/ebiten/v2"
)

// Motion is the continuous input of one tick, as rates per second.
type Motion struct {
	Rotate    float64 // Radians per second, positive turns right
	Forward   float64 // World units per second
	Strafe    float64 // World units per second, positive to the right
	FOVChange float64 // Radians per second, positive widens
}

// Speeds are the full-deflection rates of each motion axis.
type Speeds struct {
	Move   float64
	Strafe float64
	Rotate float64
	FOV    float64
}

// KeyState reports whether a key is held.
type KeyState func(ebiten.Key) bool

// Read samples the keyboard.
func Read(s Speeds) Motion {
	return ReadKeys(ebiten.IsKeyPressed, s)
}

// ReadKeys builds a Motion from held keys. Opposing keys cancel.
func ReadKeys(pressed KeyState, s Speeds) Motion {
	var m Motion

	// Rotation
	if pressed(ebiten.KeyLeft) || pressed(ebiten.KeyA) {
		m.Rotate -= s.Rotate
	}
	if pressed(ebiten.KeyRight) || pressed(ebiten.KeyD) {
		m.Rotate += s.Rotate
	}

	// Forward/backward movement
	if pressed(ebiten.KeyUp) || pressed(ebiten.KeyW) {
		m.Forward += s.Move
	}
	if pressed(ebiten.KeyDown) || pressed(ebiten.KeyS) {
		m.Forward -= s.Move
	}

	// Strafe left/right
	if pressed(ebiten.KeyQ) {
		m.Strafe -= s.Strafe
	}
	if pressed(ebiten.KeyE) {
		m.Strafe += s.Strafe
	}

	// Zoom
	if pressed(ebiten.KeyZ) {
		m.FOVChange -= s.FOV
	}
	if pressed(ebiten.KeyX) {
		m.FOVChange += s.FOV
	}
	return m
}

// Apply advances cam by m over dt seconds. The direction is kept wrapped
// into (-pi, pi] and the field of view inside (fovMin, fovMax]; a change
// that would leave that range stops at its edge, or is dropped at the
// exclusive lower bound.
func Apply(cam view.Camera, m Motion, dt, fovMin, fovMax float64) view.Camera {
	cam.Dir = geometry.NormalizeAngle(cam.Dir + m.Rotate*dt)

	forward := cam.Forward()
	right := cam.Right()
	cam.Pos = cam.Pos.
		Plus(forward.Times(m.Forward * dt)).
		Plus(right.Times(m.Strafe * dt))

	if m.FOVChange != 0 {
		fov := math.Min(cam.FOV+m.FOVChange*dt, fovMax)
		if fov > fovMin {
			cam.FOV = fov
		}
	}
	return cam
}
