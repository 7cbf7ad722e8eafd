package view

import (
	"math"

	"github.com/jaffob/plumbus3d-web/internal/geometry"
	"github.com/jaffob/plumbus3d-web/internal/scene"
)

// edgeTolerance is how far (radians) a clipped point's azimuth may sit from
// the view edge it was clipped to and still count as on that edge.
const edgeTolerance = 1e-6

// ClipToFOV corrects the angle of a wall endpoint that lies outside the
// field of view. The wall's infinite line is intersected with the view edge
// ray on the overflow side, and the angle of that point at height z replaces
// a, so the visible fragment's edge gets the elevation the wall really has
// there. When no usable intersection exists a is returned unchanged.
func (v *View) ClipToFOV(a ViewAngle, w scene.Wall, z float64) ViewAngle {
	if v.opts.Correction == CorrectionOff || v.InFOV(a.Azimuth) {
		return a
	}

	edge := v.halfFOV
	if a.Azimuth < 0 {
		edge = -edge
	}

	if c, ok := v.clipToEdge(edge, w, z); ok {
		return c
	}
	if v.opts.Correction == CorrectionVerified {
		if c, ok := v.clipToEdge(-edge, w, z); ok {
			return c
		}
	}
	return a
}

// clipToEdge intersects the wall line with the ray at the camera-relative
// angle edge. In verified mode the result must lie on that edge: an
// intersection behind the camera comes back pi away and is rejected.
func (v *View) clipToEdge(edge float64, w scene.Wall, z float64) (ViewAngle, bool) {
	p, _, ok := geometry.RayLineIntersection(v.cam.Pos, v.cam.Dir+edge, w.A, w.B)
	if !ok {
		return ViewAngle{}, false
	}

	c := v.Angle(p, z)
	if v.opts.Correction == CorrectionVerified &&
		math.Abs(geometry.NormalizeAngle(c.Azimuth-edge)) > edgeTolerance {
		return ViewAngle{}, false
	}
	return c, true
}
