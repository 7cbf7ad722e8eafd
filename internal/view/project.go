package view

// ScreenPoint is a position in pixels.
type ScreenPoint struct {
	X, Y float64
}

// Project maps a view angle onto the screen.
//
// The mapping is linear in angle (equirectangular), not a pinhole
// projection: straight wall edges bow slightly near the sides of the view.
// The vertical field of view is the horizontal one scaled by the aspect
// ratio.
func (v *View) Project(a ViewAngle) ScreenPoint {
	w := float64(v.opts.ScreenWidth)
	h := float64(v.opts.ScreenHeight)
	return ScreenPoint{
		X: w * (a.Azimuth/v.cam.FOV + 0.5),
		Y: h * (a.Elevation/v.vfov + 0.5),
	}
}
