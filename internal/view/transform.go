// Package view turns a camera snapshot and a set of walls into screen-space
// draw commands.
//
// World points become camera-relative angles, and angles map linearly onto
// pixels. There is no perspective divide and no depth buffer: walls are drawn
// back to front in an order built from pairwise comparisons.
package view

import (
	"math"

	"github.com/jaffob/plumbus3d-web/internal/geometry"

	"github.com/jbeda/geom"
)

// minDistance is the camera-to-point distance below which elevation is
// clamped instead of divided.
const minDistance = 1e-9

// behindEpsilon absorbs the rounding of cos/sin at axis-aligned headings.
const behindEpsilon = 1e-9

// ViewAngle is a camera-relative direction. Azimuth is in (-pi, pi] with
// positive values to the right; Elevation is positive below eye level.
type ViewAngle struct {
	Azimuth   float64
	Elevation float64
}

// View is a single render pass over an immutable camera and options.
type View struct {
	cam     Camera
	opts    Options
	orderer Orderer

	halfFOV float64
	vfov    float64
	cosDir  float64
	sinDir  float64
}

// New prepares a render pass. The camera's FOV and the screen size are
// expected to be validated by the caller.
func New(cam Camera, opts Options) *View {
	v := &View{
		cam:     cam,
		opts:    opts,
		orderer: opts.Orderer,
		halfFOV: cam.HalfFOV(),
		cosDir:  math.Cos(cam.Dir),
		sinDir:  math.Sin(cam.Dir),
	}
	if v.orderer == nil {
		v.orderer = InsertionOrder{}
	}
	v.vfov = cam.FOV * float64(opts.ScreenHeight) / float64(opts.ScreenWidth)
	return v
}

// Camera returns the pass's camera snapshot.
func (v *View) Camera() Camera { return v.cam }

// Options returns the pass's options.
func (v *View) Options() Options { return v.opts }

// VerticalFOV returns the field of view derived from the screen aspect ratio.
func (v *View) VerticalFOV() float64 { return v.vfov }

// Azimuth returns the camera-relative horizontal angle of p.
func (v *View) Azimuth(p geom.Coord) float64 {
	return geometry.NormalizeAngle(geometry.Bearing(v.cam.Pos, p) - v.cam.Dir)
}

// Distance returns the distance used for elevation: Euclidean when
// SimpleDistance is set, otherwise measured with the forward model.
func (v *View) Distance(p geom.Coord) float64 {
	dx := p.X - v.cam.Pos.X
	dy := p.Y - v.cam.Pos.Y
	if v.opts.SimpleDistance {
		return math.Hypot(dx, dy)
	}
	if v.opts.Forward == ForwardDot {
		return math.Abs(dx*v.cosDir + dy*v.sinDir)
	}
	return math.Hypot(dx*v.cosDir, dy*v.sinDir)
}

// Forward returns the forward component of p relative to the camera. Points
// with a non-positive forward component are behind the camera plane.
//
// Under ForwardWeighted the offset is scaled component-wise and a point is
// behind only when both scaled components are non-positive, so the larger
// component is returned.
func (v *View) Forward(p geom.Coord) float64 {
	fx := (p.X - v.cam.Pos.X) * v.cosDir
	fy := (p.Y - v.cam.Pos.Y) * v.sinDir
	if v.opts.Forward == ForwardDot {
		return fx + fy
	}
	return math.Max(fx, fy)
}

// Behind reports whether p is behind the camera plane.
func (v *View) Behind(p geom.Coord) bool {
	return v.Forward(p) <= behindEpsilon
}

// Elevation returns the vertical angle of the point (p, z), positive below
// eye level. A point at zero distance gets +-pi/2, or 0 at eye height.
func (v *View) Elevation(p geom.Coord, z float64) float64 {
	dz := v.cam.Height - z
	d := v.Distance(p)
	if d < minDistance {
		switch {
		case dz > 0:
			return math.Pi / 2
		case dz < 0:
			return -math.Pi / 2
		default:
			return 0
		}
	}
	return math.Atan(dz / d)
}

// Angle converts a world point at height z into a camera-relative angle.
func (v *View) Angle(p geom.Coord, z float64) ViewAngle {
	return ViewAngle{
		Azimuth:   v.Azimuth(p),
		Elevation: v.Elevation(p, z),
	}
}

// InFOV reports whether an azimuth lies inside the horizontal field of view.
func (v *View) InFOV(azimuth float64) bool {
	return math.Abs(azimuth) <= v.halfFOV
}

// outsideSameSide reports whether two azimuths both overflow the field of
// view on the same side.
func (v *View) outsideSameSide(az1, az2 float64) bool {
	return (az1 > v.halfFOV && az2 > v.halfFOV) || (az1 < -v.halfFOV && az2 < -v.halfFOV)
}
