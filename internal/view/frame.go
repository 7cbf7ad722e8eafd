package view

import (
	"image/color"

	"github.com/jaffob/plumbus3d-web/internal/scene"
)

// Rect is a flat-filled screen rectangle.
type Rect struct {
	X, Y, W, H float64
	Color      color.RGBA
}

// Quad is a filled wall polygon. Points run base-A, base-B, top-B, top-A.
type Quad struct {
	Wall   int // Index into the scene's walls
	Points [4]ScreenPoint
	Color  color.RGBA
}

// Frame is the output of one render pass: background first, then wall quads
// back to front.
type Frame struct {
	Sky    Rect
	Ground Rect
	Quads  []Quad
	Order  []int // Draw order produced by the orderer
	Culled int   // Walls that produced no quad
}

// Canvas rasterizes draw commands. Implementations own the drawing surface.
type Canvas interface {
	FillRect(r Rect)
	FillQuad(q Quad)
}

// Draw streams the frame's commands to c in paint order.
func (f *Frame) Draw(c Canvas) {
	c.FillRect(f.Sky)
	c.FillRect(f.Ground)
	for _, q := range f.Quads {
		c.FillQuad(q)
	}
}

// Render runs a full pass over walls for one camera snapshot.
func Render(cam Camera, walls []scene.Wall, opts Options) *Frame {
	return New(cam, opts).Frame(walls)
}

// Frame builds the frame's draw commands.
func (v *View) Frame(walls []scene.Wall) *Frame {
	w := float64(v.opts.ScreenWidth)
	h := float64(v.opts.ScreenHeight)
	horizon := h / 2

	order := v.DrawOrder(walls)
	f := &Frame{
		Sky:    Rect{X: 0, Y: 0, W: w, H: horizon, Color: v.opts.SkyColor},
		Ground: Rect{X: 0, Y: horizon, W: w, H: h - horizon, Color: v.opts.GroundColor},
		Quads:  make([]Quad, 0, len(order)),
		Order:  order,
	}

	for _, i := range order {
		q, ok := v.WallQuad(walls[i])
		if !ok {
			continue
		}
		q.Wall = i
		f.Quads = append(f.Quads, q)
	}
	f.Culled = len(walls) - len(f.Quads)
	return f
}

// WallQuad projects a wall's four corners. It reports false when, at either
// height, both endpoints overflow the field of view on the same side.
func (v *View) WallQuad(w scene.Wall) (Quad, bool) {
	var levels [2][2]ScreenPoint
	for level, z := range [2]float64{0, w.Height} {
		a := v.Angle(w.A, z)
		b := v.Angle(w.B, z)
		if v.outsideSameSide(a.Azimuth, b.Azimuth) {
			return Quad{}, false
		}
		levels[level][0] = v.Project(v.ClipToFOV(a, w, z))
		levels[level][1] = v.Project(v.ClipToFOV(b, w, z))
	}

	c := w.Color
	if c.A == 0 {
		c = v.opts.WallColor
	}
	base, top := levels[0], levels[1]
	return Quad{
		Points: [4]ScreenPoint{base[0], base[1], top[1], top[0]},
		Color:  c,
	}, true
}
