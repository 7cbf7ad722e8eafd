// Package scene holds the static floor plan: vertical walls standing on
// line segments in the world plane.
package scene

import (
	"image/color"

	"github.com/jbeda/geom"
)

// Wall is a vertical rectangle standing on the segment A-B. Height and Color
// are always resolved; optional values in scene files are filled in when the
// scene is loaded.
type Wall struct {
	A, B   geom.Coord
	Height float64
	Color  color.RGBA
}

// Length returns the length of the wall's footprint.
func (w Wall) Length() float64 {
	return w.A.DistanceFrom(w.B)
}

// Defaults are applied to walls that leave height or color unset.
type Defaults struct {
	Height float64
	Color  color.RGBA
}

// Scene is the process-wide set of walls. It is read-only once loaded.
type Scene struct {
	Walls []Wall
}

// Bounds returns the smallest rectangle containing every wall endpoint.
func (s *Scene) Bounds() (geom.Rect, bool) {
	if len(s.Walls) == 0 {
		return geom.Rect{}, false
	}
	r := geom.Rect{Min: s.Walls[0].A, Max: s.Walls[0].A}
	for _, w := range s.Walls {
		r.ExpandToContainCoord(w.A)
		r.ExpandToContainCoord(w.B)
	}
	return r, true
}

// Default returns the two-wall room used when no scene file is given.
func Default(d Defaults) *Scene {
	return &Scene{Walls: []Wall{
		{A: geom.Coord{X: 200, Y: 200}, B: geom.Coord{X: 400, Y: 200}, Height: d.Height, Color: d.Color},
		{A: geom.Coord{X: 500, Y: 200}, B: geom.Coord{X: 500, Y: 400}, Height: d.Height, Color: d.Color},
	}}
}

// RGB converts a YAML [r, g, b] triple into an opaque color, clamping each
// channel into 0..255.
func RGB(c [3]int) color.RGBA {
	return color.RGBA{clampChannel(c[0]), clampChannel(c[1]), clampChannel(c[2]), 255}
}

func clampChannel(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
