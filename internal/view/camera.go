package view

import (
	"math"

	"github.com/jaffob/plumbus3d-web/internal/geometry"

	"github.com/jbeda/geom"
)

// Camera is a snapshot of the viewer for one render pass.
type Camera struct {
	Pos    geom.Coord // Position in the world plane
	Dir    float64    // Facing direction in radians, any real value
	FOV    float64    // Horizontal field of view, (0, pi]
	Height float64    // Eye height above the ground
}

// HalfFOV returns half the horizontal field of view.
func (c Camera) HalfFOV() float64 {
	return c.FOV / 2
}

// Forward returns the unit facing vector.
func (c Camera) Forward() geom.Coord {
	return geometry.Direction(c.Dir)
}

// Right returns the unit vector pointing to the camera's right.
func (c Camera) Right() geom.Coord {
	return geometry.Direction(c.Dir + math.Pi/2)
}
