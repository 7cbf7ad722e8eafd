package collision

import (
	"github.com/jaffob/plumbus3d-web/internal/geometry"
	"github.com/jaffob/plumbus3d-web/internal/scene"

	"github.com/jbeda/geom"
)

// CollisionSystem keeps a circular body of the given radius from walking
// through or into walls. A zero radius disables it.
type CollisionSystem struct {
	walls  []scene.Wall
	radius float64
}

// NewCollisionSystem creates a new collision system
func NewCollisionSystem(walls []scene.Wall, radius float64) *CollisionSystem {
	return &CollisionSystem{walls: walls, radius: radius}
}

// Enabled reports whether movement is checked at all.
func (cs *CollisionSystem) Enabled() bool {
	return cs.radius > 0
}

// CanMoveTo checks if a body at from can move straight to to.
func (cs *CollisionSystem) CanMoveTo(from, to geom.Coord) bool {
	if !cs.Enabled() {
		return true
	}
	for _, w := range cs.walls {
		if geometry.SegmentsIntersect(from, to, w.A, w.B) {
			return false
		}
	}
	return len(cs.Blocking(to)) == 0
}

// Resolve returns where a body moving from from towards to ends up. A blocked
// move slides along whichever axis is still free.
func (cs *CollisionSystem) Resolve(from, to geom.Coord) geom.Coord {
	if cs.CanMoveTo(from, to) {
		return to
	}
	if x := (geom.Coord{X: to.X, Y: from.Y}); cs.CanMoveTo(from, x) {
		return x
	}
	if y := (geom.Coord{X: from.X, Y: to.Y}); cs.CanMoveTo(from, y) {
		return y
	}
	return from
}

// Blocking returns the indices of walls closer than the radius to p.
func (cs *CollisionSystem) Blocking(p geom.Coord) []int {
	var hits []int
	for i, w := range cs.walls {
		if geometry.SegmentDistance(p, w.A, w.B) < cs.radius {
			hits = append(hits, i)
		}
	}
	return hits
}
