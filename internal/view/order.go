package view

import (
	"slices"

	"github.com/jaffob/plumbus3d-web/internal/geometry"
	"github.com/jaffob/plumbus3d-web/internal/scene"

	"github.com/jbeda/geom"
)

// Orderer produces the back-to-front draw order of the walls visible in a
// render pass. Culled walls are left out.
type Orderer interface {
	Order(v *View, walls []scene.Wall) []int
}

// InsertionOrder is a painter's algorithm driven by the pairwise Obscurity
// predicate: each visible wall, in index order, is inserted just before the
// first already-placed wall that is nearer than it along a shared direction,
// or appended when none is.
//
// Obscurity is only a partial order, so the result is not guaranteed to be
// consistent. Walls whose relations form a cycle, or chains where two walls
// only relate through a third, can come out in a visibly wrong order. Fixing
// that needs geometry splitting (a BSP), which this orderer does not do.
// It always terminates after at most n*(n-1)/2 comparisons.
type InsertionOrder struct{}

// Order implements Orderer.
func (InsertionOrder) Order(v *View, walls []scene.Wall) []int {
	order := make([]int, 0, len(walls))
	for i, w := range walls {
		if !v.Visible(w) {
			continue
		}
		order = partialOrderInsert(v, walls, order, i)
	}
	return order
}

func partialOrderInsert(v *View, walls []scene.Wall, order []int, i int) []int {
	for pos, j := range order {
		if v.Obscurity(walls[i], walls[j]) < 0 {
			return slices.Insert(order, pos, i)
		}
	}
	return append(order, i)
}

// DrawOrder returns the indices of the visible walls, farthest first.
func (v *View) DrawOrder(walls []scene.Wall) []int {
	return v.orderer.Order(v, walls)
}

// Visible reports whether a wall survives culling: it is dropped when both
// endpoints are behind the camera, or when both overflow the field of view
// on the same side.
func (v *View) Visible(w scene.Wall) bool {
	if v.Behind(w.A) && v.Behind(w.B) {
		return false
	}
	return !v.outsideSameSide(v.Azimuth(w.A), v.Azimuth(w.B))
}

// Obscurity compares two walls from the camera. It returns +1 when a is
// nearer than b (a is drawn after b), -1 when b is nearer, and 0 when their
// angular extents do not overlap.
//
// a's endpoints are tested against b first, then b's endpoints against a
// with the sign flipped; the first non-zero answer wins. Extents are the
// shorter arc between a wall's endpoint azimuths, so a wall reaching behind
// the camera keeps its real extent. Two walls that do not cross keep the same
// depth order along every shared direction, so for them
// Obscurity(a, b) == -Obscurity(b, a).
func (v *View) Obscurity(a, b scene.Wall) int {
	if r := v.endpointNearer(a.A, b); r != 0 {
		return r
	}
	if r := v.endpointNearer(a.B, b); r != 0 {
		return r
	}
	if r := v.endpointNearer(b.A, a); r != 0 {
		return -r
	}
	if r := v.endpointNearer(b.B, a); r != 0 {
		return -r
	}
	return 0
}

// endpointNearer compares p with the point of w seen in the same direction.
// It returns 0 when p's azimuth is not strictly inside w's angular extent
// or the ray towards p meets w's line behind the camera.
func (v *View) endpointNearer(p geom.Coord, w scene.Wall) int {
	az := v.Azimuth(p)
	if !geometry.WithinArc(az, v.Azimuth(w.A), v.Azimuth(w.B)) {
		return 0
	}

	hit, t, ok := geometry.RayLineIntersection(v.cam.Pos, v.cam.Dir+az, w.A, w.B)
	if !ok || t <= 0 {
		return 0
	}

	dp := geometry.Distance(v.cam.Pos, p)
	dw := geometry.Distance(v.cam.Pos, hit)
	switch {
	case dp < dw:
		return 1
	case dp > dw:
		return -1
	}
	return 0
}
