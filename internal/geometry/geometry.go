// Package geometry holds the plane geometry shared by the first-person view:
// bearings, angle wrapping, distances and line/ray intersections.
package geometry

import (
	"math"

	"github.com/jbeda/geom"
)

// parallelEpsilon is the cross-product magnitude below which two directions
// are treated as parallel.
const parallelEpsilon = 1e-10

// Distance returns the Euclidean distance between two points.
func Distance(a, b geom.Coord) float64 {
	return a.DistanceFrom(b)
}

// Direction returns the unit vector pointing at angle (radians).
func Direction(angle float64) geom.Coord {
	return geom.Coord{X: math.Cos(angle), Y: math.Sin(angle)}
}

// Bearing returns the absolute angle from one point to another.
func Bearing(from, to geom.Coord) float64 {
	return math.Atan2(to.Y-from.Y, to.X-from.X)
}

// NormalizeAngle wraps any angle into (-pi, pi].
//
// atan2(sin, cos) handles arbitrarily large inputs without looping; the only
// fixup needed is -pi itself, which atan2 can return for a negative zero sine.
func NormalizeAngle(angle float64) float64 {
	a := math.Atan2(math.Sin(angle), math.Cos(angle))
	if a <= -math.Pi {
		return math.Pi
	}
	return a
}

// WithinArc reports whether the angle x lies strictly inside the shorter arc
// between the angles a and b. Arcs of exactly pi have no shorter side and
// contain nothing.
func WithinArc(x, a, b float64) bool {
	span := NormalizeAngle(b - a)
	if span == 0 || math.Abs(span) >= math.Pi {
		return false
	}
	rel := NormalizeAngle(x - a)
	if span < 0 {
		span, rel = -span, -rel
	}
	return rel > 0 && rel < span
}

// RayLineIntersection casts a ray from origin at angle and intersects it with
// the infinite line through a and b. t is the signed distance along the ray:
// negative values lie behind the origin.
func RayLineIntersection(origin geom.Coord, angle float64, a, b geom.Coord) (p geom.Coord, t float64, ok bool) {
	dir := Direction(angle)
	seg := b.Minus(a)

	den := cross(dir, seg)
	if math.Abs(den) < parallelEpsilon {
		return geom.Coord{}, 0, false
	}
	t = cross(a.Minus(origin), seg) / den
	return origin.Plus(dir.Times(t)), t, true
}

// SegmentDistance returns the distance from p to the closest point of the
// segment a-b.
func SegmentDistance(p, a, b geom.Coord) float64 {
	seg := b.Minus(a)
	l2 := seg.X*seg.X + seg.Y*seg.Y
	if l2 == 0 {
		return Distance(p, a)
	}
	rel := p.Minus(a)
	t := math.Max(0, math.Min(1, (rel.X*seg.X+rel.Y*seg.Y)/l2))
	return Distance(p, a.Plus(seg.Times(t)))
}

// SegmentsIntersect reports whether the segments p1-p2 and q1-q2 share a
// point. Touching counts.
func SegmentsIntersect(p1, p2, q1, q2 geom.Coord) bool {
	d1 := cross(q2.Minus(q1), p1.Minus(q1))
	d2 := cross(q2.Minus(q1), p2.Minus(q1))
	d3 := cross(p2.Minus(p1), q1.Minus(p1))
	d4 := cross(p2.Minus(p1), q2.Minus(p1))
	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) && ((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}
	switch {
	case d1 == 0 && onSegment(p1, q1, q2):
		return true
	case d2 == 0 && onSegment(p2, q1, q2):
		return true
	case d3 == 0 && onSegment(q1, p1, p2):
		return true
	case d4 == 0 && onSegment(q2, p1, p2):
		return true
	}
	return false
}

// onSegment reports whether p, known to be collinear with a-b, lies within
// the segment's bounding box.
func onSegment(p, a, b geom.Coord) bool {
	return math.Min(a.X, b.X) <= p.X && p.X <= math.Max(a.X, b.X) &&
		math.Min(a.Y, b.Y) <= p.Y && p.Y <= math.Max(a.Y, b.Y)
}

func cross(a, b geom.Coord) float64 {
	return a.X*b.Y - a.Y*b.X
}
