package collision

import (
	"slices"
	"testing"

	"github.com/jaffob/plumbus3d-web/internal/scene"

	"github.com/jbeda/geom"
)

// A single wall along y = 100 from x = 0 to x = 200.
func newTestSystem(radius float64) *CollisionSystem {
	return NewCollisionSystem([]scene.Wall{
		{A: geom.Coord{X: 0, Y: 100}, B: geom.Coord{X: 200, Y: 100}, Height: 100},
	}, radius)
}

func TestCanMoveTo(t *testing.T) {
	cs := newTestSystem(10)
	c := func(x, y float64) geom.Coord { return geom.Coord{X: x, Y: y} }

	testCases := []struct {
		name     string
		from, to geom.Coord
		want     bool
	}{
		{"open ground", c(50, 50), c(60, 50), true},
		{"towards the wall, still clear", c(50, 50), c(50, 85), true},
		{"too close to the wall", c(50, 50), c(50, 95), false},
		{"through the wall", c(50, 50), c(50, 150), false},
		{"around the end", c(250, 50), c(250, 150), true},
		{"near an endpoint", c(210, 50), c(205, 100), false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := cs.CanMoveTo(tc.from, tc.to); got != tc.want {
				t.Errorf("got %v, expected %v", got, tc.want)
			}
		})
	}
}

func TestZeroRadiusDisables(t *testing.T) {
	cs := newTestSystem(0)
	if cs.Enabled() {
		t.Error("expected the system to be disabled")
	}
	from := geom.Coord{X: 50, Y: 50}
	to := geom.Coord{X: 50, Y: 150}
	if !cs.CanMoveTo(from, to) {
		t.Error("a disabled system must allow walking through walls")
	}
}

func TestResolveSlides(t *testing.T) {
	cs := newTestSystem(10)

	// Diagonal move into the wall keeps the x component.
	got := cs.Resolve(geom.Coord{X: 50, Y: 85}, geom.Coord{X: 60, Y: 95})
	if got != (geom.Coord{X: 60, Y: 85}) {
		t.Errorf("got %+v, expected (60, 85)", got)
	}

	// Straight into the wall does not move at all.
	got = cs.Resolve(geom.Coord{X: 50, Y: 85}, geom.Coord{X: 50, Y: 120})
	if got != (geom.Coord{X: 50, Y: 85}) {
		t.Errorf("got %+v, expected (50, 85)", got)
	}

	// Free moves pass through unchanged.
	to := geom.Coord{X: 20, Y: 20}
	if got := cs.Resolve(geom.Coord{X: 10, Y: 10}, to); got != to {
		t.Errorf("got %+v, expected %+v", got, to)
	}
}

func TestBlocking(t *testing.T) {
	cs := newTestSystem(10)
	if got := cs.Blocking(geom.Coord{X: 100, Y: 105}); !slices.Equal(got, []int{0}) {
		t.Errorf("got %v, expected [0]", got)
	}
	if got := cs.Blocking(geom.Coord{X: 100, Y: 50}); len(got) != 0 {
		t.Errorf("got %v, expected none", got)
	}
}
