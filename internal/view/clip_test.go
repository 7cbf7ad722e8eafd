package view

import (
	"math"
	"testing"

	"github.com/jaffob/plumbus3d-web/internal/scene"

	"github.com/jbeda/geom"
)

func wall(x1, y1, x2, y2 float64) scene.Wall {
	return scene.Wall{
		A:      geom.Coord{X: x1, Y: y1},
		B:      geom.Coord{X: x2, Y: y2},
		Height: 100,
	}
}

func TestClipToFOVLandsOnTheEdge(t *testing.T) {
	// Slanted wall running off to the right; its far end is outside the
	// 90 degree view and the right edge ray meets it at (160, 160).
	w := wall(100, -50, 200, 300)
	edgePoint := geom.Coord{X: 160, Y: 160}

	for _, simple := range []bool{false, true} {
		for _, z := range []float64{0, w.Height} {
			opts := testOptions()
			opts.SimpleDistance = simple
			v := New(originCamera(), opts)

			raw := v.Angle(w.B, z)
			if v.InFOV(raw.Azimuth) {
				t.Fatalf("test setup: far endpoint should be outside the view, azimuth %.4f", raw.Azimuth)
			}

			got := v.ClipToFOV(raw, w, z)
			if math.Abs(got.Azimuth-math.Pi/4) > 1e-9 {
				t.Errorf("simple=%v z=%.0f: azimuth %.6f, expected %.6f", simple, z, got.Azimuth, math.Pi/4)
			}

			want := v.Elevation(edgePoint, z)
			if math.Abs(got.Elevation-want) > 1e-9 {
				t.Errorf("simple=%v z=%.0f: elevation %.6f, expected %.6f", simple, z, got.Elevation, want)
			}
			if math.Abs(got.Elevation-raw.Elevation) < 1e-6 {
				t.Errorf("simple=%v z=%.0f: elevation was not corrected (%.6f)", simple, z, got.Elevation)
			}
		}
	}
}

func TestClipToFOVLeftEdge(t *testing.T) {
	w := wall(100, -300, 100, 50)
	v := New(originCamera(), testOptions())

	got := v.ClipToFOV(v.Angle(w.A, 0), w, 0)
	if math.Abs(got.Azimuth+math.Pi/4) > 1e-9 {
		t.Errorf("azimuth %.6f, expected %.6f", got.Azimuth, -math.Pi/4)
	}
	want := v.Elevation(geom.Coord{X: 100, Y: -100}, 0)
	if math.Abs(got.Elevation-want) > 1e-9 {
		t.Errorf("elevation %.6f, expected %.6f", got.Elevation, want)
	}
}

func TestClipToFOVLeavesVisibleEndpoints(t *testing.T) {
	w := wall(100, -50, 100, 300)
	v := New(originCamera(), testOptions())

	raw := v.Angle(w.A, 0)
	if got := v.ClipToFOV(raw, w, 0); got != raw {
		t.Errorf("visible endpoint changed from %+v to %+v", raw, got)
	}
}

func TestClipToFOVOff(t *testing.T) {
	w := wall(100, -50, 100, 300)
	opts := testOptions()
	opts.Correction = CorrectionOff
	v := New(originCamera(), opts)

	raw := v.Angle(w.B, 0)
	if got := v.ClipToFOV(raw, w, 0); got != raw {
		t.Errorf("correction off: angle changed from %+v to %+v", raw, got)
	}
}

func TestClipToFOVParallelKeepsOriginal(t *testing.T) {
	// The wall runs along the right edge ray, so the two never meet.
	w := wall(0, 10, 100, 110)
	v := New(originCamera(), testOptions())

	raw := v.Angle(w.B, 0)
	if v.InFOV(raw.Azimuth) {
		t.Fatalf("test setup: endpoint should be outside the view, azimuth %.4f", raw.Azimuth)
	}
	if got := v.ClipToFOV(raw, w, 0); got != raw {
		t.Errorf("parallel wall: angle changed from %+v to %+v", raw, got)
	}
}

func TestClipToFOVVerifiedRetriesOppositeEdge(t *testing.T) {
	// The wall enters the view through the left edge at (50, -50). Its far
	// end sits behind the camera, just across the +-pi seam, so its azimuth
	// is positive. The right edge ray meets the wall line behind the camera.
	w := wall(-300, 20, 300, -100)

	v := New(originCamera(), testOptions())
	raw := v.Angle(w.A, 0)
	if raw.Azimuth <= math.Pi/4 {
		t.Fatalf("test setup: endpoint should overflow to the right, azimuth %.4f", raw.Azimuth)
	}

	got := v.ClipToFOV(raw, w, 0)
	if math.Abs(got.Azimuth+math.Pi/4) > 1e-9 {
		t.Errorf("verified: azimuth %.6f, expected %.6f", got.Azimuth, -math.Pi/4)
	}
	want := v.Elevation(geom.Coord{X: 50, Y: -50}, 0)
	if math.Abs(got.Elevation-want) > 1e-9 {
		t.Errorf("verified: elevation %.6f, expected %.6f", got.Elevation, want)
	}

	// Without verification the behind-camera intersection is used as is.
	opts := testOptions()
	opts.Correction = CorrectionSingle
	single := New(originCamera(), opts)
	got = single.ClipToFOV(single.Angle(w.A, 0), w, 0)
	if math.Abs(got.Azimuth+3*math.Pi/4) > 1e-9 {
		t.Errorf("single: azimuth %.6f, expected %.6f", got.Azimuth, -3*math.Pi/4)
	}
}
