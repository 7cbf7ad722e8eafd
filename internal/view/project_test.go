package view

import (
	"math"
	"testing"
)

func TestProjectIsLinearInAngle(t *testing.T) {
	v := New(originCamera(), testOptions())
	half := math.Pi / 4
	vfov := math.Pi / 2 * 600.0 / 800.0

	if got := v.VerticalFOV(); math.Abs(got-vfov) > tol {
		t.Fatalf("vertical fov: got %.6f, expected %.6f", got, vfov)
	}

	testCases := []struct {
		name  string
		angle ViewAngle
		wantX float64
		wantY float64
	}{
		{"center", ViewAngle{0, 0}, 400, 300},
		{"right edge", ViewAngle{half, 0}, 800, 300},
		{"left edge", ViewAngle{-half, 0}, 0, 300},
		{"bottom edge", ViewAngle{0, vfov / 2}, 400, 600},
		{"top edge", ViewAngle{0, -vfov / 2}, 400, 0},
		{"quarter right", ViewAngle{half / 2, 0}, 600, 300},
		{"beyond the edge", ViewAngle{2 * half, 0}, 1200, 300},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			sp := v.Project(tc.angle)
			if math.Abs(sp.X-tc.wantX) > 1e-6 || math.Abs(sp.Y-tc.wantY) > 1e-6 {
				t.Errorf("got (%.4f, %.4f), expected (%.4f, %.4f)", sp.X, sp.Y, tc.wantX, tc.wantY)
			}
		})
	}
}
