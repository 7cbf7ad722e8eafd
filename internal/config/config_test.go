package config

import (
	"image/color"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jaffob/plumbus3d-web/internal/view"
)

func TestDefaultsMatchReferenceEngine(t *testing.T) {
	cfg, err := Parse([]byte("{}"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	opts := cfg.RenderOptions()
	if opts.ScreenWidth != 800 || opts.ScreenHeight != 600 {
		t.Errorf("screen: got %dx%d, expected 800x600", opts.ScreenWidth, opts.ScreenHeight)
	}
	if opts.Correction != view.CorrectionVerified {
		t.Errorf("correction: got %v, expected verified", opts.Correction)
	}
	if opts.Forward != view.ForwardWeighted {
		t.Errorf("forward model: got %v, expected weighted", opts.Forward)
	}
	if opts.SkyColor != (color.RGBA{0, 191, 255, 255}) {
		t.Errorf("sky: got %v", opts.SkyColor)
	}
	if opts.GroundColor != (color.RGBA{0, 128, 0, 255}) {
		t.Errorf("ground: got %v", opts.GroundColor)
	}

	cam := cfg.GetCamera()
	if math.Abs(cam.FOV-math.Pi/2) > 1e-12 {
		t.Errorf("FOV: got %.4f, expected %.4f", cam.FOV, math.Pi/2)
	}
	if cam.Height != 50 || cam.Pos.X != 400 || cam.Pos.Y != 300 {
		t.Errorf("camera: got %+v", cam)
	}
	if math.Abs(cfg.GetRotSpeed()-math.Pi) > 1e-12 {
		t.Errorf("rotation speed: got %.4f, expected %.4f", cfg.GetRotSpeed(), math.Pi)
	}
	if d := cfg.SceneDefaults(); d.Height != 100 || d.Color != (color.RGBA{0, 0, 0, 255}) {
		t.Errorf("scene defaults: got %+v", d)
	}
}

func TestParseOverridesOnlyGivenValues(t *testing.T) {
	cfg, err := Parse([]byte(`
display:
  screen_width: 1024
render:
  simple_distance: true
  forward_model: dot
  wall_endpoint_correction: single
`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	opts := cfg.RenderOptions()
	if opts.ScreenWidth != 1024 || opts.ScreenHeight != 600 {
		t.Errorf("screen: got %dx%d, expected 1024x600", opts.ScreenWidth, opts.ScreenHeight)
	}
	if !opts.SimpleDistance || opts.Forward != view.ForwardDot || opts.Correction != view.CorrectionSingle {
		t.Errorf("render modes not applied: %+v", opts)
	}
	if cfg.GetMoveSpeed() != 200 {
		t.Errorf("move speed: got %.4f, expected %.4f", cfg.GetMoveSpeed(), 200.0)
	}
}

func TestFOVClamping(t *testing.T) {
	testCases := []struct {
		name     string
		yaml     string
		expected float64 // degrees
	}{
		{"in range", "camera: {field_of_view: 75}", 75},
		{"above max", "camera: {field_of_view: 240}", 180},
		{"at max", "camera: {field_of_view: 180}", 180},
		{"below min", "camera: {field_of_view: 5, fov_min: 10}", 11},
		{"at min is excluded", "camera: {field_of_view: 10, fov_min: 10}", 11},
		{"max above half circle", "camera: {field_of_view: 200, fov_max: 270}", 180},
		{"custom max", "camera: {field_of_view: 150, fov_max: 120}", 120},
		{"negative", "camera: {field_of_view: -30, fov_min: 0}", 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := Parse([]byte(tc.yaml))
			if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}
			if got := cfg.Camera.FieldOfView; math.Abs(got-tc.expected) > 1e-12 {
				t.Errorf("got %.4f, expected %.4f", got, tc.expected)
			}
			lo, hi := cfg.GetFOVRange()
			if fov := cfg.GetCamera().FOV; fov <= lo || fov > hi {
				t.Errorf("FOV %.4f outside (%.4f, %.4f]", fov, lo, hi)
			}
		})
	}
}

func TestInvalidValuesFallBack(t *testing.T) {
	cfg, err := Parse([]byte(`
display: {screen_width: 0, screen_height: -1, tps: 0}
render: {default_wall_height: -5}
`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cfg.GetScreenWidth() != 800 || cfg.GetScreenHeight() != 600 {
		t.Errorf("screen: got %dx%d, expected 800x600", cfg.GetScreenWidth(), cfg.GetScreenHeight())
	}
	if cfg.GetTPS() != 60 {
		t.Errorf("tps: got %d, expected 60", cfg.GetTPS())
	}
	if cfg.SceneDefaults().Height != 100 {
		t.Errorf("wall height: got %.4f, expected %.4f", cfg.SceneDefaults().Height, 100.0)
	}
}

func TestParseErrors(t *testing.T) {
	testCases := []struct {
		name string
		yaml string
		want string
	}{
		{"bad yaml", "display: [", "failed to parse config"},
		{"unknown correction", "render: {wall_endpoint_correction: sideways}", "wall_endpoint_correction"},
		{"unknown forward model", "render: {forward_model: diagonal}", "forward_model"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.yaml))
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q does not mention %q", err, tc.want)
			}
		})
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("camera: {eye_height: 30}\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.GetCamera().Height != 30 {
		t.Errorf("eye height: got %.4f, expected %.4f", cfg.GetCamera().Height, 30.0)
	}

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestMustLoadConfigPanics(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected a panic")
		}
		if msg, ok := r.(string); !ok || !strings.HasPrefix(msg, "Failed to load config: ") {
			t.Errorf("unexpected panic value %v", r)
		}
	}()
	MustLoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
}

func TestRepositoryConfigLoads(t *testing.T) {
	cfg, err := LoadConfig("../../config.yaml")
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if !cfg.Overhead.Enabled {
		t.Error("expected the overhead map to be enabled")
	}
}
