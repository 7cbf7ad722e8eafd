package config

import (
	"fmt"
	"log"
	"math"
	"os"

	"github.com/jaffob/plumbus3d-web/internal/scene"
	"github.com/jaffob/plumbus3d-web/internal/view"

	"github.com/jbeda/geom"
	"gopkg.in/yaml.v3"
)

// maxFOV is the widest field of view the projection supports, in degrees.
const maxFOV = 180

// Config holds all viewer configuration values
type Config struct {
	Display  DisplayConfig  `yaml:"display"`
	Camera   CameraConfig   `yaml:"camera"`
	Movement MovementConfig `yaml:"movement"`
	Render   RenderConfig   `yaml:"render"`
	Overhead OverheadConfig `yaml:"overhead"`

	correction view.Correction
	forward    view.ForwardModel
}

type DisplayConfig struct {
	ScreenWidth  int    `yaml:"screen_width"`
	ScreenHeight int    `yaml:"screen_height"`
	WindowTitle  string `yaml:"window_title"`
	Resizable    bool   `yaml:"resizable"`
	TPS          int    `yaml:"tps"`
}

// CameraConfig is the starting camera. Angles are in degrees.
type CameraConfig struct {
	StartX         float64 `yaml:"start_x"`
	StartY         float64 `yaml:"start_y"`
	StartDirection float64 `yaml:"start_direction"`
	EyeHeight      float64 `yaml:"eye_height"`
	FieldOfView    float64 `yaml:"field_of_view"`
	FOVMin         float64 `yaml:"fov_min"` // Exclusive
	FOVMax         float64 `yaml:"fov_max"`
}

// MovementConfig speeds are per second: world units, or degrees for turning.
type MovementConfig struct {
	MoveSpeed       float64 `yaml:"move_speed"`
	StrafeSpeed     float64 `yaml:"strafe_speed"`
	RotationSpeed   float64 `yaml:"rotation_speed"`
	FOVChangeSpeed  float64 `yaml:"fov_change_speed"`
	CollisionRadius float64 `yaml:"collision_radius"` // 0 walks through walls
}

type RenderConfig struct {
	SimpleDistance         bool    `yaml:"simple_distance"`
	ForwardModel           string  `yaml:"forward_model"`
	WallEndpointCorrection string  `yaml:"wall_endpoint_correction"`
	DefaultWallHeight      float64 `yaml:"default_wall_height"`
	DefaultWallColor       [3]int  `yaml:"default_wall_color"`
	SkyColor               [3]int  `yaml:"sky_color"`
	GroundColor            [3]int  `yaml:"ground_color"`
}

// OverheadConfig controls the top-down minimap overlay.
type OverheadConfig struct {
	Enabled      bool    `yaml:"enabled"`
	Scale        float64 `yaml:"scale"`
	Margin       int     `yaml:"margin"`
	PlayerRadius float64 `yaml:"player_radius"`
}

// Default returns the configuration used for anything a file leaves out.
func Default() *Config {
	return &Config{
		Display: DisplayConfig{
			ScreenWidth:  800,
			ScreenHeight: 600,
			WindowTitle:  "Plumbus3D",
			TPS:          60,
		},
		Camera: CameraConfig{
			StartX:      400,
			StartY:      300,
			EyeHeight:   50,
			FieldOfView: 90,
			FOVMin:      10,
			FOVMax:      maxFOV,
		},
		Movement: MovementConfig{
			MoveSpeed:       200,
			StrafeSpeed:     150,
			RotationSpeed:   180,
			FOVChangeSpeed:  45,
			CollisionRadius: 8,
		},
		Render: RenderConfig{
			ForwardModel:           view.ForwardWeighted.String(),
			WallEndpointCorrection: view.CorrectionVerified.String(),
			DefaultWallHeight:      100,
			DefaultWallColor:       [3]int{0, 0, 0},
			SkyColor:               [3]int{0, 191, 255},
			GroundColor:            [3]int{0, 128, 0},
		},
		Overhead: OverheadConfig{
			Scale:        0.25,
			Margin:       8,
			PlayerRadius: 10,
		},
		correction: view.CorrectionVerified,
		forward:    view.ForwardWeighted,
	}
}

// LoadConfig loads the configuration from a YAML file on top of Default.
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes configuration YAML on top of Default and validates it.
func Parse(data []byte) (*Config, error) {
	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// MustLoadConfig loads the configuration and panics on error
func MustLoadConfig(filename string) *Config {
	config, err := LoadConfig(filename)
	if err != nil {
		panic("Failed to load config: " + err.Error())
	}
	return config
}

// Validate parses the render modes and clamps out-of-range numbers. Clamping
// is logged; only unknown mode names are errors.
func (c *Config) Validate() error {
	correction, err := view.ParseCorrection(c.Render.WallEndpointCorrection)
	if err != nil {
		return fmt.Errorf("render.wall_endpoint_correction: %w", err)
	}
	forward, err := view.ParseForwardModel(c.Render.ForwardModel)
	if err != nil {
		return fmt.Errorf("render.forward_model: %w", err)
	}
	c.correction = correction
	c.forward = forward

	d := Default()
	if c.Display.ScreenWidth <= 0 || c.Display.ScreenHeight <= 0 {
		log.Printf("[Config] Invalid screen size %dx%d, using %dx%d",
			c.Display.ScreenWidth, c.Display.ScreenHeight, d.Display.ScreenWidth, d.Display.ScreenHeight)
		c.Display.ScreenWidth = d.Display.ScreenWidth
		c.Display.ScreenHeight = d.Display.ScreenHeight
	}
	if c.Display.TPS <= 0 {
		c.Display.TPS = d.Display.TPS
	}
	if c.Movement.CollisionRadius < 0 {
		c.Movement.CollisionRadius = 0
	}
	if c.Render.DefaultWallHeight <= 0 {
		log.Printf("[Config] default_wall_height %g is not positive, using %g",
			c.Render.DefaultWallHeight, d.Render.DefaultWallHeight)
		c.Render.DefaultWallHeight = d.Render.DefaultWallHeight
	}

	cam := &c.Camera
	if cam.FOVMax <= 0 || cam.FOVMax > maxFOV {
		log.Printf("[Config] fov_max %g out of range, using %d", cam.FOVMax, maxFOV)
		cam.FOVMax = maxFOV
	}
	if cam.FOVMin < 0 || cam.FOVMin >= cam.FOVMax {
		log.Printf("[Config] fov_min %g out of range, using 0", cam.FOVMin)
		cam.FOVMin = 0
	}
	cam.FieldOfView = c.ClampFOV(cam.FieldOfView)
	return nil
}

// ClampFOV limits a field of view in degrees to (fov_min, fov_max]. Values
// at or below the minimum move one degree above it.
func (c *Config) ClampFOV(fov float64) float64 {
	lo, hi := c.Camera.FOVMin, c.Camera.FOVMax
	if fov > hi {
		return hi
	}
	if fov <= lo {
		return math.Min(lo+1, hi)
	}
	return fov
}

// Helper functions for easy access to commonly used values
func (c *Config) GetScreenWidth() int {
	return c.Display.ScreenWidth
}

func (c *Config) GetScreenHeight() int {
	return c.Display.ScreenHeight
}

func (c *Config) GetTPS() int {
	return c.Display.TPS
}

func (c *Config) GetMoveSpeed() float64 {
	return c.Movement.MoveSpeed
}

func (c *Config) GetStrafeSpeed() float64 {
	return c.Movement.StrafeSpeed
}

func (c *Config) GetCollisionRadius() float64 {
	return c.Movement.CollisionRadius
}

// GetRotSpeed returns the turn rate in radians per second.
func (c *Config) GetRotSpeed() float64 {
	return radians(c.Movement.RotationSpeed)
}

// GetFOVChangeSpeed returns the zoom rate in radians per second.
func (c *Config) GetFOVChangeSpeed() float64 {
	return radians(c.Movement.FOVChangeSpeed)
}

// GetFOVRange returns the field of view limits in radians.
func (c *Config) GetFOVRange() (lo, hi float64) {
	return radians(c.Camera.FOVMin), radians(c.Camera.FOVMax)
}

// GetCamera returns the starting camera.
func (c *Config) GetCamera() view.Camera {
	return view.Camera{
		Pos:    geom.Coord{X: c.Camera.StartX, Y: c.Camera.StartY},
		Dir:    radians(c.Camera.StartDirection),
		FOV:    radians(c.Camera.FieldOfView),
		Height: c.Camera.EyeHeight,
	}
}

// SceneDefaults returns the height and color given to walls that set neither.
func (c *Config) SceneDefaults() scene.Defaults {
	return scene.Defaults{
		Height: c.Render.DefaultWallHeight,
		Color:  scene.RGB(c.Render.DefaultWallColor),
	}
}

// RenderOptions builds the options for a render pass.
func (c *Config) RenderOptions() view.Options {
	return view.Options{
		ScreenWidth:    c.Display.ScreenWidth,
		ScreenHeight:   c.Display.ScreenHeight,
		SimpleDistance: c.Render.SimpleDistance,
		Correction:     c.correction,
		Forward:        c.forward,
		WallColor:      scene.RGB(c.Render.DefaultWallColor),
		SkyColor:       scene.RGB(c.Render.SkyColor),
		GroundColor:    scene.RGB(c.Render.GroundColor),
	}
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
