package scene

import (
	"fmt"
	"os"

	"github.com/jbeda/geom"
	"gopkg.in/yaml.v3"
)

// WallEntry is a wall as written in a scene file.
type WallEntry struct {
	X1     float64  `yaml:"x1"`
	Y1     float64  `yaml:"y1"`
	X2     float64  `yaml:"x2"`
	Y2     float64  `yaml:"y2"`
	Height *float64 `yaml:"height,omitempty"`
	Color  *[3]int  `yaml:"color,omitempty"`
}

// File is the on-disk scene format.
type File struct {
	Name     string `yaml:"name"`
	Defaults struct {
		Height *float64 `yaml:"height,omitempty"`
		Color  *[3]int  `yaml:"color,omitempty"`
	} `yaml:"defaults"`
	Walls []WallEntry `yaml:"walls"`
}

// Load reads a scene file and resolves every wall's height and color.
// File-level defaults take precedence over d.
func Load(filename string, d Defaults) (*Scene, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene file %s: %w", filename, err)
	}

	s, err := Parse(data, d)
	if err != nil {
		return nil, fmt.Errorf("scene file %s: %w", filename, err)
	}

	fmt.Printf("[Scene] Loaded %d walls from %s\n", len(s.Walls), filename)
	return s, nil
}

// Parse decodes scene YAML. See Load.
func Parse(data []byte, d Defaults) (*Scene, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse scene: %w", err)
	}

	if f.Defaults.Height != nil {
		d.Height = *f.Defaults.Height
	}
	if f.Defaults.Color != nil {
		d.Color = RGB(*f.Defaults.Color)
	}
	if d.Height <= 0 {
		return nil, fmt.Errorf("default wall height must be positive, got %g", d.Height)
	}

	walls := make([]Wall, 0, len(f.Walls))
	for i, entry := range f.Walls {
		w, err := entry.resolve(d)
		if err != nil {
			return nil, fmt.Errorf("wall %d: %w", i, err)
		}
		walls = append(walls, w)
	}

	if len(walls) == 0 {
		return nil, fmt.Errorf("scene contains no walls")
	}

	return &Scene{Walls: walls}, nil
}

func (e WallEntry) resolve(d Defaults) (Wall, error) {
	w := Wall{
		A:      geom.Coord{X: e.X1, Y: e.Y1},
		B:      geom.Coord{X: e.X2, Y: e.Y2},
		Height: d.Height,
		Color:  d.Color,
	}
	if e.Height != nil {
		if *e.Height <= 0 {
			return Wall{}, fmt.Errorf("height must be positive, got %g", *e.Height)
		}
		w.Height = *e.Height
	}
	if e.Color != nil {
		w.Color = RGB(*e.Color)
	}
	if w.Length() == 0 {
		return Wall{}, fmt.Errorf("zero-length wall at (%g, %g)", e.X1, e.Y1)
	}
	return w, nil
}
