package game

import (
	"image/color"
	"math"

	"github.com/jaffob/plumbus3d-web/internal/config"
	"github.com/jaffob/plumbus3d-web/internal/geometry"
	"github.com/jaffob/plumbus3d-web/internal/scene"
	"github.com/jaffob/plumbus3d-web/internal/view"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jbeda/geom"
)

// Minimap maps world coordinates into a corner of the screen.
type Minimap struct {
	world  geom.Rect // World area shown, scene bounds plus padding
	scale  float64
	origin geom.Coord // Screen position of world.Min
}

// NewMinimap fits the scene and the camera into the top-right corner of a
// screen screenWidth pixels wide.
func NewMinimap(s *scene.Scene, cam view.Camera, cfg config.OverheadConfig, screenWidth int) Minimap {
	r, ok := s.Bounds()
	if !ok {
		r = geom.Rect{Min: cam.Pos, Max: cam.Pos}
	}
	r.ExpandToContainCoord(cam.Pos)

	pad := 2 * cfg.PlayerRadius
	r.Min = geom.Coord{X: r.Min.X - pad, Y: r.Min.Y - pad}
	r.Max = geom.Coord{X: r.Max.X + pad, Y: r.Max.Y + pad}

	margin := float64(cfg.Margin)
	return Minimap{
		world: r,
		scale: cfg.Scale,
		origin: geom.Coord{
			X: float64(screenWidth) - margin - r.Width()*cfg.Scale,
			Y: margin,
		},
	}
}

// ToScreen converts a world point to screen pixels.
func (m Minimap) ToScreen(p geom.Coord) (float32, float32) {
	return float32(m.origin.X + (p.X-m.world.Min.X)*m.scale),
		float32(m.origin.Y + (p.Y-m.world.Min.Y)*m.scale)
}

// Size returns the map's size in pixels.
func (m Minimap) Size() (float32, float32) {
	return float32(m.world.Width() * m.scale), float32(m.world.Height() * m.scale)
}

// drawOverhead draws the top-down view: walls, the player, its heading and
// the edges of the field of view. Walls left out of the last frame are
// drawn dimmed.
func (ui *UISystem) drawOverhead(screen *ebiten.Image) {
	g := ui.game
	cfg := g.config.Overhead
	m := NewMinimap(g.scene, g.camera, cfg, g.config.GetScreenWidth())

	x, y := m.ToScreen(m.world.Min)
	w, h := m.Size()
	vector.DrawFilledRect(screen, x, y, w, h, UIColorPanel, false)

	drawn := make(map[int]bool)
	if g.lastFrame != nil {
		for _, q := range g.lastFrame.Quads {
			drawn[q.Wall] = true
		}
	}
	for i, wall := range g.scene.Walls {
		clr := UIColorWall
		if !drawn[i] {
			clr = UIColorCulled
		}
		x1, y1 := m.ToScreen(wall.A)
		x2, y2 := m.ToScreen(wall.B)
		vector.StrokeLine(screen, x1, y1, x2, y2, 1, clr, true)
	}

	// View edges
	reach := 4 * cfg.PlayerRadius
	for _, edge := range []float64{-g.camera.HalfFOV(), g.camera.HalfFOV()} {
		drawRay(screen, m, g.camera.Pos, g.camera.Dir+edge, reach, UIColorFOV)
	}

	// Player and heading, as in the reference 2D view
	px, py := m.ToScreen(g.camera.Pos)
	r := float32(math.Max(cfg.PlayerRadius*m.scale, 2))
	vector.DrawFilledCircle(screen, px, py, r, UIColorPlayer, true)
	drawRay(screen, m, g.camera.Pos, g.camera.Dir, 2*cfg.PlayerRadius, color.RGBA{A: 255})
}

func drawRay(screen *ebiten.Image, m Minimap, from geom.Coord, angle, length float64, clr color.Color) {
	dir := geometry.Direction(angle)
	to := from.Plus(dir.Times(length))
	x1, y1 := m.ToScreen(from)
	x2, y2 := m.ToScreen(to)
	vector.StrokeLine(screen, x1, y1, x2, y2, 1, clr, true)
}
