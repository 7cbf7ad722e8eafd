package game

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	ebitext "github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

const hudLineHeight = 16

// UI Color constants
var (
	UIColorPanel  = color.RGBA{0, 0, 0, 150}
	UIColorTitle  = color.RGBA{255, 220, 0, 255}
	UIColorPlayer = color.RGBA{255, 0, 0, 255} // #FF0000, as in the reference overhead view
	UIColorFOV    = color.RGBA{255, 255, 255, 120}
	UIColorWall   = color.RGBA{230, 230, 230, 255}
	UIColorCulled = color.RGBA{120, 120, 120, 255}
)

// UISystem draws the overlays on top of the first-person view
type UISystem struct {
	game *Viewer
}

// NewUISystem creates a new UI system
func NewUISystem(game *Viewer) *UISystem {
	return &UISystem{game: game}
}

// Draw draws every enabled overlay
func (ui *UISystem) Draw(screen *ebiten.Image) {
	if ui.game.showOverhead {
		ui.drawOverhead(screen)
	}
	if ui.game.showHUD {
		ui.drawHUD(screen)
	}
}

// HUDLines returns the status text shown in the HUD.
func (v *Viewer) HUDLines(fps, tps float64) []string {
	m := v.monitor.GetCurrentMetrics()
	distance := v.opts.Forward.String()
	if v.opts.SimpleDistance {
		distance = "simple"
	}
	return []string{
		fmt.Sprintf("FPS %.1f  TPS %.1f  build %.2fms", fps, tps, float64(m.BuildTime.Microseconds())/1000),
		fmt.Sprintf("pos (%.0f, %.0f)  dir %.0f deg  fov %.0f deg",
			v.camera.Pos.X, v.camera.Pos.Y, degrees(v.camera.Dir), degrees(v.camera.FOV)),
		fmt.Sprintf("walls drawn %d  culled %d", m.WallsDrawn, m.WallsCulled),
		fmt.Sprintf("[1] distance: %s  [2] correction: %s  [3] forward: %s",
			distance, v.opts.Correction, v.opts.Forward),
		"WASD/arrows move  Q/E strafe  Z/X zoom  Tab map  H hud  R reset",
	}
}

// drawHUD draws the title and status lines in the top-left corner
func (ui *UISystem) drawHUD(screen *ebiten.Image) {
	lines := ui.game.HUDLines(ebiten.ActualFPS(), ebiten.ActualTPS())

	title := ui.game.config.Display.WindowTitle
	face := basicfont.Face7x13
	width := font.MeasureString(face, title).Round()
	for _, l := range lines {
		// DebugPrint uses a 6px wide glyph
		width = max(width, 6*len(l))
	}
	height := hudLineHeight * (len(lines) + 1)

	vector.DrawFilledRect(screen, 4, 4, float32(width+12), float32(height+8), UIColorPanel, false)
	ebitext.Draw(screen, title, face, 10, 8+face.Ascent, UIColorTitle)
	for i, l := range lines {
		ebitenutil.DebugPrintAt(screen, l, 10, 8+hudLineHeight*(i+1))
	}
}

func degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}
