// Package canvas rasterizes view frames onto an ebiten image.
package canvas

import (
	"image/color"

	"github.com/jaffob/plumbus3d-web/internal/view"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Screen is a view.Canvas backed by an ebiten image.
type Screen struct {
	dst      *ebiten.Image
	whiteImg *ebiten.Image // 1x1 white image for untextured polygons
	vertices []ebiten.Vertex
	indices  []uint16
}

// NewScreen creates a canvas. Call Target before drawing.
func NewScreen() *Screen {
	s := &Screen{}
	s.whiteImg = ebiten.NewImage(1, 1)
	s.whiteImg.Fill(color.White)
	return s
}

// Target sets the image the next draw calls go to.
func (s *Screen) Target(dst *ebiten.Image) {
	s.dst = dst
}

// FillRect implements view.Canvas.
func (s *Screen) FillRect(r view.Rect) {
	if r.W <= 0 || r.H <= 0 {
		return
	}
	vector.DrawFilledRect(s.dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), r.Color, false)
}

// FillQuad implements view.Canvas.
func (s *Screen) FillQuad(q view.Quad) {
	s.vertices, s.indices = AppendQuad(s.vertices[:0], s.indices[:0], q)
	if len(s.indices) == 0 {
		return
	}
	s.dst.DrawTriangles(s.vertices, s.indices, s.whiteImg, quadOptions())
}

// quadOptions fills path triangles by winding so a quad that folds over
// itself after clipping is not filled twice.
func quadOptions() *ebiten.DrawTrianglesOptions {
	return &ebiten.DrawTrianglesOptions{
		AntiAlias: false,
		FillRule:  ebiten.NonZero,
	}
}

// AppendQuad appends the triangles filling q, colored with the quad's color.
func AppendQuad(vs []ebiten.Vertex, is []uint16, q view.Quad) ([]ebiten.Vertex, []uint16) {
	path := vector.Path{}
	path.MoveTo(float32(q.Points[0].X), float32(q.Points[0].Y))
	for _, p := range q.Points[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}
	path.Close()

	start := len(vs)
	vs, is = path.AppendVerticesAndIndicesForFilling(vs, is)

	r := float32(q.Color.R) / 255
	g := float32(q.Color.G) / 255
	b := float32(q.Color.B) / 255
	a := float32(q.Color.A) / 255
	for i := start; i < len(vs); i++ {
		vs[i].SrcX = 0
		vs[i].SrcY = 0
		vs[i].ColorR = r
		vs[i].ColorG = g
		vs[i].ColorB = b
		vs[i].ColorA = a
	}
	return vs, is
}
