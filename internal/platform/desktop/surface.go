package desktop

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/graphdraw/internal/core"
	"github.com/vovakirdan/graphdraw/internal/plot"
)

// clipPad lets antialiased strokes run slightly past the image edge.
const clipPad = 8.0

// imageSurface draws plot commands onto an ebiten image.
type imageSurface struct {
	dst  *ebiten.Image
	face text.Face
}

// Line strokes an antialiased segment. Segments are clipped first so
// points far outside the window never reach the rasterizer.
func (s imageSurface) Line(from, to plot.ScreenPoint, c core.Color, width float64) {
	b := s.dst.Bounds()
	x0, y0, x1, y1, ok := core.ClipLine(from.X, from.Y, to.X, to.Y,
		float64(b.Min.X)-clipPad, float64(b.Min.Y)-clipPad,
		float64(b.Max.X)+clipPad, float64(b.Max.Y)+clipPad)
	if !ok {
		return
	}
	vector.StrokeLine(s.dst, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), c, true)
}

// Text draws str with its top-left corner at the anchor. The font request
// is served by the window's single bitmap face.
func (s imageSurface) Text(str string, at plot.ScreenPoint, _ plot.Font, c core.Color) {
	drawText(s.dst, str, s.face, at.X, at.Y, c)
}

func drawText(dst *ebiten.Image, str string, face text.Face, x, y float64, c core.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(dst, str, face, op)
}
