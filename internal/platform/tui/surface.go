package tui

import (
	"math"
	"unicode/utf8"

	"github.com/vovakirdan/graphdraw/internal/core"
	"github.com/vovakirdan/graphdraw/internal/plot"
)

// minMargin keeps the axes off the terminal edge on tiny screens.
const minMargin = 2.0

// canvasSurface adapts a braille Canvas to plot.Surface. Viewport pixels
// are canvas dots; stroke width is always one dot.
type canvasSurface struct {
	c *core.Canvas
}

func (s canvasSurface) Line(from, to plot.ScreenPoint, c core.Color, _ float64) {
	s.c.Line(from.X, from.Y, to.X, to.Y, c)
}

// Text places s on the cell containing the anchor, pulled back inside the
// canvas so labels near the edges stay visible.
func (s canvasSurface) Text(str string, at plot.ScreenPoint, _ plot.Font, c core.Color) {
	if math.IsNaN(at.X) || math.IsNaN(at.Y) || s.c.Cols() == 0 || s.c.Rows() == 0 {
		return
	}
	col := int(math.Floor(at.X / core.DotsPerCellX))
	row := int(math.Floor(at.Y / core.DotsPerCellY))
	col = core.Clamp(col, 0, max(s.c.Cols()-utf8.RuneCountInString(str), 0))
	row = core.Clamp(row, 0, s.c.Rows()-1)
	s.c.DrawText(col, row, str, c)
}

// canvasViewport returns the viewport for a canvas. The configured margin
// is defined for a window refWidth pixels wide and is scaled to the
// canvas width in dots.
func canvasViewport(c *core.Canvas, margin float64, refWidth int) plot.Viewport {
	m := margin
	if refWidth > 0 {
		m = margin * float64(c.Width()) / float64(refWidth)
	}
	return plot.Viewport{
		Width:  c.Width(),
		Height: c.Height(),
		Margin: core.ClampF(m, minMargin, math.Max(margin, minMargin)),
	}
}
