package plot

import "math"

// YUnits is the number of data units the graph height represents.
// The vertical scale is fixed and does not fit the data's range.
const YUnits = 10.0

// DefaultMargin is the viewport margin in pixels.
const DefaultMargin = 50.0

// Viewport is the current drawable area. It is supplied by the shell on
// every repaint and never cached by the renderer.
type Viewport struct {
	Width  int
	Height int
	Margin float64
}

// MidY returns the vertical position of the horizontal axis. The height is
// halved in integer arithmetic, as window client sizes are.
func (vp Viewport) MidY() float64 {
	return float64(vp.Height / 2)
}

// ScreenPoint is a position in viewport pixels, y growing downwards.
type ScreenPoint struct {
	X, Y float64
}

// Scale returns the data-to-pixel scale factors for the given x range.
func Scale(vp Viewport, startX, endX float64) (scaleX, scaleY float64) {
	graphWidth := float64(vp.Width) - 2*vp.Margin
	graphHeight := float64(vp.Height) - 2*vp.Margin
	return graphWidth / (endX - startX), graphHeight / YUnits
}

// ToScreen maps a sample into the viewport. An undefined sample maps to a
// point with NaN Y.
func ToScreen(s Sample, vp Viewport, startX, endX float64) ScreenPoint {
	scaleX, scaleY := Scale(vp, startX, endX)
	y := s.Y
	if !s.Defined() {
		y = math.NaN()
	}
	return ScreenPoint{
		X: vp.Margin + (s.X-startX)*scaleX,
		Y: vp.MidY() - y*scaleY,
	}
}
