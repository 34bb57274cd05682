package plot

import (
	"iter"

	"github.com/vovakirdan/graphdraw/internal/core"
)

// StrokeWidth is the pen width for axes and the curve.
const StrokeWidth = 2.0

// Label offsets relative to the axis ends.
const (
	xLabelDY = 10
	yLabelDX = -20
)

// Config is the plot configuration for one paint pass.
// StartX < EndX and Step > 0 are required for any point to be produced.
type Config struct {
	StartX float64
	EndX   float64
	Step   float64
	Color  core.Color
}

// DefaultConfig returns the configuration the application starts with.
func DefaultConfig() Config {
	return Config{
		StartX: 2.5,
		EndX:   9.0,
		Step:   0.8,
		Color:  core.ColorBlue,
	}
}

// Valid reports whether cfg describes a non-degenerate plot.
// Invalid configurations still render axes and labels.
func (cfg Config) Valid() bool {
	return cfg.Step > 0 && cfg.StartX < cfg.EndX
}

// Samples returns the sample sequence for cfg.
func (cfg Config) Samples() iter.Seq[Sample] {
	return Samples(cfg.StartX, cfg.EndX, cfg.Step)
}

// Render draws the axes, the sampled curve and the axis labels onto dst.
// Undefined samples break the curve: no segment is drawn across them.
func Render(dst Surface, cfg Config, vp Viewport) {
	w := float64(vp.Width)
	h := float64(vp.Height)
	m := vp.Margin
	mid := vp.MidY()

	dst.Line(ScreenPoint{m, mid}, ScreenPoint{w - m, mid}, core.ColorBlack, StrokeWidth)
	dst.Line(ScreenPoint{m, m}, ScreenPoint{m, h - m}, core.ColorBlack, StrokeWidth)

	var (
		prev    ScreenPoint
		hasPrev bool
	)
	for s := range cfg.Samples() {
		if !s.Defined() {
			hasPrev = false
			continue
		}
		p := ToScreen(s, vp, cfg.StartX, cfg.EndX)
		if hasPrev {
			dst.Line(prev, p, cfg.Color, StrokeWidth)
		}
		prev, hasPrev = p, true
	}

	dst.Text("X", ScreenPoint{w - m, mid + xLabelDY}, LabelFont, core.ColorBlack)
	dst.Text("Y", ScreenPoint{m + yLabelDX, m}, LabelFont, core.ColorBlack)
}

// Commands renders into a Recorder and returns the draw commands.
// Identical inputs always produce identical command lists.
func Commands(cfg Config, vp Viewport) []Command {
	var rec Recorder
	Render(&rec, cfg, vp)
	return rec.Commands
}
