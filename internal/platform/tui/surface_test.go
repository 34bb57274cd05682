package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/graphdraw/internal/core"
	"github.com/vovakirdan/graphdraw/internal/plot"
)

func TestCanvasViewport(t *testing.T) {
	tests := []struct {
		name       string
		cols, rows int
		margin     float64
		refWidth   int
		wantMargin float64
	}{
		{"scaled", 80, 20, 50, 800, 10},
		{"same width", 400, 150, 50, 800, 50},
		{"wider than reference", 800, 150, 50, 800, 50},
		{"tiny", 4, 2, 50, 800, minMargin},
		{"no reference", 80, 20, 7, 0, 7},
		{"zero margin", 80, 20, 0, 800, minMargin},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := core.NewCanvas(tt.cols, tt.rows)
			vp := canvasViewport(c, tt.margin, tt.refWidth)
			if vp.Width != c.Width() || vp.Height != c.Height() {
				t.Errorf("size = %dx%d, expected %dx%d", vp.Width, vp.Height, c.Width(), c.Height())
			}
			if vp.Margin != tt.wantMargin {
				t.Errorf("margin = %v, expected %v", vp.Margin, tt.wantMargin)
			}
		})
	}
}

func TestCanvasSurfaceText(t *testing.T) {
	tests := []struct {
		name    string
		at      plot.ScreenPoint
		col     int
		row     int
		visible bool
	}{
		{"inside", plot.ScreenPoint{X: 10, Y: 8}, 5, 2, true},
		{"left of canvas", plot.ScreenPoint{X: -20, Y: 8}, 0, 2, true},
		{"below canvas", plot.ScreenPoint{X: 10, Y: 500}, 5, 4, true},
		{"right edge", plot.ScreenPoint{X: 19, Y: 0}, 9, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := core.NewCanvas(10, 5)
			canvasSurface{c}.Text("X", tt.at, plot.LabelFont, core.ColorBlack)
			if got := c.GetCell(tt.col, tt.row).Rune; got != 'X' {
				t.Errorf("cell (%d, %d) = %q, expected 'X'", tt.col, tt.row, got)
			}
		})
	}
}

func TestCanvasSurfaceTextEmptyCanvas(t *testing.T) {
	c := core.NewCanvas(0, 0)
	// Must not panic
	canvasSurface{c}.Text("Y", plot.ScreenPoint{X: 1, Y: 1}, plot.LabelFont, core.ColorBlack)
}

func TestCanvasSurfaceLine(t *testing.T) {
	c := core.NewCanvas(10, 5)
	canvasSurface{c}.Line(plot.ScreenPoint{X: 0, Y: 0}, plot.ScreenPoint{X: 19, Y: 0}, core.ColorRed, plot.StrokeWidth)

	for x := range c.Width() {
		if !c.Dot(x, 0) {
			t.Errorf("dot (%d, 0) not set", x)
		}
	}
	if c.Dot(0, 1) {
		t.Error("stroke width should not widen terminal lines")
	}
}

func TestRenderCanvas(t *testing.T) {
	c := core.NewCanvas(6, 2)
	c.DrawText(0, 0, "ab", core.ColorRed)
	c.SetDot(0, 4, core.ColorBlue)

	out := RenderCanvas(c, lipgloss.NewStyle())
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, expected 2", len(lines))
	}
	if !strings.Contains(lines[0], "ab") {
		t.Errorf("first row %q should contain the text", lines[0])
	}
	if !strings.ContainsRune(lines[1], 0x2801) {
		t.Errorf("second row %q should contain the top-left braille dot", lines[1])
	}
}

func TestKeyMapMapKey(t *testing.T) {
	km := DefaultKeyMap()
	tests := []struct {
		key  string
		want core.Action
	}{
		{"d", core.ActionDraw},
		{"c", core.ActionChangeColor},
		{"tab", core.ActionNext},
		{"l", core.ActionNext},
		{"shift+tab", core.ActionPrev},
		{"enter", core.ActionConfirm},
		{"q", core.ActionQuit},
		{"x", core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := km.MapKey(keyMsg(tt.key)); got != tt.want {
				t.Errorf("MapKey(%q) = %v, expected %v", tt.key, got, tt.want)
			}
		})
	}
}
