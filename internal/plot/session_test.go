package plot

import (
	"testing"

	"github.com/vovakirdan/graphdraw/internal/core"
)

func TestSessionInitialState(t *testing.T) {
	s := NewSession(DefaultConfig())
	if s.State() != NotDrawing || s.Drawing() {
		t.Fatalf("new session should not be drawing, got %v", s.State())
	}

	var rec Recorder
	s.Paint(&rec, defaultViewport)
	if len(rec.Commands) != 0 {
		t.Errorf("paint before a draw request should be a no-op, got %d commands", len(rec.Commands))
	}
}

func TestSessionRequestDraw(t *testing.T) {
	s := NewSession(DefaultConfig())
	if !s.RequestDraw() {
		t.Error("RequestDraw should ask for a repaint")
	}
	if !s.Drawing() {
		t.Fatal("session should be drawing after RequestDraw")
	}

	// Drawing is terminal: a second request keeps the state
	s.RequestDraw()
	if s.State() != Drawing {
		t.Errorf("state = %v, expected Drawing", s.State())
	}

	var rec Recorder
	s.Paint(&rec, defaultViewport)
	if len(rec.Commands) != len(Commands(DefaultConfig(), defaultViewport)) {
		t.Errorf("paint while drawing should render the full plot, got %d commands", len(rec.Commands))
	}
}

func TestSessionChangeColor(t *testing.T) {
	tests := []struct {
		name        string
		drawing     bool
		color       core.Color
		ok          bool
		wantRepaint bool
		wantColor   core.Color
	}{
		{"cancel while idle", false, core.ColorRed, false, false, core.ColorBlue},
		{"cancel while drawing", true, core.ColorRed, false, false, core.ColorBlue},
		{"choose while idle", false, core.ColorRed, true, false, core.ColorRed},
		{"choose while drawing", true, core.ColorRed, true, true, core.ColorRed},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewSession(DefaultConfig())
			if tc.drawing {
				s.RequestDraw()
			}

			if got := s.ChangeColor(tc.color, tc.ok); got != tc.wantRepaint {
				t.Errorf("ChangeColor() repaint = %v, expected %v", got, tc.wantRepaint)
			}
			if s.Config().Color != tc.wantColor {
				t.Errorf("color = %v, expected %v", s.Config().Color, tc.wantColor)
			}
			if s.Drawing() != tc.drawing {
				t.Error("ChangeColor must not alter the draw state")
			}
		})
	}
}

func TestSessionPaintUsesCurrentColor(t *testing.T) {
	s := NewSession(DefaultConfig())
	s.RequestDraw()
	s.ChangeColor(core.ColorMagenta, true)

	var rec Recorder
	s.Paint(&rec, defaultViewport)
	if len(curveLines(rec.Commands, core.ColorMagenta)) == 0 {
		t.Error("curve should be drawn in the newly chosen color")
	}
	if len(curveLines(rec.Commands, core.ColorBlue)) != 0 {
		t.Error("previous color should no longer be used")
	}
}
