package plot

import "github.com/vovakirdan/graphdraw/internal/core"

// DrawState is the shell's "should I draw" flag.
type DrawState int

const (
	NotDrawing DrawState = iota
	Drawing
)

func (s DrawState) String() string {
	if s == Drawing {
		return "Drawing"
	}
	return "NotDrawing"
}

// Session holds the mutable state a shell owns for one window: the draw
// flag and the configured color. It is used from a single goroutine.
type Session struct {
	state DrawState
	cfg   Config
}

// NewSession creates a session in the NotDrawing state.
func NewSession(cfg Config) *Session {
	return &Session{cfg: cfg}
}

// State returns the current draw state.
func (s *Session) State() DrawState {
	return s.state
}

// Drawing reports whether drawing has been requested.
func (s *Session) Drawing() bool {
	return s.state == Drawing
}

// Config returns the current plot configuration.
func (s *Session) Config() Config {
	return s.cfg
}

// RequestDraw moves the session to Drawing. The transition is terminal.
// It always asks for a repaint.
func (s *Session) RequestDraw() (repaint bool) {
	s.state = Drawing
	return true
}

// ChangeColor applies a color picker result. A cancelled pick (ok false)
// keeps the previous color. A repaint is requested only for a chosen color
// while drawing.
func (s *Session) ChangeColor(c core.Color, ok bool) (repaint bool) {
	if !ok {
		return false
	}
	s.cfg.Color = c
	return s.Drawing()
}

// Paint renders the plot onto dst if drawing was requested, and does
// nothing otherwise.
func (s *Session) Paint(dst Surface, vp Viewport) {
	if !s.Drawing() {
		return
	}
	Render(dst, s.cfg, vp)
}
