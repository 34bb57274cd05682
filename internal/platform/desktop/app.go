package desktop

import (
	"github.com/vovakirdan/graphdraw/internal/config"
	"github.com/vovakirdan/graphdraw/internal/core"
	"github.com/vovakirdan/graphdraw/internal/plot"
)

// App is the window state independent of the graphics backend: the plot
// session, the button row and the color dialog.
type App struct {
	session *plot.Session
	cfg     config.Config
	buttons []Button
	dialog  *Dialog // Non-nil while the palette is open
	width   int
	height  int

	// Last recorded plot and the inputs it was rendered from
	rec      plot.Recorder
	plotCfg  plot.Config
	plotVP   plot.Viewport
	plotDone bool
}

// NewApp creates the window state from the loaded configuration.
func NewApp(cfg config.Config) (*App, error) {
	plotCfg, err := cfg.PlotSettings()
	if err != nil {
		return nil, err
	}
	return &App{
		session: plot.NewSession(plotCfg),
		cfg:     cfg,
		buttons: layoutButtons(cfg.Window.DrawLabel, cfg.Window.ColorLabel),
		width:   cfg.Viewport.Width,
		height:  cfg.Viewport.Height,
	}, nil
}

// Session exposes the draw flag and color state.
func (a *App) Session() *plot.Session {
	return a.session
}

// Dialog returns the open color dialog, or nil.
func (a *App) Dialog() *Dialog {
	return a.dialog
}

// Buttons returns the button row.
func (a *App) Buttons() []Button {
	return a.buttons
}

// Resize records the client size. An open dialog is re-centered.
func (a *App) Resize(width, height int) {
	if width == a.width && height == a.height {
		return
	}
	a.width, a.height = width, height
	if a.dialog != nil {
		d := NewDialog(a.dialog.Current, width, height)
		a.dialog = &d
	}
}

// Viewport returns the viewport for the current client size.
func (a *App) Viewport() plot.Viewport {
	return plot.Viewport{
		Width:  a.width,
		Height: a.height,
		Margin: a.cfg.Viewport.Margin,
	}
}

// Plot returns the draw commands for the current frame, or nil before
// drawing is requested. Commands are re-rendered only when the color or
// the client size changed since the previous frame.
func (a *App) Plot() *plot.Recorder {
	if !a.session.Drawing() {
		return nil
	}
	cfg, vp := a.session.Config(), a.Viewport()
	if !a.plotDone || cfg != a.plotCfg || vp != a.plotVP {
		a.rec.Commands = a.rec.Commands[:0]
		a.session.Paint(&a.rec, vp)
		a.plotCfg, a.plotVP, a.plotDone = cfg, vp, true
	}
	return &a.rec
}

// Click handles a left click at (x, y).
func (a *App) Click(x, y int) {
	if a.dialog != nil {
		c, res := a.dialog.Click(x, y)
		switch res {
		case DialogChosen:
			a.closeDialog(c, true)
		case DialogCancelled:
			a.closeDialog(core.Color{}, false)
		}
		return
	}

	switch hitButton(a.buttons, x, y) {
	case buttonDraw:
		a.Handle(core.ActionDraw)
	case buttonColor:
		a.Handle(core.ActionChangeColor)
	}
}

// Handle performs a keyboard action and reports whether the window
// should close.
func (a *App) Handle(action core.Action) bool {
	if a.dialog != nil {
		if action == core.ActionBack {
			a.closeDialog(core.Color{}, false)
		}
		return false
	}

	switch action {
	case core.ActionDraw:
		a.session.RequestDraw()
	case core.ActionChangeColor:
		d := NewDialog(a.session.Config().Color, a.width, a.height)
		a.dialog = &d
	case core.ActionQuit:
		return true
	}
	return false
}

func (a *App) closeDialog(c core.Color, ok bool) {
	a.dialog = nil
	a.session.ChangeColor(c, ok)
}
