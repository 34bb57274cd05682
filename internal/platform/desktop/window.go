// Package desktop provides the ebiten window shell for the function
// plotter: two buttons over a white client area, and an in-window palette
// dialog for the line color.
package desktop

import (
	"errors"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/graphdraw/internal/config"
	"github.com/vovakirdan/graphdraw/internal/core"
)

// Widget colors
var (
	buttonFill   = core.RGB(0xe1, 0xe1, 0xe1)
	buttonBorder = core.RGB(0xad, 0xad, 0xad)
	dialogShade  = core.RGB(0x80, 0x80, 0x80)
)

// keyActions maps keys to shell actions.
var keyActions = []struct {
	key    ebiten.Key
	action core.Action
}{
	{ebiten.KeyD, core.ActionDraw},
	{ebiten.KeyC, core.ActionChangeColor},
	{ebiten.KeyEscape, core.ActionBack},
	{ebiten.KeyQ, core.ActionQuit},
}

type game struct {
	app  *App
	face text.Face
}

func (g *game) Update() error {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.app.Click(ebiten.CursorPosition())
	}
	for _, ka := range keyActions {
		if inpututil.IsKeyJustPressed(ka.key) && g.app.Handle(ka.action) {
			return ebiten.Termination
		}
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(core.ColorWhite)
	if rec := g.app.Plot(); rec != nil {
		rec.Replay(imageSurface{dst: screen, face: g.face})
	}

	for _, b := range g.app.Buttons() {
		g.drawButton(screen, b.Rect, b.Label)
	}
	if d := g.app.Dialog(); d != nil {
		g.drawDialog(screen, d)
	}
}

// Layout makes the logical screen track the window's client size.
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.app.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func (g *game) drawButton(dst *ebiten.Image, r core.Rect, label string) {
	fillRect(dst, r, buttonFill)
	vector.StrokeRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 1, buttonBorder, false)
	cx, cy := r.Center()
	drawText(dst, label, g.face, float64(cx-textWidth(label)/2), float64(cy-charH/2), core.ColorBlack)
}

func (g *game) drawDialog(dst *ebiten.Image, d *Dialog) {
	b := d.Box
	fillRect(dst, core.NewRect(b.X+3, b.Y+3, b.W, b.H), dialogShade)
	fillRect(dst, b, core.ColorWhite)
	vector.StrokeRect(dst, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), 1, core.ColorBlack, false)
	drawText(dst, d.Title, g.face, float64(b.X+swatchGap), float64(b.Y+(dialogTitleH-charH)/2), core.ColorBlack)

	for _, s := range d.Swatches {
		r := s.Rect
		fillRect(dst, r, s.Color.Color)
		width := float32(1)
		if s.Color.Color == d.Current {
			width = 3
		}
		vector.StrokeRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), width, core.ColorBlack, false)
	}
	g.drawButton(dst, d.Cancel, "Cancel")
}

func fillRect(dst *ebiten.Image, r core.Rect, c core.Color) {
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
}

// Run opens the plot window and blocks until it is closed.
func Run(cfg config.Config, logger *log.Logger) error {
	app, err := NewApp(cfg)
	if err != nil {
		return err
	}

	g := &game{
		app:  app,
		face: text.NewGoXFace(basicfont.Face7x13),
	}

	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowSize(cfg.Viewport.Width, cfg.Viewport.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	logger.Info("window opened", "title", cfg.Window.Title,
		"width", cfg.Viewport.Width, "height", cfg.Viewport.Height)
	err = ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		err = nil
	}
	logger.Info("window closed")
	return err
}
