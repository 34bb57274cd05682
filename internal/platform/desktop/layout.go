package desktop

import (
	"github.com/vovakirdan/graphdraw/internal/core"
)

// Widget metrics in window pixels. Text uses a 7x13 bitmap face.
const (
	charW = 7
	charH = 13

	buttonY    = 5
	buttonH    = 23
	buttonPadX = 8
	buttonGap  = 10

	swatchSize   = 36
	swatchGap    = 8
	swatchCols   = 5
	dialogTitleH = 24
	cancelW      = 80
	cancelH      = 23
)

// Button IDs
const (
	buttonDraw  = "draw"
	buttonColor = "color"
)

// Fixed button positions from the left edge of the window.
var buttonX = map[string]int{
	buttonDraw:  10,
	buttonColor: 140,
}

// Button is a clickable labelled rectangle.
type Button struct {
	ID    string
	Label string
	Rect  core.Rect
}

// textWidth returns the pixel width of s in the label face.
func textWidth(s string) int {
	return len([]rune(s)) * charW
}

// layoutButtons places the draw and color buttons on the top row. The
// color button moves right if a long draw label would overlap it.
func layoutButtons(drawLabel, colorLabel string) []Button {
	draw := Button{
		ID:    buttonDraw,
		Label: drawLabel,
		Rect:  core.NewRect(buttonX[buttonDraw], buttonY, textWidth(drawLabel)+2*buttonPadX, buttonH),
	}
	x := max(buttonX[buttonColor], draw.Rect.Right()+buttonGap)
	color := Button{
		ID:    buttonColor,
		Label: colorLabel,
		Rect:  core.NewRect(x, buttonY, textWidth(colorLabel)+2*buttonPadX, buttonH),
	}
	return []Button{draw, color}
}

// hitButton returns the ID of the button under (x, y), or "".
func hitButton(buttons []Button, x, y int) string {
	for _, b := range buttons {
		if b.Rect.Contains(x, y) {
			return b.ID
		}
	}
	return ""
}

// DialogResult is the outcome of a click in the color dialog.
type DialogResult int

const (
	DialogNone DialogResult = iota
	DialogChosen
	DialogCancelled
)

// Swatch is one palette color in the dialog.
type Swatch struct {
	Color core.NamedColor
	Rect  core.Rect
}

// Dialog is the modal palette shown by the color button.
type Dialog struct {
	Box      core.Rect
	Title    string
	Swatches []Swatch
	Cancel   core.Rect
	Current  core.Color
}

// NewDialog lays out the palette centered in a window of the given size.
func NewDialog(current core.Color, width, height int) Dialog {
	rows := (len(core.Palette) + swatchCols - 1) / swatchCols
	boxW := swatchCols*swatchSize + (swatchCols+1)*swatchGap
	boxH := dialogTitleH + rows*swatchSize + (rows+1)*swatchGap + cancelH + swatchGap

	box := core.NewRect(max((width-boxW)/2, 0), max((height-boxH)/2, 0), boxW, boxH)

	d := Dialog{
		Box:     box,
		Title:   "Choose graph color",
		Current: current,
	}
	top := box.Y + dialogTitleH + swatchGap
	for i, nc := range core.Palette {
		col, row := i%swatchCols, i/swatchCols
		d.Swatches = append(d.Swatches, Swatch{
			Color: nc,
			Rect: core.NewRect(
				box.X+swatchGap+col*(swatchSize+swatchGap),
				top+row*(swatchSize+swatchGap),
				swatchSize, swatchSize,
			),
		})
	}
	d.Cancel = core.NewRect(box.Right()-swatchGap-cancelW, box.Bottom()-swatchGap-cancelH, cancelW, cancelH)
	return d
}

// Click resolves a click at (x, y). Clicks outside the swatches and the
// Cancel button are ignored while the dialog is open.
func (d Dialog) Click(x, y int) (core.Color, DialogResult) {
	if d.Cancel.Contains(x, y) {
		return core.Color{}, DialogCancelled
	}
	for _, s := range d.Swatches {
		if s.Rect.Contains(x, y) {
			return s.Color.Color, DialogChosen
		}
	}
	return core.Color{}, DialogNone
}
