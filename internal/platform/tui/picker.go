package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/graphdraw/internal/core"
)

// Picker dialog layout constants
const (
	pickerWidth     = 36
	pickerMaxHeight = 20
	pickerChrome    = 4 // Border and padding around the list
)

// colorItem is a palette entry in the picker list.
type colorItem struct {
	name   string
	color  core.Color
	custom bool
}

func (i colorItem) Title() string {
	return i.name
}

func (i colorItem) Description() string {
	if i.custom {
		return "enter #rrggbb"
	}
	return i.color.Hex()
}

func (i colorItem) FilterValue() string {
	return i.name
}

// ColorPicker is a modal color chooser: a palette list plus a hex entry
// field for custom colors. It finishes with either a chosen color or a
// cancellation, after which the owner closes it.
type ColorPicker struct {
	list     list.Model
	input    textinput.Model
	keys     PickerKeyMap
	theme    Theme
	entering bool // Hex entry field is active
	errMsg   string

	done   bool
	chosen core.Color
	ok     bool
}

// NewColorPicker creates a picker with current preselected.
func NewColorPicker(current core.Color, width, height int, theme Theme) ColorPicker {
	items := make([]list.Item, 0, len(core.Palette)+1)
	selected := -1
	for i, nc := range core.Palette {
		items = append(items, colorItem{name: nc.Name, color: nc.Color})
		if nc.Color == current {
			selected = i
		}
	}
	items = append(items, colorItem{name: "Custom...", color: current, custom: true})
	if selected < 0 {
		selected = len(items) - 1
	}

	l := list.New(items, list.NewDefaultDelegate(), pickerWidth, pickerMaxHeight)
	l.Title = "Choose graph color"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.KeyMap.Quit.SetEnabled(false)
	l.KeyMap.ForceQuit.SetEnabled(false)

	ti := textinput.New()
	ti.Placeholder = "#1e90ff"
	ti.CharLimit = 7
	ti.Width = 10
	ti.SetValue(current.Hex())

	p := ColorPicker{
		list:  l,
		input: ti,
		keys:  DefaultPickerKeyMap(),
		theme: theme,
	}
	p.SetSize(width, height)
	// Select after sizing: the page depends on items per page
	p.list.Select(selected)
	return p
}

// SetSize fits the dialog into a screen of the given size.
func (p *ColorPicker) SetSize(width, height int) {
	w := core.Clamp(width-pickerChrome, 10, pickerWidth)
	h := core.Clamp(height-pickerChrome-2, 5, pickerMaxHeight)
	p.list.SetSize(w, h)
}

// Done reports whether the dialog has finished.
func (p ColorPicker) Done() bool {
	return p.done
}

// Result returns the chosen color, with ok false if the dialog was cancelled.
func (p ColorPicker) Result() (core.Color, bool) {
	return p.chosen, p.ok
}

// Update handles messages for the dialog.
func (p ColorPicker) Update(msg tea.Msg) (ColorPicker, tea.Cmd) {
	if p.done {
		return p, nil
	}

	keyMsg, isKey := msg.(tea.KeyMsg)
	if p.entering {
		if isKey {
			switch p.keys.MapKey(keyMsg) {
			case core.ActionBack:
				// Back to the palette
				p.entering = false
				p.errMsg = ""
				p.input.Blur()
				return p, nil
			case core.ActionConfirm:
				c, err := core.ParseColor(p.input.Value())
				if err != nil {
					p.errMsg = "not a color: " + p.input.Value()
					return p, nil
				}
				return p.finish(c, true), nil
			}
		}
		var cmd tea.Cmd
		p.input, cmd = p.input.Update(msg)
		return p, cmd
	}

	if isKey {
		switch p.keys.MapKey(keyMsg) {
		case core.ActionBack:
			return p.finish(core.Color{}, false), nil
		case core.ActionConfirm:
			item, ok := p.list.SelectedItem().(colorItem)
			if !ok {
				return p, nil
			}
			if item.custom {
				p.entering = true
				p.input.CursorEnd()
				return p, p.input.Focus()
			}
			return p.finish(item.color, true), nil
		}
	}

	var cmd tea.Cmd
	p.list, cmd = p.list.Update(msg)
	return p, cmd
}

func (p ColorPicker) finish(c core.Color, ok bool) ColorPicker {
	p.done = true
	p.chosen = c
	p.ok = ok
	p.input.Blur()
	return p
}

// View renders the dialog box.
func (p ColorPicker) View() string {
	var b strings.Builder
	if p.entering {
		b.WriteString(p.theme.DialogTitle.Render("Custom color"))
		b.WriteString("\n\n")
		b.WriteString(p.input.View())
		b.WriteString("\n")
		if p.errMsg != "" {
			b.WriteString(p.theme.DialogError.Render(p.errMsg))
		}
		b.WriteString("\n")
		b.WriteString(p.theme.Status.Render("enter choose • esc back"))
	} else {
		b.WriteString(p.list.View())
	}
	return p.theme.DialogBorder.Render(b.String())
}
