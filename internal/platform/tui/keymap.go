package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/graphdraw/internal/core"
)

// KeyMap defines the key bindings of the plot screen.
type KeyMap struct {
	Draw        key.Binding
	ChangeColor key.Binding
	Next        key.Binding
	Prev        key.Binding
	Press       key.Binding
	Quit        key.Binding
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Draw: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "draw graph"),
		),
		ChangeColor: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "change color"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next button"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev button"),
		),
		Press: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "press button"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Draw, k.ChangeColor, k.Next, k.Press, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Draw, k.ChangeColor},
		{k.Next, k.Prev, k.Press},
		{k.Quit},
	}
}

// MapKey translates a key message to a shell action.
func (k KeyMap) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Draw):
		return core.ActionDraw
	case key.Matches(msg, k.ChangeColor):
		return core.ActionChangeColor
	case key.Matches(msg, k.Next):
		return core.ActionNext
	case key.Matches(msg, k.Prev):
		return core.ActionPrev
	case key.Matches(msg, k.Press):
		return core.ActionConfirm
	}
	return core.ActionNone
}

// PickerKeyMap defines the key bindings of the color picker dialog.
// Navigation inside the palette uses the list's own bindings.
type PickerKeyMap struct {
	Choose key.Binding
	Cancel key.Binding
}

// DefaultPickerKeyMap returns default picker key bindings.
func DefaultPickerKeyMap() PickerKeyMap {
	return PickerKeyMap{
		Choose: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "choose"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
	}
}

// MapKey translates a key message to a picker action.
func (k PickerKeyMap) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Choose):
		return core.ActionConfirm
	case key.Matches(msg, k.Cancel):
		return core.ActionBack
	}
	return core.ActionNone
}
