package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/graphdraw/internal/core"
)

func TestColorPickerPreselect(t *testing.T) {
	tests := []struct {
		name    string
		current core.Color
		want    string
	}{
		{"palette color", core.ColorRed, "Red"},
		{"custom color", core.RGB(1, 2, 3), "Custom..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewColorPicker(tt.current, 80, 24, DefaultTheme())
			item, ok := p.list.SelectedItem().(colorItem)
			if !ok {
				t.Fatal("no item selected")
			}
			if item.name != tt.want {
				t.Errorf("selected %q, expected %q", item.name, tt.want)
			}
		})
	}
}

func TestColorPickerCancel(t *testing.T) {
	p := NewColorPicker(core.ColorRed, 80, 24, DefaultTheme())
	p, _ = p.Update(tea.KeyMsg{Type: tea.KeyEsc})

	if !p.Done() {
		t.Fatal("esc should finish the dialog")
	}
	if _, ok := p.Result(); ok {
		t.Error("cancelled dialog should report ok=false")
	}
}

func TestColorPickerChooseCurrent(t *testing.T) {
	p := NewColorPicker(core.ColorTeal, 80, 24, DefaultTheme())
	p, _ = p.Update(tea.KeyMsg{Type: tea.KeyEnter})

	c, ok := p.Result()
	if !p.Done() || !ok {
		t.Fatal("enter should choose the selected color")
	}
	if c != core.ColorTeal {
		t.Errorf("chose %v, expected %v", c, core.ColorTeal)
	}
}

func TestColorPickerIgnoresInputWhenDone(t *testing.T) {
	p := NewColorPicker(core.ColorTeal, 80, 24, DefaultTheme())
	p, _ = p.Update(tea.KeyMsg{Type: tea.KeyEsc})
	p, _ = p.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if _, ok := p.Result(); ok {
		t.Error("a finished dialog must keep its result")
	}
}

func TestColorPickerCustomPrefill(t *testing.T) {
	p := NewColorPicker(core.RGB(0x12, 0x34, 0x56), 80, 24, DefaultTheme())
	p, _ = p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !p.entering {
		t.Fatal("enter on Custom... should open hex entry")
	}
	if got := p.input.Value(); got != "#123456" {
		t.Errorf("hex field = %q, expected the current color", got)
	}

	// Accept the prefilled value
	p, _ = p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if c, ok := p.Result(); !ok || c != core.RGB(0x12, 0x34, 0x56) {
		t.Errorf("Result() = %v, %v", c, ok)
	}
}
