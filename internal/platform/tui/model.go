// Package tui provides the Bubble Tea shell for the function plotter.
// It owns the draw flag and line color (through a plot.Session), maps keys
// and mouse clicks to actions, and paints the plot onto a braille canvas.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/vovakirdan/graphdraw/internal/config"
	"github.com/vovakirdan/graphdraw/internal/core"
	"github.com/vovakirdan/graphdraw/internal/plot"
)

// Screen layout constants
const (
	headerHeight = 1 // Button row
	footerHeight = 1 // Help line
)

// Button identifiers, also used as bubblezone IDs.
const (
	buttonDraw  = "draw"
	buttonColor = "color"
)

var buttons = []string{buttonDraw, buttonColor}

// Model is the Bubble Tea model of the plot window.
type Model struct {
	session *plot.Session
	cfg     config.Config
	canvas  *core.Canvas
	zones   *zone.Manager
	keys    KeyMap
	help    help.Model
	theme   Theme
	picker  *ColorPicker // Non-nil while the color dialog is open
	focus   int          // Index into buttons
	width   int
	height  int

	quitting bool
}

// NewModel creates the plot model for a terminal of the given size.
func NewModel(cfg config.Config, rt core.RuntimeConfig) (Model, error) {
	plotCfg, err := cfg.PlotSettings()
	if err != nil {
		return Model{}, err
	}

	m := Model{
		session: plot.NewSession(plotCfg),
		cfg:     cfg,
		canvas:  core.NewCanvas(0, 0),
		zones:   zone.New(),
		keys:    DefaultKeyMap(),
		help:    help.New(),
		theme:   DefaultTheme(),
	}
	m.resize(rt.ScreenW, rt.ScreenH)
	return m, nil
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Session exposes the draw flag and color state.
func (m Model) Session() *plot.Session {
	return m.session
}

// PickerOpen reports whether the color dialog is showing.
func (m Model) PickerOpen() bool {
	return m.picker != nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m.quit()
		}
		if m.picker != nil {
			return m.updatePicker(msg)
		}
		return m.handleKey(msg)

	case tea.MouseMsg:
		if m.picker != nil {
			return m.updatePicker(msg)
		}
		return m.handleMouse(msg)
	}

	if m.picker != nil {
		return m.updatePicker(msg)
	}
	return m, nil
}

// handleKey processes keyboard input on the plot screen.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MapKey(msg) {
	case core.ActionQuit:
		return m.quit()
	case core.ActionDraw:
		m.session.RequestDraw()
	case core.ActionChangeColor:
		return m.openPicker()
	case core.ActionNext:
		m.focus = (m.focus + 1) % len(buttons)
	case core.ActionPrev:
		m.focus = (m.focus + len(buttons) - 1) % len(buttons)
	case core.ActionConfirm:
		return m.press(buttons[m.focus])
	}
	return m, nil
}

// handleMouse activates a button on left click.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	for i, id := range buttons {
		if z := m.zones.Get(id); z != nil && z.InBounds(msg) {
			m.focus = i
			return m.press(id)
		}
	}
	return m, nil
}

// press performs a button's action.
func (m Model) press(id string) (tea.Model, tea.Cmd) {
	switch id {
	case buttonDraw:
		m.session.RequestDraw()
	case buttonColor:
		return m.openPicker()
	}
	return m, nil
}

// openPicker shows the color dialog preselecting the current color.
func (m Model) openPicker() (tea.Model, tea.Cmd) {
	p := NewColorPicker(m.session.Config().Color, m.width, m.canvas.Rows(), m.theme)
	m.picker = &p
	return m, nil
}

// updatePicker forwards a message to the dialog and closes it once it has
// a result, chosen or cancelled.
func (m Model) updatePicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	p, cmd := m.picker.Update(msg)
	if !p.Done() {
		m.picker = &p
		return m, cmd
	}

	m.picker = nil
	m.session.ChangeColor(p.Result())
	return m, cmd
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	m.zones.Close()
	return m, tea.Quit
}

// resize adapts the canvas to a new terminal size.
func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width
	m.canvas.Resize(width, max(height-headerHeight-footerHeight, 0))
	if m.picker != nil {
		m.picker.SetSize(width, m.canvas.Rows())
	}
}

// Viewport returns the plot viewport for the current canvas.
func (m Model) Viewport() plot.Viewport {
	return canvasViewport(m.canvas, m.cfg.Viewport.Margin, m.cfg.Viewport.Width)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	header := m.viewHeader()

	var body string
	if m.picker != nil {
		body = lipgloss.Place(m.width, m.canvas.Rows(), lipgloss.Center, lipgloss.Center, m.picker.View())
	} else {
		m.canvas.Clear()
		m.session.Paint(canvasSurface{m.canvas}, m.Viewport())
		body = RenderCanvas(m.canvas, m.theme.Canvas)
	}

	footer := m.help.View(m.keys)
	return m.zones.Scan(lipgloss.JoinVertical(lipgloss.Left, header, body, footer))
}

// viewHeader renders the button row and the current color.
func (m Model) viewHeader() string {
	labels := map[string]string{
		buttonDraw:  m.cfg.Window.DrawLabel,
		buttonColor: m.cfg.Window.ColorLabel,
	}

	parts := make([]string, 0, len(buttons)*2+1)
	for i, id := range buttons {
		style := m.theme.Button
		if i == m.focus && m.picker == nil {
			style = m.theme.ButtonFocused
		}
		parts = append(parts, m.zones.Mark(id, style.Render(labels[id])), " ")
	}

	c := m.session.Config().Color
	swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex())).Render("■")
	parts = append(parts, swatch+m.theme.Status.Render(fmt.Sprintf(" %s  %s", c.Hex(), m.session.State())))
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// Run starts the Bubble Tea program for the plot window.
func Run(cfg config.Config, rt core.RuntimeConfig) error {
	model, err := NewModel(cfg, rt)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Button clicks
	)

	_, err = p.Run()
	return err
}
