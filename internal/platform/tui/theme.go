package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme contains the visual styles of the terminal shell.
type Theme struct {
	// Buttons
	Button        lipgloss.Style
	ButtonFocused lipgloss.Style

	// Plot area background; cells are drawn with their own foreground
	Canvas lipgloss.Style

	// Status line next to the buttons
	Status lipgloss.Style

	// Color picker dialog
	DialogBorder lipgloss.Style
	DialogTitle  lipgloss.Style
	DialogError  lipgloss.Style
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	return Theme{
		Button: lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color("#000000")).
			Background(lipgloss.Color("252")),
		ButtonFocused: lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Bold(true),

		// White like a window client area, so black axes stay visible
		Canvas: lipgloss.NewStyle().Background(lipgloss.Color("#ffffff")),

		Status: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),

		DialogBorder: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1),
		DialogTitle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")),
		DialogError: lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	}
}
