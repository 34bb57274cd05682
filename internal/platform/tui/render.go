package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/graphdraw/internal/core"
)

// RenderCanvas converts a Canvas to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderCanvas(c *core.Canvas, base lipgloss.Style) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(c.Cols()*c.Rows()*4 + c.Rows())

	styles := make(map[core.Color]lipgloss.Style)
	styleFor := func(cell core.Cell) lipgloss.Style {
		if !cell.Colored {
			return base
		}
		st, ok := styles[cell.Color]
		if !ok {
			st = base.Foreground(lipgloss.Color(cell.Color.Hex()))
			styles[cell.Color] = st
		}
		return st
	}

	for row := range c.Rows() {
		if row > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		col := 0
		for col < c.Cols() {
			first := c.GetCell(col, row)

			var run strings.Builder
			for col < c.Cols() {
				cell := c.GetCell(col, row)
				if cell.Colored != first.Colored || (cell.Colored && cell.Color != first.Color) {
					break
				}
				run.WriteRune(cell.Rune)
				col++
			}

			sb.WriteString(styleFor(first).Render(run.String()))
		}
	}
	return sb.String()
}
