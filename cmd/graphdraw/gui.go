package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/graphdraw/internal/platform/desktop"
)

var guiCmd = &cobra.Command{
	Use:   "gui",
	Short: "Open the plot in a desktop window",
	Long: `Open a resizable desktop window with the "Draw graph" and
"Change graph color" buttons. The plot follows the window size.

Controls:
  Mouse      - Click buttons and palette swatches
  D / C      - Draw graph / Change graph color
  Esc        - Cancel the color dialog
  Q          - Quit`,
	RunE: runGUI,
}

func runGUI(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	return desktop.Run(cfg, logger)
}
