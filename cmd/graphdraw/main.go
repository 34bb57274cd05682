// graphdraw plots y = (1.5x - ln(2x)) / (3x + 1) over a configurable range.
//
// Usage:
//
//	graphdraw                 - Open the plot in the terminal
//	graphdraw gui             - Open the plot in a desktop window
//	graphdraw serve           - Serve the terminal plot over SSH
//	graphdraw export          - Render the plot to a PNG file
//	graphdraw points          - Print the sampled points as a table
//	graphdraw version         - Print the version
//
// Global flags:
//
//	--config <path>      - Config file (default: search ~/.graphdraw, ./configs)
//	--log-level <level>  - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/graphdraw/internal/config"
	"github.com/vovakirdan/graphdraw/internal/core"
	"github.com/vovakirdan/graphdraw/internal/platform/tui"
)

var (
	// Global flags
	flagConfig   string
	flagLogLevel string
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "graphdraw",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "graphdraw",
	Short: "Plot y = (1.5x - ln(2x)) / (3x + 1)",
	Long: `graphdraw plots the function y = (1.5x - ln(2x)) / (3x + 1) between
a start and end x with a fixed step.

Without a subcommand the plot opens in the terminal. Nothing is drawn until
"Draw graph" is pressed; "Change graph color" picks the line color.

Controls:
  d          - Draw graph
  c          - Change graph color
  Tab/Enter  - Move between and press buttons
  Mouse      - Click buttons
  Q/Ctrl+C   - Quit

Examples:
  graphdraw
  graphdraw gui
  graphdraw export -o graph.png --color red
  graphdraw points --step 0.1
  graphdraw serve --ssh :2222`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupLogging,
	RunE:              runTerminal,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(guiCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(pointsCmd)
	rootCmd.AddCommand(versionCmd)
}

func setupLogging(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	logger.SetLevel(level)
	return nil
}

// loadConfig loads the configuration selected by --config.
func loadConfig() (config.Config, error) {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}
	logger.Debug("configuration loaded", "source", source)
	return cfg, nil
}

func runTerminal(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	rt := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}

	logger.Debug("starting terminal shell", "cols", rt.ScreenW, "rows", rt.ScreenH)
	return tui.Run(cfg, rt)
}
