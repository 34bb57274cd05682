package config

import (
	_ "embed"
	"time"

	"github.com/vovakirdan/graphdraw/internal/plot"
)

//go:embed defaults/graphdraw.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Plot: PlotConfig{
			StartX: 2.5,
			EndX:   9.0,
			Step:   0.8,
			Color:  "#0000ff",
		},
		Viewport: ViewportConfig{
			Width:  800,
			Height: 600,
			Margin: plot.DefaultMargin,
		},
		Window: WindowConfig{
			Title:      "Function graph",
			DrawLabel:  "Draw graph",
			ColorLabel: "Change graph color",
		},
		SSH: SSHConfig{
			Address:     ":23235",
			IdleTimeout: 30 * time.Minute,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
