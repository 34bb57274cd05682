// Package config provides YAML-based configuration loading for graphdraw.
// Configuration is read-only: choices made in the shells are never written
// back.
package config

import (
	"fmt"
	"time"

	"github.com/vovakirdan/graphdraw/internal/core"
	"github.com/vovakirdan/graphdraw/internal/plot"
)

// Config contains the full application configuration.
type Config struct {
	Plot     PlotConfig     `yaml:"plot"`
	Viewport ViewportConfig `yaml:"viewport"`
	Window   WindowConfig   `yaml:"window"`
	SSH      SSHConfig      `yaml:"ssh"`
}

// PlotConfig defines the sampled domain and initial line color.
type PlotConfig struct {
	StartX float64 `yaml:"start_x"`
	EndX   float64 `yaml:"end_x"`
	Step   float64 `yaml:"step"`
	Color  string  `yaml:"color"` // "#rrggbb" or a palette name
}

// ViewportConfig defines the initial window size and the plot margin.
// Width is also the reference width terminal shells scale the margin from.
type ViewportConfig struct {
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	Margin float64 `yaml:"margin"`
}

// WindowConfig defines window and button texts.
type WindowConfig struct {
	Title      string `yaml:"title"`
	DrawLabel  string `yaml:"draw_label"`
	ColorLabel string `yaml:"color_label"`
}

// SSHConfig defines the defaults of "graphdraw serve".
type SSHConfig struct {
	Address     string        `yaml:"address"`
	HostKeyPath string        `yaml:"host_key_path"` // Empty: ~/.graphdraw/host_key
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// PlotSettings converts the plot section into a plot.Config.
func (c Config) PlotSettings() (plot.Config, error) {
	col, err := core.ParseColor(c.Plot.Color)
	if err != nil {
		return plot.Config{}, fmt.Errorf("config: plot.color: %w", err)
	}
	return plot.Config{
		StartX: c.Plot.StartX,
		EndX:   c.Plot.EndX,
		Step:   c.Plot.Step,
		Color:  col,
	}, nil
}

// ViewportSettings returns the configured viewport.
func (c Config) ViewportSettings() plot.Viewport {
	return plot.Viewport{
		Width:  c.Viewport.Width,
		Height: c.Viewport.Height,
		Margin: c.Viewport.Margin,
	}
}

// Validate checks values that would make the shells unusable. A degenerate
// domain (start >= end or step <= 0) is allowed: it plots axes only.
func (c Config) Validate() error {
	if _, err := core.ParseColor(c.Plot.Color); err != nil {
		return fmt.Errorf("config: plot.color: %w", err)
	}
	if c.Viewport.Width <= 0 || c.Viewport.Height <= 0 {
		return fmt.Errorf("config: viewport size must be positive, got %dx%d",
			c.Viewport.Width, c.Viewport.Height)
	}
	if c.Viewport.Margin < 0 {
		return fmt.Errorf("config: viewport.margin must not be negative, got %g", c.Viewport.Margin)
	}
	if c.SSH.IdleTimeout < 0 {
		return fmt.Errorf("config: ssh.idle_timeout must not be negative, got %s", c.SSH.IdleTimeout)
	}
	return nil
}
