package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/graphdraw/internal/plot"
)

var (
	flagStart  float64
	flagEnd    float64
	flagStep   float64
	flagPointW int
	flagPointH int
)

var pointsCmd = &cobra.Command{
	Use:   "points",
	Short: "Print the sampled points as a table",
	Long: `Print every sample of the configured range: x, y (or the reason y is
undefined) and the screen position the sample maps to in the viewport.

Examples:
  graphdraw points
  graphdraw points --start -1 --end 2 --step 0.25
  graphdraw points --width 1024 --height 768`,
	Args: cobra.NoArgs,
	RunE: runPoints,
}

func init() {
	pointsCmd.Flags().Float64Var(&flagStart, "start", 0, "First x (default: plot.start_x)")
	pointsCmd.Flags().Float64Var(&flagEnd, "end", 0, "Last x (default: plot.end_x)")
	pointsCmd.Flags().Float64Var(&flagStep, "step", 0, "Step between samples (default: plot.step)")
	pointsCmd.Flags().IntVar(&flagPointW, "width", 0, "Viewport width (default: viewport.width)")
	pointsCmd.Flags().IntVar(&flagPointH, "height", 0, "Viewport height (default: viewport.height)")
}

func runPoints(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	plotCfg, err := cfg.PlotSettings()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("start") {
		plotCfg.StartX = flagStart
	}
	if flags.Changed("end") {
		plotCfg.EndX = flagEnd
	}
	if flags.Changed("step") {
		plotCfg.Step = flagStep
	}

	vp := cfg.ViewportSettings()
	if flagPointW > 0 {
		vp.Width = flagPointW
	}
	if flagPointH > 0 {
		vp.Height = flagPointH
	}

	writePoints(cmd.OutOrStdout(), plotCfg, vp)
	return nil
}

// writePoints prints the sample table for cfg in viewport vp.
func writePoints(w io.Writer, cfg plot.Config, vp plot.Viewport) {
	if !cfg.Valid() {
		fmt.Fprintf(w, "No samples: need step > 0 and start < end (start=%g end=%g step=%g).\n",
			cfg.StartX, cfg.EndX, cfg.Step)
		return
	}

	// Calculate index column width
	n := plot.Count(cfg.StartX, cfg.EndX, cfg.Step)
	idxW := max(len(strconv.Itoa(n-1)), 1)

	fmt.Fprintf(w, "  %*s  %10s  %12s  %9s  %9s\n", idxW, "#", "x", "y", "screen x", "screen y")
	fmt.Fprintf(w, "  %*s  %10s  %12s  %9s  %9s\n", idxW, "-", "-", "-", "--------", "--------")

	i, undefined := 0, 0
	for s := range cfg.Samples() {
		p := plot.ToScreen(s, vp, cfg.StartX, cfg.EndX)
		if s.Defined() {
			fmt.Fprintf(w, "  %*d  %10.4f  %12.6f  %9.2f  %9.2f\n", idxW, i, s.X, s.Y, p.X, p.Y)
		} else {
			undefined++
			fmt.Fprintf(w, "  %*d  %10.4f  %12s  %9.2f  %9s   %v\n", idxW, i, s.X, "undefined", p.X, "-", s.Err)
		}
		i++
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%d samples, %d undefined, viewport %dx%d margin %g\n",
		n, undefined, vp.Width, vp.Height, vp.Margin)
}
