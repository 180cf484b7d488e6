package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/rileyhilliard/thermo/internal/config"
	"github.com/rileyhilliard/thermo/internal/display"
	"github.com/rileyhilliard/thermo/internal/errors"
	"github.com/rileyhilliard/thermo/internal/logger"
	"github.com/rileyhilliard/thermo/internal/ui"
	"github.com/spf13/cobra"
)

// Global flags
var (
	configFlag  string
	noColorFlag bool
	verboseFlag bool
)

var log = logger.NewEnvLogger("[thermo]")

// rootCmd is the base command
var rootCmd = &cobra.Command{
	Use:   "thermo",
	Short: "Thermometer gauges for your terminal",
	Long: `thermo draws a thermometer gauge that fills by quantity or by percent,
with optional hatch marks and labels.

Render a single gauge, or watch one move as values stream in:

  thermo render 42%
  thermo render --quantity 30 --set gauge.hatch_total_value=50
  tail -f levels.log | thermo watch`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.EnableDebug(verboseFlag)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "config file (default: search for .thermo.yaml)")
	rootCmd.PersistentFlags().BoolVar(&noColorFlag, "no-color", false, "disable colors")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "print debug output")
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig resolves and validates config, then applies the color mode.
// It reports whether output should be monochrome.
func loadConfig(overrides []string) (*config.Config, bool, error) {
	cfg, path, err := config.Resolve(configFlag, overrides)
	if err != nil {
		return nil, false, err
	}
	if err := config.Validate(cfg); err != nil {
		return nil, false, err
	}
	if path == "" {
		log.Debug("no config file found, using defaults")
	} else {
		log.Debug("loaded config from %s", path)
	}

	mode := cfg.Output.Color
	if noColorFlag {
		mode = ui.ColorModeNever
	}
	colors, err := ui.ApplyColorMode(mode)
	if err != nil {
		return nil, false, errors.WrapWithCode(err, errors.ErrConfig, err.Error(), "")
	}
	return cfg, !colors, nil
}

// sceneOptions maps config onto a display scene.
func sceneOptions(cfg *config.Config, monochrome bool) display.Options {
	return display.Options{
		Gauge:                cfg.Gauge,
		InnerBoundAdjustment: cfg.Render.InnerBoundAdjustment,
		ScaleX:               cfg.Render.ScaleX,
		ScaleY:               cfg.Render.ScaleY,
		FPS:                  cfg.Animation.FPS,
		Frequency:            cfg.Animation.Frequency,
		Damping:              cfg.Animation.Damping,
		Monochrome:           monochrome,
		Logger:               logger.NewEnvLogger("[gauge]"),
	}
}
