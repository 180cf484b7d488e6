package cli

import (
	"fmt"
	"io"

	"github.com/rileyhilliard/thermo/internal/display"
	"github.com/rileyhilliard/thermo/internal/errors"
	"github.com/rileyhilliard/thermo/internal/feed"
	"github.com/spf13/cobra"
)

var (
	renderPercentFlag  float64
	renderQuantityFlag float64
	renderSetFlag      []string
)

// RenderOptions holds options for the render command.
type RenderOptions struct {
	Value     string   // Positional reading, "42" or "42%"
	Percent   *float64 // --percent
	Quantity  *float64 // --quantity
	Overrides []string // --set key=value
}

// renderCmd prints one settled gauge
var renderCmd = &cobra.Command{
	Use:   "render [value]",
	Short: "Print a gauge filled to a value",
	Long: `Print a gauge filled to a quantity or a percentage.

The value can be given as an argument ("42" is a quantity, "42%" a percentage)
or with --quantity / --percent. Without a value the gauge is empty.

Examples:
  thermo render 75%
  thermo render --quantity 30 --set gauge.hatch_total_value=50
  thermo render 60 --set gauge.show_hatches=true --set gauge.show_hatch_labels=true`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := RenderOptions{Overrides: renderSetFlag}
		if len(args) == 1 {
			opts.Value = args[0]
		}
		if cmd.Flags().Changed("percent") {
			opts.Percent = &renderPercentFlag
		}
		if cmd.Flags().Changed("quantity") {
			opts.Quantity = &renderQuantityFlag
		}
		return Render(cmd.OutOrStdout(), opts)
	},
}

func init() {
	renderCmd.Flags().Float64Var(&renderPercentFlag, "percent", 0, "fill to this percentage")
	renderCmd.Flags().Float64Var(&renderQuantityFlag, "quantity", 0, "fill to this quantity of hatch_total_value")
	renderCmd.Flags().StringArrayVar(&renderSetFlag, "set", nil, "override a config key (key=value, repeatable)")
	rootCmd.AddCommand(renderCmd)
}

// Render writes a gauge filled according to opts.
func Render(out io.Writer, opts RenderOptions) error {
	reading, ok, err := opts.reading()
	if err != nil {
		return err
	}

	cfg, monochrome, err := loadConfig(opts.Overrides)
	if err != nil {
		return err
	}

	scene := display.NewScene(sceneOptions(cfg, monochrome))
	if ok {
		log.Debug("render %s", reading)
		scene.Apply(reading)
	}

	_, err = fmt.Fprintln(out, scene.Render())
	return err
}

// reading picks the single value to fill to. It reports false when none was
// given.
func (o RenderOptions) reading() (feed.Reading, bool, error) {
	given := 0
	for _, set := range []bool{o.Value != "", o.Percent != nil, o.Quantity != nil} {
		if set {
			given++
		}
	}
	if given > 1 {
		return feed.Reading{}, false, errors.New(errors.ErrInput,
			"Can only fill to one value at a time",
			"Pass a value argument, --percent or --quantity, not several")
	}

	switch {
	case o.Percent != nil:
		return feed.Reading{Kind: feed.KindPercent, Value: *o.Percent}, true, nil
	case o.Quantity != nil:
		return feed.Reading{Kind: feed.KindQuantity, Value: *o.Quantity}, true, nil
	case o.Value != "":
		r, err := feed.Parse(o.Value)
		if err != nil {
			return feed.Reading{}, false, errors.WrapWithCode(err, errors.ErrInput,
				fmt.Sprintf("Can't read %q as a value", o.Value),
				`Use a number like "42" or a percentage like "42%"`)
		}
		return r, true, nil
	}
	return feed.Reading{}, false, nil
}
