package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rileyhilliard/thermo/internal/config"
	"github.com/rileyhilliard/thermo/internal/errors"
	"github.com/rileyhilliard/thermo/internal/gauge"
	"github.com/rileyhilliard/thermo/internal/ui"
	"github.com/spf13/cobra"
)

var (
	initForceFlag          bool
	initNonInteractiveFlag bool
)

// InitOptions holds options for the init command.
type InitOptions struct {
	Path           string // Where to write; ./.thermo.yaml when empty
	Overwrite      bool   // Overwrite existing config without asking
	NonInteractive bool   // Skip prompts, use defaults
	Out            io.Writer
}

// initCmd creates a config file
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a .thermo.yaml config file",
	Long: `Create a .thermo.yaml in the current directory.

Asks a few questions about the gauge (size, hatches, value label, color)
and writes the answers along with every other default.

Runs without prompts when --non-interactive, THERMO_NON_INTERACTIVE or CI
is set.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return Init(InitOptions{
			Path:           configFlag,
			Overwrite:      initForceFlag,
			NonInteractive: initNonInteractiveFlag || nonInteractiveEnv(),
			Out:            cmd.OutOrStdout(),
		})
	},
}

func init() {
	initCmd.Flags().BoolVarP(&initForceFlag, "force", "f", false, "overwrite existing config")
	initCmd.Flags().BoolVar(&initNonInteractiveFlag, "non-interactive", false, "write defaults without prompting")
	rootCmd.AddCommand(initCmd)
}

// nonInteractiveEnv reports whether the environment asks for no prompts.
func nonInteractiveEnv() bool {
	for _, name := range []string{"THERMO_NON_INTERACTIVE", "CI"} {
		if v, err := strconv.ParseBool(os.Getenv(name)); err == nil && v {
			return true
		}
	}
	return false
}

// initAnswers are the form fields, kept as strings for huh inputs.
type initAnswers struct {
	width       string
	showHatches bool
	hatchType   string
	total       string
	showValue   bool
	fillColor   string
}

// Init creates a new .thermo.yaml configuration file.
func Init(opts InitOptions) error {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	configPath := opts.Path
	if configPath == "" {
		configPath = filepath.Join(".", config.ConfigFileName)
	}
	configPath = config.ExpandTilde(configPath)

	// Check for existing config
	if _, err := os.Stat(configPath); err == nil && !opts.Overwrite {
		if opts.NonInteractive {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("Config file already exists: %s", configPath),
				"Use --force to overwrite")
		}

		var overwrite bool
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Config file '%s' already exists. Overwrite?", configPath)).
					Value(&overwrite),
			),
		)
		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Try running with --force to overwrite")
		}
		if !overwrite {
			fmt.Fprintln(opts.Out, "Cancelled.")
			return nil
		}
	}

	cfg := config.DefaultConfig()
	if !opts.NonInteractive {
		answers := defaultAnswers(cfg.Gauge)
		if err := initForm(&answers).Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				"Failed to get user input",
				"Check terminal compatibility or use --non-interactive flag")
		}
		if err := answers.apply(&cfg.Gauge); err != nil {
			return err
		}
	}

	if err := config.Validate(cfg); err != nil {
		return err
	}
	if err := config.Write(configPath, cfg); err != nil {
		return err
	}

	fmt.Fprintf(opts.Out, "%s Created %s\n\n", ui.SymbolSuccess, configPath)
	fmt.Fprintln(opts.Out, "Next steps:")
	fmt.Fprintln(opts.Out, "  thermo render 42%     - Print a gauge")
	fmt.Fprintln(opts.Out, "  thermo watch          - Live gauge from stdin")
	fmt.Fprintln(opts.Out, "  thermo config keys    - Everything you can tune")
	return nil
}

func defaultAnswers(g gauge.Config) initAnswers {
	return initAnswers{
		width:       strconv.FormatFloat(g.Width, 'f', -1, 64),
		showHatches: g.ShowHatches,
		hatchType:   string(g.HatchType),
		total:       strconv.FormatFloat(g.HatchTotalValue, 'f', -1, 64),
		showValue:   g.ShowValue,
		fillColor:   g.FillColor,
	}
}

func initForm(a *initAnswers) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Gauge width").
				Description("In layout units; two units make one terminal column").
				Value(&a.width).
				Validate(positiveNumber),
			huh.NewInput().
				Title("Fill color").
				Description("Hex color of the filled part").
				Value(&a.fillColor).
				Validate(func(s string) error {
					if _, err := colorful.Hex(strings.TrimSpace(s)); err != nil {
						return fmt.Errorf("use a hex color like #44A0FC")
					}
					return nil
				}),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Show hatch marks under the gauge?").
				Value(&a.showHatches),
			huh.NewSelect[string]().
				Title("Label hatches and the value as").
				Options(
					huh.NewOption("Percentages", string(gauge.Percent)),
					huh.NewOption("Quantities", string(gauge.Quantity)),
				).
				Value(&a.hatchType),
			huh.NewInput().
				Title("Full-scale quantity").
				Description("The quantity that fills the gauge").
				Value(&a.total).
				Validate(positiveNumber),
			huh.NewConfirm().
				Title("Show the current value on the gauge?").
				Value(&a.showValue),
		),
	)
}

func positiveNumber(s string) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v <= 0 {
		return fmt.Errorf("enter a number above zero")
	}
	return nil
}

// apply copies the answers onto g. Hatch labels follow the hatches, and the
// value label uses the same unit as the hatches.
func (a initAnswers) apply(g *gauge.Config) error {
	width, err := strconv.ParseFloat(strings.TrimSpace(a.width), 64)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrInput, "Gauge width must be a number", "")
	}
	total, err := strconv.ParseFloat(strings.TrimSpace(a.total), 64)
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrInput, "Full-scale quantity must be a number", "")
	}

	g.Width = width
	g.HatchTotalValue = total
	g.FillColor = strings.TrimSpace(a.fillColor)
	g.ShowHatches = a.showHatches
	g.ShowHatchLabels = a.showHatches
	g.HatchType = gauge.ValueType(a.hatchType).Normalize()
	g.ShowValue = a.showValue
	g.ShowValueType = g.HatchType
	return nil
}
