package cli

import (
	"context"
	"io"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/rileyhilliard/thermo/internal/config"
	"github.com/rileyhilliard/thermo/internal/display"
	"github.com/rileyhilliard/thermo/internal/errors"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	watchFileFlag  string
	watchTitleFlag string
	watchStepFlag  float64
	watchSetFlag   []string
)

// stdinIsTerminal reports whether stdin is an interactive terminal.
var stdinIsTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// WatchOptions holds options for the watch command.
type WatchOptions struct {
	File      string // Reading source; stdin when empty or "-"
	Title     string
	Step      float64
	Overrides []string
	Output    io.Writer
}

// watchCmd shows a live gauge
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Show a live gauge fed by stdin or a file",
	Long: `Show a gauge that moves as values arrive, one per line.

"42" fills to a quantity of gauge.hatch_total_value, "42%" to a percentage.
Blank lines and lines starting with # are ignored; anything else unreadable
is skipped with a warning.

Keys: up/k and down/j nudge the level, 0-9 jump to 0%-90%, q quits.
When stdout is not a terminal, one gauge is printed per value instead.

Examples:
  sensors-to-pct | thermo watch --title "CPU"
  thermo watch --file levels.txt --step 10`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		return Watch(ctx, WatchOptions{
			File:      watchFileFlag,
			Title:     watchTitleFlag,
			Step:      watchStepFlag,
			Overrides: watchSetFlag,
			Output:    cmd.OutOrStdout(),
		})
	},
}

func init() {
	watchCmd.Flags().StringVarP(&watchFileFlag, "file", "f", "", "read values from this file instead of stdin")
	watchCmd.Flags().StringVar(&watchTitleFlag, "title", "", "title above the gauge")
	watchCmd.Flags().Float64Var(&watchStepFlag, "step", display.DefaultStep, "percent moved by the up and down keys")
	watchCmd.Flags().StringArrayVar(&watchSetFlag, "set", nil, "override a config key (key=value, repeatable)")
	rootCmd.AddCommand(watchCmd)
}

// Watch runs the live display until the user quits or, without a terminal,
// until the input ends.
func Watch(ctx context.Context, opts WatchOptions) error {
	cfg, monochrome, err := loadConfig(opts.Overrides)
	if err != nil {
		return err
	}

	input := io.Reader(os.Stdin)
	fromStdin := true
	title := opts.Title
	if opts.File != "" && opts.File != "-" {
		path := config.ExpandTilde(opts.File)
		f, err := os.Open(path)
		if err != nil {
			return errors.WrapWithCode(err, errors.ErrInput,
				"Can't open "+path,
				"Check the path, or pipe values on stdin instead")
		}
		defer f.Close()
		input = f
		fromStdin = false
		if title == "" {
			title = filepath.Base(path)
		}
	}

	// Keys and values would both be read from the same terminal.
	if fromStdin && stdinIsTerminal() {
		return errors.New(errors.ErrInput,
			"No values to watch: stdin is a terminal",
			"Pipe values in (e.g. 'tail -f levels.log | thermo watch') or pass --file")
	}

	err = display.Run(ctx, display.RunOptions{
		Scene:        sceneOptions(cfg, monochrome),
		Title:        title,
		Step:         opts.Step,
		Input:        input,
		InputIsStdin: fromStdin,
		Output:       opts.Output,
		Logger:       log,
	})
	switch {
	case err == nil, ctx.Err() != nil:
		return nil
	case errors.IsCode(err, errors.ErrInput):
		return err
	default:
		return errors.Wrap(err, "Display failed")
	}
}
