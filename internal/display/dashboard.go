// Package display runs a gauge as a live terminal view. Readings arrive
// from a feed goroutine through a Bridge and are applied on the Bubble Tea
// update loop, which also steps the fill animation.
package display

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/thermo/internal/feed"
	"github.com/rileyhilliard/thermo/internal/logger"
	"golang.org/x/term"
)

// RunOptions configures Run.
type RunOptions struct {
	Scene Options
	Title string
	Step  float64

	// Input is the reading feed. When it is stdin, keys are read from the
	// controlling terminal instead.
	Input        io.Reader
	InputIsStdin bool
	Output       io.Writer
	Logger       logger.Logger
}

// Run shows the gauge until the user quits. If Output is not a terminal it
// prints one settled frame per reading instead and returns when the feed
// ends.
func Run(ctx context.Context, opts RunOptions) error {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Logger == nil {
		opts.Logger = logger.NewEnvLogger("[watch]")
	}

	if !isTerminal(opts.Output) {
		opts.Scene.Animate = false
		return runPlain(ctx, opts)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	opts.Scene.Animate = true
	model := NewModel(NewScene(opts.Scene), opts.Title, opts.Step)

	programOpts := []tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithOutput(opts.Output),
	}
	if opts.InputIsStdin {
		programOpts = append(programOpts, tea.WithInputTTY())
	}
	program := tea.NewProgram(model, programOpts...)

	bridge := NewBridge(program)
	go func() {
		if err := feed.Stream(ctx, opts.Input, bridge, opts.Logger); err != nil {
			opts.Logger.Debug("feed stopped: %v", err)
		}
	}()

	if _, err := program.Run(); err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return err
	}
	return nil
}

// printer is the feed.Sink used without a terminal.
type printer struct {
	scene *Scene
	out   io.Writer
	err   error
}

func (p *printer) Reading(r feed.Reading) {
	if p.err != nil {
		return
	}
	p.scene.Apply(r)
	_, p.err = fmt.Fprintln(p.out, p.scene.Render())
}

func (p *printer) Done(error) {}

func runPlain(ctx context.Context, opts RunOptions) error {
	p := &printer{scene: NewScene(opts.Scene), out: opts.Output}
	if err := feed.Stream(ctx, opts.Input, p, opts.Logger); err != nil {
		return err
	}
	return p.err
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
