// Package exercise runs a timed exercise, either in the full screen view or,
// when stdout is not a terminal, as one printed line per phase.
package exercise

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"tableflip.dev/calm/pkg/clock"
	"tableflip.dev/calm/pkg/config"
	"tableflip.dev/calm/pkg/engine"
	ex "tableflip.dev/calm/pkg/exercise"
	"tableflip.dev/calm/pkg/narration"
	"tableflip.dev/calm/pkg/timeutil"
	tuiexercise "tableflip.dev/calm/pkg/tui/exercise"
	"tableflip.dev/calm/pkg/tui/theme"
)

type Exercise struct {
	Config  *config.Config
	Pattern ex.Pattern
	// Patterns are offered for switching in the full screen view.
	Patterns []ex.Pattern
	Narrator narration.Narrator
	Speak    bool
	// Plain forces line output even on a terminal.
	Plain bool
	// Cycles stops a plain run after that many cycles; zero runs until
	// interrupted.
	Cycles int

	Out io.Writer
	// Clock and Scheduler default to the system clock.
	Clock     clock.Clock
	Scheduler clock.Scheduler
}

func (n *Exercise) Do(ctx context.Context) error {
	if n.Config == nil {
		var err error
		n.Config, err = config.LoadConfig()
		if err != nil {
			return err
		}
	}
	if n.Narrator == nil {
		n.Narrator = narration.NoOp{}
	}
	if n.Out == nil {
		n.Out = color.Output
	}
	if n.Clock == nil {
		n.Clock = clock.System{}
	}
	if n.Scheduler == nil {
		n.Scheduler = clock.System{}
	}
	if n.Plain || !isTerminal(os.Stdout) {
		return n.plain(ctx)
	}
	return n.interactive(ctx)
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (n *Exercise) options() engine.Options {
	return engine.Options{
		Clock:     n.Clock,
		Scheduler: n.Scheduler,
		MinPhase:  n.Config.Engine.MinPhase,
		MaxPhase:  n.Config.Engine.MaxPhase,
		Logger:    slog.Default(),
	}
}

func (n *Exercise) interactive(ctx context.Context) error {
	var p *tea.Program
	onPhase, onCycle := tuiexercise.Hooks(func(msg tea.Msg) {
		if p != nil {
			p.Send(msg)
		}
	})
	opts := n.options()
	opts.OnPhase = onPhase
	opts.OnCycle = onCycle

	eng, err := engine.New(n.Pattern, opts)
	if err != nil {
		return err
	}
	defer eng.Close()

	model := tuiexercise.New(tuiexercise.Options{
		Engine:   eng,
		Patterns: n.Patterns,
		Narrator: n.Narrator,
		Voice:    narration.VoiceFrom(n.Config.Narration),
		Speak:    n.Speak,
		Theme:    theme.Default(),
	})
	p = tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	return nil
}

type event struct {
	phase  *engine.State
	cycles int
}

func (n *Exercise) plain(ctx context.Context) error {
	// Notifications arrive on timer goroutines; printing and speaking
	// happen here so a slow narrator never overlaps itself.
	events := make(chan event, 16)
	done := make(chan struct{})
	defer close(done)
	send := func(ev event) {
		select {
		case events <- ev:
		case <-done:
		case <-ctx.Done():
		}
	}
	opts := n.options()
	opts.OnPhase = func(st engine.State) { send(event{phase: &st}) }
	opts.OnCycle = func(c int) { send(event{cycles: c}) }

	eng, err := engine.New(n.Pattern, opts)
	if err != nil {
		return err
	}
	defer eng.Close()

	title := color.New(color.Bold, color.Underline)
	step := color.New(color.FgHiCyan)
	faint := color.New(color.Faint)
	cheer := color.New(color.FgHiGreen, color.Italic)

	_, _ = title.Fprintf(n.Out, "%s (%s)\n", n.Pattern.Title, n.Pattern.Rhythm())
	voice := narration.VoiceFrom(n.Config.Narration)
	speak := n.Speak && n.Narrator.Available()

	if err := eng.Start(); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			eng.Close()
			_, _ = faint.Fprintln(n.Out, "Stopped.")
			return nil
		case ev := <-events:
			if ev.phase != nil {
				_, _ = faint.Fprintf(n.Out, "%5s  ", timeutil.Format(ev.phase.Phase.Duration))
				_, _ = step.Fprintln(n.Out, ev.phase.Phase.Text())
				if speak {
					if err := n.Narrator.Speak(ctx, ev.phase.Phase.Text(), voice); err != nil && ctx.Err() == nil {
						_, _ = fmt.Fprintf(os.Stderr, "narration: %v\n", err)
						speak = false
					}
				}
				continue
			}
			_, _ = faint.Fprintf(n.Out, "Cycle %d complete.\n", ev.cycles)
			if msg, ok := ex.Encouragement(ev.cycles); ok {
				_, _ = cheer.Fprintln(n.Out, msg)
			}
			if n.Cycles > 0 && ev.cycles >= n.Cycles {
				return nil
			}
		}
	}
}
