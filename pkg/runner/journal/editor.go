// Package journal runs the journal commands: the full screen editor, the
// one-shot write and the entries log.
package journal

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/fatih/color"

	"tableflip.dev/calm/pkg/journal"
	tuijournal "tableflip.dev/calm/pkg/tui/journal"
	"tableflip.dev/calm/pkg/tui/theme"
)

// Editor opens the journal editor on the persisted draft.
type Editor struct {
	Store *journal.Store
}

func (n *Editor) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not edit, no journal store")
	}
	if _, err := n.Store.LoadDraft(); err != nil {
		// Start from an empty draft; the editor shows the failure.
		_, _ = fmt.Fprintf(color.Error, "warning: %v\n", err)
	}

	model := tuijournal.New(tuijournal.Options{Store: n.Store, Theme: theme.Default()})
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	_, runErr := p.Run()

	// Whatever was typed last is written before we leave.
	if err := n.Store.Close(); err != nil {
		return err
	}
	if runErr != nil && !errors.Is(runErr, tea.ErrProgramKilled) {
		return runErr
	}

	if c := model.Committed(); c > 0 {
		_, _ = color.New(color.Faint).Fprintf(color.Output, "Saved %d journal %s.\n", c, plural(c, "entry", "entries"))
	}
	return nil
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
