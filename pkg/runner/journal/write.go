package journal

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/calm/pkg/glyph"
	"tableflip.dev/calm/pkg/journal"
)

// Write commits text as a journal entry without opening the editor or
// touching the draft. With Draft set it replaces the draft instead.
type Write struct {
	Store *journal.Store
	Text  string
	Mood  glyph.Mood
	Draft bool
	Out   io.Writer
}

func (n *Write) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not write, no journal store")
	}
	if n.Out == nil {
		n.Out = color.Output
	}
	defer n.Store.Close()

	if !n.Draft {
		e, err := n.Store.Append(n.Text, n.Mood)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintf(n.Out, "Saved entry from %s.\n", e.Timestamp.Local().Format("Jan 2 15:04"))
		return nil
	}

	if _, err := n.Store.LoadDraft(); err != nil {
		return err
	}
	n.Store.UpdateText(n.Text)
	n.Store.SetMood(n.Mood)
	if err := n.Store.Flush(); err != nil {
		return err
	}
	_, _ = fmt.Fprintln(n.Out, "Draft saved.")
	return nil
}
