// Package affirm shows the next affirmation from the deck.
package affirm

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"tableflip.dev/calm/pkg/content"
	"tableflip.dev/calm/pkg/narration"
	"tableflip.dev/calm/pkg/printers"
)

type Affirm struct {
	KV content.KV
	// All prints the whole deck without moving the position.
	All      bool
	Speak    bool
	Narrator narration.Narrator
	Voice    narration.Voice
	Out      io.Writer
}

func (n *Affirm) Do(ctx context.Context) error {
	if n.Out == nil {
		n.Out = color.Output
	}
	pp := printers.PrettyPrint{Out: n.Out}

	if n.All {
		for _, a := range content.Affirmations() {
			pp.Quote(a)
		}
		return nil
	}

	if n.KV == nil {
		return errors.New("can not affirm, no persistence")
	}
	text, err := content.NextAffirmation(n.KV)
	if err != nil {
		return err
	}
	pp.Quote(text)

	if n.Speak {
		if n.Narrator == nil || !n.Narrator.Available() {
			_, _ = fmt.Fprintln(os.Stderr, "narration: no speech program found")
			return nil
		}
		return n.Narrator.Speak(ctx, text, n.Voice)
	}
	return nil
}
