// Package moods prints the mood legend used by the journal.
package moods

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/calm/pkg/glyph"
)

// Moods prints each mood with its symbol and the editor key that picks it.
type Moods struct {
	Out io.Writer
}

func (k *Moods) Do(ctx context.Context) error {
	if k.Out == nil {
		k.Out = color.Output
	}
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Key"), bold.Sprint("Mood"), bold.Sprint("Name"))
	glyphs := glyph.DefaultGlyphs()
	for _, m := range glyph.Moods() {
		g := glyphs[m]
		tbl.AddRow("alt+"+g.Key, g.Symbol, g.Meaning)
	}
	tbl.RightAlign(0)

	_, _ = fmt.Fprintln(k.Out, "")
	_, _ = fmt.Fprintln(k.Out, tbl)
	_, _ = fmt.Fprintln(k.Out, "")
	return nil
}
