// Package home prints the landing screen: what calm can do and how to start.
package home

import (
	"context"
	"io"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/calm/pkg/content"
	"tableflip.dev/calm/pkg/printers"
)

type Home struct {
	Out io.Writer
}

// techniques are shown in the order a panicking reader should see them.
var techniques = [][2]string{
	{"calm help-now", "Box breathing, right now."},
	{"calm breathe", "Calm breathing: in, hold, out."},
	{"calm ground", "5-4-3-2-1 grounding with your senses."},
	{"calm relax", "Progressive muscle relaxation."},
	{"calm visualize", "A guided walk on a quiet beach."},
	{"calm journal", "Write it down; the draft saves itself."},
	{"calm affirm", "The next affirmation."},
	{"calm activity", "Movement that helps, with a breathing guide."},
	{"calm patterns", "Every exercise and its rhythm."},
}

func (n *Home) Do(ctx context.Context) error {
	if n.Out == nil {
		n.Out = color.Output
	}
	pp := printers.PrettyPrint{Out: n.Out}
	pp.Quote(content.Affirmation(0))
	pp.NewLine()
	pp.Title("Coping techniques")

	cmd := color.New(color.FgHiCyan)
	tbl := uitable.New()
	tbl.Separator = "  "
	for _, t := range techniques {
		tbl.AddRow(cmd.Sprint(t[0]), t[1])
	}
	_, _ = io.WriteString(n.Out, tbl.String()+"\n\n")
	return nil
}
