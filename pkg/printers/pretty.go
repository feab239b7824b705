package printers

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/calm/pkg/content"
	"tableflip.dev/calm/pkg/entry"
	"tableflip.dev/calm/pkg/exercise"
	"tableflip.dev/calm/pkg/timeutil"
)

type PrettyPrint struct {
	// Out defaults to color.Output.
	Out io.Writer
	// Width wraps long text; zero means 80.
	Width int
}

const (
	stampLayout = "Jan 2 15:04"
	// len(stampLayout) plus the mood glyph column.
	gutter = 15
)

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) width() int {
	if pp.Width <= 0 {
		return 80
	}
	return pp.Width
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(pp.out(), " entry")
	default:
		_, _ = c.Fprintln(pp.out(), " entries")
	}
}

// Entries prints journal entries oldest first, one block per entry.
func (pp *PrettyPrint) Entries(entries ...entry.Entry) {
	if len(entries) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprint(pp.out(), " none\n\n")
		return
	}
	for _, e := range entries {
		pp.Entry(e)
	}
}

func (pp *PrettyPrint) Entry(e entry.Entry) {
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	t := color.New()

	_, _ = y.Fprint(pp.out(), e.Timestamp.Local().Format(stampLayout))
	symbol := " "
	if e.Mood != "" {
		symbol = e.Mood.Glyph().Symbol
	}
	_, _ = t.Fprintf(pp.out(), "  %s\n", symbol)

	body := wordwrap.String(strings.TrimSpace(e.Text), pp.width()-gutter)
	_, _ = t.Fprintln(pp.out(), indent.String(body, 2))
	_, _ = t.Fprintln(pp.out(), "")
}

// Patterns prints the exercise catalog as a table.
func (pp *PrettyPrint) Patterns(patterns ...exercise.Pattern) {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = uint(pp.width() / 2)
	tbl.Wrap = true
	tbl.AddRow(bold.Sprint("Name"), bold.Sprint("Rhythm"), bold.Sprint("Cycle"), bold.Sprint("Exercise"))
	for _, p := range patterns {
		tbl.AddRow(p.Name, p.Rhythm(), timeutil.Format(p.Total()), p.Title)
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
}

// Phases lists one pattern's phases with their instructions.
func (pp *PrettyPrint) Phases(p exercise.Pattern) {
	pp.Title(p.Title)
	tbl := uitable.New()
	tbl.Separator = "  "
	for i, ph := range p.Phases {
		tbl.AddRow(fmt.Sprintf("%d.", i+1), timeutil.Format(ph.Duration), ph.Text())
	}
	tbl.RightAlign(0)
	_, _ = fmt.Fprintln(pp.out(), tbl)
}

// Suggestions prints titled advice as a wrapped list.
func (pp *PrettyPrint) Suggestions(title string, items ...content.Suggestion) {
	b := color.New(color.Bold)
	t := color.New()
	pp.Title(title)
	for _, s := range items {
		_, _ = b.Fprintf(pp.out(), "  %s: ", s.Title)
		text := wordwrap.String(s.Detail, pp.width()-4-len(s.Title))
		_, _ = t.Fprintln(pp.out(), strings.ReplaceAll(text, "\n", "\n    "))
	}
	pp.NewLine()
}

// Quote prints a single highlighted line, used for affirmations.
func (pp *PrettyPrint) Quote(text string) {
	q := color.New(color.FgHiCyan, color.Italic)
	_, _ = q.Fprintln(pp.out(), wordwrap.String(text, pp.width()))
}
