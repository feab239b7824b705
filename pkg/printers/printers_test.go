package printers

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/calm/pkg/entry"
	"tableflip.dev/calm/pkg/exercise"
	"tableflip.dev/calm/pkg/glyph"
)

func init() {
	color.NoColor = true
}

func TestEntriesWrapsAndShowsMood(t *testing.T) {
	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf, Width: 40}
	at := time.Date(2024, 3, 9, 14, 30, 0, 0, time.Local)
	pp.Entries(entry.New(strings.Repeat("breathing slowly ", 6), glyph.Calm, at))

	out := buf.String()
	if !strings.Contains(out, "Mar 9 14:30") {
		t.Errorf("missing timestamp: %q", out)
	}
	if !strings.Contains(out, glyph.Calm.Glyph().Symbol) {
		t.Errorf("missing mood glyph: %q", out)
	}
	for _, line := range strings.Split(out, "\n") {
		if len(line) > 40 {
			t.Errorf("line not wrapped: %q", line)
		}
	}
}

func TestEntriesEmpty(t *testing.T) {
	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf}
	pp.Entries()
	if !strings.Contains(buf.String(), "none") {
		t.Fatalf("got %q", buf.String())
	}
}

func TestPatternsTable(t *testing.T) {
	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf}
	box, err := exercise.Lookup("box")
	if err != nil {
		t.Fatal(err)
	}
	pp.Patterns(box)
	out := buf.String()
	for _, want := range []string{"box", "4-4-4-4", "16s"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
}

func TestMonthHighlightsDays(t *testing.T) {
	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf}
	// March 2024 starts on a Friday.
	pp.MonthCount(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), make([]int, 31))
	lines := strings.Split(buf.String(), "\n")
	if !strings.Contains(lines[0], "March") {
		t.Fatalf("header = %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], strings.Repeat("   ", 5)+" 1  2") {
		t.Fatalf("first week = %q", lines[1])
	}
	if DaysIn(time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)) != 29 {
		t.Fatal("leap February")
	}
}
