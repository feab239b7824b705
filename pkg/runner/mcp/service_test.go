package mcp

import (
	"context"
	"errors"
	"testing"
	"time"

	"tableflip.dev/calm/pkg/clock"
	"tableflip.dev/calm/pkg/content"
	"tableflip.dev/calm/pkg/glyph"
	"tableflip.dev/calm/pkg/journal"
	"tableflip.dev/calm/pkg/store"
)

func newService(t *testing.T) (*Service, *store.Memory) {
	t.Helper()
	mem := store.NewMemory()
	clk := clock.NewManual(time.Date(2024, 3, 9, 8, 0, 0, 0, time.UTC))
	j := journal.New(mem, journal.Options{Clock: clk, Scheduler: clk})
	t.Cleanup(func() { _ = j.Close() })
	return NewService(mem, j), mem
}

func TestCommitAndListEntries(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	if _, err := svc.Commit(ctx, "morning felt heavy", glyph.Sad); err != nil {
		t.Fatalf("Commit: %v", err)
	}
	dto, err := svc.Commit(ctx, "walk helped", glyph.Calm)
	if err != nil {
		t.Fatalf("Commit: %v", err)
	}
	if dto.TimestampISO != "2024-03-09T08:00:00.000Z" || dto.MoodSymbol == "" {
		t.Fatalf("dto = %+v", dto)
	}

	all, err := svc.Entries(ctx, glyph.NoMood, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 2 || all[0].Text != "walk helped" {
		t.Fatalf("entries not newest first: %+v", all)
	}

	sad, _ := svc.Entries(ctx, glyph.Sad, 0)
	if len(sad) != 1 || sad[0].Text != "morning felt heavy" {
		t.Fatalf("mood filter: %+v", sad)
	}

	one, _ := svc.Entries(ctx, glyph.NoMood, 1)
	if len(one) != 1 {
		t.Fatalf("limit: %+v", one)
	}
}

func TestCommitRejectsBlank(t *testing.T) {
	svc, _ := newService(t)
	if _, err := svc.Commit(context.Background(), "   ", glyph.NoMood); !errors.Is(err, journal.ErrEmptyEntry) {
		t.Fatalf("err = %v", err)
	}
}

func TestNextAffirmationSharesDeck(t *testing.T) {
	svc, mem := newService(t)
	got, err := svc.NextAffirmation(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if got != content.Affirmation(0) {
		t.Fatalf("got %q", got)
	}
	if v, _, _ := mem.Get(content.AffirmationKey); v != "1" {
		t.Fatalf("deck position = %q", v)
	}
}

func TestListPatterns(t *testing.T) {
	svc, _ := newService(t)
	list := svc.ListPatterns(context.Background())
	if len(list) == 0 {
		t.Fatal("no patterns")
	}
	for _, p := range list {
		if len(p.Phases) == 0 {
			t.Fatalf("pattern %s has no phases", p.Name)
		}
	}
}

func TestParseMood(t *testing.T) {
	if m, err := ParseMood(""); err != nil || m != glyph.NoMood {
		t.Fatalf("empty = %q %v", m, err)
	}
	if _, err := ParseMood("giddy"); err == nil {
		t.Fatal("expected error")
	}
}

func TestNewServerRegisters(t *testing.T) {
	svc, _ := newService(t)
	if srv := (Runner{Service: svc}).NewServer(); srv == nil {
		t.Fatal("nil server")
	}
}
