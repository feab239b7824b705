package journal

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/calm/pkg/clock"
	"tableflip.dev/calm/pkg/glyph"
	"tableflip.dev/calm/pkg/journal"
	"tableflip.dev/calm/pkg/store"
	"tableflip.dev/calm/pkg/tui/theme"
)

func newModel(t *testing.T, requireText bool) (*Model, *journal.Store, *clock.Manual, *store.Memory) {
	t.Helper()
	clk := clock.NewManual(time.Date(2024, 3, 9, 10, 0, 0, 0, time.UTC))
	mem := store.NewMemory()
	st := journal.New(mem, journal.Options{Clock: clk, Scheduler: clk, RequireText: requireText})
	if _, err := st.LoadDraft(); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = st.Close() })
	m := New(Options{
		Store:  st,
		Theme:  theme.Default(),
		Prompt: func() string { return "List three things you're grateful for." },
	})
	m.Init()
	return m, st, clk, mem
}

func typeText(m *Model, s string) {
	for _, r := range s {
		m.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
}

func TestTypingIsDebouncedIntoStorage(t *testing.T) {
	m, st, clk, mem := newModel(t, false)

	typeText(m, "calmer")
	if got := st.Draft().Text; got != "calmer" {
		t.Fatalf("draft = %q", got)
	}
	if !strings.Contains(m.View(), "Saving...") {
		t.Fatalf("expected pending status:\n%s", m.View())
	}
	if _, ok, _ := mem.Get(journal.DefaultDraftKey); ok {
		t.Fatal("draft written before the debounce elapsed")
	}

	clk.Advance(journal.DefaultDebounce)
	m.Update(statusMsg(clk.Now()))
	if _, ok, _ := mem.Get(journal.DefaultDraftKey); !ok {
		t.Fatal("draft not written after the debounce")
	}
	if !strings.Contains(m.View(), "Saved") {
		t.Fatalf("expected saved status:\n%s", m.View())
	}
}

func TestCommitClearsEditor(t *testing.T) {
	m, st, _, _ := newModel(t, false)

	typeText(m, "breathing helped")
	m.Update(tea.KeyPressMsg{Code: '4', Mod: tea.ModAlt})
	if st.Draft().Mood != glyph.Calm {
		t.Fatalf("mood = %q, want calm", st.Draft().Mood)
	}

	m.Update(tea.KeyPressMsg{Code: 's', Mod: tea.ModCtrl})
	entries, err := st.Entries()
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Text != "breathing helped" || entries[0].Mood != glyph.Calm {
		t.Fatalf("entries = %+v", entries)
	}
	if m.editor.Value() != "" || st.Draft().Text != "" {
		t.Fatal("editor not cleared after commit")
	}
	if m.Committed() != 1 || !strings.Contains(m.View(), "Entry saved") {
		t.Fatalf("missing confirmation:\n%s", m.View())
	}
}

func TestEmptyCommitRefusedWhenTextRequired(t *testing.T) {
	m, st, _, _ := newModel(t, true)
	m.Update(tea.KeyPressMsg{Code: 's', Mod: tea.ModCtrl})
	if entries, _ := st.Entries(); len(entries) != 0 {
		t.Fatalf("entries = %+v", entries)
	}
	if !strings.Contains(m.View(), "Write something before saving.") {
		t.Fatalf("missing hint:\n%s", m.View())
	}
}

func TestPromptToggle(t *testing.T) {
	m, _, _, _ := newModel(t, false)
	const prompt = "List three things you're grateful for."
	if !strings.Contains(m.View(), prompt) {
		t.Fatal("prompt not shown initially")
	}
	m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if strings.Contains(m.View(), prompt) {
		t.Fatal("prompt still shown after esc")
	}
	m.Update(tea.KeyPressMsg{Code: 'p', Mod: tea.ModCtrl})
	if !strings.Contains(m.View(), prompt) {
		t.Fatal("prompt not shown after ctrl+p")
	}
}

func TestNextMoodCycles(t *testing.T) {
	got := []glyph.Mood{}
	mood := glyph.NoMood
	for i := 0; i < len(glyph.Moods())+1; i++ {
		mood = nextMood(mood)
		got = append(got, mood)
	}
	if got[0] != glyph.Happy || got[len(got)-1] != glyph.NoMood {
		t.Fatalf("cycle = %v", got)
	}
}

func TestRestoresDraft(t *testing.T) {
	clk := clock.NewManual(time.Unix(0, 0))
	mem := store.NewMemory()
	_ = mem.Set(journal.DefaultDraftKey, `{"text":"left off here","mood":"sad"}`)
	st := journal.New(mem, journal.Options{Clock: clk, Scheduler: clk})
	if _, err := st.LoadDraft(); err != nil {
		t.Fatal(err)
	}
	m := New(Options{Store: st, Theme: theme.Default()})
	if m.editor.Value() != "left off here" || m.mood != glyph.Sad {
		t.Fatalf("restored %q %q", m.editor.Value(), m.mood)
	}
}
