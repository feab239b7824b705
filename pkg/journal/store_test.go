package journal

import (
	"errors"
	"testing"
	"time"

	"tableflip.dev/calm/pkg/clock"
	"tableflip.dev/calm/pkg/entry"
	"tableflip.dev/calm/pkg/glyph"
)

var epoch = time.Date(2025, time.March, 3, 12, 0, 0, 0, time.UTC)

type write struct {
	key   string
	value string
}

// fakeStorage is an in-memory Storage that records writes and can be told
// to fail.
type fakeStorage struct {
	data    map[string]string
	writes  []write
	failSet error
	failGet error
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{data: map[string]string{}}
}

func (f *fakeStorage) Get(key string) (string, bool, error) {
	if f.failGet != nil {
		return "", false, f.failGet
	}
	v, ok := f.data[key]
	return v, ok, nil
}

func (f *fakeStorage) Set(key, value string) error {
	if f.failSet != nil {
		return f.failSet
	}
	f.data[key] = value
	f.writes = append(f.writes, write{key: key, value: value})
	return nil
}

func (f *fakeStorage) Delete(key string) error {
	if f.failSet != nil {
		return f.failSet
	}
	delete(f.data, key)
	return nil
}

func (f *fakeStorage) draftWrites() []write {
	var out []write
	for _, w := range f.writes {
		if w.key == DefaultDraftKey {
			out = append(out, w)
		}
	}
	return out
}

func newStore(fs *fakeStorage, m *clock.Manual, opts Options) *Store {
	opts.Clock = m
	opts.Scheduler = m
	return New(fs, opts)
}

func TestDraftRoundTrip(t *testing.T) {
	fs := newFakeStorage()
	m := clock.NewManual(epoch)
	s := newStore(fs, m, Options{})
	if _, err := s.LoadDraft(); err != nil {
		t.Fatalf("load: %v", err)
	}
	s.UpdateText("hello")
	if got := s.Draft().Text; got != "hello" {
		t.Fatalf("in-memory draft not updated immediately: %q", got)
	}
	if s.Status() != Pending {
		t.Fatalf("expected pending, got %s", s.Status())
	}
	m.Advance(DefaultDebounce)
	if s.Status() != Saved {
		t.Fatalf("expected saved, got %s", s.Status())
	}

	reloaded := newStore(fs, m, Options{})
	d, err := reloaded.LoadDraft()
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if d.Text != "hello" {
		t.Fatalf("expected hello, got %q", d.Text)
	}
}

func TestDebounceCoalescesWrites(t *testing.T) {
	fs := newFakeStorage()
	m := clock.NewManual(epoch)
	s := newStore(fs, m, Options{})

	s.UpdateText("a")
	m.Advance(500 * time.Millisecond)
	s.UpdateText("ab")
	m.Advance(999 * time.Millisecond)
	if n := len(fs.draftWrites()); n != 0 {
		t.Fatalf("expected no write inside the quiet period, got %d", n)
	}
	m.Advance(time.Millisecond)
	m.Advance(10 * time.Second)

	writes := fs.draftWrites()
	if len(writes) != 1 {
		t.Fatalf("expected exactly one write, got %d", len(writes))
	}
	if d := decodeDraft(writes[0].value, true); d.Text != "ab" {
		t.Fatalf("expected write of %q, got %q", "ab", d.Text)
	}
}

func TestCommitClearsDraftAndAppends(t *testing.T) {
	fs := newFakeStorage()
	m := clock.NewManual(epoch)
	s := newStore(fs, m, Options{})

	s.UpdateText("first")
	if _, err := s.Commit(); err != nil {
		t.Fatalf("commit first: %v", err)
	}
	before, err := s.Entries()
	if err != nil {
		t.Fatalf("entries: %v", err)
	}

	s.UpdateText("dear diary")
	s.SetMood(glyph.Calm)
	m.Advance(DefaultDebounce)
	m.Advance(time.Minute)

	e, err := s.Commit()
	if err != nil {
		t.Fatalf("commit: %v", err)
	}
	if e.Text != "dear diary" || e.Mood != glyph.Calm || !e.Timestamp.Equal(epoch.Add(time.Minute+DefaultDebounce)) {
		t.Fatalf("unexpected entry %+v", e)
	}
	if got := s.Draft(); got.Text != "" || got.Mood != glyph.NoMood {
		t.Fatalf("in-memory draft not cleared: %+v", got)
	}

	fresh := newStore(fs, m, Options{})
	d, err := fresh.LoadDraft()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if d.Text != "" {
		t.Fatalf("expected empty draft after commit, got %q", d.Text)
	}
	after, err := fresh.Entries()
	if err != nil {
		t.Fatalf("entries: %v", err)
	}
	if len(after) != len(before)+1 {
		t.Fatalf("expected log to grow by one, %d -> %d", len(before), len(after))
	}
	if after[len(after)-1].Text != "dear diary" {
		t.Fatalf("unexpected last entry %+v", after[len(after)-1])
	}
}

func TestCommitCancelsPendingWrite(t *testing.T) {
	fs := newFakeStorage()
	m := clock.NewManual(epoch)
	s := newStore(fs, m, Options{})

	s.UpdateText("quick thought")
	if _, err := s.Commit(); err != nil {
		t.Fatalf("commit: %v", err)
	}
	m.Advance(5 * time.Second)
	if _, ok := fs.data[DefaultDraftKey]; ok {
		t.Fatalf("stale debounced write resurrected the draft")
	}
	if m.Pending() != 0 {
		t.Fatalf("expected no pending timers, got %d", m.Pending())
	}
}

func TestEmptyCommit(t *testing.T) {
	fs := newFakeStorage()
	m := clock.NewManual(epoch)

	permissive := newStore(fs, m, Options{})
	if _, err := permissive.Commit(); err != nil {
		t.Fatalf("default store should accept an empty entry: %v", err)
	}

	strict := newStore(fs, m, Options{RequireText: true})
	strict.UpdateText("   \n")
	if _, err := strict.Commit(); !errors.Is(err, ErrEmptyEntry) {
		t.Fatalf("expected ErrEmptyEntry, got %v", err)
	}
	if strict.Draft().Text != "   \n" {
		t.Fatalf("refused commit should keep the draft")
	}
	entries, _ := strict.Entries()
	if len(entries) != 1 {
		t.Fatalf("expected only the permissive entry, got %d", len(entries))
	}
}

func TestStorageFailureKeepsDraftAndRetries(t *testing.T) {
	fs := newFakeStorage()
	fs.failSet = errors.New("quota exceeded")
	m := clock.NewManual(epoch)
	s := newStore(fs, m, Options{})

	s.UpdateText("hold on to this")
	m.Advance(DefaultDebounce)
	if s.Status() != Failed || s.Err() == nil {
		t.Fatalf("expected failed status, got %s (%v)", s.Status(), s.Err())
	}
	if s.Draft().Text != "hold on to this" {
		t.Fatalf("draft lost after failed write")
	}
	if _, err := s.Commit(); err == nil {
		t.Fatalf("expected commit to fail while storage is failing")
	}
	if s.Draft().Text != "hold on to this" {
		t.Fatalf("draft lost after failed commit")
	}

	fs.failSet = nil
	s.UpdateText("hold on to this!")
	m.Advance(DefaultDebounce)
	if s.Status() != Saved || s.Err() != nil {
		t.Fatalf("expected retry to succeed, got %s (%v)", s.Status(), s.Err())
	}
}

func TestLoadDraftFailure(t *testing.T) {
	fs := newFakeStorage()
	fs.failGet = errors.New("storage disabled")
	s := newStore(fs, clock.NewManual(epoch), Options{})
	if _, err := s.LoadDraft(); err == nil {
		t.Fatalf("expected load error")
	}
	if s.Status() != Failed {
		t.Fatalf("expected failed status, got %s", s.Status())
	}
}

func TestLoadLegacyPlainTextDraft(t *testing.T) {
	fs := newFakeStorage()
	fs.data[DefaultDraftKey] = "typed before moods existed"
	s := newStore(fs, clock.NewManual(epoch), Options{})
	d, err := s.LoadDraft()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if d.Text != "typed before moods existed" {
		t.Fatalf("unexpected draft %+v", d)
	}
}

func TestCloseFlushesAndCancels(t *testing.T) {
	fs := newFakeStorage()
	m := clock.NewManual(epoch)
	s := newStore(fs, m, Options{})

	s.UpdateText("last words")
	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if m.Pending() != 0 {
		t.Fatalf("close left %d timers", m.Pending())
	}
	if d := decodeDraft(fs.data[DefaultDraftKey], true); d.Text != "last words" {
		t.Fatalf("close did not flush pending draft, got %q", d.Text)
	}

	s.UpdateText("ignored")
	m.Advance(time.Minute)
	if len(fs.draftWrites()) != 1 {
		t.Fatalf("edits after close were written")
	}
}

func TestFlushWritesImmediately(t *testing.T) {
	fs := newFakeStorage()
	m := clock.NewManual(epoch)
	s := newStore(fs, m, Options{Debounce: 5 * time.Second})

	if err := s.Flush(); err != nil {
		t.Fatalf("flush with nothing pending: %v", err)
	}
	s.UpdateText("now")
	if err := s.Flush(); err != nil {
		t.Fatalf("flush: %v", err)
	}
	m.Advance(time.Minute)
	if n := len(fs.draftWrites()); n != 1 {
		t.Fatalf("expected one write, got %d", n)
	}
}

func TestAppendEntryLeavesDraftAlone(t *testing.T) {
	fs := newFakeStorage()
	fs.data[DefaultDraftKey] = `{"text":"still writing"}`

	e := entry.New("from another client", glyph.Happy, epoch)
	if err := AppendEntry(fs, DefaultEntriesKey, e); err != nil {
		t.Fatalf("AppendEntry: %v", err)
	}
	if err := AppendEntry(fs, DefaultEntriesKey, e); err != nil {
		t.Fatalf("AppendEntry: %v", err)
	}
	entries, err := ReadEntries(fs, DefaultEntriesKey)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(entries))
	}
	if fs.data[DefaultDraftKey] != `{"text":"still writing"}` {
		t.Fatalf("draft changed: %q", fs.data[DefaultDraftKey])
	}
}

func TestAppendHonorsRequireText(t *testing.T) {
	clk := clock.NewManual(epoch)
	fs := newFakeStorage()
	s := New(fs, Options{Clock: clk, Scheduler: clk, RequireText: true})
	s.UpdateText("draft in progress")

	if _, err := s.Append("  ", glyph.NoMood); !errors.Is(err, ErrEmptyEntry) {
		t.Fatalf("Append blank = %v, want ErrEmptyEntry", err)
	}
	e, err := s.Append("quick note", glyph.Anxious)
	if err != nil {
		t.Fatalf("Append: %v", err)
	}
	if !e.Timestamp.Equal(epoch) {
		t.Fatalf("timestamp = %v", e.Timestamp)
	}
	if s.Draft().Text != "draft in progress" || s.Status() != Pending {
		t.Fatalf("draft disturbed: %+v %v", s.Draft(), s.Status())
	}
}

func TestAppendKeepsLegacyTimestamps(t *testing.T) {
	fs := newFakeStorage()
	fs.data[DefaultEntriesKey] = `[{"text":"before the update","timestamp":"2024-01-02T03:04:05.678Z","mood":"😌 Calm"}]`
	s := newStore(fs, clock.NewManual(epoch), Options{})

	if _, err := s.Append("after", glyph.NoMood); err != nil {
		t.Fatalf("Append: %v", err)
	}
	entries, err := s.Entries()
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(entries))
	}
	want := time.Date(2024, time.January, 2, 3, 4, 5, 678000000, time.UTC)
	if !entries[0].Timestamp.Equal(want) || entries[0].Mood != glyph.Calm {
		t.Fatalf("legacy entry changed: %+v", entries[0])
	}
}
