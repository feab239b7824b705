// Package journal keeps the in-progress journal draft durable without an
// explicit save and commits finished drafts to an append-only entries log.
package journal

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"tableflip.dev/calm/pkg/clock"
	"tableflip.dev/calm/pkg/entry"
	"tableflip.dev/calm/pkg/glyph"
)

const (
	DefaultDraftKey   = "currentJournalEntry"
	DefaultEntriesKey = "journalEntries"
	DefaultDebounce   = time.Second
)

// ErrEmptyEntry is returned by Commit for a blank draft when the store
// requires text.
var ErrEmptyEntry = errors.New("journal: entry has no text")

// Storage is a durable string key-value store.
type Storage interface {
	// Get returns ok=false when the key does not exist.
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Delete(key string) error
}

// Draft is the single in-progress entry.
type Draft struct {
	Text string     `json:"text"`
	Mood glyph.Mood `json:"mood,omitempty"`
}

// Options configures a Store. Zero values select the defaults.
type Options struct {
	Clock     clock.Clock
	Scheduler clock.Scheduler
	Debounce  time.Duration
	// RequireText refuses to commit a draft that is empty or whitespace.
	RequireText bool
	DraftKey    string
	EntriesKey  string
	Logger      *slog.Logger
}

// Store owns the journal draft. It is safe for concurrent use; debounced
// writes run on the scheduler's goroutine.
type Store struct {
	mu sync.Mutex

	storage     Storage
	clock       clock.Clock
	scheduler   clock.Scheduler
	debounce    time.Duration
	requireText bool
	draftKey    string
	entriesKey  string
	log         *slog.Logger

	draft   Draft
	status  SaveStatus
	lastErr error
	cancel  clock.CancelFunc
	gen     uint64
	closed  bool
}

// New creates a Store over s. Call LoadDraft to restore a persisted draft.
func New(s Storage, opts Options) *Store {
	st := &Store{
		storage:     s,
		clock:       opts.Clock,
		scheduler:   opts.Scheduler,
		debounce:    opts.Debounce,
		requireText: opts.RequireText,
		draftKey:    opts.DraftKey,
		entriesKey:  opts.EntriesKey,
		log:         opts.Logger,
	}
	if st.clock == nil {
		st.clock = clock.System{}
	}
	if st.scheduler == nil {
		st.scheduler = clock.System{}
	}
	if st.debounce <= 0 {
		st.debounce = DefaultDebounce
	}
	if st.draftKey == "" {
		st.draftKey = DefaultDraftKey
	}
	if st.entriesKey == "" {
		st.entriesKey = DefaultEntriesKey
	}
	if st.log == nil {
		st.log = slog.Default()
	}
	return st
}

// LoadDraft restores the persisted draft. A missing draft is empty text.
// On a read error the in-memory draft is left empty and the error returned.
func (s *Store) LoadDraft() (Draft, error) {
	raw, ok, err := s.storage.Get(s.draftKey)
	if err != nil {
		s.mu.Lock()
		s.fail(err)
		s.mu.Unlock()
		return Draft{}, fmt.Errorf("journal: load draft: %w", err)
	}
	d := decodeDraft(raw, ok)

	s.mu.Lock()
	s.draft = d
	s.status = Saved
	s.lastErr = nil
	s.mu.Unlock()
	return d, nil
}

// Draft returns the in-memory draft.
func (s *Store) Draft() Draft {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft
}

// UpdateText replaces the draft text and restarts the debounce timer.
func (s *Store) UpdateText(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.draft.Text = text
	s.scheduleLocked()
}

// SetMood tags the draft and restarts the debounce timer.
func (s *Store) SetMood(m glyph.Mood) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.draft.Mood = m
	s.scheduleLocked()
}

func (s *Store) scheduleLocked() {
	s.cancelLocked()
	s.status = Pending
	gen := s.gen
	s.cancel = s.scheduler.AfterFunc(s.debounce, func() {
		s.fire(gen)
	})
}

func (s *Store) cancelLocked() {
	s.gen++
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

func (s *Store) fire(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		return
	}
	s.cancel = nil
	_ = s.writeLocked()
}

// writeLocked persists the current draft. Failures are recorded, logged and
// leave the draft in memory; the next edit schedules another attempt.
func (s *Store) writeLocked() error {
	err := s.persistDraft(s.draft)
	if err != nil {
		s.fail(err)
		return fmt.Errorf("journal: save draft: %w", err)
	}
	s.status = Saved
	s.lastErr = nil
	return nil
}

func (s *Store) persistDraft(d Draft) error {
	if d.Text == "" && d.Mood == glyph.NoMood {
		return s.storage.Delete(s.draftKey)
	}
	data, err := json.Marshal(d)
	if err != nil {
		return err
	}
	return s.storage.Set(s.draftKey, string(data))
}

func (s *Store) fail(err error) {
	s.status = Failed
	s.lastErr = err
	s.log.Warn("journal: draft not saved", "error", err)
}

// Flush writes a pending draft immediately.
func (s *Store) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status != Pending {
		return nil
	}
	s.cancelLocked()
	return s.writeLocked()
}

// Commit appends the draft to the entries log with the current time, then
// clears the draft in memory and in storage. If the log cannot be written
// the draft is kept.
func (s *Store) Commit() (entry.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.requireText && strings.TrimSpace(s.draft.Text) == "" {
		return entry.Entry{}, ErrEmptyEntry
	}

	e := entry.New(s.draft.Text, s.draft.Mood, s.clock.Now())
	if err := AppendEntry(s.storage, s.entriesKey, e); err != nil {
		s.fail(err)
		return entry.Entry{}, err
	}

	s.cancelLocked()
	s.draft = Draft{}
	if err := s.storage.Delete(s.draftKey); err != nil {
		// The entry is committed; a stale draft on disk is only a nuisance.
		s.fail(err)
		s.log.Warn("journal: committed entry but could not clear draft", "error", err)
	} else {
		s.status = Saved
		s.lastErr = nil
	}
	s.log.Info("journal: entry committed", "chars", len(e.Text), "mood", string(e.Mood))
	return e, nil
}

// Append commits text as an entry of its own with the current time. The
// draft is left alone.
func (s *Store) Append(text string, mood glyph.Mood) (entry.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.requireText && strings.TrimSpace(text) == "" {
		return entry.Entry{}, ErrEmptyEntry
	}
	e := entry.New(text, mood, s.clock.Now())
	if err := AppendEntry(s.storage, s.entriesKey, e); err != nil {
		return entry.Entry{}, err
	}
	return e, nil
}

// Entries returns the committed log, oldest first.
func (s *Store) Entries() ([]entry.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.entriesLocked()
}

func (s *Store) entriesLocked() ([]entry.Entry, error) {
	return ReadEntries(s.storage, s.entriesKey)
}

// ReadEntries decodes the entries log stored under key.
func ReadEntries(st Storage, key string) ([]entry.Entry, error) {
	raw, ok, err := st.Get(key)
	if err != nil {
		return nil, fmt.Errorf("journal: read entries: %w", err)
	}
	if !ok {
		return nil, nil
	}
	return entry.UnmarshalLog([]byte(raw))
}

// AppendEntry adds e to the end of the entries log stored under key. It does
// not touch any draft.
func AppendEntry(st Storage, key string, e entry.Entry) error {
	entries, err := ReadEntries(st, key)
	if err != nil {
		return err
	}
	data, err := entry.MarshalLog(append(entries, e))
	if err != nil {
		return fmt.Errorf("journal: encode entries: %w", err)
	}
	if err := st.Set(key, string(data)); err != nil {
		return fmt.Errorf("journal: append entry: %w", err)
	}
	return nil
}

// Status reports whether the latest draft is durable.
func (s *Store) Status() SaveStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// Err is the last storage error, nil once a later write succeeds.
func (s *Store) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// Close writes any pending draft and cancels the debounce timer. Later
// edits are ignored.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	pending := s.status == Pending
	s.cancelLocked()
	if pending {
		return s.writeLocked()
	}
	return nil
}

func decodeDraft(raw string, ok bool) Draft {
	if !ok || raw == "" {
		return Draft{}
	}
	var d Draft
	if strings.HasPrefix(raw, "{") && json.Unmarshal([]byte(raw), &d) == nil {
		return d
	}
	// Plain text drafts predate the mood tag.
	return Draft{Text: raw}
}
