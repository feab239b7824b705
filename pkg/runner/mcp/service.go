// Package mcp provides the Model Context Protocol server integration for calm.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"tableflip.dev/calm/pkg/content"
	"tableflip.dev/calm/pkg/entry"
	"tableflip.dev/calm/pkg/exercise"
	"tableflip.dev/calm/pkg/glyph"
	"tableflip.dev/calm/pkg/journal"
	"tableflip.dev/calm/pkg/runner/patterns"
)

// Storage is the key-value store the service reads and writes.
type Storage interface {
	journal.Storage
}

// Service coordinates persistence-backed operations that are shared by the MCP server.
type Service struct {
	Storage Storage
	// Journal appends entries; it shares Storage.
	Journal *journal.Store
}

// EntryDTO is a transport-friendly projection of an entry.
type EntryDTO struct {
	Text         string `json:"text"`
	TimestampISO string `json:"timestampIso"`
	Mood         string `json:"mood,omitempty"`
	MoodSymbol   string `json:"moodSymbol,omitempty"`
}

// NewService builds a service wrapper using the provided persistence layer.
func NewService(st Storage, j *journal.Store) *Service {
	return &Service{Storage: st, Journal: j}
}

func toDTO(e entry.Entry) EntryDTO {
	dto := EntryDTO{
		Text:         e.Text,
		TimestampISO: e.Timestamp.UTC().Format("2006-01-02T15:04:05.000Z07:00"),
	}
	if e.Mood != glyph.NoMood {
		dto.Mood = string(e.Mood)
		dto.MoodSymbol = e.Mood.Glyph().Symbol
	}
	return dto
}

// ListPatterns returns the exercise catalog.
func (s *Service) ListPatterns(ctx context.Context) []patterns.PatternJSON {
	presets := exercise.Presets()
	out := make([]patterns.PatternJSON, 0, len(presets))
	for _, p := range presets {
		out = append(out, patterns.ToJSON(p))
	}
	return out
}

// Entries returns committed journal entries, newest first, optionally
// filtered by mood and limited in count.
func (s *Service) Entries(ctx context.Context, mood glyph.Mood, limit int) ([]EntryDTO, error) {
	if s.Storage == nil {
		return nil, errors.New("persistence is not configured")
	}
	entries, err := journal.ReadEntries(s.Storage, journal.DefaultEntriesKey)
	if err != nil {
		return nil, err
	}
	out := make([]EntryDTO, 0, len(entries))
	for i := len(entries) - 1; i >= 0; i-- {
		if mood != glyph.NoMood && entries[i].Mood != mood {
			continue
		}
		out = append(out, toDTO(entries[i]))
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

// Commit adds a journal entry without touching the draft being edited.
func (s *Service) Commit(ctx context.Context, text string, mood glyph.Mood) (EntryDTO, error) {
	if s.Journal == nil {
		return EntryDTO{}, errors.New("journal is not configured")
	}
	if strings.TrimSpace(text) == "" {
		return EntryDTO{}, journal.ErrEmptyEntry
	}
	e, err := s.Journal.Append(text, mood)
	if err != nil {
		return EntryDTO{}, err
	}
	return toDTO(e), nil
}

// NextAffirmation advances the shared affirmation deck.
func (s *Service) NextAffirmation(ctx context.Context) (string, error) {
	if s.Storage == nil {
		return "", errors.New("persistence is not configured")
	}
	return content.NextAffirmation(s.Storage)
}

// ParseMood parses an optional mood argument.
func ParseMood(s string) (glyph.Mood, error) {
	m, err := glyph.ParseMood(s)
	if err != nil {
		return glyph.NoMood, fmt.Errorf("invalid mood %q (expected one of happy, sad, angry, calm, anxious)", s)
	}
	return m, nil
}
