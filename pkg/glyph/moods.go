// Package glyph holds the mood tags a journal entry can carry and the symbols
// used to print them.
package glyph

import (
	"fmt"
	"strings"
)

type Glyph struct {
	Key     string
	Symbol  string
	Meaning string
}

func (g Glyph) String() string {
	return g.Symbol
}

// Mood is an optional tag on a journal entry. The zero value means no mood.
type Mood string

const (
	NoMood  Mood = ""
	Happy   Mood = "happy"
	Sad     Mood = "sad"
	Angry   Mood = "angry"
	Calm    Mood = "calm"
	Anxious Mood = "anxious"
)

// Moods lists the selectable moods in display order.
func Moods() []Mood {
	return []Mood{Happy, Sad, Angry, Calm, Anxious}
}

func DefaultGlyphs() map[Mood]Glyph {
	return map[Mood]Glyph{
		Happy:   {Key: "1", Symbol: "😊", Meaning: "Happy"},
		Sad:     {Key: "2", Symbol: "😔", Meaning: "Sad"},
		Angry:   {Key: "3", Symbol: "😡", Meaning: "Angry"},
		Calm:    {Key: "4", Symbol: "😌", Meaning: "Calm"},
		Anxious: {Key: "5", Symbol: "😰", Meaning: "Anxious"},
		NoMood:  {Key: "0", Symbol: " ", Meaning: "none"},
	}
}

func (m Mood) Glyph() Glyph {
	if g, ok := DefaultGlyphs()[m]; ok {
		return g
	}
	return Glyph{Symbol: "?", Meaning: string(m)}
}

// String renders the mood the way the journal shows it, e.g. "😌 Calm".
func (m Mood) String() string {
	if m == NoMood {
		return ""
	}
	g := m.Glyph()
	return g.Symbol + " " + g.Meaning
}

// ParseMood accepts a mood name, its key, or its display form ("😌 Calm").
// An empty string is NoMood.
func ParseMood(s string) (Mood, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "none") {
		return NoMood, nil
	}
	for m, g := range DefaultGlyphs() {
		if m == NoMood {
			continue
		}
		if strings.EqualFold(s, string(m)) || s == g.Key || s == m.String() || s == g.Symbol {
			return m, nil
		}
	}
	return NoMood, fmt.Errorf("unknown mood %q", s)
}
