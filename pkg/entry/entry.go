// Package entry defines committed journal entries and the serialized form of
// the entries log.
package entry

import (
	"time"

	"tableflip.dev/calm/pkg/glyph"
)

// Entry is an immutable, committed journal record.
type Entry struct {
	Text      string     `json:"text"`
	Timestamp Timestamp  `json:"timestampIso"`
	Mood      glyph.Mood `json:"mood,omitempty"`
}

func New(text string, mood glyph.Mood, at time.Time) Entry {
	return Entry{
		Text:      text,
		Timestamp: Timestamp{Time: at},
		Mood:      mood,
	}
}

// Title is the first line of the text, used for one-line listings.
func (e Entry) Title() string {
	for i, r := range e.Text {
		if r == '\n' {
			return e.Text[:i]
		}
	}
	return e.Text
}
