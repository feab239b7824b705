package entry

import (
	"bytes"
	"encoding/json"
	"fmt"

	"tableflip.dev/calm/pkg/glyph"
)

// LogVersion is the current version of the serialized entries log.
const LogVersion = 1

type logDoc struct {
	Version int     `json:"version"`
	Entries []Entry `json:"entries"`
}

// legacyEntry is an element of the unversioned log, written before entries
// carried timestampIso. Mood is the display form, e.g. "😔 Sad", or null.
type legacyEntry struct {
	Text         string    `json:"text"`
	Timestamp    Timestamp `json:"timestamp"`
	TimestampISO Timestamp `json:"timestampIso"`
	Mood         *string   `json:"mood"`
}

func (l legacyEntry) entry() Entry {
	e := Entry{Text: l.Text, Timestamp: l.Timestamp}
	if e.Timestamp.IsZero() {
		e.Timestamp = l.TimestampISO
	}
	if l.Mood != nil {
		m, err := glyph.ParseMood(*l.Mood)
		if err != nil {
			// Unknown moods are kept as written.
			m = glyph.Mood(*l.Mood)
		}
		e.Mood = m
	}
	return e
}

// MarshalLog encodes entries as a versioned log document.
func MarshalLog(entries []Entry) ([]byte, error) {
	if entries == nil {
		entries = []Entry{}
	}
	return json.Marshal(logDoc{Version: LogVersion, Entries: entries})
}

// UnmarshalLog decodes a log document. A bare JSON array, the unversioned
// form, is accepted too. Empty input is an empty log.
func UnmarshalLog(data []byte) ([]Entry, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, nil
	}
	if trimmed[0] == '[' {
		var list []legacyEntry
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return nil, fmt.Errorf("entry: decode legacy log: %w", err)
		}
		entries := make([]Entry, 0, len(list))
		for _, l := range list {
			entries = append(entries, l.entry())
		}
		return entries, nil
	}
	var doc logDoc
	if err := json.Unmarshal(trimmed, &doc); err != nil {
		return nil, fmt.Errorf("entry: decode log: %w", err)
	}
	if doc.Version > LogVersion {
		return nil, fmt.Errorf("entry: log version %d is newer than supported version %d", doc.Version, LogVersion)
	}
	return doc.Entries, nil
}
