package entry

import (
	"strings"
	"testing"
	"time"

	"tableflip.dev/calm/pkg/glyph"
)

func TestLogRoundTripKeepsVersionAndMood(t *testing.T) {
	at := time.Date(2025, time.March, 3, 12, 0, 0, 0, time.UTC)
	data, err := MarshalLog([]Entry{New("hello", glyph.Calm, at), New("", glyph.NoMood, at)})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	s := string(data)
	if !strings.Contains(s, `"version":1`) {
		t.Fatalf("expected version tag, got %s", s)
	}
	if !strings.Contains(s, `"timestampIso":"2025-03-03T12:00:00.000Z"`) {
		t.Fatalf("expected ISO timestamp, got %s", s)
	}
	if strings.Count(s, `"mood"`) != 1 {
		t.Fatalf("expected mood omitted when empty, got %s", s)
	}

	got, err := UnmarshalLog(data)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(got) != 2 || got[0].Text != "hello" || got[0].Mood != glyph.Calm || !got[0].Timestamp.Equal(at) {
		t.Fatalf("unexpected entries %+v", got)
	}
}

func TestUnmarshalLegacyArray(t *testing.T) {
	legacy := `[
		{"text":"old","timestamp":"2024-01-02T03:04:05.678Z","mood":"😔 Sad"},
		{"text":"no mood","timestamp":"2024-01-03T10:00:00.000Z","mood":null}
	]`
	got, err := UnmarshalLog([]byte(legacy))
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(got) != 2 || got[0].Text != "old" || got[0].Mood != glyph.Sad || got[1].Mood != glyph.NoMood {
		t.Fatalf("unexpected entries %+v", got)
	}
	want := time.Date(2024, time.January, 2, 3, 4, 5, 678000000, time.UTC)
	if !got[0].Timestamp.Equal(want) {
		t.Fatalf("timestamp = %v, want %v", got[0].Timestamp, want)
	}
}

func TestLegacyLogSurvivesRewrite(t *testing.T) {
	legacy := `[{"text":"old","timestamp":"2024-01-02T03:04:05.678Z","mood":"😔 Sad"}]`
	entries, err := UnmarshalLog([]byte(legacy))
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	at := time.Date(2025, time.March, 3, 12, 0, 0, 0, time.UTC)
	data, err := MarshalLog(append(entries, New("new", glyph.Calm, at)))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(data), `"timestampIso":"2024-01-02T03:04:05.678Z"`) {
		t.Fatalf("legacy timestamp lost: %s", data)
	}
	if !strings.Contains(string(data), `"mood":"sad"`) {
		t.Fatalf("legacy mood not normalized: %s", data)
	}
}

func TestUnmarshalLogRejectsNewerVersion(t *testing.T) {
	if _, err := UnmarshalLog([]byte(`{"version":2,"entries":[]}`)); err == nil {
		t.Fatalf("expected error for newer version")
	}
	if got, err := UnmarshalLog(nil); err != nil || got != nil {
		t.Fatalf("expected empty log, got %v %v", got, err)
	}
}

func TestTitle(t *testing.T) {
	e := Entry{Text: "first line\nsecond"}
	if e.Title() != "first line" {
		t.Fatalf("unexpected title %q", e.Title())
	}
}
