package glyph

import "testing"

func TestParseMood(t *testing.T) {
	tests := map[string]Mood{
		"":          NoMood,
		"none":      NoMood,
		"calm":      Calm,
		"Anxious":   Anxious,
		"1":         Happy,
		"😔 Sad":     Sad,
		"😡":         Angry,
	}
	for in, want := range tests {
		got, err := ParseMood(in)
		if err != nil {
			t.Fatalf("ParseMood(%q): %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseMood(%q) = %q, want %q", in, got, want)
		}
	}
	if _, err := ParseMood("elated"); err == nil {
		t.Fatalf("expected error for unknown mood")
	}
}

func TestMoodString(t *testing.T) {
	if Calm.String() != "😌 Calm" {
		t.Fatalf("unexpected %q", Calm.String())
	}
	if NoMood.String() != "" {
		t.Fatalf("expected empty string for no mood")
	}
}
