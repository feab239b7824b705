package narration

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"tableflip.dev/calm/pkg/config"
)

func fakePath(found ...string) func(string) (string, error) {
	return func(name string) (string, error) {
		for _, f := range found {
			if f == name {
				return "/usr/bin/" + name, nil
			}
		}
		return "", errors.New("not found")
	}
}

func TestDetect(t *testing.T) {
	orig := lookPath
	t.Cleanup(func() { lookPath = orig })

	tests := map[string]struct {
		cfg       config.Narration
		installed []string
		want      string
	}{
		"disabled": {
			cfg:       config.Narration{Enabled: false},
			installed: []string{"espeak"},
		},
		"nothing installed": {
			cfg: config.Narration{Enabled: true},
		},
		"first found wins": {
			cfg:       config.Narration{Enabled: true},
			installed: []string{"spd-say", "espeak-ng"},
			want:      "espeak-ng",
		},
		"configured command only": {
			cfg:       config.Narration{Enabled: true, Command: "spd-say"},
			installed: []string{"espeak", "spd-say"},
			want:      "spd-say",
		},
		"configured command missing": {
			cfg:       config.Narration{Enabled: true, Command: "festival"},
			installed: []string{"espeak"},
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			lookPath = fakePath(tc.installed...)
			n := Detect(tc.cfg)
			if tc.want == "" {
				if n.Available() {
					t.Fatalf("expected NoOp, got %#v", n)
				}
				return
			}
			c, ok := n.(*Command)
			if !ok || c.Program != tc.want || !c.Available() {
				t.Fatalf("Detect = %#v, want %s", n, tc.want)
			}
		})
	}
}

func TestCommandArgs(t *testing.T) {
	tests := map[string]struct {
		program string
		voice   Voice
		want    []string
	}{
		"say default": {
			program: "say",
			voice:   DefaultVoice,
			want:    []string{"-r", "175", "Breathe in"},
		},
		"say named slow": {
			program: "say",
			voice:   Voice{Name: "Samantha", Rate: 0.8, Pitch: 1, Volume: 1},
			want:    []string{"-r", "140", "-v", "Samantha", "Breathe in"},
		},
		"espeak clamps": {
			program: "espeak-ng",
			voice:   Voice{Rate: 1, Pitch: 3, Volume: 0.5},
			want:    []string{"-s", "175", "-p", "99", "-a", "50", "Breathe in"},
		},
		"spd-say relative": {
			program: "spd-say",
			voice:   Voice{Name: "female1", Rate: 0.5, Pitch: 1, Volume: 1},
			want:    []string{"--wait", "-r", "-50", "-p", "0", "-i", "0", "-y", "female1", "Breathe in"},
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			c := &Command{Program: tc.program, Path: "/usr/bin/" + tc.program}
			if got := c.Args("Breathe in", tc.voice); !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("Args = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestNoOp(t *testing.T) {
	var n Narrator = NoOp{}
	if n.Available() {
		t.Fatal("NoOp should be unavailable")
	}
	if err := n.Speak(context.Background(), "hello", DefaultVoice); err != nil {
		t.Fatalf("Speak: %v", err)
	}
}
