// Package narration speaks exercise instructions through whatever text to
// speech program the host provides. Narration is optional: when nothing is
// installed the NoOp narrator reports itself unavailable and callers hide
// the affordance.
package narration

import (
	"context"
	"os/exec"
	"strings"

	"tableflip.dev/calm/pkg/config"
)

// Voice selects how text is spoken. Rate, Pitch and Volume are relative,
// 1.0 being the engine default.
type Voice struct {
	Name   string
	Rate   float64
	Pitch  float64
	Volume float64
}

// DefaultVoice is the engine default voice at normal rate, pitch and volume.
var DefaultVoice = Voice{Rate: 1, Pitch: 1, Volume: 1}

type Narrator interface {
	Available() bool
	// Speak blocks until the text has been spoken or ctx is done.
	Speak(ctx context.Context, text string, v Voice) error
}

// NoOp never speaks.
type NoOp struct{}

func (NoOp) Available() bool { return false }

func (NoOp) Speak(context.Context, string, Voice) error { return nil }

// programs are probed in order.
var programs = []string{"say", "espeak-ng", "espeak", "spd-say"}

var lookPath = exec.LookPath

// Detect returns a narrator for the first speech program found on PATH, or
// NoOp when narration is disabled or none is installed. cfg.Command, when
// set, is the only program considered.
func Detect(cfg config.Narration) Narrator {
	if !cfg.Enabled {
		return NoOp{}
	}
	candidates := programs
	if c := strings.TrimSpace(cfg.Command); c != "" {
		candidates = []string{c}
	}
	for _, name := range candidates {
		if path, err := lookPath(name); err == nil {
			return &Command{Program: name, Path: path}
		}
	}
	return NoOp{}
}

// VoiceFrom builds the configured voice.
func VoiceFrom(cfg config.Narration) Voice {
	return Voice{Name: cfg.Voice, Rate: cfg.Rate, Pitch: cfg.Pitch, Volume: cfg.Volume}
}
