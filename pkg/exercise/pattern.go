// Package exercise defines the phases and patterns that guided exercises are
// built from, and the catalog of built-in patterns.
package exercise

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"tableflip.dev/calm/pkg/timeutil"
)

// ErrInvalidPattern is returned for an empty pattern or a phase without a
// positive duration.
var ErrInvalidPattern = errors.New("invalid pattern")

// Well-known phase names. Any other label is allowed.
const (
	Inhale = "inhale"
	Hold   = "hold"
	Exhale = "exhale"
)

// Phase is one named, timed stage of an exercise.
type Phase struct {
	Name        string        `json:"name"`
	Duration    time.Duration `json:"duration"`
	Instruction string        `json:"instruction,omitempty"`
}

// Text returns the instruction shown while the phase runs.
func (p Phase) Text() string {
	if p.Instruction != "" {
		return p.Instruction
	}
	secs := timeutil.Format(p.Duration)
	switch p.Name {
	case Inhale:
		return fmt.Sprintf("Inhale deeply for %s", secs)
	case Hold:
		return fmt.Sprintf("Hold your breath for %s", secs)
	case Exhale:
		return fmt.Sprintf("Exhale slowly for %s", secs)
	}
	return p.Name
}

// Pattern is an ordered, cyclic sequence of phases.
type Pattern struct {
	Name   string  `json:"name"`
	Title  string  `json:"title,omitempty"`
	Phases []Phase `json:"phases"`
}

// Validate reports ErrInvalidPattern when the pattern has no phases or a
// phase has a non-positive duration.
func (p Pattern) Validate() error {
	if len(p.Phases) == 0 {
		return fmt.Errorf("%w: no phases", ErrInvalidPattern)
	}
	for i, ph := range p.Phases {
		if ph.Duration <= 0 {
			return fmt.Errorf("%w: phase %d (%s) has duration %v", ErrInvalidPattern, i, ph.Name, ph.Duration)
		}
	}
	return nil
}

// Clone returns a deep copy so edits never reach the catalog.
func (p Pattern) Clone() Pattern {
	c := p
	c.Phases = append([]Phase(nil), p.Phases...)
	return c
}

// Total is the length of one full cycle.
func (p Pattern) Total() time.Duration {
	var d time.Duration
	for _, ph := range p.Phases {
		d += ph.Duration
	}
	return d
}

// Rhythm renders the phase durations, e.g. "4-7-8".
func (p Pattern) Rhythm() string {
	parts := make([]string, len(p.Phases))
	for i, ph := range p.Phases {
		parts[i] = strings.TrimSuffix(timeutil.Format(ph.Duration), "s")
	}
	return strings.Join(parts, "-")
}

// ParsePhases builds a custom pattern from "name=duration" pairs separated by
// commas, for example "inhale=4s,hold=7s,exhale=8s".
func ParsePhases(s string) (Pattern, error) {
	p := Pattern{Name: "custom", Title: "Custom pattern"}
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		name, value, ok := strings.Cut(part, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return Pattern{}, fmt.Errorf("%w: expected name=duration, got %q", ErrInvalidPattern, part)
		}
		d, err := timeutil.ParseDuration(value)
		if err != nil {
			return Pattern{}, fmt.Errorf("%w: phase %q: %v", ErrInvalidPattern, name, err)
		}
		p.Phases = append(p.Phases, Phase{Name: strings.ToLower(name), Duration: d})
	}
	if err := p.Validate(); err != nil {
		return Pattern{}, err
	}
	return p, nil
}
