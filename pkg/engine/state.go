package engine

import (
	"time"

	"tableflip.dev/calm/pkg/exercise"
)

// Status is the engine's coarse state.
type Status int

const (
	NotStarted Status = iota
	Running
	Paused
)

func (s Status) String() string {
	switch s {
	case Running:
		return "running"
	case Paused:
		return "paused"
	}
	return "not started"
}

// State is a snapshot of one exercise session.
type State struct {
	// PhaseIndex is -1 before the session starts.
	PhaseIndex int
	Phase      exercise.Phase
	Phases     int
	Running    bool
	Cycles     int
	Elapsed    time.Duration
	// Progress is Elapsed relative to the phase duration, in [0, 1].
	Progress float64
}

// Status derives the coarse state from the snapshot.
func (s State) Status() Status {
	switch {
	case s.PhaseIndex == -1:
		return NotStarted
	case s.Running:
		return Running
	}
	return Paused
}

// Remaining is the time left in the current phase.
func (s State) Remaining() time.Duration {
	if s.PhaseIndex == -1 {
		return 0
	}
	if r := s.Phase.Duration - s.Elapsed; r > 0 {
		return r
	}
	return 0
}

func (e *Engine) stateLocked() State {
	st := State{
		PhaseIndex: e.index,
		Phases:     len(e.pattern.Phases),
		Running:    e.running,
		Cycles:     e.cycles,
		Elapsed:    e.elapsed,
	}
	if e.index >= 0 {
		st.Phase = e.pattern.Phases[e.index]
		st.Progress = progress(e.elapsed, st.Phase.Duration)
	}
	return st
}

func progress(elapsed, total time.Duration) float64 {
	if total <= 0 {
		return 0
	}
	f := float64(elapsed) / float64(total)
	switch {
	case f < 0:
		return 0
	case f > 1:
		return 1
	}
	return f
}
