// Package engine drives a user through a cyclic, timed sequence of phases.
//
// An Engine is NotStarted, Running or Paused. Start moves it to Running at
// phase 0; TogglePause flips between Running and Paused without losing the
// time already spent in the current phase; Reset and SelectPattern return it
// to NotStarted. Time only advances through Tick, which the engine calls
// itself when it was given a Scheduler.
package engine

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"tableflip.dev/calm/pkg/clock"
	"tableflip.dev/calm/pkg/exercise"
)

var (
	ErrAlreadyStarted = errors.New("engine: already started")
	ErrNotStarted     = errors.New("engine: not started")
	ErrRunning        = errors.New("engine: cannot edit while running")
	ErrPhaseIndex     = errors.New("engine: phase index out of range")
	ErrOutOfRange     = errors.New("engine: duration out of range")
)

const (
	DefaultMinPhase = time.Second
	DefaultMaxPhase = 10 * time.Second
)

// Options configures an Engine. The zero value uses the system clock, no
// scheduler, and the default duration bounds.
type Options struct {
	Clock clock.Clock
	// Scheduler, when set, lets the engine arm its own phase timer. Without
	// it the host must call Tick.
	Scheduler clock.Scheduler

	MinPhase time.Duration
	MaxPhase time.Duration

	// OnPhase is called after every phase change.
	OnPhase func(State)
	// OnCycle is called with the new count after every completed cycle.
	OnCycle func(cycles int)

	Logger *slog.Logger
}

// Engine is safe for concurrent use. Notifications run on the goroutine that
// caused them, after the engine's lock is released.
type Engine struct {
	mu sync.Mutex

	clock     clock.Clock
	scheduler clock.Scheduler
	minPhase  time.Duration
	maxPhase  time.Duration
	onPhase   func(State)
	onCycle   func(int)
	log       *slog.Logger

	pattern exercise.Pattern
	index   int
	running bool
	cycles  int
	elapsed time.Duration
	// mark is the instant up to which elapsed has been accounted while
	// running.
	mark time.Time

	cancel clock.CancelFunc
	gen    uint64
}

// New creates an engine in the NotStarted state.
func New(p exercise.Pattern, opts Options) (*Engine, error) {
	e := &Engine{
		clock:     opts.Clock,
		scheduler: opts.Scheduler,
		minPhase:  opts.MinPhase,
		maxPhase:  opts.MaxPhase,
		onPhase:   opts.OnPhase,
		onCycle:   opts.OnCycle,
		log:       opts.Logger,
		pattern:   p.Clone(),
		index:     -1,
	}
	if e.clock == nil {
		e.clock = clock.System{}
	}
	if e.minPhase <= 0 {
		e.minPhase = DefaultMinPhase
	}
	if e.maxPhase <= 0 {
		e.maxPhase = DefaultMaxPhase
	}
	if e.log == nil {
		e.log = slog.Default()
	}
	if err := e.check(p); err != nil {
		return nil, err
	}
	return e, nil
}

// check validates p and requires every phase to lie within the edit bounds,
// so any phase of the active pattern can be adjusted.
func (e *Engine) check(p exercise.Pattern) error {
	if err := p.Validate(); err != nil {
		return err
	}
	for i, ph := range p.Phases {
		if ph.Duration < e.minPhase || ph.Duration > e.maxPhase {
			return fmt.Errorf("%w: phase %d (%s) is %v, not within [%v, %v]", ErrOutOfRange, i, ph.Name, ph.Duration, e.minPhase, e.maxPhase)
		}
	}
	return nil
}

// notice is a pending notification collected under the lock.
type notice struct {
	phase  *State
	cycles int
}

func (e *Engine) notify(ns []notice) {
	for _, n := range ns {
		if n.cycles > 0 && e.onCycle != nil {
			e.onCycle(n.cycles)
		}
		if n.phase != nil && e.onPhase != nil {
			e.onPhase(*n.phase)
		}
	}
}

// SelectPattern replaces the active pattern and discards any session in
// progress. An invalid pattern, or one with a phase outside the duration
// bounds, is refused and nothing changes.
func (e *Engine) SelectPattern(p exercise.Pattern) error {
	if err := e.check(p); err != nil {
		return err
	}
	e.mu.Lock()
	e.pattern = p.Clone()
	e.resetLocked()
	e.mu.Unlock()
	e.log.Debug("engine: pattern selected", "pattern", p.Name, "phases", len(p.Phases))
	return nil
}

// Start begins the session at phase 0.
func (e *Engine) Start() error {
	e.mu.Lock()
	if e.index != -1 {
		e.mu.Unlock()
		return ErrAlreadyStarted
	}
	e.index = 0
	e.running = true
	e.elapsed = 0
	e.cycles = 0
	e.mark = e.clock.Now()
	e.armLocked()
	st := e.stateLocked()
	name := e.pattern.Name
	e.mu.Unlock()

	e.log.Debug("engine: started", "pattern", name)
	e.notify([]notice{{phase: &st}})
	return nil
}

// TogglePause pauses a running session or resumes a paused one. Resuming
// continues the current phase where it stopped.
func (e *Engine) TogglePause() error {
	e.mu.Lock()
	if e.index == -1 {
		e.mu.Unlock()
		return ErrNotStarted
	}
	now := e.clock.Now()
	var ns []notice
	if e.running {
		ns = e.accountLocked(now)
		e.running = false
		e.disarmLocked()
	} else {
		e.running = true
		e.mark = now
		e.armLocked()
	}
	running := e.running
	e.mu.Unlock()

	e.log.Debug("engine: toggled", "running", running)
	e.notify(ns)
	return nil
}

// Reset returns to NotStarted. It always succeeds.
func (e *Engine) Reset() {
	e.mu.Lock()
	e.resetLocked()
	e.mu.Unlock()
}

func (e *Engine) resetLocked() {
	e.disarmLocked()
	e.index = -1
	e.running = false
	e.cycles = 0
	e.elapsed = 0
	e.mark = time.Time{}
}

// Tick accounts running time up to now and performs any phase transitions
// it covers. Time that overshoots a phase carries into the next one.
func (e *Engine) Tick(now time.Time) {
	e.mu.Lock()
	if e.index == -1 || !e.running {
		e.mu.Unlock()
		return
	}
	ns := e.accountLocked(now)
	if len(ns) > 0 {
		e.armLocked()
	}
	e.mu.Unlock()
	e.notify(ns)
}

// Skip ends the current phase immediately and moves to the next one.
func (e *Engine) Skip() error {
	e.mu.Lock()
	if e.index == -1 {
		e.mu.Unlock()
		return ErrNotStarted
	}
	var ns []notice
	if e.running {
		ns = e.accountLocked(e.clock.Now())
	}
	e.elapsed = 0
	ns = append(ns, e.advanceLocked()...)
	if e.running {
		e.mark = e.clock.Now()
		e.armLocked()
	}
	e.mu.Unlock()
	e.notify(ns)
	return nil
}

// SetPhaseDuration changes one phase of the active pattern. It is refused
// while running.
func (e *Engine) SetPhaseDuration(index int, d time.Duration) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.running {
		return ErrRunning
	}
	if index < 0 || index >= len(e.pattern.Phases) {
		return fmt.Errorf("%w: %d", ErrPhaseIndex, index)
	}
	if d < e.minPhase || d > e.maxPhase {
		return fmt.Errorf("%w: %v not within [%v, %v]", ErrOutOfRange, d, e.minPhase, e.maxPhase)
	}
	e.pattern.Phases[index].Duration = d
	return nil
}

// Bounds returns the allowed phase duration range.
func (e *Engine) Bounds() (time.Duration, time.Duration) {
	return e.minPhase, e.maxPhase
}

// Pattern returns a copy of the active pattern.
func (e *Engine) Pattern() exercise.Pattern {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.pattern.Clone()
}

// State returns a snapshot. For a running session the elapsed time includes
// the time since the last tick.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	st := e.stateLocked()
	if st.Running {
		if extra := e.clock.Now().Sub(e.mark); extra > 0 {
			st.Elapsed += extra
			if st.Elapsed > st.Phase.Duration {
				st.Elapsed = st.Phase.Duration
			}
			st.Progress = progress(st.Elapsed, st.Phase.Duration)
		}
	}
	return st
}

// Close cancels the pending phase timer. The engine keeps its state but no
// longer advances on its own.
func (e *Engine) Close() {
	e.mu.Lock()
	e.disarmLocked()
	e.scheduler = nil
	e.mu.Unlock()
}

func (e *Engine) accountLocked(now time.Time) []notice {
	if d := now.Sub(e.mark); d > 0 {
		e.elapsed += d
		e.mark = now
	}
	var ns []notice
	for e.elapsed >= e.pattern.Phases[e.index].Duration {
		e.elapsed -= e.pattern.Phases[e.index].Duration
		ns = append(ns, e.advanceLocked()...)
	}
	return ns
}

func (e *Engine) advanceLocked() []notice {
	e.index = (e.index + 1) % len(e.pattern.Phases)
	var ns []notice
	if e.index == 0 {
		e.cycles++
		ns = append(ns, notice{cycles: e.cycles})
		e.log.Debug("engine: cycle completed", "cycles", e.cycles)
	}
	st := e.stateLocked()
	ns = append(ns, notice{phase: &st})
	return ns
}

func (e *Engine) armLocked() {
	e.disarmLocked()
	if e.scheduler == nil || !e.running || e.index == -1 {
		return
	}
	remaining := e.pattern.Phases[e.index].Duration - e.elapsed
	gen := e.gen
	e.cancel = e.scheduler.AfterFunc(remaining, func() {
		e.fire(gen)
	})
}

func (e *Engine) disarmLocked() {
	e.gen++
	if e.cancel != nil {
		e.cancel()
		e.cancel = nil
	}
}

func (e *Engine) fire(gen uint64) {
	e.mu.Lock()
	if gen != e.gen {
		e.mu.Unlock()
		return
	}
	e.cancel = nil
	e.mu.Unlock()
	e.Tick(e.clock.Now())
}
