package clock

import (
	"sort"
	"sync"
	"time"
)

// Manual is a Clock and Scheduler whose time only moves when Advance is
// called. Due callbacks run synchronously, in deadline order, on the caller's
// goroutine with Now() reporting their deadline.
type Manual struct {
	mu     sync.Mutex
	now    time.Time
	nextID int
	timers []*manualTimer
}

type manualTimer struct {
	id  int
	at  time.Time
	fn  func()
	off bool
}

// NewManual returns a Manual clock starting at start.
func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

// Now implements Clock.
func (m *Manual) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// AfterFunc implements Scheduler.
func (m *Manual) AfterFunc(d time.Duration, fn func()) CancelFunc {
	m.mu.Lock()
	defer m.mu.Unlock()
	if d < 0 {
		d = 0
	}
	m.nextID++
	t := &manualTimer{id: m.nextID, at: m.now.Add(d), fn: fn}
	m.timers = append(m.timers, t)
	return func() {
		m.mu.Lock()
		t.off = true
		m.mu.Unlock()
	}
}

// Pending reports how many scheduled callbacks have not yet fired or been
// cancelled.
func (m *Manual) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, t := range m.timers {
		if !t.off {
			n++
		}
	}
	return n
}

// Advance moves time forward by d, firing every callback that falls due,
// including callbacks scheduled by callbacks.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	target := m.now.Add(d)
	m.mu.Unlock()

	for {
		m.mu.Lock()
		next := m.popDue(target)
		if next == nil {
			m.now = target
			m.mu.Unlock()
			return
		}
		m.now = next.at
		m.mu.Unlock()

		next.fn()
	}
}

// popDue removes and returns the earliest live timer due at or before
// target. Callers hold m.mu.
func (m *Manual) popDue(target time.Time) *manualTimer {
	live := m.timers[:0]
	for _, t := range m.timers {
		if !t.off {
			live = append(live, t)
		}
	}
	m.timers = live
	sort.SliceStable(m.timers, func(i, j int) bool {
		if m.timers[i].at.Equal(m.timers[j].at) {
			return m.timers[i].id < m.timers[j].id
		}
		return m.timers[i].at.Before(m.timers[j].at)
	})
	if len(m.timers) == 0 || m.timers[0].at.After(target) {
		return nil
	}
	t := m.timers[0]
	t.off = true
	m.timers = m.timers[1:]
	return t
}
