// Package clock provides the time sources and timer scheduling used by the
// exercise engine and the journal draft store. Both take these as
// dependencies so tests can drive them with synthetic time.
package clock

import (
	"log/slog"
	"sync"
	"time"
)

// Clock abstracts the current time.
type Clock interface {
	Now() time.Time
}

// CancelFunc stops a scheduled callback. Calling it more than once, or after
// the callback ran, is a no-op.
type CancelFunc func()

// Scheduler registers a callback to run once after a delay.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) CancelFunc
}

// System is the wall clock, scheduling callbacks with time.AfterFunc.
// Callbacks run on their own goroutine.
type System struct{}

// Now implements Clock.
func (System) Now() time.Time {
	return time.Now()
}

// AfterFunc implements Scheduler.
func (System) AfterFunc(d time.Duration, fn func()) CancelFunc {
	slog.Debug("clock: schedule", "delay", d)
	t := time.AfterFunc(d, fn)
	var once sync.Once
	return func() {
		once.Do(func() {
			t.Stop()
		})
	}
}
