// Package debounce provides a trailing-edge debouncer over a pluggable clock.
package debounce

import (
	"sync"
	"time"
)

// Timer is a cancellable deferred callback.
type Timer interface {
	Stop() bool
}

// Clock schedules deferred callbacks.
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// SystemClock schedules callbacks with the runtime timer.
type SystemClock struct{}

// AfterFunc implements Clock.
func (SystemClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Debouncer runs the most recently triggered function once the quiet period
// has elapsed without another trigger.
type Debouncer struct {
	clock  Clock
	window time.Duration

	mu      sync.Mutex
	timer   Timer
	pending uint64
}

// New creates a Debouncer. A nil clock uses SystemClock.
func New(clock Clock, window time.Duration) *Debouncer {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Debouncer{clock: clock, window: window}
}

// Window returns the quiet period.
func (d *Debouncer) Window() time.Duration {
	return d.window
}

// Trigger cancels any pending call and arms f to run after the quiet period.
func (d *Debouncer) Trigger(f func()) {
	d.TriggerAfter(d.window, f)
}

// TriggerAfter is Trigger with an explicit quiet period.
func (d *Debouncer) TriggerAfter(window time.Duration, f func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.pending++
	id := d.pending
	d.timer = d.clock.AfterFunc(window, func() {
		d.mu.Lock()
		current := d.timer != nil && d.pending == id
		if current {
			d.timer = nil
		}
		d.mu.Unlock()

		if current {
			f()
		}
	})
}

// Cancel discards the pending call, if any, without running it.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// Pending reports whether a call is armed.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timer != nil
}
