// Package watcher reloads the widget config when its file changes on disk.
package watcher

import (
	"sync"
	"time"
)

// DefaultDebounceDuration is the default quiet period before a reload
const DefaultDebounceDuration = 250 * time.Millisecond

// Debouncer collapses a burst of Poke calls into one call of fn, made once
// the burst has been quiet for the wait duration. Editors typically write a
// file in several steps; only the final state is worth loading.
type Debouncer struct {
	wait time.Duration
	fn   func()

	mu    sync.Mutex
	timer *time.Timer
	gen   uint64
}

// NewDebouncer creates a debouncer. A zero wait uses DefaultDebounceDuration.
func NewDebouncer(wait time.Duration, fn func()) *Debouncer {
	if wait == 0 {
		wait = DefaultDebounceDuration
	}
	return &Debouncer{wait: wait, fn: fn}
}

// Poke restarts the quiet period
func (d *Debouncer) Poke() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.gen++
	gen := d.gen
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.wait, func() {
		d.mu.Lock()
		// a timer that already fired can still lose to a newer Poke or Stop
		current := gen == d.gen
		if current {
			d.timer = nil
		}
		d.mu.Unlock()

		if current {
			d.fn()
		}
	})
}

// Stop drops any pending call
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.gen++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// Wait returns the quiet period
func (d *Debouncer) Wait() time.Duration {
	return d.wait
}
