package watcher

import (
	"sync"
	"time"
)

// Debouncer coalesces rapid file system events into batched notifications.
// The callback runs on the timer goroutine while the debouncer lock is held,
// so after Stop returns no callback is running or will ever run. Callbacks
// must therefore be non-blocking and must not call back into the debouncer.
type Debouncer struct {
	mu       sync.Mutex
	pending  map[string]struct{}
	timer    *time.Timer
	stopped  bool
	window   time.Duration
	callback func(paths []string)
}

// NewDebouncer creates a new debouncer with the given time window and
// callback.
func NewDebouncer(window time.Duration, callback func(paths []string)) *Debouncer {
	return &Debouncer{
		pending:  make(map[string]struct{}),
		window:   window,
		callback: callback,
	}
}

// Add adds a path to the pending set and restarts the debounce window.
// Events arriving after Stop are dropped.
func (d *Debouncer) Add(path string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}

	d.pending[path] = struct{}{}

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, d.fire)
}

// Stop cancels any armed timer and prevents all future callbacks. It blocks
// until an in-flight callback has finished.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.pending = nil
}

// fire is called when the debounce window expires.
func (d *Debouncer) fire() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped || len(d.pending) == 0 {
		d.timer = nil
		return
	}

	paths := make([]string, 0, len(d.pending))
	for path := range d.pending {
		paths = append(paths, path)
	}
	d.pending = make(map[string]struct{})
	d.timer = nil

	if d.callback != nil {
		d.callback(paths)
	}
}
