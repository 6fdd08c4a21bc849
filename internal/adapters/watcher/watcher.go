// Package watcher implements file system watching for watch mode.
package watcher

import (
	"context"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/rig/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Watcher = (*Watcher)(nil)

// debounceWindow coalesces one editing burst into one rebuild.
const debounceWindow = 500 * time.Millisecond

// Watcher implements ports.Watcher using fsnotify. Raw events pass through a
// debouncer before surfacing on the Changes channel.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	debouncer *Debouncer
	changes   chan []string
}

// NewWatcher creates a new file system watcher.
func NewWatcher() (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to create fs watcher")
	}

	w := &Watcher{
		fsWatcher: fsw,
		changes:   make(chan []string, 1),
	}
	w.debouncer = NewDebouncer(debounceWindow, w.publish)
	return w, nil
}

// Start begins watching the given directories (flat, non-recursive; the
// source and animation libraries are flat listings).
func (w *Watcher) Start(ctx context.Context, dirs []string) error {
	for _, dir := range dirs {
		if err := w.fsWatcher.Add(dir); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to watch directory"), "dir", dir)
		}
	}

	go w.processEvents(ctx)
	return nil
}

// Changes returns batches of changed paths.
func (w *Watcher) Changes() <-chan []string {
	return w.changes
}

// Stop stops the watcher and releases all resources.
func (w *Watcher) Stop() error {
	return w.fsWatcher.Close()
}

func (w *Watcher) processEvents(ctx context.Context) {
	// Stop the debouncer first: Stop waits out any in-flight callback and
	// cancels armed timers, so no publish can hit the closed channel.
	defer func() {
		w.debouncer.Stop()
		close(w.changes)
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			w.debouncer.Add(event.Name)
		case _, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
		}
	}
}

// publish hands a coalesced batch to the consumer. If a batch is already
// queued the new one is dropped: the pending rebuild re-discovers everything
// anyway, so the signal is not lost.
func (w *Watcher) publish(paths []string) {
	select {
	case w.changes <- paths:
	default:
	}
}
