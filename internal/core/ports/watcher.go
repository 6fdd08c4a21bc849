package ports

import "context"

// Watcher reports coalesced file system changes under the watched
// directories. Implementations debounce raw events so one editing burst
// yields one rebuild.
//
//go:generate go run go.uber.org/mock/mockgen -source=watcher.go -destination=mocks/mock_watcher.go -package=mocks
type Watcher interface {
	// Start begins watching the given directories until the context is done.
	Start(ctx context.Context, dirs []string) error

	// Changes returns batches of changed paths. The channel is closed when
	// watching stops.
	Changes() <-chan []string

	// Stop stops the watcher and releases all resources.
	Stop() error
}
