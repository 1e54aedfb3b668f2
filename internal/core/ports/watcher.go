package ports

import "context"

// WatchEvent is a single file-system change.
type WatchEvent struct {
	Path string
}

// Watcher watches a directory tree for changes in watch mode.
type Watcher interface {
	// Start begins watching root recursively until ctx is cancelled.
	Start(ctx context.Context, root string) error

	// Events returns the channel change events are delivered on.
	Events() <-chan WatchEvent

	// Close releases the underlying watch resources.
	Close() error
}
