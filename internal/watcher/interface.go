package watcher

import "context"

// Watcher defines the interface for file system monitoring
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// EventHandler is called with the meeting folder whose manifest appeared.
type EventHandler func(ctx context.Context, meetingDir string) error
