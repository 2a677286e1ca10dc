package watcher

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/evarisis/actaflow/internal/logger"
	"github.com/fsnotify/fsnotify"
)

// New creates a Watcher over meetingsDir and each meeting folder in it.
func New(meetingsDir string, handler EventHandler, log logger.Logger, maxConcurrent int) (Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := watcher.Add(meetingsDir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	entries, err := os.ReadDir(meetingsDir)
	if err != nil {
		watcher.Close()
		return nil, fmt.Errorf("list meetings: %w", err)
	}
	for _, e := range entries {
		if e.IsDir() {
			if err := watcher.Add(filepath.Join(meetingsDir, e.Name())); err != nil {
				watcher.Close()
				return nil, fmt.Errorf("add watch path: %w", err)
			}
		}
	}

	if maxConcurrent <= 0 {
		maxConcurrent = 1
	}

	return &implWatcher{
		meetingsDir:   meetingsDir,
		handler:       handler,
		logger:        log,
		watcher:       watcher,
		maxConcurrent: maxConcurrent,
		sem:           newSemaphore(maxConcurrent),
		inFlight:      make(map[string]bool),
		settle:        500 * time.Millisecond,
	}, nil
}
