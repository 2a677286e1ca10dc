package watcher

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/evarisis/actaflow/internal/logger"
	"github.com/evarisis/actaflow/internal/project"
	"github.com/fsnotify/fsnotify"
)

type implWatcher struct {
	meetingsDir   string
	handler       EventHandler
	logger        logger.Logger
	watcher       *fsnotify.Watcher
	maxConcurrent int
	sem           *semaphore
	wg            sync.WaitGroup
	settle        time.Duration

	mu       sync.Mutex
	inFlight map[string]bool
}

// Start watches for new meeting folders and for manifests landing in them.
// Each folder is handled at most once at a time.
func (w *implWatcher) Start(ctx context.Context) error {
	w.logger.Info(ctx, "Meeting watcher started (max concurrent: %d). Monitoring: %s", w.maxConcurrent, w.meetingsDir)

	for {
		select {
		case <-ctx.Done():
			w.logger.Info(ctx, "Waiting for ongoing processing to complete...")
			w.wg.Wait()
			w.logger.Info(ctx, "Meeting watcher stopped")
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			if !event.Has(fsnotify.Create) {
				continue
			}

			if filepath.Dir(event.Name) == filepath.Clean(w.meetingsDir) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					w.logger.Debug(ctx, "New meeting folder: %s", event.Name)
					if err := w.watcher.Add(event.Name); err != nil {
						w.logger.Error(ctx, "Failed to watch %s: %v", event.Name, err)
					}
					// the manifest may have landed before the watch was added
					if project.Exists(event.Name) {
						w.dispatch(ctx, event.Name)
					}
				}
				continue
			}

			if filepath.Base(event.Name) != project.ManifestName {
				continue
			}
			w.dispatch(ctx, filepath.Dir(event.Name))

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error(ctx, "Watcher error: %v", err)
		}
	}
}

func (w *implWatcher) dispatch(ctx context.Context, dir string) {
	w.mu.Lock()
	if w.inFlight[dir] {
		w.mu.Unlock()
		w.logger.Debug(ctx, "Already processing %s, ignoring event", dir)
		return
	}
	w.inFlight[dir] = true
	w.mu.Unlock()

	w.logger.Info(ctx, "Manifest detected: %s", dir)

	// Acquire semaphore slot (blocks if max concurrent reached)
	if err := w.sem.acquire(ctx); err != nil {
		w.done(dir)
		return
	}
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		defer w.sem.release()
		defer w.done(dir)

		// let the writer finish its checkpoint
		time.Sleep(w.settle)

		if err := w.handler(ctx, dir); err != nil {
			w.logger.Error(ctx, "Failed to process %s: %v", dir, err)
		}
	}()
}

func (w *implWatcher) done(dir string) {
	w.mu.Lock()
	delete(w.inFlight, dir)
	w.mu.Unlock()
}

// Stop closes the file watcher
func (w *implWatcher) Stop() error {
	return w.watcher.Close()
}
