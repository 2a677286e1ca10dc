package watcher

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/evarisis/actaflow/internal/logger"
	"github.com/evarisis/actaflow/internal/project"
	"github.com/evarisis/actaflow/internal/session"
)

func TestWatcherDispatchesNewManifest(t *testing.T) {
	root := t.TempDir()

	seen := make(chan string, 4)
	handler := func(ctx context.Context, dir string) error {
		seen <- dir
		return nil
	}

	w, err := New(root, handler, logger.Nop(), 1)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer w.Stop()
	w.(*implWatcher).settle = 0

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Start(ctx)

	dir := filepath.Join(root, "Comité")
	segs := []session.Segment{{Speaker: "Ana", Audio: []byte{1, 0}}}
	if _, err := project.Persist(dir, "Comité", nil, segs, 16000); err != nil {
		t.Fatal(err)
	}

	select {
	case got := <-seen:
		if got != dir {
			t.Errorf("handler dir = %v, want %v", got, dir)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("handler was not called for new manifest")
	}
}

func TestDispatchSkipsInFlight(t *testing.T) {
	release := make(chan struct{})
	calls := make(chan string, 4)
	w := &implWatcher{
		handler: func(ctx context.Context, dir string) error {
			calls <- dir
			<-release
			return nil
		},
		logger:   logger.Nop(),
		sem:      newSemaphore(2),
		inFlight: make(map[string]bool),
	}

	ctx := context.Background()
	w.dispatch(ctx, "/m/a")
	<-calls
	w.dispatch(ctx, "/m/a")
	close(release)
	w.wg.Wait()

	select {
	case dir := <-calls:
		t.Errorf("duplicate dispatch for %s", dir)
	default:
	}

	// once finished, the folder can be handled again
	w.dispatch(ctx, "/m/a")
	w.wg.Wait()
	if len(calls) != 1 {
		t.Errorf("calls after completion = %d, want 1", len(calls))
	}
}

func TestSemaphoreRespectsContext(t *testing.T) {
	s := newSemaphore(1)
	if err := s.acquire(context.Background()); err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := s.acquire(ctx); err == nil {
		t.Error("acquire() should fail on cancelled context when full")
	}
	s.release()
}
