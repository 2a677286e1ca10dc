package watcher

import "context"

// semaphore bounds how many meeting folders are processed at once.
type semaphore chan struct{}

func newSemaphore(n int) *semaphore {
	s := make(semaphore, n)
	return &s
}

// acquire takes a slot or gives up when ctx ends.
func (s *semaphore) acquire(ctx context.Context) error {
	select {
	case *s <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *semaphore) release() {
	<-*s
}
