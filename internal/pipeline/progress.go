package pipeline

import "sync"

type Stage string

const (
	StageTranscription Stage = "transcription"
	StageSummarization Stage = "summarization"
)

// Update is one progress notification.
type Update struct {
	Stage    Stage
	Fraction float64
	Message  string
}

// Sink consumes progress updates on the relay goroutine.
type Sink func(Update)

// Relay hands progress from worker goroutines to a sink without ever blocking
// the worker. When the buffer is full the oldest pending update is dropped.
type Relay struct {
	mu     sync.Mutex
	closed bool
	ch     chan Update
	done   chan struct{}
}

func NewRelay(size int, sink Sink) *Relay {
	if size <= 0 {
		size = 16
	}
	r := &Relay{ch: make(chan Update, size), done: make(chan struct{})}
	go func() {
		defer close(r.done)
		for u := range r.ch {
			if sink != nil {
				sink(u)
			}
		}
	}()
	return r
}

func (r *Relay) Send(u Update) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}
	select {
	case r.ch <- u:
		return
	default:
	}
	select {
	case <-r.ch:
	default:
	}
	select {
	case r.ch <- u:
	default:
	}
}

// Close flushes pending updates to the sink and stops the relay.
func (r *Relay) Close() {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	r.closed = true
	close(r.ch)
	r.mu.Unlock()
	<-r.done
}

func (r *Relay) stage(s Stage) func(float64, string) {
	return func(f float64, msg string) {
		r.Send(Update{Stage: s, Fraction: f, Message: msg})
	}
}
