package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/evarisis/actaflow/internal/audio"
	"github.com/evarisis/actaflow/internal/logger"
)

// State of the recorder.
type State int

const (
	Idle State = iota
	Recording
)

func (s State) String() string {
	if s == Recording {
		return "recording"
	}
	return "idle"
}

// Recorder is the Idle/Recording state machine over a single capture device.
// Every transition runs under one lock, so two captures never overlap.
type Recorder struct {
	capturer audio.Capturer
	queue    *Queue
	logger   logger.Logger

	mu      sync.Mutex
	state   State
	speaker string
	buf     *audio.Buffer
	stopper audio.Stopper
}

func NewRecorder(capturer audio.Capturer, queue *Queue, log logger.Logger) *Recorder {
	return &Recorder{capturer: capturer, queue: queue, logger: log}
}

// Toggle handles a press on a speaker. Pressing the active speaker stops the
// recording; pressing another one flushes the current segment and starts the
// new speaker in the same transition.
func (r *Recorder) Toggle(speaker string) (State, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state == Recording {
		same := r.speaker == speaker
		if err := r.flushLocked(); err != nil {
			return r.state, err
		}
		if same {
			return r.state, nil
		}
	}

	if err := r.startLocked(speaker); err != nil {
		return r.state, err
	}
	return r.state, nil
}

// Stop flushes the active recording, if any.
func (r *Recorder) Stop() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state != Recording {
		return nil
	}
	return r.flushLocked()
}

// Rename relabels the active recording.
func (r *Recorder) Rename(speaker string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state != Recording {
		return fmt.Errorf("no active recording to rename")
	}
	r.speaker = speaker
	return nil
}

// State reports the current state and speaker.
func (r *Recorder) State() (State, string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state, r.speaker
}

func (r *Recorder) startLocked(speaker string) error {
	buf := &audio.Buffer{}
	stopper, err := r.capturer.Start(buf)
	if err != nil {
		return fmt.Errorf("start capture for %s: %w", speaker, err)
	}
	r.state = Recording
	r.speaker = speaker
	r.buf = buf
	r.stopper = stopper
	r.logger.Info(context.Background(), "Recording started: %s", speaker)
	return nil
}

func (r *Recorder) flushLocked() error {
	err := r.stopper.Stop()
	pcm := r.buf.Bytes()
	speaker := r.speaker

	r.state = Idle
	r.speaker = ""
	r.buf = nil
	r.stopper = nil

	if r.queue.Add(speaker, pcm) {
		r.logger.Info(context.Background(), "Segment queued: %s (%d bytes)", speaker, len(pcm))
	} else {
		r.logger.Warn(context.Background(), "Discarded empty segment for %s", speaker)
	}
	if err != nil {
		return fmt.Errorf("stop capture for %s: %w", speaker, err)
	}
	return nil
}
