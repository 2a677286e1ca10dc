package session

import "sync"

// Segment is one contiguous utterance attributed to a speaker.
type Segment struct {
	Speaker string
	Audio   []byte
}

// Queue holds recorded segments in recording order.
type Queue struct {
	mu       sync.Mutex
	segments []Segment
}

// Add appends a segment. Empty audio is ignored.
func (q *Queue) Add(speaker string, audio []byte) bool {
	if len(audio) == 0 {
		return false
	}
	q.mu.Lock()
	q.segments = append(q.segments, Segment{Speaker: speaker, Audio: audio})
	q.mu.Unlock()
	return true
}

// Snapshot returns a copy of the queue contents.
func (q *Queue) Snapshot() []Segment {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := make([]Segment, len(q.segments))
	copy(out, q.segments)
	return out
}

func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.segments)
}
