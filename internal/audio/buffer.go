package audio

import "sync"

// Buffer accumulates little-endian s16 PCM. Safe for one writer and many readers.
type Buffer struct {
	mu   sync.Mutex
	data []byte
}

func (b *Buffer) Append(p []byte) {
	b.mu.Lock()
	b.data = append(b.data, p...)
	b.mu.Unlock()
}

// Bytes returns a copy of the buffered audio.
func (b *Buffer) Bytes() []byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]byte, len(b.data))
	copy(out, b.data)
	return out
}

func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.data)
}
