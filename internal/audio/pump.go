package audio

import (
	"context"
	"encoding/binary"
	"errors"
	"time"

	"github.com/evarisis/actaflow/internal/logger"
)

const (
	maxReadErrors  = 20
	readRetryDelay = 10 * time.Millisecond
)

// ErrDeviceLost ends a capture whose device keeps failing, e.g. an unplugged
// microphone.
var ErrDeviceLost = errors.New("input device stopped delivering audio")

// Pump calls read until done is closed and appends each frame of samples to
// buf as s16le. An isolated failed read drops one chunk; maxReadErrors in a
// row end the loop with ErrDeviceLost.
func Pump(done <-chan struct{}, read func() error, samples []int16, buf *Buffer, log logger.Logger) error {
	ctx := context.Background()
	chunk := make([]byte, len(samples)*2)
	failures := 0

	for {
		select {
		case <-done:
			return nil
		default:
		}

		if err := read(); err != nil {
			failures++
			if failures == 1 {
				log.Warn(ctx, "Input stream read error: %v", err)
			}
			if failures >= maxReadErrors {
				log.Error(ctx, "Input stream failed %d times in a row: %v", failures, err)
				return ErrDeviceLost
			}
			select {
			case <-done:
				return nil
			case <-time.After(readRetryDelay):
			}
			continue
		}
		failures = 0

		for i, sample := range samples {
			binary.LittleEndian.PutUint16(chunk[i*2:], uint16(sample))
		}
		buf.Append(chunk)
	}
}
