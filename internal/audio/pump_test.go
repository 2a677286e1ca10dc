package audio

import (
	"errors"
	"testing"
	"time"

	"github.com/evarisis/actaflow/internal/logger"
)

func TestPump(t *testing.T) {
	tests := []struct {
		name      string
		fails     func(call int) bool
		stopAfter int
		wantErr   error
		wantBytes int
	}{
		{
			name:      "healthy device",
			fails:     func(int) bool { return false },
			stopAfter: 3,
			wantBytes: 3 * 4,
		},
		{
			name:      "isolated errors are skipped",
			fails:     func(call int) bool { return call%2 == 0 },
			stopAfter: 3 * maxReadErrors,
			wantBytes: 3 * maxReadErrors / 2 * 4,
		},
		{
			name:      "device lost",
			fails:     func(int) bool { return true },
			stopAfter: 1000,
			wantErr:   ErrDeviceLost,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			done := make(chan struct{})
			samples := []int16{1, -1}
			calls := 0
			read := func() error {
				calls++
				if calls == tt.stopAfter {
					close(done)
				}
				if tt.fails(calls) {
					return errors.New("input overflowed")
				}
				return nil
			}

			var buf Buffer
			start := time.Now()
			err := Pump(done, read, samples, &buf, logger.Nop())
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Pump() error = %v, want %v", err, tt.wantErr)
			}
			if buf.Len() != tt.wantBytes {
				t.Errorf("buffered = %v, want %v", buf.Len(), tt.wantBytes)
			}
			if time.Since(start) > 5*time.Second {
				t.Errorf("Pump() took %v", time.Since(start))
			}
		})
	}
}

func TestPumpDeviceLostStopsReading(t *testing.T) {
	calls := 0
	read := func() error {
		calls++
		return errors.New("device unavailable")
	}

	err := Pump(make(chan struct{}), read, []int16{0}, &Buffer{}, logger.Nop())
	if !errors.Is(err, ErrDeviceLost) {
		t.Fatalf("Pump() error = %v, want ErrDeviceLost", err)
	}
	if calls != maxReadErrors {
		t.Errorf("reads = %v, want %v", calls, maxReadErrors)
	}
}
