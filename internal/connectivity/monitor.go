package connectivity

import (
	"context"
	"time"

	"github.com/evarisis/actaflow/internal/logger"
)

// Monitor probes connectivity periodically and raises a Signal on the first
// failed probe.
type Monitor struct {
	prober   Prober
	interval time.Duration
	logger   logger.Logger
}

func NewMonitor(prober Prober, interval time.Duration, log logger.Logger) *Monitor {
	if interval <= 0 {
		interval = 10 * time.Second
	}
	return &Monitor{prober: prober, interval: interval, logger: log}
}

// Run probes immediately and then every interval until ctx is done, the
// signal is set elsewhere, or a probe fails.
func (m *Monitor) Run(ctx context.Context, sig *Signal) {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		if !m.prober.Probe(ctx) {
			if ctx.Err() != nil {
				return
			}
			m.logger.Warn(ctx, "Connectivity probe failed, cancelling transcription")
			sig.Set()
			return
		}

		select {
		case <-ctx.Done():
			return
		case <-sig.Done():
			return
		case <-ticker.C:
		}
	}
}

// Start runs the monitor on its own goroutine. The returned stop function
// cancels it and waits for it to exit.
func (m *Monitor) Start(ctx context.Context, sig *Signal) (stop func()) {
	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	go func() {
		defer close(done)
		m.Run(ctx, sig)
	}()
	return func() {
		cancel()
		<-done
	}
}
