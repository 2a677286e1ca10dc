package connectivity

import (
	"context"
	"net"
	"sync/atomic"
	"testing"
	"time"

	"github.com/evarisis/actaflow/internal/logger"
)

type scriptedProber struct {
	results []bool
	calls   atomic.Int32
}

func (p *scriptedProber) Probe(ctx context.Context) bool {
	n := int(p.calls.Add(1)) - 1
	if n < len(p.results) {
		return p.results[n]
	}
	return true
}

func TestSignal(t *testing.T) {
	s := NewSignal()
	if s.IsSet() {
		t.Fatal("new signal should not be set")
	}
	s.Set()
	s.Set()
	if !s.IsSet() {
		t.Fatal("signal should be set")
	}
	select {
	case <-s.Done():
	default:
		t.Error("Done() should be closed")
	}
}

func TestMonitorSetsSignalOnFailure(t *testing.T) {
	p := &scriptedProber{results: []bool{true, true, false}}
	m := NewMonitor(p, 5*time.Millisecond, logger.Nop())
	sig := NewSignal()

	done := make(chan struct{})
	go func() {
		m.Run(context.Background(), sig)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("monitor did not return after failed probe")
	}
	if !sig.IsSet() {
		t.Error("signal should be set after failed probe")
	}
	if got := p.calls.Load(); got != 3 {
		t.Errorf("probes = %v, want 3", got)
	}
}

func TestMonitorStopsWithoutSignal(t *testing.T) {
	p := &scriptedProber{}
	m := NewMonitor(p, time.Hour, logger.Nop())
	sig := NewSignal()

	stop := m.Start(context.Background(), sig)
	stop()

	if sig.IsSet() {
		t.Error("stopping the monitor must not set the signal")
	}
	if p.calls.Load() != 1 {
		t.Errorf("probes = %v, want 1", p.calls.Load())
	}
}

func TestMonitorExitsWhenSignalSetElsewhere(t *testing.T) {
	m := NewMonitor(&scriptedProber{}, time.Hour, logger.Nop())
	sig := NewSignal()
	done := make(chan struct{})
	go func() {
		m.Run(context.Background(), sig)
		close(done)
	}()
	sig.Set()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("monitor ignored external signal")
	}
}

func TestTCPProber(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	go func() {
		for {
			c, err := ln.Accept()
			if err != nil {
				return
			}
			c.Close()
		}
	}()

	up := TCPProber{Address: ln.Addr().String(), Timeout: time.Second}
	if !up.Probe(context.Background()) {
		t.Error("Probe() = false for listening port")
	}

	addr := ln.Addr().String()
	ln.Close()
	down := TCPProber{Address: addr, Timeout: time.Second}
	if down.Probe(context.Background()) {
		t.Error("Probe() = true for closed port")
	}
}
