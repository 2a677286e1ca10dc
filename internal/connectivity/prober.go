package connectivity

import (
	"context"
	"net"
	"time"
)

// TCPProber opens a TCP connection to Address. A DNS resolver port is a
// cheap target that rarely filters SYNs.
type TCPProber struct {
	Address string
	Timeout time.Duration
}

func (p TCPProber) Probe(ctx context.Context) bool {
	d := net.Dialer{Timeout: p.Timeout}
	conn, err := d.DialContext(ctx, "tcp", p.Address)
	if err != nil {
		return false
	}
	conn.Close()
	return true
}
