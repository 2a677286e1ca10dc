package connectivity

import "context"

// Prober answers whether the network is currently reachable.
type Prober interface {
	Probe(ctx context.Context) bool
}
