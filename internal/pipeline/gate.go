package pipeline

import "sync/atomic"

// Gate is the process-wide single-flight admission gate. At most one run is
// between TryAcquire and Release at any instant; a denied caller is turned
// away immediately instead of queued. The gate knows nothing about which
// request is in flight, only that one is.
type Gate struct {
	inFlight atomic.Bool
}

func NewGate() *Gate {
	return &Gate{}
}

// TryAcquire claims the gate without blocking. It returns false when another
// run already holds it.
func (g *Gate) TryAcquire() bool {
	return g.inFlight.CompareAndSwap(false, true)
}

// Release clears the gate. It must run on every exit path of a guarded run,
// success or failure.
func (g *Gate) Release() {
	g.inFlight.Store(false)
}
