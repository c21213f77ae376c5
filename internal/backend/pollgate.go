package backend

import (
	"sync"
	"time"
)

// pollGate enforces a floor between successive engine invocations. Each
// poll spawns stg and git subprocesses, so a kick storm after a command
// burst must not turn into a subprocess storm.
type pollGate struct {
	floor time.Duration

	mu   sync.Mutex
	last time.Time
}

func newPollGate(floor time.Duration) *pollGate {
	return &pollGate{floor: floor}
}

// wait blocks until the floor since the previous pass has elapsed, then
// claims the current pass. A nil or zero-floor gate never blocks.
func (g *pollGate) wait() {
	if g == nil || g.floor <= 0 {
		return
	}
	for {
		g.mu.Lock()
		remaining := g.floor - time.Since(g.last)
		if remaining <= 0 {
			g.last = time.Now()
			g.mu.Unlock()
			return
		}
		g.mu.Unlock()
		time.Sleep(remaining)
	}
}
