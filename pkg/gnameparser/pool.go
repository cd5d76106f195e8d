package gnameparser

import (
	"sync"
	"time"

	"github.com/gnames/gnameparser/internal/parserpool"
)

// The worker pool is shared across all parser instances and reference
// counted: the last Close shuts it down. This is the only process-wide
// state besides the per-instance overrides.
var (
	poolMu   sync.Mutex
	pool     *parserpool.Pool
	poolRefs int
)

// shutdownGrace is how long Close waits for in-flight parses before
// abandoning them.
const shutdownGrace = time.Second

func acquirePool(core, max int, timeout time.Duration) *parserpool.Pool {
	poolMu.Lock()
	defer poolMu.Unlock()
	if pool == nil {
		// idle workers terminate after twice the parse timeout; saturated
		// submissions block the caller for one timeout
		pool = parserpool.New(core, max, 2*timeout, timeout)
	}
	poolRefs++
	return pool
}

func releasePool() {
	poolMu.Lock()
	defer poolMu.Unlock()
	if poolRefs == 0 {
		return
	}
	poolRefs--
	if poolRefs == 0 && pool != nil {
		pool.Shutdown(shutdownGrace)
		pool = nil
	}
}
