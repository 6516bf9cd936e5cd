package cache

import "sync/atomic"

// counters are atomics so telemetry can read them without taking the cache lock.
type counters struct {
	hits    atomic.Int64
	misses  atomic.Int64
	ghosted atomic.Int64
	removed atomic.Int64
	sweeps  atomic.Int64
}

func newCounters() *counters {
	return &counters{
		hits:    atomic.Int64{},
		misses:  atomic.Int64{},
		ghosted: atomic.Int64{},
		removed: atomic.Int64{},
		sweeps:  atomic.Int64{},
	}
}

func (c *counters) snapshot() (hits, misses, ghosted, removed, sweeps int64) {
	return c.hits.Load(), c.misses.Load(), c.ghosted.Load(), c.removed.Load(), c.sweeps.Load()
}
