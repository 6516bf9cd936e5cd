package cache

import (
	"github.com/stretchr/testify/require"
	"sync"
	"testing"
)

// TestCounters_Snapshot verifies that counters correctly track and snapshot metrics.
func TestCounters_Snapshot(t *testing.T) {
	c := newCounters()

	hits, misses, ghosted, removed, sweeps := c.snapshot()
	require.Equal(t, int64(0), hits)
	require.Equal(t, int64(0), misses)
	require.Equal(t, int64(0), ghosted)
	require.Equal(t, int64(0), removed)
	require.Equal(t, int64(0), sweeps)

	c.hits.Add(10)
	c.misses.Add(5)
	c.ghosted.Add(3)
	c.removed.Add(2)
	c.sweeps.Add(1)

	hits, misses, ghosted, removed, sweeps = c.snapshot()
	require.Equal(t, int64(10), hits)
	require.Equal(t, int64(5), misses)
	require.Equal(t, int64(3), ghosted)
	require.Equal(t, int64(2), removed)
	require.Equal(t, int64(1), sweeps)
}

// TestCounters_Concurrent verifies that counters can be bumped while telemetry reads them.
func TestCounters_Concurrent(t *testing.T) {
	c := newCounters()

	const numGoroutines = 10
	const opsPerGoroutine = 100

	var wg sync.WaitGroup
	wg.Add(numGoroutines)

	for i := 0; i < numGoroutines; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < opsPerGoroutine; j++ {
				c.hits.Add(1)
				c.ghosted.Add(1)
				_, _, _, _, _ = c.snapshot()
			}
		}()
	}

	wg.Wait()

	hits, _, ghosted, _, _ := c.snapshot()
	require.Equal(t, int64(numGoroutines*opsPerGoroutine), hits)
	require.Equal(t, int64(numGoroutines*opsPerGoroutine), ghosted)
}
