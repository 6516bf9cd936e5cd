package telemetry

import (
	"github.com/Borislavv/go-ghost-cache/internal/cache"
	"github.com/Borislavv/go-ghost-cache/internal/sweeper"
)

type sampler struct {
	cache   cache.Cacher
	sweeper sweeper.Sweeper
}

func newSampler(c cache.Cacher, s sweeper.Sweeper) sampler {
	return sampler{cache: c, sweeper: s}
}

// snapshot holds cumulative counters (monotonic).
type snapshot struct {
	hits    uint64
	misses  uint64
	ghosted uint64
	removed uint64
	sweeps  uint64

	sweeperScans  uint64
	sweeperHits   uint64
	sweeperErrors uint64
}

func (s sampler) snapshot() snapshot {
	hits, misses, ghosted, removed, sweeps := s.cache.CacheMetrics()
	scans, scanHits, errs := s.sweeper.Metrics()

	return snapshot{
		hits:    uint64(max(hits, 0)),
		misses:  uint64(max(misses, 0)),
		ghosted: uint64(max(ghosted, 0)),
		removed: uint64(max(removed, 0)),
		sweeps:  uint64(max(sweeps, 0)),

		sweeperScans:  uint64(max(scans, 0)),
		sweeperHits:   uint64(max(scanHits, 0)),
		sweeperErrors: uint64(max(errs, 0)),
	}
}

// deltaSnapshot converts cumulative snapshots to per-interval deltas.
// If counters reset (cur < prev), it treats cur as the delta.
func deltaSnapshot(prev, cur snapshot) snapshot {
	return snapshot{
		hits:    delta(prev.hits, cur.hits),
		misses:  delta(prev.misses, cur.misses),
		ghosted: delta(prev.ghosted, cur.ghosted),
		removed: delta(prev.removed, cur.removed),
		sweeps:  delta(prev.sweeps, cur.sweeps),

		sweeperScans:  delta(prev.sweeperScans, cur.sweeperScans),
		sweeperHits:   delta(prev.sweeperHits, cur.sweeperHits),
		sweeperErrors: delta(prev.sweeperErrors, cur.sweeperErrors),
	}
}

func delta(prev, cur uint64) uint64 {
	if cur >= prev {
		return cur - prev
	}
	return cur
}
