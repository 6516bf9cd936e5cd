package sweeper

import "sync/atomic"

type sweeperCounters struct {
	scans  atomic.Int64
	hits   atomic.Int64
	errors atomic.Int64
}

func (c *sweeperCounters) snapshot() (scans, hits, errors int64) {
	return c.scans.Load(), c.hits.Load(), c.errors.Load()
}

func newSweeperCounters() *sweeperCounters {
	return &sweeperCounters{
		scans:  atomic.Int64{},
		hits:   atomic.Int64{},
		errors: atomic.Int64{},
	}
}
