package sweeper

import "time"

// NoOpSweeper is used when background sweeping is disabled.
type NoOpSweeper struct{}

func (NoOpSweeper) ForceCall(timeout time.Duration) error { return nil }
func (NoOpSweeper) Metrics() (scans, hits, errors int64)  { return 0, 0, 0 }
func (NoOpSweeper) Close() error                          { return nil }
