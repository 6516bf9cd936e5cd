package cache

// GhostReason explains why an active object was turned into a ghost.
type GhostReason int

const (
	// GhostSweep: ghosted by a sweep to bring the cache under its target size.
	GhostSweep GhostReason = iota
	// GhostInvalidation: ghosted because its oid was invalidated.
	GhostInvalidation
)

// RemoveReason explains why a binding left the map.
type RemoveReason int

const (
	RemoveExplicit RemoveReason = iota
	RemoveUnreferenced
	RemoveInvalidation
)

// Metrics exposes engine-level observability hooks.
// Hooks run on the caller's goroutine while the cache is in use; keep them cheap.
type Metrics interface {
	Hit()
	Miss()
	Ghosted(reason GhostReason)
	Removed(reason RemoveReason)
	Sweep()
	Size(entries, active, classes int)
}

// NoopMetrics is the default when no observability backend is configured.
type NoopMetrics struct{}

func (NoopMetrics) Hit()                              {}
func (NoopMetrics) Miss()                             {}
func (NoopMetrics) Ghosted(GhostReason)               {}
func (NoopMetrics) Removed(RemoveReason)              {}
func (NoopMetrics) Sweep()                            {}
func (NoopMetrics) Size(entries, active, classes int) {}

var _ Metrics = NoopMetrics{}
