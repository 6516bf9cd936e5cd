// Package prom exports ghost cache engine events as Prometheus metrics.
package prom

import (
	"github.com/Borislavv/go-ghost-cache/internal/cache"
	"github.com/prometheus/client_golang/prometheus"
)

// Adapter implements cache.Metrics on top of Prometheus counters and gauges.
type Adapter struct {
	hits       prometheus.Counter
	misses     prometheus.Counter
	sweeps     prometheus.Counter
	ghosted    *prometheus.CounterVec
	removed    *prometheus.CounterVec
	sizeEnt    prometheus.Gauge
	sizeActive prometheus.Gauge
	sizeClass  prometheus.Gauge
}

// New registers the adapter's collectors with reg (nil means prometheus.DefaultRegisterer).
func New(reg prometheus.Registerer, ns, sub string, constLabels prometheus.Labels) *Adapter {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	counter := func(name, help string) prometheus.Counter {
		return prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   ns,
			Subsystem:   sub,
			Name:        name,
			Help:        help,
			ConstLabels: constLabels,
		})
	}
	gauge := func(name, help string) prometheus.Gauge {
		return prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   ns,
			Subsystem:   sub,
			Name:        name,
			Help:        help,
			ConstLabels: constLabels,
		})
	}
	byReason := func(name, help string) *prometheus.CounterVec {
		return prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   ns,
			Subsystem:   sub,
			Name:        name,
			Help:        help,
			ConstLabels: constLabels,
		}, []string{"reason"})
	}

	a := &Adapter{
		hits:       counter("hits_total", "Lookups that found the oid"),
		misses:     counter("misses_total", "Lookups that did not find the oid"),
		sweeps:     counter("sweeps_total", "Sweeps started"),
		ghosted:    byReason("ghosted_total", "Instances turned into ghosts by reason"),
		removed:    byReason("removed_total", "Bindings dropped by reason"),
		sizeEnt:    gauge("size_entries", "Bound oids, ghosts included"),
		sizeActive: gauge("size_active", "Active instances on the ring"),
		sizeClass:  gauge("size_classes", "Registered classes"),
	}
	reg.MustRegister(a.hits, a.misses, a.sweeps, a.ghosted, a.removed, a.sizeEnt, a.sizeActive, a.sizeClass)
	return a
}

func (a *Adapter) Hit()   { a.hits.Inc() }
func (a *Adapter) Miss()  { a.misses.Inc() }
func (a *Adapter) Sweep() { a.sweeps.Inc() }

func (a *Adapter) Ghosted(r cache.GhostReason) {
	a.ghosted.WithLabelValues(ghostReason(r)).Inc()
}

func (a *Adapter) Removed(r cache.RemoveReason) {
	a.removed.WithLabelValues(removeReason(r)).Inc()
}

func (a *Adapter) Size(entries, active, classes int) {
	a.sizeEnt.Set(float64(entries))
	a.sizeActive.Set(float64(active))
	a.sizeClass.Set(float64(classes))
}

func ghostReason(r cache.GhostReason) string {
	switch r {
	case cache.GhostInvalidation:
		return "invalidation"
	default:
		return "sweep"
	}
}

func removeReason(r cache.RemoveReason) string {
	switch r {
	case cache.RemoveUnreferenced:
		return "unreferenced"
	case cache.RemoveInvalidation:
		return "invalidation"
	default:
		return "explicit"
	}
}

var _ cache.Metrics = (*Adapter)(nil)
