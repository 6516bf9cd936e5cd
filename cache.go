// Package ghostcache is an in-process identity cache for persistent objects. Objects
// that were not used recently are turned into ghosts: they keep their identity and oid
// binding but drop their loaded state until something activates them again.
package ghostcache

import (
	"context"
	"io"
	"log/slog"

	"github.com/Borislavv/go-ghost-cache/config"
	"github.com/Borislavv/go-ghost-cache/internal/cache"
	"github.com/Borislavv/go-ghost-cache/internal/metrics/prom"
	"github.com/Borislavv/go-ghost-cache/internal/sweeper"
	"github.com/Borislavv/go-ghost-cache/internal/telemetry"
	"github.com/Borislavv/go-ghost-cache/model"
	"github.com/prometheus/client_golang/prometheus"
)

// GhostCache is not safe for concurrent use on its own. When the background sweeper or
// telemetry is enabled they run on their own goroutines and take Lock around every call,
// so callers must wrap their calls in Lock/Unlock as well.
type GhostCache interface {
	cache.Cacher
	sweeper.Sweeper
	telemetry.Logger
	io.Closer
}

type Cache struct {
	cache.Cacher
	sweeper.Sweeper
	telemetry.Logger
	cls context.CancelFunc
}

// New builds a cache owned by jar. The returned cache is not safe for concurrent use
// unless callers wrap every call in Lock/Unlock; the background sweeper and telemetry
// always do.
func New(ctx context.Context, cfg *config.Cache, jar model.Jar, logger *slog.Logger) *Cache {
	if logger == nil {
		logger = slog.Default()
	}
	ctx, cancel := context.WithCancel(ctx)
	cacher := cache.New(cfg, jar, logger, newMetrics(cfg.Metrics))
	sweep := sweeper.New(ctx, cfg.Sweeper, logger, cacher)
	telemeter := telemetry.New(ctx, cfg, logger, cacher, sweep, cfg.DB.TelemetryLogsInterval)
	return &Cache{cls: cancel, Cacher: cacher, Sweeper: sweep, Logger: telemeter}
}

func (c *Cache) Close() error {
	c.cls()
	return nil
}

func newMetrics(cfg *config.MetricsCfg) cache.Metrics {
	if !cfg.Enabled() {
		return cache.NoopMetrics{}
	}
	return prom.New(cfg.Registerer, cfg.Namespace, cfg.Subsystem, prometheus.Labels(cfg.ConstLabels))
}

var _ GhostCache = (*Cache)(nil)
