// Package telemetry periodically logs what a cache and its sweeper did since the last line.
package telemetry

import (
	"context"
	"log/slog"
	"time"

	"github.com/Borislavv/go-ghost-cache/config"
	"github.com/Borislavv/go-ghost-cache/internal/cache"
	"github.com/Borislavv/go-ghost-cache/internal/sweeper"
)

type Logger interface {
	Interval() time.Duration
	Close() error
}

type Logs struct {
	ctx      context.Context
	cancel   context.CancelFunc
	cfg      *config.Cache
	logger   *slog.Logger
	cache    cache.Cacher
	sweeper  sweeper.Sweeper
	interval time.Duration
}

func New(
	ctx context.Context,
	cfg *config.Cache,
	logger *slog.Logger,
	cache cache.Cacher,
	sweeper sweeper.Sweeper,
	interval time.Duration,
) *Logs {
	ctx, cancel := context.WithCancel(ctx)
	return (&Logs{
		ctx:      ctx,
		cancel:   cancel,
		cfg:      cfg,
		logger:   logger,
		cache:    cache,
		sweeper:  sweeper,
		interval: interval,
	}).run()
}

func (l *Logs) Interval() time.Duration {
	return l.interval
}

func (l *Logs) Close() error {
	l.cancel()
	return nil
}

func (l *Logs) run() *Logs {
	if l.cfg != nil && l.cfg.DB.IsTelemetryLogsEnabled {
		go l.loop()
	}
	return l
}

func (l *Logs) loop() {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	s := newSampler(l.cache, l.sweeper)
	prev := s.snapshot()

	for {
		select {
		case <-l.ctx.Done():
			return

		case <-ticker.C:
			cur := s.snapshot()
			d := deltaSnapshot(prev, cur)
			prev = cur

			common := []any{"interval", l.interval.String()}

			l.logger.Info("engine",
				append(common,
					"hits", int64(d.hits),
					"misses", int64(d.misses),
					"ghosted", int64(d.ghosted),
					"removed", int64(d.removed),
					"sweeps", int64(d.sweeps),
				)...,
			)

			if l.cfg.Sweeper.Enabled() {
				l.logger.Info("sweeper",
					append(common,
						"scans", int64(d.sweeperScans),
						"hits", int64(d.sweeperHits),
						"errors", int64(d.sweeperErrors),
					)...,
				)
			}

			entries, active, classes, budget := l.sizes()
			l.logger.Info("storage",
				append(common,
					"entries", entries,
					"active", active,
					"classes", classes,
					"size_budget", budget,
				)...,
			)
		}
	}
}

func (l *Logs) sizes() (entries, active, classes, budget int) {
	l.cache.Lock()
	defer l.cache.Unlock()
	return l.cache.Len(), l.cache.ActiveCount(), l.cache.ClassCount(), l.cache.SizeBudget()
}
