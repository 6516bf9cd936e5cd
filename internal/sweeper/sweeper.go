// Package sweeper runs incremental sweeps in the background while a cache is over budget.
package sweeper

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/Borislavv/go-ghost-cache/config"
	"github.com/Borislavv/go-ghost-cache/internal/shared/rate"
)

var ErrSweeperNotResponded = errors.New("sweeper not responded")

type Sweeper interface {
	ForceCall(timeout time.Duration) error
	Metrics() (scans, hits, errors int64)
	Close() error
}

// Target is the part of a cache the sweeper drives. Every call is made under the
// target's lock.
type Target interface {
	sync.Locker
	ActiveCount() int
	SizeBudget() int
	IncrementalSweep() error
}

type SweepWorker struct {
	ctx      context.Context
	cancel   context.CancelFunc
	cfg      *config.SweeperCfg
	logger   *slog.Logger
	target   Target
	counters *sweeperCounters
	invokeCh chan struct{}
}

func New(
	ctx context.Context,
	cfg *config.SweeperCfg,
	logger *slog.Logger,
	target Target,
) Sweeper {
	if !cfg.Enabled() {
		return &NoOpSweeper{}
	}

	ctx, cancel := context.WithCancel(ctx)
	return (&SweepWorker{
		ctx:      ctx,
		cancel:   cancel,
		cfg:      cfg,
		logger:   logger,
		target:   target,
		counters: newSweeperCounters(),
		invokeCh: make(chan struct{}),
	}).run()
}

// ForceCall hands one sweep to the worker, waiting at most timeout for it to accept.
func (w *SweepWorker) ForceCall(timeout time.Duration) error {
	after := time.NewTimer(timeout)
	defer after.Stop()

	select {
	case <-w.ctx.Done():
	case w.invokeCh <- struct{}{}:
	case <-after.C:
		return ErrSweeperNotResponded
	}
	return nil
}

func (w *SweepWorker) Metrics() (scans, hits, errors int64) {
	return w.counters.snapshot()
}

func (w *SweepWorker) Close() error {
	w.cancel()
	return nil
}

func (w *SweepWorker) run() *SweepWorker {
	w.logger.Info("sweeper is running", "calls_per_sec", w.cfg.CallsPerSec)

	go func() {
		defer w.logger.Info("sweeper is stopped")
		var wg sync.WaitGroup
		wg.Go(w.consumer)
		wg.Go(w.provider)
		wg.Wait()
	}()

	return w
}

// provider - wakes the consumer when the cache holds more active objects than its budget.
func (w *SweepWorker) provider() {
	pacer := rate.NewPacer(w.ctx, w.cfg.CallsPerSec)

	for pacer.Take() {
		w.counters.scans.Add(1)
		if !w.overBudget() {
			continue
		}
		select {
		case <-w.ctx.Done():
			return
		case w.invokeCh <- struct{}{}:
			w.counters.hits.Add(1)
		}
	}
}

// consumer - runs one incremental sweep per wake-up.
func (w *SweepWorker) consumer() {
	for {
		select {
		case <-w.ctx.Done():
			return
		case <-w.invokeCh:
			if err := w.sweep(); err != nil {
				w.counters.errors.Add(1)
				w.logger.Error("incremental sweep failed", "err", err)
			}
		}
	}
}

func (w *SweepWorker) overBudget() bool {
	w.target.Lock()
	defer w.target.Unlock()
	return w.target.ActiveCount() > w.target.SizeBudget()
}

func (w *SweepWorker) sweep() error {
	w.target.Lock()
	defer w.target.Unlock()
	return w.target.IncrementalSweep()
}
