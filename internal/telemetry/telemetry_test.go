package telemetry

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/Borislavv/go-ghost-cache/config"
	"github.com/Borislavv/go-ghost-cache/internal/cache"
	"github.com/Borislavv/go-ghost-cache/internal/sweeper"
	"github.com/Borislavv/go-ghost-cache/model"
	"github.com/stretchr/testify/require"
)

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// TestDeltaSnapshot subtracts cumulative counters and survives resets.
func TestDeltaSnapshot(t *testing.T) {
	prev := snapshot{hits: 10, ghosted: 4, sweeperScans: 7}
	cur := snapshot{hits: 15, ghosted: 2, sweeperScans: 9}

	d := deltaSnapshot(prev, cur)
	require.Equal(t, uint64(5), d.hits)
	require.Equal(t, uint64(2), d.ghosted, "reset counter is taken as is")
	require.Equal(t, uint64(2), d.sweeperScans)
}

// TestLogs_Loop writes engine and storage lines on every tick.
func TestLogs_Loop(t *testing.T) {
	cfg := &config.Cache{DB: config.DBCfg{
		SizeBudget:             5,
		IsTelemetryLogsEnabled: true,
		TelemetryLogsInterval:  10 * time.Millisecond,
	}}
	cfg.AdjustConfig()

	c := cache.New(cfg, nil, slog.Default(), nil)
	s := model.NewShell("a", nil, nil)
	require.NoError(t, s.Activate())
	require.NoError(t, c.Register("a", s))

	out := &syncBuffer{}
	logger := slog.New(slog.NewTextHandler(out, nil))
	l := New(context.Background(), cfg, logger, c, sweeper.NoOpSweeper{}, cfg.DB.TelemetryLogsInterval)
	defer func() { _ = l.Close() }()

	require.Equal(t, 10*time.Millisecond, l.Interval())
	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "msg=storage")
	}, time.Second, 5*time.Millisecond)

	logs := out.String()
	require.Contains(t, logs, "msg=engine")
	require.Contains(t, logs, "active=1")
	require.Contains(t, logs, "size_budget=5")
	require.NotContains(t, logs, "msg=sweeper")
}

// TestLogs_Disabled never starts the loop.
func TestLogs_Disabled(t *testing.T) {
	cfg := &config.Cache{DB: config.DBCfg{TelemetryLogsInterval: time.Millisecond}}
	cfg.AdjustConfig()

	out := &syncBuffer{}
	c := cache.New(cfg, nil, slog.Default(), nil)
	l := New(context.Background(), cfg, slog.New(slog.NewTextHandler(out, nil)), c, sweeper.NoOpSweeper{}, time.Millisecond)
	defer func() { _ = l.Close() }()

	time.Sleep(20 * time.Millisecond)
	require.Empty(t, out.String())
}
