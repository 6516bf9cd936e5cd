package rate

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestNewPacer_ClampsRate never runs slower than one tick a second.
func TestNewPacer_ClampsRate(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.Equal(t, 1, NewPacer(ctx, 0).PerSec())
	require.Equal(t, 20, NewPacer(ctx, 20).PerSec())
}

// TestPacer_Ticks delivers ticks through both Chan and Take.
func TestPacer_Ticks(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	p := NewPacer(ctx, 50)

	select {
	case _, ok := <-p.Chan():
		require.True(t, ok)
	case <-time.After(500 * time.Millisecond):
		t.Fatal("pacer should tick")
	}

	done := make(chan bool)
	go func() { done <- p.Take() }()
	select {
	case ok := <-done:
		require.True(t, ok)
	case <-time.After(500 * time.Millisecond):
		t.Fatal("Take should not block forever")
	}
}

// TestPacer_StopsOnContextCancel closes the channel after cancellation.
func TestPacer_StopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	p := NewPacer(ctx, 100)
	cancel()

	require.Eventually(t, func() bool {
		return !p.Take()
	}, time.Second, 10*time.Millisecond)
}
