package sweeper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestNoOpSweeper does nothing and reports zeros.
func TestNoOpSweeper(t *testing.T) {
	var s NoOpSweeper

	require.NoError(t, s.ForceCall(time.Second))
	scans, hits, errs := s.Metrics()
	require.Zero(t, scans+hits+errs)
	require.NoError(t, s.Close())
}
