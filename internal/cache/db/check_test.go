package db

import (
	"errors"
	"testing"

	"github.com/Borislavv/go-ghost-cache/model"
	"github.com/stretchr/testify/require"
)

func requireRingCode(t *testing.T, err error, code int) {
	t.Helper()
	require.ErrorIs(t, err, ErrRingCorrupted)
	var re *RingError
	require.True(t, errors.As(err, &re))
	require.Equal(t, code, re.Code)
	require.Equal(t, "ctx", re.Context)
}

// TestCheck_ConsistentMap passes for a well formed map.
func TestCheck_ConsistentMap(t *testing.T) {
	m := NewMap()
	for _, oid := range []model.OID{"a", "b", "c"} {
		m.SetInstance(oid, activeShell(t, oid))
	}
	require.NoError(t, m.Check("ctx"))
}

// TestCheck_GhostOnRing detects a shell that turned ghost without unlinking.
func TestCheck_GhostOnRing(t *testing.T) {
	m := NewMap()
	s := activeShell(t, "a")
	m.SetInstance("a", s)
	require.NoError(t, s.Deactivate())

	requireRingCode(t, m.Check("ctx"), 13)

	m.SetSweeping(true)
	require.NoError(t, m.Check("ctx"), "ghost state is not checked mid-sweep")
}

// TestCheck_AsymmetricLinks detects a broken back link.
func TestCheck_AsymmetricLinks(t *testing.T) {
	m := NewMap()
	a := m.SetInstance("a", activeShell(t, "a"))
	m.SetInstance("b", activeShell(t, "b"))

	m.ring.nodes[a.node].prev = a.node
	err := m.Check("ctx")
	require.Error(t, err)
	require.ErrorIs(t, err, ErrRingCorrupted)
}

// TestCheck_CountMismatch detects an active counter that drifted.
func TestCheck_CountMismatch(t *testing.T) {
	m := NewMap()
	m.SetInstance("a", activeShell(t, "a"))
	m.SetInstance("b", activeShell(t, "b"))

	m.active = 1
	requireRingCode(t, m.Check("ctx"), 14)

	m.active = 5
	m.SetSweeping(true)
	requireRingCode(t, m.Check("ctx"), 6)
}

// TestCheck_PlaceholderOutsideSweep rejects stray placeholders but tolerates them mid-sweep.
func TestCheck_PlaceholderOutsideSweep(t *testing.T) {
	m := NewMap()
	a := m.SetInstance("a", activeShell(t, "a"))
	p := m.ring.InsertAfter(a.node, nil)

	m.SetSweeping(true)
	require.NoError(t, m.Check("ctx"))

	m.SetSweeping(false)
	requireRingCode(t, m.Check("ctx"), 12)

	m.ring.Remove(p)
	require.NoError(t, m.Check("ctx"))
}

// TestCheck_RingTooBig stops walking a ring far larger than the counter says.
func TestCheck_RingTooBig(t *testing.T) {
	m := NewMap()
	for i := 0; i < 20; i++ {
		oid := model.OID(rune('a' + i))
		m.SetInstance(oid, activeShell(t, oid))
	}
	m.active = 2
	requireRingCode(t, m.Check("ctx"), 3)
}

// TestCheck_Dangling detects a link into a freed slot.
func TestCheck_Dangling(t *testing.T) {
	m := NewMap()
	a := m.SetInstance("a", activeShell(t, "a"))
	m.SetInstance("b", activeShell(t, "b"))

	m.ring.nodes[a.node].used = false
	requireRingCode(t, m.Check("ctx"), 4)
}
