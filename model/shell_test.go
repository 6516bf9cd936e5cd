package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type recordingOwner struct {
	events []string
	err    error
}

func (o *recordingOwner) Activated(oid OID) error {
	o.events = append(o.events, "activated:"+string(oid))
	return o.err
}

func (o *recordingOwner) Ghosted(oid OID) error {
	o.events = append(o.events, "ghosted:"+string(oid))
	return o.err
}

func (o *recordingOwner) Unreferenced(oid OID) error {
	o.events = append(o.events, "unreferenced:"+string(oid))
	return o.err
}

// TestShell_StartsAsGhost checks a fresh shell holds no state.
func TestShell_StartsAsGhost(t *testing.T) {
	s := NewShell("a", nil, nil)
	require.Equal(t, Ghost, s.State())
	require.False(t, s.State().Active())
	require.Nil(t, s.Owner())
}

// TestShell_ActivateDeactivate_NotifiesOwner checks the owner hears about both transitions.
func TestShell_ActivateDeactivate_NotifiesOwner(t *testing.T) {
	var loaded, dropped int
	s := NewShell("a", func() error { loaded++; return nil }, func() error { dropped++; return nil })
	owner := &recordingOwner{}
	s.SetOwner(owner)

	require.NoError(t, s.Activate())
	require.NoError(t, s.Activate(), "second activation is a no-op")
	require.Equal(t, UpToDate, s.State())

	require.NoError(t, s.Deactivate())
	require.NoError(t, s.Deactivate(), "second deactivation is a no-op")
	require.Equal(t, Ghost, s.State())

	require.Equal(t, 1, loaded)
	require.Equal(t, 1, dropped)
	require.Equal(t, []string{"activated:a", "ghosted:a"}, owner.events)
}

// TestShell_Deactivate_GhostBeforeDropHook checks the drop hook observes a ghost.
func TestShell_Deactivate_GhostBeforeDropHook(t *testing.T) {
	var s *Shell
	var seen State
	s = NewShell("a", nil, func() error { seen = s.State(); return nil })
	require.NoError(t, s.Activate())
	require.NoError(t, s.Deactivate())
	require.Equal(t, Ghost, seen)
}

// TestShell_LoadError_KeepsGhost checks a failed load leaves the shell untouched.
func TestShell_LoadError_KeepsGhost(t *testing.T) {
	boom := errors.New("boom")
	s := NewShell("a", func() error { return boom }, nil)
	require.ErrorIs(t, s.Activate(), boom)
	require.Equal(t, Ghost, s.State())
}

// TestShell_MarkStates checks active-only state transitions.
func TestShell_MarkStates(t *testing.T) {
	s := NewShell("a", nil, nil)
	s.MarkChanged()
	require.Equal(t, Ghost, s.State(), "ghosts cannot be marked")

	require.NoError(t, s.Activate())
	s.MarkChanged()
	require.Equal(t, Changed, s.State())
	s.MarkSticky()
	require.Equal(t, Sticky, s.State())
	s.MarkUpToDate()
	require.Equal(t, UpToDate, s.State())
}

// TestShell_Release_NotifiesOnLastGhostHolder checks the unreferenced notification.
func TestShell_Release_NotifiesOnLastGhostHolder(t *testing.T) {
	s := NewShell("a", nil, nil)
	owner := &recordingOwner{}
	s.SetOwner(owner)
	s.Hold()
	s.Hold()

	require.NoError(t, s.Release())
	require.Empty(t, owner.events)
	require.NoError(t, s.Release())
	require.Equal(t, []string{"unreferenced:a"}, owner.events)
	require.ErrorIs(t, s.Release(), ErrNotHeld)
}

// TestShell_Release_ActiveDoesNotNotify checks active shells stay owned by the cache.
func TestShell_Release_ActiveDoesNotNotify(t *testing.T) {
	s := NewShell("a", nil, nil)
	require.NoError(t, s.Activate())
	owner := &recordingOwner{}
	s.SetOwner(owner)
	s.Hold()
	require.NoError(t, s.Release())
	require.Empty(t, owner.events)
}

// TestClassShell_Refs checks class holder accounting.
func TestClassShell_Refs(t *testing.T) {
	c := NewClassShell("K", "pkg.Klass")
	require.Equal(t, OID("K"), c.OID())
	require.Equal(t, "pkg.Klass", c.ClassName())
	c.Hold()
	require.Equal(t, 1, c.Refs())
	require.NoError(t, c.Release())
	require.ErrorIs(t, c.Release(), ErrNotHeld)
}

// TestState_String checks state labels.
func TestState_String(t *testing.T) {
	require.Equal(t, "ghost", Ghost.String())
	require.Equal(t, "sticky", Sticky.String())
	require.Equal(t, "unknown", State(9).String())
	require.False(t, Everything.IsValid())
	require.True(t, OID("x").IsValid())
}
