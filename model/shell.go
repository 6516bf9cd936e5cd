package model

import "errors"

var ErrNotHeld = errors.New("release of an object that is not held")

// Shell is a ready-made Persistent. Hosts either use it directly or embed it
// and supply load/drop hooks that materialize and discard their own fields.
type Shell struct {
	oid   OID
	state State
	refs  int
	owner Owner
	load  func() error
	drop  func() error
}

// NewShell returns a ghost shell. Nil hooks are allowed.
func NewShell(oid OID, load, drop func() error) *Shell {
	return &Shell{oid: oid, state: Ghost, load: load, drop: drop}
}

func (s *Shell) OID() OID             { return s.oid }
func (s *Shell) State() State         { return s.state }
func (s *Shell) Refs() int            { return s.refs }
func (s *Shell) Owner() Owner         { return s.owner }
func (s *Shell) SetOwner(owner Owner) { s.owner = owner }

// Activate loads the state of a ghost and tells the owner so the shell gets re-linked
// at the most-recently-used end of the ring.
func (s *Shell) Activate() error {
	if s.state.Active() {
		return nil
	}
	if s.load != nil {
		if err := s.load(); err != nil {
			return err
		}
	}
	s.state = UpToDate
	if s.owner != nil {
		return s.owner.Activated(s.oid)
	}
	return nil
}

// Deactivate turns the shell into a ghost. The owner learns about it before the
// drop hook runs, so code reached from the hook sees a consistent cache.
func (s *Shell) Deactivate() error {
	if !s.state.Active() {
		return nil
	}
	s.state = Ghost
	if s.owner != nil {
		if err := s.owner.Ghosted(s.oid); err != nil {
			return err
		}
	}
	if s.drop != nil {
		return s.drop()
	}
	return nil
}

func (s *Shell) MarkChanged() {
	if s.state.Active() {
		s.state = Changed
	}
}

func (s *Shell) MarkUpToDate() {
	if s.state.Active() {
		s.state = UpToDate
	}
}

// MarkSticky pins an active shell so sweeps leave it alone.
func (s *Shell) MarkSticky() {
	if s.state.Active() {
		s.state = Sticky
	}
}

func (s *Shell) Hold() { s.refs++ }

// Release drops one outside holder. When a ghost loses its last holder the owner
// is notified so it can forget the shell.
func (s *Shell) Release() error {
	if s.refs == 0 {
		return ErrNotHeld
	}
	s.refs--
	if s.refs == 0 && s.state == Ghost && s.owner != nil {
		return s.owner.Unreferenced(s.oid)
	}
	return nil
}

// ClassShell is a minimal Class placeholder with explicit holder accounting.
type ClassShell struct {
	oid  OID
	name string
	refs int
}

func NewClassShell(oid OID, name string) *ClassShell {
	return &ClassShell{oid: oid, name: name}
}

func (c *ClassShell) OID() OID          { return c.oid }
func (c *ClassShell) ClassName() string { return c.name }
func (c *ClassShell) Refs() int         { return c.refs }
func (c *ClassShell) Hold()             { c.refs++ }

func (c *ClassShell) Release() error {
	if c.refs == 0 {
		return ErrNotHeld
	}
	c.refs--
	return nil
}
