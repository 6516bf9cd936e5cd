package cache

import (
	"fmt"

	"github.com/Borislavv/go-ghost-cache/model"
)

// Invalidate drops the state of whatever is cached under oid. model.Everything
// invalidates the whole cache. Unknown oids are ignored.
func (c *Cache) Invalidate(oid model.OID) error {
	if oid == model.Everything {
		return c.InvalidateAll()
	}
	return c.invalidate(oid)
}

// InvalidateAll invalidates every oid bound when the call starts.
func (c *Cache) InvalidateAll() error {
	for _, oid := range c.db.Keys() {
		if err := c.invalidate(oid); err != nil {
			return err
		}
	}
	return nil
}

// InvalidateSet invalidates each oid in the set and empties it on success.
// A set holding model.Everything invalidates the whole cache.
func (c *Cache) InvalidateSet(oids map[model.OID]struct{}) error {
	if _, all := oids[model.Everything]; all {
		if err := c.InvalidateAll(); err != nil {
			return err
		}
		clear(oids)
		return nil
	}

	targets := make([]model.OID, 0, len(oids))
	for oid := range oids {
		targets = append(targets, oid)
	}
	for _, oid := range targets {
		if err := c.invalidate(oid); err != nil {
			return err
		}
	}
	clear(oids)
	return nil
}

// InvalidateList invalidates the listed oids from last to first and truncates the list
// on success. A list holding model.Everything invalidates the whole cache.
func (c *Cache) InvalidateList(oids *[]model.OID) error {
	if oids == nil {
		return nil
	}
	targets := append([]model.OID(nil), (*oids)...)

	for _, oid := range targets {
		if oid == model.Everything {
			if err := c.InvalidateAll(); err != nil {
				return err
			}
			*oids = (*oids)[:0]
			return nil
		}
	}
	for i := len(targets) - 1; i >= 0; i-- {
		if err := c.invalidate(targets[i]); err != nil {
			return err
		}
	}
	*oids = (*oids)[:0]
	return nil
}

// invalidate handles one oid. Classes nobody holds are forgotten; classes still in
// use are handed to the jar. Instances are ghosted but stay bound.
func (c *Cache) invalidate(oid model.OID) error {
	e, ok := c.db.Get(oid)
	if !ok {
		return nil
	}

	if e.IsClass() {
		class := e.Class()
		if class.Refs() == 0 {
			c.db.Delete(e)
			c.counters.removed.Add(1)
			c.metrics.Removed(RemoveInvalidation)
			c.reportSize()
			return nil
		}
		if c.jar == nil {
			return nil
		}
		if err := c.jar.SetClassState(class); err != nil {
			return fmt.Errorf("set class state %q: %w", oid, err)
		}
		return nil
	}

	if !e.Instance().State().Active() {
		return nil
	}
	return c.ghost(e, GhostInvalidation)
}
