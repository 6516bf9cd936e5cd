package cache

import (
	"fmt"

	"github.com/Borislavv/go-ghost-cache/internal/cache/db"
	"github.com/Borislavv/go-ghost-cache/model"
)

const minSweepSpins = 10000

// IncrementalSweep ghosts the oldest up-to-date instances until active count drops to
// the size budget. A positive drain resistance N tightens the target to
// active-1-active/N whenever that is smaller, so repeated calls keep shrinking the cache
// even when nothing new is loaded.
func (c *Cache) IncrementalSweep() error {
	return c.sweepTo(c.incrementalTarget())
}

// FullSweep ghosts every up-to-date instance it can reach in one pass.
func (c *Cache) FullSweep() error { return c.sweepTo(0) }

// Minimize is FullSweep. A single forward pass already reaches every eligible entry,
// so there is nothing to gain from repeating it.
func (c *Cache) Minimize() error { return c.sweepTo(0) }

func (c *Cache) incrementalTarget() int {
	target := c.sizeBudget
	if c.drainResistance >= 1 {
		n := c.db.Active()
		if drained := n - 1 - n/c.drainResistance; drained < target {
			target = drained
		}
	}
	return target
}

// sweepTo walks the ring from the oldest end. A sweep started while another is running
// (a deactivation hook that triggers a sweep) returns at once without doing anything.
func (c *Cache) sweepTo(target int) error {
	if c.db.Sweeping() {
		return nil
	}
	if err := c.check("pre-gc"); err != nil {
		return err
	}

	c.counters.sweeps.Add(1)
	c.metrics.Sweep()
	c.noise.sweepStarted(target, c.db.Active())

	err := c.scan(target)
	c.noise.sweepFinished(c.db.Active(), err)
	c.reportSize()
	if err != nil {
		c.logger.Warn("sweep aborted", "target", target, "active", c.db.Active(), "err", err)
		return err
	}
	return c.check("post-gc")
}

func (c *Cache) scan(target int) error {
	c.db.SetSweeping(true)
	defer c.db.SetSweeping(false)

	ring := c.db.Ring()
	spins := c.spinLimit()

	for here := ring.Front(); here != db.Home && c.db.Active() > target; {
		if err := c.check("mid-gc"); err != nil {
			return err
		}
		if spins--; spins < 0 {
			return fmt.Errorf("%w: active %d, target %d", ErrSweepRunaway, c.db.Active(), target)
		}
		if c.checking && !ring.Contains(here) {
			return fmt.Errorf("%w: node %d", ErrLostPosition, here)
		}

		e := ring.Entry(here)
		if e == nil {
			here = ring.Next(here)
			continue
		}
		if state := e.Instance().State(); state != model.UpToDate {
			c.noise.skipped(e.OID(), state)
			here = ring.Next(here)
			continue
		}

		// The placeholder keeps our position while the object's hooks relink or
		// unlink nodes around it, including here itself.
		placeholder := ring.InsertAfter(here, nil)
		err := c.ghost(e, GhostSweep)
		here = ring.Next(placeholder)
		ring.Remove(placeholder)
		if err != nil {
			return err
		}
	}
	return nil
}

func (c *Cache) spinLimit() int {
	spins := max(c.sizeBudget, c.db.Active()) * 10
	return max(spins, minSweepSpins)
}

// ghost deactivates an instance entry and makes the ring agree with the outcome, whether
// or not the object reported the change through its owner hooks. This holds on a failed
// deactivation too: whatever state the object ended up in is what the ring reflects.
func (c *Cache) ghost(e *db.Entry, reason GhostReason) error {
	obj := e.Instance()
	err := obj.Deactivate()
	if cur, ok := c.db.Get(e.OID()); ok && cur == e {
		c.reconcile(e)
	}
	if !obj.State().Active() {
		c.counters.ghosted.Add(1)
		c.metrics.Ghosted(reason)
		c.noise.ghosted(e.OID())
		c.reclaim(e)
	}
	if err != nil {
		return fmt.Errorf("deactivate %q: %w", e.OID(), err)
	}
	return nil
}
