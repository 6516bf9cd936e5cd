package cache

import (
	"fmt"
	"log/slog"
	"reflect"
	"sync"

	"github.com/Borislavv/go-ghost-cache/config"
	"github.com/Borislavv/go-ghost-cache/internal/cache/db"
	"github.com/Borislavv/go-ghost-cache/internal/invariants"
	"github.com/Borislavv/go-ghost-cache/model"
)

type Cacher interface {
	sync.Locker
	model.Owner

	Register(oid model.OID, v any) error
	Get(oid model.OID) (model.Object, error)
	GetOrDefault(oid model.OID, def model.Object) model.Object
	Has(oid model.OID) bool
	Remove(oid model.OID) error

	Invalidate(oid model.OID) error
	InvalidateAll() error
	InvalidateSet(oids map[model.OID]struct{}) error
	InvalidateList(oids *[]model.OID) error

	IncrementalSweep() error
	FullSweep() error
	Minimize() error

	SizeBudget() int
	SetSizeBudget(n int) error
	DrainResistance() int
	SetDrainResistance(n int) error
	CacheAge() int
	SetCacheAge(age int)

	Len() int
	ActiveCount() int
	ClassCount() int
	Keys() []model.OID
	Data() map[model.OID]model.Object
	LRUItems() ([]model.Item, error)
	ClassItems() []model.ClassItem
	RingFingerprint() uint64
	CacheMetrics() (hits, misses, ghosted, removed, sweeps int64)
}

// Cache is the engine: an oid → object identity map whose active instances are kept
// on a ring in activation order so the oldest ones can be ghosted first.
//
// Methods never lock. Shell hooks reenter the cache on the caller's goroutine, so the
// embedded mutex is a boundary for hosts and background workers to take around whole
// calls, not something the engine takes itself.
type Cache struct {
	sync.Mutex

	db       *db.Map
	jar      model.Jar
	logger   *slog.Logger
	metrics  Metrics
	counters *counters
	noise    noise
	checking bool

	sizeBudget      int
	drainResistance int
}

// New creates an engine owned by jar. A nil jar leaves invalidated classes that are
// still referenced untouched; nil metrics means NoopMetrics.
func New(cfg *config.Cache, jar model.Jar, logger *slog.Logger, metrics Metrics) *Cache {
	if metrics == nil {
		metrics = NoopMetrics{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Cache{
		db:              db.NewMap(),
		jar:             jar,
		logger:          logger,
		metrics:         metrics,
		counters:        newCounters(),
		noise:           newNoise(cfg.DB.EngineNoise),
		checking:        invariants.Enabled || cfg.DB.RingChecking,
		sizeBudget:      cfg.DB.SizeBudget,
		drainResistance: cfg.DB.DrainResistance,
	}
}

// Register binds oid to a class placeholder or an instance shell.
// Registering the same shell again re-links it at the most-recently-used end
// if it was reactivated, which is how ghosts come back onto the ring.
// A ghost nobody outside the cache holds is never kept: registering one leaves
// it unbound, the same as if it had been forgotten right away.
func (c *Cache) Register(oid model.OID, v any) error {
	if !oid.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidOID, oid)
	}

	var obj model.Object
	switch x := v.(type) {
	case model.Persistent:
		obj = x
	case model.Class:
		obj = x
	default:
		return fmt.Errorf("%w: got %T", ErrNotCacheable, v)
	}
	if declared := obj.OID(); declared != oid {
		return fmt.Errorf("%w: key %q, object oid %q", ErrOIDMismatch, oid, declared)
	}

	if existing, ok := c.db.Get(oid); ok {
		if !samePayload(existing.Payload(), obj) {
			return fmt.Errorf("%w: %q", ErrOIDTaken, oid)
		}
		if existing.IsClass() {
			return nil
		}
		c.reconcile(existing)
		c.reclaim(existing)
		return c.check("post-setitem")
	}

	if inst, ok := obj.(model.Persistent); ok {
		return c.registerInstance(oid, inst)
	}
	c.db.SetClass(oid, obj.(model.Class))
	c.reportSize()
	return nil
}

func (c *Cache) registerInstance(oid model.OID, obj model.Persistent) error {
	if owner := obj.Owner(); owner != nil && owner != model.Owner(c) {
		return fmt.Errorf("%w: %q", ErrForeignCache, oid)
	}
	if err := c.check("pre-setitem"); err != nil {
		return err
	}

	e := c.db.SetInstance(oid, obj)
	obj.SetOwner(c)
	c.reportSize()
	c.reclaim(e)

	return c.check("post-setitem")
}

// Get returns the object cached under oid. It never moves anything on the ring.
func (c *Cache) Get(oid model.OID) (model.Object, error) {
	if err := c.check("getitem"); err != nil {
		return nil, err
	}
	e, ok := c.db.Get(oid)
	if !ok {
		c.counters.misses.Add(1)
		c.metrics.Miss()
		return nil, fmt.Errorf("%w: %q", ErrNotFound, oid)
	}
	c.counters.hits.Add(1)
	c.metrics.Hit()
	return e.Payload(), nil
}

// GetOrDefault is Get that answers def on a miss.
func (c *Cache) GetOrDefault(oid model.OID, def model.Object) model.Object {
	v, err := c.Get(oid)
	if err != nil {
		return def
	}
	return v
}

func (c *Cache) Has(oid model.OID) bool {
	_, ok := c.db.Get(oid)
	return ok
}

// Remove drops the binding of oid, taking an active instance off the ring and
// clearing the shell's back reference.
func (c *Cache) Remove(oid model.OID) error {
	if err := c.check("pre-delitem"); err != nil {
		return err
	}
	e, ok := c.db.Get(oid)
	if !ok {
		return fmt.Errorf("%w: %q", ErrNotFound, oid)
	}

	c.db.Delete(e)
	if obj := e.Instance(); obj != nil {
		obj.SetOwner(nil)
	}
	c.counters.removed.Add(1)
	c.metrics.Removed(RemoveExplicit)
	c.reportSize()

	return c.check("post-delitem")
}

// Activated is called by a shell that loaded its state.
func (c *Cache) Activated(oid model.OID) error { return c.stateChanged(oid, "activated") }

// Ghosted is called by a shell that dropped its state.
func (c *Cache) Ghosted(oid model.OID) error { return c.stateChanged(oid, "ghosted") }

func (c *Cache) stateChanged(oid model.OID, context string) error {
	e, ok := c.db.Get(oid)
	if !ok {
		return fmt.Errorf("%w: %q", ErrNotFound, oid)
	}
	if e.IsClass() {
		return fmt.Errorf("%w: %q is a class", ErrNotCacheable, oid)
	}
	c.reconcile(e)
	c.reclaim(e)
	return c.check(context)
}

// Unreferenced forgets a ghost whose last outside holder went away. The cache never
// owned the ghost, so anything but a zero holder count means the caller is wrong
// about the object's lifetime and nothing is guessed.
func (c *Cache) Unreferenced(oid model.OID) error {
	e, ok := c.db.Get(oid)
	if !ok {
		return fmt.Errorf("%w: %q", ErrNotFound, oid)
	}
	obj := e.Instance()
	if obj == nil {
		return fmt.Errorf("%w: %q is a class", ErrNotGhost, oid)
	}
	if obj.State().Active() || e.Linked() {
		return fmt.Errorf("%w: %q is %s", ErrNotGhost, oid, obj.State())
	}
	if n := obj.Refs(); n != 0 {
		return fmt.Errorf("%w: %q has reference count of %d, should be zero", ErrStillReferenced, oid, n)
	}

	c.forget(e)

	if n := obj.Refs(); n != 0 {
		return fmt.Errorf("%w: %q has reference count of %d after removal", ErrStillReferenced, oid, n)
	}
	return nil
}

func (c *Cache) SizeBudget() int      { return c.sizeBudget }
func (c *Cache) DrainResistance() int { return c.drainResistance }

// CacheAge is always zero: this cache does not age objects.
func (c *Cache) CacheAge() int { return 0 }

// SetCacheAge is accepted and ignored.
func (c *Cache) SetCacheAge(int) {}

func (c *Cache) SetSizeBudget(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: size budget %d", ErrInvalidConfig, n)
	}
	c.sizeBudget = n
	return nil
}

func (c *Cache) SetDrainResistance(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: drain resistance %d", ErrInvalidConfig, n)
	}
	c.drainResistance = n
	return nil
}

func (c *Cache) Len() int                         { return c.db.Len() }
func (c *Cache) ActiveCount() int                 { return c.db.Active() }
func (c *Cache) ClassCount() int                  { return c.db.Classes() }
func (c *Cache) Keys() []model.OID                { return c.db.Keys() }
func (c *Cache) Data() map[model.OID]model.Object { return c.db.Snapshot() }
func (c *Cache) RingFingerprint() uint64          { return c.db.Ring().Fingerprint() }

func (c *Cache) CacheMetrics() (hits, misses, ghosted, removed, sweeps int64) {
	return c.counters.snapshot()
}

// LRUItems lists active instances from least to most recently activated.
// The ring is being rewired while a sweep runs, so the listing is refused then.
func (c *Cache) LRUItems() ([]model.Item, error) {
	if c.db.Sweeping() {
		return nil, fmt.Errorf("lru items: %w", ErrSweepInProgress)
	}
	if err := c.check("pre-lru-items"); err != nil {
		return nil, err
	}
	entries := c.db.RingEntries()
	items := make([]model.Item, 0, len(entries))
	for _, e := range entries {
		items = append(items, model.Item{OID: e.OID(), Object: e.Instance()})
	}
	return items, nil
}

// ClassItems lists registered classes ordered by oid.
func (c *Cache) ClassItems() []model.ClassItem {
	entries := c.db.ClassEntries()
	items := make([]model.ClassItem, 0, len(entries))
	for _, e := range entries {
		items = append(items, model.ClassItem{OID: e.OID(), Class: e.Class()})
	}
	return items
}

/**
 * Private API.
 */

// reconcile makes ring membership follow the shell's state.
func (c *Cache) reconcile(e *db.Entry) {
	active := e.Instance().State().Active()
	switch {
	case active && !e.Linked():
		c.db.Link(e)
	case !active && e.Linked():
		c.db.Unlink(e)
	}
}

// reclaim forgets e if it is a bound ghost with no outside holders. The map only
// keeps ghosts that somebody else still uses.
func (c *Cache) reclaim(e *db.Entry) {
	obj := e.Instance()
	if obj == nil || obj.State().Active() || e.Linked() || obj.Refs() != 0 {
		return
	}
	if cur, ok := c.db.Get(e.OID()); !ok || cur != e {
		return
	}
	c.forget(e)
}

func (c *Cache) forget(e *db.Entry) {
	c.db.Delete(e)
	e.Instance().SetOwner(nil)
	c.counters.removed.Add(1)
	c.metrics.Removed(RemoveUnreferenced)
	c.reportSize()
}

func (c *Cache) check(context string) error {
	if !c.checking {
		return nil
	}
	return c.db.Check(context)
}

func (c *Cache) reportSize() {
	c.metrics.Size(c.db.Len(), c.db.Active(), c.db.Classes())
}

func samePayload(a, b model.Object) bool {
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	return ta == tb && ta.Comparable() && a == b
}

var _ Cacher = (*Cache)(nil)
