// Package db holds the data structures of a ghost cache: the oid → Entry identity map
// and the ring of active instances. Nothing here calls into cached objects; callbacks
// and contracts live one level up.
package db

import (
	"slices"

	"github.com/Borislavv/go-ghost-cache/model"
)

// Map is the identity map plus the ring it keeps in sync.
// Counters are plain ints: a Map belongs to one logical thread of control.
type Map struct {
	items    map[model.OID]*Entry
	ring     *Ring
	active   int  // instance entries linked on the ring
	classes  int  // class entries
	sweeping bool // a sweep is walking the ring
}

func NewMap() *Map {
	return &Map{items: make(map[model.OID]*Entry), ring: NewRing()}
}

func (m *Map) Get(oid model.OID) (*Entry, bool) {
	e, ok := m.items[oid]
	return e, ok
}

func (m *Map) Len() int            { return len(m.items) }
func (m *Map) Active() int         { return m.active }
func (m *Map) Classes() int        { return m.classes }
func (m *Map) Ring() *Ring         { return m.ring }
func (m *Map) Sweeping() bool      { return m.sweeping }
func (m *Map) SetSweeping(on bool) { m.sweeping = on }

// SetClass binds oid to a class placeholder.
func (m *Map) SetClass(oid model.OID, class model.Class) *Entry {
	e := &Entry{oid: oid, class: class}
	m.items[oid] = e
	m.classes++
	return e
}

// SetInstance binds oid to an instance shell, linking it at the MRU end when it is active.
func (m *Map) SetInstance(oid model.OID, obj model.Persistent) *Entry {
	e := &Entry{oid: oid, obj: obj}
	m.items[oid] = e
	if obj.State().Active() {
		m.Link(e)
	}
	return e
}

// Link puts an instance entry at the MRU end of the ring. Linked entries are left alone.
func (m *Map) Link(e *Entry) {
	if e.Linked() || e.obj == nil {
		return
	}
	e.node = m.ring.PushBack(e)
	m.active++
}

// Unlink takes an instance entry off the ring.
func (m *Map) Unlink(e *Entry) {
	if !e.Linked() {
		return
	}
	m.ring.Remove(e.node)
	e.node = Home
	m.active--
}

// Delete unlinks e and drops its binding.
func (m *Map) Delete(e *Entry) {
	if e.IsClass() {
		m.classes--
	} else {
		m.Unlink(e)
	}
	delete(m.items, e.oid)
}

// Keys returns the cached oids in ascending order.
func (m *Map) Keys() []model.OID {
	keys := make([]model.OID, 0, len(m.items))
	for oid := range m.items {
		keys = append(keys, oid)
	}
	slices.Sort(keys)
	return keys
}

// Snapshot copies the bindings. The ring is never handed out.
func (m *Map) Snapshot() map[model.OID]model.Object {
	out := make(map[model.OID]model.Object, len(m.items))
	for oid, e := range m.items {
		out[oid] = e.Payload()
	}
	return out
}

// ClassEntries returns class entries ordered by oid.
func (m *Map) ClassEntries() []*Entry {
	out := make([]*Entry, 0, m.classes)
	for _, e := range m.items {
		if e.IsClass() {
			out = append(out, e)
		}
	}
	slices.SortFunc(out, func(a, b *Entry) int {
		switch {
		case a.oid < b.oid:
			return -1
		case a.oid > b.oid:
			return 1
		}
		return 0
	})
	return out
}

// RingEntries returns the linked entries from least to most recently activated.
func (m *Map) RingEntries() []*Entry {
	out := make([]*Entry, 0, m.active)
	for h := m.ring.Front(); h != Home; h = m.ring.Next(h) {
		if e := m.ring.Entry(h); e != nil {
			out = append(out, e)
		}
	}
	return out
}
