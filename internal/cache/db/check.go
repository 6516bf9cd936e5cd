package db

import (
	"errors"
	"fmt"
)

var ErrRingCorrupted = errors.New("broken ring")

// RingError describes the first structural check a ring failed.
type RingError struct {
	Code    int
	Check   string
	Context string
	Size    int
}

func (e *RingError) Error() string {
	return fmt.Sprintf("broken ring (code %d: %s) in %s, size %d", e.Code, e.Check, e.Context, e.Size)
}

func (e *RingError) Unwrap() error { return ErrRingCorrupted }

// Check walks the whole ring and verifies link symmetry, node count against the
// active counter, and that every node outside a sweep belongs to an active instance
// of this map. While a sweep runs the ring may hold extra nodes (placeholders, and
// objects linked by reentrant registrations) but never fewer.
func (m *Map) Check(context string) error {
	r := m.ring
	expected := 1 + m.active
	total := 0
	here := Home
	for {
		if total++; total > expected+10 {
			return m.ringError(3, "ring too big", context)
		}
		n := r.nodes[here]
		if !r.valid(n.next) {
			return m.ringError(4, "next link dangles", context)
		}
		if !r.valid(n.prev) {
			return m.ringError(5, "prev link dangles", context)
		}
		if r.nodes[n.prev].next != here {
			return m.ringError(9, "prev.next does not point back", context)
		}
		if r.nodes[n.next].prev != here {
			return m.ringError(10, "next.prev does not point back", context)
		}
		if !m.sweeping && here != Home {
			e := n.entry
			if e == nil || e.obj == nil || e.node != here || m.items[e.oid] != e {
				return m.ringError(12, "node does not belong to a cached instance", context)
			}
			if !e.obj.State().Active() {
				return m.ringError(13, "ghost on the ring", context)
			}
		}
		if here = n.next; here == Home {
			break
		}
	}

	if m.sweeping {
		if total < expected {
			return m.ringError(6, "ring too small", context)
		}
	} else if total != expected {
		return m.ringError(14, "ring size does not match active count", context)
	}
	return nil
}

func (m *Map) ringError(code int, check, context string) error {
	return &RingError{Code: code, Check: check, Context: context, Size: len(m.items)}
}
