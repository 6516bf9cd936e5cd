package db

import (
	"github.com/zeebo/xxh3"
)

// Handle addresses a node in a Ring's arena. Handles stay valid while the node is linked,
// so a walk can hold one across calls that insert or remove other nodes.
type Handle uint32

// Home is the sentinel node. It never carries an entry and links to itself when the ring is empty.
const Home Handle = 0

type node struct {
	prev  Handle
	next  Handle
	entry *Entry // nil for home and placeholders
	used  bool
}

// Ring is a doubly-linked circular list of active instance entries, oldest activation
// first (home.next) and newest last (home.prev). Nodes live in an arena and are linked
// by handle rather than pointer.
type Ring struct {
	nodes  []node
	free   []Handle
	linked int // nodes on the ring besides home, placeholders included
}

func NewRing() *Ring {
	r := &Ring{nodes: make([]node, 1, 64)}
	r.nodes[Home] = node{prev: Home, next: Home, used: true}
	return r
}

// PushBack links e at the most-recently-used end.
func (r *Ring) PushBack(e *Entry) Handle {
	return r.InsertAfter(r.nodes[Home].prev, e)
}

// InsertAfter links a node for e right after at. A nil e makes a placeholder.
func (r *Ring) InsertAfter(at Handle, e *Entry) Handle {
	h := r.alloc(e)
	next := r.nodes[at].next
	r.nodes[h].prev = at
	r.nodes[h].next = next
	r.nodes[next].prev = h
	r.nodes[at].next = h
	r.linked++
	return h
}

// Remove unlinks h and returns its slot to the arena.
func (r *Ring) Remove(h Handle) {
	if !r.valid(h) || h == Home {
		return
	}
	n := r.nodes[h]
	r.nodes[n.prev].next = n.next
	r.nodes[n.next].prev = n.prev
	r.nodes[h] = node{}
	r.free = append(r.free, h)
	r.linked--
}

func (r *Ring) Next(h Handle) Handle  { return r.nodes[h].next }
func (r *Ring) Prev(h Handle) Handle  { return r.nodes[h].prev }
func (r *Ring) Entry(h Handle) *Entry { return r.nodes[h].entry }
func (r *Ring) Front() Handle         { return r.nodes[Home].next }
func (r *Ring) Back() Handle          { return r.nodes[Home].prev }
func (r *Ring) Len() int              { return r.linked }

func (r *Ring) IsPlaceholder(h Handle) bool {
	return h != Home && r.valid(h) && r.nodes[h].entry == nil
}

// Contains reports whether h is reachable from home by following next links.
func (r *Ring) Contains(h Handle) bool {
	if h == Home {
		return true
	}
	limit := len(r.nodes)
	for here := r.Front(); here != Home && limit > 0; here, limit = r.Next(here), limit-1 {
		if !r.valid(here) {
			return false
		}
		if here == h {
			return true
		}
	}
	return false
}

// Fingerprint hashes the oids on the ring in walk order.
// Equal fingerprints mean equal membership and order.
func (r *Ring) Fingerprint() uint64 {
	h := xxh3.New()
	var sep = []byte{0}
	limit := len(r.nodes)
	for here := r.Front(); here != Home && limit > 0; here, limit = r.Next(here), limit-1 {
		if e := r.nodes[here].entry; e != nil {
			_, _ = h.WriteString(string(e.oid))
			_, _ = h.Write(sep)
		}
	}
	return h.Sum64()
}

func (r *Ring) alloc(e *Entry) Handle {
	if n := len(r.free); n > 0 {
		h := r.free[n-1]
		r.free = r.free[:n-1]
		r.nodes[h] = node{entry: e, used: true}
		return h
	}
	r.nodes = append(r.nodes, node{entry: e, used: true})
	return Handle(len(r.nodes) - 1)
}

func (r *Ring) valid(h Handle) bool {
	return int(h) < len(r.nodes) && r.nodes[h].used
}
