package state

import "sync/atomic"

// entry is one Subscribe registration. live flips to false on removal so a
// notification pass that already captured the entry skips it.
type entry struct {
	id   uint64
	fn   Listener
	live atomic.Bool
}

// registry keeps registrations in subscription order. It is guarded by the
// owning Store's mutex.
type registry struct {
	nextID  uint64
	entries []*entry
}

func (r *registry) add(fn Listener) uint64 {
	r.nextID++
	e := &entry{id: r.nextID, fn: fn}
	e.live.Store(true)
	r.entries = append(r.entries, e)
	return e.id
}

// remove drops the registration with the given id. Unknown ids are ignored.
func (r *registry) remove(id uint64) {
	for i, e := range r.entries {
		if e.id != id {
			continue
		}
		e.live.Store(false)
		// Copy instead of shifting in place: a pass may still hold the old slice.
		next := make([]*entry, 0, len(r.entries)-1)
		next = append(next, r.entries[:i]...)
		r.entries = append(next, r.entries[i+1:]...)
		return
	}
}

// snapshot returns the registrations as of now. Later add/remove calls do not
// change the returned slice.
func (r *registry) snapshot() []*entry {
	return r.entries[:len(r.entries):len(r.entries)]
}

func (r *registry) len() int {
	return len(r.entries)
}
