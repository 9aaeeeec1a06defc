// Package arena provides a generational slab allocator for graph nodes.
//
// Nodes are addressed by Handle values rather than pointers. Releasing a
// slot bumps its generation, so handles held past a release resolve to nil
// instead of dangling. This is what lets the behavior engine keep an
// intrusive parent/child/buried/covering graph without use-after-free risk.
package arena

// Handle references a slot in an Arena. The zero Handle is invalid and
// resolves to nil.
type Handle struct {
	index uint32
	gen   uint32
}

// IsZero reports whether h is the invalid zero handle.
func (h Handle) IsZero() bool {
	return h.gen == 0
}

type slot[T any] struct {
	value T
	gen   uint32
	live  bool
}

// Arena is a growable pool of T addressed by generational handles.
// The zero value is ready to use. An Arena is not safe for concurrent use.
type Arena[T any] struct {
	slots []slot[T]
	free  []uint32
	count int
}

// Alloc reserves a slot and returns its handle along with a pointer to the
// zeroed value. The pointer is only valid until the next Alloc call.
func (a *Arena[T]) Alloc() (Handle, *T) {
	var idx uint32
	if n := len(a.free); n > 0 {
		idx = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		a.slots = append(a.slots, slot[T]{})
		idx = uint32(len(a.slots) - 1)
	}
	s := &a.slots[idx]
	var zero T
	s.value = zero
	s.gen++
	s.live = true
	a.count++
	return Handle{index: idx, gen: s.gen}, &s.value
}

// Get resolves a handle to its value, or nil if the handle is zero, stale,
// or was never allocated. The pointer is only valid until the next Alloc.
func (a *Arena[T]) Get(h Handle) *T {
	if h.IsZero() || int(h.index) >= len(a.slots) {
		return nil
	}
	s := &a.slots[h.index]
	if !s.live || s.gen != h.gen {
		return nil
	}
	return &s.value
}

// Release returns a slot to the free list. Releasing a zero or stale handle
// is a no-op. Any outstanding handles to the slot become stale.
func (a *Arena[T]) Release(h Handle) {
	if a.Get(h) == nil {
		return
	}
	s := &a.slots[h.index]
	var zero T
	s.value = zero
	s.live = false
	a.free = append(a.free, h.index)
	a.count--
}

// Len returns the number of live slots.
func (a *Arena[T]) Len() int {
	return a.count
}
