package registry

import (
	"sync"

	"github.com/wippyai/boxed/box"
	"github.com/wippyai/boxed/errors"
)

// Table is a handle table of exclusively-owned values. Every live slot
// holds a box that the table owns; handles are indices into the slot
// array, reused through a free list.
//
// Unlike box.Box, a Table is shared infrastructure and is safe for
// concurrent use.
type Table[T any] struct {
	slots     []*box.Box[T]
	freeList  []Handle
	observers []Observer
	mu        sync.RWMutex
	obsMu     sync.RWMutex
	closed    bool
}

// New creates an empty table.
func New[T any]() *Table[T] {
	return &Table[T]{
		slots:    make([]*box.Box[T], 0, 64),
		freeList: make([]Handle, 0, 16),
	}
}

// Insert moves ownership of b's referent into the table and returns
// the slot's handle. The caller's box is empty afterwards. Inserting
// an empty box or inserting into a closed table fails.
func (t *Table[T]) Insert(b *box.Box[T]) (Handle, error) {
	if !b.Present() {
		return 0, errors.EmptyBox("Insert")
	}

	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return 0, errors.Closed("Insert")
	}

	owned := b.Move()

	var handle Handle
	if len(t.freeList) > 0 {
		handle = t.freeList[len(t.freeList)-1]
		t.freeList = t.freeList[:len(t.freeList)-1]
		t.slots[handle-1] = owned
	} else {
		t.slots = append(t.slots, owned)
		handle = Handle(len(t.slots))
	}
	t.mu.Unlock()

	t.notify(Event{Handle: handle, Type: EventCreated})
	return handle, nil
}

// Adopt takes ownership of a caller-allocated value and returns its
// handle. A nil p fails; use a table slot only for actual referents.
func (t *Table[T]) Adopt(p *T) (Handle, error) {
	if p == nil {
		return 0, errors.NilReferent("Adopt")
	}
	return t.Insert(box.Adopt(p))
}

// Get returns the referent for a handle without transferring
// ownership. The table still owns the result.
func (t *Table[T]) Get(handle Handle) (*T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	b := t.slot(handle)
	if b == nil {
		return nil, false
	}
	return b.Get(), true
}

// Drop destroys the slot's referent, running its destructor hook, and
// frees the handle. Returns false if the handle names no live slot.
func (t *Table[T]) Drop(handle Handle) bool {
	t.mu.Lock()
	b := t.slot(handle)
	if b == nil {
		t.mu.Unlock()
		return false
	}

	b.Drop()
	t.free(handle)
	t.mu.Unlock()

	t.notify(Event{Handle: handle, Type: EventDropped})
	return true
}

// Release extracts the slot's referent without destroying it and frees
// the handle. Ownership transfers to the caller.
func (t *Table[T]) Release(handle Handle) (*T, bool) {
	t.mu.Lock()
	b := t.slot(handle)
	if b == nil {
		t.mu.Unlock()
		return nil, false
	}

	p := b.Release()
	t.free(handle)
	t.mu.Unlock()

	t.notify(Event{Handle: handle, Type: EventReleased})
	return p, true
}

// Len returns the number of live slots.
func (t *Table[T]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	count := 0
	for _, b := range t.slots {
		if b != nil {
			count++
		}
	}
	return count
}

// Each calls fn for every live slot until fn returns false.
func (t *Table[T]) Each(fn func(Handle, *T) bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	for i, b := range t.slots {
		if b != nil {
			if !fn(Handle(i+1), b.Get()) {
				break
			}
		}
	}
}

// Clear drops all live slots.
func (t *Table[T]) Clear() {
	// Collect handles first so notifications run without the lock.
	var handles []Handle
	t.Each(func(h Handle, _ *T) bool {
		handles = append(handles, h)
		return true
	})
	for _, h := range handles {
		t.Drop(h)
	}
}

// Close drops all live slots and stops accepting inserts. Closing a
// closed table is a no-op.
func (t *Table[T]) Close() error {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return nil
	}
	t.closed = true

	var dropped []Handle
	for i, b := range t.slots {
		if b != nil {
			b.Drop()
			dropped = append(dropped, Handle(i+1))
		}
	}
	t.slots = nil
	t.freeList = nil
	t.mu.Unlock()

	for _, h := range dropped {
		t.notify(Event{Handle: h, Type: EventDropped})
	}
	return nil
}

// Subscribe adds an observer for lifecycle events.
func (t *Table[T]) Subscribe(o Observer) {
	t.obsMu.Lock()
	defer t.obsMu.Unlock()
	t.observers = append(t.observers, o)
}

// Unsubscribe removes an observer.
func (t *Table[T]) Unsubscribe(o Observer) {
	t.obsMu.Lock()
	defer t.obsMu.Unlock()
	for i, obs := range t.observers {
		if obs == o {
			t.observers = append(t.observers[:i], t.observers[i+1:]...)
			return
		}
	}
}

// slot returns the box for a live handle, or nil. Callers hold t.mu.
func (t *Table[T]) slot(handle Handle) *box.Box[T] {
	if handle == 0 || int(handle) > len(t.slots) {
		return nil
	}
	return t.slots[handle-1]
}

// free empties a slot and recycles its handle. Callers hold t.mu.
func (t *Table[T]) free(handle Handle) {
	t.slots[handle-1] = nil
	t.freeList = append(t.freeList, handle)
}

func (t *Table[T]) notify(e Event) {
	t.obsMu.RLock()
	defer t.obsMu.RUnlock()
	for _, o := range t.observers {
		o.OnBoxEvent(e)
	}
}
