package box

import (
	"fmt"

	"github.com/wippyai/boxed"
)

// Box is a move-only owning handle over a single heap-allocated T.
// The zero value is a valid empty box. Use through *Box; copying a Box
// by value is rejected by go vet.
//
// Box is not synchronized. See the package documentation for the
// ownership and concurrency model.
type Box[T any] struct {
	noCopy noCopy
	ptr    *T
}

// Empty returns a box that owns nothing. No allocation is performed.
func Empty[T any]() *Box[T] {
	return &Box[T]{}
}

// Adopt takes ownership of a caller-allocated value. A nil p yields an
// empty box.
//
// The caller must not retain another owning reference to *p afterwards;
// the box is now solely responsible for its lifetime.
func Adopt[T any](p *T) *Box[T] {
	return &Box[T]{ptr: p}
}

// Make allocates a new T, initializes it from v and returns a box
// owning it.
func Make[T any](v T) *Box[T] {
	return Adopt(&v)
}

// Present reports whether the box owns a referent.
func (b *Box[T]) Present() bool {
	return b.ptr != nil
}

// Get returns the referent without transferring ownership, or nil when
// the box is empty. The box still owns the result; callers must not
// drop it or outlive the box with it.
func (b *Box[T]) Get() *T {
	return b.ptr
}

// Must returns the referent. It panics if the box is empty; emptiness
// there is a bug in the caller, not a recoverable condition. Use
// Present or Get when emptiness is expected.
func (b *Box[T]) Must() *T {
	if b.ptr == nil {
		panic("box: the referent is nil")
	}
	return b.ptr
}

// GetOr returns the referent's value, or def when the box is empty.
func (b *Box[T]) GetOr(def T) T {
	if b.ptr == nil {
		return def
	}
	return *b.ptr
}

// Reset drops the current referent, if any, and adopts p in its place.
// A nil p leaves the box empty. The same adoption contract as Adopt
// applies to p.
func (b *Box[T]) Reset(p *T) {
	if b.ptr != nil {
		boxed.DropValue(b.ptr)
	}
	b.ptr = p
}

// Emplace drops the current referent, if any, then allocates a new T
// initialized from v. It returns the new referent, which the box owns.
func (b *Box[T]) Emplace(v T) *T {
	if b.ptr != nil {
		boxed.DropValue(b.ptr)
	}
	b.ptr = &v
	return b.ptr
}

// Release returns the referent and empties the box WITHOUT running the
// destructor hook. Ownership transfers to the caller, who is solely
// responsible for the value's lifetime from here on. On an empty box
// it returns nil and the box stays empty.
func (b *Box[T]) Release() *T {
	out := b.ptr
	b.ptr = nil
	return out
}

// Drop releases the current referent, running its destructor hook if it
// has one, and empties the box. Dropping an empty box is a no-op, so
// Drop is safe to defer unconditionally and safe to call twice.
func (b *Box[T]) Drop() {
	if b.ptr == nil {
		return
	}
	boxed.DropValue(b.ptr)
	b.ptr = nil
}

// Move transfers ownership to a freshly created box and empties the
// receiver. No new T is allocated.
func (b *Box[T]) Move() *Box[T] {
	out := &Box[T]{ptr: b.ptr}
	b.ptr = nil
	return out
}

// Swap exchanges referents with o. Used as move assignment: after
// b.Swap(o), b owns what o owned and vice versa, and nothing has been
// dropped — the displaced referent is released whenever its new owner
// is.
func (b *Box[T]) Swap(o *Box[T]) {
	b.ptr, o.ptr = o.ptr, b.ptr
}

// String renders the box the way %p renders Get(): the referent's
// address identity, never its contents. An empty box prints the same
// as a nil *T.
func (b *Box[T]) String() string {
	return fmt.Sprintf("%p", b.ptr)
}
