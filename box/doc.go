// Package box provides Box, a move-only owning handle over a single
// heap-allocated value.
//
// A box holds zero or one exclusively-owned value. Ownership is never
// duplicated, only transferred: moving a box empties the source, and
// dropping a box runs the owned value's destructor hook exactly once.
// It can be thought of as a heap-allocated counterpart to an optional.
//
// # Lifecycle
//
// A box is created empty, by adopting an existing allocation, or by
// allocating in place:
//
//	e := box.Empty[File]()       // empty, owns nothing
//	a := box.Adopt(openFile())   // adopts a caller-allocated *File
//	m := box.Make(File{fd: 3})   // allocates and initializes a new File
//
// The owned value is reachable through Get (nil when empty) or Must
// (panics when empty):
//
//	if a.Present() {
//	    a.Must().Read(buf)
//	}
//
// Ownership moves between boxes with Move and Swap, moves out of the
// box entirely with Release, and ends with Drop:
//
//	b := a.Move()   // b owns the file now, a is empty
//	p := b.Release() // caller owns *p, b is empty, nothing dropped
//	b.Drop()        // no-op, b is already empty
//
// # Copying
//
// Boxes must not be copied by value; a copy would give the referent two
// owners and its destructor two chances to run. All constructors return
// *Box, and Box embeds a marker that makes go vet's copylocks check
// reject by-value copies.
//
// # Destructors
//
// Reset, Emplace and Drop release the current referent before anything
// else. If the referent implements boxed.Dropper its Drop method is
// called; otherwise the value is simply unreferenced. Release hands the
// referent out without running the hook.
//
// # Limitations
//
// Box does not do custom deleters, owned slices, or shared ownership,
// and it is not synchronized. If you need a drop-time callback other
// than the value's own hook, wrap the value. If you need the same value
// visible from several places, the registry package hands out opaque
// handles to a single owning table.
package box
