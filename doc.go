// Package boxed provides single-ownership handles over heap-allocated
// values, with exactly-once release of the owned value.
//
// The core primitive is box.Box, a move-only owning handle: at most one
// box refers to any given value, ownership is transferred rather than
// duplicated, and the owned value's destructor hook runs exactly once
// when the box drops it.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct
// responsibilities:
//
//	boxed/           Root package with the Dropper destructor contract
//	├── box/         The owning handle Box[T] and its constructors
//	├── registry/    Handle table mapping opaque integer handles to owned boxes
//	├── track/       Lifecycle tracking, logging and leak reporting
//	└── errors/      Structured error types for debugging
//
// # Quick Start
//
// Allocate, use and drop an owned value:
//
//	b := box.Make(Config{Port: 8080})
//	defer b.Drop()
//
//	if b.Present() {
//	    fmt.Println(b.Must().Port)
//	}
//
// Transfer ownership out of a box:
//
//	p := b.Release() // b is now empty; caller owns *p
//
// # Ownership Model
//
// Boxes are single-owner and unsynchronized. A box may be handed to
// another goroutine, but the handoff itself requires external
// synchronization, and two goroutines must never operate on the same
// box concurrently. Sharing the owned value between concurrent users
// is the responsibility of code layered on top of this primitive.
//
// # Destructors
//
// Values whose type implements Dropper get Drop() called exactly once
// when their owning box lets go of them via Drop, Reset or Emplace, or
// when a registry table drops the slot. Values without the hook are
// simply unreferenced and left to the garbage collector.
package boxed
