// Package registry provides a handle table for owned boxes.
//
// A Table maps opaque integer handles to exclusively-owned values, for
// code that must hand out non-pointer identities: callback tokens,
// cross-API references, anything where exposing the owning box itself
// would invite a second owner.
//
// # Handle Table
//
// The Table owns every value inside it:
//
//	table := registry.New[Conn]()
//
//	// Move ownership from a box into the table
//	h, err := table.Insert(box.Adopt(conn))
//
//	// Inspect without taking ownership
//	c, ok := table.Get(h)
//
//	// Destroy the slot (runs the destructor hook)
//	table.Drop(h)
//
//	// Or extract ownership back out (no destructor)
//	c, ok := table.Release(h)
//
// Insert moves: the caller's box is empty afterwards, so the single
// owner is always the table. Handle 0 is reserved and always invalid.
//
// # Observers
//
// Register observers to follow slot lifecycles:
//
//	table.Subscribe(observerFunc)
//
// Events fire on Insert (Created), Drop (Dropped) and Release
// (Released). The track package ships an observer that keeps live
// counts and reports leaks.
//
// # Shutdown
//
// Close drops every live slot, running destructor hooks, and rejects
// further inserts. Failure to Drop, Release or Close leaks whatever
// cleanup the owned values carry.
package registry
