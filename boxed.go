package boxed

// Dropper is optionally implemented by owned values that need cleanup.
// Drop is called exactly once, when the owning handle lets go of the
// value without transferring ownership elsewhere.
type Dropper interface {
	Drop()
}

// DropValue runs the value's destructor hook if it has one.
// Nil values and values without the hook are ignored.
func DropValue(v any) {
	if d, ok := v.(Dropper); ok {
		d.Drop()
	}
}
