package registry

// Handle is an opaque reference to a slot in a table.
// Handle 0 is reserved and always invalid.
type Handle uint32

// Event types for slot lifecycle notifications.
type EventType uint8

const (
	// EventCreated fires when a table takes ownership of a referent.
	EventCreated EventType = iota
	// EventDropped fires when a slot's referent is destroyed.
	EventDropped
	// EventReleased fires when ownership leaves the table without
	// destruction.
	EventReleased
)

// Event describes a slot lifecycle transition.
type Event struct {
	Handle Handle
	Type   EventType
}

// Observer receives notifications about slot lifecycle events.
type Observer interface {
	OnBoxEvent(Event)
}
