package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in the ownership lifecycle the error occurred
type Phase string

const (
	PhaseAlloc    Phase = "alloc"    // allocation / in-place construction
	PhaseAdopt    Phase = "adopt"    // taking ownership of an existing value
	PhaseTransfer Phase = "transfer" // move / release
	PhaseDrop     Phase = "drop"     // destructor execution
	PhaseRegistry Phase = "registry" // handle table operations
	PhaseTrack    Phase = "track"    // lifecycle accounting
)

// Kind categorizes the error
type Kind string

const (
	KindNilReferent   Kind = "nil_referent"
	KindEmptyBox      Kind = "empty_box"
	KindInvalidHandle Kind = "invalid_handle"
	KindClosed        Kind = "closed"
	KindLeak          Kind = "leak"
)

// Error is the structured error type used throughout the library
type Error struct {
	Cause   error
	Phase   Phase
	Kind    Kind
	Op      string
	Detail  string
	Handles []uint32
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Op != "" {
		b.WriteString(" in ")
		b.WriteString(e.Op)
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if len(e.Handles) > 0 {
		b.WriteString(" (handles: ")
		for i, h := range e.Handles {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%d", h)
		}
		b.WriteByte(')')
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Op sets the operation that failed
func (b *Builder) Op(op string) *Builder {
	b.err.Op = op
	return b
}

// Handles sets the handles involved
func (b *Builder) Handles(handles ...uint32) *Builder {
	b.err.Handles = handles
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// Closed creates an error for an operation on a closed table
func Closed(op string) *Error {
	return &Error{
		Phase:  PhaseRegistry,
		Kind:   KindClosed,
		Op:     op,
		Detail: "table closed",
	}
}

// EmptyBox creates an error for inserting a box that owns nothing
func EmptyBox(op string) *Error {
	return &Error{
		Phase:  PhaseRegistry,
		Kind:   KindEmptyBox,
		Op:     op,
		Detail: "box owns no referent",
	}
}

// InvalidHandle creates an error for a handle that names no live slot
func InvalidHandle(op string, handle uint32) *Error {
	return &Error{
		Phase:   PhaseRegistry,
		Kind:    KindInvalidHandle,
		Op:      op,
		Detail:  fmt.Sprintf("handle %d is not live", handle),
		Handles: []uint32{handle},
	}
}

// NilReferent creates an error for adopting a nil value where a
// referent is required
func NilReferent(op string) *Error {
	return &Error{
		Phase:  PhaseAdopt,
		Kind:   KindNilReferent,
		Op:     op,
		Detail: "nil referent",
	}
}

// Leak creates an error reporting referents still live at shutdown
func Leak(live int, handles []uint32) *Error {
	return &Error{
		Phase:   PhaseTrack,
		Kind:    KindLeak,
		Detail:  fmt.Sprintf("%d referent(s) still live", live),
		Handles: handles,
	}
}
