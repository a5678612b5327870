// Package errors provides structured error types for the boxed library.
//
// Errors are categorized by Phase (where in the ownership lifecycle the
// error occurred) and Kind (error category). The Error type includes
// the offending operation, the handles involved if any, and a cause
// chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseRegistry, errors.KindClosed).
//		Op("Insert").
//		Detail("table closed").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.Closed("Insert")
//	err := errors.EmptyBox("Insert")
//	err := errors.Leak(3, handles)
//
// All errors implement the standard error interface and support
// errors.Is/As. Two *Error values match under errors.Is when their
// Phase and Kind agree.
package errors
