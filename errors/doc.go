// Package errors provides structured error types for the jvm-runtime library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). The Error type includes rich context: class type symbol, field
// name, and cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseReflect, errors.KindNotFound).
//		Class("LPoint;").
//		Field("z").
//		Detail("no such field").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.NotFound(errors.PhaseLink, "class", "LPoint;")
//	err := errors.Unprepared(errors.PhaseAlloc, "LPoint;")
//
// All errors implement the standard error interface and support errors.Is/As.
//
// Precondition violations are deliberately not represented here: a field kind
// outside the closed primitive set reaching the layout core indicates a broken
// upstream invariant, and the core panics rather than returning an error,
// because any offset computed past that point would corrupt object layouts.
package errors
