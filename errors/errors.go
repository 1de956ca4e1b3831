package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseLink    Phase = "link"    // class definition and registration
	PhasePrepare Phase = "prepare" // class preparation and layout
	PhaseLayout  Phase = "layout"  // field table construction
	PhaseAlloc   Phase = "alloc"   // storage allocation
	PhaseConfig  Phase = "config"  // runtime configuration loading
	PhaseReflect Phase = "reflect" // field resolution and enumeration
)

// Kind categorizes the error
type Kind string

const (
	KindNotFound       Kind = "not_found"
	KindDuplicate      Kind = "duplicate"
	KindMalformedDecl  Kind = "malformed_decl"
	KindHiddenMismatch Kind = "hidden_mismatch"
	KindUnprepared     Kind = "unprepared"
	KindAlreadyDefined Kind = "already_defined"
	KindInvalidInput   Kind = "invalid_input"
)

// Error is the structured error type used throughout the runtime
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Class  string
	Field  string
	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Class != "" {
		b.WriteString(" in ")
		b.WriteString(e.Class)
		if e.Field != "" {
			b.WriteByte('.')
			b.WriteString(e.Field)
		}
	} else if e.Field != "" {
		b.WriteString(" at ")
		b.WriteString(e.Field)
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
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

// Class sets the class type symbol
func (b *Builder) Class(t string) *Builder {
	b.err.Class = t
	return b
}

// Field sets the field name
func (b *Builder) Field(name string) *Builder {
	b.err.Field = name
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
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

// NotFound creates a not-found error
func NotFound(phase Phase, what, name string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotFound,
		Detail: fmt.Sprintf("%s %q not found", what, name),
	}
}

// Duplicate creates a duplicate definition error
func Duplicate(phase Phase, class, what, name string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindDuplicate,
		Class:  class,
		Detail: fmt.Sprintf("duplicate %s %q", what, name),
	}
}

// AlreadyDefined creates an error for redefining a class
func AlreadyDefined(class string) *Error {
	return &Error{
		Phase: PhaseLink,
		Kind:  KindAlreadyDefined,
		Class: class,
	}
}

// Unprepared creates an error for using a class before its layout exists
func Unprepared(phase Phase, class string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnprepared,
		Class:  class,
		Detail: "class has no published layout",
	}
}

// MalformedDecl creates an error for a malformed field declaration
func MalformedDecl(class, field, detail string) *Error {
	return &Error{
		Phase:  PhaseLayout,
		Kind:   KindMalformedDecl,
		Class:  class,
		Field:  field,
		Detail: detail,
	}
}

// HiddenMismatch creates a hidden-field configuration gap error.
// These are startup configuration defects, checked eagerly.
func HiddenMismatch(class, detail string) *Error {
	return &Error{
		Phase:  PhaseConfig,
		Kind:   KindHiddenMismatch,
		Class:  class,
		Detail: detail,
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// Load creates a configuration loading error
func Load(detail string, cause error) *Error {
	return &Error{
		Phase:  PhaseConfig,
		Kind:   KindInvalidInput,
		Detail: detail,
		Cause:  cause,
	}
}
