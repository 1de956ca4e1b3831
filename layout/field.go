package layout

import (
	"github.com/wippyai/jvm-runtime/kind"
)

// Symbol is a class identity: the type symbol naming a class within the
// runtime's class registry, e.g. "Ljava/lang/Object;".
type Symbol string

// FieldDecl is a linked, validated field declaration as produced by class
// linking, before any layout coordinates are assigned. Immutable.
type FieldDecl struct {
	Name   string
	Kind   kind.Kind
	Static bool
}

// Field is a declared or hidden field with its assigned layout coordinates.
//
// Slot is the field's index within its table (instance or static), assigned
// by append order and never renumbered. StorageIndex is a byte offset into
// the packed primitive region for primitive kinds, or an index into the
// reference array for the reference kind. Instance and static partitions
// count independently.
//
// Superclass results share Field values with every subclass result built on
// top of them; a Field is never mutated after its table is published.
type Field struct {
	Name         string
	Holder       Symbol
	Kind         kind.Kind
	Slot         int
	StorageIndex int
	Static       bool
	Hidden       bool
}

// Result is the immutable outcome of building a class's field tables.
//
// The instance table lists superclass fields first, then this class's own
// declared instance fields, then any hidden fields. The static table lists
// only this class's own static fields. Returned slices are read-only shared
// state; callers must not modify them.
type Result struct {
	instance []*Field
	statics  []*Field
	declared []*Field

	primitiveInstanceBytes int
	primitiveStaticBytes   int
	instanceRefs           int
	staticRefs             int
}

// InstanceFields returns the full instance field table, inherited fields
// first, in slot order.
func (r *Result) InstanceFields() []*Field {
	return r.instance
}

// StaticFields returns this class's static field table in slot order.
func (r *Result) StaticFields() []*Field {
	return r.statics
}

// DeclaredFields returns exactly the fields declared by this class, in
// declaration order, excluding inherited and hidden fields. This is the
// reflection-facing view.
func (r *Result) DeclaredFields() []*Field {
	return r.declared
}

// PrimitiveInstanceBytes is the size of the packed primitive byte region
// needed for one instance, inherited fields included.
func (r *Result) PrimitiveInstanceBytes() int {
	return r.primitiveInstanceBytes
}

// PrimitiveStaticBytes is the size of this class's static primitive region.
func (r *Result) PrimitiveStaticBytes() int {
	return r.primitiveStaticBytes
}

// InstanceRefCount is the number of reference slots needed for one instance,
// inherited and hidden fields included.
func (r *Result) InstanceRefCount() int {
	return r.instanceRefs
}

// StaticRefCount is the number of reference slots in this class's static
// storage.
func (r *Result) StaticRefCount() int {
	return r.staticRefs
}
