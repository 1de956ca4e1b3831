package layout

import (
	"fmt"

	"github.com/wippyai/jvm-runtime/kind"
)

// Build computes the field tables and storage accounting for one class.
//
// super is the superclass's already-built Result, or nil for the root class.
// declared is the class's linked field declarations in declaration order.
// hidden supplies the VM-private fields appended for recognized core classes;
// nil means no hidden fields for any class.
//
// Build never fails on well-formed input. A declaration whose kind is outside
// the closed set is a broken upstream invariant and panics: an offset
// computed past that point is already meaningless, and using it would
// silently corrupt object storage.
//
// The instance table is seeded from the superclass table and counters so
// that inherited slots and storage indices are preserved verbatim. Static
// tables and counters always start empty: static storage is per-class, never
// inherited.
func Build(super *Result, class Symbol, declared []FieldDecl, hidden *HiddenTable) *Result {
	var instance []*Field
	statics := make([]*Field, 0)

	var primitiveInstanceBytes, instanceRefs int
	if super != nil {
		instance = make([]*Field, len(super.instance), len(super.instance)+len(declared))
		copy(instance, super.instance)
		primitiveInstanceBytes = super.primitiveInstanceBytes
		instanceRefs = super.instanceRefs
	} else {
		instance = make([]*Field, 0, len(declared))
	}
	primitiveStaticBytes := 0
	staticRefs := 0

	declaredOut := make([]*Field, 0, len(declared))
	for _, d := range declared {
		if !d.Kind.IsPrimitive() && d.Kind != kind.Object {
			panic(fmt.Sprintf("layout: field %s.%s has kind outside the closed set: %s", class, d.Name, d.Kind))
		}

		f := &Field{
			Name:   d.Name,
			Holder: class,
			Kind:   d.Kind,
			Static: d.Static,
		}
		if d.Static {
			f.Slot = len(statics)
			if d.Kind.IsPrimitive() {
				f.StorageIndex = primitiveStaticBytes
				primitiveStaticBytes += d.Kind.ByteCount()
			} else {
				f.StorageIndex = staticRefs
				staticRefs++
			}
			statics = append(statics, f)
		} else {
			f.Slot = len(instance)
			if d.Kind.IsPrimitive() {
				f.StorageIndex = primitiveInstanceBytes
				primitiveInstanceBytes += d.Kind.ByteCount()
			} else {
				f.StorageIndex = instanceRefs
				instanceRefs++
			}
			instance = append(instance, f)
		}
		declaredOut = append(declaredOut, f)
	}

	// Hidden fields go after the class's own declared fields so that declared
	// slot numbers do not depend on which VM bookkeeping the class needs.
	// They are reference-kind and instance-scope only; the static table and
	// the primitive counters are never touched here.
	for _, name := range hidden.fieldsFor(class) {
		f := &Field{
			Name:         name,
			Holder:       class,
			Kind:         kind.Object,
			Slot:         len(instance),
			StorageIndex: instanceRefs,
			Hidden:       true,
		}
		instanceRefs++
		instance = append(instance, f)
	}

	return &Result{
		instance:               instance,
		statics:                statics,
		declared:               declaredOut,
		primitiveInstanceBytes: primitiveInstanceBytes,
		primitiveStaticBytes:   primitiveStaticBytes,
		instanceRefs:           instanceRefs,
		staticRefs:             staticRefs,
	}
}
