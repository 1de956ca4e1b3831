// Package layout computes per-class field storage layouts.
//
// Build is a pure function of (superclass layout, class identity, linked
// field declarations) to an immutable Result: the ordered instance field
// table, the class-private static field table, the declared-fields
// subsequence served to reflection, and the four aggregate counts the
// allocator uses to size storage (instance/static × primitive-bytes/
// reference-slots).
//
// Two storage regions back every object: a packed byte region for primitive
// values and a reference array for object pointers. Keeping them separate
// means the allocator reserves one fixed-width buffer and one slice per
// object, a collector only ever scans the reference region, and no pointer
// is ever hiding in the middle of raw bytes.
//
// Inheritance is strict append-only extension: a subclass's instance table
// starts as its superclass's table, so fields at slots [0, N) of a subclass
// instance are laid out identically to the superclass's and code compiled
// against the shorter table keeps working. Static layouts are never
// inherited.
//
// A fixed, closed set of core classes gets extra VM-private hidden fields
// (see HiddenTable). Hidden fields are appended after the class's declared
// fields, are always reference-kind and instance-scope, and never appear in
// the declared-fields subsequence.
package layout
