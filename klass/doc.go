// Package klass maintains the class registry of the guest runtime.
//
// Each class is an entry in an identity-keyed arena holding its type symbol,
// a forward reference to its superclass, its linked field declarations, and,
// after preparation, an immutable layout Result. Preparation runs once per
// class during linking, after the superclass is prepared and before any
// instance is allocated; it is the single writer of the published layout.
//
// The registry also answers the two downstream queries the rest of the
// runtime needs: named field resolution to slot/storage-index pairs (for
// field access code) and the value-type predicate consumed by the identity
// stripping pass.
package klass
