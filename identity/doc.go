// Package identity implements the value-type identity stripping pass.
//
// Value-semantic classes (boxed primitives and the like) have no meaningful
// object identity: two boxes holding the same value are interchangeable. For
// virtual, not-yet-materialized instances of such classes, keeping identity
// tracking alive forces the escape analysis to materialize an allocation the
// program only ever reads through. The pass walks a compilation graph's
// virtual instances and clears the identity requirement for every instance
// whose class the registry recognizes as a value type.
//
// The pass consumes the object model only through the value-type predicate;
// it needs no slot numbers or storage indices.
package identity
