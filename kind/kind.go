// Package kind defines the closed set of field value kinds used by the
// layout core: eight primitive kinds plus the reference kind.
//
// The set is fixed by the class file format. Code switching over a Kind is
// expected to be exhaustive; a value outside the set reaching a width or
// index lookup is an upstream linking defect and panics.
package kind

import "fmt"

// Kind is a field value kind.
type Kind byte

const (
	// Illegal is the zero value. It never reaches the layout core from
	// well-formed linked fields.
	Illegal Kind = iota

	Boolean
	Byte
	Short
	Char
	Int
	Float
	Long
	Double

	// Object is the reference kind. It has no byte width; a reference field
	// occupies one slot of the reference storage region.
	Object
)

// byteCounts is indexed by Kind.
var byteCounts = [...]int{
	Boolean: 1,
	Byte:    1,
	Short:   2,
	Char:    2,
	Int:     4,
	Float:   4,
	Long:    8,
	Double:  8,
}

// NumPrimitives is the size of the closed primitive kind set.
const NumPrimitives = 8

// IsPrimitive reports whether k is one of the eight primitive kinds.
func (k Kind) IsPrimitive() bool {
	return k >= Boolean && k <= Double
}

// ByteCount returns the fixed byte width of a primitive kind.
// It panics for Object and for kinds outside the closed set: a reference
// field has no byte width, and an unknown kind means an upstream invariant
// is already broken, so any offset computed from it would corrupt layouts.
func (k Kind) ByteCount() int {
	if !k.IsPrimitive() {
		panic(fmt.Sprintf("kind: no byte width for %s", k))
	}
	return byteCounts[k]
}

// PaddingIndex returns the historical per-kind index used to bucket
// primitive counts for the superclass hole-filling optimization
// (long=0, double=1, int=2, float=3, short=4, char=5, byte=6, boolean=7).
// The mapping is reserved: it is declared by the format but not yet
// consumed by the builder. Panics for non-primitive kinds.
func (k Kind) PaddingIndex() int {
	switch k {
	case Long:
		return 0
	case Double:
		return 1
	case Int:
		return 2
	case Float:
		return 3
	case Short:
		return 4
	case Char:
		return 5
	case Byte:
		return 6
	case Boolean:
		return 7
	default:
		panic(fmt.Sprintf("kind: no padding index for %s", k))
	}
}

// FromDescriptor maps the first character of a JVM field descriptor to its
// kind. 'L' and '[' both map to Object. Returns Illegal for anything else.
func FromDescriptor(c byte) Kind {
	switch c {
	case 'Z':
		return Boolean
	case 'B':
		return Byte
	case 'S':
		return Short
	case 'C':
		return Char
	case 'I':
		return Int
	case 'F':
		return Float
	case 'J':
		return Long
	case 'D':
		return Double
	case 'L', '[':
		return Object
	default:
		return Illegal
	}
}

func (k Kind) String() string {
	switch k {
	case Boolean:
		return "boolean"
	case Byte:
		return "byte"
	case Short:
		return "short"
	case Char:
		return "char"
	case Int:
		return "int"
	case Float:
		return "float"
	case Long:
		return "long"
	case Double:
		return "double"
	case Object:
		return "object"
	default:
		return fmt.Sprintf("kind(%d)", byte(k))
	}
}
