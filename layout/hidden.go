package layout

import (
	"github.com/wippyai/jvm-runtime/errors"
)

// Class symbols recognized as carrying VM-private hidden fields. The set is
// closed: it is fixed by what the runtime's own machinery needs to stash on
// core objects, not by user input.
const (
	MemberNameType  Symbol = "Ljava/lang/invoke/MemberName;"
	MethodType      Symbol = "Ljava/lang/reflect/Method;"
	ConstructorType Symbol = "Ljava/lang/reflect/Constructor;"
	FieldType       Symbol = "Ljava/lang/reflect/Field;"
	ThrowableType   Symbol = "Ljava/lang/Throwable;"
	ThreadType      Symbol = "Ljava/lang/Thread;"
	ClassType       Symbol = "Ljava/lang/Class;"
)

// requiredHiddenClasses is the closed set a well-formed table must cover.
var requiredHiddenClasses = []Symbol{
	MemberNameType,
	MethodType,
	ConstructorType,
	FieldType,
	ThrowableType,
	ThreadType,
	ClassType,
}

// HiddenTable maps class identities to their ordered hidden field name
// lists. It is process-wide, read-only configuration: built once at startup,
// verified eagerly, and never mutated afterwards.
type HiddenTable struct {
	entries map[Symbol][]string
}

// NewHiddenTable builds a table from explicit entries. Use Verify before
// handing the table to a registry.
func NewHiddenTable(entries map[Symbol][]string) *HiddenTable {
	m := make(map[Symbol][]string, len(entries))
	for class, names := range entries {
		m[class] = append([]string(nil), names...)
	}
	return &HiddenTable{entries: m}
}

// DefaultHiddenTable returns the built-in table covering the full
// recognized class set: executable-handle members, reflective member
// objects, throwable stack trace holders, threads, and class mirrors.
func DefaultHiddenTable() *HiddenTable {
	return NewHiddenTable(map[Symbol][]string{
		MemberNameType:  {"vmtarget", "vmindex"},
		MethodType:      {"runtimeVisibleTypeAnnotations", "methodKey"},
		ConstructorType: {"runtimeVisibleTypeAnnotations", "constructorKey"},
		FieldType:       {"runtimeVisibleTypeAnnotations", "fieldKey"},
		ThrowableType:   {"frames"},
		ThreadType:      {"hostThread", "isAlive"},
		ClassType:       {"signers", "mirrorKlass", "protectionDomain"},
	})
}

// fieldsFor returns the ordered hidden field names for class, or nil.
// A nil table injects nothing.
func (t *HiddenTable) fieldsFor(class Symbol) []string {
	if t == nil {
		return nil
	}
	return t.entries[class]
}

// FieldNames returns a copy of the ordered hidden field names for class.
func (t *HiddenTable) FieldNames(class Symbol) []string {
	return append([]string(nil), t.fieldsFor(class)...)
}

// Has reports whether class carries hidden fields.
func (t *HiddenTable) Has(class Symbol) bool {
	return t != nil && len(t.entries[class]) > 0
}

// Classes returns the class identities present in the table.
func (t *HiddenTable) Classes() []Symbol {
	if t == nil {
		return nil
	}
	out := make([]Symbol, 0, len(t.entries))
	for class := range t.entries {
		out = append(out, class)
	}
	return out
}

// Verify checks the table against the recognized class set. A missing or
// extra entry, an empty list, or a duplicate name within one list is a
// startup configuration defect; finding it lazily, one class at a time,
// would let a half-configured runtime hand out wrong layouts first.
func (t *HiddenTable) Verify() error {
	if t == nil {
		return errors.HiddenMismatch("", "hidden field table is nil")
	}
	for _, class := range requiredHiddenClasses {
		names, ok := t.entries[class]
		if !ok {
			return errors.HiddenMismatch(string(class), "no hidden field entry for recognized class")
		}
		if len(names) == 0 {
			return errors.HiddenMismatch(string(class), "empty hidden field list")
		}
		seen := make(map[string]bool, len(names))
		for _, n := range names {
			if n == "" {
				return errors.HiddenMismatch(string(class), "empty hidden field name")
			}
			if seen[n] {
				return errors.New(errors.PhaseConfig, errors.KindHiddenMismatch).
					Class(string(class)).
					Field(n).
					Detail("duplicate hidden field name").
					Build()
			}
			seen[n] = true
		}
	}
	if len(t.entries) != len(requiredHiddenClasses) {
		for class := range t.entries {
			if !isRequiredHiddenClass(class) {
				return errors.HiddenMismatch(string(class), "hidden field entry for unrecognized class")
			}
		}
	}
	return nil
}

func isRequiredHiddenClass(class Symbol) bool {
	for _, c := range requiredHiddenClasses {
		if c == class {
			return true
		}
	}
	return false
}
