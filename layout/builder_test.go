package layout

import (
	"reflect"
	"testing"

	"github.com/wippyai/jvm-runtime/kind"
)

const (
	objectSym Symbol = "Ljava/lang/Object;"
	aSym      Symbol = "LA;"
	bSym      Symbol = "LB;"
)

func TestBuildRootClass(t *testing.T) {
	res := Build(nil, objectSym, nil, nil)

	if len(res.InstanceFields()) != 0 {
		t.Fatalf("instance table length = %d, want 0", len(res.InstanceFields()))
	}
	if len(res.StaticFields()) != 0 {
		t.Fatalf("static table length = %d, want 0", len(res.StaticFields()))
	}
	if len(res.DeclaredFields()) != 0 {
		t.Fatalf("declared length = %d, want 0", len(res.DeclaredFields()))
	}
	if res.PrimitiveInstanceBytes() != 0 || res.PrimitiveStaticBytes() != 0 ||
		res.InstanceRefCount() != 0 || res.StaticRefCount() != 0 {
		t.Fatal("root class counters must all be zero")
	}
}

// Scenario from the storage contract: A declares one int and one reference
// instance field; B extends A with one long static field. B's instance
// layout equals A's unchanged, and B's static accounting starts from zero.
func TestBuildInheritanceScenario(t *testing.T) {
	object := Build(nil, objectSym, nil, nil)

	a := Build(object, aSym, []FieldDecl{
		{Name: "count", Kind: kind.Int},
		{Name: "next", Kind: kind.Object},
	}, nil)

	fields := a.InstanceFields()
	if len(fields) != 2 {
		t.Fatalf("A instance table length = %d, want 2", len(fields))
	}
	if fields[0].Slot != 0 || fields[0].StorageIndex != 0 {
		t.Errorf("count: slot=%d index=%d, want 0/0", fields[0].Slot, fields[0].StorageIndex)
	}
	if fields[1].Slot != 1 || fields[1].StorageIndex != 0 {
		t.Errorf("next: slot=%d index=%d, want 1/0", fields[1].Slot, fields[1].StorageIndex)
	}
	if a.PrimitiveInstanceBytes() != 4 {
		t.Errorf("A primitive bytes = %d, want 4", a.PrimitiveInstanceBytes())
	}
	if a.InstanceRefCount() != 1 {
		t.Errorf("A ref count = %d, want 1", a.InstanceRefCount())
	}
	if len(a.StaticFields()) != 0 || a.PrimitiveStaticBytes() != 0 || a.StaticRefCount() != 0 {
		t.Error("A static layout must be empty")
	}

	b := Build(a, bSym, []FieldDecl{
		{Name: "counter", Kind: kind.Long, Static: true},
	}, nil)

	// Inherited instance layout is untouched.
	if !reflect.DeepEqual(b.InstanceFields(), a.InstanceFields()) {
		t.Error("B instance table differs from A's")
	}
	if b.PrimitiveInstanceBytes() != 4 || b.InstanceRefCount() != 1 {
		t.Error("B instance counters differ from A's")
	}

	statics := b.StaticFields()
	if len(statics) != 1 {
		t.Fatalf("B static table length = %d, want 1", len(statics))
	}
	if statics[0].Slot != 0 || statics[0].StorageIndex != 0 {
		t.Errorf("counter: slot=%d index=%d, want 0/0", statics[0].Slot, statics[0].StorageIndex)
	}
	if b.PrimitiveStaticBytes() != 8 {
		t.Errorf("B static primitive bytes = %d, want 8", b.PrimitiveStaticBytes())
	}
	if b.StaticRefCount() != 0 {
		t.Errorf("B static ref count = %d, want 0", b.StaticRefCount())
	}
}

func TestInheritedFieldsKeepCoordinates(t *testing.T) {
	super := Build(nil, aSym, []FieldDecl{
		{Name: "a", Kind: kind.Long},
		{Name: "b", Kind: kind.Object},
		{Name: "c", Kind: kind.Byte},
	}, nil)

	sub := Build(super, bSym, []FieldDecl{
		{Name: "d", Kind: kind.Int},
		{Name: "e", Kind: kind.Object},
	}, nil)

	for i, f := range super.InstanceFields() {
		g := sub.InstanceFields()[i]
		if g != f {
			t.Fatalf("slot %d: subclass table holds a different field value", i)
		}
		if g.Slot != f.Slot || g.StorageIndex != f.StorageIndex {
			t.Fatalf("slot %d: coordinates changed (%d/%d -> %d/%d)",
				i, f.Slot, f.StorageIndex, g.Slot, g.StorageIndex)
		}
	}

	// Subclass fields continue from the inherited counters.
	d := sub.InstanceFields()[3]
	if d.Name != "d" || d.StorageIndex != 9 {
		t.Errorf("d: storage index = %d, want 9 (after long+byte)", d.StorageIndex)
	}
	e := sub.InstanceFields()[4]
	if e.Name != "e" || e.StorageIndex != 1 {
		t.Errorf("e: storage index = %d, want 1", e.StorageIndex)
	}
}

// Within each of the four partitions the storage indices must exactly cover
// the counter range, contiguous and duplicate-free.
func TestStorageIndicesContiguous(t *testing.T) {
	super := Build(nil, aSym, []FieldDecl{
		{Name: "s0", Kind: kind.Short},
		{Name: "s1", Kind: kind.Object},
	}, nil)

	decls := []FieldDecl{
		{Name: "f0", Kind: kind.Long},
		{Name: "f1", Kind: kind.Boolean},
		{Name: "f2", Kind: kind.Object},
		{Name: "f3", Kind: kind.Char},
		{Name: "f4", Kind: kind.Object, Static: true},
		{Name: "f5", Kind: kind.Double, Static: true},
		{Name: "f6", Kind: kind.Float, Static: true},
		{Name: "f7", Kind: kind.Object},
	}
	res := Build(super, bSym, decls, nil)

	checkPartition := func(name string, fields []*Field, static bool, primitive bool, start, end int) {
		t.Helper()
		covered := make(map[int]bool)
		next := start
		for _, f := range fields {
			if f.Static != static || f.Kind.IsPrimitive() != primitive {
				continue
			}
			if covered[f.StorageIndex] {
				t.Errorf("%s: duplicate storage index %d", name, f.StorageIndex)
			}
			covered[f.StorageIndex] = true
			if f.StorageIndex != next {
				t.Errorf("%s: index %d, expected %d", name, f.StorageIndex, next)
			}
			if primitive {
				next += f.Kind.ByteCount()
			} else {
				next++
			}
		}
		if next != end {
			t.Errorf("%s: final counter %d, want %d", name, next, end)
		}
	}

	checkPartition("instance-primitive", res.InstanceFields(), false, true, 0, res.PrimitiveInstanceBytes())
	checkPartition("instance-reference", res.InstanceFields(), false, false, 0, res.InstanceRefCount())
	checkPartition("static-primitive", res.StaticFields(), true, true, 0, res.PrimitiveStaticBytes())
	checkPartition("static-reference", res.StaticFields(), true, false, 0, res.StaticRefCount())
}

func TestStaticLayoutIndependentOfSuperclass(t *testing.T) {
	decls := []FieldDecl{
		{Name: "x", Kind: kind.Int, Static: true},
		{Name: "y", Kind: kind.Object, Static: true},
	}

	plain := Build(nil, aSym, nil, nil)
	heavy := Build(nil, aSym, []FieldDecl{
		{Name: "s", Kind: kind.Long, Static: true},
		{Name: "r", Kind: kind.Object, Static: true},
	}, nil)

	onPlain := Build(plain, bSym, decls, nil)
	onHeavy := Build(heavy, bSym, decls, nil)

	if onPlain.PrimitiveStaticBytes() != onHeavy.PrimitiveStaticBytes() ||
		onPlain.StaticRefCount() != onHeavy.StaticRefCount() {
		t.Error("static aggregates depend on superclass statics")
	}
	for i := range onPlain.StaticFields() {
		p, h := onPlain.StaticFields()[i], onHeavy.StaticFields()[i]
		if p.Slot != h.Slot || p.StorageIndex != h.StorageIndex {
			t.Errorf("static field %d: coordinates differ across superclasses", i)
		}
	}
}

func TestBuildIdempotent(t *testing.T) {
	super := Build(nil, aSym, []FieldDecl{{Name: "a", Kind: kind.Object}}, nil)
	decls := []FieldDecl{
		{Name: "x", Kind: kind.Double},
		{Name: "y", Kind: kind.Object, Static: true},
	}
	hidden := DefaultHiddenTable()

	r1 := Build(super, ThreadType, decls, hidden)
	r2 := Build(super, ThreadType, decls, hidden)

	if !reflect.DeepEqual(flatten(r1), flatten(r2)) {
		t.Error("two builds with identical inputs differ")
	}
}

// flatten projects a Result into comparable data (Field pointers differ
// across builds even when the layouts are structurally identical).
func flatten(r *Result) any {
	type flat struct {
		Name         string
		Holder       Symbol
		Kind         kind.Kind
		Slot         int
		StorageIndex int
		Static       bool
		Hidden       bool
	}
	project := func(fs []*Field) []flat {
		out := make([]flat, len(fs))
		for i, f := range fs {
			out[i] = flat{f.Name, f.Holder, f.Kind, f.Slot, f.StorageIndex, f.Static, f.Hidden}
		}
		return out
	}
	return []any{
		project(r.InstanceFields()),
		project(r.StaticFields()),
		project(r.DeclaredFields()),
		r.PrimitiveInstanceBytes(),
		r.PrimitiveStaticBytes(),
		r.InstanceRefCount(),
		r.StaticRefCount(),
	}
}

func TestDeclaredFieldsSubsequence(t *testing.T) {
	super := Build(nil, aSym, []FieldDecl{{Name: "inherited", Kind: kind.Int}}, nil)
	decls := []FieldDecl{
		{Name: "own1", Kind: kind.Object},
		{Name: "own2", Kind: kind.Short, Static: true},
	}
	res := Build(super, ThrowableType, decls, DefaultHiddenTable())

	declared := res.DeclaredFields()
	if len(declared) != 2 {
		t.Fatalf("declared length = %d, want 2", len(declared))
	}
	for i, f := range declared {
		if f.Name != decls[i].Name {
			t.Errorf("declared[%d] = %s, want %s", i, f.Name, decls[i].Name)
		}
		if f.Hidden {
			t.Errorf("declared[%d] is hidden", i)
		}
		if f.Holder != ThrowableType {
			t.Errorf("declared[%d] holder = %s", i, f.Holder)
		}
	}
}

func TestBuildPanicsOnUnknownKind(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Expected panic for kind outside the closed set")
		}
	}()
	Build(nil, aSym, []FieldDecl{{Name: "bad", Kind: kind.Illegal}}, nil)
}
