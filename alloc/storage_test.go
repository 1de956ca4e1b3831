package alloc

import (
	"testing"

	"github.com/wippyai/jvm-runtime/kind"
	"github.com/wippyai/jvm-runtime/layout"
)

func buildMixed(t *testing.T) *layout.Result {
	t.Helper()
	return layout.Build(nil, "LMixed;", []layout.FieldDecl{
		{Name: "flag", Kind: kind.Boolean},
		{Name: "b", Kind: kind.Byte},
		{Name: "s", Kind: kind.Short},
		{Name: "c", Kind: kind.Char},
		{Name: "i", Kind: kind.Int},
		{Name: "f", Kind: kind.Float},
		{Name: "l", Kind: kind.Long},
		{Name: "d", Kind: kind.Double},
		{Name: "ref", Kind: kind.Object},
		{Name: "counter", Kind: kind.Long, Static: true},
		{Name: "shared", Kind: kind.Object, Static: true},
	}, nil)
}

func fieldByName(t *testing.T, res *layout.Result, name string) *layout.Field {
	t.Helper()
	for _, f := range res.InstanceFields() {
		if f.Name == name {
			return f
		}
	}
	for _, f := range res.StaticFields() {
		if f.Name == name {
			return f
		}
	}
	t.Fatalf("no field %q", name)
	return nil
}

func TestInstanceStorageSizing(t *testing.T) {
	res := buildMixed(t)
	inst := NewInstanceStorage(res)

	if inst.PrimitiveLen() != res.PrimitiveInstanceBytes() {
		t.Errorf("primitive region = %d bytes, want %d", inst.PrimitiveLen(), res.PrimitiveInstanceBytes())
	}
	if inst.RefLen() != res.InstanceRefCount() {
		t.Errorf("ref region = %d slots, want %d", inst.RefLen(), res.InstanceRefCount())
	}
}

func TestStaticStorageSizing(t *testing.T) {
	res := buildMixed(t)
	statics := NewStaticStorage(res)

	if statics.PrimitiveLen() != 8 {
		t.Errorf("static primitive region = %d bytes, want 8", statics.PrimitiveLen())
	}
	if statics.RefLen() != 1 {
		t.Errorf("static ref region = %d slots, want 1", statics.RefLen())
	}
}

// Every kind round-trips through its own offset without disturbing any
// neighboring field. This is the test that catches a wrong offset before it
// becomes silent memory corruption at runtime.
func TestTypedAccessRoundTrip(t *testing.T) {
	res := buildMixed(t)
	inst := NewInstanceStorage(res)

	inst.SetBoolean(fieldByName(t, res, "flag"), true)
	inst.SetByte(fieldByName(t, res, "b"), -7)
	inst.SetShort(fieldByName(t, res, "s"), -30000)
	inst.SetChar(fieldByName(t, res, "c"), 0xBEEF)
	inst.SetInt(fieldByName(t, res, "i"), -123456789)
	inst.SetFloat(fieldByName(t, res, "f"), 3.5)
	inst.SetLong(fieldByName(t, res, "l"), -1234567890123456789)
	inst.SetDouble(fieldByName(t, res, "d"), -2.25)
	inst.SetRef(fieldByName(t, res, "ref"), "payload")

	if got := inst.GetBoolean(fieldByName(t, res, "flag")); got != true {
		t.Errorf("flag = %v", got)
	}
	if got := inst.GetByte(fieldByName(t, res, "b")); got != -7 {
		t.Errorf("b = %d", got)
	}
	if got := inst.GetShort(fieldByName(t, res, "s")); got != -30000 {
		t.Errorf("s = %d", got)
	}
	if got := inst.GetChar(fieldByName(t, res, "c")); got != 0xBEEF {
		t.Errorf("c = %#x", got)
	}
	if got := inst.GetInt(fieldByName(t, res, "i")); got != -123456789 {
		t.Errorf("i = %d", got)
	}
	if got := inst.GetFloat(fieldByName(t, res, "f")); got != 3.5 {
		t.Errorf("f = %v", got)
	}
	if got := inst.GetLong(fieldByName(t, res, "l")); got != -1234567890123456789 {
		t.Errorf("l = %d", got)
	}
	if got := inst.GetDouble(fieldByName(t, res, "d")); got != -2.25 {
		t.Errorf("d = %v", got)
	}
	if got := inst.GetRef(fieldByName(t, res, "ref")); got != "payload" {
		t.Errorf("ref = %v", got)
	}
}

func TestStaticAccessRoundTrip(t *testing.T) {
	res := buildMixed(t)
	statics := NewStaticStorage(res)

	counter := fieldByName(t, res, "counter")
	shared := fieldByName(t, res, "shared")

	statics.SetLong(counter, 42)
	statics.SetRef(shared, "origin")

	if got := statics.GetLong(counter); got != 42 {
		t.Errorf("counter = %d", got)
	}
	if got := statics.GetRef(shared); got != "origin" {
		t.Errorf("shared = %v", got)
	}
}

func TestKindMismatchPanics(t *testing.T) {
	res := buildMixed(t)
	inst := NewInstanceStorage(res)

	defer func() {
		if recover() == nil {
			t.Fatal("Expected panic for kind-mismatched access")
		}
	}()
	inst.GetLong(fieldByName(t, res, "i"))
}

func TestPartitionMismatchPanics(t *testing.T) {
	res := buildMixed(t)
	inst := NewInstanceStorage(res)

	defer func() {
		if recover() == nil {
			t.Fatal("Expected panic for static field on instance storage")
		}
	}()
	inst.SetLong(fieldByName(t, res, "counter"), 1)
}

// Subclass instance storage is a superset of the superclass's: superclass
// field coordinates address the same values in both.
func TestInheritedFieldAccess(t *testing.T) {
	super := layout.Build(nil, "LSuper;", []layout.FieldDecl{
		{Name: "base", Kind: kind.Int},
		{Name: "link", Kind: kind.Object},
	}, nil)
	sub := layout.Build(super, "LSub;", []layout.FieldDecl{
		{Name: "extra", Kind: kind.Int},
	}, nil)

	inst := NewInstanceStorage(sub)

	base := super.InstanceFields()[0]
	extra := sub.InstanceFields()[2]

	inst.SetInt(base, 11)
	inst.SetInt(extra, 22)

	if got := inst.GetInt(base); got != 11 {
		t.Errorf("base = %d after writing extra", got)
	}
	if got := inst.GetInt(extra); got != 22 {
		t.Errorf("extra = %d", got)
	}
}

func TestZeroValues(t *testing.T) {
	res := buildMixed(t)
	inst := NewInstanceStorage(res)

	if inst.GetInt(fieldByName(t, res, "i")) != 0 {
		t.Error("fresh int field not zero")
	}
	if inst.GetRef(fieldByName(t, res, "ref")) != nil {
		t.Error("fresh ref field not nil")
	}
}
