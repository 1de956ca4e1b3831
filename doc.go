// Package jvmruntime provides the object model core of a guest JVM hosted on Go.
//
// The library computes and serves per-class storage layouts for a meta-circular
// runtime: classes, fields, and instances are explicit data, and every object
// is backed by one packed primitive byte region plus one reference array.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	jvm-runtime/        Root package with storage access interfaces
//	├── kind/           Closed primitive kind enumeration and byte widths
//	├── layout/         Field table builder and hidden field injection
//	├── klass/          Class registry, preparation, and field resolution
//	├── alloc/          Instance and static storage sized from layouts
//	├── identity/       Identity stripping for value-semantic virtual objects
//	├── config/         Runtime-provided layout configuration (TOML)
//	├── errors/         Structured error types for debugging
//	└── cmd/inspect/    Layout inspector CLI
//
// # Quick Start
//
// Define a hierarchy and prepare its layouts:
//
//	reg := klass.NewRegistry(layout.DefaultHiddenTable())
//
//	obj, _ := reg.Define("Ljava/lang/Object;", "", nil)
//	pt, _ := reg.Define("LPoint;", obj.Type(), []layout.FieldDecl{
//	    {Name: "x", Kind: kind.Int},
//	    {Name: "y", Kind: kind.Int},
//	})
//
//	res, err := reg.Prepare(pt.Type())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	inst := alloc.NewInstanceStorage(res)
//	f, _ := pt.ResolveField("x")
//	inst.SetInt(f, 42)
//
// # Layout Model
//
// A class layout is computed exactly once, during preparation, after the
// superclass layout exists and before any instance of the class is allocated.
// Instance tables extend the superclass table append-only: slots and storage
// indices assigned by an ancestor are never renumbered. Static tables are
// per-class and never inherited. A handful of core classes receive VM-private
// hidden fields appended after their declared fields; these are always
// reference-typed and invisible to reflection-style queries.
//
// # Thread Safety
//
// Registry is safe for concurrent use; preparation of a single class is
// serialized. A published layout Result is immutable and safe for
// unsynchronized concurrent reads. InstanceStorage and StaticStorage are NOT
// thread-safe; the runtime's own field access protocol governs them.
package jvmruntime
