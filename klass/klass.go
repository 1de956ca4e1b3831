package klass

import (
	"sync"
	"sync/atomic"

	"github.com/wippyai/jvm-runtime/errors"
	"github.com/wippyai/jvm-runtime/layout"
)

// Klass is one entry in the class registry: a class identity, a forward
// reference to its superclass, the linked field declarations, and, once the
// class has been prepared, its published layout.
//
// The superclass relationship is held as a symbol resolved through the
// registry, not as an embedded Go value; the registry is the arena that owns
// all class entries.
type Klass struct {
	typ      layout.Symbol
	super    layout.Symbol
	declared []layout.FieldDecl

	prepareMu sync.Mutex
	published atomic.Pointer[layout.Result]
}

// Type returns the class's type symbol.
func (k *Klass) Type() layout.Symbol {
	return k.typ
}

// Super returns the superclass's type symbol, or "" for the root class.
func (k *Klass) Super() layout.Symbol {
	return k.super
}

// Declared returns the class's linked field declarations in declaration
// order, prior to layout.
func (k *Klass) Declared() []layout.FieldDecl {
	return k.declared
}

// Prepared reports whether the class has a published layout.
func (k *Klass) Prepared() bool {
	return k.published.Load() != nil
}

// Layout returns the class's published layout Result.
func (k *Klass) Layout() (*layout.Result, error) {
	res := k.published.Load()
	if res == nil {
		return nil, errors.Unprepared(errors.PhasePrepare, string(k.typ))
	}
	return res, nil
}

// ResolveField resolves a named field reference to its Field, and therefore
// to a slot/storage-index pair, for field access code. Instance fields
// shadow static fields of the same name; hidden fields are not visible here.
func (k *Klass) ResolveField(name string) (*layout.Field, error) {
	res, err := k.Layout()
	if err != nil {
		return nil, err
	}
	for _, f := range res.InstanceFields() {
		if !f.Hidden && f.Name == name {
			return f, nil
		}
	}
	for _, f := range res.StaticFields() {
		if f.Name == name {
			return f, nil
		}
	}
	return nil, errors.New(errors.PhaseReflect, errors.KindNotFound).
		Class(string(k.typ)).
		Field(name).
		Detail("no such field").
		Build()
}

// HiddenField resolves a VM-private hidden field by name. Only runtime
// internals call this; reflection never sees hidden fields.
func (k *Klass) HiddenField(name string) (*layout.Field, error) {
	res, err := k.Layout()
	if err != nil {
		return nil, err
	}
	for _, f := range res.InstanceFields() {
		if f.Hidden && f.Name == name {
			return f, nil
		}
	}
	return nil, errors.New(errors.PhaseReflect, errors.KindNotFound).
		Class(string(k.typ)).
		Field(name).
		Detail("no such hidden field").
		Build()
}

// DeclaredFields returns the reflection-facing declared-fields subsequence:
// only fields declared directly by this class, never inherited or hidden
// ones.
func (k *Klass) DeclaredFields() ([]*layout.Field, error) {
	res, err := k.Layout()
	if err != nil {
		return nil, err
	}
	return res.DeclaredFields(), nil
}
