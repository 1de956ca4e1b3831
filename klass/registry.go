package klass

import (
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/wippyai/jvm-runtime/errors"
	"github.com/wippyai/jvm-runtime/layout"
)

// Registry is the class arena: class entries indexed by type symbol.
//
// Definition and lookup are safe for concurrent use. Preparation of a single
// class is serialized, so two threads racing to prepare the same class
// observe one published layout, never two divergent ones.
type Registry struct {
	mu      sync.RWMutex
	classes map[layout.Symbol]*Klass

	hidden *layout.HiddenTable

	vtMu       sync.RWMutex
	valueTypes map[layout.Symbol]bool
}

// NewRegistry creates an empty registry. hidden is the runtime-provided
// hidden-field configuration; verify it at startup with
// layout.HiddenTable.Verify. A nil table injects no hidden fields.
func NewRegistry(hidden *layout.HiddenTable) *Registry {
	return &Registry{
		classes:    make(map[layout.Symbol]*Klass),
		hidden:     hidden,
		valueTypes: make(map[layout.Symbol]bool),
	}
}

// Define registers a class. The superclass must already be defined ("" for
// the root class); upstream loading resolves supertypes first, which also
// rules out superclass cycles.
func (r *Registry) Define(typ, super layout.Symbol, declared []layout.FieldDecl) (*Klass, error) {
	if typ == "" {
		return nil, errors.InvalidInput(errors.PhaseLink, "empty class symbol")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.classes[typ]; exists {
		return nil, errors.AlreadyDefined(string(typ))
	}
	if super != "" {
		if _, ok := r.classes[super]; !ok {
			return nil, errors.NotFound(errors.PhaseLink, "superclass", string(super))
		}
	}

	k := &Klass{
		typ:      typ,
		super:    super,
		declared: append([]layout.FieldDecl(nil), declared...),
	}
	r.classes[typ] = k

	Logger().Debug("class defined",
		zap.String("type", string(typ)),
		zap.String("super", string(super)),
		zap.Int("declared", len(declared)))

	return k, nil
}

// Lookup returns the class entry for a type symbol.
func (r *Registry) Lookup(typ layout.Symbol) (*Klass, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	k, ok := r.classes[typ]
	return k, ok
}

// Classes returns all defined classes sorted by type symbol.
func (r *Registry) Classes() []*Klass {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Klass, 0, len(r.classes))
	for _, k := range r.classes {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].typ < out[j].typ })
	return out
}

// Prepare computes and publishes the layout for typ, preparing its
// superclass chain first. Preparing an already-prepared class returns the
// existing Result.
func (r *Registry) Prepare(typ layout.Symbol) (*layout.Result, error) {
	k, ok := r.Lookup(typ)
	if !ok {
		return nil, errors.NotFound(errors.PhasePrepare, "class", string(typ))
	}
	return r.prepare(k)
}

// PrepareAll prepares every defined class.
func (r *Registry) PrepareAll() error {
	for _, k := range r.Classes() {
		if _, err := r.prepare(k); err != nil {
			return err
		}
	}
	return nil
}

func (r *Registry) prepare(k *Klass) (*layout.Result, error) {
	if res := k.published.Load(); res != nil {
		return res, nil
	}

	var superRes *layout.Result
	if k.super != "" {
		sk, ok := r.Lookup(k.super)
		if !ok {
			return nil, errors.NotFound(errors.PhasePrepare, "superclass", string(k.super))
		}
		var err error
		superRes, err = r.prepare(sk)
		if err != nil {
			return nil, err
		}
	}

	k.prepareMu.Lock()
	defer k.prepareMu.Unlock()

	// A racing preparer may have published while we waited.
	if res := k.published.Load(); res != nil {
		return res, nil
	}

	res := layout.Build(superRes, k.typ, k.declared, r.hidden)
	k.published.Store(res)

	Logger().Debug("class prepared",
		zap.String("type", string(k.typ)),
		zap.Int("instance_fields", len(res.InstanceFields())),
		zap.Int("static_fields", len(res.StaticFields())),
		zap.Int("primitive_bytes", res.PrimitiveInstanceBytes()),
		zap.Int("ref_slots", res.InstanceRefCount()))

	return res, nil
}

// RegisterValueTypes marks class symbols as value-semantic types whose
// not-yet-materialized instances carry no object identity. Configuration may
// name classes before they are defined.
func (r *Registry) RegisterValueTypes(types ...layout.Symbol) {
	r.vtMu.Lock()
	defer r.vtMu.Unlock()
	for _, typ := range types {
		r.valueTypes[typ] = true
	}
}

// IsValueType reports whether typ is a recognized no-identity value type.
func (r *Registry) IsValueType(typ layout.Symbol) bool {
	r.vtMu.RLock()
	defer r.vtMu.RUnlock()
	return r.valueTypes[typ]
}
