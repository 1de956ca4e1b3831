package identity

import (
	"context"

	"go.uber.org/zap"

	"github.com/wippyai/jvm-runtime/layout"
)

// VirtualInstance is a not-yet-materialized object instance tracked by
// escape analysis. It starts out needing identity: as long as the object
// might be compared by reference or locked, the analysis must preserve a
// distinct allocation for it.
type VirtualInstance struct {
	typ      layout.Symbol
	identity bool
}

// NewVirtualInstance creates a virtual instance of the given class with
// identity tracking enabled.
func NewVirtualInstance(typ layout.Symbol) *VirtualInstance {
	return &VirtualInstance{typ: typ, identity: true}
}

// Type returns the class identity of the virtual instance.
func (v *VirtualInstance) Type() layout.Symbol {
	return v.typ
}

// NeedsIdentity reports whether the instance still requires object identity.
func (v *VirtualInstance) NeedsIdentity() bool {
	return v.identity
}

// SetIdentity toggles identity tracking for the instance.
func (v *VirtualInstance) SetIdentity(identity bool) {
	v.identity = identity
}

// Graph is the escape-analysis view the phase runs over: the current set of
// virtual instance nodes of a compilation unit.
type Graph interface {
	VirtualInstances() []*VirtualInstance
}

// ValueTypes answers whether a class is a recognized no-identity
// value-semantic type. *klass.Registry satisfies it.
type ValueTypes interface {
	IsValueType(typ layout.Symbol) bool
}

// Phase strips identity tracking from virtual instances of value-semantic
// classes, freeing the surrounding escape analysis to scalar-replace them
// even when they appear in comparisons.
type Phase struct {
	types ValueTypes
}

// NewPhase creates the identity stripping phase.
func NewPhase(types ValueTypes) *Phase {
	return &Phase{types: types}
}

// Run applies the phase to a graph. The pass needs no slot or storage-index
// knowledge; it consumes only the per-class value-type predicate.
func (p *Phase) Run(ctx context.Context, g Graph) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	stripped := 0
	for _, v := range g.VirtualInstances() {
		if v.NeedsIdentity() && p.types.IsValueType(v.Type()) {
			v.SetIdentity(false)
			stripped++
		}
	}

	if stripped > 0 {
		Logger().Debug("identity stripped from virtual value-type instances",
			zap.Int("count", stripped))
	}
	return nil
}
