package identity

import (
	"context"
	"testing"

	"github.com/wippyai/jvm-runtime/klass"
)

type sliceGraph struct {
	nodes []*VirtualInstance
}

func (g *sliceGraph) VirtualInstances() []*VirtualInstance {
	return g.nodes
}

func TestPhaseStripsValueTypes(t *testing.T) {
	reg := klass.NewRegistry(nil)
	reg.RegisterValueTypes("Ljava/lang/Integer;", "Ljava/lang/Double;")

	integer := NewVirtualInstance("Ljava/lang/Integer;")
	double := NewVirtualInstance("Ljava/lang/Double;")
	point := NewVirtualInstance("LPoint;")

	g := &sliceGraph{nodes: []*VirtualInstance{integer, double, point}}

	if err := NewPhase(reg).Run(context.Background(), g); err != nil {
		t.Fatalf("run: %v", err)
	}

	if integer.NeedsIdentity() {
		t.Error("Integer instance kept identity")
	}
	if double.NeedsIdentity() {
		t.Error("Double instance kept identity")
	}
	if !point.NeedsIdentity() {
		t.Error("Point instance lost identity")
	}
}

func TestPhaseIdempotent(t *testing.T) {
	reg := klass.NewRegistry(nil)
	reg.RegisterValueTypes("Ljava/lang/Long;")

	node := NewVirtualInstance("Ljava/lang/Long;")
	g := &sliceGraph{nodes: []*VirtualInstance{node}}
	phase := NewPhase(reg)

	ctx := context.Background()
	if err := phase.Run(ctx, g); err != nil {
		t.Fatal(err)
	}
	if err := phase.Run(ctx, g); err != nil {
		t.Fatal(err)
	}
	if node.NeedsIdentity() {
		t.Error("identity not stripped")
	}
}

func TestPhaseHonorsCancellation(t *testing.T) {
	reg := klass.NewRegistry(nil)
	reg.RegisterValueTypes("Ljava/lang/Integer;")

	node := NewVirtualInstance("Ljava/lang/Integer;")
	g := &sliceGraph{nodes: []*VirtualInstance{node}}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := NewPhase(reg).Run(ctx, g); err == nil {
		t.Fatal("expected error from cancelled context")
	}
	if !node.NeedsIdentity() {
		t.Error("cancelled run mutated the graph")
	}
}

var _ ValueTypes = (*klass.Registry)(nil)
