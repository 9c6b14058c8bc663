package tensor

import (
	"github.com/vanlore/qcircuit/circuit"
	"github.com/vanlore/qcircuit/span"
)

// Build walks c's gates in insertion order and returns the tensor
// network they induce (spec.md §4.2). For each gate it creates a leaf
// node, consults the slice register for the gate's filled span to find
// every predecessor that still owns a piece of those lanes, wires a
// directed edge from each predecessor carrying the overlapping
// sub-span, and finally records the new node as the most recent writer
// of its filled span.
//
// Build never fails: a gate whose span exceeds the circuit's lane count
// is rejected by circuit.Circuit.AddGate before a Circuit value can
// exist, so every gate handed to Build already has a valid span.
func Build(c *circuit.Circuit) *Network {
	net := NewNetwork()
	register := span.NewSliceRegister[int]()

	for _, g := range c.Gates() {
		id := net.NextID()
		leaf := newLeaf(id, g)
		net.AddNode(leaf)

		filled := leaf.Span.Filled()
		for _, pair := range register.Get(filled) {
			net.AddEdge(pair.Value, id, pair.Span)
		}
		register.Apply(filled, id)
	}
	return net
}
