package main

import (
	"fmt"

	"github.com/vanlore/qcircuit/circuit"
)

// buildCircuit resolves one of the fixture circuits spec.md §8 names by
// their scenario role. lanes is ignored by fulladder, which is fixed at
// four lanes.
func buildCircuit(name string, lanes int) (*circuit.Circuit, error) {
	switch name {
	case "fulladder":
		return circuit.FullAdder(), nil
	case "qft":
		return circuit.QFT(lanes), nil
	case "ghz":
		return circuit.GHZ(lanes), nil
	default:
		return nil, fmt.Errorf("qcircuitc: unknown circuit %q (want fulladder, qft, or ghz)", name)
	}
}
