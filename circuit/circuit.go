// Package circuit is the circuit model: an ordered list of gates over N
// qubit lanes, with the validation spec §3/§4.2/§7 require. Gates are
// applied in insertion order from index 0 forward.
package circuit

import (
	"fmt"

	"github.com/vanlore/qcircuit/gate"
)

// Circuit is a pair (lane count N, ordered list of gates). Every gate's
// span is a subset of {0 ... N-1}.
type Circuit struct {
	n     int
	gates []gate.Gate
}

// New returns an empty Circuit over n lanes.
func New(n int) (*Circuit, error) {
	if n < 1 {
		return nil, ErrZeroLanes
	}
	return &Circuit{n: n}, nil
}

// Lanes returns the declared lane count N.
func (c *Circuit) Lanes() int { return c.n }

// Gates returns the gate list in program order. The returned slice is a
// copy; mutating it does not affect c.
func (c *Circuit) Gates() []gate.Gate {
	out := make([]gate.Gate, len(c.gates))
	copy(out, c.gates)
	return out
}

// Len returns the number of gates in the circuit.
func (c *Circuit) Len() int { return len(c.gates) }

// AddGate appends g to the circuit after validating that every lane g
// touches is within [0, N). This is the only point at which a
// circuit-validation error (spec §7) can occur.
func (c *Circuit) AddGate(g gate.Gate) error {
	for _, lane := range g.Lanes {
		if lane < 0 || lane >= c.n {
			return fmt.Errorf("gate %s on lane %d (circuit has %d lanes): %w", g.Kind, lane, c.n, ErrLaneOutOfRange)
		}
	}
	c.gates = append(c.gates, g)
	return nil
}

// Must adds g to c and panics on error. Intended for builders (see
// builders.go) where the lane arithmetic is constructed by this package
// itself and a validation failure would be a programmer error.
func (c *Circuit) Must(g gate.Gate) *Circuit {
	if err := c.AddGate(g); err != nil {
		panic(err)
	}
	return c
}
