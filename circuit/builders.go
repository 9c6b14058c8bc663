package circuit

import (
	"math"

	"github.com/vanlore/qcircuit/gate"
)

// FullAdder returns a 4-lane circuit computing classical full addition
// in place: lanes (a, b, cin, cout) in, lanes (a, b, sum, cout) out,
// where sum = a xor b xor cin and cout = majority(a, b, cin) — spec §8
// scenario S5. cout must start in |0>.
//
// original_source has no reusable circuit builders (see SPEC_FULL.md
// §9); this is the standard reversible majority/sum construction,
// arranged so that b is only ever used as a control (stays unchanged)
// and cin is the register overwritten with the sum.
func FullAdder() *Circuit {
	const a, b, cin, cout = 0, 1, 2, 3
	c, err := New(4)
	if err != nil {
		panic(err)
	}
	c.Must(must(gate.New(gate.Toffoli, []int{a, cin, cout})))
	c.Must(must(gate.New(gate.CX, []int{a, cin})))
	c.Must(must(gate.New(gate.Toffoli, []int{b, cin, cout})))
	c.Must(must(gate.New(gate.CX, []int{b, cin})))
	return c
}

// QFT returns the standard n-lane quantum Fourier transform circuit
// (without the trailing bit-reversal swap layer — the output lanes are
// therefore bit-reversed relative to a canonical QFT, which spec §8
// scenario S6's two required properties, uniform amplitude on |0...0>
// and self-inverse under Adjoint, do not depend on).
func QFT(n int) *Circuit {
	c, err := New(n)
	if err != nil {
		panic(err)
	}
	for i := 0; i < n; i++ {
		c.Must(must(gate.New(gate.Hadamard, []int{i})))
		for j := i + 1; j < n; j++ {
			theta := math.Pi / math.Pow(2, float64(j-i))
			c.Must(must(gate.New(gate.CP, []int{j, i}, theta)))
		}
	}
	return c
}

// GHZ returns the n-lane circuit preparing the Greenberger-Horne-Zeilinger
// state (|0...0> + |1...1>)/sqrt(2): H on lane 0, then CX(0, i) for every
// other lane.
func GHZ(n int) *Circuit {
	c, err := New(n)
	if err != nil {
		panic(err)
	}
	c.Must(must(gate.New(gate.Hadamard, []int{0})))
	for i := 1; i < n; i++ {
		c.Must(must(gate.New(gate.CX, []int{0, i})))
	}
	return c
}

// must panics on error; used for gate constructions whose lanes are
// computed by this package itself, where an error would indicate a bug
// in the builder rather than bad caller input.
func must(g gate.Gate, err error) gate.Gate {
	if err != nil {
		panic(err)
	}
	return g
}
