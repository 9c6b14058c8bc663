package circuit

import (
	"github.com/vanlore/qcircuit/gate"
	"gonum.org/v1/gonum/mat"
)

// Adjoint returns a new Circuit over the same lane count whose gates are
// c's gates in reverse order, each replaced by its conjugate transpose.
// Applying c followed by c.Adjoint() is the identity — this is the
// circuit-level operation spec §8 scenario S6 needs to state "QFT
// followed by its adjoint leaves the state unchanged" directly, rather
// than only as a numeric check on two independently built circuits.
func (c *Circuit) Adjoint() *Circuit {
	adj, err := New(c.n)
	if err != nil {
		panic(err) // c.n was already validated when c was built.
	}
	for i := len(c.gates) - 1; i >= 0; i-- {
		adj.Must(conjugateTranspose(c.gates[i]))
	}
	return adj
}

// conjugateTranspose returns a Custom gate whose matrix is g's
// conjugate transpose, expressed over g's (already sorted) span.
func conjugateTranspose(g gate.Gate) gate.Gate {
	m := g.Matrix()
	rank := g.Rank()
	dim := 1 << rank
	dagger := mat.NewCDense(dim, dim, nil)
	for i := 0; i < dim; i++ {
		for j := 0; j < dim; j++ {
			dagger.Set(i, j, cconj(m.At(j, i)))
		}
	}
	return gate.NewCustom(dagger, []int(g.Span()))
}

func cconj(c complex128) complex128 { return complex(real(c), -imag(c)) }
