package exec

import (
	"github.com/vanlore/qcircuit/gate"
	"gonum.org/v1/gonum/mat"
)

// Block is a materialised dense complex matrix: a kernel operand or
// result.
type Block struct {
	*mat.CDense
}

// GateBlock returns g's matrix as a Block.
func GateBlock(g *gate.Gate) Block {
	return Block{g.Matrix()}
}

// IdentityBlock returns the 2^width x 2^width identity matrix as a
// Block, used to materialise the identity padding operands lowering
// inserts.
func IdentityBlock(width int) Block {
	dim := 1 << width
	m := mat.NewCDense(dim, dim, nil)
	for i := 0; i < dim; i++ {
		m.Set(i, i, complex(1, 0))
	}
	return Block{m}
}
