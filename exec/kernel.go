package exec

import (
	"fmt"

	"github.com/vanlore/qcircuit/lower"
	"gonum.org/v1/gonum/mat"
)

// Kernel dispatches to the tensor-product or matrix-multiply primitive
// per spec.md §4.7.
func Kernel(k lower.Kind, left, right Block) (Block, error) {
	switch k {
	case lower.TE:
		return kronecker(left, right), nil
	case lower.MM:
		return matmul(left, right)
	default:
		return Block{}, fmt.Errorf("exec: unknown kernel %v", k)
	}
}

// kronecker computes the Kronecker product of two complex matrices of
// shapes (m,n) and (p,q), producing (mp, nq). gonum's mat.Dense has a
// Kronecker method but mat.CDense does not, so this implements it
// directly over CDense's At/Set, the same explicit-index-loop style the
// dense-matrix helpers this package descends from use.
func kronecker(a, b Block) Block {
	ar, ac := a.Dims()
	br, bc := b.Dims()
	out := mat.NewCDense(ar*br, ac*bc, nil)
	for i := 0; i < ar; i++ {
		for j := 0; j < ac; j++ {
			aij := a.At(i, j)
			if aij == 0 {
				continue
			}
			for p := 0; p < br; p++ {
				for q := 0; q < bc; q++ {
					out.Set(i*br+p, j*bc+q, aij*b.At(p, q))
				}
			}
		}
	}
	return Block{out}
}

// matmul composes two same-rank blocks. left is the program-order
// earlier operand and right the later one (tensor.Node's u and v); the
// resulting unitary applies left's transform first, which in standard
// column-vector matrix notation means the later operand multiplies on
// the left: out = right * left, not left * right. A mismatched inner
// dimension is a programmer bug per spec.md §4.7, not a recoverable
// error, so it is reported with the same ErrMissingBlock-adjacent
// bluntness rather than threaded through as a validation failure.
func matmul(left, right Block) (Block, error) {
	lr, lc := left.Dims()
	rr, rc := right.Dims()
	if rc != lr {
		return Block{}, fmt.Errorf("exec: matmul: inner dimension mismatch %dx%d * %dx%d", rr, rc, lr, lc)
	}
	out := mat.NewCDense(rr, lc, nil)
	out.Mul(right.CDense, left.CDense)
	return Block{out}, nil
}
