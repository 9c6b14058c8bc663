package lower

import (
	"github.com/vanlore/qcircuit/gate"
	"github.com/vanlore/qcircuit/span"
)

// Kind distinguishes an Operation's primitive: tensor-expansion
// (Kronecker padding) or matrix-multiply.
type Kind int

const (
	TE Kind = iota
	MM
)

func (k Kind) String() string {
	if k == TE {
		return "TE"
	}
	return "MM"
}

// OperandKind tags which field of Operand is populated.
type OperandKind int

const (
	OperandGate OperandKind = iota
	OperandIdentity
	OperandOp
)

// Operand is one side of an Operation: a leaf gate, an identity block
// of a given qubit width (inserted by expansion padding), or the
// result of another Operation.
type Operand struct {
	Kind          OperandKind
	Gate          *gate.Gate
	IdentityWidth int
	Op            *Operation
}

// Operation is one node of the lowered tree: a tensor-expansion or a
// matrix-multiply of two operands sharing Span. Transposed records
// whether this node, when consumed as an operand of its parent, must
// be serialised in column-major form — true for every node on the
// right-hand spine of a matmul, flipped at each matmul boundary and
// otherwise inherited unchanged (spec.md §4.4).
type Operation struct {
	Kind       Kind
	Span       span.Span
	Left       Operand
	Right      Operand
	Transposed bool
}
