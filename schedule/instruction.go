package schedule

import (
	"github.com/vanlore/qcircuit/gate"
	"github.com/vanlore/qcircuit/lower"
)

// Format is the serialisation layout of an inline block operand.
type Format int

const (
	RowMajor Format = iota
	ColumnMajor
)

// OperandKind tags which field of Operand is populated.
type OperandKind int

const (
	OperandBlock OperandKind = iota
	OperandAddress
)

// Block is an inline operand: either a catalog gate or an identity
// padding block of a given qubit width, never both.
type Block struct {
	Gate          *gate.Gate
	IdentityWidth int
}

// Operand is one side of an Instruction: an inline Block or the
// Address of a prior instruction's result.
type Operand struct {
	Kind    OperandKind
	Block   Block
	Address int
}

// Instruction is a scheduled primitive: a kernel tag, two operands, and
// the dependency ids every Address operand among them contributes
// (spec.md §3). LeftFormat records the serialisation format the left
// operand's producing Operation requires (ColumnMajor if that
// Operation's Transposed flag is set); the binary emitter derives the
// right operand's format as LeftFormat's inverse for MM kernels.
type Instruction struct {
	ID           int
	Dependencies []int
	Kernel       lower.Kind
	Left         Operand
	Right        Operand
	LeftFormat   Format
}
