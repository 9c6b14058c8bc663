package schedule

import (
	"github.com/rs/zerolog"

	"github.com/vanlore/qcircuit/lower"
)

// Build linearises root's operation tree into a Plan by post-order
// traversal, allocating a fresh sequential id at each visit (spec.md
// §4.5). Every instruction's dependencies are strictly smaller ids, so
// the resulting DAG is acyclic by construction.
func Build(root *lower.Operation, opts Options) *Plan {
	opts = opts.normalize()
	b := &builder{instructions: make(map[int]*Instruction), log: opts.Logger}
	b.visit(root)
	plan := finalize(b.instructions)
	b.log.Debug().Int("instructions", plan.Len()).Msg("schedule: plan built")
	return plan
}

type builder struct {
	instructions map[int]*Instruction
	nextID       int
	log          *zerolog.Logger
}

// visit lowers op's children first (so their instructions get smaller
// ids), then allocates op's own id and records its instruction.
func (b *builder) visit(op *lower.Operation) int {
	left, leftDep := b.resolveOperand(op.Left)
	right, rightDep := b.resolveOperand(op.Right)

	id := b.nextID
	b.nextID++

	var deps []int
	if leftDep != nil {
		deps = append(deps, *leftDep)
	}
	if rightDep != nil {
		deps = append(deps, *rightDep)
	}

	instr := &Instruction{
		ID:           id,
		Dependencies: deps,
		Kernel:       op.Kind,
		Left:         left,
		Right:        right,
		LeftFormat:   operandFormat(op.Left),
	}
	b.instructions[id] = instr
	b.log.Debug().Int("id", id).Str("kernel", op.Kind.String()).Ints("deps", deps).Msg("schedule: instruction scheduled")
	return id
}

// resolveOperand turns a lower.Operand into a schedule.Operand. For a
// nested Operation it recurses first, returning the freshly assigned
// child id as both the operand's Address and the caller's dependency.
func (b *builder) resolveOperand(operand lower.Operand) (Operand, *int) {
	switch operand.Kind {
	case lower.OperandGate:
		return Operand{Kind: OperandBlock, Block: Block{Gate: operand.Gate}}, nil
	case lower.OperandIdentity:
		return Operand{Kind: OperandBlock, Block: Block{IdentityWidth: operand.IdentityWidth}}, nil
	case lower.OperandOp:
		childID := b.visit(operand.Op)
		return Operand{Kind: OperandAddress, Address: childID}, &childID
	default:
		panic("schedule: unknown operand kind")
	}
}

// operandFormat reports the serialisation format operand's producing
// Operation requires when consumed as a left operand: ColumnMajor if
// that Operation is on the transposed spine, RowMajor for any inline
// block (spec.md §4.4, §6).
func operandFormat(operand lower.Operand) Format {
	if operand.Kind == lower.OperandOp && operand.Op.Transposed {
		return ColumnMajor
	}
	return RowMajor
}

// finalize derives the waiting/dependants maps from each instruction's
// recorded dependencies.
func finalize(instructions map[int]*Instruction) *Plan {
	waiting := make(map[int]map[int]struct{}, len(instructions))
	dependants := make(map[int]map[int]struct{}, len(instructions))
	for id := range instructions {
		dependants[id] = make(map[int]struct{})
	}
	for id, instr := range instructions {
		set := make(map[int]struct{}, len(instr.Dependencies))
		for _, dep := range instr.Dependencies {
			set[dep] = struct{}{}
			dependants[dep][id] = struct{}{}
		}
		waiting[id] = set
	}
	return &Plan{instructions: instructions, waiting: waiting, dependants: dependants}
}
