package exec

import (
	"fmt"

	"github.com/vanlore/qcircuit/schedule"
)

// Backend is the executor boundary of spec.md §4.6: resolve an operand
// to a block, and make an instruction's result visible at its id.
type Backend interface {
	LoadBlock(operand schedule.Operand) (Block, error)
	SaveBlock(id int, b Block) error
}

// CPU is the in-memory Backend: inline blocks materialise directly from
// the gate catalog or as identity matrices, and addresses resolve
// against a private Store.
type CPU struct {
	store *Store
}

// NewCPU returns a CPU backend with an empty block store.
func NewCPU() *CPU {
	return &CPU{store: NewStore()}
}

// LoadBlock implements Backend.
func (c *CPU) LoadBlock(operand schedule.Operand) (Block, error) {
	switch operand.Kind {
	case schedule.OperandBlock:
		if operand.Block.Gate != nil {
			return GateBlock(operand.Block.Gate), nil
		}
		return IdentityBlock(operand.Block.IdentityWidth), nil
	case schedule.OperandAddress:
		b, ok := c.store.Load(operand.Address)
		if !ok {
			return Block{}, fmt.Errorf("%w: address %d", ErrMissingBlock, operand.Address)
		}
		return b, nil
	default:
		return Block{}, fmt.Errorf("exec: unknown operand kind %v", operand.Kind)
	}
}

// SaveBlock implements Backend.
func (c *CPU) SaveBlock(id int, b Block) error {
	c.store.Save(id, b)
	return nil
}

// Drain returns every block the backend has produced, keyed by
// instruction id. Called once a plan is fully drained to recover the
// surviving root blocks (spec.md §4.6).
func (c *CPU) Drain() map[int]Block {
	return c.store.Drain()
}
