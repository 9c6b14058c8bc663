package wire

import (
	"bufio"
	"context"
	"encoding/binary"
	"io"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"

	"github.com/vanlore/qcircuit/exec"
	"github.com/vanlore/qcircuit/lower"
	"github.com/vanlore/qcircuit/schedule"
)

// nonZeroThreshold is the magnitude below which a matrix entry is
// dropped from the sparse COO encoding (spec.md §6).
const nonZeroThreshold = 1e-10

// kindByte bit layout: bit 2 selects the kernel (0 TE, 1 MM); bit 1 is
// set when the left operand is an address; bit 0 is set when the right
// operand is an address. This reproduces spec.md §6's literal 0x00-0x07
// table without needing to special-case each value.
const (
	kindMM        = 1 << 2
	kindLeftAddr  = 1 << 1
	kindRightAddr = 1 << 0
)

// Emit drains plan in fetch_ready/set_done batches, as exec.Run does,
// writing each instruction's wire-format record to w instead of
// computing it. ctx is checked between batches, matching exec.Run's
// cancellation idiom.
func Emit(ctx context.Context, w io.Writer, plan *schedule.Plan) error {
	bw := bufio.NewWriter(w)
	for !plan.IsEmpty() {
		if err := ctx.Err(); err != nil {
			return err
		}
		batch := plan.FetchReady()
		done := make([]int, 0, len(batch))
		for _, instr := range batch {
			if err := writeInstruction(bw, instr); err != nil {
				return err
			}
			done = append(done, instr.ID)
		}
		plan.SetDone(done)
	}
	return bw.Flush()
}

func writeInstruction(w *bufio.Writer, instr *schedule.Instruction) error {
	if err := binary.Write(w, binary.LittleEndian, uint32(instr.ID)); err != nil {
		return err
	}
	if err := w.WriteByte(recordKind(instr)); err != nil {
		return err
	}

	rightFormat := instr.LeftFormat
	if instr.Kernel == lower.MM {
		rightFormat = inverse(instr.LeftFormat)
	}
	if err := writeOperand(w, instr.Left, instr.LeftFormat); err != nil {
		return err
	}
	return writeOperand(w, instr.Right, rightFormat)
}

func recordKind(instr *schedule.Instruction) byte {
	var b byte
	if instr.Kernel == lower.MM {
		b |= kindMM
	}
	if instr.Left.Kind == schedule.OperandAddress {
		b |= kindLeftAddr
	}
	if instr.Right.Kind == schedule.OperandAddress {
		b |= kindRightAddr
	}
	return b
}

func inverse(f schedule.Format) schedule.Format {
	if f == schedule.RowMajor {
		return schedule.ColumnMajor
	}
	return schedule.RowMajor
}

func writeOperand(w *bufio.Writer, op schedule.Operand, format schedule.Format) error {
	if op.Kind == schedule.OperandAddress {
		return binary.Write(w, binary.LittleEndian, uint32(op.Address))
	}
	return writeBlock(w, op.Block, format)
}

type coo struct {
	row, col uint32
	re, im   float64
}

func writeBlock(w *bufio.Writer, block schedule.Block, format schedule.Format) error {
	m, rank := materialize(block)
	dim := 1 << rank

	entries := make([]coo, 0)
	for i := 0; i < dim; i++ {
		for j := 0; j < dim; j++ {
			v := m.At(i, j)
			if cmplx.Abs(v) < nonZeroThreshold {
				continue
			}
			entries = append(entries, coo{uint32(i), uint32(j), real(v), imag(v)})
		}
	}

	if err := binary.Write(w, binary.LittleEndian, uint32(len(entries))); err != nil {
		return err
	}
	if err := w.WriteByte(byte(rank)); err != nil {
		return err
	}
	if err := w.WriteByte(byte(format)); err != nil {
		return err
	}
	for _, e := range entries {
		if err := binary.Write(w, binary.LittleEndian, e.row); err != nil {
			return err
		}
		if err := binary.Write(w, binary.LittleEndian, e.col); err != nil {
			return err
		}
		if err := binary.Write(w, binary.LittleEndian, e.re); err != nil {
			return err
		}
		if err := binary.Write(w, binary.LittleEndian, e.im); err != nil {
			return err
		}
	}
	return nil
}

func materialize(block schedule.Block) (*mat.CDense, int) {
	if block.Gate != nil {
		return block.Gate.Matrix(), block.Gate.Rank()
	}
	return exec.IdentityBlock(block.IdentityWidth).CDense, block.IdentityWidth
}
