package wire

import (
	"encoding/binary"
	"errors"
	"io"

	"github.com/vanlore/qcircuit/lower"
	"github.com/vanlore/qcircuit/schedule"
)

// Entry is one non-zero COO entry of a decoded block.
type Entry struct {
	Row, Col uint32
	Real     float64
	Imag     float64
}

// Operand is a decoded instruction operand: either an Address or a
// sparse block with its recorded rank and serialisation Format.
type Operand struct {
	Kind    schedule.OperandKind
	Address int
	Rank    int
	Format  schedule.Format
	Entries []Entry
}

// Instruction is one decoded wire record.
type Instruction struct {
	ID     int
	Kernel lower.Kind
	Left   Operand
	Right  Operand
}

// ReadAll decodes every record in r until io.EOF, in the order they
// were written. Input that ends partway through a record yields
// ErrTruncated; any other read error is returned unchanged.
func ReadAll(r io.Reader) ([]Instruction, error) {
	var out []Instruction
	for {
		instr, err := readInstruction(r)
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, err
		}
		out = append(out, instr)
	}
}

func readInstruction(r io.Reader) (Instruction, error) {
	var id uint32
	if err := binary.Read(r, binary.LittleEndian, &id); err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return Instruction{}, ErrTruncated
		}
		return Instruction{}, err // io.EOF here is a clean end of stream.
	}

	var kindByte byte
	if err := readByte(r, &kindByte); err != nil {
		return Instruction{}, err
	}

	kernel := lower.TE
	if kindByte&kindMM != 0 {
		kernel = lower.MM
	}
	leftIsAddr := kindByte&kindLeftAddr != 0
	rightIsAddr := kindByte&kindRightAddr != 0

	left, err := readOperand(r, leftIsAddr)
	if err != nil {
		return Instruction{}, err
	}
	right, err := readOperand(r, rightIsAddr)
	if err != nil {
		return Instruction{}, err
	}

	return Instruction{ID: int(id), Kernel: kernel, Left: left, Right: right}, nil
}

func readOperand(r io.Reader, isAddress bool) (Operand, error) {
	if isAddress {
		var addr uint32
		if err := binary.Read(r, binary.LittleEndian, &addr); err != nil {
			return Operand{}, wrapTruncated(err)
		}
		return Operand{Kind: schedule.OperandAddress, Address: int(addr)}, nil
	}

	var count uint32
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return Operand{}, wrapTruncated(err)
	}
	var rankByte, formatByte byte
	if err := readByte(r, &rankByte); err != nil {
		return Operand{}, err
	}
	if err := readByte(r, &formatByte); err != nil {
		return Operand{}, err
	}

	entries := make([]Entry, 0, count)
	for i := uint32(0); i < count; i++ {
		var e Entry
		if err := binary.Read(r, binary.LittleEndian, &e.Row); err != nil {
			return Operand{}, wrapTruncated(err)
		}
		if err := binary.Read(r, binary.LittleEndian, &e.Col); err != nil {
			return Operand{}, wrapTruncated(err)
		}
		if err := binary.Read(r, binary.LittleEndian, &e.Real); err != nil {
			return Operand{}, wrapTruncated(err)
		}
		if err := binary.Read(r, binary.LittleEndian, &e.Imag); err != nil {
			return Operand{}, wrapTruncated(err)
		}
		entries = append(entries, e)
	}

	return Operand{
		Kind:    schedule.OperandBlock,
		Rank:    int(rankByte),
		Format:  schedule.Format(formatByte),
		Entries: entries,
	}, nil
}

func readByte(r io.Reader, b *byte) error {
	buf := make([]byte, 1)
	if _, err := io.ReadFull(r, buf); err != nil {
		return wrapTruncated(err)
	}
	*b = buf[0]
	return nil
}

func wrapTruncated(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return ErrTruncated
	}
	return err
}
