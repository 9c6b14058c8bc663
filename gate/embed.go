package gate

import (
	"sort"

	"github.com/vanlore/qcircuit/span"
	"gonum.org/v1/gonum/mat"
)

// Embed re-expresses m — a 2^len(lanes) x 2^len(lanes) matrix in the
// basis order of the ascending sort of lanes, exactly Matrix()'s own
// convention — as a matrix over the full contiguous target span,
// inserting an identity factor for every lane target holds that lanes
// does not touch.
//
// This generalises permuteToSortedLanes from pure reordering to also
// accommodate spectator lanes strictly between the touched ones: a gate
// whose own lanes are not contiguous (a control and target with other
// lanes in between) cannot serve as an operand alongside a sibling
// padded up to a shared target span until its own gaps are filled in,
// and that filling is not expressible as a left/right identity pad
// around the compact matrix the way a merely-narrower child is.
func Embed(m *mat.CDense, lanes []int, target span.Span) *mat.CDense {
	sorted := append([]int(nil), lanes...)
	sort.Ints(sorted)

	touchedBit := make(map[int]int, len(sorted))
	for i, lane := range sorted {
		touchedBit[lane] = i
	}

	width := len(target)
	rank := len(sorted)
	dim := 1 << width
	out := mat.NewCDense(dim, dim, nil)
	for row := 0; row < dim; row++ {
		for col := 0; col < dim; col++ {
			mRow, mCol, ok := projectEmbedded(row, col, width, rank, target, touchedBit)
			if !ok {
				continue
			}
			if v := m.At(mRow, mCol); v != 0 {
				out.Set(row, col, v)
			}
		}
	}
	return out
}

// projectEmbedded maps one (row, col) pair of the embedded dim x dim
// matrix back to the compact operand's (mRow, mCol), or reports ok=false
// when row and col disagree on a spectator lane — off the identity
// block diagonal, hence zero.
func projectEmbedded(row, col, width, rank int, target span.Span, touchedBit map[int]int) (int, int, bool) {
	mRow, mCol := 0, 0
	for bitPos, lane := range target {
		shift := width - 1 - bitPos
		rBit := (row >> shift) & 1
		cBit := (col >> shift) & 1
		tb, touched := touchedBit[lane]
		if !touched {
			if rBit != cBit {
				return 0, 0, false
			}
			continue
		}
		laneShift := rank - 1 - tb
		if rBit == 1 {
			mRow |= 1 << laneShift
		}
		if cBit == 1 {
			mCol |= 1 << laneShift
		}
	}
	return mRow, mCol, true
}
