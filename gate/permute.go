package gate

import (
	"sort"

	"gonum.org/v1/gonum/mat"
)

// permuteToSortedLanes re-expresses m — whose basis order assumes
// lanes[0] is the most significant bit and lanes[len(lanes)-1] the
// least — in the basis order of the ascending sort of lanes.
func permuteToSortedLanes(m *mat.CDense, lanes []int) *mat.CDense {
	rank := len(lanes)
	sorted := append([]int(nil), lanes...)
	sort.Ints(sorted)

	if isSorted(lanes) {
		return m
	}

	// positionInSorted[i] is the bit position (0 = MSB) that declared
	// lane i occupies once lanes are sorted ascending.
	positionInSorted := make([]int, rank)
	for i, lane := range lanes {
		for p, s := range sorted {
			if s == lane {
				positionInSorted[i] = p
				break
			}
		}
	}

	dim := 1 << rank
	permuted := mat.NewCDense(dim, dim, nil)
	for row := 0; row < dim; row++ {
		newRow := permuteIndex(row, rank, positionInSorted)
		for col := 0; col < dim; col++ {
			newCol := permuteIndex(col, rank, positionInSorted)
			permuted.Set(newRow, newCol, m.At(row, col))
		}
	}
	return permuted
}

// permuteIndex reinterprets the rank-bit binary expansion of idx (bit 0
// is the most significant) by moving the bit at declared position i to
// sorted position positionInSorted[i].
func permuteIndex(idx, rank int, positionInSorted []int) int {
	out := 0
	for i := 0; i < rank; i++ {
		shift := rank - 1 - i
		bit := (idx >> shift) & 1
		if bit == 1 {
			newShift := rank - 1 - positionInSorted[i]
			out |= 1 << newShift
		}
	}
	return out
}

func isSorted(lanes []int) bool {
	for i := 1; i < len(lanes); i++ {
		if lanes[i-1] > lanes[i] {
			return false
		}
	}
	return true
}
