package compiler

import "gonum.org/v1/gonum/mat"

// Distribution returns, for every computational basis state, the
// probability of observing it after applying u to the computational
// basis state named by input (an N-bit index in u's own basis order:
// lane 0 is the most significant bit, matching gate.Matrix's
// convention). This is the column of u at index input, read as
// amplitudes and squared — the measurement model spec.md §8's
// end-to-end scenarios describe without naming a dedicated type for it.
func Distribution(u *mat.CDense, input int) []float64 {
	rows, _ := u.Dims()
	out := make([]float64, rows)
	for row := 0; row < rows; row++ {
		amp := u.At(row, input)
		out[row] = real(amp)*real(amp) + imag(amp)*imag(amp)
	}
	return out
}
