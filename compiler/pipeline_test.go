package compiler_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vanlore/qcircuit/circuit"
	"github.com/vanlore/qcircuit/compiler"
	"github.com/vanlore/qcircuit/gate"
	"github.com/vanlore/qcircuit/span"
)

func compileAndRun(t *testing.T, c *circuit.Circuit) *matrixResult {
	t.Helper()
	p := compiler.New(compiler.Options{})
	comp := p.Compile(c)
	u, err := p.Execute(context.Background(), comp)
	require.NoError(t, err)
	return &matrixResult{u: u}
}

type matrixResult struct {
	u interface {
		At(i, j int) complex128
		Dims() (int, int)
	}
}

// TestS1UniformHadamardOnFiveQubits is spec.md §8 scenario S1.
func TestS1UniformHadamardOnFiveQubits(t *testing.T) {
	c, err := circuit.New(5)
	require.NoError(t, err)
	for lane := 0; lane < 5; lane++ {
		h, _ := gate.New(gate.Hadamard, []int{lane})
		require.NoError(t, c.AddGate(h))
	}

	result := compileAndRun(t, c)
	dist := compiler.Distribution(asCDense(t, result.u), 0)
	require.Len(t, dist, 32)
	for i, p := range dist {
		assert.InDelta(t, 1.0/32.0, p, 1e-10, "basis state %d", i)
	}
}

// TestS2AdjacentInvertedCNOT is spec.md §8 scenario S2.
func TestS2AdjacentInvertedCNOT(t *testing.T) {
	c, err := circuit.New(2)
	require.NoError(t, err)
	addAll(t, c,
		mustGate(gate.New(gate.Hadamard, []int{0})),
		mustGate(gate.New(gate.Hadamard, []int{1})),
		mustGate(gate.New(gate.CX, []int{0, 1})),
		mustGate(gate.New(gate.Hadamard, []int{0})),
		mustGate(gate.New(gate.Hadamard, []int{1})),
	)

	result := compileAndRun(t, c)
	reversed, err := gate.New(gate.CX, []int{1, 0})
	require.NoError(t, err)
	assertMatricesClose(t, reversed.Matrix(), asCDense(t, result.u))
}

// TestS3NonAdjacentCNOT is spec.md §8 scenario S3 — the scenario that
// specifically requires gate.Embed's interior-identity fix.
func TestS3NonAdjacentCNOT(t *testing.T) {
	c, err := circuit.New(3)
	require.NoError(t, err)
	addAll(t, c,
		mustGate(gate.New(gate.Hadamard, []int{0})),
		mustGate(gate.New(gate.Hadamard, []int{2})),
		mustGate(gate.New(gate.CX, []int{0, 2})),
		mustGate(gate.New(gate.Hadamard, []int{0})),
		mustGate(gate.New(gate.Hadamard, []int{2})),
	)

	result := compileAndRun(t, c)

	reversed, err := gate.New(gate.CX, []int{2, 0})
	require.NoError(t, err)
	full, err := span.New(0, 1, 2)
	require.NoError(t, err)
	want := gate.Embed(reversed.Matrix(), []int{0, 2}, full)
	assertMatricesClose(t, want, asCDense(t, result.u))
}

// TestS4SWAPSquaredIsIdentity is spec.md §8 scenario S4.
func TestS4SWAPSquaredIsIdentity(t *testing.T) {
	c, err := circuit.New(2)
	require.NoError(t, err)
	for i := 0; i < 4; i++ {
		swap, _ := gate.New(gate.SWAP, []int{0, 1})
		require.NoError(t, c.AddGate(swap))
	}

	result := compileAndRun(t, c)
	rows, cols := result.u.Dims()
	require.Equal(t, 4, rows)
	require.Equal(t, 4, cols)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			want := complex(0, 0)
			if i == j {
				want = complex(1, 0)
			}
			assert.InDelta(t, real(want), real(result.u.At(i, j)), 1e-9)
			assert.InDelta(t, imag(want), imag(result.u.At(i, j)), 1e-9)
		}
	}
}

// TestS5FullAdder is spec.md §8 scenario S5. FullAdder's internal gates
// (CX(0,2), Toffoli(0,2,3)) are non-adjacent, so this also exercises
// gate.Embed end to end through the scheduler and executor.
func TestS5FullAdder(t *testing.T) {
	c := circuit.FullAdder()
	result := compileAndRun(t, c)
	u := asCDense(t, result.u)

	for a := 0; a < 2; a++ {
		for b := 0; b < 2; b++ {
			for cin := 0; cin < 2; cin++ {
				input := a<<3 | b<<2 | cin<<1 | 0
				sum := a ^ b ^ cin
				cout := majority(a, b, cin)
				want := a<<3 | b<<2 | sum<<1 | cout

				dist := compiler.Distribution(u, input)
				for i, p := range dist {
					if i == want {
						assert.InDelta(t, 1.0, p, 1e-10, "a=%d b=%d cin=%d", a, b, cin)
					} else {
						assert.InDelta(t, 0.0, p, 1e-10, "a=%d b=%d cin=%d leaking into %d", a, b, cin, i)
					}
				}
			}
		}
	}
}

// TestS6QuantumFourierTransform is spec.md §8 scenario S6.
func TestS6QuantumFourierTransform(t *testing.T) {
	for _, n := range []int{1, 2, 3, 4} {
		qft := circuit.QFT(n)
		result := compileAndRun(t, qft)
		u := asCDense(t, result.u)

		dist := compiler.Distribution(u, 0)
		want := 1.0 / math.Pow(2, float64(n))
		for i, p := range dist {
			assert.InDelta(t, want, p, 1e-9, "n=%d basis %d", n, i)
		}

		combined, err := circuit.New(n)
		require.NoError(t, err)
		for _, g := range qft.Gates() {
			require.NoError(t, combined.AddGate(g))
		}
		for _, g := range qft.Adjoint().Gates() {
			require.NoError(t, combined.AddGate(g))
		}
		roundTrip := compileAndRun(t, combined)
		rtU := asCDense(t, roundTrip.u)
		dim := 1 << n
		for i := 0; i < dim; i++ {
			for j := 0; j < dim; j++ {
				want := complex(0, 0)
				if i == j {
					want = complex(1, 0)
				}
				assert.InDelta(t, real(want), real(rtU.At(i, j)), 1e-9, "n=%d (%d,%d)", n, i, j)
				assert.InDelta(t, imag(want), imag(rtU.At(i, j)), 1e-9, "n=%d (%d,%d)", n, i, j)
			}
		}
	}
}

func majority(a, b, c int) int {
	count := a + b + c
	if count >= 2 {
		return 1
	}
	return 0
}

func addAll(t *testing.T, c *circuit.Circuit, gates ...gate.Gate) {
	t.Helper()
	for _, g := range gates {
		require.NoError(t, c.AddGate(g))
	}
}

func mustGate(g gate.Gate, err error) gate.Gate {
	if err != nil {
		panic(err)
	}
	return g
}

func asCDense(t *testing.T, m interface {
	At(i, j int) complex128
	Dims() (int, int)
}) *denseAdapter {
	t.Helper()
	return &denseAdapter{m}
}

type denseAdapter struct {
	m interface {
		At(i, j int) complex128
		Dims() (int, int)
	}
}

func (d *denseAdapter) At(i, j int) complex128 { return d.m.At(i, j) }
func (d *denseAdapter) Dims() (int, int)       { return d.m.Dims() }

func assertMatricesClose(t *testing.T, want interface{ At(i, j int) complex128 }, got *denseAdapter) {
	t.Helper()
	rows, cols := got.Dims()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			assert.InDelta(t, real(want.At(i, j)), real(got.At(i, j)), 1e-9, "at (%d,%d)", i, j)
			assert.InDelta(t, imag(want.At(i, j)), imag(got.At(i, j)), 1e-9, "at (%d,%d)", i, j)
		}
	}
}
