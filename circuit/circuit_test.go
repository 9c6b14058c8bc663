package circuit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vanlore/qcircuit/gate"
)

func TestAddGateRejectsOutOfRangeLane(t *testing.T) {
	c, err := New(2)
	require.NoError(t, err)

	g, err := gate.New(gate.PauliX, []int{2})
	require.NoError(t, err)

	err = c.AddGate(g)
	assert.ErrorIs(t, err, ErrLaneOutOfRange)
	assert.Equal(t, 0, c.Len())
}

func TestAddGateAppendsInOrder(t *testing.T) {
	c, err := New(2)
	require.NoError(t, err)

	h, _ := gate.New(gate.Hadamard, []int{0})
	x, _ := gate.New(gate.PauliX, []int{1})
	require.NoError(t, c.AddGate(h))
	require.NoError(t, c.AddGate(x))

	gates := c.Gates()
	require.Len(t, gates, 2)
	assert.Equal(t, gate.Hadamard, gates[0].Kind)
	assert.Equal(t, gate.PauliX, gates[1].Kind)
}

func TestNewRejectsZeroLanes(t *testing.T) {
	_, err := New(0)
	assert.ErrorIs(t, err, ErrZeroLanes)
}

func TestBuildersProduceValidCircuits(t *testing.T) {
	fa := FullAdder()
	assert.Equal(t, 4, fa.Lanes())
	assert.Equal(t, 4, fa.Len())

	qft := QFT(3)
	assert.Equal(t, 3, qft.Lanes())

	ghz := GHZ(3)
	assert.Equal(t, 3, ghz.Len())
}

func TestAdjointReversesAndConjugates(t *testing.T) {
	c, err := New(1)
	require.NoError(t, err)
	s, _ := gate.New(gate.S, []int{0})
	require.NoError(t, c.AddGate(s))

	adj := c.Adjoint()
	require.Equal(t, 1, adj.Len())
	got := adj.Gates()[0].Matrix()
	// S-dagger = diag(1, -i)
	assert.Equal(t, complex(1, 0), got.At(0, 0))
	assert.InDelta(t, 0, real(got.At(1, 1)), 1e-9)
	assert.InDelta(t, -1, imag(got.At(1, 1)), 1e-9)
}
