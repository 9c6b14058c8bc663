package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vanlore/qcircuit/circuit"
	"github.com/vanlore/qcircuit/gate"
)

func mustCircuit(t *testing.T, n int, gates ...gate.Gate) *circuit.Circuit {
	t.Helper()
	c, err := circuit.New(n)
	require.NoError(t, err)
	for _, g := range gates {
		require.NoError(t, c.AddGate(g))
	}
	return c
}

func TestBuildChainsGatesSharingALane(t *testing.T) {
	h0, _ := gate.New(gate.Hadamard, []int{0})
	h0b, _ := gate.New(gate.Hadamard, []int{0})
	c := mustCircuit(t, 1, h0, h0b)

	net := Build(c)
	require.Equal(t, 2, net.NodeCount())

	edges := net.Edges()
	require.Len(t, edges, 1)
	assert.Equal(t, 0, edges[0].From)
	assert.Equal(t, 1, edges[0].To)
	assert.Equal(t, []int{0}, []int(edges[0].Weight))
}

func TestBuildEdgeWeightCarriesFilledSpan(t *testing.T) {
	// CX(0,3) touches filled span {0,1,2,3}; a later gate on lane 1 must
	// depend on it even though lane 1 is not in CX's sparse span.
	cx, _ := gate.New(gate.CX, []int{0, 3})
	x1, _ := gate.New(gate.PauliX, []int{1})
	c := mustCircuit(t, 4, cx, x1)

	net := Build(c)
	edges := net.Edges()
	require.Len(t, edges, 1)
	assert.Equal(t, []int{1}, []int(edges[0].Weight))
}

func TestBuildIndependentGatesHaveNoEdge(t *testing.T) {
	x0, _ := gate.New(gate.PauliX, []int{0})
	x1, _ := gate.New(gate.PauliX, []int{1})
	c := mustCircuit(t, 2, x0, x1)

	net := Build(c)
	assert.Empty(t, net.Edges())
	assert.Equal(t, 2, net.NodeCount())
}

func TestNodeRankIsFilledSpanLength(t *testing.T) {
	cx, _ := gate.New(gate.CX, []int{0, 3})
	c := mustCircuit(t, 4, cx)
	net := Build(c)

	n, ok := net.Node(0)
	require.True(t, ok)
	assert.Equal(t, 4, n.Rank())
	assert.True(t, n.IsLeaf())
}
