package contract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vanlore/qcircuit/circuit"
	"github.com/vanlore/qcircuit/gate"
	"github.com/vanlore/qcircuit/tensor"
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

func TestContractFusesTwoLeavesOnSharedLane(t *testing.T) {
	h0, _ := gate.New(gate.Hadamard, []int{0})
	h0b, _ := gate.New(gate.Hadamard, []int{0})
	c := mustCircuit(t, 1, h0, h0b)

	net := tensor.Build(c)
	result := Contract(net)

	require.Len(t, result, 1)
	root := result[0]
	assert.False(t, root.IsLeaf())
	assert.Equal(t, []int{0}, []int(root.Span))
	assert.Equal(t, 0, root.Left.ID)
	assert.Equal(t, 1, root.Right.ID)
}

func TestContractLeavesIndependentNodesUnfused(t *testing.T) {
	x0, _ := gate.New(gate.PauliX, []int{0})
	x1, _ := gate.New(gate.PauliX, []int{1})
	c := mustCircuit(t, 2, x0, x1)

	net := tensor.Build(c)
	result := Contract(net)

	require.Len(t, result, 2)
	for _, n := range result {
		assert.True(t, n.IsLeaf())
	}
}

// TestTieBreakOrder pins the §9 open question: among equal-rank
// contractible edges, the maximal independent set is selected in
// (lower source id, then lower target id) order. Three gates chained
// on a single lane produce edges (0,1) and (1,2) at the same rank; the
// pinned order fuses (0,1) first, so the final tree's root is
// ((0,1), 2), not (0, (1,2)).
func TestTieBreakOrder(t *testing.T) {
	x0, _ := gate.New(gate.PauliX, []int{0})
	x1, _ := gate.New(gate.PauliX, []int{0})
	x2, _ := gate.New(gate.PauliX, []int{0})
	c := mustCircuit(t, 1, x0, x1, x2)

	net := tensor.Build(c)
	result := Contract(net)

	require.Len(t, result, 1)
	root := result[0]
	require.NotNil(t, root.Left)
	require.NotNil(t, root.Right)

	assert.Equal(t, 2, root.Right.ID, "second fusion pairs the (0,1) node with leaf 2")
	require.False(t, root.Left.IsLeaf())
	assert.Equal(t, 0, root.Left.Left.ID)
	assert.Equal(t, 1, root.Left.Right.ID)
}
