package schedule_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vanlore/qcircuit/circuit"
	"github.com/vanlore/qcircuit/contract"
	"github.com/vanlore/qcircuit/gate"
	"github.com/vanlore/qcircuit/lower"
	"github.com/vanlore/qcircuit/schedule"
	"github.com/vanlore/qcircuit/tensor"
)

func buildPlan(t *testing.T) *schedule.Plan {
	t.Helper()
	c, err := circuit.New(4)
	require.NoError(t, err)
	h0, _ := gate.New(gate.Hadamard, []int{0})
	cx, _ := gate.New(gate.CX, []int{0, 3})
	require.NoError(t, c.AddGate(h0))
	require.NoError(t, c.AddGate(cx))

	net := tensor.Build(c)
	roots := contract.Contract(net)
	require.Len(t, roots, 1)

	op := lower.Lower(roots[0])
	return schedule.Build(op, schedule.Options{})
}

func TestBuildProducesAcyclicDependencies(t *testing.T) {
	plan := buildPlan(t)
	assert.False(t, plan.IsEmpty())

	// H wrapped in a right-identity TE produces one TE instruction (id
	// 0) and the root MM depending on it (id 1).
	require.Equal(t, 2, plan.Len())

	te, ok := plan.Instruction(0)
	require.True(t, ok)
	assert.Equal(t, lower.TE, te.Kernel)
	assert.Empty(t, te.Dependencies)

	mm, ok := plan.Instruction(1)
	require.True(t, ok)
	assert.Equal(t, lower.MM, mm.Kernel)
	assert.Equal(t, []int{0}, mm.Dependencies)
}

func TestFetchReadySetDoneDrainsThePlan(t *testing.T) {
	plan := buildPlan(t)

	first := plan.FetchReady()
	require.Len(t, first, 1)
	assert.Equal(t, 0, first[0].ID)

	plan.SetDone([]int{0})
	assert.False(t, plan.IsEmpty())

	second := plan.FetchReady()
	require.Len(t, second, 1)
	assert.Equal(t, 1, second[0].ID)

	plan.SetDone([]int{1})
	assert.True(t, plan.IsEmpty())
}

func TestSetDonePanicsOnUnmetDependencies(t *testing.T) {
	plan := buildPlan(t)
	assert.PanicsWithValue(t, schedule.ErrNotReady, func() {
		plan.SetDone([]int{1})
	})
}
