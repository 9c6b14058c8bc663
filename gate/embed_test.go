package gate

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vanlore/qcircuit/span"
)

// TestEmbedInsertsSpectatorIdentityBetweenTouchedLanes exercises the
// S3 shape directly at the matrix level: a CX whose control and target
// are not adjacent must, once embedded over the lanes between them,
// behave as the identity on the spectator and as CX on the other two.
func TestEmbedInsertsSpectatorIdentityBetweenTouchedLanes(t *testing.T) {
	g, err := New(CX, []int{0, 2})
	require.NoError(t, err)

	target, err := span.New(0, 1, 2)
	require.NoError(t, err)

	embedded := Embed(g.Matrix(), g.Lanes, target)
	rows, cols := embedded.Dims()
	require.Equal(t, 8, rows)
	require.Equal(t, 8, cols)

	// basis index = q0*4 + q1*2 + q2; CX(control=q0, target=q2) flips
	// q2 exactly when q0 == 1, leaving the spectator q1 untouched.
	permutation := map[int]int{
		0: 0, 1: 1, 2: 2, 3: 3,
		4: 5, 5: 4, 6: 7, 7: 6,
	}
	for source, want := range permutation {
		for row := 0; row < 8; row++ {
			got := embedded.At(row, source)
			if row == want {
				require.Equal(t, complex(1, 0), got, "basis %d should map to %d", source, want)
			} else {
				require.Equal(t, complex(0, 0), got, "basis %d should not map to %d", source, row)
			}
		}
	}
}

func TestEmbedIsIdentityWhenAlreadyContiguous(t *testing.T) {
	g, err := New(Hadamard, []int{1})
	require.NoError(t, err)

	target, err := span.New(1)
	require.NoError(t, err)

	embedded := Embed(g.Matrix(), g.Lanes, target)
	want := g.Matrix()
	rows, cols := embedded.Dims()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			require.Equal(t, want.At(i, j), embedded.At(i, j))
		}
	}
}
