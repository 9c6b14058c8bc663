package span

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValidates(t *testing.T) {
	_, err := New(0, 2, 1)
	assert.ErrorIs(t, err, ErrNotAscending)

	_, err = New(-1, 0)
	assert.ErrorIs(t, err, ErrNegativeLane)

	s, err := New(0, 3)
	require.NoError(t, err)
	assert.Equal(t, Span{0, 3}, s)
}

func TestFilled(t *testing.T) {
	s, err := New(0, 3)
	require.NoError(t, err)

	f := s.Filled()
	assert.Equal(t, Span{0, 1, 2, 3}, f)

	// Filled(Filled(s)) == Filled(s).
	assert.Equal(t, f, f.Filled())
}

func TestUnionIntersectionExclude(t *testing.T) {
	a, _ := New(0, 2, 4)
	b, _ := New(1, 2, 3)

	assert.Equal(t, Span{0, 1, 2, 3, 4}, Union(a, b))
	assert.Equal(t, Span{2}, Intersection(a, b))
	assert.Equal(t, Span{0, 4}, Exclude(a, b))

	// Algebraic identities from spec §8 invariant 2.
	assert.True(t, Equal(Union(a, nil), a))
	assert.True(t, Equal(Intersection(a, a), a))
	assert.Empty(t, Exclude(a, a))
}

func TestContains(t *testing.T) {
	s, _ := New(0, 3, 7)
	assert.True(t, s.Contains(3))
	assert.False(t, s.Contains(4))
	assert.False(t, Span{}.Contains(0))
}

func TestStartEndPanicOnEmpty(t *testing.T) {
	assert.Panics(t, func() { Span{}.Start() })
	assert.Panics(t, func() { Span{}.End() })
}
