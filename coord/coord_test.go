package coord_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/seqgraph/coord"
)

func TestIdentity(t *testing.T) {
	var m coord.Identity
	m.Insert(5, 99) // no-op
	require.Equal(t, uint64(5), m.Lookup(5))
	require.True(t, m.Has(5))
	require.True(t, m.Has(0))
}

func TestDense(t *testing.T) {
	d := coord.NewDense()
	require.False(t, d.Has(3))
	require.Equal(t, uint64(0), d.Lookup(3))

	d.Insert(3, 30)
	d.Insert(0, 10)

	require.True(t, d.Has(3))
	require.Equal(t, uint64(30), d.Lookup(3))
	require.Equal(t, uint64(10), d.Lookup(0))
	require.False(t, d.Has(7))
}

func TestSparse(t *testing.T) {
	s := coord.NewSparse()
	require.False(t, s.Has(1_000_000))

	s.Insert(1_000_000, 1)
	require.True(t, s.Has(1_000_000))
	require.Equal(t, uint64(1), s.Lookup(1_000_000))
	require.Equal(t, 1, s.Len())
}
