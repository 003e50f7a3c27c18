package dynamic_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/seqgraph/dynamic"
)

func TestReverseComplement(t *testing.T) {
	require.Equal(t, "TTCGA", dynamic.ReverseComplement("TCGAA"))
	require.Equal(t, "", dynamic.ReverseComplement(""))
	// non-DNA5 bytes pass through unchanged, reversed in place.
	require.Equal(t, "XA", dynamic.ReverseComplement("TX"))
}

func TestNodePropsAppendAndAt(t *testing.T) {
	np := dynamic.NewNodeProps()
	np.Append(dynamic.Node{Sequence: "ACGT", Name: "n1"})
	np.Append(dynamic.Node{Sequence: "GGCC", Name: "n2"})

	require.Equal(t, "ACGT", np.At(1).Sequence)
	require.Equal(t, "n2", np.At(2).Name)
	require.Equal(t, 2, np.Count())
	require.Equal(t, uint64(8), np.TotalSequenceLength())
	require.Equal(t, uint64(4), np.TotalNameLength())
}

func TestNodePropsSetKeepsSumsConsistent(t *testing.T) {
	np := dynamic.NewNodeProps()
	np.Append(dynamic.Node{Sequence: "AC", Name: "x"})

	np.Set(1, dynamic.Node{Sequence: "ACGTACGT", Name: "longname"})
	require.Equal(t, uint64(8), np.TotalSequenceLength())
	require.Equal(t, uint64(8), np.TotalNameLength())
}

func TestNodePropsFlipOrientation(t *testing.T) {
	np := dynamic.NewNodeProps()
	np.Append(dynamic.Node{Sequence: "ACGT", Name: "n1"})

	np.FlipOrientation(1, true)
	require.Equal(t, "ACGT", np.At(1).Sequence) // palindromic under rev-comp
	require.Equal(t, "n1-", np.At(1).Name)

	np.FlipOrientation(1, true)
	require.Equal(t, "n1", np.At(1).Name)
}

func TestNodePropsFlipOrientationNoAnnotate(t *testing.T) {
	np := dynamic.NewNodeProps()
	np.Append(dynamic.Node{Sequence: "TTAA", Name: "n1"})

	np.FlipOrientation(1, false)
	require.Equal(t, "TTAA", np.At(1).Sequence)
	require.Equal(t, "n1", np.At(1).Name)
}

func TestNodePropsClear(t *testing.T) {
	np := dynamic.NewNodeProps()
	np.Append(dynamic.Node{Sequence: "AC", Name: "x"})
	np.Clear()
	require.Equal(t, 0, np.Count())
	require.Equal(t, uint64(0), np.TotalSequenceLength())
}
