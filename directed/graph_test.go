package directed_test

import (
	"testing"

	"github.com/katalvlaran/seqgraph/bta"
	"github.com/katalvlaran/seqgraph/directed"
	"github.com/katalvlaran/seqgraph/dynamic"
	"github.com/stretchr/testify/require"
)

func buildChain(t *testing.T) (*directed.Graph, [3]bta.NodeId) {
	t.Helper()
	g := directed.NewGraph()
	var ids [3]bta.NodeId
	for i := range ids {
		id, err := g.AddNode(dynamic.Node{Sequence: "ACGT", Name: "n"}, bta.NoNode)
		require.NoError(t, err)
		ids[i] = id
	}
	require.NoError(t, g.AddEdge(ids[0], ids[1], dynamic.EdgePayload{Overlap: 1}))
	require.NoError(t, g.AddEdge(ids[1], ids[2], dynamic.EdgePayload{Overlap: 2}))
	return g, ids
}

func TestGraphAddEdgeAndDegrees(t *testing.T) {
	g, ids := buildChain(t)

	require.True(t, g.HasEdge(ids[0], ids[1]))
	require.False(t, g.HasEdge(ids[1], ids[0]))
	require.Equal(t, 1, g.Outdegree(ids[0]))
	require.Equal(t, 0, g.Indegree(ids[0]))
	require.Equal(t, 1, g.Indegree(ids[1]))
	require.Equal(t, uint64(1), g.EdgeOverlap(ids[0], ids[1]))
	require.Equal(t, uint64(2), g.EdgeOverlap(ids[1], ids[2]))

	require.Equal(t, []bta.NodeId{ids[1]}, g.Successors(ids[0]))
	require.Equal(t, []bta.NodeId{ids[0]}, g.Predecessors(ids[1]))
}

func TestGraphAddEdgeMissingNode(t *testing.T) {
	g := directed.NewGraph()
	id, err := g.AddNode(dynamic.Node{Sequence: "A"}, bta.NoNode)
	require.NoError(t, err)
	err = g.AddEdge(id, bta.NodeId(999), dynamic.EdgePayload{})
	require.Error(t, err)
}

func TestGraphExtendPath(t *testing.T) {
	g, ids := buildChain(t)
	pid := g.AddPath("walk")
	require.NoError(t, g.ExtendPath(pid, ids[0]))
	require.NoError(t, g.ExtendPath(pid, ids[1]))
	require.Error(t, g.ExtendPath(pid, bta.NodeId(999)))
}

func TestForEachSideEmitsSingleSide(t *testing.T) {
	var sides []bta.Side
	directed.ForEachSide(bta.NodeId(5), func(s bta.Side) bool {
		sides = append(sides, s)
		return true
	})
	require.Len(t, sides, 1)
	require.Equal(t, bta.Start, sides[0].Tag)
}

func TestIsValidLinkType(t *testing.T) {
	require.True(t, directed.IsValidLinkType(bta.StartStart))
	require.False(t, directed.IsValidLinkType(bta.StartEnd))
	require.False(t, directed.IsValidLinkType(bta.EndEnd))
}

func TestGraphClear(t *testing.T) {
	g, _ := buildChain(t)
	require.True(t, g.Summary().NodeCount > 0)
	g.Clear()
	require.Equal(t, uint64(0), g.Summary().NodeCount)
}
