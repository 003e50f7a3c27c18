package succinct_test

import (
	"testing"

	"github.com/katalvlaran/seqgraph/bta"
	"github.com/katalvlaran/seqgraph/dynamic"
	"github.com/katalvlaran/seqgraph/succinct"
	"github.com/stretchr/testify/require"
)

func TestEdgePropsOverlapViaTopologyPadSlot(t *testing.T) {
	dt := dynamic.NewTopology()
	id1, err := dt.AddNode(bta.NoNode)
	require.NoError(t, err)
	id2, err := dt.AddNode(bta.NoNode)
	require.NoError(t, err)
	require.NoError(t, dt.AddEdge(bta.EndSide(id1), bta.StartSide(id2)))

	st := succinct.BuildTopology(dt)
	ep := succinct.NewEdgeProps(st)

	st1 := st.RankToID(dt.IDToRank(id1))
	st2 := st.RankToID(dt.IDToRank(id2))

	_, ok := ep.Overlap(bta.EndSide(st1), bta.StartSide(st2))
	require.True(t, ok)
	require.True(t, st.SetEdgeOverlap(bta.EndSide(st1), bta.StartSide(st2), 42))

	overlap, ok := ep.Overlap(bta.EndSide(st1), bta.StartSide(st2))
	require.True(t, ok)
	require.Equal(t, uint64(42), overlap)
}

func TestEdgePropsOverlapMissingEdge(t *testing.T) {
	dt := dynamic.NewTopology()
	id1, err := dt.AddNode(bta.NoNode)
	require.NoError(t, err)
	id2, err := dt.AddNode(bta.NoNode)
	require.NoError(t, err)

	st := succinct.BuildTopology(dt)
	ep := succinct.NewEdgeProps(st)

	st1 := st.RankToID(dt.IDToRank(id1))
	st2 := st.RankToID(dt.IDToRank(id2))

	_, ok := ep.Overlap(bta.EndSide(st1), bta.StartSide(st2))
	require.False(t, ok)
}
