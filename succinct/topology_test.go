package succinct_test

import (
	"testing"

	"github.com/katalvlaran/seqgraph/bta"
	"github.com/katalvlaran/seqgraph/dynamic"
	"github.com/katalvlaran/seqgraph/succinct"
	"github.com/stretchr/testify/require"
)

// buildDynamicTriangle mirrors dynamic/seqgraph_test.go's fixture: three
// nodes, each End wired to the next node's Start, closing the loop.
func buildDynamicTriangle(t *testing.T) (*dynamic.Topology, [3]bta.NodeId) {
	t.Helper()
	dt := dynamic.NewTopology()
	var ids [3]bta.NodeId
	for i := range ids {
		id, err := dt.AddNode(bta.NoNode)
		require.NoError(t, err)
		ids[i] = id
	}
	require.NoError(t, dt.AddEdge(bta.EndSide(ids[0]), bta.StartSide(ids[1])))
	require.NoError(t, dt.AddEdge(bta.EndSide(ids[1]), bta.StartSide(ids[2])))
	require.NoError(t, dt.AddEdge(bta.EndSide(ids[2]), bta.StartSide(ids[0])))
	return dt, ids
}

func TestBuildTopologyPreservesCountsAndAdjacency(t *testing.T) {
	dt, ids := buildDynamicTriangle(t)
	st := succinct.BuildTopology(dt)

	require.Equal(t, dt.NodeCount(), st.NodeCount())
	require.Equal(t, dt.EdgeCount(), st.EdgeCount())

	st.ForEachNode(func(stID bta.NodeId) bool {
		extID := st.PayloadID(stID)
		require.True(t, dt.HasNode(extID))

		for _, tag := range []bta.SideTag{bta.Start, bta.End} {
			side := bta.Side{Node: extID, Tag: tag}
			dynOut := dt.AdjacentsOut(side)

			stSide := bta.Side{Node: stID, Tag: tag}
			stOut := st.AdjacentsOut(stSide)
			require.Equal(t, len(dynOut), len(stOut))

			for i, to := range stOut {
				require.Equal(t, dynOut[i].Tag, to.Tag)
				require.Equal(t, dynOut[i].Node, st.PayloadID(to.Node))
			}
		}
		return true
	})

	_ = ids
}

func TestBuildTopologyHasEdgeAndOverlapSlots(t *testing.T) {
	dt, ids := buildDynamicTriangle(t)
	st := succinct.BuildTopology(dt)

	rank0 := dt.IDToRank(ids[0])
	rank1 := dt.IDToRank(ids[1])
	st0 := st.RankToID(rank0)
	st1 := st.RankToID(rank1)

	require.True(t, st.HasEdge(bta.EndSide(st0), bta.StartSide(st1)))
	require.True(t, st.SetEdgeOverlap(bta.EndSide(st0), bta.StartSide(st1), 7))
	overlap, ok := st.EdgeOverlap(bta.EndSide(st0), bta.StartSide(st1))
	require.True(t, ok)
	require.Equal(t, uint64(7), overlap)
}

func TestBuildTopologySequenceBoundsRoundTrip(t *testing.T) {
	dt, ids := buildDynamicTriangle(t)
	st := succinct.BuildTopology(dt)

	rank := dt.IDToRank(ids[0])
	stID := st.RankToID(rank)
	st.SetSequenceBounds(stID, 3, 4)
	require.Equal(t, uint64(3), st.SequenceStart(stID))
	require.Equal(t, uint64(4), st.SequenceLength(stID))
}

func TestBuildTopologyEmpty(t *testing.T) {
	dt := dynamic.NewTopology()
	st := succinct.BuildTopology(dt)
	require.Equal(t, uint64(0), st.NodeCount())
	require.Equal(t, uint64(0), st.EdgeCount())
}

func TestTopologyClear(t *testing.T) {
	dt, _ := buildDynamicTriangle(t)
	st := succinct.BuildTopology(dt)
	require.True(t, st.NodeCount() > 0)
	st.Clear()
	require.Equal(t, uint64(0), st.NodeCount())
	require.Equal(t, uint64(0), st.EdgeCount())
}
