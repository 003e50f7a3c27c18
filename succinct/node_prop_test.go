package succinct_test

import (
	"testing"

	"github.com/katalvlaran/seqgraph/bta"
	"github.com/katalvlaran/seqgraph/dynamic"
	"github.com/katalvlaran/seqgraph/succinct"
	"github.com/stretchr/testify/require"
)

func TestBuildNodePropsSequenceAndNameRoundTrip(t *testing.T) {
	dt := dynamic.NewTopology()
	dnp := dynamic.NewNodeProps()

	id1, err := dt.AddNode(bta.NoNode)
	require.NoError(t, err)
	dnp.Append(dynamic.Node{Sequence: "ACGT", Name: "n1"})

	id2, err := dt.AddNode(bta.NoNode)
	require.NoError(t, err)
	dnp.Append(dynamic.Node{Sequence: "TTTTNAC", Name: "n2"})

	_ = id1
	_ = id2

	st := succinct.BuildTopology(dt)
	snp := succinct.BuildNodeProps(dnp, st)

	rank1 := dt.IDToRank(id1)
	rank2 := dt.IDToRank(id2)
	st1 := st.RankToID(rank1)
	st2 := st.RankToID(rank2)

	require.Equal(t, "ACGT", snp.Sequence(st, st1))
	require.Equal(t, "n1", snp.Name(st, st1))
	require.Equal(t, "TTTTNAC", snp.Sequence(st, st2))
	require.Equal(t, "n2", snp.Name(st, st2))
}

func TestBuildNodePropsNonDNA5BytePassesThroughAsN(t *testing.T) {
	dt := dynamic.NewTopology()
	dnp := dynamic.NewNodeProps()

	id, err := dt.AddNode(bta.NoNode)
	require.NoError(t, err)
	dnp.Append(dynamic.Node{Sequence: "AXG", Name: ""})

	st := succinct.BuildTopology(dt)
	snp := succinct.BuildNodeProps(dnp, st)

	stID := st.RankToID(dt.IDToRank(id))
	require.Equal(t, "ANG", snp.Sequence(st, stID))
}

func TestBuildNodePropsOddLengthSequencesPackCorrectly(t *testing.T) {
	dt := dynamic.NewTopology()
	dnp := dynamic.NewNodeProps()

	id1, err := dt.AddNode(bta.NoNode)
	require.NoError(t, err)
	dnp.Append(dynamic.Node{Sequence: "A", Name: ""})

	id2, err := dt.AddNode(bta.NoNode)
	require.NoError(t, err)
	dnp.Append(dynamic.Node{Sequence: "CGT", Name: ""})

	st := succinct.BuildTopology(dt)
	snp := succinct.BuildNodeProps(dnp, st)

	require.Equal(t, "A", snp.Sequence(st, st.RankToID(dt.IDToRank(id1))))
	require.Equal(t, "CGT", snp.Sequence(st, st.RankToID(dt.IDToRank(id2))))
}
