package dynamic_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/seqgraph/bta"
	"github.com/katalvlaran/seqgraph/dynamic"
)

func TestEdgePropsSetGetDelete(t *testing.T) {
	ep := dynamic.NewEdgeProps()
	link := bta.MakeLink(bta.EndSide(1), bta.StartSide(2))

	_, ok := ep.Get(link)
	require.False(t, ok)

	ep.Set(link, dynamic.EdgePayload{Overlap: 5})
	got, ok := ep.Get(link)
	require.True(t, ok)
	require.Equal(t, uint64(5), got.Overlap)
	require.Equal(t, 1, ep.Len())

	ep.Delete(link)
	_, ok = ep.Get(link)
	require.False(t, ok)
	require.Equal(t, 0, ep.Len())
}

func TestEdgePropsChangeEdgeMove(t *testing.T) {
	ep := dynamic.NewEdgeProps()
	oldLink := bta.MakeLink(bta.EndSide(1), bta.StartSide(2))
	newLink := bta.MakeLink(bta.StartSide(2), bta.EndSide(1))

	ep.Set(oldLink, dynamic.EdgePayload{Overlap: 7})
	ok := ep.ChangeEdge(oldLink, newLink, true)
	require.True(t, ok)

	_, ok = ep.Get(oldLink)
	require.False(t, ok)
	got, ok := ep.Get(newLink)
	require.True(t, ok)
	require.Equal(t, uint64(7), got.Overlap)
}

func TestEdgePropsChangeEdgeSwap(t *testing.T) {
	ep := dynamic.NewEdgeProps()
	a := bta.MakeLink(bta.EndSide(1), bta.StartSide(2))
	b := bta.MakeLink(bta.EndSide(2), bta.StartSide(3))

	ep.Set(a, dynamic.EdgePayload{Overlap: 1})
	ep.Set(b, dynamic.EdgePayload{Overlap: 2})

	ok := ep.ChangeEdge(a, b, true)
	require.True(t, ok)

	gotA, _ := ep.Get(a)
	gotB, _ := ep.Get(b)
	require.Equal(t, uint64(2), gotA.Overlap)
	require.Equal(t, uint64(1), gotB.Overlap)
}

func TestEdgePropsChangeEdgeMissing(t *testing.T) {
	ep := dynamic.NewEdgeProps()
	a := bta.MakeLink(bta.EndSide(1), bta.StartSide(2))
	b := bta.MakeLink(bta.EndSide(2), bta.StartSide(3))

	ok := ep.ChangeEdge(a, b, true)
	require.False(t, ok)
}

func TestEdgePropsClear(t *testing.T) {
	ep := dynamic.NewEdgeProps()
	ep.Set(bta.MakeLink(bta.EndSide(1), bta.StartSide(2)), dynamic.EdgePayload{Overlap: 1})
	ep.Clear()
	require.Equal(t, 0, ep.Len())
}
