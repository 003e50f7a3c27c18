package dynamic_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/seqgraph/bta"
	"github.com/katalvlaran/seqgraph/dynamic"
)

func TestPathPropsAddAndExtend(t *testing.T) {
	pp := dynamic.NewPathProps()
	id := pp.AddPath("p1")
	require.True(t, pp.HasPath(id))

	require.True(t, pp.ExtendPath(id, 1, false))
	require.True(t, pp.ExtendPath(id, 2, true))
	require.Equal(t, 2, pp.Length(id))

	path, ok := pp.Path(id)
	require.True(t, ok)
	require.Equal(t, "p1", path.Name)
	require.Equal(t, bta.NodeId(1), path.Steps[0].ID())
	require.False(t, path.Steps[0].IsReverse())
	require.Equal(t, bta.NodeId(2), path.Steps[1].ID())
	require.True(t, path.Steps[1].IsReverse())
}

func TestPathPropsExtendMissingPath(t *testing.T) {
	pp := dynamic.NewPathProps()
	require.False(t, pp.ExtendPath(99, 1, false))
}

func TestPathPropsExtendPathMany(t *testing.T) {
	pp := dynamic.NewPathProps()
	id := pp.AddPath("p1")

	ok := pp.ExtendPathMany(id, []bta.NodeId{1, 2, 3}, []bool{false, true, false})
	require.True(t, ok)
	require.Equal(t, 3, pp.Length(id))
}

func TestPathPropsFlipOrientation(t *testing.T) {
	pp := dynamic.NewPathProps()
	id := pp.AddPath("p1")
	pp.ExtendPath(id, 1, false)
	pp.ExtendPath(id, 2, false)
	pp.ExtendPath(id, 1, true)

	pp.FlipOrientationOne(1)

	path, _ := pp.Path(id)
	require.True(t, path.Steps[0].IsReverse())
	require.False(t, path.Steps[1].IsReverse()) // node 2 untouched
	require.False(t, path.Steps[2].IsReverse())  // was reverse, now toggled back
}

func TestPathPropsForEachPathHalts(t *testing.T) {
	pp := dynamic.NewPathProps()
	pp.AddPath("a")
	pp.AddPath("b")

	var names []string
	ok := pp.ForEachPath(func(p dynamic.Path) bool {
		names = append(names, p.Name)
		return false
	})
	require.False(t, ok)
	require.Equal(t, []string{"a"}, names)
}

func TestPathPropsClear(t *testing.T) {
	pp := dynamic.NewPathProps()
	pp.AddPath("a")
	pp.Clear()
	require.Equal(t, 0, pp.Count())
}
