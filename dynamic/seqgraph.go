package dynamic

import (
	"github.com/katalvlaran/seqgraph/bta"
	"github.com/katalvlaran/seqgraph/seqerr"
)

// Graph is the dynamic sequence graph (spec.md §4.8): the dynamic topology
// store plus its node/edge/path property layers, composed into the single
// mutable representation callers build variation graphs against.
type Graph struct {
	Topo  *Topology
	Nodes *NodeProps
	Edges *EdgeProps
	Paths *PathProps
}

// NewGraph returns an empty dynamic sequence graph.
func NewGraph() *Graph {
	return &Graph{
		Topo:  NewTopology(),
		Nodes: NewNodeProps(),
		Edges: NewEdgeProps(),
		Paths: NewPathProps(),
	}
}

// Summary is a graph-wide metadata snapshot, supplementing spec.md with the
// GraphProp summary struct carried by the C++ original
// (graph_prop_base.hpp/graph_prop_dynamic.hpp) that the distilled spec
// omitted: a node/edge/path count independent of any single store.
type Summary struct {
	NodeCount uint64
	EdgeCount uint64
	PathCount uint64
}

// Summary returns the current node/edge/path counts.
func (g *Graph) Summary() Summary {
	return Summary{
		NodeCount: g.Topo.NodeCount(),
		EdgeCount: g.Topo.EdgeCount(),
		PathCount: uint64(g.Paths.Count()),
	}
}

// AddNode creates a node with the given sequence/name, using extID if
// non-zero or auto-assigning otherwise, and returns its NodeId.
func (g *Graph) AddNode(n Node, extID bta.NodeId) (bta.NodeId, error) {
	id, err := g.Topo.AddNode(extID)
	if err != nil {
		return bta.NoNode, err
	}
	g.Nodes.Append(n)
	return id, nil
}

// NodeSequence returns the sequence of a live node.
func (g *Graph) NodeSequence(id bta.NodeId) string {
	return g.Nodes.At(g.Topo.IDToRank(id)).Sequence
}

// NodeName returns the name of a live node.
func (g *Graph) NodeName(id bta.NodeId) string {
	return g.Nodes.At(g.Topo.IDToRank(id)).Name
}

// AddEdge creates an edge (from,to) with the given payload in safe mode
// (duplicate detection via Topology.AddEdge).
func (g *Graph) AddEdge(from, to bta.Side, payload EdgePayload) error {
	if err := g.Topo.AddEdge(from, to); err != nil {
		return err
	}
	g.Edges.Set(bta.MakeLink(from, to), payload)
	return nil
}

// AddEdgeUnsafe creates an edge (from,to) without duplicate detection, for
// bulk loaders that have already deduplicated their input.
func (g *Graph) AddEdgeUnsafe(from, to bta.Side, payload EdgePayload) {
	g.Topo.AddEdgeUnsafe(from, to)
	g.Edges.Set(bta.MakeLink(from, to), payload)
}

// EdgeOverlap returns the overlap payload for link, or 0 if untracked.
func (g *Graph) EdgeOverlap(link bta.Link) uint64 {
	p, _ := g.Edges.Get(link)
	return p.Overlap
}

// AddPath creates a new, empty path.
func (g *Graph) AddPath(name string) PathId { return g.Paths.AddPath(name) }

// ExtendPath appends one step to an existing path. The node must be live.
func (g *Graph) ExtendPath(id PathId, node bta.NodeId, reversed bool) error {
	if !g.Topo.HasNode(node) {
		return seqerr.ErrMissingNode
	}
	if !g.Paths.ExtendPath(id, node, reversed) {
		return seqerr.ErrMissingPath
	}
	return nil
}

// Clear resets every layer to empty.
func (g *Graph) Clear() {
	g.Topo.Clear()
	g.Nodes.Clear()
	g.Edges.Clear()
	g.Paths.Clear()
}

// rewriteEdgePropsForFlip moves every edge-property key touching side s to
// the key it will have once s's node is flipped, per spec.md §4.8.1 step 1.
func (g *Graph) rewriteEdgePropsForFlip(s bta.Side) {
	opp := bta.OppositeSide(s)

	for _, to := range g.Topo.AdjacentsOut(s) {
		g.Edges.ChangeEdge(bta.MakeLink(s, to), bta.MakeLink(opp, to), true)
	}
	for _, from := range g.Topo.AdjacentsIn(s) {
		g.Edges.ChangeEdge(bta.MakeLink(from, s), bta.MakeLink(from, opp), true)
	}
}

// flipNodeTopologyAndProps applies steps 1-3 of spec.md §4.8.1 (edge-property
// rewrite, sequence reverse-complement, topology flip) but NOT step 4 (path
// step toggling): callers needing the atomic single-node contract compose it
// with a path toggle themselves; NodeFlipper.Flush batches the path toggle
// across every staged node instead. Returns false if id is not a live node.
func (g *Graph) flipNodeTopologyAndProps(id bta.NodeId, annotate bool) bool {
	if !g.Topo.HasNode(id) {
		return false
	}
	rank := g.Topo.IDToRank(id)

	g.rewriteEdgePropsForFlip(bta.StartSide(id))
	g.rewriteEdgePropsForFlip(bta.EndSide(id))

	g.Nodes.FlipOrientation(rank, annotate)
	g.Topo.FlipNode(id)
	return true
}

// FlipOrientation atomically flips node id: edge-property keys, sequence
// (reverse-complement, optionally annotating the name), topology, and every
// embedded path step on id. A double flip is a no-op (spec.md §8 property 4).
// Returns false if id is not a live node.
func (g *Graph) FlipOrientation(id bta.NodeId, annotate bool) bool {
	if !g.flipNodeTopologyAndProps(id, annotate) {
		return false
	}
	g.Paths.FlipOrientationOne(id)
	return true
}

// flipEdge applies the edge-flip primitive (spec.md §4.8.3): changes stored
// edge (from,to) into (to,from), moving its edge-property payload (swapping
// it with (to,from)'s payload if swap is true and both exist). Reverts the
// topology change if the edge-property move fails. Returns false if (from,to)
// was not present.
func (g *Graph) flipEdge(from, to bta.Side, swap bool) bool {
	if !g.Topo.FlipEdge(from, to) {
		return false
	}
	if !g.Edges.ChangeEdge(bta.MakeLink(from, to), bta.MakeLink(to, from), swap) {
		g.Topo.FlipEdge(to, from) // revert
		return false
	}
	return true
}

// FlipEdge is the public, non-batched form of flipEdge.
func (g *Graph) FlipEdge(from, to bta.Side, swap bool) bool {
	return g.flipEdge(from, to, swap)
}
