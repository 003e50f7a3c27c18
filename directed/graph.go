// Package directed is the non-bidirected degenerate case (spec.md §1, §4.1):
// a strict specialization of the bidirected design where every node has a
// single side and every link has LinkType StartStart (0). Rather than
// duplicating the dynamic topology/property machinery, this package is a
// thin NodeId-only facade over dynamic.Topology/EdgeProps/PathProps, always
// addressing the Start side of a node on both ends of a link — the single
// side the directed contract allows.
package directed

import (
	"github.com/katalvlaran/seqgraph/bta"
	"github.com/katalvlaran/seqgraph/dynamic"
	"github.com/katalvlaran/seqgraph/seqerr"
)

// Graph is the directed sequence graph: the same property layers the
// bidirected dynamic.Graph uses, addressed through a NodeId-only API.
type Graph struct {
	topo  *dynamic.Topology
	nodes *dynamic.NodeProps
	edges *dynamic.EdgeProps
	paths *dynamic.PathProps
}

// NewGraph returns an empty directed sequence graph.
func NewGraph() *Graph {
	return &Graph{
		topo:  dynamic.NewTopology(),
		nodes: dynamic.NewNodeProps(),
		edges: dynamic.NewEdgeProps(),
		paths: dynamic.NewPathProps(),
	}
}

// side returns the single (Start) side standing in for id, per the directed
// degenerate case's "Side ≡ NodeId" contract (spec.md §4.1).
func side(id bta.NodeId) bta.Side { return bta.StartSide(id) }

// Summary is a graph-wide metadata snapshot, mirroring dynamic.Graph.Summary.
type Summary struct {
	NodeCount uint64
	EdgeCount uint64
	PathCount uint64
}

// Summary returns the current node/edge/path counts.
func (g *Graph) Summary() Summary {
	return Summary{
		NodeCount: g.topo.NodeCount(),
		EdgeCount: g.topo.EdgeCount(),
		PathCount: uint64(g.paths.Count()),
	}
}

// AddNode creates a node with the given sequence/name, using extID if
// non-zero or auto-assigning otherwise.
func (g *Graph) AddNode(n dynamic.Node, extID bta.NodeId) (bta.NodeId, error) {
	id, err := g.topo.AddNode(extID)
	if err != nil {
		return bta.NoNode, err
	}
	g.nodes.Append(n)
	return id, nil
}

// HasNode reports whether id is a live node.
func (g *Graph) HasNode(id bta.NodeId) bool { return g.topo.HasNode(id) }

// NodeSequence returns the sequence of a live node.
func (g *Graph) NodeSequence(id bta.NodeId) string {
	return g.nodes.At(g.topo.IDToRank(id)).Sequence
}

// NodeName returns the name of a live node.
func (g *Graph) NodeName(id bta.NodeId) string {
	return g.nodes.At(g.topo.IDToRank(id)).Name
}

// AddEdge creates a directed edge from→to with the given payload, in safe
// mode (duplicate detection).
func (g *Graph) AddEdge(from, to bta.NodeId, payload dynamic.EdgePayload) error {
	if err := g.topo.AddEdge(side(from), side(to)); err != nil {
		return err
	}
	g.edges.Set(bta.MakeLink(side(from), side(to)), payload)
	return nil
}

// AddEdgeUnsafe creates a directed edge without duplicate detection.
func (g *Graph) AddEdgeUnsafe(from, to bta.NodeId, payload dynamic.EdgePayload) {
	g.topo.AddEdgeUnsafe(side(from), side(to))
	g.edges.Set(bta.MakeLink(side(from), side(to)), payload)
}

// HasEdge reports whether a directed edge from→to exists.
func (g *Graph) HasEdge(from, to bta.NodeId) bool {
	return g.topo.HasEdge(side(from), side(to))
}

// EdgeOverlap returns the overlap payload for edge from→to, or 0 if
// untracked.
func (g *Graph) EdgeOverlap(from, to bta.NodeId) uint64 {
	p, _ := g.edges.Get(bta.MakeLink(side(from), side(to)))
	return p.Overlap
}

// Successors returns the nodes with a direct edge from id.
func (g *Graph) Successors(id bta.NodeId) []bta.NodeId {
	adj := g.topo.AdjacentsOut(side(id))
	out := make([]bta.NodeId, len(adj))
	for i, s := range adj {
		out[i] = s.Node
	}
	return out
}

// Predecessors returns the nodes with a direct edge into id.
func (g *Graph) Predecessors(id bta.NodeId) []bta.NodeId {
	adj := g.topo.AdjacentsIn(side(id))
	in := make([]bta.NodeId, len(adj))
	for i, s := range adj {
		in[i] = s.Node
	}
	return in
}

// Outdegree returns id's outdegree.
func (g *Graph) Outdegree(id bta.NodeId) int { return g.topo.OutdegreeSide(side(id)) }

// Indegree returns id's indegree.
func (g *Graph) Indegree(id bta.NodeId) int { return g.topo.IndegreeSide(side(id)) }

// AddPath creates a new, empty path.
func (g *Graph) AddPath(name string) dynamic.PathId { return g.paths.AddPath(name) }

// ExtendPath appends one step to an existing path. The node must be live.
// The directed degenerate case carries no orientation bit (spec.md §4.1's
// "SideTag is absent"), so every step is recorded forward.
func (g *Graph) ExtendPath(id dynamic.PathId, node bta.NodeId) error {
	if !g.topo.HasNode(node) {
		return seqerr.ErrMissingNode
	}
	if !g.paths.ExtendPath(id, node, false) {
		return seqerr.ErrMissingPath
	}
	return nil
}

// ForEachNode iterates live nodes in ascending rank order.
func (g *Graph) ForEachNode(cb func(id bta.NodeId) bool) bool { return g.topo.ForEachNode(cb) }

// Clear resets every layer to empty.
func (g *Graph) Clear() {
	g.topo.Clear()
	g.nodes.Clear()
	g.edges.Clear()
	g.paths.Clear()
}
