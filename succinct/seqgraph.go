package succinct

import (
	"github.com/katalvlaran/seqgraph/bta"
	"github.com/katalvlaran/seqgraph/dynamic"
)

// Graph is the succinct sequence graph (spec.md §4.8, succinct form): a
// frozen snapshot of a dynamic.Graph, built once and immutable thereafter
// except for Clear. Mirroring dynamic.Graph's composition of topology plus
// three property layers, but over the packed succinct stores.
type Graph struct {
	Topo  *Topology
	Nodes *NodeProps
	Edges *EdgeProps
	Paths *PathProps
}

// Summary is a graph-wide metadata snapshot, mirroring dynamic.Graph.Summary
// (SPEC_FULL.md §4: "Supplemented as seqgraph.Summary() on both
// representations").
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
		PathCount: g.Paths.Count(),
	}
}

// Build converts a live dynamic.Graph into a frozen succinct Graph,
// following spec.md §4.4.2's construction protocol for the topology and then
// layering node/edge/path properties on top of it.
func Build(dg *dynamic.Graph) *Graph {
	topo := BuildTopology(dg.Topo)
	nodes := BuildNodeProps(dg.Nodes, topo)
	paths := BuildPathProps(dg.Paths, topo)

	g := &Graph{Topo: topo, Nodes: nodes, Edges: NewEdgeProps(topo), Paths: paths}
	g.fillEdgeOverlaps(dg)
	return g
}

// fillEdgeOverlaps walks every edge entry of the built topology (both its
// outgoing and incoming copies, per spec.md §4.6's "written on both
// directions" requirement) and copies the corresponding dynamic overlap
// payload into the packed overlap pad slot.
func (g *Graph) fillEdgeOverlaps(dg *dynamic.Graph) {
	g.Topo.ForEachNode(func(id bta.NodeId) bool {
		extFrom := g.Topo.PayloadID(id)

		g.Topo.ForEachEdgeOutPos(id, func(pos uint64) bool {
			adjID, lt := g.Topo.edgeAt(pos)
			extTo := g.Topo.PayloadID(adjID)
			from := bta.FromSide(bta.MakeLinkFromType(extFrom, extTo, lt))
			to := bta.ToSide(bta.MakeLinkFromType(extFrom, extTo, lt))
			payload, _ := dg.Edges.Get(bta.MakeLink(from, to))
			g.Topo.SetEdgeOverlapAt(pos, payload.Overlap)
			return true
		})
		g.Topo.ForEachEdgeInPos(id, func(pos uint64) bool {
			adjID, lt := g.Topo.edgeAt(pos)
			extFromIn := g.Topo.PayloadID(adjID)
			from := bta.FromSide(bta.MakeLinkFromType(extFromIn, extFrom, lt))
			to := bta.ToSide(bta.MakeLinkFromType(extFromIn, extFrom, lt))
			payload, _ := dg.Edges.Get(bta.MakeLink(from, to))
			g.Topo.SetEdgeOverlapAt(pos, payload.Overlap)
			return true
		})
		return true
	})
}

// NodeSequence returns the DNA sequence of a live node.
func (g *Graph) NodeSequence(id bta.NodeId) string { return g.Nodes.Sequence(g.Topo, id) }

// NodeName returns the name of a live node.
func (g *Graph) NodeName(id bta.NodeId) string { return g.Nodes.Name(g.Topo, id) }

// EdgeOverlap returns the overlap of edge (from,to), or 0 if untracked.
func (g *Graph) EdgeOverlap(from, to bta.Side) uint64 {
	overlap, _ := g.Edges.Overlap(from, to)
	return overlap
}

// Clear resets every layer to empty.
func (g *Graph) Clear() {
	g.Topo.Clear()
	g.Nodes = &NodeProps{}
	g.Edges = NewEdgeProps(g.Topo)
	g.Paths = &PathProps{}
}
