package dynamic

import (
	"fmt"

	"github.com/katalvlaran/seqgraph/bta"
	"github.com/katalvlaran/seqgraph/seqerr"
)

// MakeEdgesCanonical rewrites the graph so that every edge it can reorient
// exits the End side of its from-node and enters the Start side of its
// to-node (LinkType EndStart), following spec.md §4.8.4's single-pass,
// rank-order-deterministic algorithm. Ambiguous nodes are left as-is and
// reported via warn; info receives a message for every node or edge flip.
//
// Initial node rank order is load-bearing for the result: this is a
// single-pass rewrite, not an optimizer (spec.md §4.8.4).
func (g *Graph) MakeEdgesCanonical(info, warn seqerr.Sink) {
	n := g.Topo.NodeCount()
	visited := make([]bool, n+1) // visited[rank] == true: treated as forward

	g.Topo.ForEachNode(func(id bta.NodeId) bool {
		rank := g.Topo.IDToRank(id)
		visited[rank] = true

		if !g.isUnambiguouslyForward(id, visited) {
			warn.Emit(fmt.Sprintf("cannot unambiguously determine orientation of node '%d'", id))
			return true
		}

		g.makeOutgoingEdgesCanonical(id, visited, info, warn)
		g.makeIncomingEdgesCanonical(id, visited, info, warn)
		return true
	})
}

// isUnambiguouslyForward reports whether id can be treated as forward given
// the orientation already fixed for its visited neighbors (spec.md
// §4.8.4.b): no already-visited End-side neighbor at end(id), no
// already-visited End-side neighbor reachable from end(id), no
// already-visited Start-side neighbor reachable from start(id), and no side
// reachable from start(id) that is also adjacent (in or out) to end(id) (a
// parallel split between the two sides of id). Sides with an edge into
// start(id) are not part of the parallel-split comparison.
func (g *Graph) isUnambiguouslyForward(id bta.NodeId, visited []bool) bool {
	start := bta.StartSide(id)
	end := bta.EndSide(id)
	fwdAdjs := make(map[bta.Side]struct{})

	for _, from := range g.Topo.AdjacentsIn(end) {
		fwdAdjs[from] = struct{}{}
		if from.Tag == bta.End && visited[g.Topo.IDToRank(from.Node)] {
			return false
		}
	}
	for _, to := range g.Topo.AdjacentsOut(end) {
		fwdAdjs[to] = struct{}{}
		if to.Tag == bta.End && visited[g.Topo.IDToRank(to.Node)] {
			return false
		}
	}
	for _, to := range g.Topo.AdjacentsOut(start) {
		_, common := fwdAdjs[to]
		if (to.Tag == bta.Start && visited[g.Topo.IDToRank(to.Node)]) || common {
			return false
		}
	}
	return true
}

// makeOutgoingEdgesCanonical is the outgoing pass on end(id) (spec.md
// §4.8.4.d). Every edge currently entering end(id) is reversed so it leaves
// end(id) instead; if its other endpoint is an End side, that neighbor is
// flipped first so the reversed edge lands on its Start side. Every edge
// already leaving end(id) to another End side gets that neighbor flipped
// too, with no edge reversal needed. Flippers are scoped to this pass and
// flushed twice — once between the two loops (the second loop must see the
// first loop's topology changes) and once more at the end to apply node
// flips staged by the second loop, since Go has no destructor to do it
// implicitly the way the source's RAII wrapper does.
func (g *Graph) makeOutgoingEdgesCanonical(id bta.NodeId, visited []bool, info, warn seqerr.Sink) {
	nodeFlipper := NewNodeFlipper(g, true, false, info, warn)
	edgeFlipper := NewEdgeFlipper(g, true, true, info, warn)
	end := bta.EndSide(id)

	for _, from := range g.Topo.AdjacentsIn(end) {
		fromRank := g.Topo.IDToRank(from.Node)
		localFrom := from
		if from.Tag == bta.End {
			if visited[fromRank] {
				continue
			}
			info.Emit(fmt.Sprintf("flipping node '%d'", from.Node))
			nodeFlipper.Flip(from.Node)
			localFrom = bta.StartSide(from.Node)
		}
		visited[fromRank] = true
		info.Emit(fmt.Sprintf("flipping edge %s", edgeToStr(localFrom, end)))
		edgeFlipper.Flip(localFrom, end)
	}
	nodeFlipper.Flush()
	edgeFlipper.Flush()

	for _, to := range g.Topo.AdjacentsOut(end) {
		toRank := g.Topo.IDToRank(to.Node)
		if to.Tag == bta.End {
			if visited[toRank] {
				continue
			}
			info.Emit(fmt.Sprintf("flipping node '%d'", to.Node))
			nodeFlipper.Flip(to.Node)
		}
		visited[toRank] = true
	}
	nodeFlipper.Flush()
}

// makeIncomingEdgesCanonical is the incoming pass on start(id) (spec.md
// §4.8.4.d): every edge leaving start(id) is reversed so it enters start(id)
// instead; if its other endpoint is a Start side, that neighbor is flipped
// first so the reversed edge lands on its End side. This mirrors only the
// outgoing-from-start branch of the symmetric reading, following the
// source's `_make_incoming_edges_canonical` — it has no incoming-to-start
// counterpart. spec.md §9 Open Question records this as deliberate; see
// DESIGN.md for the regression test exercising both directions.
func (g *Graph) makeIncomingEdgesCanonical(id bta.NodeId, visited []bool, info, warn seqerr.Sink) {
	nodeFlipper := NewNodeFlipper(g, true, false, info, warn)
	edgeFlipper := NewEdgeFlipper(g, true, true, info, warn)
	start := bta.StartSide(id)

	for _, to := range g.Topo.AdjacentsOut(start) {
		toRank := g.Topo.IDToRank(to.Node)
		localTo := to
		if to.Tag == bta.Start {
			if visited[toRank] {
				continue
			}
			info.Emit(fmt.Sprintf("flipping node '%d'", to.Node))
			nodeFlipper.Flip(to.Node)
			localTo = bta.EndSide(to.Node)
		}
		visited[toRank] = true
		info.Emit(fmt.Sprintf("flipping edge %s", edgeToStr(start, localTo)))
		edgeFlipper.Flip(start, localTo)
	}
	nodeFlipper.Flush()
	edgeFlipper.Flush()
}
