package succinct

import (
	"github.com/katalvlaran/seqgraph/bta"
	"github.com/katalvlaran/seqgraph/coord"
	"github.com/katalvlaran/seqgraph/dynamic"
	"github.com/katalvlaran/seqgraph/succinct/internal/bitvec"
)

// Layout constants (spec.md §4.4.1).
const (
	headerCoreLen = 3 // payload_id, outdegree, indegree
	edgeCoreLen   = 2 // adj_id, linktype
	nodePad       = 2 // seq_start, seq_length
	edgePad       = 1 // overlap
)

func headerEntryLen() uint64 { return headerCoreLen + nodePad }
func edgeEntryLen() uint64   { return edgeCoreLen + edgePad }

func nodeEntryLen(outdeg, indeg uint64) uint64 {
	return headerEntryLen() + (outdeg+indeg)*edgeEntryLen()
}

// Topology is the succinct topology store: a packed integer vector `nodes`
// and a parallel rank/select bit vector `idsBV` marking where each node's
// header begins (spec.md §4.4).
type Topology struct {
	nodes []uint64
	idsBV *bitvec.BitVector

	nodeCount uint64
	edgeCount uint64

	coordinate coord.Map
}

// NodeCount returns the number of nodes.
func (t *Topology) NodeCount() uint64 { return t.nodeCount }

// EdgeCount returns the number of edges.
func (t *Topology) EdgeCount() uint64 { return t.edgeCount }

// Coordinate returns the embedded coordinate map translating external
// (dynamic-graph) IDs to internal ST offsets.
func (t *Topology) Coordinate() coord.Map { return t.coordinate }

// IDToRank returns the 1-based rank of id via rank_1 on idsBV.
func (t *Topology) IDToRank(id bta.NodeId) uint64 {
	return uint64(t.idsBV.Rank1(uint(id)))
}

// RankToID returns the NodeId (ST offset) at rank r via select_1, or
// bta.NoNode if r is out of [1, node_count].
func (t *Topology) RankToID(r uint64) bta.NodeId {
	pos, ok := t.idsBV.Select1(uint(r))
	if !ok {
		return bta.NoNode
	}
	return bta.NodeId(pos + 1)
}

// HasNode reports whether id is a valid header offset.
func (t *Topology) HasNode(id bta.NodeId) bool {
	if id == bta.NoNode || uint64(id) >= uint64(len(t.nodes)) {
		return false
	}
	return t.idsBV.Test(uint(id) - 1)
}

// HasSide reports whether side's node is valid.
func (t *Topology) HasSide(side bta.Side) bool { return t.HasNode(side.Node) }

// SuccessorID returns the ID at the next rank after id, or bta.NoNode at the
// end or if id is invalid.
func (t *Topology) SuccessorID(id bta.NodeId) bta.NodeId {
	next := uint64(id) + nodeEntryLen(t.Outdegree(id), t.Indegree(id))
	if next >= uint64(len(t.nodes)) {
		return bta.NoNode
	}
	return bta.NodeId(next)
}

// ForEachNode iterates nodes in ascending rank order starting at startRank
// (1 if omitted), invoking cb(id). Returns false iff cb returned false.
func (t *Topology) ForEachNode(cb func(id bta.NodeId) bool, startRank ...uint64) bool {
	rank := uint64(1)
	if len(startRank) > 0 && startRank[0] > 1 {
		rank = startRank[0]
	}
	if rank > t.nodeCount {
		return true
	}
	id := t.RankToID(rank)
	for id != bta.NoNode {
		if !cb(id) {
			return false
		}
		id = t.SuccessorID(id)
	}
	return true
}

// Outdegree returns the node-level outdegree stored in the header.
func (t *Topology) Outdegree(id bta.NodeId) uint64 { return t.nodes[id+1] }

// Indegree returns the node-level indegree stored in the header.
func (t *Topology) Indegree(id bta.NodeId) uint64 { return t.nodes[id+2] }

func (t *Topology) edgesOutPos(id bta.NodeId) uint64 { return uint64(id) + headerEntryLen() }

func (t *Topology) edgesInPos(id bta.NodeId) uint64 {
	return t.edgesOutPos(id) + t.Outdegree(id)*edgeEntryLen()
}

// edgeAt reads the (adjID, linktype) pair at a packed edge slot position.
func (t *Topology) edgeAt(pos uint64) (bta.NodeId, bta.LinkType) {
	return bta.NodeId(t.nodes[pos]), bta.LinkType(t.nodes[pos+1])
}

func (t *Topology) setEdgeAt(pos uint64, adjID bta.NodeId, lt bta.LinkType) {
	t.nodes[pos] = uint64(adjID)
	t.nodes[pos+1] = uint64(lt)
}

// EdgeOverlapAt returns the overlap pad slot for the edge entry at pos.
func (t *Topology) EdgeOverlapAt(pos uint64) uint64 { return t.nodes[pos+2] }

// SetEdgeOverlapAt writes the overlap pad slot for the edge entry at pos.
func (t *Topology) SetEdgeOverlapAt(pos uint64, overlap uint64) { t.nodes[pos+2] = overlap }

// ForEachEdgeOutPos iterates the packed positions of id's outgoing edge
// entries.
func (t *Topology) ForEachEdgeOutPos(id bta.NodeId, cb func(pos uint64) bool) bool {
	pos := t.edgesOutPos(id)
	for i := uint64(0); i < t.Outdegree(id); i++ {
		if !cb(pos) {
			return false
		}
		pos += edgeEntryLen()
	}
	return true
}

// ForEachEdgeInPos iterates the packed positions of id's incoming edge
// entries.
func (t *Topology) ForEachEdgeInPos(id bta.NodeId, cb func(pos uint64) bool) bool {
	pos := t.edgesInPos(id)
	for i := uint64(0); i < t.Indegree(id); i++ {
		if !cb(pos) {
			return false
		}
		pos += edgeEntryLen()
	}
	return true
}

// ForEachEdgesOut calls cb on every side reachable via an outgoing edge from
// side, filtering the node-level edge list by is_valid_from (spec.md §4.4.3).
func (t *Topology) ForEachEdgesOut(side bta.Side, cb func(to bta.Side) bool) bool {
	return t.ForEachEdgeOutPos(side.Node, func(pos uint64) bool {
		adjID, lt := t.edgeAt(pos)
		if !bta.IsValidFrom(side, lt) {
			return true
		}
		return cb(bta.ToSide(bta.MakeLinkFromType(side.Node, adjID, lt)))
	})
}

// ForEachEdgesIn calls cb on every side reachable via an incoming edge into
// side, filtering by is_valid_to.
func (t *Topology) ForEachEdgesIn(side bta.Side, cb func(from bta.Side) bool) bool {
	return t.ForEachEdgeInPos(side.Node, func(pos uint64) bool {
		adjID, lt := t.edgeAt(pos)
		if !bta.IsValidTo(side, lt) {
			return true
		}
		return cb(bta.FromSide(bta.MakeLinkFromType(adjID, side.Node, lt)))
	})
}

// AdjacentsOut returns the sides reachable via an outgoing edge from side.
func (t *Topology) AdjacentsOut(side bta.Side) []bta.Side {
	var out []bta.Side
	t.ForEachEdgesOut(side, func(to bta.Side) bool { out = append(out, to); return true })
	return out
}

// AdjacentsIn returns the sides reachable via an incoming edge into side.
func (t *Topology) AdjacentsIn(side bta.Side) []bta.Side {
	var in []bta.Side
	t.ForEachEdgesIn(side, func(from bta.Side) bool { in = append(in, from); return true })
	return in
}

// OutdegreeSide counts side's outgoing edges by filtered iteration.
func (t *Topology) OutdegreeSide(side bta.Side) int {
	n := 0
	t.ForEachEdgesOut(side, func(bta.Side) bool { n++; return true })
	return n
}

// IndegreeSide counts side's incoming edges by filtered iteration.
func (t *Topology) IndegreeSide(side bta.Side) int {
	n := 0
	t.ForEachEdgesIn(side, func(bta.Side) bool { n++; return true })
	return n
}

// findEdgePos locates the packed position of edge entry (from,to), probing
// whichever side's list is shorter (spec.md §4.4.3).
func (t *Topology) findEdgePos(from, to bta.Side) (uint64, bool) {
	fod := t.Outdegree(from.Node)
	tid := t.Indegree(to.Node)
	lt := bta.ComputeLinkType(from, to)

	var found uint64
	var ok bool
	if fod <= tid {
		t.ForEachEdgeOutPos(from.Node, func(pos uint64) bool {
			adjID, elt := t.edgeAt(pos)
			if adjID == to.Node && elt == lt {
				found, ok = pos, true
				return false
			}
			return true
		})
		return found, ok
	}
	t.ForEachEdgeInPos(to.Node, func(pos uint64) bool {
		adjID, elt := t.edgeAt(pos)
		if adjID == from.Node && elt == lt {
			found, ok = pos, true
			return false
		}
		return true
	})
	return found, ok
}

// HasEdge reports whether an edge (from,to) exists.
func (t *Topology) HasEdge(from, to bta.Side) bool {
	_, ok := t.findEdgePos(from, to)
	return ok
}

// EdgeOverlap returns the overlap pad slot for edge (from,to), or (0,false)
// if the edge is not present.
func (t *Topology) EdgeOverlap(from, to bta.Side) (uint64, bool) {
	pos, ok := t.findEdgePos(from, to)
	if !ok {
		return 0, false
	}
	return t.EdgeOverlapAt(pos), true
}

// SetEdgeOverlap writes the overlap pad slot for edge (from,to). Returns
// false if the edge is not present.
func (t *Topology) SetEdgeOverlap(from, to bta.Side, overlap uint64) bool {
	pos, ok := t.findEdgePos(from, to)
	if !ok {
		return false
	}
	t.SetEdgeOverlapAt(pos, overlap)
	return true
}

// SequenceStart returns the seq_start pad slot for id.
func (t *Topology) SequenceStart(id bta.NodeId) uint64 { return t.nodes[id+3] }

// SequenceLength returns the seq_length pad slot for id.
func (t *Topology) SequenceLength(id bta.NodeId) uint64 { return t.nodes[id+4] }

// SetSequenceBounds writes the seq_start/seq_length pad slots for id.
func (t *Topology) SetSequenceBounds(id bta.NodeId, start, length uint64) {
	t.nodes[id+3] = start
	t.nodes[id+4] = length
}

// PayloadID returns the external (dynamic-graph) NodeId embedded at id's
// header, recorded during construction.
func (t *Topology) PayloadID(id bta.NodeId) bta.NodeId { return bta.NodeId(t.nodes[id]) }

// Clear resets the store to empty.
func (t *Topology) Clear() {
	t.nodes = nil
	t.idsBV = bitvec.New(0)
	t.nodeCount = 0
	t.edgeCount = 0
	t.coordinate = coord.NewIdentity()
}

// BuildTopology constructs a succinct Topology from a dynamic one, following
// the mandatory six-step protocol of spec.md §4.4.2: size the packed vector,
// fill node headers and edge entries keyed by provisional rank, build
// rank/select support, then identify (replace every provisional rank with
// its final ST offset now that select is available).
func BuildTopology(dt *dynamic.Topology) *Topology {
	nodeCount := dt.NodeCount()
	edgeCount := dt.EdgeCount()
	length := nodeCount*headerEntryLen() + 2*edgeCount*edgeEntryLen() + 1

	t := &Topology{
		nodes:      make([]uint64, length),
		idsBV:      bitvec.New(uint(length)),
		nodeCount:  nodeCount,
		edgeCount:  edgeCount,
		coordinate: coord.NewSparse(),
	}

	pos := uint64(1)
	dt.ForEachNode(func(extID bta.NodeId) bool {
		id := bta.NodeId(pos)
		t.idsBV.Set(uint(pos - 1))
		t.nodes[pos] = uint64(extID)
		t.coordinate.Insert(uint64(extID), uint64(id))

		startOut := dt.AdjacentsOut(bta.StartSide(extID))
		endOut := dt.AdjacentsOut(bta.EndSide(extID))
		startIn := dt.AdjacentsIn(bta.StartSide(extID))
		endIn := dt.AdjacentsIn(bta.EndSide(extID))
		outAdj := append(append([]bta.Side{}, startOut...), endOut...)
		inAdj := append(append([]bta.Side{}, startIn...), endIn...)
		t.nodes[pos+1] = uint64(len(outAdj))
		t.nodes[pos+2] = uint64(len(inAdj))

		epos := t.edgesOutPos(id)
		for i, to := range outAdj {
			fromTag := bta.Start
			if i >= len(startOut) {
				fromTag = bta.End
			}
			lt := bta.ComputeLinkType(bta.Side{Node: extID, Tag: fromTag}, to)
			t.setEdgeAt(epos, bta.NodeId(dt.IDToRank(to.Node)), lt)
			epos += edgeEntryLen()
		}
		epos = t.edgesInPos(id)
		for i, from := range inAdj {
			toTag := bta.Start
			if i >= len(startIn) {
				toTag = bta.End
			}
			lt := bta.ComputeLinkType(from, bta.Side{Node: extID, Tag: toTag})
			t.setEdgeAt(epos, bta.NodeId(dt.IDToRank(from.Node)), lt)
			epos += edgeEntryLen()
		}

		pos += nodeEntryLen(uint64(len(outAdj)), uint64(len(inAdj)))
		return true
	})

	t.identificate()
	return t
}

// identificate replaces every provisional rank stored by BuildTopology's
// first pass with its final ST offset, now that rank/select is available
// on the completed bit vector (spec.md §4.4.2 step 6).
func (t *Topology) identificate() {
	t.ForEachNode(func(id bta.NodeId) bool {
		t.ForEachEdgeOutPos(id, func(pos uint64) bool {
			rank, lt := t.edgeAt(pos)
			t.setEdgeAt(pos, t.RankToID(uint64(rank)), lt)
			return true
		})
		t.ForEachEdgeInPos(id, func(pos uint64) bool {
			rank, lt := t.edgeAt(pos)
			t.setEdgeAt(pos, t.RankToID(uint64(rank)), lt)
			return true
		})
		return true
	})
}
