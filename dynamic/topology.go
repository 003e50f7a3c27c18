package dynamic

import (
	"sort"
	"sync"

	"github.com/katalvlaran/seqgraph/bta"
	"github.com/katalvlaran/seqgraph/coord"
	"github.com/katalvlaran/seqgraph/seqerr"
)

// Topology is the dynamic topology store (spec.md §4.3): an ordered list of
// live nodes, a rank index, and adjacency maps keyed by Side.
//
// muNodes guards nodes/rank/maxID; muAdj guards adjOut/adjIn/edgeCount. The
// two are kept separate so that read-only rank/ID queries never contend with
// adjacency mutation, mirroring core.Graph's muVert/muEdgeAdj split.
type Topology struct {
	muNodes sync.RWMutex
	muAdj   sync.RWMutex

	nodes []bta.NodeId          // live nodes, in rank order (1-based ranks)
	rank  map[bta.NodeId]uint64 // NodeId -> 1-based rank

	// explicitBegun is set the first time AddNode is given a non-zero
	// extID. Once set, a later AddNode(bta.NoNode) can no longer be read as
	// "auto-assign": spec.md §7's DuplicateId case ("zero after explicit
	// specification began") fires instead (see reserveID).
	explicitBegun bool

	adjOut map[bta.Side][]bta.Side
	adjIn  map[bta.Side][]bta.Side

	nodeCount uint64
	edgeCount uint64
	maxID     bta.NodeId

	coordinate coord.Map
}

// NewTopology returns an empty dynamic topology store with an Identity
// coordinate map, matching spec.md §3's "the dynamic store uses identity by
// default".
func NewTopology() *Topology {
	return &Topology{
		rank:       make(map[bta.NodeId]uint64),
		adjOut:     make(map[bta.Side][]bta.Side),
		adjIn:      make(map[bta.Side][]bta.Side),
		coordinate: coord.NewIdentity(),
	}
}

// Coordinate returns the embedded coordinate map.
func (t *Topology) Coordinate() coord.Map { return t.coordinate }

// SetCoordinate replaces the embedded coordinate map.
func (t *Topology) SetCoordinate(c coord.Map) { t.coordinate = c }

// AddNode appends a node, using extID if non-zero (must be unique and
// positive) or assigning maxID+1 otherwise. Updates rank so that rank equals
// the node's 1-based position. Returns seqerr.ErrZeroID if extID is zero
// after explicit ID specification has already begun on this store, or
// seqerr.ErrDuplicateID if extID already identifies a live node.
func (t *Topology) AddNode(extID bta.NodeId) (bta.NodeId, error) {
	t.muNodes.Lock()
	defer t.muNodes.Unlock()

	id, err := t.reserveID(extID)
	if err != nil {
		return bta.NoNode, err
	}
	t.appendNodeLocked(id)
	if extID != bta.NoNode {
		t.explicitBegun = true
	}

	return id, nil
}

// reserveID validates/assigns the ID to use for a new node. Caller holds
// muNodes.
//
// extID == bta.NoNode auto-assigns maxID+1, but only before any call on
// this store has ever specified an explicit ID: once explicit
// specification begins, a later zero can no longer be read as "caller
// omitted the ID" — spec.md §7 classes it as the DuplicateId case ("zero
// after explicit specification began"), signaled here as ErrZeroID.
func (t *Topology) reserveID(extID bta.NodeId) (bta.NodeId, error) {
	if extID == bta.NoNode {
		if t.explicitBegun {
			return bta.NoNode, seqerr.ErrZeroID
		}
		return t.maxID + 1, nil
	}
	if _, exists := t.rank[extID]; exists {
		return bta.NoNode, seqerr.ErrDuplicateID
	}
	return extID, nil
}

// appendNodeLocked inserts id at the next rank and advances maxID. Caller
// holds muNodes.
func (t *Topology) appendNodeLocked(id bta.NodeId) {
	t.nodes = append(t.nodes, id)
	t.rank[id] = uint64(len(t.nodes))
	t.nodeCount++
	if id > t.maxID {
		t.maxID = id
	}
}

// AddNodes bulk-adds count auto-assigned nodes, invoking cb with each new
// ID. Rank bookkeeping piggybacks on appendNodeLocked per node (O(1) each),
// so the batch as a whole is O(count), matching spec.md §4.3's amortized
// bound without a separate deferred-rebuild pass.
func (t *Topology) AddNodes(count int, cb func(id bta.NodeId)) {
	t.muNodes.Lock()
	defer t.muNodes.Unlock()

	for i := 0; i < count; i++ {
		id := t.maxID + 1
		t.appendNodeLocked(id)
		if cb != nil {
			cb(id)
		}
	}
}

// HasNode reports whether id is a live node.
func (t *Topology) HasNode(id bta.NodeId) bool {
	t.muNodes.RLock()
	defer t.muNodes.RUnlock()
	_, ok := t.rank[id]
	return ok
}

// HasSide reports whether side's node is live.
func (t *Topology) HasSide(side bta.Side) bool { return t.HasNode(side.Node) }

// IDToRank returns the 1-based rank of id, or 0 if absent.
func (t *Topology) IDToRank(id bta.NodeId) uint64 {
	t.muNodes.RLock()
	defer t.muNodes.RUnlock()
	return t.rank[id]
}

// RankToID returns the NodeId at rank r. r must be in [1, NodeCount()];
// callers violating this get the zero sentinel in this implementation
// rather than a panic, a deliberate relaxation of spec.md §7's "implementation
// MAY assert" for InvalidRank (recorded in DESIGN.md).
func (t *Topology) RankToID(r uint64) bta.NodeId {
	t.muNodes.RLock()
	defer t.muNodes.RUnlock()
	if r == 0 || r > uint64(len(t.nodes)) {
		return bta.NoNode
	}
	return t.nodes[r-1]
}

// SuccessorID returns the NodeId at the next rank after id, or 0 at the end
// or if id is absent.
func (t *Topology) SuccessorID(id bta.NodeId) bta.NodeId {
	t.muNodes.RLock()
	defer t.muNodes.RUnlock()
	r, ok := t.rank[id]
	if !ok || r >= uint64(len(t.nodes)) {
		return bta.NoNode
	}
	return t.nodes[r]
}

// NodeCount returns the number of live nodes.
func (t *Topology) NodeCount() uint64 {
	t.muNodes.RLock()
	defer t.muNodes.RUnlock()
	return t.nodeCount
}

// EdgeCount returns the number of live edges.
func (t *Topology) EdgeCount() uint64 {
	t.muAdj.RLock()
	defer t.muAdj.RUnlock()
	return t.edgeCount
}

// ForEachNode iterates live nodes in ascending rank order starting at
// startRank (1 if omitted/zero), invoking cb(id). Returns false iff cb
// returned false at least once; iteration halts at that element.
func (t *Topology) ForEachNode(cb func(id bta.NodeId) bool, startRank ...uint64) bool {
	start := uint64(1)
	if len(startRank) > 0 && startRank[0] > 1 {
		start = startRank[0]
	}
	t.muNodes.RLock()
	nodes := make([]bta.NodeId, len(t.nodes))
	copy(nodes, t.nodes)
	t.muNodes.RUnlock()

	for i := start; i <= uint64(len(nodes)); i++ {
		if !cb(nodes[i-1]) {
			return false
		}
	}
	return true
}

// AddEdge appends (from,to) to both adjacency lists and increments
// edgeCount. Pre-asserts both endpoints exist and the edge is new (safe
// mode); use AddEdgeUnsafe for bulk loaders that have already deduplicated.
func (t *Topology) AddEdge(from, to bta.Side) error {
	if !t.HasSide(from) || !t.HasSide(to) {
		return seqerr.ErrMissingNode
	}
	if t.HasEdge(from, to) {
		return seqerr.ErrDuplicateEdge
	}
	t.AddEdgeUnsafe(from, to)
	return nil
}

// AddEdgeUnsafe appends (from,to) without existence or duplicate checks, for
// bulk loaders that have already validated/deduplicated their input.
func (t *Topology) AddEdgeUnsafe(from, to bta.Side) {
	t.muAdj.Lock()
	defer t.muAdj.Unlock()
	t.adjOut[from] = append(t.adjOut[from], to)
	t.adjIn[to] = append(t.adjIn[to], from)
	t.edgeCount++
}

// HasEdge reports whether an edge (from,to) is recorded, probing whichever
// of adjOut[from] / adjIn[to] is shorter (ties favor adjOut).
func (t *Topology) HasEdge(from, to bta.Side) bool {
	t.muAdj.RLock()
	defer t.muAdj.RUnlock()
	outList := t.adjOut[from]
	inList := t.adjIn[to]
	if len(outList) <= len(inList) {
		return containsSide(outList, to)
	}
	return containsSide(inList, from)
}

func containsSide(list []bta.Side, s bta.Side) bool {
	for _, x := range list {
		if x == s {
			return true
		}
	}
	return false
}

// AdjacentsOut returns a copy of the sides reachable via an outgoing edge
// from side, or nil if side has none.
func (t *Topology) AdjacentsOut(side bta.Side) []bta.Side {
	t.muAdj.RLock()
	defer t.muAdj.RUnlock()
	return cloneSides(t.adjOut[side])
}

// AdjacentsIn returns a copy of the sides reachable via an incoming edge
// into side, or nil if side has none.
func (t *Topology) AdjacentsIn(side bta.Side) []bta.Side {
	t.muAdj.RLock()
	defer t.muAdj.RUnlock()
	return cloneSides(t.adjIn[side])
}

func cloneSides(s []bta.Side) []bta.Side {
	if len(s) == 0 {
		return nil
	}
	out := make([]bta.Side, len(s))
	copy(out, s)
	return out
}

// OutdegreeSide returns len(adjOut[side]).
func (t *Topology) OutdegreeSide(side bta.Side) int {
	t.muAdj.RLock()
	defer t.muAdj.RUnlock()
	return len(t.adjOut[side])
}

// IndegreeSide returns len(adjIn[side]).
func (t *Topology) IndegreeSide(side bta.Side) int {
	t.muAdj.RLock()
	defer t.muAdj.RUnlock()
	return len(t.adjIn[side])
}

// Outdegree sums outdegree over both sides of id.
func (t *Topology) Outdegree(id bta.NodeId) int {
	return t.OutdegreeSide(bta.StartSide(id)) + t.OutdegreeSide(bta.EndSide(id))
}

// Indegree sums indegree over both sides of id.
func (t *Topology) Indegree(id bta.NodeId) int {
	return t.IndegreeSide(bta.StartSide(id)) + t.IndegreeSide(bta.EndSide(id))
}

// SortNodes reorders the live-node list either by the given permutation (a
// slice containing exactly the live NodeIds, in the desired new order) or,
// if perm is nil, by ascending NodeId. Rank is fully rebuilt from the new
// order. Returns the permutation actually applied.
func (t *Topology) SortNodes(perm []bta.NodeId) []bta.NodeId {
	t.muNodes.Lock()
	defer t.muNodes.Unlock()

	if perm == nil {
		perm = make([]bta.NodeId, len(t.nodes))
		copy(perm, t.nodes)
		sort.Slice(perm, func(i, j int) bool { return perm[i] < perm[j] })
	}

	t.nodes = perm
	t.rank = make(map[bta.NodeId]uint64, len(perm))
	for i, id := range perm {
		t.rank[id] = uint64(i + 1)
	}

	out := make([]bta.NodeId, len(perm))
	copy(out, perm)
	return out
}

// FlipNode swaps the adjacency of id's two sides and rewrites every
// neighboring side's reciprocal entries so they point at id's new side
// (spec.md §4.8.1 step 3). It does not touch edge properties or path
// steps — callers compose it with EdgeProps.ChangeEdge and PathProps
// flipping, as Graph.FlipOrientation and the NodeFlipper batch do.
func (t *Topology) FlipNode(id bta.NodeId) {
	start := bta.StartSide(id)
	end := bta.EndSide(id)

	t.muAdj.Lock()
	defer t.muAdj.Unlock()

	oldOutStart := t.adjOut[start]
	oldOutEnd := t.adjOut[end]
	oldInStart := t.adjIn[start]
	oldInEnd := t.adjIn[end]

	t.adjOut[start], t.adjOut[end] = oldOutEnd, oldOutStart
	t.adjIn[start], t.adjIn[end] = oldInEnd, oldInStart

	// Edges that left start(id) now leave end(id): the neighbor's adjIn
	// entry must follow, start -> end.
	for _, x := range oldOutStart {
		replaceOneSide(t.adjIn[x], start, end)
	}
	// Edges that left end(id) now leave start(id): end -> start.
	for _, x := range oldOutEnd {
		replaceOneSide(t.adjIn[x], end, start)
	}
	// Edges that entered start(id) now enter end(id): the neighbor's adjOut
	// entry must follow, start -> end.
	for _, y := range oldInStart {
		replaceOneSide(t.adjOut[y], start, end)
	}
	// Edges that entered end(id) now enter start(id): end -> start.
	for _, y := range oldInEnd {
		replaceOneSide(t.adjOut[y], end, start)
	}
}

// replaceOneSide rewrites the first occurrence of old in list to new,
// in place (list shares a backing array with the map entry it came from).
// One call accounts for exactly one parallel-edge instance, so a caller
// looping once per source-list element correctly handles multi-edges.
func replaceOneSide(list []bta.Side, old, new bta.Side) {
	for i, s := range list {
		if s == old {
			list[i] = new
			return
		}
	}
}

// FlipEdge reverses a stored edge (from,to) into (to,from): removes one
// occurrence from adjOut[from]/adjIn[to] and appends to adjOut[to]/adjIn[from].
// Returns false if (from,to) was not present. spec.md §4.8.3.
func (t *Topology) FlipEdge(from, to bta.Side) bool {
	t.muAdj.Lock()
	defer t.muAdj.Unlock()

	if !removeOneSide(t.adjOut, from, to) {
		return false
	}
	removeOneSide(t.adjIn, to, from)

	t.adjOut[to] = append(t.adjOut[to], from)
	t.adjIn[from] = append(t.adjIn[from], to)
	return true
}

// removeOneSide removes the first occurrence of target from m[side],
// shifting the remaining entries left to preserve their relative insertion
// order — spec.md §5's insertion-order contract, which canonicalization
// itself relies on. Returns whether it was found.
func removeOneSide(m map[bta.Side][]bta.Side, side, target bta.Side) bool {
	list := m[side]
	for i, s := range list {
		if s == target {
			copy(list[i:], list[i+1:])
			m[side] = list[:len(list)-1]
			return true
		}
	}
	return false
}

// Clear drops all nodes, edges, and rank/coordinate state, resetting
// counters to zero.
func (t *Topology) Clear() {
	t.muNodes.Lock()
	t.muAdj.Lock()
	defer t.muAdj.Unlock()
	defer t.muNodes.Unlock()

	t.nodes = nil
	t.rank = make(map[bta.NodeId]uint64)
	t.adjOut = make(map[bta.Side][]bta.Side)
	t.adjIn = make(map[bta.Side][]bta.Side)
	t.nodeCount = 0
	t.edgeCount = 0
	t.maxID = 0
	t.explicitBegun = false
	t.coordinate = coord.NewIdentity()
}
