package dynamic

import (
	"fmt"

	"github.com/katalvlaran/seqgraph/bta"
	"github.com/katalvlaran/seqgraph/seqerr"
)

// NodeFlipper batches node-orientation flips (spec.md §4.8.2). Constructed
// with (lazy, annotate, infoSink, warnSink):
//
//   - lazy=true:  Flip stages the node; nothing touches the graph until
//     Flush.
//   - lazy=false: Flip applies the topology/edge-property/sequence change
//     immediately, but the path-step toggle is still batched at Flush.
//
// In both modes, staging the same node twice cancels the stage (and, in
// non-lazy mode, the second immediate apply is itself the cancelling flip,
// since flip∘flip is the identity) — an info message is emitted either way.
//
// Go has no destructors: callers must call Flush (directly or via defer)
// instead of relying on scope exit, unlike the RAII wrapper spec.md
// describes. This is a deliberate adaptation, recorded in DESIGN.md.
type NodeFlipper struct {
	g        *Graph
	lazy     bool
	annotate bool
	info     seqerr.Sink
	warn     seqerr.Sink

	order  []bta.NodeId
	staged map[bta.NodeId]int // NodeId -> index into order
}

// NewNodeFlipper returns a NodeFlipper bound to g.
func NewNodeFlipper(g *Graph, lazy, annotate bool, info, warn seqerr.Sink) *NodeFlipper {
	return &NodeFlipper{
		g:        g,
		lazy:     lazy,
		annotate: annotate,
		info:     info,
		warn:     warn,
		staged:   make(map[bta.NodeId]int),
	}
}

// Flip stages a flip of id. Returns false if, in non-lazy mode, the
// immediate apply was rejected (id is not a live node); the rejection is
// also reported via the warn sink.
func (f *NodeFlipper) Flip(id bta.NodeId) bool {
	if !f.lazy {
		if !f.g.flipNodeTopologyAndProps(id, f.annotate) {
			f.warn.Emit(fmt.Sprintf("cannot flip the orientation of node '%d': %v", id, seqerr.ErrFlipRejected))
			return false
		}
	}
	f.toggleStage(id)
	return true
}

// toggleStage adds id to the stage, or removes it (cancelling) if already
// present, emitting an info message in the cancelling case.
func (f *NodeFlipper) toggleStage(id bta.NodeId) {
	if idx, ok := f.staged[id]; ok {
		f.info.Emit(fmt.Sprintf("double flipping orientation of node '%d'", id))
		f.removeStagedAt(idx)
		return
	}
	f.staged[id] = len(f.order)
	f.order = append(f.order, id)
}

// removeStagedAt deletes order[idx] (a tombstone, not a compaction, so every
// other recorded index stays valid) and drops it from staged.
func (f *NodeFlipper) removeStagedAt(idx int) {
	id := f.order[idx]
	delete(f.staged, id)
	f.order[idx] = bta.NoNode
}

// Flush applies every still-staged flip. In lazy mode this is where the
// topology/edge-property/sequence change actually happens; in both modes
// this is where every staged node's path steps are toggled, in one pass.
func (f *NodeFlipper) Flush() {
	nodeSet := make(map[bta.NodeId]struct{}, len(f.staged))
	for _, id := range f.order {
		if id == bta.NoNode {
			continue
		}
		if f.lazy {
			if !f.g.flipNodeTopologyAndProps(id, f.annotate) {
				f.warn.Emit(fmt.Sprintf("cannot flip the orientation of node '%d': %v", id, seqerr.ErrFlipRejected))
				continue
			}
		}
		nodeSet[id] = struct{}{}
	}
	if len(nodeSet) > 0 {
		f.g.Paths.FlipOrientation(nodeSet)
	}
	f.Discard()
}

// Discard abandons every staged flip without applying it.
func (f *NodeFlipper) Discard() {
	f.order = nil
	f.staged = make(map[bta.NodeId]int)
}

// EdgeFlipper batches edge-direction flips (spec.md §4.8.2/§4.8.3).
// Constructed with (swap, lazy, infoSink, warnSink).
type EdgeFlipper struct {
	g    *Graph
	swap bool
	lazy bool
	info seqerr.Sink
	warn seqerr.Sink

	order  []bta.Link
	staged map[bta.Link]int
}

// NewEdgeFlipper returns an EdgeFlipper bound to g.
func NewEdgeFlipper(g *Graph, swap, lazy bool, info, warn seqerr.Sink) *EdgeFlipper {
	return &EdgeFlipper{
		g:      g,
		swap:   swap,
		lazy:   lazy,
		info:   info,
		warn:   warn,
		staged: make(map[bta.Link]int),
	}
}

// edgeToStr renders a link for diagnostics, matching the source's
// "from -> to" style used in its info/warn messages.
func edgeToStr(from, to bta.Side) string {
	return fmt.Sprintf("(%d,%s)->(%d,%s)", from.Node, from.Tag, to.Node, to.Tag)
}

// Flip stages a flip of the edge (from,to). Returns false if, in non-lazy
// mode, the immediate apply was rejected (edge not present).
func (f *EdgeFlipper) Flip(from, to bta.Side) bool {
	link := bta.MakeLink(from, to)
	if !f.lazy {
		if !f.g.flipEdge(from, to, f.swap) {
			f.warn.Emit(fmt.Sprintf("cannot flip edge %s: %v", edgeToStr(from, to), seqerr.ErrFlipRejected))
			return false
		}
	}
	f.toggleStage(link, from, to)
	return true
}

func (f *EdgeFlipper) toggleStage(link bta.Link, from, to bta.Side) {
	if idx, ok := f.staged[link]; ok {
		f.info.Emit(fmt.Sprintf("double flipping of edge %s", edgeToStr(from, to)))
		delete(f.staged, link)
		f.order[idx] = bta.Link{}
		return
	}
	f.staged[link] = len(f.order)
	f.order = append(f.order, link)
}

// Flush applies every still-staged flip, in lazy mode only (non-lazy mode
// already applied each flip immediately in Flip).
func (f *EdgeFlipper) Flush() {
	if f.lazy {
		for _, link := range f.order {
			if link == (bta.Link{}) {
				continue
			}
			if !f.g.flipEdge(link.From, link.To, f.swap) {
				f.warn.Emit(fmt.Sprintf("cannot flip edge %s: %v", edgeToStr(link.From, link.To), seqerr.ErrFlipRejected))
			}
		}
	}
	f.Discard()
}

// Discard abandons every staged flip without applying it.
func (f *EdgeFlipper) Discard() {
	f.order = nil
	f.staged = make(map[bta.Link]int)
}
