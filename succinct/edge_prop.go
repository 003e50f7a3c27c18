package succinct

import "github.com/katalvlaran/seqgraph/bta"

// EdgeProps is the succinct edge-property layer (spec.md §4.6): a thin
// accessor over the overlap pad slot Topology already carries inline on
// both the outgoing and incoming copies of every edge entry, rather than a
// separate map the way the dynamic form keeps one. There is nothing to
// store here beyond a back-reference: the packed vector itself is the
// property store.
type EdgeProps struct {
	topo *Topology
}

// NewEdgeProps returns an EdgeProps view over topo.
func NewEdgeProps(topo *Topology) *EdgeProps { return &EdgeProps{topo: topo} }

// Overlap returns the overlap recorded for edge (from,to), or (0,false) if
// the edge is not present.
func (e *EdgeProps) Overlap(from, to bta.Side) (uint64, bool) {
	return e.topo.EdgeOverlap(from, to)
}
