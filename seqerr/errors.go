// Package seqerr collects the sentinel errors shared by the dynamic and
// succinct sequence-graph stores, mirroring the error taxonomy of spec.md §7.
package seqerr

import "errors"

var (
	// ErrZeroID indicates a NodeId of zero was used where a live node is
	// required; zero is reserved as the "no such node" sentinel.
	ErrZeroID = errors.New("seqgraph: node id zero is reserved")

	// ErrDuplicateID indicates add_node was called with an external ID that
	// already identifies a live node.
	ErrDuplicateID = errors.New("seqgraph: duplicate node id")

	// ErrMissingNode indicates an operation referenced a NodeId that is not
	// a live node.
	ErrMissingNode = errors.New("seqgraph: node does not exist")

	// ErrDuplicateEdge indicates add_edge (safe mode) was called for a link
	// that already exists.
	ErrDuplicateEdge = errors.New("seqgraph: duplicate edge")

	// ErrInvalidRank indicates a rank outside [1, node_count] was used.
	ErrInvalidRank = errors.New("seqgraph: rank out of range")

	// ErrInvalidLinkType indicates a LinkType outside {0,1,2,3}.
	ErrInvalidLinkType = errors.New("seqgraph: invalid link type")

	// ErrImmutable indicates a mutation was attempted on a succinct store,
	// which only supports Clear after construction.
	ErrImmutable = errors.New("seqgraph: succinct store is immutable")

	// ErrMissingPath indicates an operation referenced a PathId that is not
	// a live path.
	ErrMissingPath = errors.New("seqgraph: path does not exist")

	// ErrFlipRejected indicates a batched NodeFlipper/EdgeFlipper primitive
	// could not apply a staged flip (e.g. id no longer present). It is
	// reported through the batch's warn sink, never returned to the caller.
	ErrFlipRejected = errors.New("seqgraph: flip rejected")
)

// Sink is an optional diagnostic callback used for non-fatal conditions:
// ambiguous canonicalization (spec.md §4.8.4) and rejected batched flips
// (spec.md §4.8.2). A nil Sink is a no-op.
type Sink func(msg string)

// Emit calls s(msg) if s is non-nil.
func (s Sink) Emit(msg string) {
	if s != nil {
		s(msg)
	}
}
