// Package succinct is the succinct topology store (ST) and its node/edge/path
// property layers (spec.md §4.4-§4.7): a single packed integer vector plus a
// parallel rank/select bit vector, built once from a dynamic.Graph and
// immutable thereafter except for Clear.
//
// Layout follows spec.md §4.4.1: each node entry is a header
// (payload_id, outdegree, indegree, seq_start, seq_length) followed by its
// outgoing edge entries and then its incoming edge entries, each edge entry
// being (adj_id, linktype, overlap). NodeId values here are literally the
// offset at which a node's header begins in the packed vector.
//
// This implementation stores the packed vector as a []uint64 slice rather
// than a bit-width-minimized int_vector<w>: Go has no template-parameterized
// fixed-width integer container the way the source's sdsl-based original
// does, and modeling one would buy bit-level density at a real cost in
// clarity for a data structure whose defining property — O(1) rank/select
// navigation over a single flat vector — is unaffected by the slot width.
// Recorded in DESIGN.md.
package succinct
