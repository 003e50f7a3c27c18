// Package dynamic implements the mutable, map-backed representation of a
// bidirected sequence graph: the dynamic topology store (spec.md §4.3), its
// node/edge/path property layers (§4.5–§4.7), and the Graph type that
// composes them (§4.8) with node/edge orientation flipping and
// edge-canonicalization.
//
// Mutations are guarded by separate sync.RWMutex locks per concern
// (topology vs. properties), following the teacher library's convention of
// minimizing lock contention across independently-mutated maps; the data
// structure itself has no concurrent-mutation semantics (spec.md §5) — the
// locks document and enforce the "exclusive access during mutation" boundary
// rather than provide general thread-safety across compound operations.
//
// Errors:
//
//	seqerr.ErrZeroID        - add_node with ID zero after an explicit ID was accepted.
//	seqerr.ErrDuplicateID   - add_node with an ID that already exists.
//	seqerr.ErrMissingNode   - add_edge/extend_path referencing unknown node.
//	seqerr.ErrDuplicateEdge - add_edge (safe mode) for an existing link.
//	seqerr.ErrMissingPath   - path operation referencing unknown PathId.
//
// A rank outside [1, node_count] is not reported as an error: RankToID
// returns bta.NoNode for it.
package dynamic
