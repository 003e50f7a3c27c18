// Package seqgraph is an in-memory bidirected sequence-graph engine: a data
// structure library for pangenome-style variation graphs, whose nodes carry
// DNA sequences and whose edges connect oriented *sides* of nodes rather
// than nodes themselves.
//
// Subpackages:
//
//	bta/       — the bidirected topology algebra: pure value types over
//	             NodeId, Side, Link, LinkType. No storage.
//	coord/     — coordinate maps translating external IDs to internal ones
//	             across a dynamic→succinct conversion.
//	dynamic/   — the mutable topology store and node/edge/path property
//	             layers, plus the node-flip and edge-canonicalization
//	             machinery that rewrites orientations coherently.
//	succinct/  — the frozen, rank/select-indexed packed representation of
//	             the same graph, built once from a dynamic.Graph.
//	directed/  — the non-bidirected degenerate case: single side per node,
//	             a thin facade over the dynamic store.
//	seqerr/    — the sentinel errors and diagnostic sink shared by every
//	             store.
//
// A typical build loop constructs a dynamic.Graph, mutates it (adding
// nodes/edges/paths, flipping node or edge orientation, canonicalizing
// edges), then freezes it with succinct.Build once editing is done.
package seqgraph
