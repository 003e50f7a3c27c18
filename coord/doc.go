// Package coord implements the coordinate map: the translation between
// external (caller- or file-assigned) node IDs and a store's internal IDs.
//
// Three implementations share the Map interface:
//
//   - Identity: f(x) = x, no storage. Used by dynamic stores by default,
//     since a dynamic store's internal IDs already are the external ones.
//   - Dense: a direct-addressed slice, suited to external IDs that are
//     near-contiguous.
//   - Sparse: a hash map, suited to external IDs that are not contiguous.
//
// A succinct store always embeds a coordinate map so that original IDs can
// be recovered after conversion (spec.md §3); succinct.BuildTopology always
// uses Sparse for it, whatever the shape of the IDs. The dynamic store uses
// Identity by default.
package coord
