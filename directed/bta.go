package directed

import "github.com/katalvlaran/seqgraph/bta"

// ForEachSide invokes cb once, with id's single side, per spec.md §4.1's
// directed degenerate case ("for_each_side emits a single side").
func ForEachSide(id bta.NodeId, cb func(bta.Side) bool) bool { return cb(side(id)) }

// IsValidLinkType reports whether t is the only link type the directed
// degenerate case allows (spec.md §4.1: "is_valid(type) ⇔ type==0").
func IsValidLinkType(t bta.LinkType) bool { return t == bta.StartStart }

// LinkType always returns StartStart, the only directed link type.
func LinkType(bta.Side, bta.Side) bta.LinkType { return bta.StartStart }
