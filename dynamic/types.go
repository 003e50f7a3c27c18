package dynamic

import "github.com/katalvlaran/seqgraph/bta"

// NodeId re-exports bta.NodeId for callers that only need the ID type.
type NodeId = bta.NodeId

// PathId identifies a path within a PathProps.
type PathId = uint64

// Node is the per-node payload: a DNA sequence and a display name.
type Node struct {
	Sequence string
	Name     string
}

// EdgePayload is the per-edge payload: the overlap length in bases.
type EdgePayload struct {
	Overlap uint64
}

// oriented-node packing width. NodeId is 64 bits wide in this build; the
// reverse flag is packed into the high bit as spec.md §3 requires.
const orientedWidth = 64
const reverseBit = uint64(1) << (orientedWidth - 1)
const idMask = reverseBit - 1

// OrientedNode packs a NodeId with a reverse flag into a single unsigned
// integer, high bit = reverse.
type OrientedNode uint64

// MakeOrientedNode packs id and reversed into an OrientedNode.
func MakeOrientedNode(id NodeId, reversed bool) OrientedNode {
	v := uint64(id) & idMask
	if reversed {
		v |= reverseBit
	}
	return OrientedNode(v)
}

// ID extracts the NodeId, masking off the reverse bit.
func (o OrientedNode) ID() NodeId { return NodeId(uint64(o) & idMask) }

// IsReverse extracts the orientation flag via a single right-shift.
func (o OrientedNode) IsReverse() bool { return uint64(o)>>(orientedWidth-1) != 0 }

// Flipped returns o with its reverse bit toggled.
func (o OrientedNode) Flipped() OrientedNode {
	return MakeOrientedNode(o.ID(), !o.IsReverse())
}

// Path is a named sequence of oriented node references.
type Path struct {
	ID    PathId
	Name  string
	Steps []OrientedNode
}
