package bta

// StartSide returns the Start side of id.
func StartSide(id NodeId) Side { return Side{Node: id, Tag: Start} }

// EndSide returns the End side of id.
func EndSide(id NodeId) Side { return Side{Node: id, Tag: End} }

// OppositeSide returns the other side of the same node.
func OppositeSide(s Side) Side {
	if s.Tag == Start {
		return Side{Node: s.Node, Tag: End}
	}
	return Side{Node: s.Node, Tag: Start}
}

// IDOf returns the node a side belongs to.
func IDOf(s Side) NodeId { return s.Node }

// FromSide returns the origin side of a link.
func FromSide(l Link) Side { return l.From }

// ToSide returns the destination side of a link.
func ToSide(l Link) Side { return l.To }

// MakeLink builds a Link from two sides.
func MakeLink(from, to Side) Link { return Link{From: from, To: to} }

// MakeLinkFromType builds a Link from two node IDs and an explicit LinkType.
func MakeLinkFromType(from, to NodeId, t LinkType) Link {
	return Link{
		From: Side{Node: from, Tag: fromTagOf(t)},
		To:   Side{Node: to, Tag: toTagOf(t)},
	}
}

// ComputeLinkType computes the LinkType of a (from, to) side pair:
// type = (from_tag << 1) | to_tag.
func ComputeLinkType(from, to Side) LinkType {
	return LinkType(uint8(from.Tag)<<1 | uint8(to.Tag))
}

// LinkTypeOf computes the LinkType of an existing Link.
func LinkTypeOf(l Link) LinkType { return ComputeLinkType(l.From, l.To) }

func fromTagOf(t LinkType) SideTag { return SideTag((uint8(t) >> 1) & 1) }
func toTagOf(t LinkType) SideTag   { return SideTag(uint8(t) & 1) }

// IsFromStart reports whether t encodes an edge leaving a Start side.
func IsFromStart(t LinkType) bool { return fromTagOf(t) == Start }

// IsToEnd reports whether t encodes an edge entering an End side.
func IsToEnd(t LinkType) bool { return toTagOf(t) == End }

// IsValid reports whether t is one of the four defined link types.
func IsValid(t LinkType) bool { return t <= EndEnd }

// IsValidFrom reports whether side could be the origin of a link of type t,
// i.e. side.Tag matches the from-tag encoded in t.
func IsValidFrom(side Side, t LinkType) bool {
	return IsValid(t) && side.Tag == fromTagOf(t)
}

// IsValidTo reports whether side could be the destination of a link of type
// t, i.e. side.Tag matches the to-tag encoded in t.
func IsValidTo(side Side, t LinkType) bool {
	return IsValid(t) && side.Tag == toTagOf(t)
}

// ForEachSide invokes cb(StartSide(id)) then cb(EndSide(id)), stopping early
// if cb returns false. Returns false iff cb returned false at least once.
func ForEachSide(id NodeId, cb func(Side) bool) bool {
	if !cb(StartSide(id)) {
		return false
	}
	return cb(EndSide(id))
}
