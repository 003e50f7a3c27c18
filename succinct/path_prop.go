package succinct

import (
	"github.com/katalvlaran/seqgraph/bta"
	"github.com/katalvlaran/seqgraph/dynamic"
	"github.com/katalvlaran/seqgraph/succinct/internal/bitvec"
)

const pathRecordCoreLen = 4

// PathProps is the succinct path-property layer (spec.md §4.7): a single
// packed integer vector mirroring ST's own layout — one record per path,
// (path_id, path_length, name_start, name_length, step_1..step_plen) laid
// out back to back — with a companion ids_bv bit vector marking each
// record's start offset and giving rank/select navigation over records the
// same way Topology's idsBV does over node headers, plus a concatenated
// name buffer.
type PathProps struct {
	records   []uint64
	idsBV     *bitvec.BitVector
	names     []byte
	pathCount uint64
}

// Count returns the number of paths.
func (pp *PathProps) Count() uint64 { return pp.pathCount }

// IDToRank returns the 1-based rank of the path record starting at offset.
func (pp *PathProps) IDToRank(offset uint64) uint64 {
	return uint64(pp.idsBV.Rank1(uint(offset) + 1))
}

// RankToID returns the offset of the record at 1-based rank r, or
// (0, false) if r is out of [1, Count()].
func (pp *PathProps) RankToID(r uint64) (uint64, bool) {
	pos, ok := pp.idsBV.Select1(uint(r))
	return uint64(pos), ok
}

// successorID returns the offset of the record immediately following the
// one at offset, or (0, false) if offset is the last record.
func (pp *PathProps) successorID(offset uint64) (uint64, bool) {
	next := offset + pathRecordCoreLen + pp.Length(offset)
	if next >= uint64(len(pp.records)) {
		return 0, false
	}
	return next, true
}

// ForEachPath iterates path records in ascending rank order, invoking
// cb(offset). Returns false iff cb returned false.
func (pp *PathProps) ForEachPath(cb func(offset uint64) bool) bool {
	if pp.pathCount == 0 {
		return true
	}
	offset, ok := pp.RankToID(1)
	for ok {
		if !cb(offset) {
			return false
		}
		offset, ok = pp.successorID(offset)
	}
	return true
}

// ID returns the path_id field of the record at offset.
func (pp *PathProps) ID(offset uint64) uint64 { return pp.records[offset] }

// Length returns the number of steps in the record at offset.
func (pp *PathProps) Length(offset uint64) uint64 { return pp.records[offset+1] }

// Name returns the name of the record at offset.
func (pp *PathProps) Name(offset uint64) string {
	start, length := pp.records[offset+2], pp.records[offset+3]
	return string(pp.names[start : start+length])
}

// Step returns the i-th step (0-based) of the record at offset.
func (pp *PathProps) Step(offset uint64, i uint64) dynamic.OrientedNode {
	return dynamic.OrientedNode(pp.records[offset+pathRecordCoreLen+i])
}

// ForEachStep invokes cb on every step of the record at offset, in order.
// Returns false iff cb returned false.
func (pp *PathProps) ForEachStep(offset uint64, cb func(step dynamic.OrientedNode) bool) bool {
	n := pp.Length(offset)
	for i := uint64(0); i < n; i++ {
		if !cb(pp.Step(offset, i)) {
			return false
		}
	}
	return true
}

// ApplyCoordinate rewrites every step's NodeId through f, across every path,
// preserving each step's reverse bit (spec.md §4.7's apply_coordinate(f)).
func (pp *PathProps) ApplyCoordinate(f func(bta.NodeId) bta.NodeId) {
	pp.ForEachPath(func(offset uint64) bool {
		base := offset + pathRecordCoreLen
		n := pp.Length(offset)
		for i := uint64(0); i < n; i++ {
			step := dynamic.OrientedNode(pp.records[base+i])
			pp.records[base+i] = uint64(dynamic.MakeOrientedNode(f(step.ID()), step.IsReverse()))
		}
		return true
	})
}

// BuildPathProps constructs a succinct PathProps from a dynamic one,
// filling every record with its dynamic-space step IDs first, then applying
// topo's coordinate map in one ApplyCoordinate pass — mirroring
// BuildTopology's size-then-identify construction shape.
func BuildPathProps(dt *dynamic.PathProps, topo *Topology) *PathProps {
	var paths []dynamic.Path
	dt.ForEachPath(func(p dynamic.Path) bool {
		paths = append(paths, p)
		return true
	})

	length := uint64(0)
	for _, p := range paths {
		length += pathRecordCoreLen + uint64(len(p.Steps))
	}

	pp := &PathProps{
		records:   make([]uint64, length),
		idsBV:     bitvec.New(uint(length)),
		pathCount: uint64(len(paths)),
	}

	pos := uint64(0)
	for _, p := range paths {
		pp.idsBV.Set(uint(pos))

		nameStart := uint64(len(pp.names))
		pp.names = append(pp.names, p.Name...)

		pp.records[pos] = p.ID
		pp.records[pos+1] = uint64(len(p.Steps))
		pp.records[pos+2] = nameStart
		pp.records[pos+3] = uint64(len(p.Name))
		for i, step := range p.Steps {
			pp.records[pos+pathRecordCoreLen+uint64(i)] = uint64(step)
		}
		pos += pathRecordCoreLen + uint64(len(p.Steps))
	}

	pp.ApplyCoordinate(func(id bta.NodeId) bta.NodeId {
		return bta.NodeId(topo.Coordinate().Lookup(uint64(id)))
	})
	return pp
}
