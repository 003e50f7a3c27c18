package succinct

import (
	"github.com/katalvlaran/seqgraph/bta"
	"github.com/katalvlaran/seqgraph/dynamic"
)

// dna5 codes pack each base into a nibble: two bases per byte, half the
// footprint of the dynamic form's one-byte-per-base string while staying
// trivial to index, an "equivalent fixed-alphabet packing" under spec.md
// §4.5's latitude to use anything other than literal 5-codes-per-byte.
// Bases outside ACGTN (case-folded) pack as the N code and decode as 'N':
// the succinct form trades exact-byte fidelity for density, matching the
// DNA5 alphabet's coarser domain than the dynamic form's raw byte string.
const (
	dna5A byte = 0
	dna5C byte = 1
	dna5G byte = 2
	dna5T byte = 3
	dna5N byte = 4
)

func dna5Encode(b byte) byte {
	switch b {
	case 'A', 'a':
		return dna5A
	case 'C', 'c':
		return dna5C
	case 'G', 'g':
		return dna5G
	case 'T', 't':
		return dna5T
	default:
		return dna5N
	}
}

func dna5Decode(code byte) byte {
	switch code {
	case dna5A:
		return 'A'
	case dna5C:
		return 'C'
	case dna5G:
		return 'G'
	case dna5T:
		return 'T'
	default:
		return 'N'
	}
}

// NodeProps is the succinct node-property layer (spec.md §4.5): a nibble-
// packed DNA5 sequence buffer and a byte-packed name buffer, both sliced by
// (start, length) — sequence bounds live in Topology's NODE_PAD slots, name
// bounds in the rank-indexed arrays here (spec.md reserves NODE_PAD only for
// sequence_start/sequence_length).
type NodeProps struct {
	seq      []byte // nibble-packed, two bases per byte
	baseLen  uint64 // total bases packed so far
	names    []byte
	nameOff  []uint64 // nameOff[rank-1] = byte offset into names
	nameLen  []uint64 // nameLen[rank-1] = byte length
}

func (np *NodeProps) appendSequence(seq string) (start, length uint64) {
	start = np.baseLen
	needBytes := (np.baseLen + uint64(len(seq)) + 1) / 2
	if uint64(len(np.seq)) < needBytes {
		grown := make([]byte, needBytes)
		copy(grown, np.seq)
		np.seq = grown
	}
	for i := 0; i < len(seq); i++ {
		idx := np.baseLen
		code := dna5Encode(seq[i])
		byteIdx := idx / 2
		if idx%2 == 0 {
			np.seq[byteIdx] = (np.seq[byteIdx] &^ 0x0F) | code
		} else {
			np.seq[byteIdx] = (np.seq[byteIdx] &^ 0xF0) | (code << 4)
		}
		np.baseLen++
	}
	return start, uint64(len(seq))
}

func (np *NodeProps) decodeSequence(start, length uint64) string {
	out := make([]byte, length)
	for i := uint64(0); i < length; i++ {
		idx := start + i
		byteIdx := idx / 2
		var code byte
		if idx%2 == 0 {
			code = np.seq[byteIdx] & 0x0F
		} else {
			code = (np.seq[byteIdx] >> 4) & 0x0F
		}
		out[i] = dna5Decode(code)
	}
	return string(out)
}

// BuildNodeProps constructs a succinct NodeProps from a dynamic one, writing
// each node's sequence bounds into topo's NODE_PAD slots as it packs the
// sequence, in rank order (spec.md §4.5).
func BuildNodeProps(dt *dynamic.NodeProps, topo *Topology) *NodeProps {
	n := topo.NodeCount()
	np := &NodeProps{
		nameOff: make([]uint64, n),
		nameLen: make([]uint64, n),
	}
	for r := uint64(1); r <= n; r++ {
		rec := dt.At(r)
		id := topo.RankToID(r)

		start, length := np.appendSequence(rec.Sequence)
		topo.SetSequenceBounds(id, start, length)

		np.nameOff[r-1] = uint64(len(np.names))
		np.names = append(np.names, rec.Name...)
		np.nameLen[r-1] = uint64(len(rec.Name))
	}
	return np
}

// Sequence returns the DNA sequence of id, using topo for its (start,length)
// bounds.
func (np *NodeProps) Sequence(topo *Topology, id bta.NodeId) string {
	return np.decodeSequence(topo.SequenceStart(id), topo.SequenceLength(id))
}

// Name returns the name of id, using topo to translate id to rank.
func (np *NodeProps) Name(topo *Topology, id bta.NodeId) string {
	r := topo.IDToRank(id)
	if r == 0 {
		return ""
	}
	start, length := np.nameOff[r-1], np.nameLen[r-1]
	return string(np.names[start : start+length])
}
