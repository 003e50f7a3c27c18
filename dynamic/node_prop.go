package dynamic

import "sync"

// dna5Complement maps each IUPAC-ish base to its complement; anything
// outside ACGTN is left unchanged (treated as already-ambiguous).
var dna5Complement = map[byte]byte{
	'A': 'T', 'T': 'A', 'C': 'G', 'G': 'C', 'N': 'N',
	'a': 't', 't': 'a', 'c': 'g', 'g': 'c', 'n': 'n',
}

// ReverseComplement returns the reverse complement of a DNA sequence. Bases
// outside the DNA5 alphabet pass through unchanged, matching the byte-per-
// base fallback spec.md §9 permits for the dynamic representation.
func ReverseComplement(seq string) string {
	out := make([]byte, len(seq))
	for i := 0; i < len(seq); i++ {
		b := seq[len(seq)-1-i]
		if c, ok := dna5Complement[b]; ok {
			out[i] = c
		} else {
			out[i] = b
		}
	}
	return string(out)
}

// NodeProps is the dynamic node-property layer (spec.md §4.5): a sequence of
// Node records in rank order, plus running sums of sequence and name
// lengths so that total-length queries used during dynamic→succinct
// conversion are O(1) instead of O(node_count).
type NodeProps struct {
	mu sync.RWMutex

	records    []Node // records[rank-1] == node at that rank
	seqLenSum  uint64
	nameLenSum uint64
}

// NewNodeProps returns an empty dynamic node-property layer.
func NewNodeProps() *NodeProps { return &NodeProps{} }

// Append adds n as the record for the next rank (the caller is responsible
// for keeping this in lockstep with Topology.AddNode's rank assignment).
func (p *NodeProps) Append(n Node) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.records = append(p.records, n)
	p.seqLenSum += uint64(len(n.Sequence))
	p.nameLenSum += uint64(len(n.Name))
}

// At returns the Node record at the given 1-based rank.
func (p *NodeProps) At(rank uint64) Node {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if rank == 0 || rank > uint64(len(p.records)) {
		return Node{}
	}
	return p.records[rank-1]
}

// Set overwrites the Node record at the given 1-based rank, keeping the
// running length sums consistent.
func (p *NodeProps) Set(rank uint64, n Node) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if rank == 0 || rank > uint64(len(p.records)) {
		return
	}
	old := p.records[rank-1]
	p.seqLenSum += uint64(len(n.Sequence)) - uint64(len(old.Sequence))
	p.nameLenSum += uint64(len(n.Name)) - uint64(len(old.Name))
	p.records[rank-1] = n
}

// TotalSequenceLength returns the sum of all sequence lengths, O(1).
func (p *NodeProps) TotalSequenceLength() uint64 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.seqLenSum
}

// TotalNameLength returns the sum of all name lengths, O(1).
func (p *NodeProps) TotalNameLength() uint64 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.nameLenSum
}

// Count returns the number of node records.
func (p *NodeProps) Count() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.records)
}

// FlipOrientation reverse-complements the sequence at rank, and if annotate
// is set, toggles a trailing "-" on the name (appending if absent, removing
// if present). spec.md §4.5.
func (p *NodeProps) FlipOrientation(rank uint64, annotate bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if rank == 0 || rank > uint64(len(p.records)) {
		return
	}
	rec := &p.records[rank-1]
	rec.Sequence = ReverseComplement(rec.Sequence) // reverse complement preserves length

	if !annotate {
		return
	}
	oldLen := len(rec.Name)
	if len(rec.Name) > 0 && rec.Name[len(rec.Name)-1] == '-' {
		rec.Name = rec.Name[:len(rec.Name)-1]
	} else {
		rec.Name = rec.Name + "-"
	}
	p.nameLenSum += uint64(len(rec.Name)) - uint64(oldLen)
}

// Clear drops all records and resets the running sums.
func (p *NodeProps) Clear() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.records = nil
	p.seqLenSum = 0
	p.nameLenSum = 0
}
