// Package bitvec provides the rank/select-capable bit vector the succinct
// topology and path stores use to mark record boundaries
// (spec.md §4.4). It layers Select1 on top of github.com/bits-and-blooms/bitset's
// Rank, which has no native select support, via binary search over rank —
// O(log n) instead of the O(1) a dedicated select structure would give, a
// deliberate scope trade documented in DESIGN.md.
package bitvec

import "github.com/bits-and-blooms/bitset"

// BitVector is an immutable-after-construction bit vector with O(1) Rank1
// and O(log n) Select1, backed by bitset.BitSet.
type BitVector struct {
	bits *bitset.BitSet
	n    uint
	ones uint
}

// New returns a zeroed BitVector of length n.
func New(n uint) *BitVector {
	return &BitVector{bits: bitset.New(n), n: n}
}

// Set sets bit i to 1. Must be called only during construction, before any
// Rank1/Select1 query (matching ST's build-then-freeze lifecycle).
func (v *BitVector) Set(i uint) {
	if !v.bits.Test(i) {
		v.ones++
	}
	v.bits.Set(i)
}

// Test reports whether bit i is set.
func (v *BitVector) Test(i uint) bool {
	return v.bits.Test(i)
}

// Len returns the bit vector's length.
func (v *BitVector) Len() uint { return v.n }

// Ones returns the total number of set bits.
func (v *BitVector) Ones() uint { return v.ones }

// Rank1 returns the number of set bits in [0, i) (exclusive upper bound),
// matching the rank_1 convention spec.md §4.4.1 uses for ids_bv.
func (v *BitVector) Rank1(i uint) uint {
	if i == 0 {
		return 0
	}
	return uint(v.bits.Rank(i - 1))
}

// Select1 returns the 0-based position of the r-th set bit (1-indexed: r=1
// is the first set bit), or (0, false) if fewer than r bits are set.
func (v *BitVector) Select1(r uint) (uint, bool) {
	if r == 0 || r > v.ones {
		return 0, false
	}
	lo, hi := uint(0), v.n-1
	for lo < hi {
		mid := lo + (hi-lo)/2
		if v.Rank1(mid+1) >= r {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return lo, true
}
