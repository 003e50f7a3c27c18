package coord

// Sparse is a hash-map-backed Map, suited for external IDs that are not
// contiguous (large random IDs, or IDs with big gaps).
type Sparse struct {
	m map[uint64]uint64
}

// NewSparse returns an empty Sparse coordinate map.
func NewSparse() *Sparse { return &Sparse{m: make(map[uint64]uint64)} }

// Insert records external ↦ internal.
func (s *Sparse) Insert(external, internal uint64) { s.m[external] = internal }

// Lookup returns the internal ID for external, or 0 if absent.
func (s *Sparse) Lookup(external uint64) uint64 { return s.m[external] }

// Has reports whether external has a recorded mapping.
func (s *Sparse) Has(external uint64) bool {
	_, ok := s.m[external]
	return ok
}

// Len returns the number of recorded mappings.
func (s *Sparse) Len() int { return len(s.m) }
