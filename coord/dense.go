package coord

// Dense is a direct-addressed Map backed by a grow-on-demand slice, suited
// for external IDs that are near-contiguous.
type Dense struct {
	// slots[external] = internal+1, so 0 means "absent" without a separate
	// presence bitmap.
	slots []uint64
}

// NewDense returns an empty Dense coordinate map.
func NewDense() *Dense { return &Dense{} }

// Insert records external ↦ internal, growing the backing slice if needed.
func (d *Dense) Insert(external, internal uint64) {
	if n := external + 1; uint64(len(d.slots)) < n {
		grown := make([]uint64, n)
		copy(grown, d.slots)
		d.slots = grown
	}
	d.slots[external] = internal + 1
}

// Lookup returns the internal ID for external, or 0 if absent.
func (d *Dense) Lookup(external uint64) uint64 {
	if external >= uint64(len(d.slots)) {
		return 0
	}
	v := d.slots[external]
	if v == 0 {
		return 0
	}
	return v - 1
}

// Has reports whether external has a recorded mapping.
func (d *Dense) Has(external uint64) bool {
	return external < uint64(len(d.slots)) && d.slots[external] != 0
}

// Len returns the current backing-slice capacity (the highest external ID
// seen so far, plus one).
func (d *Dense) Len() int { return len(d.slots) }
