package vec

import "github.com/bits-and-blooms/bitset"

// Mask is a fixed-size boolean selector aligned 1:1 with matrix rows.
// By convention a set bit marks an interior (free) degree of freedom and
// a cleared bit marks a boundary (constrained) one. Masks are read-only
// during apply calls.
type Mask struct {
	bits *bitset.BitSet
	size int
}

// NewMask returns an all-false Mask of size n.
func NewMask(n int) *Mask {
	return &Mask{bits: bitset.New(uint(n)), size: n}
}

// Size returns the number of selectable positions.
func (m *Mask) Size() int { return m.size }

// Get reports whether position i is selected.
func (m *Mask) Get(i int) bool { return m.bits.Test(uint(i)) }

// Set selects or deselects position i.
func (m *Mask) Set(i int, v bool) {
	m.bits.SetTo(uint(i), v)
}

// SetAll selects or deselects every position.
func (m *Mask) SetAll(v bool) {
	if v {
		for i := 0; i < m.size; i++ {
			m.bits.Set(uint(i))
		}
		return
	}
	m.bits.ClearAll()
}

// Count returns the number of selected positions.
func (m *Mask) Count() int { return int(m.bits.Count()) }

// Clone returns a deep copy.
func (m *Mask) Clone() *Mask {
	return &Mask{bits: m.bits.Clone(), size: m.size}
}
