package sparse

import (
	"math"
	"sort"

	"github.com/katalvlaran/lvlmat/vec"
)

// Row is the capability set a RowMatrix requires of one sparse row.
// Implementations store (column, value) pairs only; the owning row index
// is passed into every call so a row can recognize its diagonal without
// carrying positional state.
//
// Entries may report stored zeros; NumNonZeroes counts actual non-zero
// values while NumStoredEntries counts storage slots.
type Row interface {
	// Get returns the value at column col, 0 if no entry is stored.
	Get(row, col int) float64
	// Set stores value at column col, creating the entry if absent.
	Set(row, col int, value float64)
	// Add accumulates value into column col, creating the entry if
	// absent. Adding zero to an absent column stores nothing.
	Add(row, col int, value float64)
	// Scale multiplies every stored value by factor.
	Scale(row int, factor float64)
	// Dot returns the inner product of the row with arg.
	Dot(arg *vec.Vector, row int) float64
	// DotMasked returns the inner product restricted to columns whose
	// mask bit satisfies include.
	DotMasked(arg *vec.Vector, row int, mask *vec.Mask, include MaskPredicate) float64
	// Sum returns the sum of all stored values.
	Sum(row int) float64
	// SetZero removes every entry, keeping the instance.
	SetZero()
	// NumNonZeroes returns the number of stored non-zero values.
	NumNonZeroes() int
	// NumStoredEntries returns the number of storage slots in use.
	NumStoredEntries() int
	// Entries returns the stored entries. Order is unspecified and
	// stored zeros may be included.
	Entries(row int) []Entry
	// SortedEntries returns the stored entries in ascending column
	// order.
	SortedEntries(row int) []Entry
	// AddMultiple accumulates factor * other into the row.
	AddMultiple(row int, other Row, factor float64)
	// ApproxEqual reports whether the row and other agree entry-wise
	// within eps.
	ApproxEqual(row int, other Row, eps float64) bool
	// HasNaNsOrInfs reports whether any stored value is NaN or ±Inf.
	HasNaNsOrInfs() bool
	// Clone returns a deep copy of the row.
	Clone() Row
}

// DynamicRow is the default Row implementation: a dynamic array of
// entries kept sorted by ascending column. Lookup is O(log n), insertion
// O(n), enumeration O(n).
type DynamicRow struct {
	entries []Entry
}

// assert interface compliance at compile time.
var _ Row = (*DynamicRow)(nil)

// NewDynamicRow returns an empty DynamicRow.
func NewDynamicRow() *DynamicRow {
	return &DynamicRow{}
}

// find returns the position of col and whether an entry exists there.
// When absent, the position is the sorted insertion point.
func (r *DynamicRow) find(col int) (int, bool) {
	pos := sort.Search(len(r.entries), func(k int) bool {
		return r.entries[k].Col >= col
	})
	return pos, pos < len(r.entries) && r.entries[pos].Col == col
}

func (r *DynamicRow) insertAt(pos, col int, value float64) {
	r.entries = append(r.entries, Entry{})
	copy(r.entries[pos+1:], r.entries[pos:])
	r.entries[pos] = Entry{Col: col, Value: value}
}

// Get returns the value stored at col, 0 if absent.
func (r *DynamicRow) Get(_, col int) float64 {
	if pos, ok := r.find(col); ok {
		return r.entries[pos].Value
	}
	return 0
}

// Set stores value at col. A stored zero remains stored; use
// EraseZeroEntries to drop it.
func (r *DynamicRow) Set(_, col int, value float64) {
	pos, ok := r.find(col)
	if ok {
		r.entries[pos].Value = value
		return
	}
	r.insertAt(pos, col, value)
}

// Add accumulates value into col. Adding zero to an absent column is a
// no-op so assembly loops do not grow structure for vanishing
// contributions.
func (r *DynamicRow) Add(_, col int, value float64) {
	pos, ok := r.find(col)
	if ok {
		r.entries[pos].Value += value
		return
	}
	if value == 0 {
		return
	}
	r.insertAt(pos, col, value)
}

// Scale multiplies every stored value by factor.
func (r *DynamicRow) Scale(_ int, factor float64) {
	for k := range r.entries {
		r.entries[k].Value *= factor
	}
}

// Dot returns the inner product of the row with arg.
func (r *DynamicRow) Dot(arg *vec.Vector, _ int) float64 {
	sum := 0.0
	for _, e := range r.entries {
		sum += e.Value * arg.At(e.Col)
	}
	return sum
}

// DotMasked returns the inner product restricted to columns whose mask
// bit satisfies include.
func (r *DynamicRow) DotMasked(arg *vec.Vector, _ int, mask *vec.Mask, include MaskPredicate) float64 {
	sum := 0.0
	for _, e := range r.entries {
		if include(mask.Get(e.Col)) {
			sum += e.Value * arg.At(e.Col)
		}
	}
	return sum
}

// Sum returns the sum of all stored values.
func (r *DynamicRow) Sum(_ int) float64 {
	sum := 0.0
	for _, e := range r.entries {
		sum += e.Value
	}
	return sum
}

// SetZero removes every entry, keeping the allocated capacity.
func (r *DynamicRow) SetZero() {
	r.entries = r.entries[:0]
}

// NumNonZeroes returns the number of stored non-zero values.
func (r *DynamicRow) NumNonZeroes() int {
	n := 0
	for _, e := range r.entries {
		if e.Value != 0 {
			n++
		}
	}
	return n
}

// NumStoredEntries returns the number of storage slots in use.
func (r *DynamicRow) NumStoredEntries() int {
	return len(r.entries)
}

// Entries returns a copy of the stored entries. For DynamicRow the copy
// happens to be column-sorted already.
func (r *DynamicRow) Entries(_ int) []Entry {
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// SortedEntries returns a copy of the stored entries in ascending
// column order.
func (r *DynamicRow) SortedEntries(row int) []Entry {
	return r.Entries(row)
}

// AddMultiple accumulates factor * other into the row. When other is a
// DynamicRow the two entry lists are merged column-sorted in one pass;
// otherwise each of other's entries is accumulated individually.
func (r *DynamicRow) AddMultiple(row int, other Row, factor float64) {
	if o, ok := other.(*DynamicRow); ok {
		r.mergeScaled(o.entries, factor)
		return
	}
	for _, e := range other.SortedEntries(row) {
		r.Add(row, e.Col, factor*e.Value)
	}
}

// mergeScaled merges factor * src into the entry list with a single
// sorted two-pointer pass: matching columns accumulate, the rest insert.
func (r *DynamicRow) mergeScaled(src []Entry, factor float64) {
	if len(src) == 0 {
		return
	}
	merged := make([]Entry, 0, len(r.entries)+len(src))
	i, j := 0, 0
	for i < len(r.entries) && j < len(src) {
		switch {
		case r.entries[i].Col < src[j].Col:
			merged = append(merged, r.entries[i])
			i++
		case r.entries[i].Col > src[j].Col:
			merged = append(merged, Entry{Col: src[j].Col, Value: factor * src[j].Value})
			j++
		default:
			merged = append(merged, Entry{Col: src[j].Col, Value: r.entries[i].Value + factor*src[j].Value})
			i++
			j++
		}
	}
	merged = append(merged, r.entries[i:]...)
	for ; j < len(src); j++ {
		merged = append(merged, Entry{Col: src[j].Col, Value: factor * src[j].Value})
	}
	r.entries = merged
}

// ApproxEqual reports whether the row and other agree entry-wise within
// eps, including columns stored on only one side.
func (r *DynamicRow) ApproxEqual(row int, other Row, eps float64) bool {
	for _, e := range r.entries {
		if math.Abs(e.Value-other.Get(row, e.Col)) > eps {
			return false
		}
	}
	for _, e := range other.Entries(row) {
		if math.Abs(e.Value-r.Get(row, e.Col)) > eps {
			return false
		}
	}
	return true
}

// HasNaNsOrInfs reports whether any stored value is NaN or ±Inf.
func (r *DynamicRow) HasNaNsOrInfs() bool {
	for _, e := range r.entries {
		if math.IsNaN(e.Value) || math.IsInf(e.Value, 0) {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the row.
func (r *DynamicRow) Clone() Row {
	out := &DynamicRow{entries: make([]Entry, len(r.entries))}
	copy(out.entries, r.entries)
	return out
}

// EraseZeroEntries removes entries whose stored value is exactly zero.
func (r *DynamicRow) EraseZeroEntries() {
	kept := r.entries[:0]
	for _, e := range r.entries {
		if e.Value != 0 {
			kept = append(kept, e)
		}
	}
	r.entries = kept
}

// EraseCol removes the entry at col, if any. Unlike Set(col, 0) this
// removes structure, not just the value.
func (r *DynamicRow) EraseCol(col int) {
	if pos, ok := r.find(col); ok {
		r.entries = append(r.entries[:pos], r.entries[pos+1:]...)
	}
}
