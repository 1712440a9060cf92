// File: coo/coo.go
package coo

import (
	"sort"

	"github.com/katalvlaran/lvlmat/logger"
	"github.com/katalvlaran/lvlmat/sparse"
	"github.com/katalvlaran/lvlmat/vec"
)

// Matrix is a triplet (coordinate-list) sparse matrix.
//
// Entries live in three parallel slices; duplicates are allowed and
// sum. The zero value is not usable — construct with New.
type Matrix struct {
	numRows, numCols int
	rowIndex         []int
	colIndex         []int
	value            []float64
}

// New returns an empty numRows×numCols triplet matrix.
func New(numRows, numCols int) *Matrix {
	return &Matrix{numRows: numRows, numCols: numCols}
}

// Dims returns the matrix extents.
func (m *Matrix) Dims() (numRows, numCols int) { return m.numRows, m.numCols }

// NumRows returns the number of rows.
func (m *Matrix) NumRows() int { return m.numRows }

// NumCols returns the number of columns.
func (m *Matrix) NumCols() int { return m.numCols }

// NNZ returns the number of stored entries, duplicates included.
// Call SumDuplicates first for a structural nonzero count.
func (m *Matrix) NNZ() int { return len(m.value) }

// Append records value at (i, j) without looking at existing entries.
// O(1) amortized; this is the assembly hot path. Panics with
// ErrIndexOutOfBounds if the indices lie outside the matrix extents.
func (m *Matrix) Append(i, j int, value float64) {
	if i < 0 || i >= m.numRows || j < 0 || j >= m.numCols {
		panic(ErrIndexOutOfBounds)
	}
	m.rowIndex = append(m.rowIndex, i)
	m.colIndex = append(m.colIndex, j)
	m.value = append(m.value, value)
}

// Get returns the logical value at (i, j): the sum of every stored
// entry with these coordinates. O(nnz) — a correctness reference, not
// a hot-path accessor.
func (m *Matrix) Get(i, j int) float64 {
	var sum float64
	for k, r := range m.rowIndex {
		if r == i && m.colIndex[k] == j {
			sum += m.value[k]
		}
	}
	return sum
}

// Set makes the logical value at (i, j) exactly value: every existing
// entry with these coordinates is zeroed, then one fresh entry is
// appended. O(nnz).
func (m *Matrix) Set(i, j int, value float64) {
	for k, r := range m.rowIndex {
		if r == i && m.colIndex[k] == j {
			m.value[k] = 0
		}
	}
	m.Append(i, j, value)
}

// Add adds value to the logical entry at (i, j). Alias of Append with
// bounds semantics unchanged; provided for symmetry with the other
// matrix types.
func (m *Matrix) Add(i, j int, value float64) {
	m.Append(i, j, value)
}

// SumDuplicates canonicalizes the triplet list: entries sharing a
// (row, col) pair are merged into one, and entries whose value is
// exactly zero are dropped. O(nnz log nnz), idempotent. The entry
// order after the call is unspecified.
func (m *Matrix) SumDuplicates() {
	n := len(m.value)
	if n == 0 {
		return
	}
	// Sort a permutation, not the slices themselves: one swap target
	// instead of three.
	perm := make([]int, n)
	for k := range perm {
		perm[k] = k
	}
	sort.Slice(perm, func(a, b int) bool {
		ka, kb := perm[a], perm[b]
		if m.rowIndex[ka] != m.rowIndex[kb] {
			return m.rowIndex[ka] < m.rowIndex[kb]
		}
		return m.colIndex[ka] < m.colIndex[kb]
	})
	for a := 0; a < n; {
		head := perm[a]
		b := a + 1
		for b < n && m.rowIndex[perm[b]] == m.rowIndex[head] && m.colIndex[perm[b]] == m.colIndex[head] {
			m.value[head] += m.value[perm[b]]
			m.value[perm[b]] = 0
			b++
		}
		a = b
	}
	m.removeZeroEntries()
}

// removeZeroEntries compacts the parallel slices, dropping entries
// whose value is exactly zero.
func (m *Matrix) removeZeroEntries() {
	keep := 0
	for k, v := range m.value {
		if v != 0 {
			m.rowIndex[keep] = m.rowIndex[k]
			m.colIndex[keep] = m.colIndex[k]
			m.value[keep] = v
			keep++
		}
	}
	m.rowIndex = m.rowIndex[:keep]
	m.colIndex = m.colIndex[:keep]
	m.value = m.value[:keep]
}

// EraseEntry physically removes every stored entry at (i, j),
// regardless of value.
func (m *Matrix) EraseEntry(i, j int) {
	keep := 0
	for k, r := range m.rowIndex {
		if r == i && m.colIndex[k] == j {
			continue
		}
		m.rowIndex[keep] = r
		m.colIndex[keep] = m.colIndex[k]
		m.value[keep] = m.value[k]
		keep++
	}
	m.rowIndex = m.rowIndex[:keep]
	m.colIndex = m.colIndex[:keep]
	m.value = m.value[:keep]
}

// SetRowToZero drops every entry of row i.
func (m *Matrix) SetRowToZero(i int) {
	keep := 0
	for k, r := range m.rowIndex {
		if r == i {
			continue
		}
		m.rowIndex[keep] = r
		m.colIndex[keep] = m.colIndex[k]
		m.value[keep] = m.value[k]
		keep++
	}
	m.rowIndex = m.rowIndex[:keep]
	m.colIndex = m.colIndex[:keep]
	m.value = m.value[:keep]
}

// SetColToZero drops every entry of column j.
func (m *Matrix) SetColToZero(j int) {
	keep := 0
	for k, c := range m.colIndex {
		if c == j {
			continue
		}
		m.rowIndex[keep] = m.rowIndex[k]
		m.colIndex[keep] = c
		m.value[keep] = m.value[k]
		keep++
	}
	m.rowIndex = m.rowIndex[:keep]
	m.colIndex = m.colIndex[:keep]
	m.value = m.value[:keep]
}

// RemoveRowCol eliminates degree of freedom i entirely: every entry in
// row i or column i is dropped, all indices above i are decremented to
// close the gap, and both extents shrink by one. This is removal, not
// merging — use the elimination helpers to fold a dof into another.
func (m *Matrix) RemoveRowCol(i int) {
	keep := 0
	for k, r := range m.rowIndex {
		c := m.colIndex[k]
		if r == i || c == i {
			continue
		}
		if r > i {
			r--
		}
		if c > i {
			c--
		}
		m.rowIndex[keep] = r
		m.colIndex[keep] = c
		m.value[keep] = m.value[k]
		keep++
	}
	m.rowIndex = m.rowIndex[:keep]
	m.colIndex = m.colIndex[:keep]
	m.value = m.value[:keep]
	m.numRows--
	m.numCols--
}

// AddMultipleRowToRow appends multiple times every entry of row from as
// entries of row to. Returns ErrSameIndex when from == to and
// ErrIndexOutOfBounds for indices outside the row extent.
func (m *Matrix) AddMultipleRowToRow(from, to int, multiple float64) error {
	if from < 0 || from >= m.numRows || to < 0 || to >= m.numRows {
		return ErrIndexOutOfBounds
	}
	if from == to {
		return ErrSameIndex
	}
	// Snapshot the length: Append grows the slices we iterate.
	n := len(m.value)
	for k := 0; k < n; k++ {
		if m.rowIndex[k] == from && m.value[k] != 0 {
			m.Append(to, m.colIndex[k], multiple*m.value[k])
		}
	}
	return nil
}

// AddMultipleColToCol appends multiple times every entry of column from
// as entries of column to. Returns ErrSameIndex when from == to and
// ErrIndexOutOfBounds for indices outside the column extent.
func (m *Matrix) AddMultipleColToCol(from, to int, multiple float64) error {
	if from < 0 || from >= m.numCols || to < 0 || to >= m.numCols {
		return ErrIndexOutOfBounds
	}
	if from == to {
		return ErrSameIndex
	}
	n := len(m.value)
	for k := 0; k < n; k++ {
		if m.colIndex[k] == from && m.value[k] != 0 {
			m.Append(m.rowIndex[k], to, multiple*m.value[k])
		}
	}
	return nil
}

// SetRowColToDiagonal drops every entry of row i and column i, then
// stores diagValue at (i, i).
func (m *Matrix) SetRowColToDiagonal(i int, diagValue float64) error {
	if i < 0 || i >= m.numRows || i >= m.numCols {
		return ErrIndexOutOfBounds
	}
	m.SetRowToZero(i)
	m.SetColToZero(i)
	m.Append(i, i, diagValue)
	return nil
}

// SetZero drops every stored entry, keeping capacity.
func (m *Matrix) SetZero() {
	m.rowIndex = m.rowIndex[:0]
	m.colIndex = m.colIndex[:0]
	m.value = m.value[:0]
}

// Reallocate resizes the matrix to numRows×numCols, dropping all
// entries.
func (m *Matrix) Reallocate(numRows, numCols int) {
	m.numRows = numRows
	m.numCols = numCols
	m.rowIndex = nil
	m.colIndex = nil
	m.value = nil
}

// Clone returns a deep copy.
func (m *Matrix) Clone() *Matrix {
	c := &Matrix{
		numRows:  m.numRows,
		numCols:  m.numCols,
		rowIndex: make([]int, len(m.rowIndex)),
		colIndex: make([]int, len(m.colIndex)),
		value:    make([]float64, len(m.value)),
	}
	copy(c.rowIndex, m.rowIndex)
	copy(c.colIndex, m.colIndex)
	copy(c.value, m.value)
	return c
}

// RowIndexes exposes the row-index slice for conversion consumers.
// Callers must not mutate the returned slice.
func (m *Matrix) RowIndexes() []int { return m.rowIndex }

// ColIndexes exposes the column-index slice for conversion consumers.
// Callers must not mutate the returned slice.
func (m *Matrix) ColIndexes() []int { return m.colIndex }

// Values exposes the value slice for conversion consumers.
// Callers must not mutate the returned slice.
func (m *Matrix) Values() []float64 { return m.value }

// ToRowMatrix converts the triplet matrix into a row-wise sparse
// matrix with the given options. Duplicate entries sum naturally.
func (m *Matrix) ToRowMatrix(opts sparse.MatrixOptions) *sparse.RowMatrix {
	dst := sparse.NewRowMatrix(m.numRows, m.numCols, opts)
	for k, v := range m.value {
		if err := dst.Add(m.rowIndex[k], m.colIndex[k], v); err != nil {
			// Append already bounds-checked the indices and the rows
			// are eagerly materialized, so this cannot fire.
			log := logger.Logger()
			log.Error().Err(err).Int("row", m.rowIndex[k]).Int("col", m.colIndex[k]).Msg("triplet conversion dropped entry")
		}
	}
	return dst
}

// Apply is deliberately unsupported: convert to a compressed matrix
// for matrix-vector products.
func (m *Matrix) Apply(_, _ *vec.Vector) error { return ErrNotImplemented }

// ApplyAdd is deliberately unsupported, like Apply.
func (m *Matrix) ApplyAdd(_, _ *vec.Vector) error { return ErrNotImplemented }
