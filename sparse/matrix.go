package sparse

import (
	"github.com/katalvlaran/lvlmat/logger"
	"github.com/katalvlaran/lvlmat/vec"
)

// RowMatrix is a row-wise sparse matrix: one optional Row per row index
// plus a scalar unset-row diagonal value. A nil row slot is an implicit
// scaled-identity row — DiagEntry on the diagonal, zero elsewhere — and
// costs no storage until something materializes it.
//
// Ownership: rows are exclusively owned unless the matrix was produced
// by Clone(FlatCopy), in which case the row instances are borrowed from
// the source and the view must not outlive it.
type RowMatrix struct {
	rows     []Row
	numCols  int
	diag     float64
	opts     MatrixOptions
	borrowed bool
}

// NewRowMatrix returns a numRows × numCols matrix with one empty
// DynamicRow materialized per row (the eager variant: every row can be
// written immediately).
func NewRowMatrix(numRows, numCols int, opts MatrixOptions) *RowMatrix {
	m := &RowMatrix{
		rows:    make([]Row, numRows),
		numCols: numCols,
		diag:    opts.DiagEntry,
		opts:    opts,
	}
	for i := range m.rows {
		m.rows[i] = NewDynamicRow()
	}
	return m
}

// NewIdentityMatrix returns a numRows × numCols matrix with every row
// implicit (the lazy variant: the whole matrix behaves as
// DiagEntry * identity until rows are materialized via NewRow or
// AddMultiple).
func NewIdentityMatrix(numRows, numCols int, opts MatrixOptions) *RowMatrix {
	return &RowMatrix{
		rows:    make([]Row, numRows),
		numCols: numCols,
		diag:    opts.DiagEntry,
		opts:    opts,
	}
}

// Dims returns the number of rows and columns.
func (m *RowMatrix) Dims() (rows, cols int) {
	return len(m.rows), m.numCols
}

// NumRows returns the number of rows.
func (m *RowMatrix) NumRows() int { return len(m.rows) }

// NumCols returns the number of columns.
func (m *RowMatrix) NumCols() int { return m.numCols }

// DiagEntry returns the unset-row diagonal value.
func (m *RowMatrix) DiagEntry() float64 { return m.diag }

// SetDiagEntry changes the unset-row diagonal value. It affects every
// implicit row, materialized rows are untouched.
func (m *RowMatrix) SetDiagEntry(d float64) { m.diag = d }

// inBounds reports whether (i, j) lies inside the matrix extents.
func (m *RowMatrix) inBounds(i, j int) bool {
	return i >= 0 && j >= 0 && i < len(m.rows) && j < m.numCols
}

// Get returns the value at (i, j). Implicit rows yield DiagEntry on the
// diagonal and zero elsewhere.
//
// With MatrixOptions.BoundsCheck enabled, out-of-range indices panic
// with ErrIndexOutOfBounds; without it row indices fall through to raw
// slice access (hot path, undefined for bad indices).
func (m *RowMatrix) Get(i, j int) float64 {
	if m.opts.BoundsCheck && !m.inBounds(i, j) {
		panic(ErrIndexOutOfBounds)
	}
	if r := m.rows[i]; r != nil {
		return r.Get(i, j)
	}
	if i == j {
		return m.diag
	}
	return 0
}

// Diag returns the diagonal entry of row i.
func (m *RowMatrix) Diag(i int) float64 {
	return m.Get(i, i)
}

// Set stores value at (i, j) when row i is materialized. For an
// implicit row the call succeeds silently only if value equals the
// implied entry (DiagEntry on the diagonal, zero off it); any other
// value fails with ErrRowNotMaterialized — implicit rows never gain
// structure through Set.
func (m *RowMatrix) Set(i, j int, value float64) error {
	if m.opts.BoundsCheck && !m.inBounds(i, j) {
		return ErrIndexOutOfBounds
	}
	if r := m.rows[i]; r != nil {
		r.Set(i, j, value)
		return nil
	}
	implied := 0.0
	if i == j {
		implied = m.diag
	}
	if value == implied {
		log := logger.Logger()
		log.Debug().Int("row", i).Int("col", j).
			Msg("setting implicit row entry to its implied value")
		return nil
	}
	return ErrRowNotMaterialized
}

// Add accumulates value into (i, j) when row i is materialized. Adding
// exactly zero to an implicit row is a no-op; adding a non-zero fails
// with ErrRowNotMaterialized.
func (m *RowMatrix) Add(i, j int, value float64) error {
	if m.opts.BoundsCheck && !m.inBounds(i, j) {
		return ErrIndexOutOfBounds
	}
	if r := m.rows[i]; r != nil {
		r.Add(i, j, value)
		return nil
	}
	if value == 0 {
		log := logger.Logger()
		log.Debug().Int("row", i).Msg("adding zero to implicit row")
		return nil
	}
	return ErrRowNotMaterialized
}

// MaterializedRow returns the Row instance at index i and whether one
// exists. The instance is shared, not copied.
func (m *RowMatrix) MaterializedRow(i int) (Row, bool) {
	r := m.rows[i]
	return r, r != nil
}

// NewRow replaces row i with the given instance, dropping any prior
// row. The matrix takes ownership.
func (m *RowMatrix) NewRow(i int, row Row) error {
	if row == nil {
		return ErrNilRow
	}
	if i < 0 || i >= len(m.rows) {
		return ErrIndexOutOfBounds
	}
	m.rows[i] = row
	return nil
}

// DeleteRow drops the row instance at index i, reverting it to an
// implicit scaled-identity row.
func (m *RowMatrix) DeleteRow(i int) error {
	if i < 0 || i >= len(m.rows) {
		return ErrIndexOutOfBounds
	}
	m.rows[i] = nil
	return nil
}

// SetZero clears every materialized row but keeps the instances.
// Implicit rows stay implicit.
func (m *RowMatrix) SetZero() {
	for _, r := range m.rows {
		if r != nil {
			r.SetZero()
		}
	}
}

// SetRowToZero clears row i if it is materialized.
func (m *RowMatrix) SetRowToZero(i int) {
	if r := m.rows[i]; r != nil {
		r.SetZero()
	}
}

// ScaleRow multiplies row i by factor unless it is implicit. Scaling an
// implicit identity row without materializing it first has no defined
// meaning, so it is deliberately skipped with a diagnostic.
func (m *RowMatrix) ScaleRow(i int, factor float64) {
	if r := m.rows[i]; r != nil {
		r.Scale(i, factor)
		return
	}
	log := logger.Logger()
	log.Debug().Int("row", i).Msg("not scaling implicit identity row")
}

// Scale multiplies every materialized row by factor. Implicit rows are
// untouched; see ScaleRow.
func (m *RowMatrix) Scale(factor float64) *RowMatrix {
	for i := range m.rows {
		m.ScaleRow(i, factor)
	}
	return m
}

// RowSum returns the sum of all entries of row i, 0 for an implicit row.
func (m *RowMatrix) RowSum(i int) float64 {
	if r := m.rows[i]; r != nil {
		return r.Sum(i)
	}
	log := logger.Logger()
	log.Debug().Int("row", i).Msg("rowSum on implicit identity row, returning 0")
	return 0
}

// MulRow returns the inner product of row i with arg, 0 for an implicit
// row.
func (m *RowMatrix) MulRow(arg *vec.Vector, i int) float64 {
	if r := m.rows[i]; r != nil {
		return r.Dot(arg, i)
	}
	return 0
}

// RowEntries returns the stored entries of row i, not necessarily
// sorted. An implicit row yields a single {i, DiagEntry} entry.
func (m *RowMatrix) RowEntries(i int) []Entry {
	if r := m.rows[i]; r != nil {
		return r.Entries(i)
	}
	return []Entry{{Col: i, Value: m.diag}}
}

// SortedRowEntries returns the stored entries of row i in ascending
// column order. An implicit row yields a single {i, DiagEntry} entry.
func (m *RowMatrix) SortedRowEntries(i int) []Entry {
	if r := m.rows[i]; r != nil {
		return r.SortedEntries(i)
	}
	return []Entry{{Col: i, Value: m.diag}}
}

// AddMultiple accumulates factor * other into m. Rows implicit here but
// materialized in other are materialized as empty default rows first;
// rows implicit in both stay implicit.
func (m *RowMatrix) AddMultiple(other *RowMatrix, factor float64) error {
	if len(m.rows) != len(other.rows) || m.numCols != other.numCols {
		return ErrShapeMismatch
	}
	for i := range m.rows {
		if m.rows[i] == nil && other.rows[i] != nil {
			m.rows[i] = NewDynamicRow()
		}
		if m.rows[i] != nil && other.rows[i] != nil {
			m.rows[i].AddMultiple(i, other.rows[i], factor)
		}
	}
	return nil
}

// AddTensorProductMultiple accumulates factor * v1 ⊗ v2 into m. Every
// touched row must be materialized (the product is structurally dense).
func (m *RowMatrix) AddTensorProductMultiple(v1, v2 *vec.Vector, factor float64) error {
	if v1.Size() != len(m.rows) || v2.Size() != m.numCols {
		return ErrDimensionMismatch
	}
	for i := 0; i < len(m.rows); i++ {
		for j := 0; j < m.numCols; j++ {
			if err := m.Add(i, j, factor*v1.At(i)*v2.At(j)); err != nil {
				return err
			}
		}
	}
	return nil
}

// NumNonZeroes returns the number of non-zero entries, counting each
// implicit row as one when DiagEntry is non-zero.
func (m *RowMatrix) NumNonZeroes() int {
	n := 0
	for _, r := range m.rows {
		if r != nil {
			n += r.NumNonZeroes()
		} else if m.diag != 0 {
			n++
		}
	}
	return n
}

// NumStoredEntries returns the number of storage slots in use, counting
// each implicit row as one.
func (m *RowMatrix) NumStoredEntries() int {
	n := 0
	for _, r := range m.rows {
		if r != nil {
			n += r.NumStoredEntries()
		} else {
			n++
		}
	}
	return n
}

// NumNonZeroRows returns the number of rows holding at least one
// non-zero entry, counting implicit rows when DiagEntry is non-zero.
func (m *RowMatrix) NumNonZeroRows() int {
	n := 0
	for _, r := range m.rows {
		if r != nil || m.diag != 0 {
			n++
		}
	}
	return n
}

// RowNumNonZeroes returns the number of non-zero entries of row i.
func (m *RowMatrix) RowNumNonZeroes(i int) int {
	if r := m.rows[i]; r != nil {
		return r.NumNonZeroes()
	}
	if m.diag != 0 {
		return 1
	}
	return 0
}

// RowNumStoredEntries returns the number of storage slots of row i,
// counting an implicit row as one.
func (m *RowMatrix) RowNumStoredEntries(i int) int {
	if r := m.rows[i]; r != nil {
		return r.NumStoredEntries()
	}
	return 1
}

// IsApproxEqual reports whether m and other agree within eps. A row
// materialized on only one side makes the matrices unequal, as do
// differing unset-row diagonal values while implicit rows exist.
func (m *RowMatrix) IsApproxEqual(other *RowMatrix, eps float64) bool {
	if len(m.rows) != len(other.rows) || m.numCols != other.numCols {
		return false
	}
	for i := range m.rows {
		if (m.rows[i] != nil) != (other.rows[i] != nil) {
			return false
		}
		if m.rows[i] != nil {
			if !m.rows[i].ApproxEqual(i, other.rows[i], eps) {
				return false
			}
		} else if m.diag != other.diag {
			return false
		}
	}
	return true
}

// HasNaNsOrInfs reports whether any materialized entry is NaN or ±Inf.
func (m *RowMatrix) HasNaNsOrInfs() bool {
	for _, r := range m.rows {
		if r != nil && r.HasNaNsOrInfs() {
			return true
		}
	}
	return false
}

// IsSymmetric reports whether m equals its transpose within tol.
func (m *RowMatrix) IsSymmetric(tol float64) bool {
	if len(m.rows) != m.numCols {
		return false
	}
	for i := range m.rows {
		if m.rows[i] == nil {
			continue
		}
		for _, e := range m.RowEntries(i) {
			d := e.Value - m.Get(e.Col, i)
			if d > tol || d < -tol {
				return false
			}
		}
	}
	return true
}

// TransposeTo writes the transpose of m into dst, which must be a
// numCols × numRows matrix with every touched row writable. dst is
// zeroed first.
func (m *RowMatrix) TransposeTo(dst *RowMatrix) error {
	if dst.NumRows() != m.numCols || dst.NumCols() != len(m.rows) {
		return ErrShapeMismatch
	}
	dst.SetZero()
	for i := range m.rows {
		for _, e := range m.SortedRowEntries(i) {
			if err := dst.Set(e.Col, i, e.Value); err != nil {
				return err
			}
		}
	}
	return nil
}

// Clone returns a copy of m with the given semantics:
//
//   - DeepCopy duplicates every materialized row.
//   - StructCopy keeps extents and DiagEntry with all rows implicit.
//   - FlatCopy aliases the source's rows as a borrowed view; the view
//     must not outlive the source.
//
// Unknown modes fail with ErrNotImplemented.
func (m *RowMatrix) Clone(mode CopyMode) (*RowMatrix, error) {
	out := &RowMatrix{
		rows:    make([]Row, len(m.rows)),
		numCols: m.numCols,
		diag:    m.diag,
		opts:    m.opts,
	}
	switch mode {
	case DeepCopy:
		for i, r := range m.rows {
			if r != nil {
				out.rows[i] = r.Clone()
			}
		}
	case StructCopy:
		// all rows implicit
	case FlatCopy:
		copy(out.rows, m.rows)
		out.borrowed = true
	default:
		return nil, ErrNotImplemented
	}
	return out, nil
}

// IsBorrowed reports whether m is a flat-copy view over another
// matrix's rows.
func (m *RowMatrix) IsBorrowed() bool { return m.borrowed }

// EraseZeroEntries drops stored zeros from every materialized
// DynamicRow. Rows of other implementations are left as they are.
func (m *RowMatrix) EraseZeroEntries() {
	for _, r := range m.rows {
		if dr, ok := r.(*DynamicRow); ok {
			dr.EraseZeroEntries()
		}
	}
}

// Resize grows or shrinks the matrix, keeping old contents where
// possible. New rows are materialized empty; rows cut off are dropped.
// Shrinking the column count is not implemented: rows do not track
// their extent, so stale entries could not be purged cheaply.
func (m *RowMatrix) Resize(numRows, numCols int) error {
	if numCols < m.numCols {
		return ErrNotImplemented
	}
	if numRows > len(m.rows) {
		for i := len(m.rows); i < numRows; i++ {
			m.rows = append(m.rows, NewDynamicRow())
		}
	} else if numRows < len(m.rows) {
		m.rows = m.rows[:numRows]
	}
	m.numCols = numCols
	return nil
}

// Reallocate resizes the matrix to numRows × numCols, dropping all
// contents. Every row becomes implicit.
func (m *RowMatrix) Reallocate(numRows, numCols int) {
	m.rows = make([]Row, numRows)
	m.numCols = numCols
}
