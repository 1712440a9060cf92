// File: compressed/csc.go
package compressed

import (
	"github.com/katalvlaran/lvlmat/coo"
	"github.com/katalvlaran/lvlmat/sparse"
	"github.com/katalvlaran/lvlmat/vec"
)

// CSC is a compressed sparse column matrix: major dimension = columns,
// minor = rows. Preferred when a downstream consumer walks columns
// (e.g. a transpose product); for plain row-major apply, CSR is the
// better fit.
type CSC struct {
	core             csCore
	numRows, numCols int
}

// NewCSCFromTriplet builds a CSC matrix from a triplet matrix.
// Duplicate triplet entries merge by summation; the input is read,
// never mutated. O(nnz + numRows + numCols).
func NewCSCFromTriplet(t *coo.Matrix, _ Options) *CSC {
	r, c := t.Dims()
	m := &CSC{core: newCSCore(c, r), numRows: r, numCols: c}
	m.core.buildFromTriplet(t.ColIndexes(), t.RowIndexes(), t.Values())
	return m
}

// NewCSCFromRowMatrix builds a CSC matrix from a row-wise sparse
// matrix. Implicit identity rows contribute their diagonal entry.
func NewCSCFromRowMatrix(src *sparse.RowMatrix, opts Options) *CSC {
	r, c := src.Dims()
	t := coo.New(r, c)
	for i := 0; i < r; i++ {
		for _, e := range src.SortedRowEntries(i) {
			if e.Value != 0 {
				t.Append(i, e.Col, e.Value)
			}
		}
	}
	return NewCSCFromTriplet(t, opts)
}

// Dims returns the matrix extents.
func (m *CSC) Dims() (numRows, numCols int) { return m.numRows, m.numCols }

// NumRows returns the number of rows.
func (m *CSC) NumRows() int { return m.numRows }

// NumCols returns the number of columns.
func (m *CSC) NumCols() int { return m.numCols }

// NNZ returns the number of stored entries.
func (m *CSC) NNZ() int { return m.core.nnz() }

func (m *CSC) checkIndex(i, j int) error {
	if i < 0 || i >= m.numRows || j < 0 || j >= m.numCols {
		return ErrIndexOutOfBounds
	}
	return nil
}

// Get returns the value at (i, j). O(column segment length).
func (m *CSC) Get(i, j int) float64 {
	return m.core.getAt(j, i)
}

// Set stores value at (i, j). Introducing a brand-new nonzero costs
// O(nnz) — see the package comment's cost trap.
func (m *CSC) Set(i, j int, value float64) error {
	if err := m.checkIndex(i, j); err != nil {
		return err
	}
	m.core.setAt(j, i, value)
	return nil
}

// Add accumulates value at (i, j), with the same cost trap as Set.
func (m *CSC) Add(i, j int, value float64) error {
	if err := m.checkIndex(i, j); err != nil {
		return err
	}
	m.core.addAt(j, i, value)
	return nil
}

func (m *CSC) checkApply(arg, dest *vec.Vector) error {
	if arg.Size() != m.numCols || dest.Size() != m.numRows {
		return ErrDimensionMismatch
	}
	return nil
}

// Apply computes dest = M * arg.
func (m *CSC) Apply(arg, dest *vec.Vector) error {
	if err := m.checkApply(arg, dest); err != nil {
		return err
	}
	dest.SetZero()
	return m.ApplyAdd(arg, dest)
}

// ApplyAdd computes dest += M * arg: one O(nnz) column-major scatter.
// Always sequential — different columns accumulate into the same
// destination entries.
func (m *CSC) ApplyAdd(arg, dest *vec.Vector) error {
	if err := m.checkApply(arg, dest); err != nil {
		return err
	}
	x, y := arg.Data(), dest.Data()
	for j := 0; j < m.numCols; j++ {
		xj := x[j]
		if xj == 0 {
			continue
		}
		for k := m.core.ptr[j]; k < m.core.ptr[j+1]; k++ {
			y[m.core.index[k]] += m.core.value[k] * xj
		}
	}
	return nil
}

// ApplyMulti computes dest = M * arg for blocked vectors, flattening
// and splitting around the flat apply like CSR.ApplyMulti.
func (m *CSC) ApplyMulti(arg, dest *vec.MultiVector) error {
	if arg.TotalSize() != m.numCols || dest.TotalSize() != m.numRows {
		return ErrDimensionMismatch
	}
	flatArg := vec.New(m.numCols)
	if err := arg.CopyUnblockedTo(flatArg); err != nil {
		return ErrDimensionMismatch
	}
	flatDest := vec.New(m.numRows)
	if err := m.Apply(flatArg, flatDest); err != nil {
		return err
	}
	if err := dest.CopySplitFrom(flatDest); err != nil {
		return ErrDimensionMismatch
	}
	return nil
}

// ColPtr exposes the column pointer array. Callers must not mutate it.
func (m *CSC) ColPtr() []int { return m.core.ptr }

// RowIndexes exposes the row index array. Callers must not mutate it.
func (m *CSC) RowIndexes() []int { return m.core.index }

// Values exposes the value array. Callers must not mutate it.
func (m *CSC) Values() []float64 { return m.core.value }
