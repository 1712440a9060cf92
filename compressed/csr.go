// File: compressed/csr.go
package compressed

import (
	"github.com/katalvlaran/lvlmat/coo"
	"github.com/katalvlaran/lvlmat/parallel"
	"github.com/katalvlaran/lvlmat/sparse"
	"github.com/katalvlaran/lvlmat/vec"
)

// CSR is a compressed sparse row matrix: major dimension = rows,
// minor = columns. Build it once from a triplet or row-wise matrix,
// then apply it repeatedly.
type CSR struct {
	core             csCore
	numRows, numCols int
	opts             Options
}

// NewCSRFromTriplet builds a CSR matrix from a triplet matrix.
// Duplicate triplet entries merge by summation; the input is read,
// never mutated. O(nnz + numRows + numCols).
func NewCSRFromTriplet(t *coo.Matrix, opts Options) *CSR {
	r, c := t.Dims()
	m := &CSR{core: newCSCore(r, c), numRows: r, numCols: c, opts: opts}
	m.core.buildFromTriplet(t.RowIndexes(), t.ColIndexes(), t.Values())
	return m
}

// NewCSRFromRowMatrix builds a CSR matrix from a row-wise sparse
// matrix. Implicit identity rows contribute their diagonal entry.
func NewCSRFromRowMatrix(src *sparse.RowMatrix, opts Options) *CSR {
	r, c := src.Dims()
	m := &CSR{core: newCSCore(r, c), numRows: r, numCols: c, opts: opts}
	m.core.ptr[0] = 0
	for i := 0; i < r; i++ {
		for _, e := range src.SortedRowEntries(i) {
			if e.Value == 0 {
				continue
			}
			m.core.index = append(m.core.index, e.Col)
			m.core.value = append(m.core.value, e.Value)
		}
		m.core.ptr[i+1] = len(m.core.value)
	}
	return m
}

// Dims returns the matrix extents.
func (m *CSR) Dims() (numRows, numCols int) { return m.numRows, m.numCols }

// NumRows returns the number of rows.
func (m *CSR) NumRows() int { return m.numRows }

// NumCols returns the number of columns.
func (m *CSR) NumCols() int { return m.numCols }

// NNZ returns the number of stored entries.
func (m *CSR) NNZ() int { return m.core.nnz() }

func (m *CSR) checkIndex(i, j int) error {
	if i < 0 || i >= m.numRows || j < 0 || j >= m.numCols {
		return ErrIndexOutOfBounds
	}
	return nil
}

// Get returns the value at (i, j). O(row segment length).
func (m *CSR) Get(i, j int) float64 {
	return m.core.getAt(i, j)
}

// Set stores value at (i, j). Introducing a brand-new nonzero costs
// O(nnz) — see the package comment's cost trap.
func (m *CSR) Set(i, j int, value float64) error {
	if err := m.checkIndex(i, j); err != nil {
		return err
	}
	m.core.setAt(i, j, value)
	return nil
}

// Add accumulates value at (i, j), with the same cost trap as Set.
func (m *CSR) Add(i, j int, value float64) error {
	if err := m.checkIndex(i, j); err != nil {
		return err
	}
	m.core.addAt(i, j, value)
	return nil
}

func (m *CSR) checkApply(arg, dest *vec.Vector) error {
	if arg.Size() != m.numCols || dest.Size() != m.numRows {
		return ErrDimensionMismatch
	}
	return nil
}

// Apply computes dest = M * arg. One O(nnz) pass, row-parallel when
// the matrix was built with Options.Parallel.
func (m *CSR) Apply(arg, dest *vec.Vector) error {
	if err := m.checkApply(arg, dest); err != nil {
		return err
	}
	m.forEachRow(func(start, end int) {
		x, y := arg.Data(), dest.Data()
		for i := start; i < end; i++ {
			var sum float64
			for k := m.core.ptr[i]; k < m.core.ptr[i+1]; k++ {
				sum += m.core.value[k] * x[m.core.index[k]]
			}
			y[i] = sum
		}
	})
	return nil
}

// ApplyAdd computes dest += M * arg.
func (m *CSR) ApplyAdd(arg, dest *vec.Vector) error {
	if err := m.checkApply(arg, dest); err != nil {
		return err
	}
	m.forEachRow(func(start, end int) {
		x, y := arg.Data(), dest.Data()
		for i := start; i < end; i++ {
			var sum float64
			for k := m.core.ptr[i]; k < m.core.ptr[i+1]; k++ {
				sum += m.core.value[k] * x[m.core.index[k]]
			}
			y[i] += sum
		}
	})
	return nil
}

// forEachRow runs work over [0, numRows), chunked across CPUs when the
// parallel option is set. Each output row is written by exactly one
// worker, so no synchronization is needed.
func (m *CSR) forEachRow(work func(start, end int)) {
	if m.opts.Parallel {
		parallel.Execute(m.numRows, work)
		return
	}
	work(0, m.numRows)
}

// ApplyMulti computes dest = M * arg for blocked vectors: arg is
// flattened block 0 first, the flat product is computed, and the
// result split back into dest's blocks. Block totals must match the
// matrix extents.
func (m *CSR) ApplyMulti(arg, dest *vec.MultiVector) error {
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

// RowPtr exposes the row pointer array. Callers must not mutate it.
func (m *CSR) RowPtr() []int { return m.core.ptr }

// ColIndexes exposes the column index array. Callers must not mutate it.
func (m *CSR) ColIndexes() []int { return m.core.index }

// Values exposes the value array. Callers must not mutate it.
func (m *CSR) Values() []float64 { return m.core.value }
