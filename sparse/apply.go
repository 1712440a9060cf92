package sparse

import (
	"github.com/katalvlaran/lvlmat/parallel"
	"github.com/katalvlaran/lvlmat/vec"
)

// checkApplyDims validates the apply contract: arg spans the columns,
// dest the rows. Checked before any computation, so a failed apply
// leaves dest untouched.
func (m *RowMatrix) checkApplyDims(arg, dest *vec.Vector) error {
	if arg.Size() != m.numCols || dest.Size() != len(m.rows) {
		return ErrDimensionMismatch
	}
	return nil
}

// forEachRow runs body over every row index, chunked across CPUs when
// the Parallel option is set. Each output row is independent, so the
// row loop needs no synchronization.
func (m *RowMatrix) forEachRow(body func(i int)) {
	if m.opts.Parallel {
		parallel.Execute(len(m.rows), func(start, end int) {
			for i := start; i < end; i++ {
				body(i)
			}
		})
		return
	}
	for i := range m.rows {
		body(i)
	}
}

// Apply computes dest = m · arg. Implicit rows contribute
// DiagEntry * arg[i].
//
// Complexity: O(nnz). Row-parallel when MatrixOptions.Parallel is set.
func (m *RowMatrix) Apply(arg, dest *vec.Vector) error {
	if err := m.checkApplyDims(arg, dest); err != nil {
		return err
	}
	m.forEachRow(func(i int) {
		if r := m.rows[i]; r != nil {
			dest.Set(i, r.Dot(arg, i))
		} else {
			dest.Set(i, m.diag*arg.At(i))
		}
	})
	return nil
}

// ApplyAdd computes dest += m · arg. Implicit rows contribute
// DiagEntry * arg[i].
func (m *RowMatrix) ApplyAdd(arg, dest *vec.Vector) error {
	if err := m.checkApplyDims(arg, dest); err != nil {
		return err
	}
	m.forEachRow(func(i int) {
		if r := m.rows[i]; r != nil {
			dest.Add(i, r.Dot(arg, i))
		} else {
			dest.Add(i, m.diag*arg.At(i))
		}
	})
	return nil
}

// ApplyMasked computes the product only where the mode allows: the
// include predicate selects which columns contribute to each row dot
// product, the write predicate selects which destination rows are
// written at all. Unwritten destination entries retain their prior
// value. An implicit row contributes DiagEntry * arg[i] whenever it is
// written.
//
// The mask must span the rows of the (square) system; masked applies on
// non-square matrices are not meaningful. Unknown modes fail with
// ErrUnknownApplyMode before any computation.
func (m *RowMatrix) ApplyMasked(arg, dest *vec.Vector, mask *vec.Mask, mode IncludeWriteMode) error {
	include, write, err := m.checkMaskedApply(arg, dest, mask, mode)
	if err != nil {
		return err
	}
	m.forEachRow(func(i int) {
		if !write(mask.Get(i)) {
			return
		}
		if r := m.rows[i]; r != nil {
			dest.Set(i, r.DotMasked(arg, i, mask, include))
		} else {
			dest.Set(i, m.diag*arg.At(i))
		}
	})
	return nil
}

// ApplyAddMasked is ApplyMasked with accumulation into dest instead of
// assignment.
func (m *RowMatrix) ApplyAddMasked(arg, dest *vec.Vector, mask *vec.Mask, mode IncludeWriteMode) error {
	include, write, err := m.checkMaskedApply(arg, dest, mask, mode)
	if err != nil {
		return err
	}
	m.forEachRow(func(i int) {
		if !write(mask.Get(i)) {
			return
		}
		if r := m.rows[i]; r != nil {
			dest.Add(i, r.DotMasked(arg, i, mask, include))
		} else {
			dest.Add(i, m.diag*arg.At(i))
		}
	})
	return nil
}

func (m *RowMatrix) checkMaskedApply(arg, dest *vec.Vector, mask *vec.Mask, mode IncludeWriteMode) (include, write MaskPredicate, err error) {
	if err = m.checkApplyDims(arg, dest); err != nil {
		return nil, nil, err
	}
	if mask.Size() != len(m.rows) {
		return nil, nil, ErrDimensionMismatch
	}
	return mode.predicates()
}
