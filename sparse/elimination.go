package sparse

import "github.com/katalvlaran/lvlmat/logger"

// Row/column elimination: the standard technique for applying a linear
// constraint x_from = multiple * x_to is to fold row and column `from`
// into `to` and then pin the eliminated degree of freedom with a clean
// diagonal row.
//
// Boundary policy: from == to fails with ErrSameIndex; out-of-range
// indices always fail with ErrIndexOutOfBounds, regardless of the
// BoundsCheck option — these helpers are structural editors, not hot
// paths. Implicit rows named by `from` or `to` are materialized first,
// seeded with their implied diagonal entry so the elimination operates
// on the values the implicit row represents. All other implicit rows
// are skipped with a diagnostic.

// checkEliminationPair validates a (from, to) index pair.
func (m *RowMatrix) checkEliminationPair(from, to int) error {
	if from < 0 || to < 0 || from >= len(m.rows) || to >= len(m.rows) {
		return ErrIndexOutOfBounds
	}
	if from == to {
		return ErrSameIndex
	}
	return nil
}

// materializeRow turns an implicit row into a DynamicRow carrying the
// implied diagonal entry. Materialized rows are returned as they are.
func (m *RowMatrix) materializeRow(i int) Row {
	if m.rows[i] != nil {
		return m.rows[i]
	}
	r := NewDynamicRow()
	if m.diag != 0 {
		r.Set(i, i, m.diag)
	}
	m.rows[i] = r
	return r
}

// AddMultipleRowToRow accumulates multiple * row(from) into row(to)
// with a column-sorted merge: matching columns accumulate, the rest
// insert.
//
// Complexity: O(nnz(from) + nnz(to)) for DynamicRow storage.
func (m *RowMatrix) AddMultipleRowToRow(from, to int, multiple float64) error {
	if err := m.checkEliminationPair(from, to); err != nil {
		return err
	}
	fromRow := m.materializeRow(from)
	toRow := m.materializeRow(to)
	toRow.AddMultiple(to, fromRow, multiple)
	return nil
}

// AddMultipleColToCol accumulates multiple * col(from) into col(to),
// scanning every materialized row once. Implicit rows are skipped with
// a diagnostic: editing their columns would force materializing the
// whole matrix.
//
// Complexity: O(sum of row lookups) = O(numRows · log nnz(row)).
func (m *RowMatrix) AddMultipleColToCol(from, to int, multiple float64) error {
	if err := m.checkEliminationPair(from, to); err != nil {
		return err
	}
	for i, r := range m.rows {
		if r == nil {
			log := logger.Logger()
			log.Debug().Int("row", i).Msg("column elimination skipping implicit row")
			continue
		}
		if v := r.Get(i, from); v != 0 {
			r.Add(i, to, multiple*v)
		}
	}
	return nil
}

// SetRowColToDiagonal zeroes row index and column index and stores diag
// on the diagonal, pinning the degree of freedom. Column entries are
// removed structurally, not just set to zero. Implicit rows other than
// index itself are left untouched (their column entry at index is zero
// unless index is their own diagonal, which only row index holds).
func (m *RowMatrix) SetRowColToDiagonal(index int, diag float64) error {
	if index < 0 || index >= len(m.rows) {
		return ErrIndexOutOfBounds
	}
	r := m.materializeRow(index)
	r.SetZero()
	for i, row := range m.rows {
		if i == index || row == nil {
			continue
		}
		if dr, ok := row.(*DynamicRow); ok {
			dr.EraseCol(index)
		} else {
			row.Set(i, index, 0)
		}
	}
	r.Set(index, index, diag)
	return nil
}

// CollapseRowCol eliminates degree of freedom `from` into `to`: it adds
// multiple times row and column `from` onto row and column `to`, then
// resets row/column `from` to a clean diagonal row with value diag.
func (m *RowMatrix) CollapseRowCol(from, to int, multiple, diag float64) error {
	if err := m.AddMultipleRowToRow(from, to, multiple); err != nil {
		return err
	}
	if err := m.AddMultipleColToCol(from, to, multiple); err != nil {
		return err
	}
	return m.SetRowColToDiagonal(from, diag)
}
