// File: coo/offset.go
package coo

// OffsetView addresses a rectangular sub-block of a larger triplet
// matrix. Writes land in the underlying matrix shifted by the view's
// offsets; this is how block systems are assembled into one global
// triplet matrix without index arithmetic at every call site.
type OffsetView struct {
	mat              *Matrix
	numRows, numCols int
	rowOffset        int
	colOffset        int
}

// NewOffsetView returns a numRows×numCols view of mat whose (0, 0)
// maps to (rowOffset, colOffset). Panics with ErrIndexOutOfBounds if
// the block does not fit inside mat.
func NewOffsetView(mat *Matrix, numRows, numCols, rowOffset, colOffset int) *OffsetView {
	if rowOffset < 0 || colOffset < 0 ||
		rowOffset+numRows > mat.numRows || colOffset+numCols > mat.numCols {
		panic(ErrIndexOutOfBounds)
	}
	return &OffsetView{
		mat:       mat,
		numRows:   numRows,
		numCols:   numCols,
		rowOffset: rowOffset,
		colOffset: colOffset,
	}
}

// Dims returns the view extents.
func (v *OffsetView) Dims() (numRows, numCols int) { return v.numRows, v.numCols }

// checkBounds panics like Matrix.Append does: a bad block-local index
// is a programming error.
func (v *OffsetView) checkBounds(i, j int) {
	if i < 0 || i >= v.numRows || j < 0 || j >= v.numCols {
		panic(ErrIndexOutOfBounds)
	}
}

// Append records value at block-local (i, j).
func (v *OffsetView) Append(i, j int, value float64) {
	v.checkBounds(i, j)
	v.mat.Append(i+v.rowOffset, j+v.colOffset, value)
}

// Add is an alias of Append, for symmetry with the other matrix types.
func (v *OffsetView) Add(i, j int, value float64) {
	v.Append(i, j, value)
}

// Get returns the logical value at block-local (i, j). O(nnz) over the
// whole underlying matrix.
func (v *OffsetView) Get(i, j int) float64 {
	v.checkBounds(i, j)
	return v.mat.Get(i+v.rowOffset, j+v.colOffset)
}

// Set makes the logical value at block-local (i, j) exactly value.
func (v *OffsetView) Set(i, j int, value float64) {
	v.checkBounds(i, j)
	v.mat.Set(i+v.rowOffset, j+v.colOffset, value)
}

// SetRowToZero drops the entries of block row i whose columns fall
// inside the view. Entries of the same underlying row outside the
// view's columns are untouched.
func (v *OffsetView) SetRowToZero(i int) {
	v.checkBounds(i, 0)
	r := i + v.rowOffset
	keep := 0
	for k, row := range v.mat.rowIndex {
		c := v.mat.colIndex[k]
		if row == r && c >= v.colOffset && c < v.colOffset+v.numCols {
			continue
		}
		v.mat.rowIndex[keep] = row
		v.mat.colIndex[keep] = c
		v.mat.value[keep] = v.mat.value[k]
		keep++
	}
	v.mat.rowIndex = v.mat.rowIndex[:keep]
	v.mat.colIndex = v.mat.colIndex[:keep]
	v.mat.value = v.mat.value[:keep]
}

// SetColToZero drops the entries of block column j whose rows fall
// inside the view.
func (v *OffsetView) SetColToZero(j int) {
	v.checkBounds(0, j)
	c := j + v.colOffset
	keep := 0
	for k, row := range v.mat.rowIndex {
		col := v.mat.colIndex[k]
		if col == c && row >= v.rowOffset && row < v.rowOffset+v.numRows {
			continue
		}
		v.mat.rowIndex[keep] = row
		v.mat.colIndex[keep] = col
		v.mat.value[keep] = v.mat.value[k]
		keep++
	}
	v.mat.rowIndex = v.mat.rowIndex[:keep]
	v.mat.colIndex = v.mat.colIndex[:keep]
	v.mat.value = v.mat.value[:keep]
}

// SetRowColToDiagonal drops block row i and block column i inside the
// view, then stores diagValue at block-local (i, i). Requires a view
// with equal row and column offsets so that the block diagonal lies on
// the diagonal of the underlying matrix.
func (v *OffsetView) SetRowColToDiagonal(i int, diagValue float64) error {
	if v.rowOffset != v.colOffset {
		return ErrOffsetMismatch
	}
	if i < 0 || i >= v.numRows || i >= v.numCols {
		return ErrIndexOutOfBounds
	}
	v.SetRowToZero(i)
	v.SetColToZero(i)
	v.mat.Append(i+v.rowOffset, i+v.colOffset, diagValue)
	return nil
}

// UpperTriangleView restricts an OffsetView to its upper triangle:
// writes with i > j are silently dropped. Useful when assembling a
// symmetric operator whose lower triangle a downstream solver never
// reads.
type UpperTriangleView struct {
	*OffsetView
}

// NewUpperTriangleView wraps view.
func NewUpperTriangleView(view *OffsetView) *UpperTriangleView {
	return &UpperTriangleView{OffsetView: view}
}

// Append records value at block-local (i, j) when i <= j and does
// nothing otherwise. Bounds are still checked.
func (v *UpperTriangleView) Append(i, j int, value float64) {
	v.checkBounds(i, j)
	if i > j {
		return
	}
	v.OffsetView.Append(i, j, value)
}

// Add is an alias of Append.
func (v *UpperTriangleView) Add(i, j int, value float64) {
	v.Append(i, j, value)
}
