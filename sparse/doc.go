// Package sparse implements row-wise sparse matrices for incremental
// assembly and boundary-condition handling.
//
// 🚀 What is a RowMatrix?
//
//	A RowMatrix is an indexed collection of optional Row instances plus
//	one scalar "unset-row diagonal" value. Rows without materialized
//	storage are implicit scaled-identity rows:
//
//	  Get(i, j) = DiagEntry  if i == j and row i is implicit,
//	              0          if i != j and row i is implicit,
//	              row value  otherwise.
//
//	Implicit rows are never materialized behind the caller's back:
//	Set and Add refuse to create structure in an implicit row and fail
//	with ErrRowNotMaterialized (the two documented no-op cases aside).
//	Only NewRow, AddMultiple and the elimination helpers materialize.
//
// ✨ Key features:
//   - Polymorphic row storage: any Row implementation per slot
//     (DynamicRow, a column-sorted dynamic array, is the default)
//   - Apply / ApplyAdd matrix-vector products, independent per output
//     row and optionally row-parallel
//   - Masked applies: five include/write modes crossing "which degrees
//     of freedom contribute" with "which output rows are written" —
//     the standard tool for folding Dirichlet boundary values into an
//     interior right-hand side
//   - Row/column elimination (AddMultipleRowToRow, AddMultipleColToCol,
//     SetRowColToDiagonal, CollapseRowCol) for linear constraints
//   - Deep, structural and flat (borrowed-view) copies
//
// ⚙️ Usage:
//
//	m := sparse.NewRowMatrix(n, n, sparse.DefaultMatrixOptions())
//	m.Add(i, j, v) // assemble
//	err := m.Apply(x, y)
//
// Concurrency: no internal locking. Applies are safe to run
// concurrently with each other; any structural mutation requires
// single-writer discipline. Flat copies borrow the source's rows and
// must not outlive it.
package sparse
