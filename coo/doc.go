// Package coo implements the triplet (coordinate-list) sparse matrix
// used during assembly.
//
// 🚀 What is a triplet matrix?
//
//	Three parallel sequences — rowIndex[k], colIndex[k], value[k] —
//	with O(1) Append and no uniqueness constraint: the same (row, col)
//	pair may appear many times, and the logical value of an entry is
//	the sum of all its appearances. This matches the
//	local-to-global assembly pattern exactly: every element stamps its
//	small contribution without looking at what is already there.
//
// ✨ Key operations:
//   - Append      — O(1), the only hot-path operation
//   - SumDuplicates — canonicalization: merge duplicate (row, col) runs
//     and drop zero entries. O(nnz log nnz), idempotent.
//   - RemoveRowCol — delete a degree of freedom entirely, closing the
//     index gap
//   - OffsetView  — address a sub-block of a larger triplet matrix,
//     optionally restricted to its upper triangle
//
// Get and Set are O(nnz) linear scans: correctness references, not for
// hot paths. Matrix-vector products are deliberately unsupported
// (ErrNotImplemented) — convert to a compressed matrix first.
//
// External file loaders populate a triplet matrix through the Appender
// interface; parsing and its failure modes stay the loader's concern.
package coo
