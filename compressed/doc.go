// Package compressed implements CSR and CSC sparse matrices and the
// linear-time conversion from the triplet format.
//
// 🚀 Layout
//
//	Both formats share one storage shape: a pointer array of length
//	majorDim+1 (prefix sums of per-line entry counts), and two parallel
//	arrays holding the minor indices and values. For CSR the major
//	dimension is rows and the minor is columns; CSC is the transpose.
//	Within each line the minor indices are strictly increasing and
//	duplicate-free.
//
// ✨ The conversion is the point of this package: an unsorted,
// duplicate-tolerant triplet list becomes a canonical compressed
// structure in O(nnz + dim) time with two counting-sort passes —
// no comparison sort. The first pass buckets entries by minor index
// and merges duplicates in flight through a last-seen-position scratch
// array; the second pass buckets the merged entries by major index,
// which leaves each line sorted by minor index as a side effect of the
// scan order.
//
// ⚠️ Cost trap: Set and Add may introduce a brand-new nonzero into a
// built matrix. That is legal but shifts the index and value arrays
// and bumps every later pointer — O(nnz) per insertion. Compressed
// matrices are meant to be built once after assembly and then applied
// many times, not mutated in a loop.
//
// Apply is a single O(nnz) pass. CSR traverses row-major with an
// independent accumulator per row and can run the row loop in
// parallel; CSC scatters into shared destination entries and therefore
// always runs sequentially.
package compressed
