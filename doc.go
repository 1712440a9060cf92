// Package lvlmat is an in-memory toolkit for sparse matrix storage and
// manipulation in numerical assembly pipelines — finite-element and
// finite-difference discretizations that build large matrices from many
// small local contributions.
//
// 🚀 What is lvlmat?
//
//	A library that brings together the formats an assembly pipeline needs:
//		• Row-wise sparse matrices with implicit scaled-identity rows
//		• Triplet (COO) matrices: O(1) append, duplicate-tolerant assembly
//		• Compressed CSR/CSC matrices: fast matrix-vector products
//		• Linear-time triplet → compressed conversion (bucket sort, no
//		  comparison sort, duplicates summed on the fly)
//		• Boundary-condition masking: five include/write apply modes
//		• Row/column elimination for linear constraint handling
//
// ✨ Why choose lvlmat?
//
//   - Assembly-first – append local contributions freely, canonicalize once
//   - Predictable costs – every operation documents its complexity,
//     including the structural-mutation cost traps of compressed formats
//   - Explicit errors – sentinel errors per package, no hidden recovery
//   - Row-parallel applies – opt-in data-parallel matrix-vector products
//
// The module is organized into focused subpackages:
//
//	vec/        — dense Vector, blocked MultiVector, bitset-backed Mask
//	sparse/     — Row capability, RowMatrix with implicit identity rows,
//	              masked applies, row/column elimination
//	coo/        — triplet assembly matrix with duplicate summation
//	compressed/ — CSR/CSC matrices + bucket-sort conversion
//	parallel/   — chunked data-parallel range execution
//	logger/     — configurable zerolog diagnostics
//
// A typical pipeline:
//
//	t := coo.New(n, n)
//	// ... many t.Append(i, j, v) calls during assembly ...
//	csr := compressed.NewCSRFromTriplet(t, compressed.DefaultOptions())
//	_ = csr.Apply(x, y) // repeated fast products
//
// Dive into each package's doc.go for invariants, edge cases and
// worked examples.
package lvlmat
