// Package vec provides the dense containers the matrix packages consume:
// a fixed-size Vector, a blocked MultiVector with a flatten/split
// contract, and a bitset-backed boundary Mask.
//
// 🚀 What lives here?
//
//   - Vector      — a fixed-size, index-addressable []float64 wrapper.
//   - MultiVector — an ordered sequence of Vector blocks (e.g. one block
//     per spatial component). CopyUnblockedTo / CopySplitFrom define the
//     contract used by the compressed matrices to apply a flat product
//     to blocked data.
//   - Mask        — a boolean selector aligned 1:1 with matrix rows,
//     distinguishing boundary degrees of freedom from interior ones.
//     Read-only during apply.
//
// Element access is deliberately unchecked beyond Go's native slice
// bounds: these containers sit on the hot path of every matrix-vector
// product, and shape validation happens once at the matrix level.
//
// Complexity: all element operations are O(1); whole-vector operations
// (SetZero, Dot, ApproxEqual, flatten/split) are O(n).
package vec
