// File: coo/types.go
package coo

import "errors"

// Sentinel errors for coo operations.
var (
	// ErrIndexOutOfBounds indicates an index outside the matrix extents.
	// Append panics with this value: a bad index during assembly is a
	// programming error, not a recoverable condition.
	ErrIndexOutOfBounds = errors.New("coo: index out of bounds")
	// ErrNotImplemented indicates an operation deliberately unsupported
	// on the bare triplet representation.
	ErrNotImplemented = errors.New("coo: operation not implemented for the triplet representation")
	// ErrSameIndex indicates an elimination helper called with identical
	// source and destination indices.
	ErrSameIndex = errors.New("coo: source and destination index must differ")
	// ErrOffsetMismatch indicates an OffsetView operation that requires
	// equal row and column offsets.
	ErrOffsetMismatch = errors.New("coo: operation requires equal row and column offsets")
)

// Appender is the contract external populators (e.g. matrix file
// loaders) write through. Matrix and OffsetView satisfy it.
type Appender interface {
	Append(i, j int, value float64)
}
