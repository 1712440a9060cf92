// File: compressed/types.go
package compressed

import "errors"

// Sentinel errors for compressed operations.
var (
	// ErrDimensionMismatch indicates vector sizes incompatible with the
	// matrix extents.
	ErrDimensionMismatch = errors.New("compressed: dimension mismatch")
	// ErrIndexOutOfBounds indicates an index outside the matrix extents.
	ErrIndexOutOfBounds = errors.New("compressed: index out of bounds")
)

// Options configures a compressed matrix at construction.
type Options struct {
	// Parallel chunks the CSR apply row loop across CPUs. CSC ignores
	// it: the column scatter writes shared destination entries.
	Parallel bool
}

// DefaultOptions returns the sequential configuration.
func DefaultOptions() Options {
	return Options{}
}
