package sparse

import "errors"

// Sentinel errors for sparse operations.
var (
	// ErrDimensionMismatch indicates vector sizes that do not match the
	// matrix extents. Checked before any computation; no partial writes.
	ErrDimensionMismatch = errors.New("sparse: vector sizes do not match matrix dimensions")
	// ErrIndexOutOfBounds indicates an index outside the matrix extents.
	ErrIndexOutOfBounds = errors.New("sparse: index out of bounds")
	// ErrRowNotMaterialized indicates an attempt to store a value that
	// would silently create structure in an implicit identity row.
	ErrRowNotMaterialized = errors.New("sparse: row does not exist")
	// ErrNotImplemented indicates an operation deliberately unsupported
	// on this representation.
	ErrNotImplemented = errors.New("sparse: operation not implemented for this representation")
	// ErrUnknownApplyMode indicates an IncludeWriteMode outside the five
	// defined modes.
	ErrUnknownApplyMode = errors.New("sparse: unknown include/write apply mode")
	// ErrSameIndex indicates an elimination helper called with identical
	// source and destination indices.
	ErrSameIndex = errors.New("sparse: source and destination index must differ")
	// ErrShapeMismatch indicates two matrices of different extents were
	// combined.
	ErrShapeMismatch = errors.New("sparse: matrix shapes do not match")
	// ErrNilRow indicates a nil Row passed where an instance is required.
	ErrNilRow = errors.New("sparse: row instance must not be nil")
)

// Entry is one stored (column, value) pair of a sparse row.
type Entry struct {
	Col   int
	Value float64
}

// MaskPredicate decides, from one mask bit, whether a position takes
// part in a masked operation.
type MaskPredicate func(bit bool) bool

// The three predicates the IncludeWriteMode table is built from.
func maskAny(bool) bool     { return true }
func maskSet(bit bool) bool { return bit }
func maskClear(b bool) bool { return !b }

// IncludeWriteMode selects which degrees of freedom contribute to a
// masked matrix-vector product (include side, applied to columns) and
// which output rows receive results (write side, applied to rows).
// Mask bits mark interior (free) degrees of freedom; cleared bits mark
// boundary (constrained) ones.
type IncludeWriteMode int

const (
	// IncludeAllWriteAll computes with every column and writes every
	// row — identical to an unmasked apply.
	IncludeAllWriteAll IncludeWriteMode = iota
	// IncludeIntWriteAll computes with interior columns only, writes
	// every row.
	IncludeIntWriteAll
	// IncludeAllWriteInt computes with every column, writes interior
	// rows only; other destination entries retain their prior value.
	IncludeAllWriteInt
	// IncludeIntWriteInt computes with interior columns only, writes
	// interior rows only.
	IncludeIntWriteInt
	// IncludeBdWriteInt computes with boundary columns only, writes
	// interior rows only — used to fold known boundary values into the
	// interior right-hand side.
	IncludeBdWriteInt
)

// predicates maps a mode onto its (include, write) predicate pair.
// Unknown modes yield ErrUnknownApplyMode.
func (mode IncludeWriteMode) predicates() (include, write MaskPredicate, err error) {
	switch mode {
	case IncludeAllWriteAll:
		return maskAny, maskAny, nil
	case IncludeIntWriteAll:
		return maskSet, maskAny, nil
	case IncludeAllWriteInt:
		return maskAny, maskSet, nil
	case IncludeIntWriteInt:
		return maskSet, maskSet, nil
	case IncludeBdWriteInt:
		return maskClear, maskSet, nil
	default:
		return nil, nil, ErrUnknownApplyMode
	}
}

// CopyMode selects the copy semantics of Clone.
type CopyMode int

const (
	// DeepCopy duplicates every materialized row.
	DeepCopy CopyMode = iota
	// StructCopy preserves the extents and diagonal value with every
	// row implicit (no storage materialized).
	StructCopy
	// FlatCopy aliases the source's row instances without ownership.
	// The copy must not outlive the source.
	FlatCopy
)

// MatrixOptions contains tunable parameters for RowMatrix construction.
//
// Fields:
//   - DiagEntry   — the unset-row diagonal value implicit rows carry.
//   - BoundsCheck — validate indices on Get/Set/Add; when disabled,
//     out-of-range indices behave like raw slice accesses (hot path).
//   - Parallel    — execute Apply/ApplyAdd and the masked variants
//     row-parallel across the available CPUs.
type MatrixOptions struct {
	DiagEntry   float64
	BoundsCheck bool
	Parallel    bool
}

// DefaultMatrixOptions returns MatrixOptions with DiagEntry=1 (implicit
// rows behave as identity rows), bounds checking off and sequential
// applies.
func DefaultMatrixOptions() MatrixOptions {
	return MatrixOptions{DiagEntry: 1}
}
