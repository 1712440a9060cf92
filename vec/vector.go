package vec

import (
	"errors"

	"gonum.org/v1/gonum/floats"
)

// Sentinel errors for vec operations.
var (
	// ErrSizeMismatch indicates two containers of different total sizes
	// were combined.
	ErrSizeMismatch = errors.New("vec: sizes do not match")
	// ErrBlockShape indicates a MultiVector block layout does not match.
	ErrBlockShape = errors.New("vec: block layout does not match")
)

// Vector is a fixed-size, index-addressable dense vector.
//
// The zero value is an empty vector; use New or Wrap to construct one.
type Vector struct {
	data []float64
}

// New returns a zero-initialized Vector of size n.
func New(n int) *Vector {
	return &Vector{data: make([]float64, n)}
}

// Wrap returns a Vector sharing the given backing slice.
// The caller must not resize the slice while the Vector is in use.
func Wrap(data []float64) *Vector {
	return &Vector{data: data}
}

// Size returns the number of elements.
func (v *Vector) Size() int { return len(v.data) }

// At returns the i-th element. Out-of-range indices panic.
func (v *Vector) At(i int) float64 { return v.data[i] }

// Set stores value at index i. Out-of-range indices panic.
func (v *Vector) Set(i int, value float64) { v.data[i] = value }

// Add accumulates value into index i. Out-of-range indices panic.
func (v *Vector) Add(i int, value float64) { v.data[i] += value }

// SetZero sets every element to zero.
func (v *Vector) SetZero() {
	for i := range v.data {
		v.data[i] = 0
	}
}

// Fill sets every element to value.
func (v *Vector) Fill(value float64) {
	for i := range v.data {
		v.data[i] = value
	}
}

// Data exposes the backing slice. Mutating it mutates the vector.
func (v *Vector) Data() []float64 { return v.data }

// Clone returns a deep copy.
func (v *Vector) Clone() *Vector {
	out := make([]float64, len(v.data))
	copy(out, v.data)
	return &Vector{data: out}
}

// CopyFrom copies other into v. Returns ErrSizeMismatch if sizes differ.
func (v *Vector) CopyFrom(other *Vector) error {
	if len(v.data) != len(other.data) {
		return ErrSizeMismatch
	}
	copy(v.data, other.data)
	return nil
}

// Dot returns the inner product v·other. Panics if sizes differ.
func (v *Vector) Dot(other *Vector) float64 {
	return floats.Dot(v.data, other.data)
}

// ApproxEqual reports whether v and other agree element-wise within eps.
// Vectors of different sizes are never equal.
func (v *Vector) ApproxEqual(other *Vector, eps float64) bool {
	if len(v.data) != len(other.data) {
		return false
	}
	return floats.EqualApprox(v.data, other.data, eps)
}
