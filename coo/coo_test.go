package coo_test

import (
	"math/rand"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlmat/coo"
	"github.com/katalvlaran/lvlmat/sparse"
	"github.com/katalvlaran/lvlmat/vec"
)

func TestMatrix_AppendGetSums(t *testing.T) {
	m := coo.New(3, 3)
	m.Append(1, 2, 4)
	m.Append(1, 2, -1)
	m.Append(0, 0, 7)

	require.Equal(t, 3.0, m.Get(1, 2))
	require.Equal(t, 7.0, m.Get(0, 0))
	require.Equal(t, 0.0, m.Get(2, 2))
	require.Equal(t, 3, m.NNZ())
}

func TestMatrix_AppendPanicsOutOfBounds(t *testing.T) {
	m := coo.New(2, 2)
	require.PanicsWithValue(t, coo.ErrIndexOutOfBounds, func() { m.Append(2, 0, 1) })
	require.PanicsWithValue(t, coo.ErrIndexOutOfBounds, func() { m.Append(0, -1, 1) })
}

func TestMatrix_SetOverridesDuplicates(t *testing.T) {
	m := coo.New(2, 2)
	m.Append(0, 1, 5)
	m.Append(0, 1, 5)
	m.Set(0, 1, 3)

	require.Equal(t, 3.0, m.Get(0, 1))
	m.SumDuplicates()
	require.Equal(t, 3.0, m.Get(0, 1))
	require.Equal(t, 1, m.NNZ())
}

func TestMatrix_SumDuplicates(t *testing.T) {
	m := coo.New(3, 3)
	m.Append(0, 0, 1)
	m.Append(2, 1, 2)
	m.Append(0, 0, 4)
	m.Append(1, 1, 3)
	m.Append(1, 1, -3) // cancels to exact zero, must be dropped

	m.SumDuplicates()

	require.Equal(t, 2, m.NNZ())
	require.Equal(t, 5.0, m.Get(0, 0))
	require.Equal(t, 2.0, m.Get(2, 1))
	require.Equal(t, 0.0, m.Get(1, 1))

	// idempotent
	m.SumDuplicates()
	require.Equal(t, 2, m.NNZ())
	require.Equal(t, 5.0, m.Get(0, 0))
}

func TestMatrix_RemoveRowCol(t *testing.T) {
	m := coo.New(3, 3)
	m.Append(0, 0, 1)
	m.Append(0, 1, 2)
	m.Append(1, 1, 3)
	m.Append(2, 2, 4)
	m.Append(2, 1, 5)

	m.RemoveRowCol(1)

	r, c := m.Dims()
	require.Equal(t, 2, r)
	require.Equal(t, 2, c)
	require.Equal(t, 1.0, m.Get(0, 0))
	require.Equal(t, 4.0, m.Get(1, 1)) // old (2,2) shifted down
	require.Equal(t, 2, m.NNZ())
}

func TestMatrix_RowColZeroAndErase(t *testing.T) {
	m := coo.New(3, 3)
	m.Append(0, 0, 1)
	m.Append(0, 2, 2)
	m.Append(1, 0, 3)
	m.Append(2, 2, 4)

	m.SetRowToZero(0)
	require.Equal(t, 0.0, m.Get(0, 0))
	require.Equal(t, 0.0, m.Get(0, 2))
	require.Equal(t, 3.0, m.Get(1, 0))

	m.SetColToZero(0)
	require.Equal(t, 0.0, m.Get(1, 0))
	require.Equal(t, 4.0, m.Get(2, 2))

	m.EraseEntry(2, 2)
	require.Equal(t, 0, m.NNZ())
}

func TestMatrix_Elimination(t *testing.T) {
	m := coo.New(3, 3)
	m.Append(0, 0, 2)
	m.Append(0, 1, 1)
	m.Append(1, 0, 1)
	m.Append(1, 1, 3)

	require.NoError(t, m.AddMultipleRowToRow(0, 1, 1))
	require.Equal(t, 3.0, m.Get(1, 0))
	require.Equal(t, 4.0, m.Get(1, 1))

	require.NoError(t, m.AddMultipleColToCol(0, 1, 1))
	require.Equal(t, 3.0, m.Get(0, 1)) // 1 + 2
	require.Equal(t, 7.0, m.Get(1, 1)) // 4 + 3

	require.NoError(t, m.SetRowColToDiagonal(0, 1))
	require.Equal(t, 1.0, m.Get(0, 0))
	require.Equal(t, 0.0, m.Get(0, 1))
	require.Equal(t, 0.0, m.Get(1, 0))
	require.Equal(t, 7.0, m.Get(1, 1))

	require.ErrorIs(t, m.AddMultipleRowToRow(1, 1, 2), coo.ErrSameIndex)
	require.ErrorIs(t, m.AddMultipleColToCol(0, 3, 2), coo.ErrIndexOutOfBounds)
	require.ErrorIs(t, m.SetRowColToDiagonal(-1, 1), coo.ErrIndexOutOfBounds)
}

func TestMatrix_ApplyNotImplemented(t *testing.T) {
	m := coo.New(2, 2)
	x, y := vec.New(2), vec.New(2)
	require.ErrorIs(t, m.Apply(x, y), coo.ErrNotImplemented)
	require.ErrorIs(t, m.ApplyAdd(x, y), coo.ErrNotImplemented)
}

func TestMatrix_ToRowMatrix(t *testing.T) {
	m := coo.New(2, 3)
	m.Append(0, 0, 1)
	m.Append(0, 0, 1) // duplicate, must sum in the target
	m.Append(1, 2, 5)

	rm := m.ToRowMatrix(sparse.DefaultMatrixOptions())
	require.Equal(t, 2.0, rm.Get(0, 0))
	require.Equal(t, 5.0, rm.Get(1, 2))
	require.Equal(t, 0.0, rm.Get(1, 1))
}

func TestMatrix_CloneIsDeep(t *testing.T) {
	m := coo.New(2, 2)
	m.Append(0, 0, 1)
	c := m.Clone()
	c.Append(1, 1, 2)

	require.Equal(t, 1, m.NNZ())
	require.Equal(t, 2, c.NNZ())
}

// TestMatrix_SumDuplicatesProperties checks with random matrices that
// canonicalization never changes the logical matrix.
func TestMatrix_SumDuplicatesProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	parameters.Rng = rand.New(rand.NewSource(42))
	properties := gopter.NewProperties(parameters)

	properties.Property("SumDuplicates preserves every logical entry", prop.ForAll(
		func(seed int64) bool {
			rng := rand.New(rand.NewSource(seed))
			m := coo.New(6, 6)
			for k := 0; k < 40; k++ {
				m.Append(rng.Intn(6), rng.Intn(6), float64(rng.Intn(7)-3))
			}
			before := snapshot(m)
			m.SumDuplicates()
			return snapshot(m) == before && m.NNZ() <= 36
		},
		gen.Int64(),
	))

	properties.Property("ToRowMatrix agrees with Get everywhere", prop.ForAll(
		func(seed int64) bool {
			rng := rand.New(rand.NewSource(seed))
			m := coo.New(5, 5)
			for k := 0; k < 20; k++ {
				m.Append(rng.Intn(5), rng.Intn(5), rng.NormFloat64())
			}
			rm := m.ToRowMatrix(sparse.DefaultMatrixOptions())
			for i := 0; i < 5; i++ {
				for j := 0; j < 5; j++ {
					if rm.Get(i, j) != m.Get(i, j) {
						return false
					}
				}
			}
			return true
		},
		gen.Int64(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

// snapshot renders the dense 6×6 content as a comparable value.
func snapshot(m *coo.Matrix) [36]float64 {
	var s [36]float64
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			s[i*6+j] = m.Get(i, j)
		}
	}
	return s
}
