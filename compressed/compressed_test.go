package compressed_test

import (
	"math/rand"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlmat/compressed"
	"github.com/katalvlaran/lvlmat/coo"
	"github.com/katalvlaran/lvlmat/sparse"
	"github.com/katalvlaran/lvlmat/vec"
)

func TestCSR_ApplySmall(t *testing.T) {
	tm := coo.New(2, 2)
	tm.Append(0, 0, 1)
	tm.Append(1, 1, 1)
	tm.Append(0, 1, 2)

	m := compressed.NewCSRFromTriplet(tm, compressed.DefaultOptions())
	y := vec.New(2)
	require.NoError(t, m.Apply(vec.Wrap([]float64{1, 1}), y))
	require.Equal(t, []float64{3, 1}, y.Data())
}

func TestConversion_SumsDuplicates(t *testing.T) {
	tm := coo.New(2, 2)
	tm.Append(0, 0, 2)
	tm.Append(0, 0, 3)

	csr := compressed.NewCSRFromTriplet(tm, compressed.DefaultOptions())
	require.Equal(t, 1, csr.NNZ())
	require.Equal(t, 5.0, csr.Get(0, 0))

	csc := compressed.NewCSCFromTriplet(tm, compressed.DefaultOptions())
	require.Equal(t, 1, csc.NNZ())
	require.Equal(t, 5.0, csc.Get(0, 0))

	// the source triplet matrix is untouched
	require.Equal(t, 2, tm.NNZ())
}

// requireCanonical asserts the structural postconditions of a built
// compressed matrix: exact prefix-sum pointers with strictly
// increasing, duplicate-free minor indices within each line.
func requireCanonical(t *testing.T, ptr, index []int, nnz int) {
	t.Helper()
	require.Equal(t, 0, ptr[0])
	require.Equal(t, nnz, ptr[len(ptr)-1])
	for l := 0; l+1 < len(ptr); l++ {
		require.LessOrEqual(t, ptr[l], ptr[l+1])
		for k := ptr[l] + 1; k < ptr[l+1]; k++ {
			require.Greater(t, index[k], index[k-1], "line %d", l)
		}
	}
}

func TestConversion_CanonicalStructure(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	tm := coo.New(13, 9)
	for k := 0; k < 200; k++ {
		tm.Append(rng.Intn(13), rng.Intn(9), rng.NormFloat64())
	}

	csr := compressed.NewCSRFromTriplet(tm, compressed.DefaultOptions())
	requireCanonical(t, csr.RowPtr(), csr.ColIndexes(), csr.NNZ())

	csc := compressed.NewCSCFromTriplet(tm, compressed.DefaultOptions())
	requireCanonical(t, csc.ColPtr(), csc.RowIndexes(), csc.NNZ())

	// both agree with the triplet reference everywhere
	for i := 0; i < 13; i++ {
		for j := 0; j < 9; j++ {
			want := tm.Get(i, j)
			require.InDelta(t, want, csr.Get(i, j), 1e-12)
			require.InDelta(t, want, csc.Get(i, j), 1e-12)
		}
	}
}

func TestCSR_SetAddInsertion(t *testing.T) {
	tm := coo.New(3, 3)
	tm.Append(0, 0, 1)
	tm.Append(2, 2, 4)
	m := compressed.NewCSRFromTriplet(tm, compressed.DefaultOptions())

	// brand-new nonzero: array shift plus pointer bump
	require.NoError(t, m.Set(1, 1, 7))
	require.Equal(t, 3, m.NNZ())
	require.Equal(t, 7.0, m.Get(1, 1))
	requireCanonical(t, m.RowPtr(), m.ColIndexes(), m.NNZ())

	// in-place update, no structural change
	require.NoError(t, m.Add(1, 1, 1))
	require.Equal(t, 3, m.NNZ())
	require.Equal(t, 8.0, m.Get(1, 1))

	// adding exact zero to an absent position stays structural no-op
	require.NoError(t, m.Add(0, 2, 0))
	require.Equal(t, 3, m.NNZ())

	// new nonzero in the middle of an existing row
	require.NoError(t, m.Add(2, 0, -2))
	require.Equal(t, 4, m.NNZ())
	require.Equal(t, -2.0, m.Get(2, 0))
	requireCanonical(t, m.RowPtr(), m.ColIndexes(), m.NNZ())

	require.ErrorIs(t, m.Set(3, 0, 1), compressed.ErrIndexOutOfBounds)
	require.ErrorIs(t, m.Add(0, -1, 1), compressed.ErrIndexOutOfBounds)
}

func TestCSC_SetAddInsertion(t *testing.T) {
	tm := coo.New(3, 3)
	tm.Append(0, 0, 1)
	m := compressed.NewCSCFromTriplet(tm, compressed.DefaultOptions())

	require.NoError(t, m.Set(2, 1, 5))
	require.Equal(t, 5.0, m.Get(2, 1))
	require.NoError(t, m.Add(2, 1, 1))
	require.Equal(t, 6.0, m.Get(2, 1))
	requireCanonical(t, m.ColPtr(), m.RowIndexes(), m.NNZ())
	require.ErrorIs(t, m.Set(0, 3, 1), compressed.ErrIndexOutOfBounds)
}

func TestFromRowMatrix_ImplicitRows(t *testing.T) {
	opts := sparse.DefaultMatrixOptions()
	opts.DiagEntry = 3
	src := sparse.NewIdentityMatrix(3, 3, opts)
	r := sparse.NewDynamicRow()
	r.Set(1, 0, 2)
	r.Set(1, 2, -1)
	require.NoError(t, src.NewRow(1, r))

	csr := compressed.NewCSRFromRowMatrix(src, compressed.DefaultOptions())
	require.Equal(t, 3.0, csr.Get(0, 0)) // implicit diagonal carried over
	require.Equal(t, 3.0, csr.Get(2, 2))
	require.Equal(t, 2.0, csr.Get(1, 0))
	require.Equal(t, -1.0, csr.Get(1, 2))
	require.Equal(t, 0.0, csr.Get(1, 1)) // materialized row has no diagonal
	require.Equal(t, 4, csr.NNZ())
	requireCanonical(t, csr.RowPtr(), csr.ColIndexes(), csr.NNZ())

	csc := compressed.NewCSCFromRowMatrix(src, compressed.DefaultOptions())
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			require.Equal(t, csr.Get(i, j), csc.Get(i, j))
		}
	}
}

func TestApply_DimensionChecks(t *testing.T) {
	tm := coo.New(3, 2)
	tm.Append(0, 0, 1)
	csr := compressed.NewCSRFromTriplet(tm, compressed.DefaultOptions())
	csc := compressed.NewCSCFromTriplet(tm, compressed.DefaultOptions())

	good := vec.New(2)
	bad := vec.New(3)
	dest := vec.New(3)
	require.NoError(t, csr.Apply(good, dest))
	require.ErrorIs(t, csr.Apply(bad, dest), compressed.ErrDimensionMismatch)
	require.ErrorIs(t, csr.ApplyAdd(good, good), compressed.ErrDimensionMismatch)
	require.ErrorIs(t, csc.Apply(bad, dest), compressed.ErrDimensionMismatch)
	require.ErrorIs(t, csc.ApplyAdd(good, good), compressed.ErrDimensionMismatch)
}

func TestCSR_ParallelApplyMatchesSequential(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	tm := coo.New(200, 200)
	for k := 0; k < 2000; k++ {
		tm.Append(rng.Intn(200), rng.Intn(200), rng.NormFloat64())
	}
	seq := compressed.NewCSRFromTriplet(tm, compressed.DefaultOptions())
	par := compressed.NewCSRFromTriplet(tm, compressed.Options{Parallel: true})

	x := vec.New(200)
	for i := 0; i < 200; i++ {
		x.Set(i, rng.NormFloat64())
	}
	ySeq, yPar := vec.New(200), vec.New(200)
	require.NoError(t, seq.Apply(x, ySeq))
	require.NoError(t, par.Apply(x, yPar))
	require.Equal(t, ySeq.Data(), yPar.Data())
}

func TestApplyMulti_FlattenSplit(t *testing.T) {
	tm := coo.New(4, 4)
	for i := 0; i < 4; i++ {
		tm.Append(i, i, float64(i + 1))
	}
	m := compressed.NewCSRFromTriplet(tm, compressed.DefaultOptions())

	arg := vec.MultiFrom(vec.Wrap([]float64{1, 1}), vec.Wrap([]float64{1, 1}))
	dest := vec.NewMulti(2, 2)
	require.NoError(t, m.ApplyMulti(arg, dest))
	require.Equal(t, []float64{1, 2}, dest.Block(0).Data())
	require.Equal(t, []float64{3, 4}, dest.Block(1).Data())

	short := vec.NewMulti(2, 1)
	require.ErrorIs(t, m.ApplyMulti(arg, short), compressed.ErrDimensionMismatch)

	csc := compressed.NewCSCFromTriplet(tm, compressed.DefaultOptions())
	destCSC := vec.NewMulti(2, 2)
	require.NoError(t, csc.ApplyMulti(arg, destCSC))
	require.Equal(t, dest.Block(0).Data(), destCSC.Block(0).Data())
	require.Equal(t, dest.Block(1).Data(), destCSC.Block(1).Data())
}

// TestCSRAndCSCAgreeOnApply checks on random inputs that the two
// orientations compute the same product.
func TestCSRAndCSCAgreeOnApply(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	parameters.Rng = rand.New(rand.NewSource(99))
	properties := gopter.NewProperties(parameters)

	properties.Property("CSR apply == CSC apply", prop.ForAll(
		func(seed int64) bool {
			rng := rand.New(rand.NewSource(seed))
			rows, cols := 1+rng.Intn(12), 1+rng.Intn(12)
			tm := coo.New(rows, cols)
			for k := 0; k < 3*rows; k++ {
				tm.Append(rng.Intn(rows), rng.Intn(cols), rng.NormFloat64())
			}
			x := vec.New(cols)
			for j := 0; j < cols; j++ {
				x.Set(j, rng.NormFloat64())
			}
			yCSR, yCSC := vec.New(rows), vec.New(rows)
			csr := compressed.NewCSRFromTriplet(tm, compressed.DefaultOptions())
			csc := compressed.NewCSCFromTriplet(tm, compressed.DefaultOptions())
			if csr.Apply(x, yCSR) != nil || csc.Apply(x, yCSC) != nil {
				return false
			}
			return yCSR.ApproxEqual(yCSC, 1e-12)
		},
		gen.Int64(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
