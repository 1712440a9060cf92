package vec_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlmat/vec"
)

func TestVector_Basics(t *testing.T) {
	v := vec.New(4)
	require.Equal(t, 4, v.Size())
	for i := 0; i < 4; i++ {
		require.Equal(t, 0.0, v.At(i))
	}

	v.Set(1, 2.5)
	v.Add(1, 0.5)
	require.Equal(t, 3.0, v.At(1))

	v.Fill(7)
	require.Equal(t, 7.0, v.At(3))

	v.SetZero()
	require.Equal(t, 0.0, v.At(1))
}

func TestVector_WrapSharesStorage(t *testing.T) {
	data := []float64{1, 2, 3}
	v := vec.Wrap(data)
	v.Set(0, 9)
	require.Equal(t, 9.0, data[0])
}

func TestVector_CloneIsDeep(t *testing.T) {
	v := vec.Wrap([]float64{1, 2})
	c := v.Clone()
	c.Set(0, 5)
	require.Equal(t, 1.0, v.At(0))
	require.Equal(t, 5.0, c.At(0))
}

func TestVector_Dot(t *testing.T) {
	a := vec.Wrap([]float64{1, 2, 3})
	b := vec.Wrap([]float64{4, 5, 6})
	require.Equal(t, 32.0, a.Dot(b))
}

func TestVector_CopyFrom_SizeMismatch(t *testing.T) {
	a := vec.New(3)
	b := vec.New(2)
	require.ErrorIs(t, a.CopyFrom(b), vec.ErrSizeMismatch)
}

func TestVector_ApproxEqual(t *testing.T) {
	a := vec.Wrap([]float64{1, 2, 3})
	b := vec.Wrap([]float64{1, 2, 3 + 1e-12})
	require.True(t, a.ApproxEqual(b, 1e-9))
	require.False(t, a.ApproxEqual(vec.New(2), 1e-9))
}

func TestMultiVector_FlattenSplitRoundTrip(t *testing.T) {
	mv := vec.NewMulti(2, 3)
	mv.Block(0).Set(0, 1)
	mv.Block(0).Set(1, 2)
	mv.Block(1).Set(0, 3)
	mv.Block(1).Set(1, 4)
	mv.Block(1).Set(2, 5)

	flat := vec.New(5)
	require.NoError(t, mv.CopyUnblockedTo(flat))
	require.Equal(t, []float64{1, 2, 3, 4, 5}, flat.Data())

	back := vec.NewMulti(2, 3)
	require.NoError(t, back.CopySplitFrom(flat))
	require.Equal(t, 2.0, back.Block(0).At(1))
	require.Equal(t, 5.0, back.Block(1).At(2))
}

func TestMultiVector_SizeMismatch(t *testing.T) {
	mv := vec.NewMulti(2, 2)
	require.ErrorIs(t, mv.CopyUnblockedTo(vec.New(3)), vec.ErrSizeMismatch)
	require.ErrorIs(t, mv.CopySplitFrom(vec.New(5)), vec.ErrSizeMismatch)
}

func TestMask(t *testing.T) {
	m := vec.NewMask(5)
	require.Equal(t, 5, m.Size())
	require.Equal(t, 0, m.Count())

	m.Set(2, true)
	m.Set(4, true)
	require.True(t, m.Get(2))
	require.False(t, m.Get(3))
	require.Equal(t, 2, m.Count())

	c := m.Clone()
	c.Set(2, false)
	require.True(t, m.Get(2))
	require.False(t, c.Get(2))

	m.SetAll(true)
	require.Equal(t, 5, m.Count())
	m.SetAll(false)
	require.Equal(t, 0, m.Count())
}
