package hal

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Pro7ech/hal/utils"
	"github.com/Pro7ech/hal/utils/concurrency"
	"github.com/Pro7ech/hal/utils/sampling"
	"github.com/Pro7ech/hal/znx"
)

func TestScratch(t *testing.T) {

	owned := NewScratchOwned(1000)
	require.Equal(t, 1024, owned.Size())

	s := owned.Borrow()
	require.Equal(t, 1024, s.Available())

	t.Run("Take", func(t *testing.T) {
		b1, rest := s.TakeSlice(3)
		require.Len(t, b1, 3)
		require.True(t, utils.IsAligned(b1))
		require.Equal(t, 1024-64, rest.Available())

		v, rest := rest.TakeVecZnx(8, 2, 3)
		require.Equal(t, VecZnx{N: 8, Cols: 2, Size: 3, Data: v.Data}, v)
		require.True(t, utils.IsAligned(v.Data))
		require.Equal(t, 1024-64-384, rest.Available())

		vecs, rest := rest.TakeVecZnxSlice(2, 4, 1, 2)
		require.Len(t, vecs, 2)
		require.Equal(t, 1024-64-384-128, rest.Available())

		// The receiver is not consumed: dropping rest releases the regions.
		require.Equal(t, 1024, s.Available())

		require.Panics(t, func() { rest.TakeSlice(rest.Available() + 1) })
		empty, same := rest.TakeSlice(0)
		require.Empty(t, empty)
		require.Equal(t, rest.Available(), same.Available())

		require.Zero(t, testing.AllocsPerRun(10, func() {
			_, rest := s.TakeVecZnx(8, 2, 3)
			rest.TakeInt64(8)
		}))
	})

	t.Run("Views", func(t *testing.T) {
		m := NewModule(testBackend{n: 8, kernels: znx.Select(znx.Reference)})
		big, rest := s.TakeVecZnxBig(m, 2, 2)
		require.Equal(t, m.VecZnxBigAllocBytes(2, 2), len(big.Data))
		dft, rest := rest.TakeVecZnxDft(m, 1, 2)
		require.Equal(t, m.VecZnxDftAllocBytes(1, 2), len(dft.Data))
		svp, rest := rest.TakeSvpPPol(m, 2)
		require.Equal(t, m.SvpPPolAllocBytes(2), len(svp.Data))
		pmat, rest := rest.TakeVmpPMat(m, 1, 1, 1, 1)
		require.Equal(t, m.VmpPMatAllocBytes(1, 1, 1, 1), len(pmat.Data))
		mat, rest := rest.TakeMatZnx(8, 1, 1, 1, 1)
		require.Equal(t, MatZnxAllocBytes(8, 1, 1, 1, 1), len(mat.Data))
		scalar, _ := rest.TakeScalarZnx(8, 1)
		require.Len(t, scalar.At(0), 8)
		require.False(t, overlap(big.Data, dft.Data))
		require.False(t, overlap(svp.Data, pmat.Data))
	})

	t.Run("Split", func(t *testing.T) {
		parts := s.Split(3, 100)
		require.Len(t, parts, 3)
		for i := range parts {
			require.Equal(t, 128, parts[i].Available())
			for j := range i {
				require.False(t, overlap(parts[i].buf, parts[j].buf))
			}
		}
		require.Panics(t, func() { s.Split(9, 128) })
	})
}

func TestScratchPool(t *testing.T) {

	basek := 12
	m := NewModule(testBackend{n: 64, kernels: znx.Select(znx.Auto)})
	source := sampling.NewSource([32]byte{})

	cols := 8
	a := randVecZnx(source, m.N(), cols, 4, 60)
	want := m.NewVecZnx(cols, 4)
	have := m.NewVecZnx(cols, 4)

	workers := 3
	owned := NewScratchOwned(workers * m.VecZnxNormalizeTmpBytes())

	for i := range cols {
		m.VecZnxNormalize(basek, want, i, a, i, owned.Borrow())
	}

	pool := concurrency.NewPool(owned.Borrow().Split(workers, m.VecZnxNormalizeTmpBytes()))
	require.NoError(t, pool.ForEach(cols, func(i int, scratch Scratch) error {
		m.VecZnxNormalize(basek, have, i, a, i, scratch)
		return nil
	}))

	require.True(t, want.Equal(have))
}
