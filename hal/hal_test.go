package hal

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Pro7ech/hal/utils/sampling"
	"github.com/Pro7ech/hal/znx"
)

// testBackend only provides the limb kernels.
type testBackend struct {
	n       int
	kernels znx.Kernels
}

func (b testBackend) Name() string         { return "TEST" }
func (b testBackend) N() int               { return b.n }
func (b testBackend) Kernels() znx.Kernels { return b.kernels }
func (b testBackend) BigWords() int        { return 1 }
func (b testBackend) DftWords() int        { return 1 }
func (b testBackend) SvpWords() int        { return 1 }
func (b testBackend) VmpWords() int        { return 1 }

func testString(opname string, m *Module, basek int) string {
	return fmt.Sprintf("%s/Kernels=%s/N=%d/basek=%d", opname, m.Kernels().Name(), m.N(), basek)
}

func testModules(n int) []*Module {
	return []*Module{
		NewModule(testBackend{n: n, kernels: znx.Select(znx.Reference)}),
		NewModule(testBackend{n: n, kernels: znx.Select(znx.Lanes)}),
	}
}

// torus returns the exact value sum_j a[col][j][i] * 2^(-(j+1)*basek).
func torus(basek int, a VecZnx, col, i int) *big.Float {
	acc := new(big.Float).SetPrec(4096)
	digit := new(big.Float)
	for j := a.Size - 1; j >= 0; j-- {
		acc.Add(acc, digit.SetInt64(a.At(col, j)[i]))
		acc.SetMantExp(acc, -basek)
	}
	return acc
}

// requireTorusEqual checks that x = y mod 1.
func requireTorusEqual(t *testing.T, x, y *big.Float) {
	d := new(big.Float).SetPrec(4096).Sub(x, y)
	require.True(t, d.IsInt(), "%s != %s mod 1", x.Text('g', 40), y.Text('g', 40))
}

func requireNormalized(t *testing.T, basek int, a VecZnx, col int) {
	for j := range a.Size {
		for _, c := range a.At(col, j) {
			require.Equal(t, c, znx.Digit(basek, c), "limb %d is not normalized", j)
		}
	}
}

func randVecZnx(source *sampling.Source, n, cols, size, logBound int) VecZnx {
	a := NewVecZnx(n, cols, size)
	raw := a.Raw()
	for i := range raw {
		raw[i] = int64(source.Uint64()) >> (64 - logBound)
	}
	return a
}

func TestModule(t *testing.T) {
	m := NewModule(testBackend{n: 16, kernels: znx.Select(znx.Auto)})
	require.Equal(t, 16, m.N())
	require.Equal(t, 4, m.LogN())
	require.Equal(t, "TEST", m.Name())
	require.Equal(t, "Module{Backend: TEST, N: 16, Kernels: "+m.Kernels().Name()+"}", m.String())

	t.Run("MissingCapability", func(t *testing.T) {
		a := m.NewVecZnxBig(1, 1)
		require.PanicsWithError(t, "backend TEST does not implement VecZnxBigImpl", func() { m.VecZnxBigAddInplace(a, 0, a, 0) })
		require.PanicsWithError(t, "backend TEST does not implement VecZnxDftImpl", func() { m.VecZnxIdftApplyTmpBytes() })
		require.PanicsWithError(t, "backend TEST does not implement SvpImpl", func() { m.SvpPrepare(m.NewSvpPPol(1), 0, m.NewScalarZnx(1), 0) })
		require.PanicsWithError(t, "backend TEST does not implement VmpImpl", func() { m.VmpPrepareTmpBytes(1, 1, 1, 1) })
	})

	if !checks {
		return
	}

	t.Run("Checks", func(t *testing.T) {
		a := m.NewVecZnx(2, 3)
		b := NewVecZnx(8, 2, 3)
		scratch := NewScratchOwned(m.VecZnxNormalizeTmpBytes()).Borrow()
		require.Panics(t, func() { m.VecZnxAdd(a, 0, a, 0, b, 0) })
		require.Panics(t, func() { m.VecZnxAdd(a, 2, a, 0, a, 1) })
		require.Panics(t, func() { m.VecZnxRotate(1, a, 0, a, 0) })
		require.NotPanics(t, func() { m.VecZnxRotate(1, a, 1, a, 0) })
		require.Panics(t, func() { m.VecZnxAutomorphism(2, a, 1, a, 0) })
		require.Panics(t, func() { m.VecZnxNormalize(64, a, 0, a, 1, scratch) })
		require.Panics(t, func() { m.VecZnxLsh(12, -1, a, 0, a, 1, scratch) })

		other := NewModule(testBackend{n: 16, kernels: znx.Select(znx.Auto)})
		foreign := m.NewVecZnxBig(1, 1)
		foreign.Backend = "OTHER"
		require.Panics(t, func() { other.VecZnxBigNegateInplace(foreign, 0) })
	})
}
