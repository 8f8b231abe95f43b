package reim

import (
	"fmt"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"

	"github.com/Pro7ech/hal/utils/sampling"
)

func testString(opname string, k Kernels, N int) string {
	return fmt.Sprintf("%s/%s/N=%d", opname, k.Name(), N)
}

func randPoly(source *sampling.Source, N int, logBound int) (p []int64) {
	p = make([]int64, N)
	for i := range p {
		p[i] = int64(source.Uint64()) >> (64 - logBound)
	}
	return
}

// negacyclic returns a * b mod X^N + 1.
func negacyclic(a, b []int64) (c []int64) {
	N := len(a)
	c = make([]int64, N)
	for i := 0; i < N; i++ {
		for j := 0; j < N; j++ {
			if k := i + j; k < N {
				c[k] += a[i] * b[j]
			} else {
				c[k-N] -= a[i] * b[j]
			}
		}
	}
	return
}

func TestTable(t *testing.T) {
	_, err := NewTable(4)
	require.Error(t, err)
	_, err = NewTable(24)
	require.Error(t, err)
	tab, err := NewTable(16)
	require.NoError(t, err)
	require.Equal(t, 8, tab.M)
	require.Equal(t, 1.0, tab.TwistRe[0])
	require.Equal(t, 0.0, tab.OmegaRe[2])
	require.Equal(t, 1.0, tab.OmegaIm[2])
}

func TestFFT(t *testing.T) {

	source := sampling.NewSource([32]byte{})

	for _, k := range []Kernels{ReferenceKernels{}, LanesKernels{}} {

		for _, N := range []int{8, 16, 64, 1024} {

			tab, err := NewTable(N)
			require.NoError(t, err)

			t.Run(testString("RoundTrip", k, N), func(t *testing.T) {
				a := randPoly(source, N, 40)
				x := make([]float64, N)
				k.FromZnx(tab, x, a)

				// unrounded inverse, checked against the relative tolerance
				y := append([]float64{}, x...)
				k.IFFT(tab, y)
				m := tab.M
				var norm float64
				for _, v := range a {
					norm = math.Max(norm, math.Abs(float64(v)))
				}
				for j := 0; j < m; j++ {
					zr, zi := y[j]/float64(m), y[j+m]/float64(m)
					ar := zr*tab.TwistRe[j] + zi*tab.TwistIm[j]
					ai := zi*tab.TwistRe[j] - zr*tab.TwistIm[j]
					require.InDelta(t, float64(a[j]), ar, 1e-10*norm)
					require.InDelta(t, float64(a[j+m]), ai, 1e-10*norm)
				}

				b := make([]int64, N)
				k.ToZnx(tab, b, x)
				require.Equal(t, a, b)
			})

			t.Run(testString("Convolution", k, N), func(t *testing.T) {
				a := randPoly(source, N, 12)
				b := randPoly(source, N, 12)
				fa := make([]float64, N)
				fb := make([]float64, N)
				k.FromZnx(tab, fa, a)
				k.FromZnx(tab, fb, b)
				k.Mul(fa, fa, fb)
				c := make([]int64, N)
				k.ToZnx(tab, c, fa)
				require.Equal(t, negacyclic(a, b), c)

				// (a*b + a*b) - a*b = a*b
				k.FromZnx(tab, fa, a)
				acc := make([]float64, N)
				k.MulAdd(acc, fa, fb)
				k.MulAdd(acc, fa, fb)
				prod := make([]float64, N)
				k.Mul(prod, fa, fb)
				k.SubABInplace(acc, prod)
				k.ToZnx(tab, c, acc)
				require.Equal(t, negacyclic(a, b), c)
			})
		}
	}
}

func TestLanesParity(t *testing.T) {

	source := sampling.NewSource([32]byte{})
	ref, lanes := ReferenceKernels{}, LanesKernels{}
	approx := cmpopts.EquateApprox(1e-12, 1e-9)

	for _, N := range []int{8, 32, 256} {

		tab, err := NewTable(N)
		require.NoError(t, err)

		a := make([]float64, N)
		b := make([]float64, N)
		ref.FromZnx(tab, a, randPoly(source, N, 30))
		ref.FromZnx(tab, b, randPoly(source, N, 30))

		t.Run(fmt.Sprintf("Transforms/N=%d", N), func(t *testing.T) {
			x, y := append([]float64{}, a...), append([]float64{}, a...)
			ref.FFT(tab, x)
			lanes.FFT(tab, y)
			require.Empty(t, cmp.Diff(x, y, approx))
			ref.IFFT(tab, x)
			lanes.IFFT(tab, y)
			require.Empty(t, cmp.Diff(x, y, approx))
		})

		t.Run(fmt.Sprintf("Pointwise/N=%d", N), func(t *testing.T) {
			ops := map[string]func(k Kernels, res []float64){
				"Add":    func(k Kernels, res []float64) { k.Add(res, a, b) },
				"Sub":    func(k Kernels, res []float64) { k.Sub(res, a, b) },
				"Negate": func(k Kernels, res []float64) { k.Negate(res, a) },
				"Mul":    func(k Kernels, res []float64) { k.Mul(res, a, b) },
				"MulAdd": func(k Kernels, res []float64) {
					copy(res, b)
					k.MulAdd(res, a, b)
				},
				"SubBAInplace": func(k Kernels, res []float64) {
					copy(res, b)
					k.SubBAInplace(res, a)
				},
			}
			for name, op := range ops {
				x, y := make([]float64, N), make([]float64, N)
				op(ref, x)
				op(lanes, y)
				require.Empty(t, cmp.Diff(x, y, approx), name)
			}
		})
	}

	t.Run("VecMat", func(t *testing.T) {
		for _, dims := range [][2]int{{1, 1}, {3, 2}, {4, 5}} {
			rows, cols := dims[0], dims[1]
			in := make([]float64, rows*8)
			mat := make([]float64, rows*cols*8)
			for i := range in {
				in[i] = source.NormFloat64()
			}
			for i := range mat {
				mat[i] = source.NormFloat64()
			}
			x, y := make([]float64, cols*8), make([]float64, cols*8)
			ref.VecMat(x, in, mat, rows, cols)
			lanes.VecMat(y, in, mat, rows, cols)
			require.Empty(t, cmp.Diff(x, y, approx))
		}
	})
}

func TestBlocks(t *testing.T) {
	N := 16
	x := make([]float64, N)
	for i := range x {
		x[i] = float64(i)
	}
	blk := make([]float64, 8)
	ExtractBlock(blk, 1, x)
	require.Equal(t, []float64{4, 5, 6, 7, 12, 13, 14, 15}, blk)

	y := make([]float64, N)
	SaveBlock(y, 1, blk)
	AddBlock(y, 1, blk)
	require.Equal(t, []float64{0, 0, 0, 0, 8, 10, 12, 14, 0, 0, 0, 0, 24, 26, 28, 30}, y)
}
