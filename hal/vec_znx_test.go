package hal

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Pro7ech/hal/utils"
	"github.com/Pro7ech/hal/utils/sampling"
	"github.com/Pro7ech/hal/znx"
)

var testSizes = []int{1, 2, 6, 11}

func limbOrZero(v VecZnx, col, j, i int) int64 {
	if j < v.Size {
		return v.At(col, j)[i]
	}
	return 0
}

func TestVecZnx(t *testing.T) {
	for _, m := range testModules(16) {
		testVecZnxArithmetic(t, m)
		testVecZnxPermutations(t, m)
		testVecZnxNormalize(t, m, 12)
		testVecZnxNormalize(t, m, 17)
		testVecZnxShifts(t, m, 12)
		testVecZnxShifts(t, m, 19)
		testVecZnxSplitMerge(t, m)
	}
}

func testVecZnxArithmetic(t *testing.T, m *Module) {

	source := sampling.NewSource([32]byte{})

	binary := map[string]struct {
		apply func(res VecZnx, a, b VecZnx)
		want  func(r, a, b int64) int64
	}{
		"Add": {
			func(res, a, b VecZnx) { m.VecZnxAdd(res, 1, a, 0, b, 1) },
			func(r, a, b int64) int64 { return a + b },
		},
		"Sub": {
			func(res, a, b VecZnx) { m.VecZnxSub(res, 1, a, 0, b, 1) },
			func(r, a, b int64) int64 { return a - b },
		},
		"AddInplace": {
			func(res, a, b VecZnx) { m.VecZnxAddInplace(res, 1, a, 0) },
			func(r, a, b int64) int64 { return r + a },
		},
		"SubABInplace": {
			func(res, a, b VecZnx) { m.VecZnxSubABInplace(res, 1, a, 0) },
			func(r, a, b int64) int64 { return r - a },
		},
		"SubBAInplace": {
			func(res, a, b VecZnx) { m.VecZnxSubBAInplace(res, 1, a, 0) },
			func(r, a, b int64) int64 { return a - r },
		},
		"Negate": {
			func(res, a, b VecZnx) { m.VecZnxNegate(res, 1, a, 0) },
			func(r, a, b int64) int64 { return -a },
		},
		"Copy": {
			func(res, a, b VecZnx) { m.VecZnxCopy(res, 1, a, 0) },
			func(r, a, b int64) int64 { return a },
		},
	}

	for name, op := range binary {
		t.Run(testString(name, m, 0), func(t *testing.T) {
			for _, resSize := range testSizes {
				for _, aSize := range testSizes {
					for _, bSize := range testSizes {
						res := randVecZnx(source, m.N(), 2, resSize, 62)
						a := randVecZnx(source, m.N(), 2, aSize, 62)
						b := randVecZnx(source, m.N(), 2, bSize, 62)
						before := res.CopyNew()

						op.apply(res, a, b)

						for j := range resSize {
							for i := range m.N() {
								want := op.want(before.At(1, j)[i], limbOrZero(a, 0, j, i), limbOrZero(b, 1, j, i))
								require.Equal(t, want, res.At(1, j)[i])
							}
							// Other columns are untouched.
							require.Equal(t, before.At(0, j), res.At(0, j))
						}
					}
				}
			}
		})
	}

	t.Run(testString("NegateInplace", m, 0), func(t *testing.T) {
		a := randVecZnx(source, m.N(), 2, 6, 62)
		want := m.NewVecZnx(2, 6)
		m.VecZnxNegate(want, 1, a, 1)
		m.VecZnxNegateInplace(a, 1)
		require.Equal(t, want.Col(1), a.Col(1))
	})

	t.Run(testString("Scalar", m, 0), func(t *testing.T) {
		a := randVecZnx(source, m.N(), 2, 3, 62)
		s := m.NewScalarZnx(2)
		copy(s.At(1), randVecZnx(source, m.N(), 1, 1, 62).Raw())
		want := a.CopyNew()
		m.VecZnxAddScalarInplace(a, 0, 2, s, 1)
		for i := range m.N() {
			require.Equal(t, want.At(0, 2)[i]+s.At(1)[i], a.At(0, 2)[i])
		}
		m.VecZnxSubScalarInplace(a, 0, 2, s, 1)
		require.True(t, want.Equal(a))
		m.VecZnxZero(a, 0)
		require.Equal(t, make([]int64, 3*m.N()), a.Col(0))
	})
}

func testVecZnxPermutations(t *testing.T, m *Module) {

	source := sampling.NewSource([32]byte{})
	ref := znx.ReferenceKernels{}
	scratch := NewScratchOwned(m.VecZnxAutomorphismInplaceTmpBytes()).Borrow()

	ops := map[string]struct {
		apply   func(p int64, res, a VecZnx)
		inplace func(p int64, a VecZnx)
		kernel  func(p int64, res, a []int64)
	}{
		"Rotate": {
			func(p int64, res, a VecZnx) { m.VecZnxRotate(p, res, 0, a, 0) },
			func(p int64, a VecZnx) { m.VecZnxRotateInplace(p, a, 0) },
			ref.Rotate,
		},
		"Automorphism": {
			func(p int64, res, a VecZnx) { m.VecZnxAutomorphism(p, res, 0, a, 0) },
			func(p int64, a VecZnx) { m.VecZnxAutomorphismInplace(p, a, 0, scratch) },
			ref.Automorphism,
		},
		"MulXpMinusOne": {
			func(p int64, res, a VecZnx) { m.VecZnxMulXpMinusOne(p, res, 0, a, 0) },
			func(p int64, a VecZnx) { m.VecZnxMulXpMinusOneInplace(p, a, 0, scratch) },
			ref.MulXpMinusOne,
		},
	}

	for name, op := range ops {
		t.Run(testString(name, m, 0), func(t *testing.T) {
			for _, p := range []int64{-33, -5, 1, 3, 15, 31, 47} {
				for _, resSize := range testSizes {
					for _, aSize := range testSizes {
						a := randVecZnx(source, m.N(), 1, aSize, 62)
						res := randVecZnx(source, m.N(), 1, resSize, 62)
						op.apply(p, res, a)
						want := make([]int64, m.N())
						for j := range resSize {
							clear(want)
							if j < aSize {
								op.kernel(p, want, a.At(0, j))
							}
							require.Equal(t, want, res.At(0, j))
						}
						if resSize == aSize {
							op.inplace(p, a)
							require.True(t, res.Equal(a))
						}
					}
				}
			}
		})
	}

	t.Run(testString("SwitchDegree", m, 0), func(t *testing.T) {
		a := randVecZnx(source, m.N(), 1, 3, 62)
		up := NewVecZnx(2*m.N(), 1, 3)
		down := NewVecZnx(m.N()/2, 1, 2)
		back := m.NewVecZnx(1, 3)

		m.VecZnxSwitchDegree(up, 0, a, 0)
		m.VecZnxSwitchDegree(back, 0, up, 0)
		require.True(t, a.Equal(back))

		m.VecZnxSwitchDegree(down, 0, a, 0)
		for j := range 2 {
			for i := range down.N {
				require.Equal(t, a.At(0, j)[2*i], down.At(0, j)[i])
			}
		}
	})
}

func testVecZnxNormalize(t *testing.T, m *Module, basek int) {

	source := sampling.NewSource([32]byte{})
	scratch := NewScratchOwned(m.VecZnxNormalizeTmpBytes()).Borrow()

	t.Run(testString("Normalize", m, basek), func(t *testing.T) {
		for _, size := range testSizes {
			a := randVecZnx(source, m.N(), 2, size, 62)
			res := m.NewVecZnx(2, size)
			m.VecZnxNormalize(basek, res, 0, a, 1, scratch)

			requireNormalized(t, basek, res, 0)
			for i := range m.N() {
				requireTorusEqual(t, torus(basek, res, 0, i), torus(basek, a, 1, i))
			}

			// Idempotence.
			again := m.NewVecZnx(2, size)
			m.VecZnxNormalize(basek, again, 1, res, 0, scratch)
			require.Equal(t, res.Col(0), again.Col(1))

			// In place.
			m.VecZnxNormalizeInplace(basek, a, 1, scratch)
			require.Equal(t, res.Col(0), a.Col(1))
		}
	})

	t.Run(testString("Normalize/SizeMismatch", m, basek), func(t *testing.T) {
		for _, aSize := range testSizes {
			a := randVecZnx(source, m.N(), 1, aSize, 62)
			full := m.NewVecZnx(1, aSize)
			m.VecZnxNormalize(basek, full, 0, a, 0, scratch)
			for _, resSize := range testSizes {
				res := randVecZnx(source, m.N(), 1, resSize, 62)
				m.VecZnxNormalize(basek, res, 0, a, 0, scratch)
				for j := range resSize {
					require.Equal(t, limbOrZeroSlice(full, j), res.At(0, j))
				}
			}
		}
	})
}

func limbOrZeroSlice(v VecZnx, j int) []int64 {
	if j < v.Size {
		return v.At(0, j)
	}
	return make([]int64, v.N)
}

func testVecZnxShifts(t *testing.T, m *Module, basek int) {

	source := sampling.NewSource([32]byte{})
	scratch := NewScratchOwned(max(m.VecZnxLshTmpBytes(), m.VecZnxRshTmpBytes())).Borrow()

	t.Run(testString("Lsh", m, basek), func(t *testing.T) {
		for _, size := range testSizes {
			for _, k := range []int{0, 5, basek, basek + 7, 3 * basek, 200} {
				a := m.NewVecZnx(1, size)
				FillUniform(basek, a, 0, size, source)
				res := m.NewVecZnx(1, size)
				m.VecZnxLsh(basek, k, res, 0, a, 0, scratch)

				requireNormalized(t, basek, res, 0)
				for i := range m.N() {
					want := torus(basek, a, 0, i)
					want.SetMantExp(want, k)
					requireTorusEqual(t, torus(basek, res, 0, i), want)
				}

				m.VecZnxLshInplace(basek, k, a, 0, scratch)
				require.True(t, res.Equal(a))
			}
		}
	})

	t.Run(testString("Rsh", m, basek), func(t *testing.T) {
		for _, size := range []int{6, 11} {
			for _, k := range []int{0, 5, basek, basek + 7, 3 * basek} {
				a := m.NewVecZnx(1, size)
				// The last limbs stay zero so that no bit is discarded.
				FillUniform(basek, a, 0, size-utils.DivCeil(k, basek), source)
				want := make([]*big.Float, m.N())
				for i := range want {
					want[i] = torus(basek, a, 0, i)
					want[i].SetMantExp(want[i], -k)
				}

				m.VecZnxRsh(basek, k, a, 0, scratch)

				requireNormalized(t, basek, a, 0)
				for i := range m.N() {
					requireTorusEqual(t, torus(basek, a, 0, i), want[i])
				}
			}
		}
	})
}

func testVecZnxSplitMerge(t *testing.T, m *Module) {

	source := sampling.NewSource([32]byte{})
	scratch := NewScratchOwned(max(m.VecZnxSplitTmpBytes(), m.VecZnxMergeTmpBytes())).Borrow()

	t.Run(testString("SplitMerge", m, 0), func(t *testing.T) {
		for _, parts := range []int{1, 2, 4} {
			for _, size := range testSizes {
				a := randVecZnx(source, m.N(), 2, size, 62)
				split := make([]VecZnx, parts)
				for i := range split {
					split[i] = NewVecZnx(m.N()/parts, 2, size)
				}

				m.VecZnxSplit(split, 1, a, 0, scratch)

				for i := range split {
					for j := range size {
						for c := range split[i].N {
							require.Equal(t, a.At(0, j)[i+c*parts], split[i].At(1, j)[c])
						}
					}
				}

				res := m.NewVecZnx(1, size)
				m.VecZnxMerge(res, 0, split, 1, scratch)
				require.Equal(t, a.Col(0), res.Col(0))
			}
		}
	})
}
