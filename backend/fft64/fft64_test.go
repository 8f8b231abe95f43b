package fft64

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Pro7ech/hal/hal"
	"github.com/Pro7ech/hal/utils"
	"github.com/Pro7ech/hal/utils/sampling"
	"github.com/Pro7ech/hal/znx"
)

var testSizes = []int{1, 2, 6, 11}

func testString(opname string, m *hal.Module) string {
	return fmt.Sprintf("%s/Backend=%s/Kernels=%s/N=%d", opname, m.Name(), m.Kernels().Name(), m.N())
}

func testModules(t *testing.T, n int) (modules []*hal.Module) {
	for _, tier := range []znx.Tier{znx.Reference, znx.Lanes} {
		m, err := NewModule(n, tier)
		require.NoError(t, err)
		modules = append(modules, m)
	}
	return
}

func randVecZnx(source *sampling.Source, n, cols, size, logBound int) hal.VecZnx {
	a := hal.NewVecZnx(n, cols, size)
	raw := a.Raw()
	for i := range raw {
		raw[i] = int64(source.Uint64()) >> (64 - logBound)
	}
	return a
}

// negacyclic returns a * b mod X^N+1.
func negacyclic(a, b []int64) []int64 {
	n := len(a)
	res := make([]int64, n)
	for i := range a {
		for j := range b {
			if k := i + j; k < n {
				res[k] += a[i] * b[j]
			} else {
				res[k-n] -= a[i] * b[j]
			}
		}
	}
	return res
}

func addTo(res, a []int64) {
	for i := range res {
		res[i] += a[i]
	}
}

func TestNewModule(t *testing.T) {
	for _, n := range []int{0, 4, 12, 1 << 17} {
		_, err := NewModule(n, znx.Auto)
		require.Error(t, err)
	}
	m, err := NewModule(64, znx.Auto)
	require.NoError(t, err)
	require.Equal(t, Name, m.Name())
	require.Equal(t, 64, m.N())
	require.Equal(t, 64*2*3*8, m.VecZnxDftAllocBytes(2, 3))
	require.Equal(t, 64*2*3*8, m.VecZnxBigAllocBytes(2, 3))
}

func TestDft(t *testing.T) {

	source := sampling.NewSource([32]byte{})

	for _, m := range testModules(t, 64) {

		scratch := hal.NewScratchOwned(m.VecZnxIdftApplyTmpBytes()).Borrow()

		t.Run(testString("RoundTrip", m), func(t *testing.T) {
			for _, size := range testSizes {
				a := randVecZnx(source, m.N(), 2, size, 40)
				dft := m.NewVecZnxDft(2, size)
				big := m.NewVecZnxBig(2, size)

				m.VecZnxDftApply(1, 0, dft, 1, a, 0)
				m.VecZnxIdftApply(big, 0, dft, 1, scratch)
				require.Equal(t, a.Col(0), big.AsVecZnx().Col(0))

				tmpa := m.NewVecZnxBig(2, size)
				m.VecZnxIdftApplyTmpA(tmpa, 1, dft, 1)
				require.Equal(t, a.Col(0), tmpa.AsVecZnx().Col(1))

				m.VecZnxDftApply(1, 0, dft, 0, a, 1)
				consumed := m.VecZnxIdftApplyConsume(dft)
				require.Equal(t, a.Col(1), consumed.AsVecZnx().Col(0))
			}
		})

		t.Run(testString("StepOffset", m), func(t *testing.T) {
			a := randVecZnx(source, m.N(), 1, 11, 40)
			for _, step := range []int{1, 2, 3} {
				for _, offset := range []int{0, 1, 4} {
					dft := m.NewVecZnxDft(1, 6)
					m.VecZnxDftApply(step, offset, dft, 0, a, 0)

					copied := m.NewVecZnxDft(1, 6)
					full := m.NewVecZnxDft(1, 11)
					m.VecZnxDftApply(1, 0, full, 0, a, 0)
					m.VecZnxDftCopy(step, offset, copied, 0, full, 0)
					require.Equal(t, dft.Data, copied.Data)

					big := m.NewVecZnxBig(1, 6)
					m.VecZnxIdftApply(big, 0, dft, 0, scratch)
					for j := range 6 {
						want := make([]int64, m.N())
						if src := offset + j*step; src < a.Size {
							want = a.At(0, src)
						}
						require.Equal(t, want, big.AtI64(0, j))
					}
				}
			}
		})

		t.Run(testString("Linear", m), func(t *testing.T) {
			for _, aSize := range testSizes {
				for _, bSize := range testSizes {
					a := randVecZnx(source, m.N(), 1, aSize, 40)
					b := randVecZnx(source, m.N(), 1, bSize, 40)
					da, db := m.NewVecZnxDft(1, aSize), m.NewVecZnxDft(1, bSize)
					m.VecZnxDftApply(1, 0, da, 0, a, 0)
					m.VecZnxDftApply(1, 0, db, 0, b, 0)

					size := max(aSize, bSize)
					want := m.NewVecZnx(1, size)
					have := m.NewVecZnxBig(1, size)
					res := m.NewVecZnxDft(1, size)

					m.VecZnxAdd(want, 0, a, 0, b, 0)
					m.VecZnxDftAdd(res, 0, da, 0, db, 0)
					m.VecZnxIdftApply(have, 0, res, 0, scratch)
					require.Equal(t, want.Raw(), have.AsVecZnx().Raw())

					m.VecZnxSub(want, 0, a, 0, b, 0)
					m.VecZnxDftSub(res, 0, da, 0, db, 0)
					m.VecZnxIdftApply(have, 0, res, 0, scratch)
					require.Equal(t, want.Raw(), have.AsVecZnx().Raw())

					m.VecZnxDftSubBAInplace(res, 0, da, 0)
					m.VecZnxSubBAInplace(want, 0, a, 0)
					m.VecZnxIdftApply(have, 0, res, 0, scratch)
					require.Equal(t, want.Raw(), have.AsVecZnx().Raw())

					m.VecZnxDftSubABInplace(res, 0, db, 0)
					m.VecZnxSubABInplace(want, 0, b, 0)
					m.VecZnxDftAddInplace(res, 0, da, 0)
					m.VecZnxAddInplace(want, 0, a, 0)
					m.VecZnxIdftApply(have, 0, res, 0, scratch)
					require.Equal(t, want.Raw(), have.AsVecZnx().Raw())

					m.VecZnxDftZero(res)
					require.Equal(t, make([]byte, len(res.Data)), res.Data)
				}
			}
		})
	}
}

func TestSvp(t *testing.T) {

	source := sampling.NewSource([32]byte{})

	for _, m := range testModules(t, 32) {

		scratch := hal.NewScratchOwned(m.VecZnxIdftApplyTmpBytes()).Borrow()

		t.Run(testString("SvpApply", m), func(t *testing.T) {
			s := m.NewScalarZnx(2)
			s.FillTernaryProb(1, 0.5, source)
			ppol := m.NewSvpPPol(2)
			m.SvpPrepare(ppol, 1, s, 1)

			for _, resSize := range testSizes {
				for _, aSize := range testSizes {
					a := randVecZnx(source, m.N(), 1, aSize, 30)
					da := m.NewVecZnxDft(1, aSize)
					m.VecZnxDftApply(1, 0, da, 0, a, 0)

					res := m.NewVecZnxDft(1, resSize)
					m.SvpApply(res, 0, ppol, 1, da, 0)
					big := m.NewVecZnxBig(1, resSize)
					m.VecZnxIdftApply(big, 0, res, 0, scratch)

					for j := range resSize {
						want := make([]int64, m.N())
						if j < aSize {
							want = negacyclic(s.At(1), a.At(0, j))
						}
						require.Equal(t, want, big.AtI64(0, j))
					}

					m.SvpApplyInplace(da, 0, ppol, 1)
					m.VecZnxIdftApply(big, 0, da, 0, scratch)
					for j := range min(resSize, aSize) {
						require.Equal(t, negacyclic(s.At(1), a.At(0, j)), big.AtI64(0, j))
					}
				}
			}
		})
	}
}

func TestVmp(t *testing.T) {

	source := sampling.NewSource([32]byte{})

	for _, m := range testModules(t, 32) {
		for _, shape := range [][4]int{{1, 1, 1, 1}, {3, 2, 2, 2}, {6, 1, 3, 4}, {2, 2, 1, 6}, {3, 1, 3, 1}, {5, 3, 1, 3}} {

			rows, colsIn, colsOut, size := shape[0], shape[1], shape[2], shape[3]

			mat := m.NewMatZnx(rows, colsIn, colsOut, size)
			copy(mat.Data, randVecZnx(source, m.N(), 1, rows*colsIn*colsOut*size, 12).Data)

			pmat := m.NewVmpPMat(rows, colsIn, colsOut, size)
			m.VmpPrepare(pmat, mat, hal.NewScratchOwned(m.VmpPrepareTmpBytes(rows, colsIn, colsOut, size)).Borrow())

			for _, aSize := range testSizes {
				for _, resSize := range testSizes {

					t.Run(testString(fmt.Sprintf("VmpApply/rows=%d/colsIn=%d/colsOut=%d/size=%d/aSize=%d/resSize=%d", rows, colsIn, colsOut, size, aSize, resSize), m), func(t *testing.T) {

						a := randVecZnx(source, m.N(), colsIn, aSize, 12)
						da := m.NewVecZnxDft(colsIn, aSize)
						for ci := range colsIn {
							m.VecZnxDftApply(1, 0, da, ci, a, ci)
						}

						vmpScratch := hal.NewScratch(utils.AlignedBytes(m.VmpApplyTmpBytes(resSize, aSize, rows, colsIn, colsOut, size)))
						scratch := hal.NewScratchOwned(m.VecZnxIdftApplyTmpBytes()).Borrow()

						// want[co][j] = sum_{r, ci} a[ci][r] * mat[r][ci][co][j]
						want := make([][][]int64, colsOut)
						for co := range want {
							want[co] = make([][]int64, size)
							for j := range want[co] {
								want[co][j] = make([]int64, m.N())
								for r := range min(rows, aSize) {
									for ci := range colsIn {
										addTo(want[co][j], negacyclic(a.At(ci, r), mat.At(r, ci).At(co, j)))
									}
								}
							}
						}

						res := m.NewVecZnxDft(colsOut, resSize)
						m.VmpApplyDftToDft(res, da, pmat, vmpScratch)
						big := m.NewVecZnxBig(colsOut, resSize)
						for co := range colsOut {
							m.VecZnxIdftApply(big, co, res, co, scratch)
							for j := range resSize {
								if j < size {
									require.Equal(t, want[co][j], big.AtI64(co, j))
								} else {
									require.Equal(t, make([]int64, m.N()), big.AtI64(co, j))
								}
							}
						}

						// Accumulation with a limb offset.
						for _, offset := range []int{0, 1, 3} {
							init := randVecZnx(source, m.N(), colsOut, resSize, 12)
							acc := m.NewVecZnxDft(colsOut, resSize)
							for co := range colsOut {
								m.VecZnxDftApply(1, 0, acc, co, init, co)
							}
							m.VmpApplyDftToDftAdd(acc, da, pmat, offset, vmpScratch)
							for co := range colsOut {
								m.VecZnxIdftApply(big, co, acc, co, scratch)
								for j := range resSize {
									expected := append([]int64{}, init.At(co, j)...)
									if src := j - offset; src >= 0 && src < size {
										addTo(expected, want[co][src])
									}
									require.Equal(t, expected, big.AtI64(co, j))
								}
							}
						}
					})
				}
			}
		}
	}
}

func TestVecZnxBig(t *testing.T) {

	source := sampling.NewSource([32]byte{})

	for _, m := range testModules(t, 64) {

		basek := 17
		scratch := hal.NewScratchOwned(max(m.VecZnxBigNormalizeTmpBytes(), m.VecZnxBigAutomorphismInplaceTmpBytes())).Borrow()

		t.Run(testString("VecZnxBig", m), func(t *testing.T) {
			for _, size := range testSizes {
				a := randVecZnx(source, m.N(), 1, size, 50)
				b := randVecZnx(source, m.N(), 1, size, 50)
				ba, bb := m.NewVecZnxBig(1, size), m.NewVecZnxBig(1, size)
				m.VecZnxBigFromSmall(ba, 0, a, 0)
				m.VecZnxBigFromSmall(bb, 0, b, 0)

				want := m.NewVecZnx(1, size)
				have := m.NewVecZnxBig(1, size)

				m.VecZnxAdd(want, 0, a, 0, b, 0)
				m.VecZnxBigAdd(have, 0, ba, 0, bb, 0)
				require.Equal(t, want.Raw(), have.AsVecZnx().Raw())
				m.VecZnxBigAddSmall(have, 0, ba, 0, b, 0)
				require.Equal(t, want.Raw(), have.AsVecZnx().Raw())

				m.VecZnxSub(want, 0, a, 0, b, 0)
				m.VecZnxBigSubSmallA(have, 0, a, 0, bb, 0)
				require.Equal(t, want.Raw(), have.AsVecZnx().Raw())
				m.VecZnxBigSubSmallB(have, 0, ba, 0, b, 0)
				require.Equal(t, want.Raw(), have.AsVecZnx().Raw())
				m.VecZnxBigSub(have, 0, ba, 0, bb, 0)
				require.Equal(t, want.Raw(), have.AsVecZnx().Raw())

				m.VecZnxBigAddInplace(have, 0, bb, 0)
				m.VecZnxBigAddSmallInplace(have, 0, b, 0)
				m.VecZnxBigSubABInplace(have, 0, bb, 0)
				m.VecZnxBigSubSmallABInplace(have, 0, b, 0)
				m.VecZnxBigSubSmallBAInplace(have, 0, a, 0)
				m.VecZnxBigSubBAInplace(have, 0, ba, 0)
				require.Equal(t, want.Raw(), have.AsVecZnx().Raw())

				m.VecZnxBigNegate(have, 0, ba, 0)
				m.VecZnxBigNegateInplace(have, 0)
				require.Equal(t, a.Raw(), have.AsVecZnx().Raw())

				res := m.NewVecZnx(1, size)
				m.VecZnxNormalize(basek, want, 0, a, 0, scratch)
				m.VecZnxBigNormalize(basek, res, 0, ba, 0, scratch)
				require.Equal(t, want.Raw(), res.Raw())

				m.VecZnxRotate(5, want, 0, a, 0)
				m.VecZnxBigRotate(5, have, 0, ba, 0)
				require.Equal(t, want.Raw(), have.AsVecZnx().Raw())
				m.VecZnxBigRotateInplace(-5, have, 0)
				require.Equal(t, a.Raw(), have.AsVecZnx().Raw())

				m.VecZnxAutomorphism(-7, want, 0, a, 0)
				m.VecZnxBigAutomorphism(-7, have, 0, ba, 0)
				require.Equal(t, want.Raw(), have.AsVecZnx().Raw())
				m.VecZnxBigAutomorphismInplace(-7, ba, 0, scratch)
				require.Equal(t, want.Raw(), ba.AsVecZnx().Raw())
			}
		})

		t.Run(testString("VecZnxBigAddNormal", m), func(t *testing.T) {
			big := m.NewVecZnxBig(1, 3)
			m.VecZnxBigAddNormal(basek, big, 0, 40, source, 3.2, 19.2)
			values := make([]int64, m.N())
			big.AsVecZnx().DecodeVecI64(basek, 0, 40, values)
			var nonZero bool
			for _, e := range values {
				require.LessOrEqual(t, e, int64(19))
				require.GreaterOrEqual(t, e, int64(-19))
				nonZero = nonZero || e != 0
			}
			require.True(t, nonZero)
		})
	}
}

func TestTierParity(t *testing.T) {

	source := sampling.NewSource([32]byte{})
	modules := testModules(t, 256)
	ref, lanes := modules[0], modules[1]

	for _, size := range testSizes {
		for _, cols := range []int{1, 2} {
			a := randVecZnx(source, ref.N(), cols, size, 45)
			dRef, dLanes := ref.NewVecZnxDft(cols, size), lanes.NewVecZnxDft(cols, size)
			for col := range cols {
				ref.VecZnxDftApply(1, 0, dRef, col, a, col)
				lanes.VecZnxDftApply(1, 0, dLanes, col, a, col)
			}
			for col := range cols {
				for j := range size {
					x, y := dRef.AtF64(col, j), dLanes.AtF64(col, j)
					for i := range x {
						require.InDelta(t, x[i], y[i], 1e-9*(1+max(x[i], -x[i])))
					}
				}
			}
			bRef := ref.VecZnxIdftApplyConsume(dRef)
			bLanes := lanes.VecZnxIdftApplyConsume(dLanes)
			require.Equal(t, bRef.Data, bLanes.Data)
		}
	}
}
