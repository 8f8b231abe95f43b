package hal

import (
	"fmt"

	"github.com/Pro7ech/hal/utils"
	"github.com/Pro7ech/hal/utils/sampling"
)

// VecZnxBigAllocBytes returns the size in bytes of a [VecZnxBig].
func (m *Module) VecZnxBigAllocBytes(cols, size int) int {
	return m.n * cols * size * m.backend.BigWords() * 8
}

// NewVecZnxBig allocates a zeroed [VecZnxBig].
func (m *Module) NewVecZnxBig(cols, size int) VecZnxBig {
	return m.VecZnxBigFromBytes(cols, size, utils.AlignedBytes(m.VecZnxBigAllocBytes(cols, size)))
}

// VecZnxBigFromBytes wraps buf as a [VecZnxBig].
// It panics if len(buf) does not match [Module.VecZnxBigAllocBytes].
func (m *Module) VecZnxBigFromBytes(cols, size int, buf []byte) VecZnxBig {
	assertSize("VecZnxBigFromBytes", len(buf), m.VecZnxBigAllocBytes(cols, size))
	return VecZnxBig{Backend: m.Name(), N: m.n, Cols: cols, Size: size, Words: m.backend.BigWords(), Data: buf}
}

func (m *Module) checkBig(name string, v VecZnxBig, col int) {
	assertBackend(name, v.Backend, m.Name())
	assertDegree(name, v.N, m.n)
	assertCol(name, col, v.Cols)
}

// VecZnxBigAdd evaluates res = a + b.
func (m *Module) VecZnxBigAdd(res VecZnxBig, resCol int, a VecZnxBig, aCol int, b VecZnxBig, bCol int) {
	if checks {
		m.checkBig("VecZnxBigAdd", res, resCol)
		m.checkBig("VecZnxBigAdd", a, aCol)
		m.checkBig("VecZnxBigAdd", b, bCol)
	}
	m.bigImpl().VecZnxBigAdd(res, resCol, a, aCol, b, bCol)
}

// VecZnxBigAddInplace evaluates res = res + a.
func (m *Module) VecZnxBigAddInplace(res VecZnxBig, resCol int, a VecZnxBig, aCol int) {
	if checks {
		m.checkBig("VecZnxBigAddInplace", res, resCol)
		m.checkBig("VecZnxBigAddInplace", a, aCol)
	}
	m.bigImpl().VecZnxBigAddInplace(res, resCol, a, aCol)
}

// VecZnxBigAddSmall evaluates res = a + b.
func (m *Module) VecZnxBigAddSmall(res VecZnxBig, resCol int, a VecZnxBig, aCol int, b VecZnx, bCol int) {
	if checks {
		m.checkBig("VecZnxBigAddSmall", res, resCol)
		m.checkBig("VecZnxBigAddSmall", a, aCol)
		m.checkVecZnx("VecZnxBigAddSmall", b, bCol)
	}
	m.bigImpl().VecZnxBigAddSmall(res, resCol, a, aCol, b, bCol)
}

// VecZnxBigAddSmallInplace evaluates res = res + a.
func (m *Module) VecZnxBigAddSmallInplace(res VecZnxBig, resCol int, a VecZnx, aCol int) {
	if checks {
		m.checkBig("VecZnxBigAddSmallInplace", res, resCol)
		m.checkVecZnx("VecZnxBigAddSmallInplace", a, aCol)
	}
	m.bigImpl().VecZnxBigAddSmallInplace(res, resCol, a, aCol)
}

// VecZnxBigSub evaluates res = a - b.
func (m *Module) VecZnxBigSub(res VecZnxBig, resCol int, a VecZnxBig, aCol int, b VecZnxBig, bCol int) {
	if checks {
		m.checkBig("VecZnxBigSub", res, resCol)
		m.checkBig("VecZnxBigSub", a, aCol)
		m.checkBig("VecZnxBigSub", b, bCol)
	}
	m.bigImpl().VecZnxBigSub(res, resCol, a, aCol, b, bCol)
}

// VecZnxBigSubABInplace evaluates res = res - a.
func (m *Module) VecZnxBigSubABInplace(res VecZnxBig, resCol int, a VecZnxBig, aCol int) {
	if checks {
		m.checkBig("VecZnxBigSubABInplace", res, resCol)
		m.checkBig("VecZnxBigSubABInplace", a, aCol)
	}
	m.bigImpl().VecZnxBigSubABInplace(res, resCol, a, aCol)
}

// VecZnxBigSubBAInplace evaluates res = a - res.
func (m *Module) VecZnxBigSubBAInplace(res VecZnxBig, resCol int, a VecZnxBig, aCol int) {
	if checks {
		m.checkBig("VecZnxBigSubBAInplace", res, resCol)
		m.checkBig("VecZnxBigSubBAInplace", a, aCol)
	}
	m.bigImpl().VecZnxBigSubBAInplace(res, resCol, a, aCol)
}

// VecZnxBigSubSmallA evaluates res = a - b.
func (m *Module) VecZnxBigSubSmallA(res VecZnxBig, resCol int, a VecZnx, aCol int, b VecZnxBig, bCol int) {
	if checks {
		m.checkBig("VecZnxBigSubSmallA", res, resCol)
		m.checkVecZnx("VecZnxBigSubSmallA", a, aCol)
		m.checkBig("VecZnxBigSubSmallA", b, bCol)
	}
	m.bigImpl().VecZnxBigSubSmallA(res, resCol, a, aCol, b, bCol)
}

// VecZnxBigSubSmallB evaluates res = a - b.
func (m *Module) VecZnxBigSubSmallB(res VecZnxBig, resCol int, a VecZnxBig, aCol int, b VecZnx, bCol int) {
	if checks {
		m.checkBig("VecZnxBigSubSmallB", res, resCol)
		m.checkBig("VecZnxBigSubSmallB", a, aCol)
		m.checkVecZnx("VecZnxBigSubSmallB", b, bCol)
	}
	m.bigImpl().VecZnxBigSubSmallB(res, resCol, a, aCol, b, bCol)
}

// VecZnxBigSubSmallABInplace evaluates res = res - a.
func (m *Module) VecZnxBigSubSmallABInplace(res VecZnxBig, resCol int, a VecZnx, aCol int) {
	if checks {
		m.checkBig("VecZnxBigSubSmallABInplace", res, resCol)
		m.checkVecZnx("VecZnxBigSubSmallABInplace", a, aCol)
	}
	m.bigImpl().VecZnxBigSubSmallABInplace(res, resCol, a, aCol)
}

// VecZnxBigSubSmallBAInplace evaluates res = a - res.
func (m *Module) VecZnxBigSubSmallBAInplace(res VecZnxBig, resCol int, a VecZnx, aCol int) {
	if checks {
		m.checkBig("VecZnxBigSubSmallBAInplace", res, resCol)
		m.checkVecZnx("VecZnxBigSubSmallBAInplace", a, aCol)
	}
	m.bigImpl().VecZnxBigSubSmallBAInplace(res, resCol, a, aCol)
}

// VecZnxBigNegate evaluates res = -a.
func (m *Module) VecZnxBigNegate(res VecZnxBig, resCol int, a VecZnxBig, aCol int) {
	if checks {
		m.checkBig("VecZnxBigNegate", res, resCol)
		m.checkBig("VecZnxBigNegate", a, aCol)
	}
	m.bigImpl().VecZnxBigNegate(res, resCol, a, aCol)
}

// VecZnxBigNegateInplace evaluates a = -a.
func (m *Module) VecZnxBigNegateInplace(a VecZnxBig, aCol int) {
	if checks {
		m.checkBig("VecZnxBigNegateInplace", a, aCol)
	}
	m.bigImpl().VecZnxBigNegateInplace(a, aCol)
}

// VecZnxBigFromSmall writes a on res.
func (m *Module) VecZnxBigFromSmall(res VecZnxBig, resCol int, a VecZnx, aCol int) {
	if checks {
		m.checkBig("VecZnxBigFromSmall", res, resCol)
		m.checkVecZnx("VecZnxBigFromSmall", a, aCol)
	}
	m.bigImpl().VecZnxBigFromSmall(res, resCol, a, aCol)
}

// VecZnxBigNormalizeTmpBytes returns the scratch size of [Module.VecZnxBigNormalize].
func (m *Module) VecZnxBigNormalizeTmpBytes() int {
	return m.bigImpl().VecZnxBigNormalizeTmpBytes()
}

// VecZnxBigNormalize writes on res the base-2^basek normalization of a.
func (m *Module) VecZnxBigNormalize(basek int, res VecZnx, resCol int, a VecZnxBig, aCol int, scratch Scratch) {
	if checks {
		m.checkVecZnx("VecZnxBigNormalize", res, resCol)
		m.checkBig("VecZnxBigNormalize", a, aCol)
		assertBasek("VecZnxBigNormalize", basek)
	}
	m.bigImpl().VecZnxBigNormalize(basek, res, resCol, a, aCol, scratch)
}

// VecZnxBigRotate evaluates res = X^p * a. res and a must not overlap.
func (m *Module) VecZnxBigRotate(p int64, res VecZnxBig, resCol int, a VecZnxBig, aCol int) {
	if checks {
		m.checkBig("VecZnxBigRotate", res, resCol)
		m.checkBig("VecZnxBigRotate", a, aCol)
		assertNoOverlap("VecZnxBigRotate", res.Col(resCol), a.Col(aCol))
	}
	m.bigImpl().VecZnxBigRotate(p, res, resCol, a, aCol)
}

// VecZnxBigRotateInplace evaluates a = X^p * a.
func (m *Module) VecZnxBigRotateInplace(p int64, a VecZnxBig, aCol int) {
	if checks {
		m.checkBig("VecZnxBigRotateInplace", a, aCol)
	}
	m.bigImpl().VecZnxBigRotateInplace(p, a, aCol)
}

// VecZnxBigAutomorphism evaluates res(X) = a(X^p) for an odd p.
// res and a must not overlap.
func (m *Module) VecZnxBigAutomorphism(p int64, res VecZnxBig, resCol int, a VecZnxBig, aCol int) {
	if checks {
		m.checkBig("VecZnxBigAutomorphism", res, resCol)
		m.checkBig("VecZnxBigAutomorphism", a, aCol)
		assertNoOverlap("VecZnxBigAutomorphism", res.Col(resCol), a.Col(aCol))
		if p&1 != 1 {
			panic(fmt.Errorf("VecZnxBigAutomorphism: p=%d must be odd", p))
		}
	}
	m.bigImpl().VecZnxBigAutomorphism(p, res, resCol, a, aCol)
}

// VecZnxBigAutomorphismInplaceTmpBytes returns the scratch size of [Module.VecZnxBigAutomorphismInplace].
func (m *Module) VecZnxBigAutomorphismInplaceTmpBytes() int {
	return m.bigImpl().VecZnxBigAutomorphismInplaceTmpBytes()
}

// VecZnxBigAutomorphismInplace evaluates a(X) = a(X^p) for an odd p.
func (m *Module) VecZnxBigAutomorphismInplace(p int64, a VecZnxBig, aCol int, scratch Scratch) {
	if checks {
		m.checkBig("VecZnxBigAutomorphismInplace", a, aCol)
		if p&1 != 1 {
			panic(fmt.Errorf("VecZnxBigAutomorphismInplace: p=%d must be odd", p))
		}
	}
	m.bigImpl().VecZnxBigAutomorphismInplace(p, a, aCol, scratch)
}

// VecZnxBigAddNormal adds to the given column of res a discrete Gaussian
// error of standard deviation sigma, bounded by bound, at precision 2^-k.
func (m *Module) VecZnxBigAddNormal(basek int, res VecZnxBig, resCol, k int, source *sampling.Source, sigma, bound float64) {
	if checks {
		m.checkBig("VecZnxBigAddNormal", res, resCol)
		assertBasek("VecZnxBigAddNormal", basek)
		if !(k > 0 && utils.DivCeil(k, basek) <= res.Size) {
			panic(fmt.Errorf("VecZnxBigAddNormal: k=%d exceeds the precision of size %d", k, res.Size))
		}
	}
	m.bigImpl().VecZnxBigAddNormal(basek, res, resCol, k, source, sigma, bound)
}
