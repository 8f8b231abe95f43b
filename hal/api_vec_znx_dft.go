package hal

import (
	"fmt"

	"github.com/Pro7ech/hal/utils"
)

// VecZnxDftAllocBytes returns the size in bytes of a [VecZnxDft].
func (m *Module) VecZnxDftAllocBytes(cols, size int) int {
	return m.n * cols * size * m.backend.DftWords() * 8
}

// NewVecZnxDft allocates a zeroed [VecZnxDft].
func (m *Module) NewVecZnxDft(cols, size int) VecZnxDft {
	return m.VecZnxDftFromBytes(cols, size, utils.AlignedBytes(m.VecZnxDftAllocBytes(cols, size)))
}

// VecZnxDftFromBytes wraps buf as a [VecZnxDft].
// It panics if len(buf) does not match [Module.VecZnxDftAllocBytes].
func (m *Module) VecZnxDftFromBytes(cols, size int, buf []byte) VecZnxDft {
	assertSize("VecZnxDftFromBytes", len(buf), m.VecZnxDftAllocBytes(cols, size))
	return VecZnxDft{Backend: m.Name(), N: m.n, Cols: cols, Size: size, Words: m.backend.DftWords(), Data: buf}
}

func (m *Module) checkDft(name string, v VecZnxDft, col int) {
	assertBackend(name, v.Backend, m.Name())
	assertDegree(name, v.N, m.n)
	assertCol(name, col, v.Cols)
}

// VecZnxDftApply writes on the limb j of res the transform of the limb
// offset + j*step of a, or zero if that limb does not exist.
func (m *Module) VecZnxDftApply(step, offset int, res VecZnxDft, resCol int, a VecZnx, aCol int) {
	if checks {
		m.checkDft("VecZnxDftApply", res, resCol)
		m.checkVecZnx("VecZnxDftApply", a, aCol)
		if !(step > 0 && offset >= 0) {
			panic(fmt.Errorf("VecZnxDftApply: invalid step=%d offset=%d", step, offset))
		}
	}
	m.dftImpl().VecZnxDftApply(step, offset, res, resCol, a, aCol)
}

// VecZnxIdftApplyTmpBytes returns the scratch size of [Module.VecZnxIdftApply].
func (m *Module) VecZnxIdftApplyTmpBytes() int {
	return m.dftImpl().VecZnxIdftApplyTmpBytes()
}

// VecZnxIdftApply writes on res the inverse transform of a.
func (m *Module) VecZnxIdftApply(res VecZnxBig, resCol int, a VecZnxDft, aCol int, scratch Scratch) {
	if checks {
		m.checkBig("VecZnxIdftApply", res, resCol)
		m.checkDft("VecZnxIdftApply", a, aCol)
	}
	m.dftImpl().VecZnxIdftApply(res, resCol, a, aCol, scratch)
}

// VecZnxIdftApplyTmpA writes on res the inverse transform of a, using the
// memory of a as temporary: a is left in an unspecified state.
func (m *Module) VecZnxIdftApplyTmpA(res VecZnxBig, resCol int, a VecZnxDft, aCol int) {
	if checks {
		m.checkBig("VecZnxIdftApplyTmpA", res, resCol)
		m.checkDft("VecZnxIdftApplyTmpA", a, aCol)
	}
	m.dftImpl().VecZnxIdftApplyTmpA(res, resCol, a, aCol)
}

// VecZnxIdftApplyConsume applies the inverse transform on all columns of a
// in place and returns the result as a [VecZnxBig] sharing the memory of a.
// a must not be used afterwards.
func (m *Module) VecZnxIdftApplyConsume(a VecZnxDft) VecZnxBig {
	if checks {
		assertBackend("VecZnxIdftApplyConsume", a.Backend, m.Name())
		assertDegree("VecZnxIdftApplyConsume", a.N, m.n)
	}
	return m.dftImpl().VecZnxIdftApplyConsume(a)
}

// VecZnxDftAdd evaluates res = a + b.
func (m *Module) VecZnxDftAdd(res VecZnxDft, resCol int, a VecZnxDft, aCol int, b VecZnxDft, bCol int) {
	if checks {
		m.checkDft("VecZnxDftAdd", res, resCol)
		m.checkDft("VecZnxDftAdd", a, aCol)
		m.checkDft("VecZnxDftAdd", b, bCol)
	}
	m.dftImpl().VecZnxDftAdd(res, resCol, a, aCol, b, bCol)
}

// VecZnxDftAddInplace evaluates res = res + a.
func (m *Module) VecZnxDftAddInplace(res VecZnxDft, resCol int, a VecZnxDft, aCol int) {
	if checks {
		m.checkDft("VecZnxDftAddInplace", res, resCol)
		m.checkDft("VecZnxDftAddInplace", a, aCol)
	}
	m.dftImpl().VecZnxDftAddInplace(res, resCol, a, aCol)
}

// VecZnxDftSub evaluates res = a - b.
func (m *Module) VecZnxDftSub(res VecZnxDft, resCol int, a VecZnxDft, aCol int, b VecZnxDft, bCol int) {
	if checks {
		m.checkDft("VecZnxDftSub", res, resCol)
		m.checkDft("VecZnxDftSub", a, aCol)
		m.checkDft("VecZnxDftSub", b, bCol)
	}
	m.dftImpl().VecZnxDftSub(res, resCol, a, aCol, b, bCol)
}

// VecZnxDftSubABInplace evaluates res = res - a.
func (m *Module) VecZnxDftSubABInplace(res VecZnxDft, resCol int, a VecZnxDft, aCol int) {
	if checks {
		m.checkDft("VecZnxDftSubABInplace", res, resCol)
		m.checkDft("VecZnxDftSubABInplace", a, aCol)
	}
	m.dftImpl().VecZnxDftSubABInplace(res, resCol, a, aCol)
}

// VecZnxDftSubBAInplace evaluates res = a - res.
func (m *Module) VecZnxDftSubBAInplace(res VecZnxDft, resCol int, a VecZnxDft, aCol int) {
	if checks {
		m.checkDft("VecZnxDftSubBAInplace", res, resCol)
		m.checkDft("VecZnxDftSubBAInplace", a, aCol)
	}
	m.dftImpl().VecZnxDftSubBAInplace(res, resCol, a, aCol)
}

// VecZnxDftCopy writes on the limb j of res the limb offset + j*step of a,
// or zero if that limb does not exist.
func (m *Module) VecZnxDftCopy(step, offset int, res VecZnxDft, resCol int, a VecZnxDft, aCol int) {
	if checks {
		m.checkDft("VecZnxDftCopy", res, resCol)
		m.checkDft("VecZnxDftCopy", a, aCol)
		if !(step > 0 && offset >= 0) {
			panic(fmt.Errorf("VecZnxDftCopy: invalid step=%d offset=%d", step, offset))
		}
	}
	m.dftImpl().VecZnxDftCopy(step, offset, res, resCol, a, aCol)
}

// VecZnxDftZero sets res to zero.
func (m *Module) VecZnxDftZero(res VecZnxDft) {
	if checks {
		assertBackend("VecZnxDftZero", res.Backend, m.Name())
	}
	m.dftImpl().VecZnxDftZero(res)
}
