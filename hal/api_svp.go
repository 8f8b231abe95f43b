package hal

import (
	"github.com/Pro7ech/hal/utils"
)

// SvpPPolAllocBytes returns the size in bytes of a [SvpPPol].
func (m *Module) SvpPPolAllocBytes(cols int) int {
	return m.n * cols * m.backend.SvpWords() * 8
}

// NewSvpPPol allocates a zeroed [SvpPPol].
func (m *Module) NewSvpPPol(cols int) SvpPPol {
	return m.SvpPPolFromBytes(cols, utils.AlignedBytes(m.SvpPPolAllocBytes(cols)))
}

// SvpPPolFromBytes wraps buf as a [SvpPPol].
// It panics if len(buf) does not match [Module.SvpPPolAllocBytes].
func (m *Module) SvpPPolFromBytes(cols int, buf []byte) SvpPPol {
	assertSize("SvpPPolFromBytes", len(buf), m.SvpPPolAllocBytes(cols))
	return SvpPPol{Backend: m.Name(), N: m.n, Cols: cols, Words: m.backend.SvpWords(), Data: buf}
}

func (m *Module) checkSvp(name string, p SvpPPol, col int) {
	assertBackend(name, p.Backend, m.Name())
	assertDegree(name, p.N, m.n)
	assertCol(name, col, p.Cols)
}

// SvpPrepare writes on res the prepared form of a.
func (m *Module) SvpPrepare(res SvpPPol, resCol int, a ScalarZnx, aCol int) {
	if checks {
		m.checkSvp("SvpPrepare", res, resCol)
		assertDegree("SvpPrepare", a.N, m.n)
		assertCol("SvpPrepare", aCol, a.Cols)
	}
	m.svpImpl().SvpPrepare(res, resCol, a, aCol)
}

// SvpApply evaluates res = a * b, limb by limb.
func (m *Module) SvpApply(res VecZnxDft, resCol int, a SvpPPol, aCol int, b VecZnxDft, bCol int) {
	if checks {
		m.checkDft("SvpApply", res, resCol)
		m.checkSvp("SvpApply", a, aCol)
		m.checkDft("SvpApply", b, bCol)
	}
	m.svpImpl().SvpApply(res, resCol, a, aCol, b, bCol)
}

// SvpApplyInplace evaluates res = a * res, limb by limb.
func (m *Module) SvpApplyInplace(res VecZnxDft, resCol int, a SvpPPol, aCol int) {
	if checks {
		m.checkDft("SvpApplyInplace", res, resCol)
		m.checkSvp("SvpApplyInplace", a, aCol)
	}
	m.svpImpl().SvpApplyInplace(res, resCol, a, aCol)
}
