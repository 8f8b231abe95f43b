package hal

import (
	"fmt"

	"github.com/Pro7ech/hal/utils"
)

// VmpPMatAllocBytes returns the size in bytes of a [VmpPMat].
func (m *Module) VmpPMatAllocBytes(rows, colsIn, colsOut, size int) int {
	return m.n * rows * colsIn * colsOut * size * m.backend.VmpWords() * 8
}

// NewVmpPMat allocates a zeroed [VmpPMat].
func (m *Module) NewVmpPMat(rows, colsIn, colsOut, size int) VmpPMat {
	return m.VmpPMatFromBytes(rows, colsIn, colsOut, size, utils.AlignedBytes(m.VmpPMatAllocBytes(rows, colsIn, colsOut, size)))
}

// VmpPMatFromBytes wraps buf as a [VmpPMat].
// It panics if len(buf) does not match [Module.VmpPMatAllocBytes].
func (m *Module) VmpPMatFromBytes(rows, colsIn, colsOut, size int, buf []byte) VmpPMat {
	assertSize("VmpPMatFromBytes", len(buf), m.VmpPMatAllocBytes(rows, colsIn, colsOut, size))
	return VmpPMat{
		Backend: m.Name(),
		N:       m.n,
		Rows:    rows,
		ColsIn:  colsIn,
		ColsOut: colsOut,
		Size:    size,
		Words:   m.backend.VmpWords(),
		Data:    buf,
	}
}

// VmpPrepareTmpBytes returns the scratch size of [Module.VmpPrepare].
func (m *Module) VmpPrepareTmpBytes(rows, colsIn, colsOut, size int) int {
	return m.vmpImpl().VmpPrepareTmpBytes(rows, colsIn, colsOut, size)
}

// VmpPrepare writes on res the prepared form of a.
func (m *Module) VmpPrepare(res VmpPMat, a MatZnx, scratch Scratch) {
	if checks {
		assertBackend("VmpPrepare", res.Backend, m.Name())
		assertDegree("VmpPrepare", res.N, m.n)
		assertDegree("VmpPrepare", a.N, m.n)
		if !(res.Rows == a.Rows && res.ColsIn == a.ColsIn && res.ColsOut == a.ColsOut && res.Size == a.Size) {
			panic(fmt.Errorf("VmpPrepare: shape mismatch between VmpPMat [%d %d %d %d] and MatZnx [%d %d %d %d]", res.Rows, res.ColsIn, res.ColsOut, res.Size, a.Rows, a.ColsIn, a.ColsOut, a.Size))
		}
	}
	m.vmpImpl().VmpPrepare(res, a, scratch)
}

// VmpApplyTmpBytes returns the scratch size of [Module.VmpApplyDftToDft]
// and [Module.VmpApplyDftToDftAdd].
func (m *Module) VmpApplyTmpBytes(resSize, aSize, rows, colsIn, colsOut, size int) int {
	return m.vmpImpl().VmpApplyTmpBytes(resSize, aSize, rows, colsIn, colsOut, size)
}

func (m *Module) checkVmpApply(name string, res VecZnxDft, a VecZnxDft, b VmpPMat) {
	assertBackend(name, res.Backend, m.Name())
	assertBackend(name, a.Backend, m.Name())
	assertBackend(name, b.Backend, m.Name())
	assertDegree(name, res.N, m.n)
	assertDegree(name, a.N, m.n)
	assertDegree(name, b.N, m.n)
	if a.Cols != b.ColsIn {
		panic(fmt.Errorf("%s: input has %d columns but the matrix expects %d", name, a.Cols, b.ColsIn))
	}
	if res.Cols != b.ColsOut {
		panic(fmt.Errorf("%s: result has %d columns but the matrix produces %d", name, res.Cols, b.ColsOut))
	}
	assertNoOverlap(name, res.Data, a.Data)
}

// VmpApplyDftToDft evaluates, for each output column co and limb j,
// res[co][j] = sum_{r, ci} a[ci][r] * b[r][ci][co][j],
// where the rows r range over min(b.Rows, a.Size). Limbs of res beyond b.Size
// are zeroed.
func (m *Module) VmpApplyDftToDft(res VecZnxDft, a VecZnxDft, b VmpPMat, scratch Scratch) {
	if checks {
		m.checkVmpApply("VmpApplyDftToDft", res, a, b)
	}
	m.vmpImpl().VmpApplyDftToDft(res, a, b, scratch)
}

// VmpApplyDftToDftAdd adds the product of [Module.VmpApplyDftToDft] to res,
// with the limb j of the product accumulated on the limb j + limbOffset of res.
// Product limbs falling outside of res are discarded.
func (m *Module) VmpApplyDftToDftAdd(res VecZnxDft, a VecZnxDft, b VmpPMat, limbOffset int, scratch Scratch) {
	if checks {
		m.checkVmpApply("VmpApplyDftToDftAdd", res, a, b)
		if limbOffset < 0 {
			panic(fmt.Errorf("VmpApplyDftToDftAdd: invalid limb offset %d", limbOffset))
		}
	}
	m.vmpImpl().VmpApplyDftToDftAdd(res, a, b, limbOffset, scratch)
}
