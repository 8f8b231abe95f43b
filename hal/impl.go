package hal

import (
	"github.com/Pro7ech/hal/utils/sampling"
)

// VecZnxBigImpl is implemented by backends supporting [VecZnxBig] arithmetic.
// The arguments are checked by the [Module] methods before dispatch.
type VecZnxBigImpl interface {
	VecZnxBigAdd(res VecZnxBig, resCol int, a VecZnxBig, aCol int, b VecZnxBig, bCol int)
	VecZnxBigAddInplace(res VecZnxBig, resCol int, a VecZnxBig, aCol int)
	VecZnxBigAddSmall(res VecZnxBig, resCol int, a VecZnxBig, aCol int, b VecZnx, bCol int)
	VecZnxBigAddSmallInplace(res VecZnxBig, resCol int, a VecZnx, aCol int)
	VecZnxBigSub(res VecZnxBig, resCol int, a VecZnxBig, aCol int, b VecZnxBig, bCol int)
	VecZnxBigSubABInplace(res VecZnxBig, resCol int, a VecZnxBig, aCol int)
	VecZnxBigSubBAInplace(res VecZnxBig, resCol int, a VecZnxBig, aCol int)
	VecZnxBigSubSmallA(res VecZnxBig, resCol int, a VecZnx, aCol int, b VecZnxBig, bCol int)
	VecZnxBigSubSmallB(res VecZnxBig, resCol int, a VecZnxBig, aCol int, b VecZnx, bCol int)
	VecZnxBigSubSmallABInplace(res VecZnxBig, resCol int, a VecZnx, aCol int)
	VecZnxBigSubSmallBAInplace(res VecZnxBig, resCol int, a VecZnx, aCol int)
	VecZnxBigNegate(res VecZnxBig, resCol int, a VecZnxBig, aCol int)
	VecZnxBigNegateInplace(a VecZnxBig, aCol int)
	VecZnxBigFromSmall(res VecZnxBig, resCol int, a VecZnx, aCol int)
	VecZnxBigNormalizeTmpBytes() int
	VecZnxBigNormalize(basek int, res VecZnx, resCol int, a VecZnxBig, aCol int, scratch Scratch)
	VecZnxBigRotate(p int64, res VecZnxBig, resCol int, a VecZnxBig, aCol int)
	VecZnxBigRotateInplace(p int64, a VecZnxBig, aCol int)
	VecZnxBigAutomorphism(p int64, res VecZnxBig, resCol int, a VecZnxBig, aCol int)
	VecZnxBigAutomorphismInplaceTmpBytes() int
	VecZnxBigAutomorphismInplace(p int64, a VecZnxBig, aCol int, scratch Scratch)
	VecZnxBigAddNormal(basek int, res VecZnxBig, resCol, k int, source *sampling.Source, sigma, bound float64)
}

// VecZnxDftImpl is implemented by backends supporting the forward and
// backward transforms and [VecZnxDft] arithmetic.
type VecZnxDftImpl interface {
	VecZnxDftApply(step, offset int, res VecZnxDft, resCol int, a VecZnx, aCol int)
	VecZnxIdftApplyTmpBytes() int
	VecZnxIdftApply(res VecZnxBig, resCol int, a VecZnxDft, aCol int, scratch Scratch)
	VecZnxIdftApplyTmpA(res VecZnxBig, resCol int, a VecZnxDft, aCol int)
	VecZnxIdftApplyConsume(a VecZnxDft) VecZnxBig
	VecZnxDftAdd(res VecZnxDft, resCol int, a VecZnxDft, aCol int, b VecZnxDft, bCol int)
	VecZnxDftAddInplace(res VecZnxDft, resCol int, a VecZnxDft, aCol int)
	VecZnxDftSub(res VecZnxDft, resCol int, a VecZnxDft, aCol int, b VecZnxDft, bCol int)
	VecZnxDftSubABInplace(res VecZnxDft, resCol int, a VecZnxDft, aCol int)
	VecZnxDftSubBAInplace(res VecZnxDft, resCol int, a VecZnxDft, aCol int)
	VecZnxDftCopy(step, offset int, res VecZnxDft, resCol int, a VecZnxDft, aCol int)
	VecZnxDftZero(res VecZnxDft)
}

// SvpImpl is implemented by backends supporting scalar-vector products.
type SvpImpl interface {
	SvpPrepare(res SvpPPol, resCol int, a ScalarZnx, aCol int)
	SvpApply(res VecZnxDft, resCol int, a SvpPPol, aCol int, b VecZnxDft, bCol int)
	SvpApplyInplace(res VecZnxDft, resCol int, a SvpPPol, aCol int)
}

// VmpImpl is implemented by backends supporting vector-matrix products.
type VmpImpl interface {
	VmpPrepareTmpBytes(rows, colsIn, colsOut, size int) int
	VmpPrepare(res VmpPMat, a MatZnx, scratch Scratch)
	VmpApplyTmpBytes(resSize, aSize, rows, colsIn, colsOut, size int) int
	VmpApplyDftToDft(res VecZnxDft, a VecZnxDft, b VmpPMat, scratch Scratch)
	VmpApplyDftToDftAdd(res VecZnxDft, a VecZnxDft, b VmpPMat, limbOffset int, scratch Scratch)
}
