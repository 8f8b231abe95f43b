package ntt120

import (
	"github.com/Pro7ech/hal/hal"
	"github.com/Pro7ech/hal/utils/sampling"
	"github.com/Pro7ech/hal/znx"
)

func (b *Backend) VecZnxBigAdd(res hal.VecZnxBig, resCol int, a hal.VecZnxBig, aCol int, c hal.VecZnxBig, cCol int) {
	hal.LimbsBinary(res.Size, a.Size, c.Size,
		func(j int) { znx.I128Add(res.At(resCol, j), a.At(aCol, j), c.At(cCol, j)) },
		func(j int) { copy(res.At(resCol, j), a.At(aCol, j)) },
		func(j int) { copy(res.At(resCol, j), c.At(cCol, j)) },
		func(j int) { clear(res.At(resCol, j)) })
}

func (b *Backend) VecZnxBigAddInplace(res hal.VecZnxBig, resCol int, a hal.VecZnxBig, aCol int) {
	for j := range min(res.Size, a.Size) {
		x := res.At(resCol, j)
		znx.I128Add(x, x, a.At(aCol, j))
	}
}

func (b *Backend) VecZnxBigAddSmall(res hal.VecZnxBig, resCol int, a hal.VecZnxBig, aCol int, c hal.VecZnx, cCol int) {
	hal.LimbsBinary(res.Size, a.Size, c.Size,
		func(j int) { znx.I128AddSmall(res.At(resCol, j), a.At(aCol, j), c.At(cCol, j)) },
		func(j int) { copy(res.At(resCol, j), a.At(aCol, j)) },
		func(j int) { znx.I128FromI64(res.At(resCol, j), c.At(cCol, j)) },
		func(j int) { clear(res.At(resCol, j)) })
}

func (b *Backend) VecZnxBigAddSmallInplace(res hal.VecZnxBig, resCol int, a hal.VecZnx, aCol int) {
	for j := range min(res.Size, a.Size) {
		x := res.At(resCol, j)
		znx.I128AddSmall(x, x, a.At(aCol, j))
	}
}

func (b *Backend) VecZnxBigSub(res hal.VecZnxBig, resCol int, a hal.VecZnxBig, aCol int, c hal.VecZnxBig, cCol int) {
	hal.LimbsBinary(res.Size, a.Size, c.Size,
		func(j int) { znx.I128Sub(res.At(resCol, j), a.At(aCol, j), c.At(cCol, j)) },
		func(j int) { copy(res.At(resCol, j), a.At(aCol, j)) },
		func(j int) { znx.I128Negate(res.At(resCol, j), c.At(cCol, j)) },
		func(j int) { clear(res.At(resCol, j)) })
}

func (b *Backend) VecZnxBigSubABInplace(res hal.VecZnxBig, resCol int, a hal.VecZnxBig, aCol int) {
	for j := range min(res.Size, a.Size) {
		x := res.At(resCol, j)
		znx.I128Sub(x, x, a.At(aCol, j))
	}
}

func (b *Backend) VecZnxBigSubBAInplace(res hal.VecZnxBig, resCol int, a hal.VecZnxBig, aCol int) {
	for j := range res.Size {
		x := res.At(resCol, j)
		if j < a.Size {
			znx.I128Sub(x, a.At(aCol, j), x)
		} else {
			znx.I128Negate(x, x)
		}
	}
}

func (b *Backend) VecZnxBigSubSmallA(res hal.VecZnxBig, resCol int, a hal.VecZnx, aCol int, c hal.VecZnxBig, cCol int) {
	hal.LimbsBinary(res.Size, a.Size, c.Size,
		func(j int) { znx.I128SubSmallA(res.At(resCol, j), a.At(aCol, j), c.At(cCol, j)) },
		func(j int) { znx.I128FromI64(res.At(resCol, j), a.At(aCol, j)) },
		func(j int) { znx.I128Negate(res.At(resCol, j), c.At(cCol, j)) },
		func(j int) { clear(res.At(resCol, j)) })
}

func (b *Backend) VecZnxBigSubSmallB(res hal.VecZnxBig, resCol int, a hal.VecZnxBig, aCol int, c hal.VecZnx, cCol int) {
	hal.LimbsBinary(res.Size, a.Size, c.Size,
		func(j int) { znx.I128SubSmallB(res.At(resCol, j), a.At(aCol, j), c.At(cCol, j)) },
		func(j int) { copy(res.At(resCol, j), a.At(aCol, j)) },
		func(j int) {
			x := res.At(resCol, j)
			znx.I128FromI64(x, c.At(cCol, j))
			znx.I128Negate(x, x)
		},
		func(j int) { clear(res.At(resCol, j)) })
}

func (b *Backend) VecZnxBigSubSmallABInplace(res hal.VecZnxBig, resCol int, a hal.VecZnx, aCol int) {
	for j := range min(res.Size, a.Size) {
		x := res.At(resCol, j)
		znx.I128SubSmallB(x, x, a.At(aCol, j))
	}
}

func (b *Backend) VecZnxBigSubSmallBAInplace(res hal.VecZnxBig, resCol int, a hal.VecZnx, aCol int) {
	for j := range res.Size {
		x := res.At(resCol, j)
		if j < a.Size {
			znx.I128SubSmallA(x, a.At(aCol, j), x)
		} else {
			znx.I128Negate(x, x)
		}
	}
}

func (b *Backend) VecZnxBigNegate(res hal.VecZnxBig, resCol int, a hal.VecZnxBig, aCol int) {
	hal.LimbsUnary(res.Size, a.Size,
		func(j int) { znx.I128Negate(res.At(resCol, j), a.At(aCol, j)) },
		func(j int) { clear(res.At(resCol, j)) })
}

func (b *Backend) VecZnxBigNegateInplace(a hal.VecZnxBig, aCol int) {
	for j := range a.Size {
		x := a.At(aCol, j)
		znx.I128Negate(x, x)
	}
}

func (b *Backend) VecZnxBigFromSmall(res hal.VecZnxBig, resCol int, a hal.VecZnx, aCol int) {
	hal.LimbsUnary(res.Size, a.Size,
		func(j int) { znx.I128FromI64(res.At(resCol, j), a.At(aCol, j)) },
		func(j int) { clear(res.At(resCol, j)) })
}

func (b *Backend) VecZnxBigNormalizeTmpBytes() int {
	return 2 * b.N() * 8
}

// VecZnxBigNormalize propagates the i128 carries from the least significant
// limb of a and writes the balanced digits on res.
func (b *Backend) VecZnxBigNormalize(basek int, res hal.VecZnx, resCol int, a hal.VecZnxBig, aCol int, scratch hal.Scratch) {
	carry, _ := scratch.TakeUint64(2 * b.N())
	for j := a.Size - 1; j >= 0; j-- {
		x := a.At(aCol, j)
		first := j == a.Size-1
		switch {
		case j >= res.Size:
			if first {
				znx.I128NormalizeBegCarryOnly(basek, carry, x)
			} else {
				znx.I128NormalizeMidCarryOnly(basek, carry, x)
			}
		case first:
			znx.I128NormalizeBeg(basek, res.At(resCol, j), carry, x)
		case j == 0:
			znx.I128NormalizeEnd(basek, res.At(resCol, j), carry, x)
		default:
			znx.I128NormalizeMid(basek, res.At(resCol, j), carry, x)
		}
	}
	for j := a.Size; j < res.Size; j++ {
		clear(res.At(resCol, j))
	}
}

func (b *Backend) VecZnxBigRotate(p int64, res hal.VecZnxBig, resCol int, a hal.VecZnxBig, aCol int) {
	hal.LimbsUnary(res.Size, a.Size,
		func(j int) { znx.I128Rotate(p, res.At(resCol, j), a.At(aCol, j)) },
		func(j int) { clear(res.At(resCol, j)) })
}

func (b *Backend) VecZnxBigRotateInplace(p int64, a hal.VecZnxBig, aCol int) {
	for j := range a.Size {
		znx.I128RotateInplace(p, a.At(aCol, j))
	}
}

func (b *Backend) VecZnxBigAutomorphism(p int64, res hal.VecZnxBig, resCol int, a hal.VecZnxBig, aCol int) {
	hal.LimbsUnary(res.Size, a.Size,
		func(j int) { znx.I128Automorphism(p, res.At(resCol, j), a.At(aCol, j)) },
		func(j int) { clear(res.At(resCol, j)) })
}

func (b *Backend) VecZnxBigAutomorphismInplaceTmpBytes() int {
	return 2 * b.N() * 8
}

func (b *Backend) VecZnxBigAutomorphismInplace(p int64, a hal.VecZnxBig, aCol int, scratch hal.Scratch) {
	tmp, _ := scratch.TakeUint64(2 * b.N())
	for j := range a.Size {
		x := a.At(aCol, j)
		copy(tmp, x)
		znx.I128Automorphism(p, x, tmp)
	}
}

func (b *Backend) VecZnxBigAddNormal(basek int, res hal.VecZnxBig, resCol, k int, source *sampling.Source, sigma, bound float64) {
	limb, shift := hal.NormalLimb(basek, k, bound)
	x := znx.I128Pairs(res.At(resCol, limb))
	for i := range x {
		x[i] = znx.I128AddI64(x[i], hal.SampleNormal(source, sigma, bound)<<shift)
	}
}
