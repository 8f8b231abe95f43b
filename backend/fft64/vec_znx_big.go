package fft64

import (
	"github.com/Pro7ech/hal/hal"
	"github.com/Pro7ech/hal/utils/sampling"
)

// The i64 accumulator has the layout of a VecZnx, so the VecZnxBig family
// evaluates the VecZnx operations on views.

func (b *Backend) VecZnxBigAdd(res hal.VecZnxBig, resCol int, a hal.VecZnxBig, aCol int, c hal.VecZnxBig, cCol int) {
	b.znx.Add(res.AsVecZnx(), resCol, a.AsVecZnx(), aCol, c.AsVecZnx(), cCol)
}

func (b *Backend) VecZnxBigAddInplace(res hal.VecZnxBig, resCol int, a hal.VecZnxBig, aCol int) {
	b.znx.AddInplace(res.AsVecZnx(), resCol, a.AsVecZnx(), aCol)
}

func (b *Backend) VecZnxBigAddSmall(res hal.VecZnxBig, resCol int, a hal.VecZnxBig, aCol int, c hal.VecZnx, cCol int) {
	b.znx.Add(res.AsVecZnx(), resCol, a.AsVecZnx(), aCol, c, cCol)
}

func (b *Backend) VecZnxBigAddSmallInplace(res hal.VecZnxBig, resCol int, a hal.VecZnx, aCol int) {
	b.znx.AddInplace(res.AsVecZnx(), resCol, a, aCol)
}

func (b *Backend) VecZnxBigSub(res hal.VecZnxBig, resCol int, a hal.VecZnxBig, aCol int, c hal.VecZnxBig, cCol int) {
	b.znx.Sub(res.AsVecZnx(), resCol, a.AsVecZnx(), aCol, c.AsVecZnx(), cCol)
}

func (b *Backend) VecZnxBigSubABInplace(res hal.VecZnxBig, resCol int, a hal.VecZnxBig, aCol int) {
	b.znx.SubABInplace(res.AsVecZnx(), resCol, a.AsVecZnx(), aCol)
}

func (b *Backend) VecZnxBigSubBAInplace(res hal.VecZnxBig, resCol int, a hal.VecZnxBig, aCol int) {
	b.znx.SubBAInplace(res.AsVecZnx(), resCol, a.AsVecZnx(), aCol)
}

func (b *Backend) VecZnxBigSubSmallA(res hal.VecZnxBig, resCol int, a hal.VecZnx, aCol int, c hal.VecZnxBig, cCol int) {
	b.znx.Sub(res.AsVecZnx(), resCol, a, aCol, c.AsVecZnx(), cCol)
}

func (b *Backend) VecZnxBigSubSmallB(res hal.VecZnxBig, resCol int, a hal.VecZnxBig, aCol int, c hal.VecZnx, cCol int) {
	b.znx.Sub(res.AsVecZnx(), resCol, a.AsVecZnx(), aCol, c, cCol)
}

func (b *Backend) VecZnxBigSubSmallABInplace(res hal.VecZnxBig, resCol int, a hal.VecZnx, aCol int) {
	b.znx.SubABInplace(res.AsVecZnx(), resCol, a, aCol)
}

func (b *Backend) VecZnxBigSubSmallBAInplace(res hal.VecZnxBig, resCol int, a hal.VecZnx, aCol int) {
	b.znx.SubBAInplace(res.AsVecZnx(), resCol, a, aCol)
}

func (b *Backend) VecZnxBigNegate(res hal.VecZnxBig, resCol int, a hal.VecZnxBig, aCol int) {
	b.znx.Negate(res.AsVecZnx(), resCol, a.AsVecZnx(), aCol)
}

func (b *Backend) VecZnxBigNegateInplace(a hal.VecZnxBig, aCol int) {
	b.znx.NegateInplace(a.AsVecZnx(), aCol)
}

func (b *Backend) VecZnxBigFromSmall(res hal.VecZnxBig, resCol int, a hal.VecZnx, aCol int) {
	b.znx.Copy(res.AsVecZnx(), resCol, a, aCol)
}

func (b *Backend) VecZnxBigNormalizeTmpBytes() int {
	return b.N() * 8
}

func (b *Backend) VecZnxBigNormalize(basek int, res hal.VecZnx, resCol int, a hal.VecZnxBig, aCol int, scratch hal.Scratch) {
	b.znx.Normalize(basek, res, resCol, a.AsVecZnx(), aCol, scratch)
}

func (b *Backend) VecZnxBigRotate(p int64, res hal.VecZnxBig, resCol int, a hal.VecZnxBig, aCol int) {
	b.znx.Rotate(p, res.AsVecZnx(), resCol, a.AsVecZnx(), aCol)
}

func (b *Backend) VecZnxBigRotateInplace(p int64, a hal.VecZnxBig, aCol int) {
	b.znx.RotateInplace(p, a.AsVecZnx(), aCol)
}

func (b *Backend) VecZnxBigAutomorphism(p int64, res hal.VecZnxBig, resCol int, a hal.VecZnxBig, aCol int) {
	b.znx.Automorphism(p, res.AsVecZnx(), resCol, a.AsVecZnx(), aCol)
}

func (b *Backend) VecZnxBigAutomorphismInplaceTmpBytes() int {
	return b.N() * 8
}

func (b *Backend) VecZnxBigAutomorphismInplace(p int64, a hal.VecZnxBig, aCol int, scratch hal.Scratch) {
	b.znx.AutomorphismInplace(p, a.AsVecZnx(), aCol, scratch)
}

func (b *Backend) VecZnxBigAddNormal(basek int, res hal.VecZnxBig, resCol, k int, source *sampling.Source, sigma, bound float64) {
	hal.AddNormal(basek, res.AsVecZnx(), resCol, k, source, sigma, bound)
}
