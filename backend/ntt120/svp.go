package ntt120

import (
	"github.com/Pro7ech/hal/hal"
)

// SvpPrepare stores the transform of a in Montgomery form.
func (b *Backend) SvpPrepare(res hal.SvpPPol, resCol int, a hal.ScalarZnx, aCol int) {
	x := res.At(resCol)
	b.ntt.FromZnx(b.table, x, a.At(aCol))
	b.ntt.MForm(b.table, x, x)
}

func (b *Backend) SvpApply(res hal.VecZnxDft, resCol int, a hal.SvpPPol, aCol int, c hal.VecZnxDft, cCol int) {
	s := a.At(aCol)
	hal.LimbsUnary(res.Size, c.Size,
		func(j int) { b.ntt.Mul(b.table, res.At(resCol, j), c.At(cCol, j), s) },
		func(j int) { clear(res.At(resCol, j)) })
}

func (b *Backend) SvpApplyInplace(res hal.VecZnxDft, resCol int, a hal.SvpPPol, aCol int) {
	s := a.At(aCol)
	for j := range res.Size {
		x := res.At(resCol, j)
		b.ntt.Mul(b.table, x, x, s)
	}
}
