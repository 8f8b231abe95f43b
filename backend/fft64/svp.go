package fft64

import (
	"github.com/Pro7ech/hal/hal"
	"github.com/Pro7ech/hal/utils"
)

func svpAt(p hal.SvpPPol, col int) []float64 {
	return utils.Cast[float64](utils.Bytes(p.At(col)))
}

func (b *Backend) SvpPrepare(res hal.SvpPPol, resCol int, a hal.ScalarZnx, aCol int) {
	b.fft.FromZnx(b.table, svpAt(res, resCol), a.At(aCol))
}

func (b *Backend) SvpApply(res hal.VecZnxDft, resCol int, a hal.SvpPPol, aCol int, c hal.VecZnxDft, cCol int) {
	s := svpAt(a, aCol)
	hal.LimbsUnary(res.Size, c.Size,
		func(j int) { b.fft.Mul(res.AtF64(resCol, j), s, c.AtF64(cCol, j)) },
		func(j int) { clear(res.AtF64(resCol, j)) })
}

func (b *Backend) SvpApplyInplace(res hal.VecZnxDft, resCol int, a hal.SvpPPol, aCol int) {
	s := svpAt(a, aCol)
	for j := range res.Size {
		x := res.AtF64(resCol, j)
		b.fft.Mul(x, s, x)
	}
}
