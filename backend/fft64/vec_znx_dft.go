package fft64

import (
	"github.com/Pro7ech/hal/hal"
	"github.com/Pro7ech/hal/utils"
)

func (b *Backend) VecZnxDftApply(step, offset int, res hal.VecZnxDft, resCol int, a hal.VecZnx, aCol int) {
	for j := range res.Size {
		if src := offset + j*step; src < a.Size {
			b.fft.FromZnx(b.table, res.AtF64(resCol, j), a.At(aCol, src))
		} else {
			clear(res.AtF64(resCol, j))
		}
	}
}

func (b *Backend) VecZnxIdftApplyTmpBytes() int {
	return b.N() * 8
}

func (b *Backend) VecZnxIdftApply(res hal.VecZnxBig, resCol int, a hal.VecZnxDft, aCol int, scratch hal.Scratch) {
	tmp, _ := scratch.TakeFloat64(b.N())
	hal.LimbsUnary(res.Size, a.Size,
		func(j int) {
			copy(tmp, a.AtF64(aCol, j))
			b.fft.ToZnx(b.table, res.AtI64(resCol, j), tmp)
		},
		func(j int) { clear(res.AtI64(resCol, j)) })
}

func (b *Backend) VecZnxIdftApplyTmpA(res hal.VecZnxBig, resCol int, a hal.VecZnxDft, aCol int) {
	hal.LimbsUnary(res.Size, a.Size,
		func(j int) { b.fft.ToZnx(b.table, res.AtI64(resCol, j), a.AtF64(aCol, j)) },
		func(j int) { clear(res.AtI64(resCol, j)) })
}

// VecZnxIdftApplyConsume overwrites each limb of a with its inverse transform:
// slot j only depends on the words j and j+N/2 of the limb.
func (b *Backend) VecZnxIdftApplyConsume(a hal.VecZnxDft) hal.VecZnxBig {
	for col := range a.Cols {
		for j := range a.Size {
			x := a.AtF64(col, j)
			b.fft.ToZnx(b.table, utils.Cast[int64](utils.Bytes(x)), x)
		}
	}
	return hal.VecZnxBig{Backend: Name, N: a.N, Cols: a.Cols, Size: a.Size, Words: 1, Data: a.Data}
}

func (b *Backend) VecZnxDftAdd(res hal.VecZnxDft, resCol int, a hal.VecZnxDft, aCol int, c hal.VecZnxDft, cCol int) {
	hal.LimbsBinary(res.Size, a.Size, c.Size,
		func(j int) { b.fft.Add(res.AtF64(resCol, j), a.AtF64(aCol, j), c.AtF64(cCol, j)) },
		func(j int) { copy(res.AtF64(resCol, j), a.AtF64(aCol, j)) },
		func(j int) { copy(res.AtF64(resCol, j), c.AtF64(cCol, j)) },
		func(j int) { clear(res.AtF64(resCol, j)) })
}

func (b *Backend) VecZnxDftAddInplace(res hal.VecZnxDft, resCol int, a hal.VecZnxDft, aCol int) {
	for j := range min(res.Size, a.Size) {
		b.fft.AddInplace(res.AtF64(resCol, j), a.AtF64(aCol, j))
	}
}

func (b *Backend) VecZnxDftSub(res hal.VecZnxDft, resCol int, a hal.VecZnxDft, aCol int, c hal.VecZnxDft, cCol int) {
	hal.LimbsBinary(res.Size, a.Size, c.Size,
		func(j int) { b.fft.Sub(res.AtF64(resCol, j), a.AtF64(aCol, j), c.AtF64(cCol, j)) },
		func(j int) { copy(res.AtF64(resCol, j), a.AtF64(aCol, j)) },
		func(j int) { b.fft.Negate(res.AtF64(resCol, j), c.AtF64(cCol, j)) },
		func(j int) { clear(res.AtF64(resCol, j)) })
}

func (b *Backend) VecZnxDftSubABInplace(res hal.VecZnxDft, resCol int, a hal.VecZnxDft, aCol int) {
	for j := range min(res.Size, a.Size) {
		b.fft.SubABInplace(res.AtF64(resCol, j), a.AtF64(aCol, j))
	}
}

func (b *Backend) VecZnxDftSubBAInplace(res hal.VecZnxDft, resCol int, a hal.VecZnxDft, aCol int) {
	for j := range res.Size {
		if j < a.Size {
			b.fft.SubBAInplace(res.AtF64(resCol, j), a.AtF64(aCol, j))
		} else {
			x := res.AtF64(resCol, j)
			b.fft.Negate(x, x)
		}
	}
}

func (b *Backend) VecZnxDftCopy(step, offset int, res hal.VecZnxDft, resCol int, a hal.VecZnxDft, aCol int) {
	for j := range res.Size {
		if src := offset + j*step; src < a.Size {
			copy(res.AtF64(resCol, j), a.AtF64(aCol, src))
		} else {
			clear(res.AtF64(resCol, j))
		}
	}
}

func (b *Backend) VecZnxDftZero(res hal.VecZnxDft) {
	res.Zero()
}
