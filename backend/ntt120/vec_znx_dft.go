package ntt120

import (
	"github.com/Pro7ech/hal/hal"
	"github.com/Pro7ech/hal/q120"
	"github.com/Pro7ech/hal/utils"
)

func (b *Backend) VecZnxDftApply(step, offset int, res hal.VecZnxDft, resCol int, a hal.VecZnx, aCol int) {
	for j := range res.Size {
		if src := offset + j*step; src < a.Size {
			b.ntt.FromZnx(b.table, res.At(resCol, j), a.At(aCol, src))
		} else {
			clear(res.At(resCol, j))
		}
	}
}

func (b *Backend) VecZnxIdftApplyTmpBytes() int {
	return 4 * b.N() * 8
}

func (b *Backend) VecZnxIdftApply(res hal.VecZnxBig, resCol int, a hal.VecZnxDft, aCol int, scratch hal.Scratch) {
	tmp, _ := scratch.TakeUint64(4 * b.N())
	hal.LimbsUnary(res.Size, a.Size,
		func(j int) {
			copy(tmp, a.At(aCol, j))
			b.ntt.INTT(b.table, tmp)
			q120.ToI128(b.table, res.At(resCol, j), tmp)
		},
		func(j int) { clear(res.At(resCol, j)) })
}

func (b *Backend) VecZnxIdftApplyTmpA(res hal.VecZnxBig, resCol int, a hal.VecZnxDft, aCol int) {
	hal.LimbsUnary(res.Size, a.Size,
		func(j int) {
			x := a.At(aCol, j)
			b.ntt.INTT(b.table, x)
			q120.ToI128(b.table, res.At(resCol, j), x)
		},
		func(j int) { clear(res.At(resCol, j)) })
}

// VecZnxIdftApplyConsume compacts the limbs of a in ascending order: the i128
// limb idx is written on the words [2N*idx, 2N*(idx+1)), which are either
// already consumed or read before being written.
func (b *Backend) VecZnxIdftApplyConsume(a hal.VecZnxDft) hal.VecZnxBig {
	n := b.N()
	words := utils.Cast[uint64](a.Data)
	for col := range a.Cols {
		for j := range a.Size {
			idx := col*a.Size + j
			x := a.At(col, j)
			b.ntt.INTT(b.table, x)
			q120.ToI128(b.table, words[2*n*idx:2*n*(idx+1)], x)
		}
	}
	return hal.VecZnxBig{Backend: Name, N: a.N, Cols: a.Cols, Size: a.Size, Words: 2, Data: a.Data[:len(a.Data)/2]}
}

func (b *Backend) VecZnxDftAdd(res hal.VecZnxDft, resCol int, a hal.VecZnxDft, aCol int, c hal.VecZnxDft, cCol int) {
	hal.LimbsBinary(res.Size, a.Size, c.Size,
		func(j int) { b.ntt.Add(res.At(resCol, j), a.At(aCol, j), c.At(cCol, j)) },
		func(j int) { copy(res.At(resCol, j), a.At(aCol, j)) },
		func(j int) { copy(res.At(resCol, j), c.At(cCol, j)) },
		func(j int) { clear(res.At(resCol, j)) })
}

func (b *Backend) VecZnxDftAddInplace(res hal.VecZnxDft, resCol int, a hal.VecZnxDft, aCol int) {
	for j := range min(res.Size, a.Size) {
		b.ntt.AddInplace(res.At(resCol, j), a.At(aCol, j))
	}
}

func (b *Backend) VecZnxDftSub(res hal.VecZnxDft, resCol int, a hal.VecZnxDft, aCol int, c hal.VecZnxDft, cCol int) {
	hal.LimbsBinary(res.Size, a.Size, c.Size,
		func(j int) { b.ntt.Sub(res.At(resCol, j), a.At(aCol, j), c.At(cCol, j)) },
		func(j int) { copy(res.At(resCol, j), a.At(aCol, j)) },
		func(j int) { b.ntt.Negate(res.At(resCol, j), c.At(cCol, j)) },
		func(j int) { clear(res.At(resCol, j)) })
}

func (b *Backend) VecZnxDftSubABInplace(res hal.VecZnxDft, resCol int, a hal.VecZnxDft, aCol int) {
	for j := range min(res.Size, a.Size) {
		b.ntt.SubABInplace(res.At(resCol, j), a.At(aCol, j))
	}
}

func (b *Backend) VecZnxDftSubBAInplace(res hal.VecZnxDft, resCol int, a hal.VecZnxDft, aCol int) {
	for j := range res.Size {
		x := res.At(resCol, j)
		if j < a.Size {
			b.ntt.SubBAInplace(x, a.At(aCol, j))
		} else {
			b.ntt.Negate(x, x)
		}
	}
}

func (b *Backend) VecZnxDftCopy(step, offset int, res hal.VecZnxDft, resCol int, a hal.VecZnxDft, aCol int) {
	for j := range res.Size {
		if src := offset + j*step; src < a.Size {
			copy(res.At(resCol, j), a.At(aCol, src))
		} else {
			clear(res.At(resCol, j))
		}
	}
}

func (b *Backend) VecZnxDftZero(res hal.VecZnxDft) {
	res.Zero()
}
