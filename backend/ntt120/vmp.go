package ntt120

import (
	"fmt"

	"github.com/Pro7ech/hal/hal"
	"github.com/Pro7ech/hal/q120"
	"github.com/Pro7ech/hal/utils"
)

// A VmpPMat is stored as [N][Rows*ColsIn][ColsOut*Size][4]uint64: for each
// coefficient, the matrix of residues whose row r*ColsIn+ci pairs with the
// limb r of the input column ci and whose column co*Size+j feeds the limb j
// of the output column co.

func (b *Backend) VmpPrepareTmpBytes(rows, colsIn, colsOut, size int) int {
	return 4 * b.N() * 8
}

func (b *Backend) VmpPrepare(res hal.VmpPMat, a hal.MatZnx, scratch hal.Scratch) {
	tmp, _ := scratch.TakeUint64(4 * b.N())
	pmat := res.Raw()
	nrows, ncols := a.Rows*a.ColsIn, a.ColsOut*a.Size
	for r := range a.Rows {
		for ci := range a.ColsIn {
			v := a.At(r, ci)
			row := r*a.ColsIn + ci
			for co := range a.ColsOut {
				for j := range a.Size {
					b.ntt.FromZnx(b.table, tmp, v.At(co, j))
					col := co*a.Size + j
					for i := range b.N() {
						copy(pmat[((i*nrows+row)*ncols+col)*4:], tmp[4*i:4*i+4])
					}
				}
			}
		}
	}
}

func (b *Backend) VmpApplyTmpBytes(resSize, aSize, rows, colsIn, colsOut, size int) int {
	in := utils.AlignUp(min(rows, aSize)*colsIn*4*8, utils.Alignment)
	return in + colsOut*size*4*8
}

func (b *Backend) VmpApplyDftToDft(res hal.VecZnxDft, a hal.VecZnxDft, pmat hal.VmpPMat, scratch hal.Scratch) {
	for co := range res.Cols {
		for j := pmat.Size; j < res.Size; j++ {
			clear(res.At(co, j))
		}
	}
	b.vmpApply(res, a, pmat, 0, false, scratch)
}

func (b *Backend) VmpApplyDftToDftAdd(res hal.VecZnxDft, a hal.VecZnxDft, pmat hal.VmpPMat, limbOffset int, scratch hal.Scratch) {
	b.vmpApply(res, a, pmat, limbOffset, true, scratch)
}

func (b *Backend) vmpApply(res hal.VecZnxDft, a hal.VecZnxDft, pmat hal.VmpPMat, limbOffset int, add bool, scratch hal.Scratch) {

	rows := min(pmat.Rows, a.Size)
	nrows, ncols := rows*pmat.ColsIn, pmat.ColsOut*pmat.Size
	stride := pmat.Rows * pmat.ColsIn * ncols * 4

	if rows == 0 {
		if !add {
			for co := range res.Cols {
				for j := range min(pmat.Size, res.Size) {
					clear(res.At(co, j))
				}
			}
		}
		return
	}

	if nrows > q120.MaxTerms() {
		panic(fmt.Errorf("cannot VmpApply: %d rows exceed the maximum number of accumulated products %d", nrows, q120.MaxTerms()))
	}

	in, scratch := scratch.TakeUint64(nrows * 4)
	out, _ := scratch.TakeUint64(ncols * 4)
	mat := pmat.Raw()

	for i := range b.N() {

		for r := range rows {
			for ci := range pmat.ColsIn {
				copy(in[(r*pmat.ColsIn+ci)*4:], a.At(ci, r)[4*i:4*i+4])
			}
		}

		b.ntt.VecMat(b.meta, b.table, out, in, mat[i*stride:], nrows, ncols)

		for co := range pmat.ColsOut {
			for j := range pmat.Size {
				dst := j + limbOffset
				if dst >= res.Size {
					break
				}
				src := out[(co*pmat.Size+j)*4 : (co*pmat.Size+j)*4+4]
				x := res.At(co, dst)[4*i : 4*i+4]
				if add {
					b.ntt.AddInplace(x, src)
				} else {
					copy(x, src)
				}
			}
		}
	}
}
