package fft64

import (
	"github.com/Pro7ech/hal/hal"
	"github.com/Pro7ech/hal/reim"
)

// A VmpPMat is stored as [N/8][Rows*ColsIn][ColsOut*Size][8]float64: for each
// reim4 block, the matrix whose row r*ColsIn+ci pairs with the limb r of the
// input column ci and whose column co*Size+j feeds the limb j of the output
// column co.

func (b *Backend) VmpPrepareTmpBytes(rows, colsIn, colsOut, size int) int {
	return b.N() * 8
}

func (b *Backend) VmpPrepare(res hal.VmpPMat, a hal.MatZnx, scratch hal.Scratch) {
	tmp, _ := scratch.TakeFloat64(b.N())
	pmat := res.RawF64()
	nrows, ncols := a.Rows*a.ColsIn, a.ColsOut*a.Size
	for r := range a.Rows {
		for ci := range a.ColsIn {
			v := a.At(r, ci)
			row := r*a.ColsIn + ci
			for co := range a.ColsOut {
				for j := range a.Size {
					b.fft.FromZnx(b.table, tmp, v.At(co, j))
					col := co*a.Size + j
					for blk := range b.N() / (2 * reim.BlockSize) {
						reim.ExtractBlock(pmat[((blk*nrows+row)*ncols+col)*8:], blk, tmp)
					}
				}
			}
		}
	}
}

func (b *Backend) VmpApplyTmpBytes(resSize, aSize, rows, colsIn, colsOut, size int) int {
	return (min(rows, aSize)*colsIn + colsOut*size) * 8 * 8
}

func (b *Backend) VmpApplyDftToDft(res hal.VecZnxDft, a hal.VecZnxDft, pmat hal.VmpPMat, scratch hal.Scratch) {
	for co := range res.Cols {
		for j := pmat.Size; j < res.Size; j++ {
			clear(res.AtF64(co, j))
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
	stride := pmat.Rows * pmat.ColsIn * ncols * 8

	if rows == 0 {
		if !add {
			for co := range res.Cols {
				for j := range min(pmat.Size, res.Size) {
					clear(res.AtF64(co, j))
				}
			}
		}
		return
	}

	in, scratch := scratch.TakeFloat64(nrows * 8)
	out, _ := scratch.TakeFloat64(ncols * 8)
	mat := pmat.RawF64()

	for blk := range b.N() / (2 * reim.BlockSize) {

		for r := range rows {
			for ci := range pmat.ColsIn {
				reim.ExtractBlock(in[(r*pmat.ColsIn+ci)*8:], blk, a.AtF64(ci, r))
			}
		}

		b.fft.VecMat(out, in, mat[blk*stride:], nrows, ncols)

		for co := range pmat.ColsOut {
			for j := range pmat.Size {
				dst := j + limbOffset
				if dst >= res.Size {
					break
				}
				src := out[(co*pmat.Size+j)*8:]
				if add {
					reim.AddBlock(res.AtF64(co, dst), blk, src)
				} else {
					reim.SaveBlock(res.AtF64(co, dst), blk, src)
				}
			}
		}
	}
}
