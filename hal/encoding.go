package hal

import (
	"fmt"
	"math"
	"math/big"
	"math/bits"

	"github.com/Pro7ech/hal/utils"
	"github.com/Pro7ech/hal/znx"
)

// EncodeVecI64 encodes data * 2^-k on the given column of v, normalized in
// base 2^basek over the first ceil(k/basek) limbs. The remaining limbs of the
// column are zeroed. The entries of data must satisfy |data[i]| < 2^logMax.
func (v VecZnx) EncodeVecI64(basek, col, k int, data []int64, logMax int) {
	size := utils.DivCeil(k, basek)
	if checks {
		assertEncoding("EncodeVecI64", v, basek, col, k)
		if len(data) > v.N {
			panic(fmt.Errorf("EncodeVecI64: len(data)=%d > N=%d", len(data), v.N))
		}
		for i := range data {
			if bits.Len64(abs(data[i])) > logMax {
				panic(fmt.Errorf("EncodeVecI64: |data[%d]|=%d exceeds 2^%d", i, data[i], logMax))
			}
		}
	}
	v.ZeroCol(col)
	kRem := size*basek - k
	for i, x := range data {
		encodeDigits(basek, kRem, x, func(limb int, d int64) { v.At(col, limb)[i] = d }, size)
	}
}

// EncodeCoeffI64 encodes value * 2^-k on the coefficient idx of the given
// column of v. The other coefficients are left unchanged.
func (v VecZnx) EncodeCoeffI64(basek, col, k, idx int, value int64, logMax int) {
	size := utils.DivCeil(k, basek)
	if checks {
		assertEncoding("EncodeCoeffI64", v, basek, col, k)
		if !(idx >= 0 && idx < v.N) {
			panic(fmt.Errorf("EncodeCoeffI64: invalid index %d", idx))
		}
		if bits.Len64(abs(value)) > logMax {
			panic(fmt.Errorf("EncodeCoeffI64: |value|=%d exceeds 2^%d", value, logMax))
		}
	}
	for j := range v.Size {
		v.At(col, j)[idx] = 0
	}
	encodeDigits(basek, size*basek-k, value, func(limb int, d int64) { v.At(col, limb)[idx] = d }, size)
}

// DecodeVecI64 decodes the given column of v at precision 2^-k into data,
// rounding to the nearest integer.
func (v VecZnx) DecodeVecI64(basek, col, k int, data []int64) {
	if checks {
		assertEncoding("DecodeVecI64", v, basek, col, k)
		if len(data) > v.N {
			panic(fmt.Errorf("DecodeVecI64: len(data)=%d > N=%d", len(data), v.N))
		}
	}
	size := utils.DivCeil(k, basek)
	kRem := size*basek - k
	for i := range data {
		data[i] = 0
	}
	for j := range size {
		limb := v.At(col, j)
		for i := range data {
			data[i] = decodeStep(basek, kRem, data[i], limb[i], j == size-1)
		}
	}
}

// DecodeCoeffI64 decodes the coefficient idx of the given column of v at
// precision 2^-k, rounding to the nearest integer.
func (v VecZnx) DecodeCoeffI64(basek, col, k, idx int) (value int64) {
	if checks {
		assertEncoding("DecodeCoeffI64", v, basek, col, k)
		if !(idx >= 0 && idx < v.N) {
			panic(fmt.Errorf("DecodeCoeffI64: invalid index %d", idx))
		}
	}
	size := utils.DivCeil(k, basek)
	kRem := size*basek - k
	for j := range size {
		value = decodeStep(basek, kRem, value, v.At(col, j)[idx], j == size-1)
	}
	return
}

// DecodeVecFloat decodes the torus values sum_j limb_j * 2^(-(j+1)*basek) of
// the given column of v into data, at precision v.Size*basek bits.
// Nil entries of data are allocated.
func (v VecZnx) DecodeVecFloat(basek, col int, data []*big.Float) {
	if checks {
		assertCol("DecodeVecFloat", col, v.Cols)
		if len(data) > v.N {
			panic(fmt.Errorf("DecodeVecFloat: len(data)=%d > N=%d", len(data), v.N))
		}
	}
	prec := uint(max(v.Size*basek, 53))
	digit := new(big.Float).SetPrec(64)
	for i := range data {
		if data[i] == nil {
			data[i] = new(big.Float)
		}
		acc := data[i].SetPrec(prec).SetInt64(0)
		for j := v.Size - 1; j >= 0; j-- {
			acc.Add(acc, digit.SetInt64(v.At(col, j)[i]))
			acc.SetMantExp(acc, -basek)
		}
	}
}

// DecodeVecFloat64 decodes the torus values of the given column of v into data.
func (v VecZnx) DecodeVecFloat64(basek, col int, data []float64) {
	if checks {
		assertCol("DecodeVecFloat64", col, v.Cols)
		if len(data) > v.N {
			panic(fmt.Errorf("DecodeVecFloat64: len(data)=%d > N=%d", len(data), v.N))
		}
	}
	scale := math.Ldexp(1, -basek)
	for i := range data {
		var acc float64
		for j := v.Size - 1; j >= 0; j-- {
			acc = (acc + float64(v.At(col, j)[i])) * scale
		}
		data[i] = acc
	}
}

// encodeDigits writes, from the least significant limb size-1, the balanced
// base-2^basek digits of x * 2^kRem. The digits above limb 0 are discarded.
func encodeDigits(basek, kRem int, x int64, write func(limb int, d int64), size int) {
	// 128-bit two's complement x * 2^kRem.
	hi, lo := uint64(x>>63), uint64(x)
	if kRem > 0 {
		hi, lo = hi<<kRem|lo>>(64-kRem), lo<<kRem
	}
	for limb := size - 1; limb >= 0; limb-- {
		d := znx.Digit(basek, int64(lo))
		var borrow uint64
		lo, borrow = bits.Sub64(lo, uint64(d), 0)
		hi = hi - uint64(d>>63) - borrow
		lo = lo>>basek | hi<<(64-basek)
		hi = uint64(int64(hi) >> basek)
		write(limb, d)
	}
}

// decodeStep is one Horner step of the decoding; the last limb is divided
// by 2^kRem with rounding.
func decodeStep(basek, kRem int, acc, d int64, last bool) int64 {
	if last && kRem > 0 {
		return acc<<(basek-kRem) + (d+1<<(kRem-1))>>kRem
	}
	return acc<<basek + d
}

func assertEncoding(name string, v VecZnx, basek, col, k int) {
	assertBasek(name, basek)
	assertCol(name, col, v.Cols)
	if !(k > 0 && utils.DivCeil(k, basek) <= v.Size) {
		panic(fmt.Errorf("%s: k=%d requires %d limbs of %d bits but size is %d", name, k, utils.DivCeil(k, basek), basek, v.Size))
	}
}

func abs(x int64) uint64 {
	if x < 0 {
		return uint64(-x)
	}
	return uint64(x)
}
