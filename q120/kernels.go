package q120

import (
	"math/bits"
)

// Kernels is the set of NTT120 kernels.
// A limb of N coefficients in the q120 layout holds 4N uint64.
// Residues are kept in [0, q).
type Kernels interface {
	Name() string

	// NTT evaluates in place the forward negacyclic NTT of x.
	NTT(t *Table, x []uint64)
	// INTT evaluates in place the inverse of [Kernels.NTT].
	INTT(t *Table, x []uint64)

	// FromZnx writes on res the transform of the integer polynomial a.
	FromZnx(t *Table, res []uint64, a []int64)

	Add(res, a, b []uint64)
	AddInplace(res, a []uint64)
	Sub(res, a, b []uint64)
	SubABInplace(res, a []uint64)
	SubBAInplace(res, a []uint64)
	Negate(res, a []uint64)

	// MForm maps res = a * 2^64 mod q.
	MForm(t *Table, res, a []uint64)
	// Mul evaluates res = a * bMont * 2^-64, bMont being in Montgomery form.
	Mul(t *Table, res, a, bMont []uint64)
	// MulAdd evaluates res = res + a * bMont * 2^-64.
	MulAdd(t *Table, res, a, bMont []uint64)

	// VecMat evaluates, for every column c, out[c] = sum_r in[r] * mat[r][c]
	// on single q120 coefficients: in is [rows][4], mat is [rows][cols][4]
	// and out is [cols][4].
	VecMat(meta VecMatMeta, t *Table, out, in, mat []uint64, rows, cols int)
}

// Select returns the reference kernels when lanes is false
// and the lane packed kernels otherwise.
func Select(lanes bool) Kernels {
	if lanes {
		return LanesKernels{}
	}
	return ReferenceKernels{}
}

// ToI128 writes on res (2N words) the centered integer polynomial of
// the residues x (4N words, in [0, q)) modulo Q.
func ToI128(t *Table, res, x []uint64) {
	c := &t.CRT
	N := len(x) >> 2
	for j := 0; j < N; j++ {
		var lo, hi, carry uint64
		for k, q := range Primes {
			tk := MRed(x[4*j+k], c.QDivInv[k], q, t.MRedConstant[k])
			plo := c.QDiv[k][0]
			phi := c.QDiv[k][1]
			h, l := bits.Mul64(tk, plo)
			h += tk * phi
			lo, carry = bits.Add64(lo, l, 0)
			hi, _ = bits.Add64(hi, h, carry)
		}
		// sum < 4Q
		for geq(lo, hi, c.Q[0], c.Q[1]) {
			lo, hi = sub128(lo, hi, c.Q[0], c.Q[1])
		}
		if !geq(c.QHalf[0], c.QHalf[1], lo, hi) {
			lo, hi = sub128(lo, hi, c.Q[0], c.Q[1])
		}
		res[2*j], res[2*j+1] = lo, hi
	}
}

// geq returns (alo, ahi) >= (blo, bhi) as unsigned 128-bit integers.
func geq(alo, ahi, blo, bhi uint64) bool {
	return ahi > bhi || (ahi == bhi && alo >= blo)
}

func sub128(alo, ahi, blo, bhi uint64) (lo, hi uint64) {
	var borrow uint64
	lo, borrow = bits.Sub64(alo, blo, 0)
	hi, _ = bits.Sub64(ahi, bhi, borrow)
	return
}

// reduceI64 returns x mod q in [0, q).
func reduceI64(x int64, q uint64) uint64 {
	r := x % int64(q)
	if r < 0 {
		r += int64(q)
	}
	return uint64(r)
}
