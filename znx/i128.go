package znx

import (
	"math/bits"
	"unsafe"
)

// I128 kernels operate on signed 128-bit integers stored as pairs of
// uint64 words (lo, hi) in two's complement, so that a slice of N
// coefficients has length 2N.

// I128Pairs views x as a slice of (lo, hi) pairs.
func I128Pairs(x []uint64) [][2]uint64 {
	if len(x) == 0 {
		return nil
	}
	/* #nosec G103 -- a [2]uint64 has the size and alignment of two uint64 */
	return unsafe.Slice((*[2]uint64)(unsafe.Pointer(&x[0])), len(x)/2)
}

func addI128(a, b [2]uint64) (c [2]uint64) {
	var carry uint64
	c[0], carry = bits.Add64(a[0], b[0], 0)
	c[1], _ = bits.Add64(a[1], b[1], carry)
	return
}

func subI128(a, b [2]uint64) (c [2]uint64) {
	var borrow uint64
	c[0], borrow = bits.Sub64(a[0], b[0], 0)
	c[1], _ = bits.Sub64(a[1], b[1], borrow)
	return
}

func negI128(a [2]uint64) [2]uint64 {
	return subI128([2]uint64{}, a)
}

// sext sign-extends x to 128 bits.
func sext(x int64) [2]uint64 {
	return [2]uint64{uint64(x), uint64(x >> 63)}
}

// I128AddI64 returns a + b for a small (i64) b.
func I128AddI64(a [2]uint64, b int64) [2]uint64 {
	return addI128(a, sext(b))
}

// I128FromI64 sign-extends a into res.
func I128FromI64(res []uint64, a []int64) {
	r := I128Pairs(res)
	for i := range a {
		r[i] = sext(a[i])
	}
}

// I128Add evaluates res = a + b.
func I128Add(res, a, b []uint64) {
	r, x, y := I128Pairs(res), I128Pairs(a), I128Pairs(b)
	for i := range r {
		r[i] = addI128(x[i], y[i])
	}
}

// I128Sub evaluates res = a - b.
func I128Sub(res, a, b []uint64) {
	r, x, y := I128Pairs(res), I128Pairs(a), I128Pairs(b)
	for i := range r {
		r[i] = subI128(x[i], y[i])
	}
}

// I128Negate evaluates res = -a.
func I128Negate(res, a []uint64) {
	r, x := I128Pairs(res), I128Pairs(a)
	for i := range r {
		r[i] = negI128(x[i])
	}
}

// I128AddSmall evaluates res = a + b for a small (i64) b.
func I128AddSmall(res, a []uint64, b []int64) {
	r, x := I128Pairs(res), I128Pairs(a)
	for i := range r {
		r[i] = addI128(x[i], sext(b[i]))
	}
}

// I128SubSmallA evaluates res = a - b for a small (i64) a.
func I128SubSmallA(res []uint64, a []int64, b []uint64) {
	r, y := I128Pairs(res), I128Pairs(b)
	for i := range r {
		r[i] = subI128(sext(a[i]), y[i])
	}
}

// I128SubSmallB evaluates res = a - b for a small (i64) b.
func I128SubSmallB(res, a []uint64, b []int64) {
	r, x := I128Pairs(res), I128Pairs(a)
	for i := range r {
		r[i] = subI128(x[i], sext(b[i]))
	}
}

// i128Normalize writes on res the balanced base-2^basek digits of x = a (+ carry)
// and on carry (x - digit) / 2^basek.
func i128Normalize(basek int, res []int64, carry, a []uint64, carryIn, writeCarry bool) {
	x := I128Pairs(a)
	var c [][2]uint64
	if carry != nil {
		c = I128Pairs(carry)
	}
	s := 64 - basek
	for i := range x {
		v := x[i]
		if carryIn {
			v = addI128(v, c[i])
		}
		digit := int64(v[0]<<s) >> s
		if res != nil {
			res[i] = digit
		}
		if writeCarry {
			v = subI128(v, sext(digit))
			c[i] = [2]uint64{v[0]>>basek | v[1]<<s, uint64(int64(v[1]) >> basek)}
		}
	}
}

// I128NormalizeBeg writes the digit of a on res and its carry on carry.
func I128NormalizeBeg(basek int, res []int64, carry, a []uint64) {
	i128Normalize(basek, res, carry, a, false, true)
}

// I128NormalizeBegCarryOnly writes the carry of a on carry.
func I128NormalizeBegCarryOnly(basek int, carry, a []uint64) {
	i128Normalize(basek, nil, carry, a, false, true)
}

// I128NormalizeMid writes the digit of a + carry on res and its carry on carry.
func I128NormalizeMid(basek int, res []int64, carry, a []uint64) {
	i128Normalize(basek, res, carry, a, true, true)
}

// I128NormalizeMidCarryOnly writes the carry of a + carry on carry.
func I128NormalizeMidCarryOnly(basek int, carry, a []uint64) {
	i128Normalize(basek, nil, carry, a, true, true)
}

// I128NormalizeEnd writes the digit of a + carry on res.
func I128NormalizeEnd(basek int, res []int64, carry, a []uint64) {
	i128Normalize(basek, res, carry, a, true, false)
}

// I128Rotate evaluates res = X^p * a. res and a must not overlap.
func I128Rotate(p int64, res, a []uint64) {
	rotate(p, I128Pairs(res), I128Pairs(a), negI128)
}

// I128RotateInplace evaluates res = X^p * res.
func I128RotateInplace(p int64, res []uint64) {
	rotateInplace(p, I128Pairs(res), negI128)
}

// I128Automorphism evaluates res(X) = a(X^p) for an odd p.
// res and a must not overlap.
func I128Automorphism(p int64, res, a []uint64) {
	automorphism(p, I128Pairs(res), I128Pairs(a), negI128)
}
