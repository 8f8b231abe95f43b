package q120

import (
	"math/big"
	"math/bits"

	"github.com/Pro7ech/hal/utils"
)

// GetMRedConstant computes the constant q^-1 mod 2^64 required by [MRed].
func GetMRedConstant(q uint64) uint64 {
	return utils.InvModPow2(q, 64)
}

// GetBRedConstant computes floor(2^128/q) as [hi, lo] words, required by [BRedAdd] and [MForm].
func GetBRedConstant(q uint64) [2]uint64 {
	r := new(big.Int).Lsh(big.NewInt(1), 128)
	r.Quo(r, new(big.Int).SetUint64(q))
	lo := r.Uint64()
	hi := r.Rsh(r, 64).Uint64()
	return [2]uint64{hi, lo}
}

// MForm returns a*2^64 mod q.
func MForm(a, q uint64, u [2]uint64) (r uint64) {
	mhi, _ := bits.Mul64(a, u[1])
	r = -(a*u[0] + mhi) * q
	if r >= q {
		r -= q
	}
	return
}

// IMForm returns a*2^-64 mod q.
func IMForm(a, q, qInv uint64) (r uint64) {
	r, _ = bits.Mul64(a*qInv, q)
	r = q - r
	if r >= q {
		r -= q
	}
	return
}

// MRed returns x*y*2^-64 mod q in [0, q).
// x*y must be smaller than q*2^64.
func MRed(x, y, q, qInv uint64) (r uint64) {
	ahi, alo := bits.Mul64(x, y)
	R := alo * qInv
	H, _ := bits.Mul64(R, q)
	r = ahi - H + q
	if r >= q {
		r -= q
	}
	return
}

// MRedLazy returns x*y*2^-64 mod q in [0, 2q).
func MRedLazy(x, y, q, qInv uint64) (r uint64) {
	ahi, alo := bits.Mul64(x, y)
	R := alo * qInv
	H, _ := bits.Mul64(R, q)
	return ahi - H + q
}

// BRedAdd returns x mod q.
func BRedAdd(x, q uint64, u [2]uint64) (r uint64) {
	s0, _ := bits.Mul64(x, u[0])
	r = x - s0*q
	if r >= q {
		r -= q
	}
	return
}

// CRed returns a mod q for a in [0, 2q).
func CRed(a, q uint64) uint64 {
	if a >= q {
		return a - q
	}
	return a
}

// ModExp returns x^e mod q.
func ModExp(x, e, q uint64) (r uint64) {
	mulmod := func(a, b uint64) uint64 {
		hi, lo := bits.Mul64(a, b)
		_, rem := bits.Div64(hi, lo, q)
		return rem
	}
	r = 1
	x %= q
	for ; e > 0; e >>= 1 {
		if e&1 == 1 {
			r = mulmod(r, x)
		}
		x = mulmod(x, x)
	}
	return
}

// butterfly is the Cooley-Tukey butterfly on lazily reduced inputs.
func butterfly(U, V, Psi, twoQ, fourQ, Q, Qinv uint64) (uint64, uint64) {
	if U >= fourQ {
		U -= fourQ
	}
	V = MRedLazy(V, Psi, Q, Qinv)
	return U + V, U + twoQ - V
}

// invbutterfly is the Gentleman-Sande butterfly on inputs in [0, 2q).
func invbutterfly(U, V, Psi, twoQ, fourQ, Q, Qinv uint64) (X, Y uint64) {
	X = U + V
	if X >= twoQ {
		X -= twoQ
	}
	Y = MRedLazy(U+fourQ-V, Psi, Q, Qinv)
	return
}
