// Package bignum implements arbitrary precision arithmetic helpers.
package bignum

import (
	"fmt"
	"math/big"
)

// NewInt allocates a new *big.Int.
// Accepted types are: string, uint, uint64, int64, int, *big.Float or *big.Int.
func NewInt(x interface{}) (y *big.Int) {

	y = new(big.Int)

	if x == nil {
		return
	}

	switch x := x.(type) {
	case string:
		y.SetString(x, 0)
	case uint:
		y.SetUint64(uint64(x))
	case uint64:
		y.SetUint64(x)
	case int64:
		y.SetInt64(x)
	case int:
		y.SetInt64(int64(x))
	case *big.Float:
		x.Int(y)
	case *big.Int:
		y.Set(x)
	default:
		panic(fmt.Sprintf("cannot NewInt: accepted types are string, uint, uint64, int, int64, *big.Float, *big.Int, but is %T", x))
	}

	return
}

// Product returns the product of the given moduli.
func Product(moduli ...uint64) (p *big.Int) {
	p = NewInt(1)
	for _, q := range moduli {
		p.Mul(p, NewInt(q))
	}
	return
}

// Center sets x to its representative in (-Q/2, Q/2].
func Center(x, Q *big.Int) *big.Int {
	x.Mod(x, Q)
	half := new(big.Int).Rsh(Q, 1)
	if x.Cmp(half) > 0 {
		x.Sub(x, Q)
	}
	return x
}

// FromInt128 returns the *big.Int of the two's complement 128-bit integer hi*2^64 + lo.
func FromInt128(lo, hi uint64) (x *big.Int) {
	x = new(big.Int).SetUint64(hi)
	x.Lsh(x, 64)
	x.Or(x, new(big.Int).SetUint64(lo))
	if hi>>63 == 1 {
		x.Sub(x, new(big.Int).Lsh(NewInt(1), 128))
	}
	return
}

// ToInt128 returns the two's complement 128-bit words (lo, hi) of x.
// x must be in [-2^127, 2^127).
func ToInt128(x *big.Int) (lo, hi uint64) {
	y := new(big.Int).Set(x)
	if y.Sign() < 0 {
		y.Add(y, new(big.Int).Lsh(NewInt(1), 128))
	}
	lo = y.Uint64()
	hi = y.Rsh(y, 64).Uint64()
	return
}
