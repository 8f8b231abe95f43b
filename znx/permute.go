package znx

import (
	"fmt"
	"math/bits"

	"github.com/Pro7ech/hal/utils"
)

// rotate evaluates res = X^p * a coefficient by coefficient.
func rotate[T any](p int64, res, a []T, neg func(T) T) {
	n := len(a)
	pp := ModTwoN(p, n)
	for i := range a {
		t := i + pp
		if t >= 2*n {
			t -= 2 * n
		}
		if t < n {
			res[t] = a[i]
		} else {
			res[t-n] = neg(a[i])
		}
	}
}

// rotateInplace evaluates x = X^p * x with three reversals.
func rotateInplace[T any](p int64, x []T, neg func(T) T) {
	n := len(x)
	pp := ModTwoN(p, n)
	if pp >= n {
		for i := range x {
			x[i] = neg(x[i])
		}
		pp -= n
	}
	if pp == 0 {
		return
	}
	reverse(x)
	reverse(x[:pp])
	reverse(x[pp:])
	for i := 0; i < pp; i++ {
		x[i] = neg(x[i])
	}
}

func reverse[T any](x []T) {
	for i, j := 0, len(x)-1; i < j; i, j = i+1, j-1 {
		x[i], x[j] = x[j], x[i]
	}
}

// automorphism evaluates res(X) = a(X^p) by scattering the coefficients of a.
func automorphism[T any](p int64, res, a []T, neg func(T) T) {
	n := len(a)
	pp := ModTwoN(p, n)
	if pp&1 == 0 {
		panic(fmt.Errorf("invalid automorphism: p=%d is even", p))
	}
	mask := 2*n - 1
	for i := range a {
		t := (i * pp) & mask
		if t < n {
			res[t] = a[i]
		} else {
			res[t-n] = neg(a[i])
		}
	}
}

// AutomorphismInverse returns p^-1 mod 2n. The output coefficient j of
// res(X) = a(X^p) is gathered from a[j * p^-1 mod 2n], negated when the
// index is at least n.
func AutomorphismInverse(p int64, n int) int {
	pp := ModTwoN(p, n)
	if pp&1 == 0 {
		panic(fmt.Errorf("invalid automorphism: p=%d is even", p))
	}
	return int(utils.InvModPow2(uint64(pp), bits.Len(uint(n))))
}

// switchDegree maps a onto res, sub-sampling or interleaving with zeros.
func switchDegree[T any](res, a []T) {
	nIn, nOut := len(a), len(res)
	switch {
	case nIn == nOut:
		copy(res, a)
	case nIn > nOut:
		gap := nIn / nOut
		for j := range res {
			res[j] = a[j*gap]
		}
	default:
		gap := nOut / nIn
		clear(res)
		for j := range a {
			res[j*gap] = a[j]
		}
	}
}

func negI64(x int64) int64 { return -x }
