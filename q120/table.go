// Package q120 implements the NTT120 transform: Z[X]/(X^N+1) is mapped onto
// the product of four negacyclic NTT domains modulo ~30-bit primes whose
// product Q is close to 2^120.
//
// A transformed polynomial is stored in the q120 layout: N coefficients of
// 4 uint64 residues, one per prime, so that the residues of a coefficient
// are contiguous and processed together.
package q120

import (
	"fmt"
	"math/big"
	"math/bits"

	"github.com/Pro7ech/hal/utils"
	"github.com/Pro7ech/hal/utils/bignum"
)

// Primes are the four NTT-friendly primes, all equal to 1 mod 2^17 and smaller than 2^30.
var Primes = [4]uint64{0x3ffc0001, 0x3fde0001, 0x3fd20001, 0x3fac0001}

// PrimeBits is an upper bound on the bit-size of the [Primes].
const PrimeBits = 30

// MinimumRingDegree is the smallest supported ring degree.
const MinimumRingDegree = 8

// MaximumRingDegree is the largest supported ring degree: 2N must divide q-1 for every prime.
const MaximumRingDegree = 1 << 16

// Table stores the precomputed constants of the NTT120 transform for ring degree N.
type Table struct {
	N int

	MRedConstant [4]uint64
	BRedConstant [4][2]uint64

	// RootsForward[i][k] are the powers of a primitive 2N-th root of unity
	// modulo Primes[k], in Montgomery form and bit-reversed order.
	RootsForward [][4]uint64
	// RootsBackward are the inverses of RootsForward.
	RootsBackward [][4]uint64

	// NInv[k] = N^-1 mod Primes[k] in Montgomery form.
	NInv [4]uint64

	CRT CRT
}

// CRT stores the constants of the reconstruction of x mod Q from its residues.
type CRT struct {
	// Q = prod Primes as (lo, hi).
	Q [2]uint64
	// QHalf = floor(Q/2) as (lo, hi).
	QHalf [2]uint64
	// QDiv[k] = Q/Primes[k] as (lo, hi).
	QDiv [4][2]uint64
	// QDivInv[k] = (Q/Primes[k])^-1 mod Primes[k] in Montgomery form.
	QDivInv [4]uint64
}

// NewTable generates the NTT120 constants for ring degree N.
func NewTable(N int) (t *Table, err error) {

	if !utils.IsPow2(N) || N < MinimumRingDegree || N > MaximumRingDegree {
		return nil, fmt.Errorf("invalid ring degree: %d must be a power of two in [%d, %d]", N, MinimumRingDegree, MaximumRingDegree)
	}

	t = &Table{
		N:             N,
		RootsForward:  make([][4]uint64, N),
		RootsBackward: make([][4]uint64, N),
	}

	logN := bits.Len64(uint64(N)) - 1
	NthRoot := uint64(2 * N)

	for k, q := range Primes {

		if (q-1)%NthRoot != 0 {
			return nil, fmt.Errorf("invalid modulus: %d != 1 mod NthRoot=%d", q, NthRoot)
		}

		brc := GetBRedConstant(q)
		mrc := GetMRedConstant(q)
		t.BRedConstant[k] = brc
		t.MRedConstant[k] = mrc

		t.NInv[k] = MForm(ModExp(uint64(N), q-2, q), q, brc)

		var psi uint64
		if psi, err = primitiveRoot(q, NthRoot); err != nil {
			return nil, err
		}

		psiMont := MForm(psi, q, brc)
		psiInvMont := MForm(ModExp(psi, q-2, q), q, brc)

		t.RootsForward[0][k] = MForm(1, q, brc)
		t.RootsBackward[0][k] = MForm(1, q, brc)

		for j := 1; j < N; j++ {
			prev := utils.BitReverse64(j-1, logN)
			next := utils.BitReverse64(j, logN)
			t.RootsForward[next][k] = MRed(t.RootsForward[prev][k], psiMont, q, mrc)
			t.RootsBackward[next][k] = MRed(t.RootsBackward[prev][k], psiInvMont, q, mrc)
		}
	}

	t.CRT = newCRT(t.BRedConstant)

	return
}

// primitiveRoot returns a primitive NthRoot-th root of unity modulo the prime q,
// NthRoot being a power of two dividing q-1.
func primitiveRoot(q, NthRoot uint64) (psi uint64, err error) {
	// g^((q-1)/NthRoot) has order NthRoot exactly when g is a quadratic non-residue.
	for g := uint64(2); g < q; g++ {
		if ModExp(g, (q-1)>>1, q) == q-1 {
			psi = ModExp(g, (q-1)/NthRoot, q)
			if ModExp(psi, NthRoot>>1, q) != q-1 {
				return 0, fmt.Errorf("invalid 2Nth primitive root: psi^N != -1 mod %d", q)
			}
			return psi, nil
		}
	}
	return 0, fmt.Errorf("cannot find a quadratic non-residue modulo %d", q)
}

func newCRT(brc [4][2]uint64) (c CRT) {

	Q := bignum.Product(Primes[:]...)

	c.Q[0], c.Q[1] = bignum.ToInt128(Q)
	c.QHalf[0], c.QHalf[1] = bignum.ToInt128(new(big.Int).Rsh(Q, 1))

	for k, q := range Primes {
		bigQ := new(big.Int).SetUint64(q)
		QDiv := new(big.Int).Quo(Q, bigQ)
		c.QDiv[k][0], c.QDiv[k][1] = bignum.ToInt128(QDiv)
		inv := new(big.Int).ModInverse(new(big.Int).Mod(QDiv, bigQ), bigQ)
		c.QDivInv[k] = MForm(inv.Uint64(), q, brc[k])
	}

	return
}

// Modulus returns Q = prod Primes.
func Modulus() *big.Int {
	return bignum.Product(Primes[:]...)
}
