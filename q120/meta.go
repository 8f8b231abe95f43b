package q120

import (
	"fmt"
	"math"
	"math/big"

	"github.com/Pro7ech/hal/utils/bignum"
)

// VecMatMeta describes how sums of Ell products of residues are accumulated
// on 64-bit words without overflow: every product p < 2^ProdBits is split as
// p = hi*2^H + lo with lo < 2^H, and the hi and lo parts are summed on two
// separate accumulators, each of at most AccBits bits.
// The result is (sum lo) + (sum hi) * 2^H mod q.
type VecMatMeta struct {
	Ell      int
	H        int
	ProdBits int
	AccBits  int

	// Pow2H[k] = 2^H mod Primes[k] in Montgomery form.
	Pow2H [4]uint64
}

// NewVecMatMeta returns the [VecMatMeta] for the sum of ell products of
// operands smaller than 2^inBits and 2^matBits.
//
// Each accumulator grows by ell times its part of the product, so the
// widest of the two is minimized by splitting the product in halves:
// H depends only on inBits and matBits, ell only sets AccBits.
func NewVecMatMeta(ell, inBits, matBits int) (meta VecMatMeta, err error) {

	if ell < 1 {
		return meta, fmt.Errorf("invalid number of terms: %d", ell)
	}

	prod := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), uint(inBits)), big.NewInt(1))
	prod.Mul(prod, new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), uint(matBits)), big.NewInt(1)))

	meta.Ell = ell
	meta.ProdBits = prod.BitLen()

	if meta.ProdBits > 64 {
		return meta, fmt.Errorf("invalid operand sizes: products of %d bits do not fit on 64 bits", meta.ProdBits)
	}

	meta.H = (meta.ProdBits + 1) >> 1

	part := max(meta.H, meta.ProdBits-meta.H)

	// worst case of each accumulator: ell * (2^part - 1)
	worst := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), uint(part)), big.NewInt(1))
	worst.Mul(worst, big.NewInt(int64(ell)))
	worst.Add(worst, big.NewInt(1))

	meta.AccBits = bignum.Log2Ceil(bignum.NewFloat(worst, 128))

	if meta.AccBits > 64 {
		return meta, fmt.Errorf("invalid number of terms: %d products of %d bits overflow 64-bit accumulators", ell, meta.ProdBits)
	}

	for k, q := range Primes {
		brc := GetBRedConstant(q)
		meta.Pow2H[k] = MForm(ModExp(2, uint64(meta.H), q), q, brc)
	}

	return
}

// MaxTerms returns the largest number of products of residues
// that can be accumulated by [Kernels.VecMat].
func MaxTerms() int {
	return int(uint64(math.MaxUint64) / (1<<PrimeBits - 1))
}
