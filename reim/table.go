// Package reim implements the FFT64 transform of Z[X]/(X^N+1) into C^(N/2)
// and the kernels operating on the transformed vectors.
//
// A transformed polynomial of degree N is stored as N float64 in the "reim"
// layout: the m = N/2 real parts followed by the m imaginary parts.
// Slot k holds the evaluation at the root exp(i*pi*(4*bitrev(k)+1)/N),
// so that products in Z[X]/(X^N+1) are slot-wise complex products.
package reim

import (
	"fmt"
	"math"

	"github.com/Pro7ech/hal/utils"
)

// MinimumRingDegree is the smallest supported ring degree.
const MinimumRingDegree = 8

// MaximumRingDegree is the largest supported ring degree.
const MaximumRingDegree = 1 << 16

// BlockSize is the number of complex slots of a reim4 block.
const BlockSize = 4

// Table stores the precomputed constants of the FFT64 transform
// for a ring degree N.
type Table struct {
	N int
	M int

	// OmegaRe, OmegaIm = exp(2*i*pi*j/M), j < M/2.
	OmegaRe, OmegaIm []float64

	// TwistRe, TwistIm = exp(i*pi*j/N), j < M.
	TwistRe, TwistIm []float64
}

// NewTable generates the FFT64 constants for ring degree N.
func NewTable(N int) (t *Table, err error) {

	if !utils.IsPow2(N) || N < MinimumRingDegree || N > MaximumRingDegree {
		return nil, fmt.Errorf("invalid ring degree: %d must be a power of two in [%d, %d]", N, MinimumRingDegree, MaximumRingDegree)
	}

	M := N >> 1

	t = &Table{
		N:       N,
		M:       M,
		OmegaRe: make([]float64, M>>1),
		OmegaIm: make([]float64, M>>1),
		TwistRe: make([]float64, M),
		TwistIm: make([]float64, M),
	}

	for j := range t.OmegaRe {
		t.OmegaRe[j], t.OmegaIm[j] = root(int64(j), int64(M))
	}

	for j := range t.TwistRe {
		t.TwistRe[j], t.TwistIm[j] = root(int64(j), int64(2*N))
	}

	return
}

// root returns the real and imaginary parts of exp(2*i*pi*j/m),
// exact on multiples of pi/4.
func root(j, m int64) (re, im float64) {
	switch {
	case j == 0:
		return 1, 0
	case 4*j == m:
		return 0, 1
	case 2*j == m:
		return -1, 0
	case 4*j == 3*m:
		return 0, -1
	case 8*j == m:
		return math.Sqrt2 / 2, math.Sqrt2 / 2
	}
	im, re = math.Sincos(2 * math.Pi * float64(j) / float64(m))
	return
}
