// Package znx implements the coefficient-wise kernels over Z[X]/(X^N+1)
// operating on the limbs of base-2^k digit decomposed polynomials.
//
// Kernels are exposed through the [Kernels] interface, which has two
// interchangeable implementations: a scalar reference tier and a lane
// packed tier processing blocks of 8 coefficients through fixed-size
// array views. Both tiers produce bit-identical outputs.
//
// All kernels operate on slices of equal length N (a power of two) unless
// stated otherwise. Coefficient-wise kernels accept res == a.
package znx

import (
	"fmt"
	"strings"

	"github.com/klauspost/cpuid/v2"
)

// Tier selects an implementation of [Kernels].
type Tier int

const (
	// Auto selects [Lanes] on CPUs reporting AVX2 and [Reference] otherwise.
	Auto = Tier(iota)
	// Reference is the portable scalar tier.
	Reference
	// Lanes is the lane packed tier.
	Lanes
)

func (t Tier) String() string {
	switch t {
	case Auto:
		return "auto"
	case Reference:
		return "ref"
	case Lanes:
		return "lanes"
	default:
		return fmt.Sprintf("Tier(%d)", int(t))
	}
}

// ParseTier parses the name of a tier ("auto", "ref" or "lanes").
// The empty string is parsed as [Auto].
func ParseTier(s string) (Tier, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return Auto, nil
	case "ref", "reference":
		return Reference, nil
	case "lanes", "avx", "avx2":
		return Lanes, nil
	default:
		return Auto, fmt.Errorf("invalid kernel tier: %q", s)
	}
}

// HasAVX2 reports whether the running CPU supports AVX2.
func HasAVX2() bool {
	return cpuid.CPU.Has(cpuid.AVX2)
}

// Resolve maps [Auto] to the tier matching the running CPU.
func (t Tier) Resolve() Tier {
	if t != Auto {
		return t
	}
	if HasAVX2() {
		return Lanes
	}
	return Reference
}

// Select returns the [Kernels] of the given tier.
func Select(t Tier) Kernels {
	switch t.Resolve() {
	case Lanes:
		return LanesKernels{}
	default:
		return ReferenceKernels{}
	}
}

// Kernels is the set of i64 limb kernels.
type Kernels interface {
	// Name returns the name of the tier.
	Name() string

	Zero(res []int64)
	Copy(res, a []int64)

	// Add evaluates res = a + b.
	Add(res, a, b []int64)
	// AddInplace evaluates res = res + a.
	AddInplace(res, a []int64)
	// Sub evaluates res = a - b.
	Sub(res, a, b []int64)
	// SubABInplace evaluates res = res - a.
	SubABInplace(res, a []int64)
	// SubBAInplace evaluates res = a - res.
	SubBAInplace(res, a []int64)
	// Negate evaluates res = -a.
	Negate(res, a []int64)
	NegateInplace(res []int64)

	// Lsh evaluates res = a * 2^k with wrap-around.
	Lsh(k int, res, a []int64)
	// RshCarry evaluates, with hi = a >> k and lo = a - hi<<k,
	// res = hi + carry and carry = lo << (basek - k).
	RshCarry(basek, k int, res, carry, a []int64)

	// NormalizeBeg writes the digit of a on res and its carry on carry.
	NormalizeBeg(basek int, res, carry, a []int64)
	// NormalizeBegCarryOnly writes the carry of a on carry.
	NormalizeBegCarryOnly(basek int, carry, a []int64)
	// NormalizeMid writes the digit of a + carry on res and its carry on carry.
	NormalizeMid(basek int, res, carry, a []int64)
	// NormalizeMidCarryOnly writes the carry of a + carry on carry.
	NormalizeMidCarryOnly(basek int, carry, a []int64)
	// NormalizeEnd writes the digit of a + carry on res, discarding the carry.
	NormalizeEnd(basek int, res, carry, a []int64)

	// Rotate evaluates res = X^p * a. res and a must not overlap.
	Rotate(p int64, res, a []int64)
	// RotateInplace evaluates res = X^p * res.
	RotateInplace(p int64, res []int64)
	// MulXpMinusOne evaluates res = (X^p - 1) * a. res and a must not overlap.
	MulXpMinusOne(p int64, res, a []int64)
	// Automorphism evaluates res(X) = a(X^p) for an odd p.
	// res and a must not overlap.
	Automorphism(p int64, res, a []int64)

	// SwitchDegree maps a of degree len(a) onto res of degree len(res):
	// sub-sampling when shrinking, interleaving with zeros when growing.
	SwitchDegree(res, a []int64)
}

// Digit returns the balanced base-2^basek digit of x, in [-2^(basek-1), 2^(basek-1)).
func Digit(basek int, x int64) int64 {
	return (x << (64 - basek)) >> (64 - basek)
}

// Carry returns (x - digit) / 2^basek.
func Carry(basek int, x, digit int64) int64 {
	return (x - digit) >> basek
}

// ModTwoN returns p mod 2n in [0, 2n).
func ModTwoN(p int64, n int) int {
	twoN := int64(2 * n)
	p %= twoN
	if p < 0 {
		p += twoN
	}
	return int(p)
}
