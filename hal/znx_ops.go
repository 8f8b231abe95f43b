package hal

import (
	"github.com/Pro7ech/hal/znx"
)

// ZnxOps evaluates the [VecZnx] operations with the given limb kernels.
// It performs no argument checks; see the corresponding [Module] methods
// for the contracts.
type ZnxOps struct {
	Kernels znx.Kernels
}

func (z ZnxOps) Add(res VecZnx, resCol int, a VecZnx, aCol int, b VecZnx, bCol int) {
	k := z.Kernels
	LimbsBinary(res.Size, a.Size, b.Size,
		func(j int) { k.Add(res.At(resCol, j), a.At(aCol, j), b.At(bCol, j)) },
		func(j int) { k.Copy(res.At(resCol, j), a.At(aCol, j)) },
		func(j int) { k.Copy(res.At(resCol, j), b.At(bCol, j)) },
		func(j int) { k.Zero(res.At(resCol, j)) })
}

func (z ZnxOps) AddInplace(res VecZnx, resCol int, a VecZnx, aCol int) {
	for j := range min(res.Size, a.Size) {
		z.Kernels.AddInplace(res.At(resCol, j), a.At(aCol, j))
	}
}

func (z ZnxOps) Sub(res VecZnx, resCol int, a VecZnx, aCol int, b VecZnx, bCol int) {
	k := z.Kernels
	LimbsBinary(res.Size, a.Size, b.Size,
		func(j int) { k.Sub(res.At(resCol, j), a.At(aCol, j), b.At(bCol, j)) },
		func(j int) { k.Copy(res.At(resCol, j), a.At(aCol, j)) },
		func(j int) { k.Negate(res.At(resCol, j), b.At(bCol, j)) },
		func(j int) { k.Zero(res.At(resCol, j)) })
}

func (z ZnxOps) SubABInplace(res VecZnx, resCol int, a VecZnx, aCol int) {
	for j := range min(res.Size, a.Size) {
		z.Kernels.SubABInplace(res.At(resCol, j), a.At(aCol, j))
	}
}

func (z ZnxOps) SubBAInplace(res VecZnx, resCol int, a VecZnx, aCol int) {
	sum := min(res.Size, a.Size)
	for j := range sum {
		z.Kernels.SubBAInplace(res.At(resCol, j), a.At(aCol, j))
	}
	for j := sum; j < res.Size; j++ {
		z.Kernels.NegateInplace(res.At(resCol, j))
	}
}

func (z ZnxOps) Negate(res VecZnx, resCol int, a VecZnx, aCol int) {
	k := z.Kernels
	LimbsUnary(res.Size, a.Size,
		func(j int) { k.Negate(res.At(resCol, j), a.At(aCol, j)) },
		func(j int) { k.Zero(res.At(resCol, j)) })
}

func (z ZnxOps) NegateInplace(a VecZnx, aCol int) {
	for j := range a.Size {
		z.Kernels.NegateInplace(a.At(aCol, j))
	}
}

func (z ZnxOps) Copy(res VecZnx, resCol int, a VecZnx, aCol int) {
	k := z.Kernels
	LimbsUnary(res.Size, a.Size,
		func(j int) { k.Copy(res.At(resCol, j), a.At(aCol, j)) },
		func(j int) { k.Zero(res.At(resCol, j)) })
}

func (z ZnxOps) AddScalarInplace(res VecZnx, resCol, resLimb int, a ScalarZnx, aCol int) {
	z.Kernels.AddInplace(res.At(resCol, resLimb), a.At(aCol))
}

func (z ZnxOps) SubScalarInplace(res VecZnx, resCol, resLimb int, a ScalarZnx, aCol int) {
	z.Kernels.SubABInplace(res.At(resCol, resLimb), a.At(aCol))
}

func (z ZnxOps) Rotate(p int64, res VecZnx, resCol int, a VecZnx, aCol int) {
	k := z.Kernels
	LimbsUnary(res.Size, a.Size,
		func(j int) { k.Rotate(p, res.At(resCol, j), a.At(aCol, j)) },
		func(j int) { k.Zero(res.At(resCol, j)) })
}

func (z ZnxOps) RotateInplace(p int64, a VecZnx, aCol int) {
	for j := range a.Size {
		z.Kernels.RotateInplace(p, a.At(aCol, j))
	}
}

func (z ZnxOps) Automorphism(p int64, res VecZnx, resCol int, a VecZnx, aCol int) {
	k := z.Kernels
	LimbsUnary(res.Size, a.Size,
		func(j int) { k.Automorphism(p, res.At(resCol, j), a.At(aCol, j)) },
		func(j int) { k.Zero(res.At(resCol, j)) })
}

func (z ZnxOps) AutomorphismInplace(p int64, a VecZnx, aCol int, scratch Scratch) {
	tmp, _ := scratch.TakeInt64(a.N)
	for j := range a.Size {
		z.Kernels.Copy(tmp, a.At(aCol, j))
		z.Kernels.Automorphism(p, a.At(aCol, j), tmp)
	}
}

func (z ZnxOps) MulXpMinusOne(p int64, res VecZnx, resCol int, a VecZnx, aCol int) {
	k := z.Kernels
	LimbsUnary(res.Size, a.Size,
		func(j int) { k.MulXpMinusOne(p, res.At(resCol, j), a.At(aCol, j)) },
		func(j int) { k.Zero(res.At(resCol, j)) })
}

func (z ZnxOps) MulXpMinusOneInplace(p int64, a VecZnx, aCol int, scratch Scratch) {
	tmp, _ := scratch.TakeInt64(a.N)
	for j := range a.Size {
		z.Kernels.Copy(tmp, a.At(aCol, j))
		z.Kernels.MulXpMinusOne(p, a.At(aCol, j), tmp)
	}
}

func (z ZnxOps) SwitchDegree(res VecZnx, resCol int, a VecZnx, aCol int) {
	k := z.Kernels
	LimbsUnary(res.Size, a.Size,
		func(j int) { k.SwitchDegree(res.At(resCol, j), a.At(aCol, j)) },
		func(j int) { k.Zero(res.At(resCol, j)) })
}

// Split writes on res[i] the coefficients i + t*len(res) of a.
func (z ZnxOps) Split(res []VecZnx, resCol int, a VecZnx, aCol int, scratch Scratch) {
	k := z.Kernels
	tmp, _ := scratch.TakeInt64(a.N)

	var size int
	for i := range res {
		size = max(size, res[i].Size)
	}

	for j := range min(size, a.Size) {
		k.Copy(tmp, a.At(aCol, j))
		for i := range res {
			if i > 0 {
				k.RotateInplace(-1, tmp)
			}
			if j < res[i].Size {
				k.SwitchDegree(res[i].At(resCol, j), tmp)
			}
		}
	}

	for i := range res {
		for j := a.Size; j < res[i].Size; j++ {
			k.Zero(res[i].At(resCol, j))
		}
	}
}

// Merge is the inverse of [ZnxOps.Split]: res = sum_i X^i * a[i](X^len(a)).
func (z ZnxOps) Merge(res VecZnx, resCol int, a []VecZnx, aCol int, scratch Scratch) {
	k := z.Kernels
	tmp, _ := scratch.TakeInt64(res.N)
	for j := range res.Size {
		r := res.At(resCol, j)
		k.Zero(r)
		// Horner evaluation in X.
		for i := len(a) - 1; i >= 0; i-- {
			k.RotateInplace(1, r)
			if j < a[i].Size {
				k.SwitchDegree(tmp, a[i].At(aCol, j))
				k.AddInplace(r, tmp)
			}
		}
	}
}

// normalize writes on res the normalization of the aSize limbs returned by
// limb, which is called once per limb, from the least significant one.
// Limbs of index larger than res.Size only contribute their carry and the
// carry out of limb 0 is discarded.
func (z ZnxOps) normalize(basek int, res VecZnx, resCol, aSize int, limb func(j int) []int64, carry []int64) {
	k := z.Kernels
	for j := aSize - 1; j >= 0; j-- {
		a := limb(j)
		first := j == aSize-1
		switch {
		case j >= res.Size:
			if first {
				k.NormalizeBegCarryOnly(basek, carry, a)
			} else {
				k.NormalizeMidCarryOnly(basek, carry, a)
			}
		case first:
			k.NormalizeBeg(basek, res.At(resCol, j), carry, a)
		case j == 0:
			k.NormalizeEnd(basek, res.At(resCol, j), carry, a)
		default:
			k.NormalizeMid(basek, res.At(resCol, j), carry, a)
		}
	}
	for j := max(aSize, 0); j < res.Size; j++ {
		k.Zero(res.At(resCol, j))
	}
}

func (z ZnxOps) Normalize(basek int, res VecZnx, resCol int, a VecZnx, aCol int, scratch Scratch) {
	carry, _ := scratch.TakeInt64(res.N)
	z.normalize(basek, res, resCol, a.Size, func(j int) []int64 { return a.At(aCol, j) }, carry)
}

func (z ZnxOps) NormalizeInplace(basek int, a VecZnx, aCol int, scratch Scratch) {
	z.Normalize(basek, a, aCol, a, aCol, scratch)
}

// Lsh writes on res the normalization of a * 2^k.
func (z ZnxOps) Lsh(basek, k int, res VecZnx, resCol int, a VecZnx, aCol int, scratch Scratch) {
	steps, krem := k/basek, k%basek
	carry, scratch := scratch.TakeInt64(res.N)
	tmp, _ := scratch.TakeInt64(res.N)
	limb := func(j int) []int64 {
		if krem == 0 {
			return a.At(aCol, j+steps)
		}
		z.Kernels.Lsh(krem, tmp, a.At(aCol, j+steps))
		return tmp
	}
	z.normalize(basek, res, resCol, a.Size-steps, limb, carry)
}

func (z ZnxOps) LshInplace(basek, k int, a VecZnx, aCol int, scratch Scratch) {
	steps := k / basek
	for j := range a.Size {
		if j+steps < a.Size {
			z.Kernels.Copy(a.At(aCol, j), a.At(aCol, j+steps))
		} else {
			z.Kernels.Zero(a.At(aCol, j))
		}
	}
	z.Lsh(basek, k%basek, a, aCol, a, aCol, scratch)
}

// RshInplace evaluates a = a * 2^-k, normalized. Bits shifted below the last
// limb are discarded.
func (z ZnxOps) RshInplace(basek, k int, a VecZnx, aCol int, scratch Scratch) {
	steps, krem := k/basek, k%basek
	for j := a.Size - 1; j >= 0; j-- {
		if j >= steps {
			z.Kernels.Copy(a.At(aCol, j), a.At(aCol, j-steps))
		} else {
			z.Kernels.Zero(a.At(aCol, j))
		}
	}
	if krem == 0 {
		return
	}
	carry, rest := scratch.TakeInt64(a.N)
	z.Kernels.Zero(carry)
	for j := steps; j < a.Size; j++ {
		z.Kernels.RshCarry(basek, krem, a.At(aCol, j), carry, a.At(aCol, j))
	}
	z.NormalizeInplace(basek, a, aCol, rest)
}
