package znx

// ReferenceKernels is the portable scalar implementation of [Kernels].
type ReferenceKernels struct{}

func (ReferenceKernels) Name() string { return "ref" }

func (ReferenceKernels) Zero(res []int64) {
	clear(res)
}

func (ReferenceKernels) Copy(res, a []int64) {
	copy(res, a)
}

func (ReferenceKernels) Add(res, a, b []int64) {
	for i := range res {
		res[i] = a[i] + b[i]
	}
}

func (ReferenceKernels) AddInplace(res, a []int64) {
	for i := range res {
		res[i] += a[i]
	}
}

func (ReferenceKernels) Sub(res, a, b []int64) {
	for i := range res {
		res[i] = a[i] - b[i]
	}
}

func (ReferenceKernels) SubABInplace(res, a []int64) {
	for i := range res {
		res[i] -= a[i]
	}
}

func (ReferenceKernels) SubBAInplace(res, a []int64) {
	for i := range res {
		res[i] = a[i] - res[i]
	}
}

func (ReferenceKernels) Negate(res, a []int64) {
	for i := range res {
		res[i] = -a[i]
	}
}

func (ReferenceKernels) NegateInplace(res []int64) {
	for i := range res {
		res[i] = -res[i]
	}
}

func (ReferenceKernels) Lsh(k int, res, a []int64) {
	for i := range res {
		res[i] = a[i] << k
	}
}

func (ReferenceKernels) RshCarry(basek, k int, res, carry, a []int64) {
	for i := range res {
		hi := a[i] >> k
		lo := a[i] - hi<<k
		res[i] = hi + carry[i]
		carry[i] = lo << (basek - k)
	}
}

func (ReferenceKernels) NormalizeBeg(basek int, res, carry, a []int64) {
	for i := range res {
		digit := Digit(basek, a[i])
		carry[i] = Carry(basek, a[i], digit)
		res[i] = digit
	}
}

func (ReferenceKernels) NormalizeBegCarryOnly(basek int, carry, a []int64) {
	for i := range carry {
		carry[i] = Carry(basek, a[i], Digit(basek, a[i]))
	}
}

func (ReferenceKernels) NormalizeMid(basek int, res, carry, a []int64) {
	for i := range res {
		x := a[i] + carry[i]
		digit := Digit(basek, x)
		carry[i] = Carry(basek, x, digit)
		res[i] = digit
	}
}

func (ReferenceKernels) NormalizeMidCarryOnly(basek int, carry, a []int64) {
	for i := range carry {
		x := a[i] + carry[i]
		carry[i] = Carry(basek, x, Digit(basek, x))
	}
}

func (ReferenceKernels) NormalizeEnd(basek int, res, carry, a []int64) {
	for i := range res {
		res[i] = Digit(basek, a[i]+carry[i])
	}
}

func (ReferenceKernels) Rotate(p int64, res, a []int64) {
	rotate(p, res, a, negI64)
}

func (ReferenceKernels) RotateInplace(p int64, res []int64) {
	rotateInplace(p, res, negI64)
}

func (k ReferenceKernels) MulXpMinusOne(p int64, res, a []int64) {
	k.Rotate(p, res, a)
	k.SubABInplace(res, a)
}

func (ReferenceKernels) Automorphism(p int64, res, a []int64) {
	automorphism(p, res, a, negI64)
}

func (ReferenceKernels) SwitchDegree(res, a []int64) {
	switchDegree(res, a)
}
