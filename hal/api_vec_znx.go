package hal

import "fmt"

// NewVecZnx allocates a zeroed [VecZnx] of the ring degree of m.
func (m *Module) NewVecZnx(cols, size int) VecZnx {
	return NewVecZnx(m.n, cols, size)
}

// VecZnxAllocBytes returns the size in bytes of a [VecZnx] of the ring degree of m.
func (m *Module) VecZnxAllocBytes(cols, size int) int {
	return VecZnxAllocBytes(m.n, cols, size)
}

// NewScalarZnx allocates a zeroed [ScalarZnx] of the ring degree of m.
func (m *Module) NewScalarZnx(cols int) ScalarZnx {
	return NewScalarZnx(m.n, cols)
}

// NewMatZnx allocates a zeroed [MatZnx] of the ring degree of m.
func (m *Module) NewMatZnx(rows, colsIn, colsOut, size int) MatZnx {
	return NewMatZnx(m.n, rows, colsIn, colsOut, size)
}

func (m *Module) checkVecZnx(name string, v VecZnx, col int) {
	assertDegree(name, v.N, m.n)
	assertCol(name, col, v.Cols)
}

func (m *Module) checkDisjoint(name string, res VecZnx, resCol int, a VecZnx, aCol int) {
	if res.Size > 0 && a.Size > 0 {
		assertNoOverlap(name, res.Col(resCol), a.Col(aCol))
	}
}

// VecZnxAdd evaluates res = a + b.
// Limbs of res beyond the sizes of both a and b are zeroed.
func (m *Module) VecZnxAdd(res VecZnx, resCol int, a VecZnx, aCol int, b VecZnx, bCol int) {
	if checks {
		m.checkVecZnx("VecZnxAdd", res, resCol)
		m.checkVecZnx("VecZnxAdd", a, aCol)
		m.checkVecZnx("VecZnxAdd", b, bCol)
	}
	m.znx.Add(res, resCol, a, aCol, b, bCol)
}

// VecZnxAddInplace evaluates res = res + a.
func (m *Module) VecZnxAddInplace(res VecZnx, resCol int, a VecZnx, aCol int) {
	if checks {
		m.checkVecZnx("VecZnxAddInplace", res, resCol)
		m.checkVecZnx("VecZnxAddInplace", a, aCol)
	}
	m.znx.AddInplace(res, resCol, a, aCol)
}

// VecZnxSub evaluates res = a - b.
func (m *Module) VecZnxSub(res VecZnx, resCol int, a VecZnx, aCol int, b VecZnx, bCol int) {
	if checks {
		m.checkVecZnx("VecZnxSub", res, resCol)
		m.checkVecZnx("VecZnxSub", a, aCol)
		m.checkVecZnx("VecZnxSub", b, bCol)
	}
	m.znx.Sub(res, resCol, a, aCol, b, bCol)
}

// VecZnxSubABInplace evaluates res = res - a.
func (m *Module) VecZnxSubABInplace(res VecZnx, resCol int, a VecZnx, aCol int) {
	if checks {
		m.checkVecZnx("VecZnxSubABInplace", res, resCol)
		m.checkVecZnx("VecZnxSubABInplace", a, aCol)
	}
	m.znx.SubABInplace(res, resCol, a, aCol)
}

// VecZnxSubBAInplace evaluates res = a - res.
func (m *Module) VecZnxSubBAInplace(res VecZnx, resCol int, a VecZnx, aCol int) {
	if checks {
		m.checkVecZnx("VecZnxSubBAInplace", res, resCol)
		m.checkVecZnx("VecZnxSubBAInplace", a, aCol)
	}
	m.znx.SubBAInplace(res, resCol, a, aCol)
}

// VecZnxNegate evaluates res = -a.
func (m *Module) VecZnxNegate(res VecZnx, resCol int, a VecZnx, aCol int) {
	if checks {
		m.checkVecZnx("VecZnxNegate", res, resCol)
		m.checkVecZnx("VecZnxNegate", a, aCol)
	}
	m.znx.Negate(res, resCol, a, aCol)
}

// VecZnxNegateInplace evaluates a = -a.
func (m *Module) VecZnxNegateInplace(a VecZnx, aCol int) {
	if checks {
		m.checkVecZnx("VecZnxNegateInplace", a, aCol)
	}
	m.znx.NegateInplace(a, aCol)
}

// VecZnxCopy copies a on res.
func (m *Module) VecZnxCopy(res VecZnx, resCol int, a VecZnx, aCol int) {
	if checks {
		m.checkVecZnx("VecZnxCopy", res, resCol)
		m.checkVecZnx("VecZnxCopy", a, aCol)
	}
	m.znx.Copy(res, resCol, a, aCol)
}

// VecZnxZero sets the given column of res to zero.
func (m *Module) VecZnxZero(res VecZnx, resCol int) {
	if checks {
		m.checkVecZnx("VecZnxZero", res, resCol)
	}
	res.ZeroCol(resCol)
}

// VecZnxAddScalarInplace evaluates res[resLimb] = res[resLimb] + a.
func (m *Module) VecZnxAddScalarInplace(res VecZnx, resCol, resLimb int, a ScalarZnx, aCol int) {
	if checks {
		m.checkVecZnx("VecZnxAddScalarInplace", res, resCol)
		assertDegree("VecZnxAddScalarInplace", a.N, m.n)
		assertCol("VecZnxAddScalarInplace", aCol, a.Cols)
		if !(resLimb >= 0 && resLimb < res.Size) {
			panic(fmt.Errorf("VecZnxAddScalarInplace: invalid limb %d for size %d", resLimb, res.Size))
		}
	}
	m.znx.AddScalarInplace(res, resCol, resLimb, a, aCol)
}

// VecZnxSubScalarInplace evaluates res[resLimb] = res[resLimb] - a.
func (m *Module) VecZnxSubScalarInplace(res VecZnx, resCol, resLimb int, a ScalarZnx, aCol int) {
	if checks {
		m.checkVecZnx("VecZnxSubScalarInplace", res, resCol)
		assertDegree("VecZnxSubScalarInplace", a.N, m.n)
		assertCol("VecZnxSubScalarInplace", aCol, a.Cols)
		if !(resLimb >= 0 && resLimb < res.Size) {
			panic(fmt.Errorf("VecZnxSubScalarInplace: invalid limb %d for size %d", resLimb, res.Size))
		}
	}
	m.znx.SubScalarInplace(res, resCol, resLimb, a, aCol)
}

// VecZnxRotate evaluates res = X^p * a. res and a must not overlap.
func (m *Module) VecZnxRotate(p int64, res VecZnx, resCol int, a VecZnx, aCol int) {
	if checks {
		m.checkVecZnx("VecZnxRotate", res, resCol)
		m.checkVecZnx("VecZnxRotate", a, aCol)
		m.checkDisjoint("VecZnxRotate", res, resCol, a, aCol)
	}
	m.znx.Rotate(p, res, resCol, a, aCol)
}

// VecZnxRotateInplace evaluates a = X^p * a.
func (m *Module) VecZnxRotateInplace(p int64, a VecZnx, aCol int) {
	if checks {
		m.checkVecZnx("VecZnxRotateInplace", a, aCol)
	}
	m.znx.RotateInplace(p, a, aCol)
}

// VecZnxAutomorphism evaluates res(X) = a(X^p) for an odd p.
// res and a must not overlap.
func (m *Module) VecZnxAutomorphism(p int64, res VecZnx, resCol int, a VecZnx, aCol int) {
	if checks {
		m.checkVecZnx("VecZnxAutomorphism", res, resCol)
		m.checkVecZnx("VecZnxAutomorphism", a, aCol)
		m.checkDisjoint("VecZnxAutomorphism", res, resCol, a, aCol)
		if p&1 != 1 {
			panic(fmt.Errorf("VecZnxAutomorphism: p=%d must be odd", p))
		}
	}
	m.znx.Automorphism(p, res, resCol, a, aCol)
}

// VecZnxAutomorphismInplaceTmpBytes returns the scratch size of [Module.VecZnxAutomorphismInplace].
func (m *Module) VecZnxAutomorphismInplaceTmpBytes() int {
	return m.n * 8
}

// VecZnxAutomorphismInplace evaluates a(X) = a(X^p) for an odd p.
func (m *Module) VecZnxAutomorphismInplace(p int64, a VecZnx, aCol int, scratch Scratch) {
	if checks {
		m.checkVecZnx("VecZnxAutomorphismInplace", a, aCol)
		if p&1 != 1 {
			panic(fmt.Errorf("VecZnxAutomorphismInplace: p=%d must be odd", p))
		}
	}
	m.znx.AutomorphismInplace(p, a, aCol, scratch)
}

// VecZnxMulXpMinusOne evaluates res = (X^p - 1) * a. res and a must not overlap.
func (m *Module) VecZnxMulXpMinusOne(p int64, res VecZnx, resCol int, a VecZnx, aCol int) {
	if checks {
		m.checkVecZnx("VecZnxMulXpMinusOne", res, resCol)
		m.checkVecZnx("VecZnxMulXpMinusOne", a, aCol)
		m.checkDisjoint("VecZnxMulXpMinusOne", res, resCol, a, aCol)
	}
	m.znx.MulXpMinusOne(p, res, resCol, a, aCol)
}

// VecZnxMulXpMinusOneInplaceTmpBytes returns the scratch size of [Module.VecZnxMulXpMinusOneInplace].
func (m *Module) VecZnxMulXpMinusOneInplaceTmpBytes() int {
	return m.n * 8
}

// VecZnxMulXpMinusOneInplace evaluates a = (X^p - 1) * a.
func (m *Module) VecZnxMulXpMinusOneInplace(p int64, a VecZnx, aCol int, scratch Scratch) {
	if checks {
		m.checkVecZnx("VecZnxMulXpMinusOneInplace", a, aCol)
	}
	m.znx.MulXpMinusOneInplace(p, a, aCol, scratch)
}

// VecZnxSwitchDegree maps a onto res, whose ring degrees may differ from
// each other and from m: coefficients are sub-sampled when res.N < a.N and
// interleaved with zeros when res.N > a.N.
func (m *Module) VecZnxSwitchDegree(res VecZnx, resCol int, a VecZnx, aCol int) {
	if checks {
		assertCol("VecZnxSwitchDegree", resCol, res.Cols)
		assertCol("VecZnxSwitchDegree", aCol, a.Cols)
		if !(res.N%a.N == 0 || a.N%res.N == 0) {
			panic(fmt.Errorf("VecZnxSwitchDegree: degrees %d and %d are not multiples", res.N, a.N))
		}
		m.checkDisjoint("VecZnxSwitchDegree", res, resCol, a, aCol)
	}
	m.znx.SwitchDegree(res, resCol, a, aCol)
}

// VecZnxSplitTmpBytes returns the scratch size of [Module.VecZnxSplit].
func (m *Module) VecZnxSplitTmpBytes() int {
	return m.n * 8
}

// VecZnxSplit writes on res[i] the polynomial of degree N/len(res) made of
// the coefficients i + t*len(res) of a, so that a = sum_i X^i * res[i](X^len(res)).
func (m *Module) VecZnxSplit(res []VecZnx, resCol int, a VecZnx, aCol int, scratch Scratch) {
	if checks {
		m.checkVecZnx("VecZnxSplit", a, aCol)
		if !(len(res) > 0 && m.n%len(res) == 0) {
			panic(fmt.Errorf("VecZnxSplit: cannot split degree %d in %d parts", m.n, len(res)))
		}
		for i := range res {
			assertDegree("VecZnxSplit", res[i].N*len(res), m.n)
			assertCol("VecZnxSplit", resCol, res[i].Cols)
		}
	}
	m.znx.Split(res, resCol, a, aCol, scratch)
}

// VecZnxMergeTmpBytes returns the scratch size of [Module.VecZnxMerge].
func (m *Module) VecZnxMergeTmpBytes() int {
	return m.n * 8
}

// VecZnxMerge is the inverse of [Module.VecZnxSplit]:
// res = sum_i X^i * a[i](X^len(a)).
func (m *Module) VecZnxMerge(res VecZnx, resCol int, a []VecZnx, aCol int, scratch Scratch) {
	if checks {
		m.checkVecZnx("VecZnxMerge", res, resCol)
		if !(len(a) > 0 && m.n%len(a) == 0) {
			panic(fmt.Errorf("VecZnxMerge: cannot merge %d parts in degree %d", len(a), m.n))
		}
		for i := range a {
			assertDegree("VecZnxMerge", a[i].N*len(a), m.n)
			assertCol("VecZnxMerge", aCol, a[i].Cols)
		}
	}
	m.znx.Merge(res, resCol, a, aCol, scratch)
}

// VecZnxNormalizeTmpBytes returns the scratch size of [Module.VecZnxNormalize].
func (m *Module) VecZnxNormalizeTmpBytes() int {
	return m.n * 8
}

// VecZnxNormalize writes on res the base-2^basek normalization of a: every
// limb of res is a balanced digit in [-2^(basek-1), 2^(basek-1)). Limbs of a
// beyond res.Size only propagate their carry, the carry out of the most
// significant limb is discarded (the value is taken modulo 1).
func (m *Module) VecZnxNormalize(basek int, res VecZnx, resCol int, a VecZnx, aCol int, scratch Scratch) {
	if checks {
		m.checkVecZnx("VecZnxNormalize", res, resCol)
		m.checkVecZnx("VecZnxNormalize", a, aCol)
		assertBasek("VecZnxNormalize", basek)
	}
	m.znx.Normalize(basek, res, resCol, a, aCol, scratch)
}

// VecZnxNormalizeInplace normalizes a in place.
func (m *Module) VecZnxNormalizeInplace(basek int, a VecZnx, aCol int, scratch Scratch) {
	if checks {
		m.checkVecZnx("VecZnxNormalizeInplace", a, aCol)
		assertBasek("VecZnxNormalizeInplace", basek)
	}
	m.znx.NormalizeInplace(basek, a, aCol, scratch)
}

// VecZnxLshTmpBytes returns the scratch size of [Module.VecZnxLsh] and [Module.VecZnxLshInplace].
func (m *Module) VecZnxLshTmpBytes() int {
	return 2 * m.n * 8
}

// VecZnxLsh writes on res the normalization of a * 2^k mod 1.
func (m *Module) VecZnxLsh(basek, k int, res VecZnx, resCol int, a VecZnx, aCol int, scratch Scratch) {
	if checks {
		m.checkVecZnx("VecZnxLsh", res, resCol)
		m.checkVecZnx("VecZnxLsh", a, aCol)
		m.checkDisjoint("VecZnxLsh", res, resCol, a, aCol)
		assertBasek("VecZnxLsh", basek)
		if k < 0 {
			panic(fmt.Errorf("VecZnxLsh: invalid shift %d", k))
		}
	}
	m.znx.Lsh(basek, k, res, resCol, a, aCol, scratch)
}

// VecZnxLshInplace evaluates a = a * 2^k mod 1, normalized.
func (m *Module) VecZnxLshInplace(basek, k int, a VecZnx, aCol int, scratch Scratch) {
	if checks {
		m.checkVecZnx("VecZnxLshInplace", a, aCol)
		assertBasek("VecZnxLshInplace", basek)
		if k < 0 {
			panic(fmt.Errorf("VecZnxLshInplace: invalid shift %d", k))
		}
	}
	m.znx.LshInplace(basek, k, a, aCol, scratch)
}

// VecZnxRshTmpBytes returns the scratch size of [Module.VecZnxRsh].
func (m *Module) VecZnxRshTmpBytes() int {
	return 2 * m.n * 8
}

// VecZnxRsh evaluates a = a * 2^-k, normalized. The bits shifted
// below the last limb are discarded.
func (m *Module) VecZnxRsh(basek, k int, a VecZnx, aCol int, scratch Scratch) {
	if checks {
		m.checkVecZnx("VecZnxRsh", a, aCol)
		assertBasek("VecZnxRsh", basek)
		if k < 0 {
			panic(fmt.Errorf("VecZnxRsh: invalid shift %d", k))
		}
	}
	m.znx.RshInplace(basek, k, a, aCol, scratch)
}

func assertBasek(name string, basek int) {
	if !(basek > 0 && basek < 64) {
		panic(fmt.Errorf("%s: invalid basek %d", name, basek))
	}
}
