package q120

import (
	"unsafe"
)

// LanesKernels is the lane packed implementation of [Kernels]: the four
// residues of a coefficient (one 256-bit register) go through each
// butterfly together.
type LanesKernels struct{}

func (LanesKernels) Name() string { return "lanes" }

// at returns the 4 residues of coefficient j.
func at(x []uint64, j int) *[4]uint64 {
	/* #nosec G103 -- the q120 layout stores 4 residues per coefficient */
	return (*[4]uint64)(unsafe.Pointer(&x[4*j]))
}

type lanesConstants struct {
	Q, twoQ, fourQ, mrc [4]uint64
}

func newLanesConstants(t *Table) (c lanesConstants) {
	for k, q := range Primes {
		c.Q[k] = q
		c.twoQ[k] = 2 * q
		c.fourQ[k] = 4 * q
		c.mrc[k] = t.MRedConstant[k]
	}
	return
}

func (c *lanesConstants) butterfly4(u, v *[4]uint64, F *[4]uint64) {
	u[0], v[0] = butterfly(u[0], v[0], F[0], c.twoQ[0], c.fourQ[0], c.Q[0], c.mrc[0])
	u[1], v[1] = butterfly(u[1], v[1], F[1], c.twoQ[1], c.fourQ[1], c.Q[1], c.mrc[1])
	u[2], v[2] = butterfly(u[2], v[2], F[2], c.twoQ[2], c.fourQ[2], c.Q[2], c.mrc[2])
	u[3], v[3] = butterfly(u[3], v[3], F[3], c.twoQ[3], c.fourQ[3], c.Q[3], c.mrc[3])
}

func (c *lanesConstants) invbutterfly4(u, v *[4]uint64, F *[4]uint64) {
	u[0], v[0] = invbutterfly(u[0], v[0], F[0], c.twoQ[0], c.fourQ[0], c.Q[0], c.mrc[0])
	u[1], v[1] = invbutterfly(u[1], v[1], F[1], c.twoQ[1], c.fourQ[1], c.Q[1], c.mrc[1])
	u[2], v[2] = invbutterfly(u[2], v[2], F[2], c.twoQ[2], c.fourQ[2], c.Q[2], c.mrc[2])
	u[3], v[3] = invbutterfly(u[3], v[3], F[3], c.twoQ[3], c.fourQ[3], c.Q[3], c.mrc[3])
}

func (LanesKernels) NTT(t *Table, x []uint64) {

	N := t.N
	c := newLanesConstants(t)

	h := N >> 1
	F := &t.RootsForward[1]

	for j := 0; j < h; j++ {
		c.butterfly4(at(x, j), at(x, j+h), F)
	}

	for m := 2; m < N; m <<= 1 {

		h >>= 1

		for i := 0; i < m; i++ {

			j1 := (i * h) << 1

			F = &t.RootsForward[m+i]

			for jx := j1; jx < j1+h; jx++ {
				c.butterfly4(at(x, jx), at(x, jx+h), F)
			}
		}
	}

	for j := 0; j < N; j++ {
		y := at(x, j)
		y[0] = BRedAdd(y[0], c.Q[0], t.BRedConstant[0])
		y[1] = BRedAdd(y[1], c.Q[1], t.BRedConstant[1])
		y[2] = BRedAdd(y[2], c.Q[2], t.BRedConstant[2])
		y[3] = BRedAdd(y[3], c.Q[3], t.BRedConstant[3])
	}
}

func (LanesKernels) INTT(t *Table, x []uint64) {

	N := t.N
	c := newLanesConstants(t)

	gap := 1

	for m := N; m > 1; m >>= 1 {

		h := m >> 1

		for i := 0; i < h; i++ {

			j1 := i * gap << 1

			F := &t.RootsBackward[h+i]

			for jx := j1; jx < j1+gap; jx++ {
				c.invbutterfly4(at(x, jx), at(x, jx+gap), F)
			}
		}

		gap <<= 1
	}

	for j := 0; j < N; j++ {
		y := at(x, j)
		y[0] = MRed(y[0], t.NInv[0], c.Q[0], c.mrc[0])
		y[1] = MRed(y[1], t.NInv[1], c.Q[1], c.mrc[1])
		y[2] = MRed(y[2], t.NInv[2], c.Q[2], c.mrc[2])
		y[3] = MRed(y[3], t.NInv[3], c.Q[3], c.mrc[3])
	}
}

func (k LanesKernels) FromZnx(t *Table, res []uint64, a []int64) {
	for j, v := range a {
		y := at(res, j)
		y[0] = reduceI64(v, Primes[0])
		y[1] = reduceI64(v, Primes[1])
		y[2] = reduceI64(v, Primes[2])
		y[3] = reduceI64(v, Primes[3])
	}
	k.NTT(t, res)
}

func (LanesKernels) Add(res, a, b []uint64) {
	for j := 0; j < len(res)>>2; j++ {
		x, y, z := at(a, j), at(b, j), at(res, j)
		z[0] = CRed(x[0]+y[0], Primes[0])
		z[1] = CRed(x[1]+y[1], Primes[1])
		z[2] = CRed(x[2]+y[2], Primes[2])
		z[3] = CRed(x[3]+y[3], Primes[3])
	}
}

func (k LanesKernels) AddInplace(res, a []uint64) {
	k.Add(res, res, a)
}

func (LanesKernels) Sub(res, a, b []uint64) {
	for j := 0; j < len(res)>>2; j++ {
		x, y, z := at(a, j), at(b, j), at(res, j)
		z[0] = CRed(x[0]+Primes[0]-y[0], Primes[0])
		z[1] = CRed(x[1]+Primes[1]-y[1], Primes[1])
		z[2] = CRed(x[2]+Primes[2]-y[2], Primes[2])
		z[3] = CRed(x[3]+Primes[3]-y[3], Primes[3])
	}
}

func (k LanesKernels) SubABInplace(res, a []uint64) {
	k.Sub(res, res, a)
}

func (k LanesKernels) SubBAInplace(res, a []uint64) {
	k.Sub(res, a, res)
}

func (LanesKernels) Negate(res, a []uint64) {
	for j := 0; j < len(res)>>2; j++ {
		x, z := at(a, j), at(res, j)
		z[0] = CRed(Primes[0]-x[0], Primes[0])
		z[1] = CRed(Primes[1]-x[1], Primes[1])
		z[2] = CRed(Primes[2]-x[2], Primes[2])
		z[3] = CRed(Primes[3]-x[3], Primes[3])
	}
}

func (LanesKernels) MForm(t *Table, res, a []uint64) {
	for j := 0; j < len(res)>>2; j++ {
		x, z := at(a, j), at(res, j)
		z[0] = MForm(x[0], Primes[0], t.BRedConstant[0])
		z[1] = MForm(x[1], Primes[1], t.BRedConstant[1])
		z[2] = MForm(x[2], Primes[2], t.BRedConstant[2])
		z[3] = MForm(x[3], Primes[3], t.BRedConstant[3])
	}
}

func (LanesKernels) Mul(t *Table, res, a, bMont []uint64) {
	mrc := &t.MRedConstant
	for j := 0; j < len(res)>>2; j++ {
		x, y, z := at(a, j), at(bMont, j), at(res, j)
		z[0] = MRed(x[0], y[0], Primes[0], mrc[0])
		z[1] = MRed(x[1], y[1], Primes[1], mrc[1])
		z[2] = MRed(x[2], y[2], Primes[2], mrc[2])
		z[3] = MRed(x[3], y[3], Primes[3], mrc[3])
	}
}

func (LanesKernels) MulAdd(t *Table, res, a, bMont []uint64) {
	mrc := &t.MRedConstant
	for j := 0; j < len(res)>>2; j++ {
		x, y, z := at(a, j), at(bMont, j), at(res, j)
		z[0] = CRed(z[0]+MRed(x[0], y[0], Primes[0], mrc[0]), Primes[0])
		z[1] = CRed(z[1]+MRed(x[1], y[1], Primes[1], mrc[1]), Primes[1])
		z[2] = CRed(z[2]+MRed(x[2], y[2], Primes[2], mrc[2]), Primes[2])
		z[3] = CRed(z[3]+MRed(x[3], y[3], Primes[3], mrc[3]), Primes[3])
	}
}

// VecMat accumulates the four residues of two columns at a time.
func (LanesKernels) VecMat(meta VecMatMeta, t *Table, out, in, mat []uint64, rows, cols int) {

	mask := uint64(1)<<meta.H - 1
	H := meta.H

	reduce := func(z *[4]uint64, lo, hi *[4]uint64) {
		for i, q := range Primes {
			brc := t.BRedConstant[i]
			l := BRedAdd(lo[i], q, brc)
			h := MRed(BRedAdd(hi[i], q, brc), meta.Pow2H[i], q, t.MRedConstant[i])
			z[i] = CRed(l+h, q)
		}
	}

	c := 0
	for ; c+1 < cols; c += 2 {
		var lo0, hi0, lo1, hi1 [4]uint64
		for r := 0; r < rows; r++ {
			x := at(in, r)
			y0 := at(mat, r*cols+c)
			y1 := at(mat, r*cols+c+1)
			for i := 0; i < 4; i++ {
				p0 := x[i] * y0[i]
				p1 := x[i] * y1[i]
				lo0[i] += p0 & mask
				hi0[i] += p0 >> H
				lo1[i] += p1 & mask
				hi1[i] += p1 >> H
			}
		}
		reduce(at(out, c), &lo0, &hi0)
		reduce(at(out, c+1), &lo1, &hi1)
	}

	if c < cols {
		var lo, hi [4]uint64
		for r := 0; r < rows; r++ {
			x := at(in, r)
			y := at(mat, r*cols+c)
			for i := 0; i < 4; i++ {
				p := x[i] * y[i]
				lo[i] += p & mask
				hi[i] += p >> H
			}
		}
		reduce(at(out, c), &lo, &hi)
	}
}
