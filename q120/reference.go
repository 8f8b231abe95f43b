package q120

// ReferenceKernels is the scalar implementation of [Kernels]:
// every kernel loops over the primes one at a time.
type ReferenceKernels struct{}

func (ReferenceKernels) Name() string { return "ref" }

func (ReferenceKernels) NTT(t *Table, x []uint64) {

	N := t.N

	for k, Q := range Primes {

		MRedConstant := t.MRedConstant[k]
		fourQ := 4 * Q
		twoQ := 2 * Q

		h := N >> 1
		F := t.RootsForward[1][k]

		for j := 0; j < h; j++ {
			x[4*j+k], x[4*(j+h)+k] = butterfly(x[4*j+k], x[4*(j+h)+k], F, twoQ, fourQ, Q, MRedConstant)
		}

		for m := 2; m < N; m <<= 1 {

			h >>= 1

			for i := 0; i < m; i++ {

				j1 := (i * h) << 1

				F = t.RootsForward[m+i][k]

				for jx, jy := j1, j1+h; jx < j1+h; jx, jy = jx+1, jy+1 {
					x[4*jx+k], x[4*jy+k] = butterfly(x[4*jx+k], x[4*jy+k], F, twoQ, fourQ, Q, MRedConstant)
				}
			}
		}

		brc := t.BRedConstant[k]
		for j := 0; j < N; j++ {
			x[4*j+k] = BRedAdd(x[4*j+k], Q, brc)
		}
	}
}

func (ReferenceKernels) INTT(t *Table, x []uint64) {

	N := t.N

	for k, Q := range Primes {

		MRedConstant := t.MRedConstant[k]
		fourQ := 4 * Q
		twoQ := 2 * Q

		gap := 1

		for m := N; m > 1; m >>= 1 {

			h := m >> 1

			for i := 0; i < h; i++ {

				j1 := i * gap << 1

				F := t.RootsBackward[h+i][k]

				for jx, jy := j1, j1+gap; jx < j1+gap; jx, jy = jx+1, jy+1 {
					x[4*jx+k], x[4*jy+k] = invbutterfly(x[4*jx+k], x[4*jy+k], F, twoQ, fourQ, Q, MRedConstant)
				}
			}

			gap <<= 1
		}

		NInv := t.NInv[k]
		for j := 0; j < N; j++ {
			x[4*j+k] = MRed(x[4*j+k], NInv, Q, MRedConstant)
		}
	}
}

func (k ReferenceKernels) FromZnx(t *Table, res []uint64, a []int64) {
	for j := range a {
		for i, q := range Primes {
			res[4*j+i] = reduceI64(a[j], q)
		}
	}
	k.NTT(t, res)
}

func (ReferenceKernels) Add(res, a, b []uint64) {
	for j := 0; j < len(res); j += 4 {
		for i, q := range Primes {
			res[j+i] = CRed(a[j+i]+b[j+i], q)
		}
	}
}

func (k ReferenceKernels) AddInplace(res, a []uint64) {
	k.Add(res, res, a)
}

func (ReferenceKernels) Sub(res, a, b []uint64) {
	for j := 0; j < len(res); j += 4 {
		for i, q := range Primes {
			res[j+i] = CRed(a[j+i]+q-b[j+i], q)
		}
	}
}

func (k ReferenceKernels) SubABInplace(res, a []uint64) {
	k.Sub(res, res, a)
}

func (k ReferenceKernels) SubBAInplace(res, a []uint64) {
	k.Sub(res, a, res)
}

func (ReferenceKernels) Negate(res, a []uint64) {
	for j := 0; j < len(res); j += 4 {
		for i, q := range Primes {
			res[j+i] = CRed(q-a[j+i], q)
		}
	}
}

func (ReferenceKernels) MForm(t *Table, res, a []uint64) {
	for j := 0; j < len(res); j += 4 {
		for i, q := range Primes {
			res[j+i] = MForm(a[j+i], q, t.BRedConstant[i])
		}
	}
}

func (ReferenceKernels) Mul(t *Table, res, a, bMont []uint64) {
	for j := 0; j < len(res); j += 4 {
		for i, q := range Primes {
			res[j+i] = MRed(a[j+i], bMont[j+i], q, t.MRedConstant[i])
		}
	}
}

func (ReferenceKernels) MulAdd(t *Table, res, a, bMont []uint64) {
	for j := 0; j < len(res); j += 4 {
		for i, q := range Primes {
			res[j+i] = CRed(res[j+i]+MRed(a[j+i], bMont[j+i], q, t.MRedConstant[i]), q)
		}
	}
}

func (ReferenceKernels) VecMat(meta VecMatMeta, t *Table, out, in, mat []uint64, rows, cols int) {
	mask := uint64(1)<<meta.H - 1
	for c := 0; c < cols; c++ {
		for i, q := range Primes {
			var accLo, accHi uint64
			for r := 0; r < rows; r++ {
				p := in[4*r+i] * mat[4*(r*cols+c)+i]
				accLo += p & mask
				accHi += p >> meta.H
			}
			brc := t.BRedConstant[i]
			lo := BRedAdd(accLo, q, brc)
			hi := MRed(BRedAdd(accHi, q, brc), meta.Pow2H[i], q, t.MRedConstant[i])
			out[4*c+i] = CRed(lo+hi, q)
		}
	}
}
