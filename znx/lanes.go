package znx

import (
	"unsafe"
)

// LanesKernels is the lane packed implementation of [Kernels]: coefficients
// are processed by blocks of 8 (two 256-bit registers of i64), followed by
// a scalar tail.
type LanesKernels struct{}

func (LanesKernels) Name() string { return "lanes" }

func (LanesKernels) Zero(res []int64) {
	clear(res)
}

func (LanesKernels) Copy(res, a []int64) {
	copy(res, a)
}

func (LanesKernels) Add(res, a, b []int64) {

	N := len(res)

	for j := 0; j < N-(N&7); j = j + 8 {

		/* #nosec G103 -- iteration number is ensured to be a multiple of 8*/
		x := (*[8]int64)(unsafe.Pointer(&a[j]))
		/* #nosec G103 -- iteration number is ensured to be a multiple of 8*/
		y := (*[8]int64)(unsafe.Pointer(&b[j]))
		/* #nosec G103 -- iteration number is ensured to be a multiple of 8*/
		z := (*[8]int64)(unsafe.Pointer(&res[j]))

		z[0] = x[0] + y[0]
		z[1] = x[1] + y[1]
		z[2] = x[2] + y[2]
		z[3] = x[3] + y[3]
		z[4] = x[4] + y[4]
		z[5] = x[5] + y[5]
		z[6] = x[6] + y[6]
		z[7] = x[7] + y[7]
	}

	for i := N - (N & 7); i < N; i++ {
		res[i] = a[i] + b[i]
	}
}

func (k LanesKernels) AddInplace(res, a []int64) {
	k.Add(res, res, a)
}

func (LanesKernels) Sub(res, a, b []int64) {

	N := len(res)

	for j := 0; j < N-(N&7); j = j + 8 {

		/* #nosec G103 -- iteration number is ensured to be a multiple of 8*/
		x := (*[8]int64)(unsafe.Pointer(&a[j]))
		/* #nosec G103 -- iteration number is ensured to be a multiple of 8*/
		y := (*[8]int64)(unsafe.Pointer(&b[j]))
		/* #nosec G103 -- iteration number is ensured to be a multiple of 8*/
		z := (*[8]int64)(unsafe.Pointer(&res[j]))

		z[0] = x[0] - y[0]
		z[1] = x[1] - y[1]
		z[2] = x[2] - y[2]
		z[3] = x[3] - y[3]
		z[4] = x[4] - y[4]
		z[5] = x[5] - y[5]
		z[6] = x[6] - y[6]
		z[7] = x[7] - y[7]
	}

	for i := N - (N & 7); i < N; i++ {
		res[i] = a[i] - b[i]
	}
}

func (k LanesKernels) SubABInplace(res, a []int64) {
	k.Sub(res, res, a)
}

func (k LanesKernels) SubBAInplace(res, a []int64) {
	k.Sub(res, a, res)
}

func (LanesKernels) Negate(res, a []int64) {

	N := len(res)

	for j := 0; j < N-(N&7); j = j + 8 {

		/* #nosec G103 -- iteration number is ensured to be a multiple of 8*/
		x := (*[8]int64)(unsafe.Pointer(&a[j]))
		/* #nosec G103 -- iteration number is ensured to be a multiple of 8*/
		z := (*[8]int64)(unsafe.Pointer(&res[j]))

		z[0] = -x[0]
		z[1] = -x[1]
		z[2] = -x[2]
		z[3] = -x[3]
		z[4] = -x[4]
		z[5] = -x[5]
		z[6] = -x[6]
		z[7] = -x[7]
	}

	for i := N - (N & 7); i < N; i++ {
		res[i] = -a[i]
	}
}

func (k LanesKernels) NegateInplace(res []int64) {
	k.Negate(res, res)
}

func (LanesKernels) Lsh(k int, res, a []int64) {

	N := len(res)

	for j := 0; j < N-(N&7); j = j + 8 {

		/* #nosec G103 -- iteration number is ensured to be a multiple of 8*/
		x := (*[8]int64)(unsafe.Pointer(&a[j]))
		/* #nosec G103 -- iteration number is ensured to be a multiple of 8*/
		z := (*[8]int64)(unsafe.Pointer(&res[j]))

		z[0] = x[0] << k
		z[1] = x[1] << k
		z[2] = x[2] << k
		z[3] = x[3] << k
		z[4] = x[4] << k
		z[5] = x[5] << k
		z[6] = x[6] << k
		z[7] = x[7] << k
	}

	for i := N - (N & 7); i < N; i++ {
		res[i] = a[i] << k
	}
}

func (LanesKernels) RshCarry(basek, k int, res, carry, a []int64) {

	N := len(res)
	s := basek - k

	for j := 0; j < N-(N&7); j = j + 8 {

		/* #nosec G103 -- iteration number is ensured to be a multiple of 8*/
		x := (*[8]int64)(unsafe.Pointer(&a[j]))
		/* #nosec G103 -- iteration number is ensured to be a multiple of 8*/
		c := (*[8]int64)(unsafe.Pointer(&carry[j]))
		/* #nosec G103 -- iteration number is ensured to be a multiple of 8*/
		z := (*[8]int64)(unsafe.Pointer(&res[j]))

		var hi [8]int64
		for w := 0; w < 8; w++ {
			hi[w] = x[w] >> k
		}

		var lo [8]int64
		for w := 0; w < 8; w++ {
			lo[w] = x[w] - hi[w]<<k
		}

		for w := 0; w < 8; w++ {
			z[w] = hi[w] + c[w]
			c[w] = lo[w] << s
		}
	}

	for i := N - (N & 7); i < N; i++ {
		hi := a[i] >> k
		lo := a[i] - hi<<k
		res[i] = hi + carry[i]
		carry[i] = lo << s
	}
}

// digits8 writes the balanced digits of x on d and the carries on c.
func digits8(basek int, x, d, c *[8]int64) {
	s := 64 - basek
	d0 := (x[0] << s) >> s
	d1 := (x[1] << s) >> s
	d2 := (x[2] << s) >> s
	d3 := (x[3] << s) >> s
	d4 := (x[4] << s) >> s
	d5 := (x[5] << s) >> s
	d6 := (x[6] << s) >> s
	d7 := (x[7] << s) >> s
	c[0] = (x[0] - d0) >> basek
	c[1] = (x[1] - d1) >> basek
	c[2] = (x[2] - d2) >> basek
	c[3] = (x[3] - d3) >> basek
	c[4] = (x[4] - d4) >> basek
	c[5] = (x[5] - d5) >> basek
	c[6] = (x[6] - d6) >> basek
	c[7] = (x[7] - d7) >> basek
	d[0], d[1], d[2], d[3], d[4], d[5], d[6], d[7] = d0, d1, d2, d3, d4, d5, d6, d7
}

func (LanesKernels) NormalizeBeg(basek int, res, carry, a []int64) {

	N := len(res)

	for j := 0; j < N-(N&7); j = j + 8 {
		/* #nosec G103 -- iteration number is ensured to be a multiple of 8*/
		x := *(*[8]int64)(unsafe.Pointer(&a[j]))
		/* #nosec G103 -- iteration number is ensured to be a multiple of 8*/
		digits8(basek, &x, (*[8]int64)(unsafe.Pointer(&res[j])), (*[8]int64)(unsafe.Pointer(&carry[j])))
	}

	for i := N - (N & 7); i < N; i++ {
		digit := Digit(basek, a[i])
		carry[i] = Carry(basek, a[i], digit)
		res[i] = digit
	}
}

func (LanesKernels) NormalizeBegCarryOnly(basek int, carry, a []int64) {

	N := len(carry)

	var d [8]int64
	for j := 0; j < N-(N&7); j = j + 8 {
		/* #nosec G103 -- iteration number is ensured to be a multiple of 8*/
		x := *(*[8]int64)(unsafe.Pointer(&a[j]))
		/* #nosec G103 -- iteration number is ensured to be a multiple of 8*/
		digits8(basek, &x, &d, (*[8]int64)(unsafe.Pointer(&carry[j])))
	}

	for i := N - (N & 7); i < N; i++ {
		carry[i] = Carry(basek, a[i], Digit(basek, a[i]))
	}
}

// add8 returns x + y.
func add8(x, y *[8]int64) (z [8]int64) {
	z[0] = x[0] + y[0]
	z[1] = x[1] + y[1]
	z[2] = x[2] + y[2]
	z[3] = x[3] + y[3]
	z[4] = x[4] + y[4]
	z[5] = x[5] + y[5]
	z[6] = x[6] + y[6]
	z[7] = x[7] + y[7]
	return
}

func (LanesKernels) NormalizeMid(basek int, res, carry, a []int64) {

	N := len(res)

	for j := 0; j < N-(N&7); j = j + 8 {
		/* #nosec G103 -- iteration number is ensured to be a multiple of 8*/
		c := (*[8]int64)(unsafe.Pointer(&carry[j]))
		/* #nosec G103 -- iteration number is ensured to be a multiple of 8*/
		x := add8((*[8]int64)(unsafe.Pointer(&a[j])), c)
		/* #nosec G103 -- iteration number is ensured to be a multiple of 8*/
		digits8(basek, &x, (*[8]int64)(unsafe.Pointer(&res[j])), c)
	}

	for i := N - (N & 7); i < N; i++ {
		x := a[i] + carry[i]
		digit := Digit(basek, x)
		carry[i] = Carry(basek, x, digit)
		res[i] = digit
	}
}

func (LanesKernels) NormalizeMidCarryOnly(basek int, carry, a []int64) {

	N := len(carry)

	var d [8]int64
	for j := 0; j < N-(N&7); j = j + 8 {
		/* #nosec G103 -- iteration number is ensured to be a multiple of 8*/
		c := (*[8]int64)(unsafe.Pointer(&carry[j]))
		/* #nosec G103 -- iteration number is ensured to be a multiple of 8*/
		x := add8((*[8]int64)(unsafe.Pointer(&a[j])), c)
		digits8(basek, &x, &d, c)
	}

	for i := N - (N & 7); i < N; i++ {
		x := a[i] + carry[i]
		carry[i] = Carry(basek, x, Digit(basek, x))
	}
}

func (LanesKernels) NormalizeEnd(basek int, res, carry, a []int64) {

	N := len(res)
	s := 64 - basek

	for j := 0; j < N-(N&7); j = j + 8 {
		/* #nosec G103 -- iteration number is ensured to be a multiple of 8*/
		x := add8((*[8]int64)(unsafe.Pointer(&a[j])), (*[8]int64)(unsafe.Pointer(&carry[j])))
		/* #nosec G103 -- iteration number is ensured to be a multiple of 8*/
		z := (*[8]int64)(unsafe.Pointer(&res[j]))
		z[0] = (x[0] << s) >> s
		z[1] = (x[1] << s) >> s
		z[2] = (x[2] << s) >> s
		z[3] = (x[3] << s) >> s
		z[4] = (x[4] << s) >> s
		z[5] = (x[5] << s) >> s
		z[6] = (x[6] << s) >> s
		z[7] = (x[7] << s) >> s
	}

	for i := N - (N & 7); i < N; i++ {
		res[i] = Digit(basek, a[i]+carry[i])
	}
}

// Rotate evaluates X^p * a as two block copies, one of them negated.
func (k LanesKernels) Rotate(p int64, res, a []int64) {
	n := len(a)
	pp := ModTwoN(p, n)
	if pp < n {
		copy(res[pp:], a[:n-pp])
		k.Negate(res[:pp], a[n-pp:])
	} else {
		pp -= n
		k.Negate(res[pp:], a[:n-pp])
		copy(res[:pp], a[n-pp:])
	}
}

func (k LanesKernels) RotateInplace(p int64, res []int64) {
	n := len(res)
	pp := ModTwoN(p, n)
	if pp >= n {
		k.NegateInplace(res)
		pp -= n
	}
	if pp == 0 {
		return
	}
	reverse(res)
	reverse(res[:pp])
	reverse(res[pp:])
	k.NegateInplace(res[:pp])
}

func (k LanesKernels) MulXpMinusOne(p int64, res, a []int64) {
	k.Rotate(p, res, a)
	k.SubABInplace(res, a)
}

// Automorphism evaluates a(X^p) in gather form: each output coefficient j
// reads a[j * p^-1 mod 2N] with a sign given by the high bit of the index.
func (LanesKernels) Automorphism(p int64, res, a []int64) {

	N := len(res)
	pinv := AutomorphismInverse(p, N)
	mask := 2*N - 1

	for j := 0; j < N-(N&7); j = j + 8 {

		/* #nosec G103 -- iteration number is ensured to be a multiple of 8*/
		z := (*[8]int64)(unsafe.Pointer(&res[j]))

		for w := 0; w < 8; w++ {
			if i := ((j + w) * pinv) & mask; i < N {
				z[w] = a[i]
			} else {
				z[w] = -a[i-N]
			}
		}
	}

	for j := N - (N & 7); j < N; j++ {
		if i := (j * pinv) & mask; i < N {
			res[j] = a[i]
		} else {
			res[j] = -a[i-N]
		}
	}
}

func (LanesKernels) SwitchDegree(res, a []int64) {
	switchDegree(res, a)
}
