package reim

import (
	"math"
	"unsafe"
)

// Kernels is the set of FFT64 kernels.
// Slices named res, a, b hold a single reim limb of length N.
type Kernels interface {
	Name() string

	// FFT evaluates in place the forward transform of the twisted vector x.
	FFT(t *Table, x []float64)
	// IFFT evaluates in place M times the inverse of [Kernels.FFT].
	IFFT(t *Table, x []float64)

	// FromZnx writes the transform of the integer polynomial a on res.
	FromZnx(t *Table, res []float64, a []int64)
	// ToZnx writes on res the integer polynomial whose transform is x,
	// rounded to the nearest integer. x is used as temporary.
	ToZnx(t *Table, res []int64, x []float64)

	Add(res, a, b []float64)
	AddInplace(res, a []float64)
	Sub(res, a, b []float64)
	SubABInplace(res, a []float64)
	SubBAInplace(res, a []float64)
	Negate(res, a []float64)

	// Mul evaluates the slot-wise product res = a * b.
	Mul(res, a, b []float64)
	// MulAdd evaluates res = res + a * b.
	MulAdd(res, a, b []float64)

	// VecMat evaluates, for every column c, out[c] = sum_r in[r] * mat[r][c]
	// on reim4 blocks: in is [rows][8], mat is [rows][cols][8] and out is [cols][8].
	VecMat(out, in, mat []float64, rows, cols int)
}

// twist packs a[j] + i*a[j+M] into slot j and multiplies it by exp(i*pi*j/N).
func twist(t *Table, res []float64, a []int64) {
	m := t.M
	for j := 0; j < m; j++ {
		xr, xi := float64(a[j]), float64(a[j+m])
		res[j] = xr*t.TwistRe[j] - xi*t.TwistIm[j]
		res[j+m] = xr*t.TwistIm[j] + xi*t.TwistRe[j]
	}
}

// untwist divides by M, multiplies slot j by exp(-i*pi*j/N) and rounds.
func untwist(t *Table, res []int64, x []float64) {
	m := t.M
	scale := 1 / float64(m)
	for j := 0; j < m; j++ {
		zr, zi := x[j]*scale, x[j+m]*scale
		res[j] = int64(math.Round(zr*t.TwistRe[j] + zi*t.TwistIm[j]))
		res[j+m] = int64(math.Round(zi*t.TwistRe[j] - zr*t.TwistIm[j]))
	}
}

// ReferenceKernels is the scalar implementation of [Kernels].
type ReferenceKernels struct{}

func (ReferenceKernels) Name() string { return "ref" }

// FFT is a radix-2 decimation in frequency transform with natural order
// input and bit-reversed order output.
func (ReferenceKernels) FFT(t *Table, x []float64) {
	m := t.M
	re, im := x[:m], x[m:2*m]
	for size := m; size >= 2; size >>= 1 {
		half := size >> 1
		stride := m / size
		for s := 0; s < m; s += size {
			for j := 0; j < half; j++ {
				wr, wi := t.OmegaRe[j*stride], t.OmegaIm[j*stride]
				ur, ui := re[s+j], im[s+j]
				vr, vi := re[s+j+half], im[s+j+half]
				re[s+j], im[s+j] = ur+vr, ui+vi
				dr, di := ur-vr, ui-vi
				re[s+j+half], im[s+j+half] = dr*wr-di*wi, dr*wi+di*wr
			}
		}
	}
}

// IFFT is a radix-2 decimation in time transform with bit-reversed order
// input and natural order output.
func (ReferenceKernels) IFFT(t *Table, x []float64) {
	m := t.M
	re, im := x[:m], x[m:2*m]
	for size := 2; size <= m; size <<= 1 {
		half := size >> 1
		stride := m / size
		for s := 0; s < m; s += size {
			for j := 0; j < half; j++ {
				wr, wi := t.OmegaRe[j*stride], -t.OmegaIm[j*stride]
				ur, ui := re[s+j], im[s+j]
				xr, xi := re[s+j+half], im[s+j+half]
				vr, vi := xr*wr-xi*wi, xr*wi+xi*wr
				re[s+j], im[s+j] = ur+vr, ui+vi
				re[s+j+half], im[s+j+half] = ur-vr, ui-vi
			}
		}
	}
}

func (k ReferenceKernels) FromZnx(t *Table, res []float64, a []int64) {
	twist(t, res, a)
	k.FFT(t, res)
}

func (k ReferenceKernels) ToZnx(t *Table, res []int64, x []float64) {
	k.IFFT(t, x)
	untwist(t, res, x)
}

func (ReferenceKernels) Add(res, a, b []float64) {
	for i := range res {
		res[i] = a[i] + b[i]
	}
}

func (ReferenceKernels) AddInplace(res, a []float64) {
	for i := range res {
		res[i] += a[i]
	}
}

func (ReferenceKernels) Sub(res, a, b []float64) {
	for i := range res {
		res[i] = a[i] - b[i]
	}
}

func (ReferenceKernels) SubABInplace(res, a []float64) {
	for i := range res {
		res[i] -= a[i]
	}
}

func (ReferenceKernels) SubBAInplace(res, a []float64) {
	for i := range res {
		res[i] = a[i] - res[i]
	}
}

func (ReferenceKernels) Negate(res, a []float64) {
	for i := range res {
		res[i] = -a[i]
	}
}

func (ReferenceKernels) Mul(res, a, b []float64) {
	m := len(res) >> 1
	for j := 0; j < m; j++ {
		ar, ai := a[j], a[j+m]
		br, bi := b[j], b[j+m]
		res[j], res[j+m] = ar*br-ai*bi, ar*bi+ai*br
	}
}

func (ReferenceKernels) MulAdd(res, a, b []float64) {
	m := len(res) >> 1
	for j := 0; j < m; j++ {
		ar, ai := a[j], a[j+m]
		br, bi := b[j], b[j+m]
		res[j] += ar*br - ai*bi
		res[j+m] += ar*bi + ai*br
	}
}

func (ReferenceKernels) VecMat(out, in, mat []float64, rows, cols int) {
	clear(out[:cols*8])
	for r := 0; r < rows; r++ {
		x := in[r*8 : r*8+8]
		for c := 0; c < cols; c++ {
			y := mat[(r*cols+c)*8 : (r*cols+c)*8+8]
			z := out[c*8 : c*8+8]
			for l := 0; l < BlockSize; l++ {
				z[l] += x[l]*y[l] - x[l+4]*y[l+4]
				z[l+4] += x[l]*y[l+4] + x[l+4]*y[l]
			}
		}
	}
}

// ExtractBlock copies the reim4 block blk of the limb x on dst[:8].
func ExtractBlock(dst []float64, blk int, x []float64) {
	m := len(x) >> 1
	copy(dst[:4], x[blk*4:blk*4+4])
	copy(dst[4:8], x[m+blk*4:m+blk*4+4])
}

// SaveBlock copies src[:8] on the reim4 block blk of the limb x.
func SaveBlock(x []float64, blk int, src []float64) {
	m := len(x) >> 1
	copy(x[blk*4:blk*4+4], src[:4])
	copy(x[m+blk*4:m+blk*4+4], src[4:8])
}

// AddBlock adds src[:8] to the reim4 block blk of the limb x.
func AddBlock(x []float64, blk int, src []float64) {
	m := len(x) >> 1
	/* #nosec G103 -- blocks are 4 aligned slots */
	re := (*[4]float64)(unsafe.Pointer(&x[blk*4]))
	/* #nosec G103 -- blocks are 4 aligned slots */
	im := (*[4]float64)(unsafe.Pointer(&x[m+blk*4]))
	re[0] += src[0]
	re[1] += src[1]
	re[2] += src[2]
	re[3] += src[3]
	im[0] += src[4]
	im[1] += src[5]
	im[2] += src[6]
	im[3] += src[7]
}
