package reim

import (
	"unsafe"
)

// LanesKernels is the reim4 implementation of [Kernels]: butterflies and
// slot-wise products are evaluated on blocks of 4 complex slots (one
// 256-bit register of real parts and one of imaginary parts).
type LanesKernels struct{}

func (LanesKernels) Name() string { return "lanes" }

func (LanesKernels) FFT(t *Table, x []float64) {
	m := t.M
	re, im := x[:m], x[m:2*m]
	for size := m; size >= 2; size >>= 1 {
		half := size >> 1
		stride := m / size
		if half < 4 {
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
			continue
		}
		for s := 0; s < m; s += size {
			for j := 0; j < half; j += 4 {

				/* #nosec G103 -- half is a multiple of 4 */
				ur := (*[4]float64)(unsafe.Pointer(&re[s+j]))
				/* #nosec G103 -- half is a multiple of 4 */
				ui := (*[4]float64)(unsafe.Pointer(&im[s+j]))
				/* #nosec G103 -- half is a multiple of 4 */
				vr := (*[4]float64)(unsafe.Pointer(&re[s+j+half]))
				/* #nosec G103 -- half is a multiple of 4 */
				vi := (*[4]float64)(unsafe.Pointer(&im[s+j+half]))

				var wr, wi [4]float64
				for l := 0; l < 4; l++ {
					wr[l], wi[l] = t.OmegaRe[(j+l)*stride], t.OmegaIm[(j+l)*stride]
				}

				var dr, di [4]float64
				for l := 0; l < 4; l++ {
					dr[l], di[l] = ur[l]-vr[l], ui[l]-vi[l]
					ur[l], ui[l] = ur[l]+vr[l], ui[l]+vi[l]
				}

				for l := 0; l < 4; l++ {
					vr[l], vi[l] = dr[l]*wr[l]-di[l]*wi[l], dr[l]*wi[l]+di[l]*wr[l]
				}
			}
		}
	}
}

func (LanesKernels) IFFT(t *Table, x []float64) {
	m := t.M
	re, im := x[:m], x[m:2*m]
	for size := 2; size <= m; size <<= 1 {
		half := size >> 1
		stride := m / size
		if half < 4 {
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
			continue
		}
		for s := 0; s < m; s += size {
			for j := 0; j < half; j += 4 {

				/* #nosec G103 -- half is a multiple of 4 */
				ur := (*[4]float64)(unsafe.Pointer(&re[s+j]))
				/* #nosec G103 -- half is a multiple of 4 */
				ui := (*[4]float64)(unsafe.Pointer(&im[s+j]))
				/* #nosec G103 -- half is a multiple of 4 */
				xr := (*[4]float64)(unsafe.Pointer(&re[s+j+half]))
				/* #nosec G103 -- half is a multiple of 4 */
				xi := (*[4]float64)(unsafe.Pointer(&im[s+j+half]))

				var vr, vi [4]float64
				for l := 0; l < 4; l++ {
					wr, wi := t.OmegaRe[(j+l)*stride], -t.OmegaIm[(j+l)*stride]
					vr[l], vi[l] = xr[l]*wr-xi[l]*wi, xr[l]*wi+xi[l]*wr
				}

				for l := 0; l < 4; l++ {
					xr[l], xi[l] = ur[l]-vr[l], ui[l]-vi[l]
					ur[l], ui[l] = ur[l]+vr[l], ui[l]+vi[l]
				}
			}
		}
	}
}

func (k LanesKernels) FromZnx(t *Table, res []float64, a []int64) {
	twist(t, res, a)
	k.FFT(t, res)
}

func (k LanesKernels) ToZnx(t *Table, res []int64, x []float64) {
	k.IFFT(t, x)
	untwist(t, res, x)
}

func (LanesKernels) Add(res, a, b []float64) {

	N := len(res)

	for j := 0; j < N-(N&7); j = j + 8 {

		/* #nosec G103 -- iteration number is ensured to be a multiple of 8*/
		x := (*[8]float64)(unsafe.Pointer(&a[j]))
		/* #nosec G103 -- iteration number is ensured to be a multiple of 8*/
		y := (*[8]float64)(unsafe.Pointer(&b[j]))
		/* #nosec G103 -- iteration number is ensured to be a multiple of 8*/
		z := (*[8]float64)(unsafe.Pointer(&res[j]))

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

func (k LanesKernels) AddInplace(res, a []float64) {
	k.Add(res, res, a)
}

func (LanesKernels) Sub(res, a, b []float64) {

	N := len(res)

	for j := 0; j < N-(N&7); j = j + 8 {

		/* #nosec G103 -- iteration number is ensured to be a multiple of 8*/
		x := (*[8]float64)(unsafe.Pointer(&a[j]))
		/* #nosec G103 -- iteration number is ensured to be a multiple of 8*/
		y := (*[8]float64)(unsafe.Pointer(&b[j]))
		/* #nosec G103 -- iteration number is ensured to be a multiple of 8*/
		z := (*[8]float64)(unsafe.Pointer(&res[j]))

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

func (k LanesKernels) SubABInplace(res, a []float64) {
	k.Sub(res, res, a)
}

func (k LanesKernels) SubBAInplace(res, a []float64) {
	k.Sub(res, a, res)
}

func (LanesKernels) Negate(res, a []float64) {

	N := len(res)

	for j := 0; j < N-(N&7); j = j + 8 {

		/* #nosec G103 -- iteration number is ensured to be a multiple of 8*/
		x := (*[8]float64)(unsafe.Pointer(&a[j]))
		/* #nosec G103 -- iteration number is ensured to be a multiple of 8*/
		z := (*[8]float64)(unsafe.Pointer(&res[j]))

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

// mul4 evaluates (zr, zi) = (xr, xi) * (yr, yi) on 4 complex slots,
// accumulating when acc is true.
func mul4(zr, zi, xr, xi, yr, yi *[4]float64, acc bool) {
	var pr, pi [4]float64
	for l := 0; l < 4; l++ {
		pr[l] = xr[l]*yr[l] - xi[l]*yi[l]
		pi[l] = xr[l]*yi[l] + xi[l]*yr[l]
	}
	if acc {
		for l := 0; l < 4; l++ {
			zr[l] += pr[l]
			zi[l] += pi[l]
		}
	} else {
		*zr, *zi = pr, pi
	}
}

func (LanesKernels) mul(res, a, b []float64, acc bool) {
	m := len(res) >> 1
	for j := 0; j < m; j += 4 {
		/* #nosec G103 -- M is a multiple of 4 */
		mul4((*[4]float64)(unsafe.Pointer(&res[j])), (*[4]float64)(unsafe.Pointer(&res[j+m])),
			(*[4]float64)(unsafe.Pointer(&a[j])), (*[4]float64)(unsafe.Pointer(&a[j+m])),
			(*[4]float64)(unsafe.Pointer(&b[j])), (*[4]float64)(unsafe.Pointer(&b[j+m])), acc)
	}
}

func (k LanesKernels) Mul(res, a, b []float64) {
	k.mul(res, a, b, false)
}

func (k LanesKernels) MulAdd(res, a, b []float64) {
	k.mul(res, a, b, true)
}

// VecMat processes the matrix two columns at a time.
func (LanesKernels) VecMat(out, in, mat []float64, rows, cols int) {

	clear(out[:cols*8])

	c := 0
	for ; c+1 < cols; c += 2 {

		/* #nosec G103 -- out holds cols blocks of 8 */
		z0 := (*[8]float64)(unsafe.Pointer(&out[c*8]))
		/* #nosec G103 -- out holds cols blocks of 8 */
		z1 := (*[8]float64)(unsafe.Pointer(&out[c*8+8]))

		for r := 0; r < rows; r++ {
			/* #nosec G103 -- in holds rows blocks of 8 */
			x := (*[8]float64)(unsafe.Pointer(&in[r*8]))
			/* #nosec G103 -- mat holds rows*cols blocks of 8 */
			y0 := (*[8]float64)(unsafe.Pointer(&mat[(r*cols+c)*8]))
			/* #nosec G103 -- mat holds rows*cols blocks of 8 */
			y1 := (*[8]float64)(unsafe.Pointer(&mat[(r*cols+c)*8+8]))

			for l := 0; l < 4; l++ {
				z0[l] += x[l]*y0[l] - x[l+4]*y0[l+4]
				z0[l+4] += x[l]*y0[l+4] + x[l+4]*y0[l]
				z1[l] += x[l]*y1[l] - x[l+4]*y1[l+4]
				z1[l+4] += x[l]*y1[l+4] + x[l+4]*y1[l]
			}
		}
	}

	if c < cols {
		/* #nosec G103 -- out holds cols blocks of 8 */
		z := (*[8]float64)(unsafe.Pointer(&out[c*8]))
		for r := 0; r < rows; r++ {
			/* #nosec G103 -- in holds rows blocks of 8 */
			x := (*[8]float64)(unsafe.Pointer(&in[r*8]))
			/* #nosec G103 -- mat holds rows*cols blocks of 8 */
			y := (*[8]float64)(unsafe.Pointer(&mat[(r*cols+c)*8]))
			for l := 0; l < 4; l++ {
				z[l] += x[l]*y[l] - x[l+4]*y[l+4]
				z[l+4] += x[l]*y[l+4] + x[l+4]*y[l]
			}
		}
	}
}

// Select returns the reference kernels when lanes is false
// and the reim4 kernels otherwise.
func Select(lanes bool) Kernels {
	if lanes {
		return LanesKernels{}
	}
	return ReferenceKernels{}
}
