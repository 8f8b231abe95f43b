package hal

import (
	"fmt"
	"math"

	"github.com/montanaflynn/stats"

	"github.com/Pro7ech/hal/utils"
	"github.com/Pro7ech/hal/utils/sampling"
	"github.com/Pro7ech/hal/znx"
)

// FillUniform samples the first size limbs of the given column of a with
// digits uniform in [-2^(basek-1), 2^(basek-1)).
func FillUniform(basek int, a VecZnx, col, size int, source *sampling.Source) {
	if checks {
		assertBasek("FillUniform", basek)
		assertCol("FillUniform", col, a.Cols)
		if size > a.Size {
			panic(fmt.Errorf("FillUniform: size=%d > %d", size, a.Size))
		}
	}
	for j := range size {
		limb := a.At(col, j)
		for i := range limb {
			limb[i] = znx.Digit(basek, int64(source.Uint64()))
		}
	}
}

// FillNormal sets the given column of a to a discrete Gaussian error of
// standard deviation sigma, bounded by bound, at precision 2^-k.
func FillNormal(basek int, a VecZnx, col, k int, source *sampling.Source, sigma, bound float64) {
	a.ZeroCol(col)
	AddNormal(basek, a, col, k, source, sigma, bound)
}

// AddNormal adds to the given column of a a discrete Gaussian error of
// standard deviation sigma, bounded by bound, at precision 2^-k.
// Samples with an absolute value larger than bound are re-drawn.
func AddNormal(basek int, a VecZnx, col, k int, source *sampling.Source, sigma, bound float64) {
	if checks {
		assertBasek("AddNormal", basek)
		assertCol("AddNormal", col, a.Cols)
		if !(k > 0 && utils.DivCeil(k, basek) <= a.Size) {
			panic(fmt.Errorf("AddNormal: k=%d exceeds the precision of size %d", k, a.Size))
		}
	}
	limb, shift := NormalLimb(basek, k, bound)
	coeffs := a.At(col, limb)
	for i := range coeffs {
		coeffs[i] += SampleNormal(source, sigma, bound) << shift
	}
}

// NormalLimb returns the limb and the left shift at which an error at
// precision 2^-k is added. It panics if an error bounded by bound does not
// fit on 64 bits once shifted.
func NormalLimb(basek, k int, bound float64) (limb, shift int) {
	limb = utils.DivCeil(k, basek) - 1
	shift = (limb+1)*basek - k
	if logBound := int(math.Ceil(math.Log2(bound))); logBound+shift >= 64 {
		panic(fmt.Errorf("cannot AddNormal: ceil(log2(bound))=%d + shift=%d >= 64", logBound, shift))
	}
	return
}

// SampleNormal returns round(e) for e a Gaussian sample of standard
// deviation sigma conditioned on |e| <= bound.
func SampleNormal(source *sampling.Source, sigma, bound float64) int64 {
	for {
		if e := source.NormFloat64() * sigma; math.Abs(e) <= bound {
			return int64(math.Round(e))
		}
	}
}

// Std returns the standard deviation of the torus values of the given column of a.
func Std(basek int, a VecZnx, col int) float64 {
	values := make([]float64, a.N)
	a.DecodeVecFloat64(basek, col, values)
	std, err := stats.StandardDeviation(values)
	if err != nil {
		panic(fmt.Errorf("cannot Std: %w", err))
	}
	return std
}
