package hal

import (
	"fmt"

	"github.com/Pro7ech/hal/utils"
	"github.com/Pro7ech/hal/utils/sampling"
)

// ScalarZnx is a set of Cols polynomials of degree N with one i64 limb each,
// stored as [Cols][N]int64. It is typically a secret or a plaintext scalar.
type ScalarZnx struct {
	N    int
	Cols int
	Data []byte
}

// ScalarZnxAllocBytes returns the size in bytes of a [ScalarZnx].
func ScalarZnxAllocBytes(n, cols int) int {
	return n * cols * 8
}

// NewScalarZnx allocates a zeroed [ScalarZnx].
func NewScalarZnx(n, cols int) ScalarZnx {
	return ScalarZnxFromBytes(n, cols, utils.AlignedBytes(ScalarZnxAllocBytes(n, cols)))
}

// ScalarZnxFromBytes wraps buf as a [ScalarZnx].
// It panics if len(buf) does not match [ScalarZnxAllocBytes].
func ScalarZnxFromBytes(n, cols int, buf []byte) ScalarZnx {
	assertSize("ScalarZnxFromBytes", len(buf), ScalarZnxAllocBytes(n, cols))
	return ScalarZnx{N: n, Cols: cols, Data: buf}
}

// At returns the coefficients of the given column.
func (s ScalarZnx) At(col int) []int64 {
	return utils.Cast[int64](s.Data)[col*s.N : (col+1)*s.N]
}

// AsVecZnx returns a [VecZnx] of size one sharing the memory of s.
func (s ScalarZnx) AsVecZnx() VecZnx {
	return VecZnx{N: s.N, Cols: s.Cols, Size: 1, Data: s.Data}
}

// FillTernaryProb samples the given column with coefficients in {-1, 0, 1},
// each non-zero with probability p.
func (s ScalarZnx) FillTernaryProb(col int, p float64, source *sampling.Source) {
	coeffs := s.At(col)
	for i := range coeffs {
		switch u := source.Float64(); {
		case u < p/2:
			coeffs[i] = -1
		case u < p:
			coeffs[i] = 1
		default:
			coeffs[i] = 0
		}
	}
}

// FillTernaryHW samples the given column with exactly h coefficients in {-1, 1}
// and all others zero.
func (s ScalarZnx) FillTernaryHW(col, h int, source *sampling.Source) {
	coeffs := s.At(col)
	if h > len(coeffs) {
		panic(fmt.Errorf("cannot FillTernaryHW: h=%d > N=%d", h, len(coeffs)))
	}
	for i := range coeffs {
		coeffs[i] = 0
	}
	// Partial Fisher-Yates over the indexes.
	index := make([]int, len(coeffs))
	for i := range index {
		index[i] = i
	}
	for i := 0; i < h; i++ {
		j := i + int(source.Bounded(uint64(len(index)-i)))
		index[i], index[j] = index[j], index[i]
		coeffs[index[i]] = int64(source.Uint64()&1)*2 - 1
	}
}

// VecZnx is a vector of Cols polynomials of degree N, each decomposed in Size
// base-2^basek limbs, stored as [Cols][Size][N]int64. Limb 0 is the most
// significant: the torus value of a column is sum_j limb_j * 2^(-(j+1)*basek).
type VecZnx struct {
	N    int
	Cols int
	Size int
	Data []byte
}

// VecZnxAllocBytes returns the size in bytes of a [VecZnx].
func VecZnxAllocBytes(n, cols, size int) int {
	return n * cols * size * 8
}

// NewVecZnx allocates a zeroed [VecZnx].
func NewVecZnx(n, cols, size int) VecZnx {
	return VecZnxFromBytes(n, cols, size, utils.AlignedBytes(VecZnxAllocBytes(n, cols, size)))
}

// VecZnxFromBytes wraps buf as a [VecZnx].
// It panics if len(buf) does not match [VecZnxAllocBytes].
func VecZnxFromBytes(n, cols, size int, buf []byte) VecZnx {
	assertSize("VecZnxFromBytes", len(buf), VecZnxAllocBytes(n, cols, size))
	return VecZnx{N: n, Cols: cols, Size: size, Data: buf}
}

// Sl returns the number of words per limb.
func (v VecZnx) Sl() int {
	return v.N
}

// At returns the coefficients of the given limb of the given column.
func (v VecZnx) At(col, limb int) []int64 {
	off := (col*v.Size + limb) * v.N
	return utils.Cast[int64](v.Data)[off : off+v.N]
}

// Col returns the limbs of the given column as a single [Size*N] slice.
func (v VecZnx) Col(col int) []int64 {
	off := col * v.Size * v.N
	return utils.Cast[int64](v.Data)[off : off+v.Size*v.N]
}

// Raw returns all coefficients of v.
func (v VecZnx) Raw() []int64 {
	return utils.Cast[int64](v.Data)
}

// Zero sets all coefficients of v to zero.
func (v VecZnx) Zero() {
	clear(v.Data)
}

// ZeroCol sets all coefficients of the given column to zero.
func (v VecZnx) ZeroCol(col int) {
	clear(v.Col(col))
}

// CopyNew returns a deep copy of v.
func (v VecZnx) CopyNew() VecZnx {
	w := NewVecZnx(v.N, v.Cols, v.Size)
	copy(w.Data, v.Data)
	return w
}

// Equal returns true if v and other have the same shape and coefficients.
func (v VecZnx) Equal(other VecZnx) bool {
	if v.N != other.N || v.Cols != other.Cols || v.Size != other.Size {
		return false
	}
	a, b := v.Raw(), other.Raw()
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func (v VecZnx) String() string {
	return fmt.Sprintf("VecZnx{N: %d, Cols: %d, Size: %d}", v.N, v.Cols, v.Size)
}

// VecZnxBig is the un-normalized accumulator of a backend, with the same
// column and limb structure as [VecZnx] and Words 64-bit words per coefficient.
// Its data is stored as [Cols][Size][N*Words]uint64.
type VecZnxBig struct {
	Backend string
	N       int
	Cols    int
	Size    int
	Words   int
	Data    []byte
}

// Sl returns the number of words per limb.
func (v VecZnxBig) Sl() int {
	return v.N * v.Words
}

// At returns the raw words of the given limb of the given column.
func (v VecZnxBig) At(col, limb int) []uint64 {
	stride := v.N * v.Words
	off := (col*v.Size + limb) * stride
	return utils.Cast[uint64](v.Data)[off : off+stride]
}

// AtI64 returns the coefficients of the given limb of the given column.
// It panics if the coefficients are not a single 64-bit word.
func (v VecZnxBig) AtI64(col, limb int) []int64 {
	if v.Words != 1 {
		panic(fmt.Errorf("cannot AtI64: VecZnxBig of backend %s has %d words per coefficient", v.Backend, v.Words))
	}
	off := (col*v.Size + limb) * v.N
	return utils.Cast[int64](v.Data)[off : off+v.N]
}

// AsVecZnx returns a [VecZnx] sharing the memory of v.
// It panics if the coefficients are not a single 64-bit word.
func (v VecZnxBig) AsVecZnx() VecZnx {
	if v.Words != 1 {
		panic(fmt.Errorf("cannot AsVecZnx: VecZnxBig of backend %s has %d words per coefficient", v.Backend, v.Words))
	}
	return VecZnx{N: v.N, Cols: v.Cols, Size: v.Size, Data: v.Data}
}

// Col returns the words of the given column.
func (v VecZnxBig) Col(col int) []uint64 {
	stride := v.Size * v.N * v.Words
	return utils.Cast[uint64](v.Data)[col*stride : (col+1)*stride]
}

// Zero sets all words of v to zero.
func (v VecZnxBig) Zero() {
	clear(v.Data)
}

// VecZnxDft is a [VecZnx] in the evaluation domain of a backend, with Words
// 64-bit words per coefficient, stored as [Cols][Size][N*Words].
type VecZnxDft struct {
	Backend string
	N       int
	Cols    int
	Size    int
	Words   int
	Data    []byte
}

// Sl returns the number of words per limb.
func (v VecZnxDft) Sl() int {
	return v.N * v.Words
}

// At returns the raw words of the given limb of the given column.
func (v VecZnxDft) At(col, limb int) []uint64 {
	stride := v.N * v.Words
	off := (col*v.Size + limb) * stride
	return utils.Cast[uint64](v.Data)[off : off+stride]
}

// AtF64 returns the given limb of the given column as float64.
func (v VecZnxDft) AtF64(col, limb int) []float64 {
	stride := v.N * v.Words
	off := (col*v.Size + limb) * stride
	return utils.Cast[float64](v.Data)[off : off+stride]
}

// Col returns the words of the given column.
func (v VecZnxDft) Col(col int) []uint64 {
	stride := v.Size * v.N * v.Words
	return utils.Cast[uint64](v.Data)[col*stride : (col+1)*stride]
}

// Zero sets all words of v to zero.
func (v VecZnxDft) Zero() {
	clear(v.Data)
}

// SvpPPol is a [ScalarZnx] prepared by a backend for scalar-vector products,
// stored as [Cols][N*Words].
type SvpPPol struct {
	Backend string
	N       int
	Cols    int
	Words   int
	Data    []byte
}

// At returns the raw words of the given column.
func (s SvpPPol) At(col int) []uint64 {
	stride := s.N * s.Words
	return utils.Cast[uint64](s.Data)[col*stride : (col+1)*stride]
}

// MatZnx is a Rows x ColsIn matrix of [VecZnx] with ColsOut columns and Size
// limbs, stored as [Rows][ColsIn][ColsOut][Size][N]int64.
type MatZnx struct {
	N       int
	Rows    int
	ColsIn  int
	ColsOut int
	Size    int
	Data    []byte
}

// MatZnxAllocBytes returns the size in bytes of a [MatZnx].
func MatZnxAllocBytes(n, rows, colsIn, colsOut, size int) int {
	return rows * colsIn * VecZnxAllocBytes(n, colsOut, size)
}

// NewMatZnx allocates a zeroed [MatZnx].
func NewMatZnx(n, rows, colsIn, colsOut, size int) MatZnx {
	return MatZnxFromBytes(n, rows, colsIn, colsOut, size, utils.AlignedBytes(MatZnxAllocBytes(n, rows, colsIn, colsOut, size)))
}

// MatZnxFromBytes wraps buf as a [MatZnx].
// It panics if len(buf) does not match [MatZnxAllocBytes].
func MatZnxFromBytes(n, rows, colsIn, colsOut, size int, buf []byte) MatZnx {
	assertSize("MatZnxFromBytes", len(buf), MatZnxAllocBytes(n, rows, colsIn, colsOut, size))
	return MatZnx{N: n, Rows: rows, ColsIn: colsIn, ColsOut: colsOut, Size: size, Data: buf}
}

// At returns the [VecZnx] at the given row and input column, sharing the memory of m.
func (m MatZnx) At(row, colIn int) VecZnx {
	stride := VecZnxAllocBytes(m.N, m.ColsOut, m.Size)
	off := (row*m.ColsIn + colIn) * stride
	return VecZnx{N: m.N, Cols: m.ColsOut, Size: m.Size, Data: m.Data[off : off+stride]}
}

// Zero sets all coefficients of m to zero.
func (m MatZnx) Zero() {
	clear(m.Data)
}

// VmpPMat is a [MatZnx] prepared by a backend for vector-matrix products.
// Its internal layout is backend specific.
type VmpPMat struct {
	Backend string
	N       int
	Rows    int
	ColsIn  int
	ColsOut int
	Size    int
	Words   int
	Data    []byte
}

// Raw returns the words of p.
func (p VmpPMat) Raw() []uint64 {
	return utils.Cast[uint64](p.Data)
}

// RawF64 returns the words of p as float64.
func (p VmpPMat) RawF64() []float64 {
	return utils.Cast[float64](p.Data)
}

func assertSize(name string, have, want int) {
	if have != want {
		panic(fmt.Errorf("%s: invalid buffer size %d != %d", name, have, want))
	}
}
