package hal

import (
	"fmt"
	"unsafe"

	"github.com/Pro7ech/hal/utils"
)

// ScratchOwned owns the memory of a [Scratch] arena.
type ScratchOwned struct {
	buf []byte
}

// NewScratchOwned allocates an arena of at least size bytes.
func NewScratchOwned(size int) *ScratchOwned {
	return &ScratchOwned{buf: utils.AlignedBytes(utils.AlignUp(size, utils.Alignment))}
}

// Borrow returns a [Scratch] spanning the whole arena.
func (s *ScratchOwned) Borrow() Scratch {
	return Scratch{buf: s.buf}
}

// Size returns the size in bytes of the arena.
func (s *ScratchOwned) Size() int {
	return len(s.buf)
}

// Scratch is a borrowed region of temporary memory.
//
// The Take methods carve an aligned region off the front of the arena and
// return it together with the remainder. The receiver is not modified, so
// regions are released by dropping the returned remainder, in LIFO order.
// The content of a taken region is arbitrary.
type Scratch struct {
	buf []byte
}

// NewScratch wraps buf as a [Scratch].
func NewScratch(buf []byte) Scratch {
	return Scratch{buf: buf}
}

func (s Scratch) padding() int {
	if len(s.buf) == 0 {
		return 0
	}
	/* #nosec G103 -- address is only inspected for its alignment */
	return int(-uintptr(unsafe.Pointer(&s.buf[0])) & (utils.Alignment - 1))
}

// Available returns the number of bytes that can be taken from s.
func (s Scratch) Available() int {
	return max(len(s.buf)-s.padding(), 0)
}

// TakeSlice takes size bytes and returns them with the remainder.
// It panics if fewer than size bytes are available.
func (s Scratch) TakeSlice(size int) ([]byte, Scratch) {
	if size > s.Available() {
		panic(fmt.Errorf("cannot TakeSlice: %d bytes requested but only %d available", size, s.Available()))
	}
	if size == 0 {
		return []byte{}, s
	}
	start := s.padding()
	end := start + size
	return s.buf[start:end:end], Scratch{buf: s.buf[end:]}
}

// TakeInt64 takes a slice of n int64.
func (s Scratch) TakeInt64(n int) ([]int64, Scratch) {
	buf, rest := s.TakeSlice(n * 8)
	return utils.Cast[int64](buf), rest
}

// TakeUint64 takes a slice of n uint64.
func (s Scratch) TakeUint64(n int) ([]uint64, Scratch) {
	buf, rest := s.TakeSlice(n * 8)
	return utils.Cast[uint64](buf), rest
}

// TakeFloat64 takes a slice of n float64.
func (s Scratch) TakeFloat64(n int) ([]float64, Scratch) {
	buf, rest := s.TakeSlice(n * 8)
	return utils.Cast[float64](buf), rest
}

// TakeScalarZnx takes a [ScalarZnx].
func (s Scratch) TakeScalarZnx(n, cols int) (ScalarZnx, Scratch) {
	buf, rest := s.TakeSlice(ScalarZnxAllocBytes(n, cols))
	return ScalarZnxFromBytes(n, cols, buf), rest
}

// TakeVecZnx takes a [VecZnx].
func (s Scratch) TakeVecZnx(n, cols, size int) (VecZnx, Scratch) {
	buf, rest := s.TakeSlice(VecZnxAllocBytes(n, cols, size))
	return VecZnxFromBytes(n, cols, size, buf), rest
}

// TakeVecZnxSlice takes count [VecZnx] of identical shape.
func (s Scratch) TakeVecZnxSlice(count, n, cols, size int) ([]VecZnx, Scratch) {
	vecs := make([]VecZnx, count)
	for i := range vecs {
		vecs[i], s = s.TakeVecZnx(n, cols, size)
	}
	return vecs, s
}

// TakeMatZnx takes a [MatZnx].
func (s Scratch) TakeMatZnx(n, rows, colsIn, colsOut, size int) (MatZnx, Scratch) {
	buf, rest := s.TakeSlice(MatZnxAllocBytes(n, rows, colsIn, colsOut, size))
	return MatZnxFromBytes(n, rows, colsIn, colsOut, size, buf), rest
}

// TakeVecZnxBig takes a [VecZnxBig] of the backend of m.
func (s Scratch) TakeVecZnxBig(m *Module, cols, size int) (VecZnxBig, Scratch) {
	buf, rest := s.TakeSlice(m.VecZnxBigAllocBytes(cols, size))
	return m.VecZnxBigFromBytes(cols, size, buf), rest
}

// TakeVecZnxDft takes a [VecZnxDft] of the backend of m.
func (s Scratch) TakeVecZnxDft(m *Module, cols, size int) (VecZnxDft, Scratch) {
	buf, rest := s.TakeSlice(m.VecZnxDftAllocBytes(cols, size))
	return m.VecZnxDftFromBytes(cols, size, buf), rest
}

// TakeSvpPPol takes a [SvpPPol] of the backend of m.
func (s Scratch) TakeSvpPPol(m *Module, cols int) (SvpPPol, Scratch) {
	buf, rest := s.TakeSlice(m.SvpPPolAllocBytes(cols))
	return m.SvpPPolFromBytes(cols, buf), rest
}

// TakeVmpPMat takes a [VmpPMat] of the backend of m.
func (s Scratch) TakeVmpPMat(m *Module, rows, colsIn, colsOut, size int) (VmpPMat, Scratch) {
	buf, rest := s.TakeSlice(m.VmpPMatAllocBytes(rows, colsIn, colsOut, size))
	return m.VmpPMatFromBytes(rows, colsIn, colsOut, size, buf), rest
}

// Split takes count disjoint arenas of size bytes each, for use by
// concurrent workers. It panics if the arena is too small.
func (s Scratch) Split(count, size int) []Scratch {
	size = utils.AlignUp(size, utils.Alignment)
	parts := make([]Scratch, count)
	for i := range parts {
		var buf []byte
		buf, s = s.TakeSlice(size)
		parts[i] = Scratch{buf: buf}
	}
	return parts
}
