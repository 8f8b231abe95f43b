// Package hal is the hardware abstraction layer of base-2^k digit decomposed
// arithmetic over Z[X]/(X^N+1).
//
// Polynomials are stored in caller-owned byte buffers described by layouts
// ([VecZnx], [VecZnxBig], [VecZnxDft], [ScalarZnx], [SvpPPol], [MatZnx],
// [VmpPMat]). A [Module] binds a ring degree to a [Backend]
// that provides the transform and the kernels. Temporaries are borrowed
// from a [Scratch] arena and never allocated by the operations.
//
// Operations panic on contract violations (mismatched degrees, columns out of
// range, aliasing of results with inputs, buffers of the wrong size, layouts
// prepared by another backend). These checks are compiled out with the
// nohalchecks build tag.
package hal

import (
	"fmt"
	"math/bits"

	"github.com/Pro7ech/hal/znx"
)

// Backend is the numeric strategy of a [Module]. Beyond this interface,
// a Backend implements any subset of [VecZnxBigImpl], [VecZnxDftImpl],
// [SvpImpl] and [VmpImpl]; calling an operation of a family it does not
// implement panics.
type Backend interface {
	// Name returns the name identifying the backend, e.g. "FFT64" or "NTT120".
	Name() string
	// N returns the ring degree.
	N() int
	// Kernels returns the i64 limb kernels.
	Kernels() znx.Kernels
	// BigWords returns the number of 64-bit words per coefficient of a [VecZnxBig].
	BigWords() int
	// DftWords returns the number of 64-bit words per coefficient of a [VecZnxDft].
	DftWords() int
	// SvpWords returns the number of 64-bit words per coefficient of a [SvpPPol].
	SvpWords() int
	// VmpWords returns the number of 64-bit words per coefficient of a [VmpPMat].
	VmpWords() int
}

// Module is a ring degree bound to a [Backend].
// A Module is read-only after creation and can be shared between goroutines.
type Module struct {
	backend Backend
	znx     ZnxOps
	n       int
}

// NewModule returns a new [Module] dispatching to the given backend.
func NewModule(backend Backend) *Module {
	return &Module{
		backend: backend,
		znx:     ZnxOps{Kernels: backend.Kernels()},
		n:       backend.N(),
	}
}

// N returns the ring degree.
func (m *Module) N() int {
	return m.n
}

// LogN returns log2 of the ring degree.
func (m *Module) LogN() int {
	return bits.Len64(uint64(m.n)) - 1
}

// Backend returns the backend of the module.
func (m *Module) Backend() Backend {
	return m.backend
}

// Name returns the name of the backend of the module.
func (m *Module) Name() string {
	return m.backend.Name()
}

// Kernels returns the i64 limb kernels of the module.
func (m *Module) Kernels() znx.Kernels {
	return m.znx.Kernels
}

func (m *Module) String() string {
	return fmt.Sprintf("Module{Backend: %s, N: %d, Kernels: %s}", m.Name(), m.n, m.znx.Kernels.Name())
}

func (m *Module) bigImpl() VecZnxBigImpl {
	impl, ok := m.backend.(VecZnxBigImpl)
	if !ok {
		panic(fmt.Errorf("backend %s does not implement VecZnxBigImpl", m.Name()))
	}
	return impl
}

func (m *Module) dftImpl() VecZnxDftImpl {
	impl, ok := m.backend.(VecZnxDftImpl)
	if !ok {
		panic(fmt.Errorf("backend %s does not implement VecZnxDftImpl", m.Name()))
	}
	return impl
}

func (m *Module) svpImpl() SvpImpl {
	impl, ok := m.backend.(SvpImpl)
	if !ok {
		panic(fmt.Errorf("backend %s does not implement SvpImpl", m.Name()))
	}
	return impl
}

func (m *Module) vmpImpl() VmpImpl {
	impl, ok := m.backend.(VmpImpl)
	if !ok {
		panic(fmt.Errorf("backend %s does not implement VmpImpl", m.Name()))
	}
	return impl
}
