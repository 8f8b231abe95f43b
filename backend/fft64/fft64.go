// Package fft64 implements the FFT64 backend of [hal.Module]: the transform
// domain is C^(N/2) in double precision, the accumulator domain is i64.
//
// Products are exact as long as the coefficients of the result stay within
// the 53 bits of precision of a float64, which bounds basek and the number of
// accumulated limbs.
package fft64

import (
	"fmt"

	"github.com/Pro7ech/hal/hal"
	"github.com/Pro7ech/hal/reim"
	"github.com/Pro7ech/hal/utils"
	"github.com/Pro7ech/hal/znx"
)

// Name is the name of the backend.
const Name = "FFT64"

// Backend is the FFT64 [hal.Backend].
type Backend struct {
	table   *reim.Table
	kernels znx.Kernels
	fft     reim.Kernels
	znx     hal.ZnxOps
}

// New returns a new FFT64 [Backend] for ring degree n.
func New(n int, tier znx.Tier) (b *Backend, err error) {

	if !utils.IsPow2(n) || n < reim.MinimumRingDegree || n > reim.MaximumRingDegree {
		return nil, fmt.Errorf("invalid ring degree: must be a power of two in [%d, %d] but is %d", reim.MinimumRingDegree, reim.MaximumRingDegree, n)
	}

	var table *reim.Table
	if table, err = reim.NewTable(n); err != nil {
		return nil, fmt.Errorf("reim.NewTable: %w", err)
	}

	tier = tier.Resolve()
	kernels := znx.Select(tier)

	return &Backend{
		table:   table,
		kernels: kernels,
		fft:     reim.Select(tier == znx.Lanes),
		znx:     hal.ZnxOps{Kernels: kernels},
	}, nil
}

// NewModule returns a new [hal.Module] backed by FFT64 for ring degree n.
func NewModule(n int, tier znx.Tier) (*hal.Module, error) {
	b, err := New(n, tier)
	if err != nil {
		return nil, err
	}
	return hal.NewModule(b), nil
}

func (b *Backend) Name() string         { return Name }
func (b *Backend) N() int               { return b.table.N }
func (b *Backend) Kernels() znx.Kernels { return b.kernels }
func (b *Backend) BigWords() int        { return 1 }
func (b *Backend) DftWords() int        { return 1 }
func (b *Backend) SvpWords() int        { return 1 }
func (b *Backend) VmpWords() int        { return 1 }

// Table returns the FFT table of the backend.
func (b *Backend) Table() *reim.Table {
	return b.table
}
