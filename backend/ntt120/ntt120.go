// Package ntt120 implements the NTT120 backend of [hal.Module]: the transform
// domain is the product of four negacyclic NTT domains modulo ~30-bit primes
// (Q ~ 2^120), the accumulator domain is i128.
//
// Products are exact as long as the coefficients of the result stay within
// (-Q/2, Q/2].
package ntt120

import (
	"fmt"

	"github.com/Pro7ech/hal/hal"
	"github.com/Pro7ech/hal/q120"
	"github.com/Pro7ech/hal/utils"
	"github.com/Pro7ech/hal/znx"
)

// Name is the name of the backend.
const Name = "NTT120"

// Backend is the NTT120 [hal.Backend].
type Backend struct {
	table   *q120.Table
	kernels znx.Kernels
	ntt     q120.Kernels
	meta    q120.VecMatMeta
}

// New returns a new NTT120 [Backend] for ring degree n.
func New(n int, tier znx.Tier) (b *Backend, err error) {

	if !utils.IsPow2(n) || n < q120.MinimumRingDegree || n > q120.MaximumRingDegree {
		return nil, fmt.Errorf("invalid ring degree: must be a power of two in [%d, %d] but is %d", q120.MinimumRingDegree, q120.MaximumRingDegree, n)
	}

	var table *q120.Table
	if table, err = q120.NewTable(n); err != nil {
		return nil, fmt.Errorf("q120.NewTable: %w", err)
	}

	var meta q120.VecMatMeta
	if meta, err = q120.NewVecMatMeta(q120.MaxTerms(), q120.PrimeBits, q120.PrimeBits); err != nil {
		return nil, fmt.Errorf("q120.NewVecMatMeta: %w", err)
	}

	tier = tier.Resolve()

	return &Backend{
		table:   table,
		kernels: znx.Select(tier),
		ntt:     q120.Select(tier == znx.Lanes),
		meta:    meta,
	}, nil
}

// NewModule returns a new [hal.Module] backed by NTT120 for ring degree n.
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
func (b *Backend) BigWords() int        { return 2 }
func (b *Backend) DftWords() int        { return 4 }
func (b *Backend) SvpWords() int        { return 4 }
func (b *Backend) VmpWords() int        { return 4 }

// Table returns the NTT table of the backend.
func (b *Backend) Table() *q120.Table {
	return b.table
}
