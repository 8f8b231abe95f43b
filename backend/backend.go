// Package backend selects and instantiates the backends of [hal.Module]
// from a literal description.
package backend

import (
	"fmt"
	"strings"

	"github.com/Pro7ech/hal/backend/fft64"
	"github.com/Pro7ech/hal/backend/ntt120"
	"github.com/Pro7ech/hal/hal"
	"github.com/Pro7ech/hal/q120"
	"github.com/Pro7ech/hal/reim"
	"github.com/Pro7ech/hal/znx"
)

// ParametersLiteral is a literal representation of the parameters of a
// [hal.Module]. It has public fields and is used to express unchecked
// user-defined parameters literally into Go programs or JSON documents.
// The [ParametersLiteral.NewModule] method generates the actual module.
//
// Users must set the backend ("FFT64" or "NTT120") and the ring degree LogN.
// Kernels optionally selects the kernel tier ("auto", "ref" or "lanes"); it
// defaults to "auto".
type ParametersLiteral struct {
	Backend string
	LogN    int
	Kernels string `json:",omitempty"`
}

// Validate checks that the literal describes a supported module.
func (p ParametersLiteral) Validate() (err error) {

	if _, err = p.tier(); err != nil {
		return
	}

	var minN, maxN int
	switch strings.ToUpper(p.Backend) {
	case fft64.Name:
		minN, maxN = reim.MinimumRingDegree, reim.MaximumRingDegree
	case ntt120.Name:
		minN, maxN = q120.MinimumRingDegree, q120.MaximumRingDegree
	default:
		return fmt.Errorf("invalid backend: %q is not %q or %q", p.Backend, fft64.Name, ntt120.Name)
	}

	if p.LogN < 0 || p.LogN > 30 || 1<<p.LogN < minN || 1<<p.LogN > maxN {
		return fmt.Errorf("invalid LogN: 2^%d is not in [%d, %d]", p.LogN, minN, maxN)
	}

	return
}

func (p ParametersLiteral) tier() (znx.Tier, error) {
	return znx.ParseTier(p.Kernels)
}

// NewModule validates the literal and returns the corresponding [hal.Module].
func (p ParametersLiteral) NewModule() (m *hal.Module, err error) {

	if err = p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid parameters: %w", err)
	}

	tier, _ := p.tier()

	switch strings.ToUpper(p.Backend) {
	case fft64.Name:
		return fft64.NewModule(1<<p.LogN, tier)
	default:
		return ntt120.NewModule(1<<p.LogN, tier)
	}
}
