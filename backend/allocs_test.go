//go:build nohalchecks

package backend

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Pro7ech/hal/backend/fft64"
	"github.com/Pro7ech/hal/backend/ntt120"
	"github.com/Pro7ech/hal/hal"
	"github.com/Pro7ech/hal/utils/sampling"
)

func TestAllocs(t *testing.T) {

	for _, p := range []ParametersLiteral{
		{Backend: fft64.Name, LogN: 10, Kernels: "ref"},
		{Backend: fft64.Name, LogN: 10, Kernels: "lanes"},
		{Backend: ntt120.Name, LogN: 10, Kernels: "ref"},
		{Backend: ntt120.Name, LogN: 10, Kernels: "lanes"},
	} {

		m, err := p.NewModule()
		require.NoError(t, err)

		basek, size := 17, 4
		rows := 3

		source := sampling.NewSource([32]byte{})

		a := m.NewVecZnx(2, size)
		hal.FillUniform(basek, a, 0, size, source)
		hal.FillUniform(basek, a, 1, size, source)
		b := m.NewVecZnx(1, size)
		res := m.NewVecZnx(1, size)

		s := m.NewScalarZnx(1)
		s.FillTernaryHW(0, 32, source)
		svp := m.NewSvpPPol(1)
		m.SvpPrepare(svp, 0, s, 0)

		mat := m.NewMatZnx(rows, 1, 1, size)
		pmat := m.NewVmpPMat(rows, 1, 1, size)
		m.VmpPrepare(pmat, mat, hal.NewScratchOwned(m.VmpPrepareTmpBytes(rows, 1, 1, size)).Borrow())

		dft := m.NewVecZnxDft(1, size)
		dftRes := m.NewVecZnxDft(1, size)
		big := m.NewVecZnxBig(1, size)

		tmpBytes := max(
			m.VecZnxNormalizeTmpBytes(),
			m.VecZnxAutomorphismInplaceTmpBytes(),
			m.VecZnxIdftApplyTmpBytes(),
			m.VecZnxBigNormalizeTmpBytes(),
			m.VmpApplyTmpBytes(size, size, rows, 1, 1, size),
			hal.VecZnxAllocBytes(m.N(), 1, size),
		)
		scratch := hal.NewScratchOwned(tmpBytes).Borrow()

		for _, tc := range []struct {
			name string
			f    func()
		}{
			{"VecZnxAdd", func() { m.VecZnxAdd(res, 0, a, 0, a, 1) }},
			{"VecZnxNormalize", func() { m.VecZnxNormalize(basek, res, 0, a, 0, scratch) }},
			{"VecZnxAutomorphism", func() { m.VecZnxAutomorphism(5, res, 0, a, 0) }},
			{"VecZnxAutomorphismInplace", func() { m.VecZnxAutomorphismInplace(-3, b, 0, scratch) }},
			{"VecZnxDftApply", func() { m.VecZnxDftApply(1, 0, dft, 0, a, 0) }},
			{"VecZnxIdftApply", func() { m.VecZnxIdftApply(big, 0, dft, 0, scratch) }},
			{"VecZnxBigNormalize", func() { m.VecZnxBigNormalize(basek, res, 0, big, 0, scratch) }},
			{"VecZnxBigAddNormal", func() { m.VecZnxBigAddNormal(basek, big, 0, 3*basek, source, 3.2, 19.2) }},
			{"SvpApply", func() { m.SvpApply(dftRes, 0, svp, 0, dft, 0) }},
			{"VmpApplyDftToDft", func() { m.VmpApplyDftToDft(dftRes, dft, pmat, scratch) }},
			{"TakeVecZnx", func() { scratch.TakeVecZnx(m.N(), 1, size) }},
		} {
			t.Run(testString(tc.name, m), func(t *testing.T) {
				require.Zero(t, testing.AllocsPerRun(10, tc.f))
			})
		}
	}
}
