package fft64

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Pro7ech/hal/hal"
	"github.com/Pro7ech/hal/utils/sampling"
	"github.com/Pro7ech/hal/znx"
)

func BenchmarkFFT64(b *testing.B) {

	source := sampling.NewSource([32]byte{})

	for _, tier := range []znx.Tier{znx.Reference, znx.Lanes} {

		m, err := NewModule(1<<12, tier)
		require.NoError(b, err)

		size := 4
		a := randVecZnx(source, m.N(), 1, size, 20)
		dft := m.NewVecZnxDft(1, size)
		big := m.NewVecZnxBig(1, size)
		scratch := hal.NewScratchOwned(m.VecZnxIdftApplyTmpBytes()).Borrow()

		b.Run(testString("VecZnxDftApply", m), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				m.VecZnxDftApply(1, 0, dft, 0, a, 0)
			}
		})

		b.Run(testString("VecZnxIdftApply", m), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				m.VecZnxIdftApply(big, 0, dft, 0, scratch)
			}
		})

		rows, cols := 4, 2
		pmat := m.NewVmpPMat(rows, 1, cols, size)
		res := m.NewVecZnxDft(cols, size)
		vmpScratch := hal.NewScratchOwned(m.VmpApplyTmpBytes(size, size, rows, 1, cols, size)).Borrow()

		b.Run(testString("VmpApplyDftToDft", m), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				m.VmpApplyDftToDft(res, dft, pmat, vmpScratch)
			}
		})
	}
}
