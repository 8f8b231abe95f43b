package backend

import (
	"encoding/json"
	"flag"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/Pro7ech/hal/backend/fft64"
	"github.com/Pro7ech/hal/backend/ntt120"
	"github.com/Pro7ech/hal/hal"
)

var flagParamString = flag.String("params", "", "specify the test cryptographic parameters as a JSON string. Overrides the default test parameters.")

var testParametersLiteral = []ParametersLiteral{
	{Backend: fft64.Name, LogN: 5},
	{Backend: ntt120.Name, LogN: 5, Kernels: "ref"},
	{Backend: "ntt120", LogN: 6, Kernels: "lanes"},
}

func testString(opname string, m *hal.Module) string {
	return fmt.Sprintf("%s/Backend=%s/Kernels=%s/N=%d", opname, m.Name(), m.Kernels().Name(), m.N())
}

func TestParametersLiteral(t *testing.T) {

	paramsLiteral := testParametersLiteral

	if *flagParamString != "" {
		var jsonParams ParametersLiteral
		require.NoError(t, json.Unmarshal([]byte(*flagParamString), &jsonParams))
		paramsLiteral = []ParametersLiteral{jsonParams}
	}

	for _, p := range paramsLiteral {

		m, err := p.NewModule()
		require.NoError(t, err)

		t.Run(testString("NewModule", m), func(t *testing.T) {
			require.Equal(t, 1<<p.LogN, m.N())
			if p.Kernels != "" {
				require.Equal(t, p.Kernels, m.Kernels().Name())
			}
		})

		t.Run(testString("JSON", m), func(t *testing.T) {
			data, err := json.Marshal(p)
			require.NoError(t, err)
			var have ParametersLiteral
			require.NoError(t, json.Unmarshal(data, &have))
			require.True(t, cmp.Equal(p, have), cmp.Diff(p, have))
		})

		// A product through the selected backend round trips small values.
		t.Run(testString("DftRoundTrip", m), func(t *testing.T) {
			a := m.NewVecZnx(1, 2)
			for i := range a.Raw() {
				a.Raw()[i] = int64(i) - 7
			}
			dft := m.NewVecZnxDft(1, 2)
			m.VecZnxDftApply(1, 0, dft, 0, a, 0)
			big := m.NewVecZnxBig(1, 2)
			m.VecZnxIdftApply(big, 0, dft, 0, hal.NewScratchOwned(m.VecZnxIdftApplyTmpBytes()).Borrow())
			res := m.NewVecZnx(1, 2)
			m.VecZnxBigNormalize(62, res, 0, big, 0, hal.NewScratchOwned(m.VecZnxBigNormalizeTmpBytes()).Borrow())
			require.Equal(t, a.Raw(), res.Raw())
		})
	}
}

func TestParametersLiteralErrors(t *testing.T) {
	for _, p := range []ParametersLiteral{
		{Backend: "FFT32", LogN: 5},
		{Backend: fft64.Name, LogN: 2},
		{Backend: fft64.Name, LogN: 17},
		{Backend: ntt120.Name, LogN: -1},
		{Backend: ntt120.Name, LogN: 10, Kernels: "sse"},
	} {
		require.Error(t, p.Validate())
		_, err := p.NewModule()
		require.Error(t, err)
	}

	var p ParametersLiteral
	require.NoError(t, json.Unmarshal([]byte(`{"Backend":"NTT120","LogN":12}`), &p))
	require.NoError(t, p.Validate())
	require.Equal(t, ParametersLiteral{Backend: ntt120.Name, LogN: 12}, p)
}
