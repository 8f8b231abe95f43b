package sampling

import (
	"math"
	"testing"

	"github.com/montanaflynn/stats"
	"github.com/stretchr/testify/require"
)

func TestSource(t *testing.T) {

	t.Run("Deterministic", func(t *testing.T) {
		a := NewSource([32]byte{1})
		b := NewSource([32]byte{1})
		c := NewSource([32]byte{2})

		bufA := make([]byte, 1000)
		bufB := make([]byte, 1000)
		bufC := make([]byte, 1000)
		a.Read(bufA)
		b.Read(bufB)
		c.Read(bufC)

		require.Equal(t, bufA, bufB)
		require.NotEqual(t, bufA, bufC)
		require.Equal(t, a.Uint64(), b.Uint64())
	})

	t.Run("Derive", func(t *testing.T) {
		a := NewSource([32]byte{})
		b := NewSource([32]byte{})
		require.Equal(t, a.NewSource().Uint64(), b.NewSource().Uint64())
		require.Equal(t, [32]byte{}, a.Seed())
	})

	t.Run("Bounded", func(t *testing.T) {
		s := NewSource([32]byte{})
		for _, max := range []uint64{1, 3, 16, 1000003} {
			for i := 0; i < 256; i++ {
				require.Less(t, s.Bounded(max), max)
			}
		}
	})

	t.Run("NormFloat64", func(t *testing.T) {
		s := NewSource([32]byte{})
		values := make(stats.Float64Data, 1<<14)
		for i := range values {
			values[i] = s.NormFloat64()
		}
		mean, err := stats.Mean(values)
		require.NoError(t, err)
		std, err := stats.StandardDeviation(values)
		require.NoError(t, err)
		require.Less(t, math.Abs(mean), 0.05)
		require.InDelta(t, 1.0, std, 0.05)
	})
}

func TestKeyedPRNG(t *testing.T) {

	key := []byte{0x49, 0x0a, 0x42, 0x3d, 0x97, 0x9d, 0xc1, 0x07, 0xa1, 0xd7, 0xe9, 0x7b, 0x3b, 0xce, 0xa1, 0xdb,
		0x42, 0xf3, 0xa6, 0xd5, 0x75, 0xd2, 0x0c, 0x92, 0xb7, 0x35, 0xce, 0x0c, 0xee, 0x09, 0x7c, 0x98}

	Ha, err := NewKeyedPRNG(key)
	require.NoError(t, err)
	Hb, err := NewKeyedPRNG(key)
	require.NoError(t, err)

	sum0 := make([]byte, 512)
	sum1 := make([]byte, 512)

	for i := 0; i < 128; i++ {
		Hb.Read(sum1)
	}

	Hb.Reset()

	Ha.Read(sum0)
	Hb.Read(sum1)

	require.Equal(t, sum0, sum1)
	require.Equal(t, key, Ha.Key())

	sa := NewSourceFromReader(Ha)
	sb := NewSourceFromReader(Hb)
	require.Equal(t, sa.Uint64(), sb.Uint64())
}
