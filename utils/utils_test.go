package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBitReverse64(t *testing.T) {
	require.Equal(t, uint64(0b100), BitReverse64(uint64(0b001), 3))
	require.Equal(t, 0b0110, BitReverse64(0b0110, 4))
	require.Equal(t, 6, BitReverse64(3, 3))
}

func TestAlign(t *testing.T) {
	require.True(t, IsPow2(64))
	require.False(t, IsPow2(0))
	require.False(t, IsPow2(96))
	require.Equal(t, 128, AlignUp(65, 64))
	require.Equal(t, 64, AlignUp(64, 64))
	require.Equal(t, 3, DivCeil(7, 3))

	for _, n := range []int{0, 1, 7, 64, 1000} {
		buf := AlignedBytes(n)
		require.Len(t, buf, n)
		require.True(t, IsAligned(buf))
	}
}

func TestCast(t *testing.T) {
	buf := AlignedBytes(64)
	x := Cast[int64](buf)
	require.Len(t, x, 8)
	x[1] = -1
	y := Cast[uint64](buf)
	require.Equal(t, ^uint64(0), y[1])
	require.Equal(t, buf, Bytes(x))
	require.Panics(t, func() { Cast[uint64](buf[:7]) })
}

func TestInvModPow2(t *testing.T) {
	for _, x := range []uint64{1, 3, 5, 255, 12345677} {
		for _, logm := range []int{1, 4, 13, 64} {
			inv := InvModPow2(x, logm)
			mask := ^uint64(0)
			if logm < 64 {
				mask = 1<<logm - 1
			}
			require.Equal(t, uint64(1)&mask, (x*inv)&mask)
		}
	}
	require.Panics(t, func() { InvModPow2(2, 8) })
}
