// Package utils implements various helper functions shared by the packages of this module.
package utils

import (
	"fmt"
	"math/bits"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Alignment is the byte alignment of every buffer handed out by [AlignedBytes]
// and of every region carved out of a scratch arena.
const Alignment = 64

// Number is the set of scalar types that can be viewed through a byte buffer.
type Number interface {
	constraints.Integer | constraints.Float
}

// BitReverse64 returns the bit-reverse value of the input value, within a context of 2^bitLen.
func BitReverse64[V constraints.Integer](index V, bitLen int) V {
	return V(bits.Reverse64(uint64(index)) >> (64 - bitLen))
}

// IsPow2 returns true if x is a power of two.
func IsPow2[V constraints.Integer](x V) bool {
	return x > 0 && (x&(x-1)) == 0
}

// DivCeil returns ceil(a/b).
func DivCeil[V constraints.Integer](a, b V) V {
	return (a + b - 1) / b
}

// AlignUp returns the smallest multiple of align that is greater or equal to x.
// align must be a power of two.
func AlignUp[V constraints.Integer](x, align V) V {
	return (x + align - 1) &^ (align - 1)
}

// AlignedBytes allocates a new zeroed byte slice of length n whose first
// element is aligned on [Alignment] bytes.
func AlignedBytes(n int) []byte {
	if n == 0 {
		return []byte{}
	}
	buf := make([]byte, n+Alignment-1)
	/* #nosec G103 -- address is only inspected for its alignment */
	off := int(-uintptr(unsafe.Pointer(&buf[0])) & (Alignment - 1))
	return buf[off : off+n : off+n]
}

// IsAligned returns true if the first element of buf is aligned on [Alignment] bytes.
func IsAligned(buf []byte) bool {
	if len(buf) == 0 {
		return true
	}
	/* #nosec G103 -- address is only inspected for its alignment */
	return uintptr(unsafe.Pointer(&buf[0]))&(Alignment-1) == 0
}

// Cast reinterprets buf as a slice of T.
// len(buf) must be a multiple of the size of T.
func Cast[T Number](buf []byte) []T {
	if len(buf) == 0 {
		return nil
	}
	var zero T
	size := int(unsafe.Sizeof(zero))
	if len(buf)%size != 0 {
		panic(fmt.Errorf("cannot Cast: len(buf)=%d is not a multiple of %d", len(buf), size))
	}
	/* #nosec G103 -- length is checked to be a multiple of the element size */
	return unsafe.Slice((*T)(unsafe.Pointer(&buf[0])), len(buf)/size)
}

// Bytes reinterprets s as a byte slice.
func Bytes[T Number](s []T) []byte {
	if len(s) == 0 {
		return nil
	}
	var zero T
	/* #nosec G103 -- the returned slice spans exactly the memory of s */
	return unsafe.Slice((*byte)(unsafe.Pointer(&s[0])), len(s)*int(unsafe.Sizeof(zero)))
}

// InvModPow2 returns x^-1 mod 2^logm for an odd x.
func InvModPow2(x uint64, logm int) uint64 {
	if x&1 == 0 {
		panic(fmt.Errorf("cannot InvModPow2: x=%d is even", x))
	}
	// Newton iteration doubles the number of correct bits at each step.
	inv := x
	for i := 0; i < 6; i++ {
		inv *= 2 - x*inv
	}
	if logm >= 64 {
		return inv
	}
	return inv & (1<<logm - 1)
}
