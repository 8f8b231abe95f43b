package hal

import (
	"fmt"
	"unsafe"
)

// overlap reports whether the memory spanned by a and b intersects.
func overlap[T any](a, b []T) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	var zero T
	size := unsafe.Sizeof(zero)
	/* #nosec G103 -- addresses are only compared */
	a0 := uintptr(unsafe.Pointer(&a[0]))
	/* #nosec G103 -- addresses are only compared */
	b0 := uintptr(unsafe.Pointer(&b[0]))
	return a0 < b0+uintptr(len(b))*size && b0 < a0+uintptr(len(a))*size
}

func assertCol(name string, col, cols int) {
	if !(col >= 0 && col < cols) {
		panic(fmt.Errorf("%s: invalid column %d for %d columns", name, col, cols))
	}
}

func assertDegree(name string, n, want int) {
	if n != want {
		panic(fmt.Errorf("%s: invalid ring degree %d != %d", name, n, want))
	}
}

func assertBackend(name, have, want string) {
	if have != want {
		panic(fmt.Errorf("%s: layout prepared by backend %s used with backend %s", name, have, want))
	}
}

func assertNoOverlap[T any](name string, a, b []T) {
	if overlap(a, b) {
		panic(fmt.Errorf("%s: result and input must not overlap", name))
	}
}
