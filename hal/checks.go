//go:build !nohalchecks

package hal

// checks enables the shape, aliasing and backend assertions of the
// [Module] operations. Build with the nohalchecks tag to compile them out.
const checks = true
