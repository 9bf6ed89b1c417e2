//go:build go1.22

package pool_test

import "unsafe"

// unsafeBytes views the n bytes starting at ptr as a slice, for test
// assertions only; pkg/pool never exposes this to callers.
func unsafeBytes(ptr *byte, n int) []byte {
	if ptr == nil || n == 0 {
		return nil
	}
	return unsafe.Slice(ptr, n)
}

func fillBytes(ptr *byte, n int, b byte) {
	buf := unsafeBytes(ptr, n)
	for i := range buf {
		buf[i] = b
	}
}
