//go:build go1.22

package xunsafe

import (
	"unsafe"

	"github.com/flier/poolarena/pkg/xunsafe/layout"
)

// Addr is a typed address: a uintptr tagged with the type it points to, so
// that arithmetic on it is automatically scaled by sizeof(T).
//
// Unlike *T, an Addr[T] may be the zero value without denoting "a pointer to
// the zero value of T"; zero means "no address", mirroring a null pointer.
// This makes Addr suitable for fields that are sometimes unset, such as the
// next/end cursors of an arena before its first chunk is grown.
type Addr[T any] uintptr

// AddrOf returns the address of p as an Addr[T].
func AddrOf[T any](p *T) Addr[T] {
	return Addr[T](uintptr(unsafe.Pointer(p)))
}

// Add returns a advanced by n elements of T, i.e. n*sizeof(T) bytes.
func (a Addr[T]) Add(n int) Addr[T] {
	return a + Addr[T](n*layout.Size[T]())
}

// AddBytes returns a advanced by n raw bytes, ignoring the size of T.
func (a Addr[T]) AddBytes(n int) Addr[T] {
	return a + Addr[T](n)
}

// Sub returns the number of bytes between a and b (a - b).
func (a Addr[T]) Sub(b Addr[T]) int {
	return int(a) - int(b)
}

// RoundUpTo rounds a up to the given alignment, which must be a power of two.
func (a Addr[T]) RoundUpTo(align int) Addr[T] {
	return Addr[T](layout.RoundUp(uintptr(a), uintptr(align)))
}

// Valid reports whether a is a non-zero address.
func (a Addr[T]) Valid() bool {
	return a != 0
}

// AssertValid converts a back into a *T.
//
// Returns nil if a is the zero address; this mirrors the convention that a
// zero Addr is a null pointer.
func (a Addr[T]) AssertValid() *T {
	if a == 0 {
		return nil
	}
	return (*T)(unsafe.Pointer(uintptr(a)))
}
