//go:build go1.22

package pool

import "github.com/flier/poolarena/pkg/xunsafe"

// Calloc allocates size bytes, as Alloc does, and zeroes the normalized
// allocation before returning it. Calloc returns nil on any failure to
// allocate, including the zero-size and out-of-space cases Alloc
// distinguishes with nil and AllocFailed respectively.
func (p *Pool) Calloc(size int) *byte {
	ptr := p.Alloc(size)
	if ptr == nil || ptr == AllocFailed {
		return nil
	}

	xunsafe.Clear(ptr, roundUp(size))

	return ptr
}

// Realloc allocates a new size-byte buffer, copies min(SizeOf(old), size)
// bytes from old into it, and frees old.
//
// If the new allocation fails, old is left untouched and Realloc returns
// nil — old remains a valid pointer into this Pool. If old is nil, Realloc
// behaves like Alloc.
func (p *Pool) Realloc(old *byte, size int) *byte {
	if old == nil {
		ptr := p.Alloc(size)
		if ptr == AllocFailed {
			return nil
		}

		return ptr
	}

	newPtr := p.Alloc(size)
	if newPtr == nil || newPtr == AllocFailed {
		return nil
	}

	n := p.SizeOf(old)
	if size < n {
		n = size
	}
	if n > 0 {
		xunsafe.Copy(newPtr, old, n)
	}

	_ = p.Free(old)

	return newPtr
}

// SizeOf returns the normalized allocation size of a live block previously
// returned by Alloc, Calloc, or Realloc — i.e. roundUp of whatever size was
// originally requested for it.
func (p *Pool) SizeOf(ptr *byte) int {
	blockAddr := xunsafe.AddrOf(ptr).AddBytes(-WordSize)

	return int(allocAt(blockAddr).size)
}
