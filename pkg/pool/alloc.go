//go:build go1.22

package pool

import (
	"unsafe"

	"github.com/flier/poolarena/pkg/xunsafe"
)

// AllocFailed is the reserved sentinel pointer Alloc returns when no free
// block satisfies the request. It is the bit pattern of -1 cast to a
// pointer: a reserved, non-null value distinct from any legitimate payload
// address Alloc could otherwise return. It must never be dereferenced;
// Calloc and Realloc translate it to nil for callers that would rather test
// against the zero value.
var AllocFailed = (*byte)(unsafe.Pointer(^uintptr(0)))

// Alloc allocates size bytes from the pool using first-fit over the free
// list (see freelist.go), splitting the chosen block and returning a
// pointer to the new payload.
//
// A zero-byte request always returns nil, not AllocFailed: the spec this
// allocator follows treats a zero-sized request as silently producing no
// block, distinct from a genuine out-of-space failure.
//
// When no free block fits, Alloc returns AllocFailed.
func (p *Pool) Alloc(size int) *byte {
	if size == 0 {
		return nil
	}

	s := roundUp(size)

	block := p.findFit(s)
	if !block.Valid() {
		p.logf("alloc", "out of space: requested %d bytes (rounded %d)", size, s)

		return AllocFailed
	}

	return p.split(block, s)
}

// split carves an s-byte allocated block from the low end of the free block
// at addr, threading what remains of it back into the free list in its
// place (inheriting addr's prev/next links), and returns the new payload
// pointer.
func (p *Pool) split(addr xunsafe.Addr[byte], s int) *byte {
	h := freeAt(addr)
	prev, next := h.prev, h.next
	oldSize := int(h.size)

	residualAddr := addr.AddBytes(WordSize + s)
	residualSize := oldSize - WordSize - s

	res := freeAt(residualAddr)
	res.size = uintptr(residualSize)
	res.prev = prev
	res.next = next

	if prev.Valid() {
		freeAt(prev).next = residualAddr
	}
	if next.Valid() {
		freeAt(next).prev = residualAddr
	}

	p.cursor = residualAddr

	p.allocated += WordSize + s
	p.allocatedCount++
	p.free -= WordSize + s

	// addr now holds an allocated block: overwrite its header in place. The
	// size field lands at the same offset for both header shapes, so this
	// is the only write needed to change the block's role.
	allocAt(addr).size = uintptr(s)

	p.logf("alloc", "%#x: %d bytes (residual %d bytes at %#x)",
		uintptr(addr), s, residualSize, uintptr(residualAddr))

	// Unlike the header views in block.go, this pointer is handed to the
	// caller and must outlive this call; Escape marks it as such rather than
	// leaving it to whatever escape analysis infers from the unsafe cast.
	return xunsafe.Escape(addr.AddBytes(WordSize).AssertValid())
}
