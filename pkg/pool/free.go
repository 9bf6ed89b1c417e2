//go:build go1.22

package pool

import "github.com/flier/poolarena/pkg/xunsafe"

// Free releases a block previously returned by Alloc, Calloc, or Realloc on
// this Pool back to the free list, merging it with an address-adjacent free
// neighbor on either side (or both) if one exists.
//
// ptr must be a payload pointer this Pool actually returned and that has not
// already been freed; the core does not validate membership or detect
// double-frees, and passing any other pointer is undefined behavior. Free
// always returns nil — matching the source this allocator follows, which
// advertises corruption detection on this path but does not implement it
// (Check is where that audit actually happens).
func (p *Pool) Free(ptr *byte) error {
	if ptr == nil {
		return nil
	}

	blockAddr := xunsafe.AddrOf(ptr).AddBytes(-WordSize)
	size := int(allocAt(blockAddr).size)

	p.free += size

	left, right := p.boundingFree(blockAddr)

	rightAdjacent := right.Valid() && blockAddr.AddBytes(WordSize+size) == right
	leftAdjacent := left.Valid() && left.AddBytes(WordSize+int(freeAt(left).size)) == blockAddr

	switch {
	case leftAdjacent && rightAdjacent:
		// The released block sits exactly between two free neighbors: all
		// three collapse into one, reclaiming both intervening headers.
		lh, rh := freeAt(left), freeAt(right)

		lh.size += uintptr(2*WordSize) + uintptr(size) + rh.size
		lh.next = rh.next
		if rh.next.Valid() {
			freeAt(rh.next).prev = left
		}

		p.free += 2 * WordSize
		p.cursor = left

	case leftAdjacent:
		lh := freeAt(left)
		lh.size += uintptr(WordSize) + uintptr(size)

		p.free += WordSize
		p.cursor = left

	case rightAdjacent:
		rh := freeAt(right)
		bh := freeAt(blockAddr)

		bh.size = uintptr(size) + uintptr(WordSize) + rh.size
		bh.prev = rh.prev
		bh.next = rh.next
		if rh.prev.Valid() {
			freeAt(rh.prev).next = blockAddr
		}
		if rh.next.Valid() {
			freeAt(rh.next).prev = blockAddr
		}

		p.free += WordSize
		p.cursor = blockAddr

	default:
		// No adjacency: the block becomes a standalone free segment wedged
		// between left and right.
		bh := freeAt(blockAddr)
		bh.size = uintptr(size)
		bh.prev = left
		bh.next = right
		if left.Valid() {
			freeAt(left).next = blockAddr
		}
		if right.Valid() {
			freeAt(right).prev = blockAddr
		}

		p.cursor = blockAddr
	}

	p.allocated -= size + WordSize
	p.allocatedCount--

	p.logf("free", "%#x: %d bytes", uintptr(blockAddr), size)

	return nil
}
