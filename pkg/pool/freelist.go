//go:build go1.22

package pool

import "github.com/flier/poolarena/pkg/xunsafe"

// boundingFree returns the free blocks immediately bounding target in
// address order: left is the greatest free block below target (zero if
// target precedes every free block), right is the least free block above
// target (zero if target follows every free block).
//
// The search starts at the cursor and divides on the comparison between
// target and the cursor's address, walking prev for a target below it and
// next for a target above it — the same bidirectional strategy the address
// ordering (I4) makes possible for Alloc's first-fit search.
func (p *Pool) boundingFree(target xunsafe.Addr[byte]) (left, right xunsafe.Addr[byte]) {
	cur := p.cursor
	if !cur.Valid() {
		return 0, 0
	}

	if target < cur {
		for {
			h := freeAt(cur)
			if !h.prev.Valid() {
				return 0, cur
			}
			if h.prev < target {
				return h.prev, cur
			}
			cur = h.prev
		}
	}

	for {
		h := freeAt(cur)
		if !h.next.Valid() {
			return cur, 0
		}
		if h.next > target {
			return cur, h.next
		}
		cur = h.next
	}
}

// findFit returns the address of the first free block that fits s bytes,
// searching from the cursor toward lower addresses first (via prev), then
// wrapping to higher addresses (via next). Returns zero if none fits.
//
// A block fits iff its size strictly exceeds s + freeHeaderSize, leaving
// enough room for the residual to remain a valid free block per I3. This
// rejects an exact-fit-with-no-remainder allocation: a free block whose size
// is anywhere from s up to s + freeHeaderSize is skipped.
func (p *Pool) findFit(s int) xunsafe.Addr[byte] {
	if !p.cursor.Valid() {
		return 0
	}

	fits := func(a xunsafe.Addr[byte]) bool {
		return int(freeAt(a).size) > s+freeHeaderSize
	}

	if fits(p.cursor) {
		return p.cursor
	}

	for a := freeAt(p.cursor).prev; a.Valid(); a = freeAt(a).prev {
		if fits(a) {
			return a
		}
	}

	for a := freeAt(p.cursor).next; a.Valid(); a = freeAt(a).next {
		if fits(a) {
			return a
		}
	}

	return 0
}

// walkFree sums the size field of every free block reachable from the
// cursor and counts them, walking both directions exactly as Check does its
// audit.
func (p *Pool) walkFree() (sum, count int) {
	if !p.cursor.Valid() {
		return 0, 0
	}

	h := freeAt(p.cursor)
	sum = int(h.size)
	count = 1

	for a := h.prev; a.Valid(); a = freeAt(a).prev {
		sum += int(freeAt(a).size)
		count++
	}
	for a := h.next; a.Valid(); a = freeAt(a).next {
		sum += int(freeAt(a).size)
		count++
	}

	return sum, count
}
