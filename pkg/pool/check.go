//go:build go1.22

package pool

import "github.com/flier/poolarena/internal/debug"

// Check audits the whole arena's byte accounting: it walks the free list
// from the cursor in both directions, recomputing the total free-byte count
// and the number of live free segments, and verifies three independent
// restatements of invariant I6 (allocated + free + one header word per free
// block == the arena's total length):
//
//  1. The recomputed free-byte total matches the Pool's own free-byte
//     counter, catching a corrupted or miscounted free list.
//  2. inUse — the caller's own tally of currently-live payload bytes, not
//     counting headers — matches what the Pool's allocated-byte counter
//     implies once its header words are subtracted back out.
//  3. allocated + free + WordSize*(free block count) equals the total
//     region length.
//
// p.allocated already carries one header word per live allocated block (see
// alloc.go/free.go), so only the free list's headers need adding back in —
// adding allocatedCount here too would double-count them.
//
// Check returns nil iff all three agree; otherwise it returns a
// *CorruptionError describing the first mismatch found. Like the design it
// follows, this is best-effort: most forms of corruption (such as freeing
// an invalid pointer) are undefined behavior and are not guaranteed to be
// caught here.
func (p *Pool) Check(inUse int) error {
	freeSum, freeCount := p.walkFree()

	if freeSum != p.free {
		return &CorruptionError{
			Reason:   "free list total",
			Expected: p.free,
			Observed: freeSum,
		}
	}

	payload := p.allocated - WordSize*p.allocatedCount
	if inUse != payload {
		return &CorruptionError{
			Reason:   "caller-reported in-use bytes",
			Expected: payload,
			Observed: inUse,
		}
	}

	total := p.allocated + p.free + WordSize*freeCount
	if total != p.length {
		return &CorruptionError{
			Reason:   "whole-arena byte total",
			Expected: p.length,
			Observed: total,
		}
	}

	return nil
}

// Log prints a diagnostic dump of the arena's current state — its byte
// counters and every free segment reachable from the cursor — through
// internal/debug.Log.
func (p *Pool) Log() {
	sum, count := p.walkFree()

	debug.Log(
		[]any{"base=%#x len=%d", uintptr(p.base), p.length},
		"dump",
		"allocated=%d (%d blocks) free=%d (%d blocks, recomputed %d)",
		p.allocated, p.allocatedCount, p.free, count, sum,
	)

	first := p.cursor
	for first.Valid() && freeAt(first).prev.Valid() {
		first = freeAt(first).prev
	}

	for a, i := first, 0; a.Valid(); a, i = freeAt(a).next, i+1 {
		h := freeAt(a)

		debug.Log(nil, "dump", "free[%d] addr=%#x size=%d prev=%#x next=%#x",
			i, uintptr(a), h.size, uintptr(h.prev), uintptr(h.next))

		if !h.next.Valid() {
			break
		}
	}
}
