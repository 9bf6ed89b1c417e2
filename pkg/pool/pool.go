//go:build go1.22

// Package pool implements a pool arena allocator: a free-list manager that
// subdivides one pre-acquired byte region into variable-sized chunks on
// demand and reclaims them on release, without ever calling into an
// underlying OS allocator after Init.
//
// A Pool owns no memory of its own. It layers a doubly-linked,
// address-ordered free list directly onto bytes supplied by the caller,
// threading the list links through the region's own unused space. This
// makes it suitable for constrained environments — no kernel, no syscalls
// after setup — or for sub-allocating inside one buffer obtained up front
// from a larger host.
//
// A zero Pool is not ready to use; call Init with a backing region first.
//
//	var p pool.Pool
//	if err := p.Init(region); err != nil {
//		...
//	}
//	ptr := p.Alloc(64)
//	...
//	p.Free(ptr)
//
// Pool is single-threaded: none of its methods synchronize access, and a
// Pool shared across goroutines without external mutual exclusion is
// undefined behavior. This mirrors the embedded target the design is meant
// for, where the cost of a lock is unwanted and callers either pin
// allocations to one thread or serialize at a higher level.
package pool

import (
	"github.com/flier/poolarena/internal/debug"
	"github.com/flier/poolarena/pkg/xunsafe"
)

// Pool is one arena: a single contiguous byte region, managed as a
// population of allocated and free blocks.
//
// The zero value is not usable; construct one with Init.
type Pool struct {
	_ xunsafe.NoCopy

	base   xunsafe.Addr[byte]
	length int

	allocated      int
	allocatedCount int

	free   int
	cursor xunsafe.Addr[byte] // address of some free block, or 0 if none remain
}

// Init establishes an arena over region: the whole of region becomes a
// single free block, and the Pool is ready to serve Alloc/Calloc/Realloc
// and Free calls against it.
//
// Init fails with ErrBadInit if region is nil or too small to hold even one
// free block's header (len(region) <= 3*WordSize).
func (p *Pool) Init(region []byte) error {
	if len(region) == 0 {
		return ErrBadInit
	}
	if len(region) <= freeHeaderSize {
		return ErrBadInit
	}

	base := xunsafe.AddrOf(&region[0])

	p.base = base
	p.length = len(region)
	p.allocated = 0
	p.allocatedCount = 0
	p.free = len(region) - WordSize
	p.cursor = base

	h := freeAt(base)
	h.size = uintptr(p.free)
	h.prev = 0
	h.next = 0

	p.logf("init", "base=%#x length=%d free=%d", uintptr(base), p.length, p.free)

	return nil
}

// Cap returns the total length of the backing region, as supplied to Init.
func (p *Pool) Cap() int { return p.length }

// Allocated returns the number of bytes currently charged to live allocated
// blocks, including their headers.
func (p *Pool) Allocated() int { return p.allocated }

// FreeBytes returns the number of bytes currently available across all free
// blocks (excluding each free block's own header word).
func (p *Pool) FreeBytes() int { return p.free }

// logf emits one per-operation trace line through internal/debug.Log. This
// is distinct from the public Log method (see check.go), which is the
// spec's stateless diagnostic dump rather than an operation trace.
func (p *Pool) logf(op, format string, args ...any) {
	debug.Log([]any{"base=%#x len=%d", uintptr(p.base), p.length}, op, format, args...)
}
