//go:build go1.22

package pool

import "github.com/flier/poolarena/pkg/xunsafe"

// allocHeader is the header prefixing every allocated block: the payload
// size in bytes, excluding the header itself. The payload begins
// immediately after it, at offset WordSize from the block's address.
type allocHeader struct {
	size uintptr
}

// freeHeader is the header prefixing every free block: the size field
// (shared in shape and meaning with allocHeader, so a block can change role
// in place without moving), followed by the address-ordered list links.
//
// A free block's size counts every byte from offset WordSize to the end of
// the block, which includes the two link words below — they are reclaimed
// as ordinary payload the moment the block is split or otherwise shrinks
// below the point where it needs them.
type freeHeader struct {
	size uintptr
	prev xunsafe.Addr[byte]
	next xunsafe.Addr[byte]
}

// allocAt views the block starting at a as an allocated block's header. The
// view never outlives the call that requested it, so it is hidden from
// escape analysis with NoEscape rather than forcing every free-list walk to
// heap-allocate a header view that is read or written once and discarded.
func allocAt(a xunsafe.Addr[byte]) *allocHeader {
	return xunsafe.NoEscape(xunsafe.Cast[allocHeader](a.AssertValid()))
}

// freeAt views the block starting at a as a free block's header, under the
// same no-escape discipline as allocAt.
func freeAt(a xunsafe.Addr[byte]) *freeHeader {
	return xunsafe.NoEscape(xunsafe.Cast[freeHeader](a.AssertValid()))
}
