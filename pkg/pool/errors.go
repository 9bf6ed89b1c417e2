//go:build go1.22

package pool

import (
	"errors"
	"fmt"
)

// ErrBadInit is returned by Init when the supplied region is nil or too
// small to hold a single free block's header.
var ErrBadInit = errors.New("pool: region is nil or too small to hold a block header")

// ErrOutOfSpace describes the condition Alloc reports by returning
// AllocFailed: no free block was large enough to satisfy the request. It is
// not itself returned by any method — Alloc has no error return, per the
// sentinel-pointer convention in alloc.go — but it exists so callers can
// build their own error value (fmt.Errorf("%w", pool.ErrOutOfSpace)) when
// wrapping AllocFailed into Go's usual error idiom.
var ErrOutOfSpace = errors.New("pool: no free block satisfies the request")

// ErrCorruption is the sentinel *CorruptionError values compare equal to
// under errors.Is.
var ErrCorruption = errors.New("pool: whole-arena accounting mismatch")

// CorruptionError reports a whole-arena accounting mismatch detected by
// Check. Detection is best-effort: most forms of corruption, such as
// freeing a pointer the Pool never returned, are undefined behavior and are
// not guaranteed to be caught at all, let alone reported through this type.
type CorruptionError struct {
	// Reason names which of Check's three cross-checks failed.
	Reason string
	// Expected is the value Check's internal counters implied.
	Expected int
	// Observed is the value Check actually found (from the free-list walk
	// or from the caller-supplied in-use count).
	Observed int
}

func (e *CorruptionError) Error() string {
	return fmt.Sprintf("pool: corruption detected (%s): expected %d, observed %d",
		e.Reason, e.Expected, e.Observed)
}

// Is reports whether target is ErrCorruption, so that
// errors.Is(err, pool.ErrCorruption) works for any *CorruptionError.
func (e *CorruptionError) Is(target error) bool {
	return target == ErrCorruption
}
