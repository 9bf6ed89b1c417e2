// Command poolarena-demo is a small demonstration driver for pkg/pool.
//
// It plays the role of the "environment" the core allocator expects: it
// obtains a backing region from the host allocator (here, Go's own
// allocator, standing in for whatever a bare-metal boot sequence would use
// to reserve a fixed buffer), hands it to a Pool, and exercises a handful of
// allocations, a release, and a diagnostic dump.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/flier/poolarena/pkg/pool"
	"github.com/flier/poolarena/pkg/xerrors"
)

func main() {
	size := flag.Int("size", 1024*8, "size in bytes of the backing region to reserve")
	flag.Parse()

	// Acquire a backing region from the host allocator once, up front. The
	// Pool never returns to it after Init.
	region := make([]byte, *size)

	var arena pool.Pool
	if err := arena.Init(region); err != nil {
		fmt.Fprintf(os.Stderr, "poolarena-demo: init failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("arena ready: %d bytes, %d free\n", arena.Cap(), arena.FreeBytes())

	const count = 4
	var blocks [count]*byte

	for i := range blocks {
		p := arena.Alloc(pool.WordSize)
		if p == pool.AllocFailed {
			fmt.Fprintf(os.Stderr, "poolarena-demo: alloc %d failed\n", i)
			os.Exit(1)
		}
		blocks[i] = p
	}

	fmt.Printf("allocated %d blocks: allocated=%d free=%d\n",
		count, arena.Allocated(), arena.FreeBytes())

	if err := arena.Free(blocks[1]); err != nil {
		fmt.Fprintf(os.Stderr, "poolarena-demo: free failed: %v\n", err)
		os.Exit(1)
	}

	var inUse int
	for i, p := range blocks {
		if i == 1 {
			continue
		}
		inUse += arena.SizeOf(p)
	}

	if err := arena.Check(inUse); err != nil {
		if corrupt, ok := xerrors.AsA[*pool.CorruptionError](err); ok {
			fmt.Fprintf(os.Stderr, "poolarena-demo: check failed: %s: expected %d, observed %d\n",
				corrupt.Reason, corrupt.Expected, corrupt.Observed)
		} else {
			fmt.Fprintf(os.Stderr, "poolarena-demo: check failed: %v\n", err)
		}
		os.Exit(1)
	}

	arena.Log()

	fmt.Println("ok")
}
