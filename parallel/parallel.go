// Package parallel executes a half-open index range in contiguous chunks
// across the available CPUs. It is the data-parallel hint used by the
// row-parallel matrix-vector products: every chunk touches a disjoint
// slice of output rows, so no synchronization is needed beyond the final
// join.
package parallel

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Execute runs work over [0, n) split into at most NumCPU contiguous
// chunks and waits for completion. work receives a half-open [start, end)
// sub-range and must not touch indices outside it.
//
// n <= 0 is a no-op. When n is smaller than the CPU count, each index
// becomes its own chunk.
func Execute(n int, work func(start, end int)) {
	if n <= 0 {
		return
	}

	nbTasks := runtime.NumCPU()
	chunk := n / nbTasks
	if chunk < 1 {
		chunk = 1
		nbTasks = n
	}
	extra := n - nbTasks*chunk

	var g errgroup.Group
	start := 0
	for i := 0; i < nbTasks; i++ {
		end := start + chunk
		if extra > 0 {
			end++
			extra--
		}
		s, e := start, end
		g.Go(func() error {
			work(s, e)
			return nil
		})
		start = end
	}
	// work functions never fail; Wait only joins the chunks.
	_ = g.Wait()
}
