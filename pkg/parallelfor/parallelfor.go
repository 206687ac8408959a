// Package parallelfor provides the single worker-pool primitive every
// integrator fans its per-pixel/per-sample work out over.
package parallelfor

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// ParallelFor partitions [0, n) across numWorkers goroutines and calls fn
// once per index. numWorkers == -1 uses runtime.NumCPU(); numWorkers == 1
// runs every index inline on the calling goroutine without spawning any
// goroutine at all, which is what makes single-worker runs bit-for-bit
// reproducible for debugging.
//
// fn is passed the index and the id (0..numWorkers-1) of the worker
// running it, so a caller can key a per-worker RNG off workerID without any
// extra synchronization. The first error returned by fn cancels ctx and is
// returned by ParallelFor once every in-flight call has returned.
func ParallelFor(ctx context.Context, n int64, numWorkers int, fn func(idx int64, workerID int) error) error {
	if numWorkers == -1 {
		numWorkers = runtime.NumCPU()
	}
	if numWorkers < 1 {
		numWorkers = 1
	}

	if numWorkers == 1 {
		for i := int64(0); i < n; i++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := fn(i, 0); err != nil {
				return err
			}
		}
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	chunk := (n + int64(numWorkers) - 1) / int64(numWorkers)
	if chunk < 1 {
		chunk = 1
	}

	for w := 0; w < numWorkers; w++ {
		start := int64(w) * chunk
		if start >= n {
			break
		}
		end := start + chunk
		if end > n {
			end = n
		}
		workerID := w
		g.Go(func() error {
			for i := start; i < end; i++ {
				if err := gctx.Err(); err != nil {
					return err
				}
				if err := fn(i, workerID); err != nil {
					return err
				}
			}
			return nil
		})
	}
	return g.Wait()
}
