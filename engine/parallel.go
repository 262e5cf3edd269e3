package engine

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// ParallelFor splits [0, n) into contiguous chunks and runs fn on each
// chunk from its own goroutine, joining before return. Workloads below
// minForFanout run inline to skip goroutine overhead
//
// fn must only read shared state and write results keyed by index;
// chunk boundaries are deterministic but scheduling order is not
func ParallelFor(n, minForFanout int, fn func(start, end int)) {
	if n <= 0 {
		return
	}

	workers := runtime.NumCPU()
	if n < minForFanout || workers < 2 {
		fn(0, n)
		return
	}
	if workers > n {
		workers = n
	}

	chunk := (n + workers - 1) / workers

	var g errgroup.Group
	for start := 0; start < n; start += chunk {
		end := start + chunk
		if end > n {
			end = n
		}
		g.Go(func() error {
			fn(start, end)
			return nil
		})
	}
	_ = g.Wait() // workers never return errors, Wait only joins
}
