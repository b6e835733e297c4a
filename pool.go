package fred

import "sync"

// parallelFor runs fn(i) for every i in [0, n) across a fixed-size worker
// pool, blocking until all calls complete. It drives the package's
// data-parallel inner loops: free-space-diagram cell construction and the
// shortcut graph's edge table.
//
// No ecosystem worker-pool library is grounded anywhere in the retrieval
// pack; this is plain idiomatic Go concurrency built from sync.WaitGroup and
// a buffered job channel, matching the shape used throughout the pack's
// own ad hoc concurrency (see DESIGN.md).
func parallelFor(n int, fn func(i int)) {
	if n <= 0 {
		return
	}
	workers := GetConfig().workerCount()
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}

	jobs := make(chan int, n)
	for i := 0; i < n; i++ {
		jobs <- i
	}
	close(jobs)

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range jobs {
				fn(i)
			}
		}()
	}
	wg.Wait()
}
