package develop

import(
	"runtime"
	"sync"
)

// parallelRows cuts [0,rows) into contiguous ranges, and runs fn over
// each range on its own goroutine. Every stage is a pure function of
// position and calibration, so ranges never share writable state and
// the output is the same as a single pass over all the rows.
func parallelRows(rows, workers int, fn func(lo, hi int)) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > rows {
		workers = rows
	}
	if workers <= 1 {
		fn(0, rows)
		return
	}

	var wg sync.WaitGroup
	chunk := (rows + workers - 1) / workers
	for lo := 0; lo < rows; lo += chunk {
		hi := lo + chunk
		if hi > rows { hi = rows }
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			fn(lo, hi)
		}(lo, hi)
	}
	wg.Wait()
}
