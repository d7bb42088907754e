// Package parallel provides the row-partitioned fan-out used by the matmul
// kernel. Workers are plain goroutines spawned per call and joined before
// returning; each owns a disjoint, contiguous row range, so no locks or
// atomics are needed.
package parallel

import (
	"math"
	"sync"
)

// Word sizes, in bytes, that anchor the rows-per-worker heuristic.
const (
	word32 = 4
	word64 = 8
)

// RowsPerWorker estimates how many output rows each worker should own. The
// estimate is deliberately coarse: floor(log(rows + word32)) * (word64 -
// word32) grows slowly with the row count, so large multiplies fan out wider
// while small ones stay nearly serial. Never returns less than 1.
func RowsPerWorker(rows int) int {
	per := int(math.Log(float64(rows)+word32)) * (word64 - word32)
	if per < 1 {
		return 1
	}
	return per
}

// ForRows partitions [0, rows) into contiguous chunks of RowsPerWorker(rows)
// rows and runs f(start, end) on each chunk in its own goroutine, blocking
// until all workers finish. With serial set, or when a single chunk covers
// every row, f runs once on the calling goroutine.
//
// f must only write to state owned by its row range; the disjoint-row
// partition is the whole synchronization story.
func ForRows(rows int, serial bool, f func(start, end int)) {
	if rows <= 0 {
		return
	}
	per := RowsPerWorker(rows)
	if serial || per >= rows {
		f(0, rows)
		return
	}

	var wg sync.WaitGroup
	for start := 0; start < rows; start += per {
		end := start + per
		if end > rows {
			end = rows
		}
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			f(s, e)
		}(start, end)
	}
	wg.Wait()
}
