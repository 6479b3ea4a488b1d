package main

import (
	"runtime"
	"sync"
)

// rowSpan is a half-open range of viewport rows assigned to one worker.
type rowSpan struct{ start, end int }

// splitRows partitions row indices [0, rows) into at most workers disjoint
// contiguous spans. Every row lands in exactly one span, so workers never
// write the same cell.
func splitRows(rows, workers int) []rowSpan {
	if workers < 1 {
		workers = 1
	}
	rowsPer := (rows + workers - 1) / workers
	spans := make([]rowSpan, 0, workers)
	for start := 0; start < rows; start += rowsPer {
		end := start + rowsPer
		if end > rows {
			end = rows
		}
		spans = append(spans, rowSpan{start: start, end: end})
	}
	return spans
}

// renderRows traces every viewport cell, fanning rows out across one
// goroutine per span and joining them before the presenter runs. Cells are
// partitioned by row, so no locking is needed.
func renderRows(camera Vec3, fb *frameBuffer, adjWidth, adjHeight int) {
	sphere := sceneSphere()
	aspect := float64(fb.width) / float64(fb.height)

	var wg sync.WaitGroup
	for _, sp := range splitRows(adjHeight, runtime.NumCPU()) {
		wg.Add(1)
		go func(sp rowSpan) {
			defer wg.Done()
			for y := sp.start; y < sp.end; y++ {
				for x := 0; x < adjWidth; x++ {
					fb.store(x, y, traceCell(x, y, adjWidth, adjHeight, aspect, camera, sphere))
				}
			}
		}(sp)
	}
	wg.Wait()
}
