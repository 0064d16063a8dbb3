package model

import "golang.org/x/sync/errgroup"

// forEachRow calls fn once for every row in [0, rows). With more than one
// worker the rows are split into contiguous blocks, one goroutine per block,
// and forEachRow returns once every block is done.
//
// fn must only write state that belongs to its own row.
func forEachRow(rows, workers int, fn func(row int)) {
	if workers <= 1 || rows <= 1 {
		for row := range rows {
			fn(row)
		}
		return
	}

	var (
		eg            errgroup.Group
		rowsPerWorker = (rows + workers - 1) / workers // Ceiling division
	)

	for i := range workers {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, rows)
		)
		if startRow >= rows {
			break
		}

		eg.Go(func() error {
			for row := startRow; row < endRow; row++ {
				fn(row)
			}
			return nil
		})
	}

	_ = eg.Wait()
}
