package compositefilter

import (
	"golang.org/x/sync/errgroup"

	"github.com/NEWSLabNTU/point-cloud-filter/point"
)

// ProcessFrameParallel evaluates Contains across workers goroutines,
// partitioning points into contiguous chunks, then compacts survivors in
// original order and calls Advance exactly once — matching ProcessFrame's
// one-window-per-frame invariant even though evaluation is parallel.
// workers <= 1 runs the chunking machinery with a single worker rather
// than falling back to ProcessFrame, so callers see identical ordering
// either way.
func (f *Filter) ProcessFrameParallel(points []point.Point, workers int) []point.Point {
	if workers < 1 {
		workers = 1
	}
	n := len(points)
	keep := make([]bool, n)

	chunk := (n + workers - 1) / workers
	if chunk == 0 {
		chunk = 1
	}

	var g errgroup.Group
	for start := 0; start < n; start += chunk {
		start := start
		end := start + chunk
		if end > n {
			end = n
		}
		g.Go(func() error {
			for i := start; i < end; i++ {
				keep[i] = f.Contains(points[i])
			}
			return nil
		})
	}
	_ = g.Wait() // no stage returns an error

	kept := make([]point.Point, 0, n)
	for i, ok := range keep {
		if ok {
			kept = append(kept, points[i])
		}
	}
	f.Advance()
	return kept
}
