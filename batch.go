package hopf

import "github.com/gogpu/hopf/internal/parallel"

// FitResult is the outcome of fitting one point in a batch.
type FitResult struct {
	Point Point
	Ring  Ring
	Err   error
}

// FitAll fits the ring over every point concurrently. Results are in input
// order; degenerate points carry their *DegenerateFiberError in Err and do
// not affect the others. If workers is 0 or negative, GOMAXPROCS is used.
func FitAll(points []Point, workers int) []FitResult {
	results := make([]FitResult, len(points))
	if len(points) == 0 {
		return results
	}

	pool := parallel.NewWorkerPool(min(max(workers, 0), len(points)))
	defer pool.Close()

	pool.ForEach(len(points), func(i int) {
		ring, err := FitRing(points[i])
		results[i] = FitResult{Point: points[i], Ring: ring, Err: err}
	})

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}
	Logger().Debug("hopf: batch fit", "points", len(points), "workers", pool.Workers(), "degenerate", failed)
	return results
}
