package workpool

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// DefaultLimit is the cap on concurrently running tasks within a single
// Run/MapIndexed call when the caller passes limit <= 0. It mirrors
// runtime.GOMAXPROCS(0). Each call enforces its cap independently; nested
// calls do not share one budget.
var DefaultLimit = runtime.GOMAXPROCS(0)

func limitOrDefault(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	return limit
}

// Run executes tasks concurrently, capped at limit (or DefaultLimit),
// joining on the first error. This is the fork-join primitive behind a
// branch node's "train routing classifier in parallel with training child
// subtrees" pattern; call it with exactly two closures for that case, or
// more for simple concurrent fan-out.
func Run(ctx context.Context, limit int, tasks ...func(ctx context.Context) error) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limitOrDefault(limit))
	for _, task := range tasks {
		task := task
		g.Go(func() error { return task(gctx) })
	}
	return g.Wait()
}

// MapIndexed calls fn(ctx, i) for every i in [0, n), capped at limit (or
// DefaultLimit) concurrent calls, and returns results in index order. It is
// the data-parallel map used for per-child example selection, per-label
// classifier fitting, and per-row normalisation.
func MapIndexed[T any](ctx context.Context, limit int, n int, fn func(ctx context.Context, i int) (T, error)) ([]T, error) {
	results := make([]T, n)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limitOrDefault(limit))
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			r, err := fn(gctx, i)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
