// Package driver implements the parallel driver: a worker pool that fans
// out per-result-file loading and per-column statistics aggregation,
// collecting futures in submission order regardless of completion order.
//
// Grounded on pkg/gitlib/worker.go's pool-of-workers shape (bounded
// concurrency, futures gathered after every submission), reimplemented
// over golang.org/x/sync/errgroup (as used in standardbeagle-lci's go.mod)
// instead of a CGO-bound worker pool, since this pool has no
// libgit2 handle to manage and errgroup already gives bounded concurrency,
// positional result collection, and first-error propagation in a few
// lines.
package driver

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Pool runs a bounded number of jobs concurrently, collecting results in
// submission order. The zero value is not usable; use New.
type Pool struct {
	concurrency int
}

// New returns a Pool sized to 2×NumCPU by default. A concurrency of 1
// serializes every submission, giving a serial executor for constrained
// environments as an injectable alternative.
func New(concurrency int) *Pool {
	if concurrency <= 0 {
		concurrency = 2 * runtime.NumCPU()
	}

	return &Pool{concurrency: concurrency}
}

// Run submits one job per item in jobs, running at most p.concurrency
// concurrently, and returns their results positionally. If ctx is
// cancelled or any job returns an error, Run stops launching new jobs,
// waits for in-flight ones, and returns the first error encountered; no
// partial result slice is meaningful in that case.
func Run[T, R any](ctx context.Context, p *Pool, jobs []T, fn func(context.Context, T) (R, error)) ([]R, error) {
	results := make([]R, len(jobs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.concurrency)

	for i, item := range jobs {
		i, item := i, item

		g.Go(func() error {
			r, err := fn(gctx, item)
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
