// Package fanout runs one function over many items with bounded
// concurrency. boardctl uses it to move several projects at once without
// flooding the board with parallel drops.
package fanout

import (
	"context"
	"errors"
	"sync"
)

// Result holds the outcome for one item: Value on success, Err otherwise.
type Result[R any] struct {
	Value R
	Err   error
}

// Run calls fn for every item using at most maxWorkers goroutines at a time
// and returns the results in input order. A maxWorkers below 1 runs the
// items one at a time.
//
// Items still waiting for a worker when ctx is canceled are not passed to
// fn; their result carries ctx.Err(). Calls already running finish, so fn
// should watch ctx itself. Run blocks until every item has a result.
func Run[T, R any](ctx context.Context, maxWorkers int, items []T, fn func(context.Context, T) (R, error)) []Result[R] {
	results := make([]Result[R], len(items))
	if len(items) == 0 {
		return results
	}

	sem := make(chan struct{}, max(maxWorkers, 1))
	var wg sync.WaitGroup

	for i, item := range items {
		wg.Go(func() {
			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				results[i].Err = ctx.Err()
				return
			}

			val, err := fn(ctx, item)
			results[i] = Result[R]{Value: val, Err: err}
		})
	}

	wg.Wait()
	return results
}

// Errors joins the errors of all failed results, or returns nil if every
// item succeeded.
func Errors[R any](results []Result[R]) error {
	var errs []error
	for _, r := range results {
		if r.Err != nil {
			errs = append(errs, r.Err)
		}
	}
	return errors.Join(errs...)
}
