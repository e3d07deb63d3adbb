// Package workerpool provides simple concurrent processing utilities.
package workerpool

import (
	"context"
	"sync"
)

// Collect runs a worker pool over the provided work items and returns one
// result per item, in submission order regardless of completion order. If
// process returns an error, the pool cancels the context, stops further work
// and returns the error.
func Collect[T, R any](
	ctx context.Context,
	workerCount int,
	items []T,
	process func(context.Context, T) (R, error),
) ([]R, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if workerCount < 1 {
		workerCount = 1
	}

	type task struct {
		idx  int
		item T
	}

	tasks := make(chan task, workerCount)
	errs := make(chan error, workerCount)
	results := make([]R, len(items))

	wg := sync.WaitGroup{}
	for i := 0; i < workerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case tk, ok := <-tasks:
					if !ok {
						return
					}
					res, err := process(ctx, tk.item)
					if err != nil {
						select {
						case errs <- err:
						default:
						}
						cancel()
						return
					}
					// Each worker writes a distinct index.
					results[tk.idx] = res
				}
			}
		}()
	}

	go func() {
		for i, item := range items {
			select {
			case <-ctx.Done():
				close(tasks)
				return
			case tasks <- task{idx: i, item: item}:
			}
		}
		close(tasks)
	}()

	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil {
			return nil, err
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return results, nil
}
