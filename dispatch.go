package getsfattr

import (
	"context"
	"iter"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// Dispatch collects files concurrently and yields one Result per file.
//
// Files are collected by a pool of up to WithConcurrency workers (default
// runtime.NumCPU()). With OrderInput, results are yielded in input order;
// finished results wait in a reorder buffer until every earlier file is
// done. With OrderCompletion they are yielded as soon as they are ready.
// Only delivery is reordered; workers never wait for one another.
//
// A failed file stops the scheduling of every file after it in the input
// list. Files already started, and in input order every file before the
// failure, still run and are delivered. The failure does not cancel ctx, so
// in-flight files are not turned into spurious cancellation errors.
//
// Stopping the iteration early (break, return) cancels the dispatch: no
// further file is started, files already in flight run to completion and
// the iterator returns once they have. The same happens when ctx is
// cancelled, in which case files that never started yield nothing.
//
// Example:
//
//	for r := range getsfattr.Dispatch(ctx, paths) {
//		if r.Err != nil {
//			return r.Err // stops scheduling
//		}
//		fmt.Printf("%s: %d attributes\n", r.File, len(r.Attrs))
//	}
func Dispatch(ctx context.Context, files []string, opts ...Option) iter.Seq[Result] {
	return dispatchSeq(ctx, files, applyOptions(opts))
}

func dispatchSeq(ctx context.Context, files []string, o *options) iter.Seq[Result] {
	return func(yield func(Result) bool) {
		dispatch(ctx, files, o, yield)
	}
}

func dispatch(ctx context.Context, files []string, o *options, yield func(Result) bool) {
	if len(files) == 0 {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	workers := o.workers(len(files))
	o.logger.Debug("dispatch started",
		"files", len(files),
		"workers", workers,
		"order", o.order.String(),
	)

	// One slot per worker: a stalled consumer stalls the pool instead of
	// letting finished results pile up.
	results := make(chan Result, workers)

	// stopAt is the lowest index of a failed file, or len(files). Files past
	// it are not started; files before it still run so that input order can
	// deliver them ahead of the failure.
	var stopAt atomic.Int64
	stopAt.Store(int64(len(files)))
	fail := func(i int) {
		for {
			cur := stopAt.Load()
			if int64(i) >= cur || stopAt.CompareAndSwap(cur, int64(i)) {
				return
			}
		}
	}

	go func() {
		defer close(results)

		var g errgroup.Group
		g.SetLimit(workers)

		for i, file := range files {
			if ctx.Err() != nil || int64(i) > stopAt.Load() {
				break
			}
			g.Go(func() error {
				// Cancellation or a failure may have happened while waiting
				// for a slot.
				if ctx.Err() != nil || int64(i) > stopAt.Load() {
					return nil
				}
				r := collectWithTimeout(ctx, file, o)
				r.Index = i
				if r.Err != nil {
					fail(i)
				}
				results <- r
				return nil
			})
		}

		_ = g.Wait() // workers report through results, never through errors
	}()

	deliver := yield
	if o.order == OrderInput {
		deliver = reorder(yield)
	}

	for r := range results {
		if !deliver(r) {
			cancel()
			for range results {
				// Drain in-flight work before returning.
			}
			o.logger.Debug("dispatch stopped early")
			return
		}
	}

	o.logger.Debug("dispatch finished", "files", len(files))
}

func collectWithTimeout(ctx context.Context, file string, o *options) Result {
	if o.fileTimeout <= 0 {
		return collect(ctx, file, o)
	}
	ctx, cancel := context.WithTimeout(ctx, o.fileTimeout)
	defer cancel()
	return collect(ctx, file, o)
}

// reorder wraps yield so that results reach it in Index order.
//
// Results arriving ahead of their turn are parked until the gap before them
// is filled, then flushed contiguously.
func reorder(yield func(Result) bool) func(Result) bool {
	pending := make(map[int]Result)
	next := 0
	return func(r Result) bool {
		pending[r.Index] = r
		for {
			ready, ok := pending[next]
			if !ok {
				return true
			}
			delete(pending, next)
			next++
			if !yield(ready) {
				return false
			}
		}
	}
}
