package async

import (
	"context"
	"fmt"
	"sync"
)

// Future represents the result of an asynchronous computation.
type Future[U any] struct {
	result U
	err    error
	once   sync.Once
	done   chan struct{}
}

// Await waits for the computation to complete and returns its result and error.
func (f *Future[U]) Await() (U, error) {
	<-f.done
	return f.result, f.err
}

// IsComplete reports whether the computation has settled without blocking.
func (f *Future[U]) IsComplete() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

func (f *Future[U]) settle(res U, err error) {
	f.once.Do(func() {
		f.result = res
		f.err = err
		close(f.done)
	})
}

// Resolved returns a Future that is already settled with res and err.
// It lets callers mix immediate and deferred results behind one awaitable.
func Resolved[U any](res U, err error) *Future[U] {
	f := &Future[U]{done: make(chan struct{})}
	f.settle(res, err)
	return f
}

// Async executes fn in its own goroutine and returns a Future.
// The context is handed to fn untouched: a cancelled context does not stop the
// call, fn decides whether to honour it. A panic in fn settles the Future with
// an error wrapping ErrPanicked.
func Async[T any, U any](ctx context.Context, param T, fn func(context.Context, T) (U, error)) *Future[U] {
	f := &Future[U]{done: make(chan struct{})}

	go func() {
		defer func() {
			if r := recover(); r != nil {
				var zero U
				f.settle(zero, fmt.Errorf("%w: %v", ErrPanicked, r))
			}
		}()

		res, err := fn(ctx, param)
		f.settle(res, err)
	}()

	return f
}

// WaitAll waits for every future to settle and returns their results in the
// order given. The returned error is the first one in that order, reported
// only after all futures have completed.
func WaitAll[U any](futures ...*Future[U]) ([]U, error) {
	results := make([]U, len(futures))
	var firstErr error

	for i, future := range futures {
		result, err := future.Await()
		results[i] = result
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}

	return results, firstErr
}
