// Package async provides small generic helpers for running computations
// concurrently and collecting their results in a deterministic order.
//
// A Future represents the eventual result of an operation. Async starts the
// supplied function in its own goroutine and returns immediately; Resolved
// wraps a value that is already known, so immediate and deferred results can be
// awaited the same way. WaitAll blocks until every Future has settled and
// returns the results positionally, which is what the validation engine relies
// on to reassemble errors in dispatch order.
//
// # Usage
//
//	futures := []*async.Future[int]{
//	    async.Resolved(1, nil),
//	    async.Async(ctx, 2, func(_ context.Context, v int) (int, error) {
//	        return v * 2, nil
//	    }),
//	}
//	results, err := async.WaitAll(futures...)
//
// # Error Handling
//
// WaitAll waits for all futures even when one fails, then returns the first
// error in argument order. A panic inside an Async function is recovered and
// reported as an error wrapping ErrPanicked.
//
// There is no cancellation: the context is only passed through to the
// function.
package async
