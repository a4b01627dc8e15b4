// Package async provides small generic helpers for running computations
// asynchronously and waiting for their completion.
//
// The package is centred around Future, the eventual result of an
// asynchronous operation. Async starts the supplied function in its own
// goroutine and immediately returns a *Future; callers wait with Await, poll
// with IsComplete or select on Done. WaitAll joins several futures.
//
// The validation package uses futures for CheckAsync, ValidateAsync and
// Task.Run.
//
// # Usage
//
//	future := async.Async(ctx, 42, func(_ context.Context, v int) (string, error) {
//	    return fmt.Sprintf("value is %d", v), nil
//	})
//	res, err := future.Await()
//
// # Error Handling
//
// Await returns the error produced by the callback. A context that is already
// canceled when the goroutine starts yields ctx.Err(). Panics are recovered
// and reported as errors wrapping ErrPanic, so a failing callback never takes
// down the process.
//
// # Performance Considerations
//
// Futures are thin wrappers around a goroutine and a channel. Prefer a
// bounded pool when the number of concurrent tasks is unbounded.
package async
