// Package async provides a minimal typed future for running a function on a
// separate goroutine and collecting its result later.
//
// Basic usage:
//
//	fut := async.Go(ctx, func(ctx context.Context) (string, error) {
//	    return lookup(ctx, id)
//	})
//
//	// ... do other work ...
//
//	name, err := fut.Await()
//
// A future carries exactly one outcome. Waiting can be bounded with
// AwaitContext or AwaitTimeout; the underlying function is never cancelled by
// abandoning the wait, so long-running work should honor its context.
package async
