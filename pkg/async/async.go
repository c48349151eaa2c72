package async

import (
	"context"
	"time"
)

// Future is the pending result of a function started with Go.
type Future[T any] struct {
	result T
	err    error
	done   chan struct{}
}

// Go runs fn on its own goroutine and returns a future for its outcome. The
// context is handed to fn unchanged; abandoning the future does not stop fn.
func Go[T any](ctx context.Context, fn func(context.Context) (T, error)) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}

	go func() {
		defer close(f.done)
		f.result, f.err = fn(ctx)
	}()

	return f
}

// Await blocks until the function completes and returns its outcome.
func (f *Future[T]) Await() (T, error) {
	<-f.done
	return f.result, f.err
}

// AwaitContext blocks until completion or until ctx is done, whichever comes
// first. On context expiry the function keeps running; only the wait is
// abandoned.
func (f *Future[T]) AwaitContext(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.result, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// AwaitTimeout blocks until completion or until the timeout elapses,
// returning ErrAwaitTimeout in the latter case.
func (f *Future[T]) AwaitTimeout(timeout time.Duration) (T, error) {
	select {
	case <-f.done:
		return f.result, f.err
	case <-time.After(timeout):
		var zero T
		return zero, ErrAwaitTimeout
	}
}

// Done returns a channel closed when the function completes, for use in
// select statements.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Completed reports without blocking whether the function has finished.
func (f *Future[T]) Completed() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}
