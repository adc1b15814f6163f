package async

import (
	"context"
	"time"
)

// Future represents the eventual result of a computation started with Go.
type Future[U any] struct {
	value U
	err   error
	done  chan struct{}
}

// Await blocks until the computation completes and returns its result.
func (f *Future[U]) Await() (U, error) {
	<-f.done
	return f.value, f.err
}

// AwaitWithTimeout blocks until the computation completes or the timeout
// elapses, in which case ErrTimeout is returned. The computation itself
// keeps running; only the wait is abandoned.
func (f *Future[U]) AwaitWithTimeout(timeout time.Duration) (U, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-time.After(timeout):
		var zero U
		return zero, ErrTimeout
	}
}

// Done reports whether the computation has completed, without blocking.
func (f *Future[U]) Done() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Go runs fn in its own goroutine and returns a Future for its result.
// If ctx is already cancelled the function is not invoked and the future
// completes with the context error.
func Go[T any, U any](ctx context.Context, param T, fn func(context.Context, T) (U, error)) *Future[U] {
	f := &Future[U]{done: make(chan struct{})}

	go func() {
		defer close(f.done)

		select {
		case <-ctx.Done():
			f.err = ctx.Err()
			return
		default:
		}

		f.value, f.err = fn(ctx, param)
	}()

	return f
}
