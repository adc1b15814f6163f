// Package async provides generic helpers for running computations in the
// background and joining on their completion.
//
// The central type is Future, obtained from Go, which starts the supplied
// function in its own goroutine and returns immediately. Await blocks for
// the result, AwaitWithTimeout bounds the wait, and Done polls without
// blocking.
//
// Two join strategies cover the common coordination patterns:
//
//   - AwaitAll collects every value and fails fast on the first error,
//     suitable when the tasks form a single unit of work.
//
//   - AwaitAllSettled waits for every task and reports each outcome
//     individually, suitable for scatter-gather batches where one task's
//     failure must not discard the others' results.
//
// # Usage
//
//	future := async.Go(ctx, userID, func(ctx context.Context, id string) (*User, error) {
//	    return repo.Find(ctx, id)
//	})
//
//	// do other work …
//	user, err := future.Await()
//
// All helpers are context-aware: a context cancelled before the function
// starts completes the future with the context error without invoking it.
//
// # Error Handling
//
// The package defines a single sentinel, ErrTimeout, returned by
// AwaitWithTimeout. All other errors originate from the user callback.
package async
