package async_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/socialpanel/cachekit/pkg/async"
)

func TestGo(t *testing.T) {
	t.Run("await returns the result", func(t *testing.T) {
		f := async.Go(context.Background(), 21, func(_ context.Context, v int) (int, error) {
			return v * 2, nil
		})

		got, err := f.Await()
		require.NoError(t, err)
		assert.Equal(t, 42, got)
	})

	t.Run("await returns the callback error", func(t *testing.T) {
		boom := errors.New("boom")
		f := async.Go(context.Background(), 0, func(_ context.Context, _ int) (int, error) {
			return 0, boom
		})

		_, err := f.Await()
		assert.ErrorIs(t, err, boom)
	})

	t.Run("pre-cancelled context skips the callback", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		called := false
		f := async.Go(ctx, 0, func(_ context.Context, _ int) (int, error) {
			called = true
			return 1, nil
		})

		_, err := f.Await()
		assert.ErrorIs(t, err, context.Canceled)
		assert.False(t, called)
	})

	t.Run("done reports completion without blocking", func(t *testing.T) {
		release := make(chan struct{})
		f := async.Go(context.Background(), 0, func(_ context.Context, _ int) (int, error) {
			<-release
			return 1, nil
		})

		assert.False(t, f.Done())
		close(release)

		_, err := f.Await()
		require.NoError(t, err)
		assert.True(t, f.Done())
	})

	t.Run("await with timeout", func(t *testing.T) {
		f := async.Go(context.Background(), 0, func(_ context.Context, _ int) (int, error) {
			time.Sleep(200 * time.Millisecond)
			return 1, nil
		})

		_, err := f.AwaitWithTimeout(20 * time.Millisecond)
		assert.ErrorIs(t, err, async.ErrTimeout)
	})
}

func TestAwaitAll(t *testing.T) {
	t.Run("collects values in order", func(t *testing.T) {
		mk := func(v int) *async.Future[int] {
			return async.Go(context.Background(), v, func(_ context.Context, v int) (int, error) {
				return v, nil
			})
		}

		values, err := async.AwaitAll(mk(1), mk(2), mk(3))
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2, 3}, values)
	})

	t.Run("fails fast on first error", func(t *testing.T) {
		boom := errors.New("boom")
		ok := async.Go(context.Background(), 1, func(_ context.Context, v int) (int, error) {
			return v, nil
		})
		bad := async.Go(context.Background(), 0, func(_ context.Context, _ int) (int, error) {
			return 0, boom
		})

		_, err := async.AwaitAll(ok, bad)
		assert.ErrorIs(t, err, boom)
	})
}

func TestAwaitAllSettled(t *testing.T) {
	t.Run("collects every outcome", func(t *testing.T) {
		boom := errors.New("boom")
		futures := []*async.Future[string]{
			async.Go(context.Background(), "a", func(_ context.Context, k string) (string, error) {
				return k, nil
			}),
			async.Go(context.Background(), "b", func(_ context.Context, k string) (string, error) {
				return k, boom
			}),
			async.Go(context.Background(), "c", func(_ context.Context, k string) (string, error) {
				return k, nil
			}),
		}

		outcomes := async.AwaitAllSettled(futures...)
		require.Len(t, outcomes, 3)

		assert.NoError(t, outcomes[0].Err)
		assert.Equal(t, "a", outcomes[0].Value)
		assert.ErrorIs(t, outcomes[1].Err, boom)
		assert.NoError(t, outcomes[2].Err)
		assert.Equal(t, "c", outcomes[2].Value)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, async.AwaitAllSettled[int]())
	})
}
