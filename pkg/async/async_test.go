package async

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGo(t *testing.T) {
	t.Run("delivers the result", func(t *testing.T) {
		fut := Go(context.Background(), func(ctx context.Context) (int, error) {
			return 42, nil
		})

		got, err := fut.Await()
		require.NoError(t, err)
		assert.Equal(t, 42, got)
	})

	t.Run("delivers the error", func(t *testing.T) {
		boom := errors.New("boom")
		fut := Go(context.Background(), func(ctx context.Context) (int, error) {
			return 0, boom
		})

		_, err := fut.Await()
		assert.ErrorIs(t, err, boom)
	})

	t.Run("await is repeatable", func(t *testing.T) {
		fut := Go(context.Background(), func(ctx context.Context) (string, error) {
			return "once", nil
		})

		first, err := fut.Await()
		require.NoError(t, err)
		second, err := fut.Await()
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})
}

func TestFuture_AwaitTimeout(t *testing.T) {
	t.Run("returns before the deadline when the work is fast", func(t *testing.T) {
		fut := Go(context.Background(), func(ctx context.Context) (int, error) {
			return 1, nil
		})

		got, err := fut.AwaitTimeout(time.Second)
		require.NoError(t, err)
		assert.Equal(t, 1, got)
	})

	t.Run("times out on slow work", func(t *testing.T) {
		release := make(chan struct{})
		defer close(release)

		fut := Go(context.Background(), func(ctx context.Context) (int, error) {
			<-release
			return 1, nil
		})

		_, err := fut.AwaitTimeout(10 * time.Millisecond)
		assert.ErrorIs(t, err, ErrAwaitTimeout)
	})
}

func TestFuture_AwaitContext(t *testing.T) {
	t.Run("returns the context error when the wait is abandoned", func(t *testing.T) {
		release := make(chan struct{})
		defer close(release)

		fut := Go(context.Background(), func(ctx context.Context) (int, error) {
			<-release
			return 1, nil
		})

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := fut.AwaitContext(ctx)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestFuture_Completed(t *testing.T) {
	t.Run("false while running, true after", func(t *testing.T) {
		release := make(chan struct{})
		fut := Go(context.Background(), func(ctx context.Context) (int, error) {
			<-release
			return 1, nil
		})

		assert.False(t, fut.Completed())

		close(release)
		<-fut.Done()
		assert.True(t, fut.Completed())
	})
}
