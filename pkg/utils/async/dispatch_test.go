package async_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/CatsAndProcurement/FR-Data-Analysis/pkg/utils/async"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
)

func TestGroup(t *testing.T) {
	t.Run("Wait returns after every handler ran", func(t *testing.T) {
		var g async.Group
		var count atomic.Int32

		for i := 0; i < 5; i++ {
			g.Dispatch(context.Background(), "count", func(ctx context.Context) error {
				count.Add(1)
				return nil
			})
		}

		gt.NoError(t, g.Wait(context.Background()))
		gt.Equal(t, count.Load(), int32(5))
	})

	t.Run("handler error does not stop other handlers", func(t *testing.T) {
		var g async.Group
		var ran atomic.Bool

		g.Dispatch(context.Background(), "fail", func(ctx context.Context) error {
			return goerr.New("test error")
		})
		g.Dispatch(context.Background(), "ok", func(ctx context.Context) error {
			ran.Store(true)
			return nil
		})

		gt.NoError(t, g.Wait(context.Background()))
		gt.True(t, ran.Load())
	})

	t.Run("panic is recovered", func(t *testing.T) {
		var g async.Group
		g.Dispatch(context.Background(), "panic", func(ctx context.Context) error {
			panic("test panic")
		})
		gt.NoError(t, g.Wait(context.Background()))
	})

	t.Run("handler context outlives the dispatching context", func(t *testing.T) {
		var g async.Group
		ctx, cancel := context.WithCancel(context.Background())

		var handlerErr atomic.Value
		release := make(chan struct{})
		g.Dispatch(ctx, "detached", func(ctx context.Context) error {
			<-release
			if err := ctx.Err(); err != nil {
				handlerErr.Store(err)
			}
			return nil
		})

		cancel()
		close(release)
		gt.NoError(t, g.Wait(context.Background()))
		gt.True(t, handlerErr.Load() == nil)
	})

	t.Run("Wait gives up when its context ends", func(t *testing.T) {
		var g async.Group
		release := make(chan struct{})
		defer close(release)

		g.Dispatch(context.Background(), "slow", func(ctx context.Context) error {
			<-release
			return nil
		})

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()
		gt.Error(t, g.Wait(ctx))
	})
}
