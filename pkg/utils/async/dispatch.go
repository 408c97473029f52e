package async

import (
	"context"
	"runtime/debug"
	"sync"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

// Group runs handlers in the background and lets the owner wait for them before exiting
type Group struct {
	wg sync.WaitGroup
}

// Dispatch executes a handler function asynchronously with panic recovery. The handler gets a
// context detached from ctx's cancellation so it can outlive the request that started it.
func (g *Group) Dispatch(ctx context.Context, name string, handler func(ctx context.Context) error) {
	newCtx := NewBackgroundContext(ctx)

	g.wg.Add(1)
	go func() {
		defer g.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				ctxlog.From(newCtx).Error("Panic in async handler",
					"task", name,
					"recover", r,
					"stack", string(debug.Stack()),
				)
			}
		}()

		if err := handler(newCtx); err != nil {
			ctxlog.From(newCtx).Error("Error in async handler",
				"task", name,
				"error", err,
			)
		}
	}()
}

// Wait blocks until every dispatched handler returns or ctx is done
func (g *Group) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		g.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return goerr.Wrap(ctx.Err(), "gave up waiting for background tasks")
	}
}

// NewBackgroundContext creates a new background context preserving the logger of ctx
func NewBackgroundContext(ctx context.Context) context.Context {
	return ctxlog.With(context.Background(), ctxlog.From(ctx))
}
