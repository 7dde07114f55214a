package transactor

import (
	"context"
	"sync"
)

type hooksKey struct{}

type commitHooks struct {
	mu  sync.Mutex
	fns []func(ctx context.Context)
}

// WithCommitHooks marks ctx as running inside a transaction. The returned
// func runs every hook registered through AfterCommit and must be called
// only once the transaction has committed.
func WithCommitHooks(ctx context.Context) (context.Context, func(ctx context.Context)) {
	h := &commitHooks{}

	run := func(ctx context.Context) {
		h.mu.Lock()
		fns := h.fns
		h.fns = nil
		h.mu.Unlock()

		for _, fn := range fns {
			fn(ctx)
		}
	}

	return context.WithValue(ctx, hooksKey{}, h), run
}

func InTransaction(ctx context.Context) bool {
	_, ok := ctx.Value(hooksKey{}).(*commitHooks)
	return ok
}

// AfterCommit defers fn until the transaction in ctx commits. Without a
// transaction fn runs immediately. Hooks of a rolled back transaction never run.
func AfterCommit(ctx context.Context, fn func(ctx context.Context)) {
	h, ok := ctx.Value(hooksKey{}).(*commitHooks)
	if !ok {
		fn(ctx)
		return
	}

	h.mu.Lock()
	h.fns = append(h.fns, fn)
	h.mu.Unlock()
}
