// Package closer collects shutdown hooks registered during wiring and
// runs them in reverse order when the application stops.
package closer

import (
	"context"
	"sync"

	"github.com/alcotheque/cellar/internal/logger"
)

type namedHook struct {
	name string
	fn   func(ctx context.Context) error
}

var (
	mu    sync.Mutex
	hooks []namedHook
)

// Add registers an anonymous shutdown hook.
func Add(fn func(ctx context.Context) error) {
	AddNamed("", fn)
}

// AddNamed registers a shutdown hook with a name used in shutdown logs.
func AddNamed(name string, fn func(ctx context.Context) error) {
	mu.Lock()
	defer mu.Unlock()
	hooks = append(hooks, namedHook{name: name, fn: fn})
}

// CloseAll runs every registered hook LIFO. Errors are logged, not
// returned; shutdown keeps going regardless.
func CloseAll(ctx context.Context) {
	mu.Lock()
	pending := make([]namedHook, len(hooks))
	copy(pending, hooks)
	hooks = nil
	mu.Unlock()

	for i := len(pending) - 1; i >= 0; i-- {
		h := pending[i]
		if err := h.fn(ctx); err != nil {
			logger.Error(ctx, "shutdown hook failed",
				logger.String("hook", h.name),
				logger.ErrorF(err),
			)
		}
	}
}
