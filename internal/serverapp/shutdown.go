package serverapp

import (
	"context"
	"log/slog"

	"newsboard/internal/logging"
)

type cleanupItem struct {
	name string
	fn   func(context.Context) error
}

// cleanupStack collects shutdown functions as resources are acquired and
// releases them in reverse order.
type cleanupStack struct {
	items []cleanupItem
}

func (s *cleanupStack) push(name string, fn func(context.Context) error) {
	s.items = append(s.items, cleanupItem{name: name, fn: fn})
}

// unwind releases all pushed resources, newest first. Failures are logged
// and do not stop the remaining items from running.
func (s *cleanupStack) unwind(ctx context.Context, logger *logging.Logger) {
	for i := len(s.items) - 1; i >= 0; i-- {
		item := s.items[i]
		if logger != nil {
			logger.Info("shutting down " + item.name)
		}
		err := item.fn(ctx)
		if err != nil && logger != nil {
			logger.Warn("cleanup error",
				slog.String("component", item.name),
				slog.String("error", err.Error()),
			)
		}
	}
}

// Shutdown gracefully releases all acquired resources. It is safe to call
// multiple times; only the first call unwinds.
func (a *App) Shutdown(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	a.shutdownOnce.Do(func() {
		a.stateMu.Lock()
		cleanup := a.cleanup
		a.started = false
		a.stateMu.Unlock()

		cleanup.unwind(ctx, a.logger)
	})

	return nil
}
