package appctx

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/devflix-admin/internal/domain"
	"github.com/jsamuelsen11/devflix-admin/internal/platform/logging"
)

// Commit executes the staged actions in the order they were staged. If one
// fails, the actions that already succeeded are rolled back in reverse
// order and the failure is returned wrapped with the action description.
// Rollback errors are logged, not returned.
//
// ctx is checked before every action: once it is canceled or past its
// deadline no further action runs, the completed ones are rolled back and
// ctx.Err() is returned wrapped. Rollbacks run on a context detached from ctx's
// cancellation.
//
// The RequestContext is marked committed whatever the outcome; a second
// call returns ErrAlreadyCommitted.
func (rc *RequestContext) Commit(ctx context.Context) error {
	rc.queueMu.Lock()
	if rc.committed {
		rc.queueMu.Unlock()
		return ErrAlreadyCommitted
	}
	rc.committed = true
	items := rc.items
	rc.items = nil
	rc.queueMu.Unlock()

	logger := logging.FromContext(ctx)

	for i, action := range items {
		if err := ctx.Err(); err != nil {
			logger.WarnContext(ctx, "commit interrupted, rolling back",
				slog.String("operation", "RequestContext.Commit"),
				slog.Int("step", i+1),
				slog.String("action", action.Description()),
				slog.Any("error", err),
			)
			rollback(context.WithoutCancel(ctx), items[:i], logger)
			return fmt.Errorf("commit interrupted before %s: %w", action.Description(), err)
		}

		logger.DebugContext(ctx, "executing action",
			slog.String("operation", "RequestContext.Commit"),
			slog.Int("step", i+1),
			slog.Int("total", len(items)),
			slog.String("action", action.Description()),
		)

		if err := action.Execute(ctx); err != nil {
			logger.ErrorContext(ctx, "action failed, rolling back",
				slog.String("operation", "RequestContext.Commit"),
				slog.Int("failed_step", i+1),
				slog.String("action", action.Description()),
				slog.Any("error", err),
			)
			rollback(context.WithoutCancel(ctx), items[:i], logger)
			return fmt.Errorf("executing %s: %w", action.Description(), err)
		}
	}

	return nil
}

// rollback undoes done in reverse order, logging and skipping failures.
func rollback(ctx context.Context, done []domain.Action, logger *slog.Logger) {
	for i := len(done) - 1; i >= 0; i-- {
		action := done[i]
		if err := action.Rollback(ctx); err != nil {
			logger.ErrorContext(ctx, "rollback failed",
				slog.String("operation", "RequestContext.Commit"),
				slog.Int("step", i+1),
				slog.String("action", action.Description()),
				slog.Any("error", err),
			)
		}
	}
}
