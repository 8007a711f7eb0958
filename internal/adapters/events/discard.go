package events

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen11/devflix-admin/internal/platform/logging"
	"github.com/jsamuelsen11/devflix-admin/internal/ports"
)

var _ ports.EventPublisher = (*Discard)(nil)

// Discard logs events at debug level and drops them. It is used when Kafka
// is disabled.
type Discard struct {
	logger *slog.Logger
}

// NewDiscard creates a Discard publisher.
func NewDiscard(logger *slog.Logger) *Discard {
	return &Discard{logger: logging.OrDiscard(logger)}
}

func (d *Discard) Publish(ctx context.Context, event ports.CategoryEvent) error {
	d.logger.DebugContext(ctx, "category event discarded",
		slog.String("event", event.Type),
		slog.String("category_id", event.Category.ID.String()),
	)
	return nil
}
