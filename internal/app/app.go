// Package app provides the category use cases. They orchestrate the domain
// aggregate and the storage, cache and event ports but hold no business
// rules of their own.
package app

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/devflix-admin/internal/domain"
	"github.com/jsamuelsen11/devflix-admin/internal/domain/category"
	"github.com/jsamuelsen11/devflix-admin/internal/platform/telemetry"
	"github.com/jsamuelsen11/devflix-admin/internal/ports"
)

// Deps are the ports shared by the category use cases. Cache, Events and
// Metrics may be nil, which disables caching, event publishing and
// mutation metrics.
type Deps struct {
	Repo    ports.CategoryRepository
	UoW     ports.UnitOfWork
	Cache   ports.CategoryCache
	Events  ports.EventPublisher
	Metrics *telemetry.Metrics
}

// Operation names used in logs and the category.mutation.total metric.
const (
	opCreate     = "CreateCategory"
	opUpdate     = "UpdateCategory"
	opActivate   = "ActivateCategory"
	opDeactivate = "DeactivateCategory"
)

// outcome classifies err for the mutation metric.
func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, domain.ErrValidation):
		return "invalid"
	case errors.Is(err, domain.ErrNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrConflict):
		return "conflict"
	case errors.Is(err, domain.ErrUnavailable):
		return "unavailable"
	default:
		return "error"
	}
}

func toResponse(c *category.Category) *ports.CategoryResponse {
	return &ports.CategoryResponse{
		ID:          c.ID(),
		Name:        c.Name(),
		Description: c.Description(),
		IsActive:    c.IsActive(),
		CreatedAt:   c.CreatedAt(),
	}
}

// afterCommit refreshes the cache and publishes eventType for resp. Both
// are best effort: failures are logged and never reach the caller.
func afterCommit(ctx context.Context, d Deps, logger *slog.Logger, now func() time.Time,
	eventType string, resp *ports.CategoryResponse,
) {
	if d.Cache != nil {
		d.Cache.Set(ctx, resp)
	}
	if d.Events == nil {
		return
	}

	event := ports.CategoryEvent{
		Type:       eventType,
		Category:   *resp,
		OccurredAt: now().UTC(),
	}
	if err := d.Events.Publish(ctx, event); err != nil {
		logger.WarnContext(ctx, "failed to publish category event",
			slog.String("event", eventType),
			slog.String("id", resp.ID.String()),
			slog.Any("error", err),
		)
	}
}

// evict drops a possibly stale projection for id.
func evict(ctx context.Context, d Deps, id uuid.UUID) {
	if d.Cache != nil {
		d.Cache.Delete(ctx, id)
	}
}
