package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/devflix-admin/internal/domain/category"
	"github.com/jsamuelsen11/devflix-admin/internal/platform/logging"
	"github.com/jsamuelsen11/devflix-admin/internal/ports"
)

// Compile-time check that CategoryService implements ports.CategoryService.
var _ ports.CategoryService = (*CategoryService)(nil)

// CategoryService reads and mutates existing categories.
type CategoryService struct {
	deps   Deps
	logger *slog.Logger
	now    func() time.Time
}

// NewCategoryService creates a CategoryService.
func NewCategoryService(deps Deps, logger *slog.Logger) *CategoryService {
	return &CategoryService{
		deps:   deps,
		logger: logging.OrDiscard(logger),
		now:    time.Now,
	}
}

// GetCategory returns the category with the given ID, from the cache when
// possible.
func (s *CategoryService) GetCategory(ctx context.Context, id uuid.UUID) (*ports.CategoryResponse, error) {
	s.logger.InfoContext(ctx, "fetching category", slog.String("id", id.String()))

	if s.deps.Cache != nil {
		if resp, ok := s.deps.Cache.Get(ctx, id); ok {
			return resp, nil
		}
	}

	c, err := s.deps.Repo.Get(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch category",
			slog.String("operation", "GetCategory"),
			slog.String("id", id.String()),
			slog.Any("error", err),
		)
		return nil, err
	}

	resp := toResponse(c)
	if s.deps.Cache != nil {
		s.deps.Cache.Set(ctx, resp)
	}
	return resp, nil
}

// UpdateCategory renames the category and replaces its description when
// req.Description is set.
func (s *CategoryService) UpdateCategory(ctx context.Context, id uuid.UUID, req ports.UpdateCategoryRequest) (*ports.CategoryResponse, error) {
	s.logger.InfoContext(ctx, "updating category", slog.String("id", id.String()))

	return s.mutate(ctx, id, opUpdate, ports.EventCategoryUpdated, func(c *category.Category) error {
		return c.Update(req.Name, req.Description)
	})
}

// ActivateCategory marks the category active.
func (s *CategoryService) ActivateCategory(ctx context.Context, id uuid.UUID) (*ports.CategoryResponse, error) {
	s.logger.InfoContext(ctx, "activating category", slog.String("id", id.String()))

	return s.mutate(ctx, id, opActivate, ports.EventCategoryActivated, (*category.Category).Activate)
}

// DeactivateCategory marks the category inactive.
func (s *CategoryService) DeactivateCategory(ctx context.Context, id uuid.UUID) (*ports.CategoryResponse, error) {
	s.logger.InfoContext(ctx, "deactivating category", slog.String("id", id.String()))

	return s.mutate(ctx, id, opDeactivate, ports.EventCategoryDeactivated, (*category.Category).Deactivate)
}

// mutate loads the category, applies change, stages the update and commits.
// Validation errors from change are returned unchanged.
func (s *CategoryService) mutate(ctx context.Context, id uuid.UUID, operation, eventType string,
	change func(*category.Category) error,
) (_ *ports.CategoryResponse, err error) {
	defer func() { s.deps.Metrics.RecordCategoryMutation(ctx, operation, outcome(err)) }()

	c, err := s.deps.Repo.Get(ctx, id)
	if err != nil {
		s.logFailure(ctx, operation, "failed to fetch category", id, err)
		return nil, err
	}

	if err := change(c); err != nil {
		return nil, err
	}

	if err := s.deps.Repo.Update(ctx, c); err != nil {
		s.logFailure(ctx, operation, "failed to update category", id, err)
		return nil, err
	}

	if err := s.deps.UoW.Commit(ctx); err != nil {
		s.logFailure(ctx, operation, "failed to commit category", id, err)
		evict(ctx, s.deps, id)
		return nil, err
	}

	// Evict first: Set is best effort, and a failed Set must not leave the
	// pre-mutation projection cached.
	evict(ctx, s.deps, id)
	resp := toResponse(c)
	afterCommit(ctx, s.deps, s.logger, s.now, eventType, resp)
	return resp, nil
}

func (s *CategoryService) logFailure(ctx context.Context, operation, msg string, id uuid.UUID, err error) {
	s.logger.ErrorContext(ctx, msg,
		slog.String("operation", operation),
		slog.String("id", id.String()),
		slog.Any("error", err),
	)
}
