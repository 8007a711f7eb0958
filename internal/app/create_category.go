package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/jsamuelsen11/devflix-admin/internal/domain/category"
	"github.com/jsamuelsen11/devflix-admin/internal/platform/logging"
	"github.com/jsamuelsen11/devflix-admin/internal/ports"
)

// Compile-time check that CreateCategoryHandler implements ports.CreateCategoryHandler.
var _ ports.CreateCategoryHandler = (*CreateCategoryHandler)(nil)

// CreateCategoryHandler builds a category from a request, inserts it and
// commits the unit of work.
type CreateCategoryHandler struct {
	deps   Deps
	logger *slog.Logger
	opts   []category.Option
	now    func() time.Time
}

// NewCreateCategoryHandler creates a CreateCategoryHandler. The category
// options are passed to category.New and let tests fix the clock and IDs.
func NewCreateCategoryHandler(deps Deps, logger *slog.Logger, opts ...category.Option) *CreateCategoryHandler {
	return &CreateCategoryHandler{
		deps:   deps,
		logger: logging.OrDiscard(logger),
		opts:   opts,
		now:    time.Now,
	}
}

// Handle creates the category described by req. Validation errors are
// returned unchanged and leave the repository untouched.
func (h *CreateCategoryHandler) Handle(ctx context.Context, req ports.CreateCategoryRequest) (_ *ports.CategoryResponse, err error) {
	h.logger.InfoContext(ctx, "creating category", slog.String("name", req.Name))
	defer func() { h.deps.Metrics.RecordCategoryMutation(ctx, opCreate, outcome(err)) }()

	description := ""
	if req.Description != nil {
		description = *req.Description
	}
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	c, err := category.New(req.Name, &description, isActive, h.opts...)
	if err != nil {
		return nil, err
	}

	if err := h.deps.Repo.Insert(ctx, c); err != nil {
		h.logger.ErrorContext(ctx, "failed to insert category",
			slog.String("operation", opCreate),
			slog.String("id", c.ID().String()),
			slog.Any("error", err),
		)
		return nil, err
	}

	if err := h.deps.UoW.Commit(ctx); err != nil {
		h.logger.ErrorContext(ctx, "failed to commit category",
			slog.String("operation", opCreate),
			slog.String("id", c.ID().String()),
			slog.Any("error", err),
		)
		return nil, err
	}

	resp := toResponse(c)
	afterCommit(ctx, h.deps, h.logger, h.now, ports.EventCategoryCreated, resp)
	return resp, nil
}
