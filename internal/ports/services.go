package ports

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// CreateCategoryRequest carries the input of the create use case. It is not
// validated itself; the Category aggregate enforces the rules.
type CreateCategoryRequest struct {
	Name string

	// Description defaults to "" when nil.
	Description *string

	// IsActive defaults to true when nil.
	IsActive *bool
}

// UpdateCategoryRequest carries a rename and an optional new description.
// A nil Description keeps the current one.
type UpdateCategoryRequest struct {
	Name        string
	Description *string
}

// CategoryResponse is the read projection of a persisted category returned
// by every category use case.
type CategoryResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateCategoryHandler defines the create-category use case.
// Implemented by the application layer; called by inbound adapters.
type CreateCategoryHandler interface {
	// Handle builds and validates a category, inserts it and commits the
	// unit of work.
	// Returns domain.ErrValidation if the category fails validation; in that
	// case nothing is inserted or committed.
	Handle(ctx context.Context, req CreateCategoryRequest) (*CategoryResponse, error)
}

// CategoryService defines the read and mutation use cases for an existing
// category.
type CategoryService interface {
	// GetCategory returns a category by ID.
	// Returns domain.ErrNotFound if the category does not exist.
	GetCategory(ctx context.Context, id uuid.UUID) (*CategoryResponse, error)

	// UpdateCategory renames a category and optionally replaces its
	// description.
	// Returns domain.ErrNotFound or domain.ErrValidation.
	UpdateCategory(ctx context.Context, id uuid.UUID, req UpdateCategoryRequest) (*CategoryResponse, error)

	// ActivateCategory marks a category active.
	// Returns domain.ErrNotFound if the category does not exist.
	ActivateCategory(ctx context.Context, id uuid.UUID) (*CategoryResponse, error)

	// DeactivateCategory marks a category inactive.
	// Returns domain.ErrNotFound if the category does not exist.
	DeactivateCategory(ctx context.Context, id uuid.UUID) (*CategoryResponse, error)
}
