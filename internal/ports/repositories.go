package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/devflix-admin/internal/domain/category"
)

// CategoryRepository stages category writes and serves reads.
// Writes are not durable until the paired UnitOfWork commits.
type CategoryRepository interface {
	// Insert stages a new category.
	// Returns domain.ErrConflict at commit time if the ID already exists.
	Insert(ctx context.Context, c *category.Category) error

	// Get returns a category by ID, including categories staged earlier in
	// the same request.
	// Returns domain.ErrNotFound if the category does not exist.
	Get(ctx context.Context, id uuid.UUID) (*category.Category, error)

	// Update stages the new state of an existing category.
	Update(ctx context.Context, c *category.Category) error
}

// UnitOfWork finalizes the writes staged in the current request.
type UnitOfWork interface {
	// Commit applies every staged write. Either all of them take effect or,
	// on error, none do.
	Commit(ctx context.Context) error
}
