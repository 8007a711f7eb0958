package ports

import (
	"context"

	"github.com/google/uuid"
)

// CategoryCache is a best-effort cache of category projections.
// Implementations swallow and log their own failures; a cache outage must
// never fail a use case.
type CategoryCache interface {
	// Get returns the cached projection and true on a hit.
	Get(ctx context.Context, id uuid.UUID) (*CategoryResponse, bool)

	// Set stores the projection under its ID.
	Set(ctx context.Context, c *CategoryResponse)

	// Delete evicts the projection for id.
	Delete(ctx context.Context, id uuid.UUID)
}
