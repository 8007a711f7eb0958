package cache

import (
	"context"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/devflix-admin/internal/ports"
)

var _ ports.CategoryCache = Noop{}

// Noop is used when caching is disabled. Every Get is a miss.
type Noop struct{}

func (Noop) Get(context.Context, uuid.UUID) (*ports.CategoryResponse, bool) { return nil, false }

func (Noop) Set(context.Context, *ports.CategoryResponse) {}

func (Noop) Delete(context.Context, uuid.UUID) {}
