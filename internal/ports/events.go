package ports

import (
	"context"
	"time"
)

// Category event types.
const (
	EventCategoryCreated     = "category.created"
	EventCategoryUpdated     = "category.updated"
	EventCategoryActivated   = "category.activated"
	EventCategoryDeactivated = "category.deactivated"
)

// CategoryEvent announces a committed change to a category.
type CategoryEvent struct {
	Type       string           `json:"type"`
	Category   CategoryResponse `json:"category"`
	OccurredAt time.Time        `json:"occurred_at"`
}

// EventPublisher delivers category events to other services. Events are
// published after the unit of work commits, so delivery is at-most-once.
type EventPublisher interface {
	Publish(ctx context.Context, event CategoryEvent) error
}
