package domain

import "context"

// Action is a single staged write with a compensating rollback. Storage
// adapters queue Actions on the request's unit of work; nothing reaches the
// store until the unit of work commits.
type Action interface {
	// Execute applies the write. It must respect ctx cancellation.
	Execute(ctx context.Context) error

	// Rollback undoes a successful Execute. It is never called when Execute
	// failed. Adapters whose writes run inside a database transaction may
	// return nil and leave the undo to the transaction.
	Rollback(ctx context.Context) error

	// Description is used in logs, e.g. "insert category 6f1c...".
	Description() string
}

// WriteStager is the write side of the request-scoped unit of work as seen
// by adapters that do not import the application layer.
type WriteStager interface {
	// Stage records entity under key for read-your-writes lookups and queues
	// action for the next commit.
	Stage(key string, entity any, action Action) error

	// Execute runs action immediately, outside the commit queue.
	Execute(action Action) error
}
