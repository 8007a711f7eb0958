// Package closer releases process-wide resources (database pool, Redis
// client, Kafka writer) in reverse order of acquisition during shutdown.
package closer

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// Func releases one resource.
type Func func(ctx context.Context) error

type entry struct {
	name string
	fn   Func
}

// Closer collects release functions. Safe for concurrent use.
type Closer struct {
	mu      sync.Mutex
	entries []entry
	once    sync.Once
	err     error
}

// New creates an empty Closer.
func New() *Closer {
	return &Closer{}
}

// Add registers fn under name. Functions run last-in first-out.
func (c *Closer) Add(name string, fn Func) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = append(c.entries, entry{name: name, fn: fn})
}

// AddErr registers a context-less Close method such as (*redis.Client).Close.
func (c *Closer) AddErr(name string, fn func() error) {
	c.Add(name, func(context.Context) error { return fn() })
}

// Close runs every registered function once, in reverse order. A function
// that fails does not stop the rest; all failures are joined. When ctx is
// done, the remaining functions are skipped and reported.
func (c *Closer) Close(ctx context.Context) error {
	c.once.Do(func() {
		c.mu.Lock()
		entries := c.entries
		c.entries = nil
		c.mu.Unlock()

		var errs []error
		for i := len(entries) - 1; i >= 0; i-- {
			e := entries[i]
			if err := ctx.Err(); err != nil {
				errs = append(errs, fmt.Errorf("closing %s: skipped: %w", e.name, err))
				continue
			}
			if err := e.fn(ctx); err != nil {
				errs = append(errs, fmt.Errorf("closing %s: %w", e.name, err))
			}
		}
		c.err = errors.Join(errs...)
	})
	return c.err
}
