// Package appctx provides the request-scoped unit of work.
//
// A RequestContext is created per inbound request by the AppContext
// middleware. Storage adapters stage their writes on it and read through its
// memo cache, so a category inserted earlier in the request is visible to a
// later Get before anything has been committed:
//
//	rc := appctx.New(ctx)
//	ctx = appctx.WithRequestContext(ctx, rc)
//
//	// repository.Insert
//	rc.Stage("category:"+id, c, insertAction)
//
//	// repository.Get
//	c, err := appctx.GetOrFetch(rc, "category:"+id, loadFromStore)
//
//	// unit of work
//	err = rc.Commit(ctx)
package appctx

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/jsamuelsen11/devflix-admin/internal/domain"
)

var _ domain.WriteStager = (*RequestContext)(nil)

var (
	// ErrAlreadyCommitted is returned when staging or committing on a
	// RequestContext that has already been committed.
	ErrAlreadyCommitted = errors.New("appctx: request context already committed")

	// ErrNilAction is returned when a nil Action is staged.
	ErrNilAction = errors.New("appctx: nil action")

	// ErrTypeMismatch is returned by GetOrFetch when the same key was used
	// with two different types.
	ErrTypeMismatch = errors.New("appctx: cached value type mismatch")

	// ErrNoRequestContext is returned by adapters that need a unit of work
	// when none was installed in the context.
	ErrNoRequestContext = errors.New("appctx: no request context")
)

type requestContextKey struct{}

// WithRequestContext returns a copy of ctx carrying rc.
func WithRequestContext(ctx context.Context, rc *RequestContext) context.Context {
	return context.WithValue(ctx, requestContextKey{}, rc)
}

// FromContext returns the RequestContext installed by WithRequestContext.
func FromContext(ctx context.Context) (*RequestContext, bool) {
	rc, ok := ctx.Value(requestContextKey{}).(*RequestContext)
	return rc, ok && rc != nil
}

// Require is FromContext for callers that cannot proceed without one.
func Require(ctx context.Context) (*RequestContext, error) {
	rc, ok := FromContext(ctx)
	if !ok {
		return nil, ErrNoRequestContext
	}
	return rc, nil
}

// RequestContext memoizes reads and queues writes for a single request.
// Staging and committing are guarded by a mutex; the memo cache is meant for
// the request goroutine only.
type RequestContext struct {
	context.Context

	cache map[string]cacheEntry

	queueMu   sync.Mutex
	items     []domain.Action
	committed bool
}

// cacheEntry keeps both value and error so failed lookups are not retried
// within the request.
type cacheEntry struct {
	value any
	err   error
}

// New creates an empty RequestContext wrapping ctx.
func New(ctx context.Context) *RequestContext {
	return &RequestContext{
		Context: ctx,
		cache:   make(map[string]cacheEntry),
	}
}

// GetOrFetch returns the value cached under key, or calls fetchFn and
// caches its result. Values staged with Stage are returned as-is, which
// gives read-your-writes within a request.
//
// A key must always be read with the same type T; otherwise
// ErrTypeMismatch is returned.
func GetOrFetch[T any](rc *RequestContext, key string, fetchFn func(ctx context.Context) (T, error)) (T, error) {
	if entry, ok := rc.cache[key]; ok {
		var zero T
		if entry.err != nil {
			return zero, entry.err
		}
		v, ok := entry.value.(T)
		if !ok {
			return zero, fmt.Errorf("%w: key %q holds %T, requested %T", ErrTypeMismatch, key, entry.value, zero)
		}
		return v, nil
	}

	val, err := fetchFn(rc.Context)
	rc.cache[key] = cacheEntry{value: val, err: err}
	return val, err
}

// Stage caches entity under key and queues action for Commit.
func (rc *RequestContext) Stage(key string, entity any, action domain.Action) error {
	if action == nil {
		return ErrNilAction
	}

	rc.queueMu.Lock()
	defer rc.queueMu.Unlock()

	if rc.committed {
		return ErrAlreadyCommitted
	}
	rc.cache[key] = cacheEntry{value: entity}
	rc.items = append(rc.items, action)
	return nil
}

// AddAction queues action for Commit without touching the cache.
func (rc *RequestContext) AddAction(action domain.Action) error {
	if action == nil {
		return ErrNilAction
	}

	rc.queueMu.Lock()
	defer rc.queueMu.Unlock()

	if rc.committed {
		return ErrAlreadyCommitted
	}
	rc.items = append(rc.items, action)
	return nil
}

// Execute runs action immediately with the request's context. It is not
// queued and is not rolled back by a failed Commit.
func (rc *RequestContext) Execute(action domain.Action) error {
	if action == nil {
		return ErrNilAction
	}
	return action.Execute(rc.Context)
}

// Pending returns the number of staged actions not yet committed.
func (rc *RequestContext) Pending() int {
	rc.queueMu.Lock()
	defer rc.queueMu.Unlock()
	if rc.committed {
		return 0
	}
	return len(rc.items)
}
